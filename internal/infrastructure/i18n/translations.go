package i18n

import (
	"embed"
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"translatebot/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

// Ensure Catalog implements the output.T port.
var _ output.T = (*Catalog)(nil)

// Catalog renders the bot's reply strings from the embedded TOML files.
type Catalog struct {
	localizer *i18n.Localizer
	onMissing func(key string, err error)
}

// NewCatalog loads the embedded English catalog. onMissing, if non-nil, is
// called whenever a key cannot be rendered.
func NewCatalog(onMissing func(key string, err error)) (*Catalog, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	if _, err := bundle.LoadMessageFileFS(localeFS, "active.en.toml"); err != nil {
		return nil, fmt.Errorf("i18n: load active.en.toml: %w", err)
	}

	return &Catalog{
		localizer: i18n.NewLocalizer(bundle, language.English.String()),
		onMissing: onMissing,
	}, nil
}

// T renders the message identified by key. data fills template
// placeholders and may be nil. Unknown keys render as the key itself.
func (c *Catalog) T(key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	msg, err := c.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		if c.onMissing != nil {
			c.onMissing(key, err)
		}
		return key
	}
	return msg
}
