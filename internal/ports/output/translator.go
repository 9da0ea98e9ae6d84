package output

import (
	"context"

	"translatebot/internal/domain"
)

// Translator sends one text to the translation provider.
// source may be nil to let the provider detect it.
type Translator interface {
	Translate(ctx context.Context, text string, target domain.Language, source *domain.Language) (string, error)
}
