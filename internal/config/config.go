package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultPath is where the settings file is looked up when SETTINGS_FILE is unset.
var DefaultPath = filepath.Join(".data", "settings.json")

const maxHistoryLimit = 1000

type Config struct {
	DiscordToken  string
	DeeplToken    string
	DeeplAPIURL   string
	CommandPrefix string
	HistoryLimit  int
	LogLevel      string
	Environment   string
}

// Load reads the settings file (SETTINGS_FILE or DefaultPath) and validates it.
// Environment variables such as DISCORD_TOKEN override values from the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional; the settings file is not.
	}

	path := strings.TrimSpace(os.Getenv("SETTINGS_FILE"))
	if path == "" {
		path = DefaultPath
	}
	return LoadFile(path)
}

// LoadFile reads settings from a JSON file at path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetDefault("deepl_api_url", "https://api-free.deepl.com/v2/translate")
	v.SetDefault("command_prefix", "!")
	v.SetDefault("history_limit", 100)
	v.SetDefault("log_level", "info")
	v.SetDefault("environment", "production")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := &Config{
		DiscordToken:  v.GetString("discord_token"),
		DeeplToken:    v.GetString("deepl_token"),
		DeeplAPIURL:   v.GetString("deepl_api_url"),
		CommandPrefix: v.GetString("command_prefix"),
		HistoryLimit:  v.GetInt("history_limit"),
		LogLevel:      v.GetString("log_level"),
		Environment:   v.GetString("environment"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks required secrets and the optional tuning values.
func (c *Config) validate() error {
	if strings.TrimSpace(c.DiscordToken) == "" {
		return fmt.Errorf("config: discord_token is required and cannot be empty")
	}
	if strings.TrimSpace(c.DeeplToken) == "" {
		return fmt.Errorf("config: deepl_token is required and cannot be empty")
	}

	if c.CommandPrefix == "" || strings.ContainsAny(c.CommandPrefix, " \t\n") {
		return fmt.Errorf("config: command_prefix %q must be non-empty and contain no whitespace", c.CommandPrefix)
	}

	if c.HistoryLimit < 1 || c.HistoryLimit > maxHistoryLimit {
		return fmt.Errorf("config: history_limit must be between 1 and %d, got %d", maxHistoryLimit, c.HistoryLimit)
	}

	parsed, err := url.Parse(c.DeeplAPIURL)
	if err != nil {
		return fmt.Errorf("config: deepl_api_url invalid (%q): %w", c.DeeplAPIURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: deepl_api_url invalid (%q): missing scheme or host", c.DeeplAPIURL)
	}

	return nil
}
