package main

import (
	"os"

	"github.com/rs/zerolog"

	"translatebot/internal/adapters/discord"
	"translatebot/internal/config"
	"translatebot/internal/infrastructure/deepl"
	"translatebot/internal/infrastructure/i18n"
	"translatebot/internal/infrastructure/logging"
)

func main() {
	bootLog := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		bootLog.Fatal().Err(err).Msg("load configuration")
	}

	log, err := logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("build logger")
	}

	texts, err := i18n.NewCatalog(func(key string, err error) {
		log.Warn().Err(err).Str("key", key).Msg("missing reply text")
	})
	if err != nil {
		log.Fatal().Err(err).Msg("load reply catalog")
	}

	translator := deepl.NewClient(cfg.DeeplToken, deepl.WithEndpoint(cfg.DeeplAPIURL))

	bot, err := discord.NewBot(cfg, translator, texts, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create bot")
	}
	if err := bot.Start(); err != nil {
		log.Error().Err(err).Msg("run bot")
		os.Exit(1)
	}
}
