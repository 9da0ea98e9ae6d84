package discord

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"translatebot/internal/application"
	"translatebot/internal/config"
	"translatebot/internal/ports/output"
)

// Bot is the Discord adapter.
type Bot struct {
	session *discordgo.Session
	config  *config.Config
	handler *Handler
	log     zerolog.Logger
}

// NewBot creates a Bot and wires ports: output adapters -> application (use cases) -> handler.
func NewBot(cfg *config.Config, translator output.Translator, texts output.T, log zerolog.Logger) (*Bot, error) {
	translateUC := application.NewTranslateService(
		application.NewResolver(log),
		application.NewSelector(cfg.HistoryLimit),
		translator,
	)

	s, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent

	bot := &Bot{
		session: s,
		config:  cfg,
		handler: NewHandler(translateUC, texts, cfg.CommandPrefix, log),
		log:     log,
	}
	bot.setupHandlers()
	return bot, nil
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handler.HandleMessageCreate)
	b.session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		b.log.Info().
			Str("user", r.User.String()).
			Int("guilds", len(r.Guilds)).
			Msg("connected to gateway")
	})
}

// Start runs the bot until interrupted.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	defer b.session.Close()

	b.log.Info().Str("prefix", b.config.CommandPrefix).Msg("bot online, press CTRL+C to quit")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	b.log.Info().Msg("shutting down")
	return nil
}
