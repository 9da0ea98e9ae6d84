package discord

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"translatebot/internal/domain"
	"translatebot/internal/ports/input"
	"translatebot/internal/ports/output"
	pkgdiscord "translatebot/pkg/discord"
)

// invocationTimeout bounds all platform and provider calls of one command.
const invocationTimeout = 30 * time.Second

// discordAPI is the part of *discordgo.Session the handler talks to.
type discordAPI interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessages(channelID string, limit int, beforeID, afterID, aroundID string, options ...discordgo.RequestOption) ([]*discordgo.Message, error)
	ChannelMessage(channelID, messageID string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	GuildMember(guildID, userID string, options ...discordgo.RequestOption) (*discordgo.Member, error)
	GuildMembersSearch(guildID, query string, limit int, options ...discordgo.RequestOption) ([]*discordgo.Member, error)
}

var _ discordAPI = (*discordgo.Session)(nil)

// Handler handles prefixed chat commands using use cases.
type Handler struct {
	translateUseCase input.TranslateUseCase
	texts            output.T
	prefix           string
	log              zerolog.Logger
}

// NewHandler creates a Handler.
func NewHandler(
	translateUseCase input.TranslateUseCase,
	texts output.T,
	prefix string,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		translateUseCase: translateUseCase,
		texts:            texts,
		prefix:           prefix,
		log:              log,
	}
}

// HandleMessageCreate is registered on the session for MessageCreate events.
func (h *Handler) HandleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Message == nil || s.State == nil || s.State.User == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), invocationTimeout)
	defer cancel()
	h.handleMessage(ctx, s, s.State.User.ID, m.Message)
}

func (h *Handler) handleMessage(ctx context.Context, api discordAPI, botUserID string, m *discordgo.Message) {
	if m.Author == nil || m.Author.Bot || m.Author.ID == botUserID {
		return
	}
	name, args, ok := parseCommand(h.prefix, m.Content)
	if !ok {
		return
	}

	log := h.log.With().
		Str("command", name).
		Str("guild_id", m.GuildID).
		Str("channel_id", m.ChannelID).
		Str("message_id", m.ID).
		Str("user_id", m.Author.ID).
		Logger()

	switch name {
	case commandPing:
		h.send(ctx, api, m.ChannelID, h.texts.T("pong", nil), log)
	case commandLanguages:
		h.send(ctx, api, m.ChannelID, h.texts.T("languages", map[string]any{"List": languageList()}), log)
	case commandTranslate:
		h.handleTranslate(ctx, api, botUserID, m, args, log)
	default:
		log.Debug().Msg("unknown command ignored")
	}
}

func (h *Handler) handleTranslate(ctx context.Context, api discordAPI, botUserID string, m *discordgo.Message, args []string, log zerolog.Logger) {
	conv := newConversation(api, m)
	inv := input.Invocation{
		Args:             args,
		BotUserID:        botUserID,
		CommandMessageID: m.ID,
		ReplyToID:        replyTarget(m),
		Prefix:           h.prefix,
		Members:          conv,
		History:          conv,
	}

	result, err := h.translateUseCase.Translate(ctx, inv)
	if err != nil {
		h.send(ctx, api, m.ChannelID, h.errorReply(err, log), log)
		return
	}

	event := log.Info().
		Str("target", result.Intent.Target.Code()).
		Bool("reply", inv.IsReply()).
		Str("original_id", result.Original.ID)
	if result.Intent.Member != nil {
		event = event.Str("member", result.Intent.Member.DisplayName())
	}
	event.Msg("message translated")
	h.send(ctx, api, m.ChannelID, result.Text, log)
}

// errorReply quotes user input errors and hides everything else.
func (h *Handler) errorReply(err error, log zerolog.Logger) string {
	if msg := pkgdiscord.UserErrorMessage(err, h.texts); msg != "" {
		log.Debug().Err(err).Msg("translate rejected")
		if pkgdiscord.IsArgumentError(err) {
			return msg + "\n" + h.texts.T("usage", map[string]any{"Prefix": h.prefix})
		}
		return msg
	}
	log.Error().Err(err).Msg("translate failed")
	return h.texts.T("translate_failed", nil)
}

// replyTarget returns the ID of the message m replies to, or "".
func replyTarget(m *discordgo.Message) string {
	ref := m.MessageReference
	if ref == nil || ref.MessageID == "" || ref.Type != discordgo.MessageReferenceTypeDefault {
		return ""
	}
	if m.Type != discordgo.MessageTypeReply {
		return ""
	}
	if ref.ChannelID != "" && ref.ChannelID != m.ChannelID {
		return ""
	}
	return ref.MessageID
}

func languageList() string {
	langs := domain.Languages()
	parts := make([]string, len(langs))
	for i, l := range langs {
		parts[i] = l.Code() + " (" + l.String() + ")"
	}
	return strings.Join(parts, ", ")
}
