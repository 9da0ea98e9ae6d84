package discord

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"translatebot/internal/application"
	"translatebot/internal/domain"
	"translatebot/internal/infrastructure/i18n"
)

type stubTranslator struct {
	text  string
	err   error
	calls int
}

func (s *stubTranslator) Translate(_ context.Context, _ string, _ domain.Language, _ *domain.Language) (string, error) {
	s.calls++
	return s.text, s.err
}

func newTestHandler(t *testing.T, tr *stubTranslator) *Handler {
	t.Helper()
	texts, err := i18n.NewCatalog(nil)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	uc := application.NewTranslateService(
		application.NewResolver(zerolog.Nop()),
		application.NewSelector(application.DefaultHistoryLimit),
		tr,
	)
	return NewHandler(uc, texts, "!", zerolog.Nop())
}

func TestHandlePing(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	newTestHandler(t, &stubTranslator{}).handleMessage(context.Background(), api, botID, message("1", aliceID, "!ping"))

	if len(api.sent) != 1 || api.sent[0] != "Pong" {
		t.Fatalf("unexpected replies %q", api.sent)
	}
}

func TestHandleIgnoresNonCommands(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	h := newTestHandler(t, &stubTranslator{})

	h.handleMessage(context.Background(), api, botID, message("1", aliceID, "hello there"))
	h.handleMessage(context.Background(), api, botID, message("2", aliceID, "!unknown"))
	h.handleMessage(context.Background(), api, botID, message("3", botID, "!ping"))

	fromBot := message("4", "555555555555555555", "!ping")
	fromBot.Author.Bot = true
	h.handleMessage(context.Background(), api, botID, fromBot)

	if len(api.sent) != 0 {
		t.Fatalf("expected no replies, got %q", api.sent)
	}
}

func TestHandleTranslateScan(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{members: testMembers()}
	api.messages = []*discordgo.Message{
		message("4", bobID, "!translate alice de"),
		message("3", botID, "Pong"),
		message("2", bobID, "good morning"),
		message("1", aliceID, "buenos días"),
	}
	tr := &stubTranslator{text: "Guten Morgen"}

	newTestHandler(t, tr).handleMessage(context.Background(), api, botID, api.messages[0])

	if len(api.sent) != 1 || api.sent[0] != "Guten Morgen" {
		t.Fatalf("unexpected replies %q", api.sent)
	}
	if tr.calls != 1 {
		t.Fatalf("expected one translation, got %d", tr.calls)
	}
}

func TestHandleTranslateLogsMemberDisplayName(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{members: testMembers()}
	api.messages = []*discordgo.Message{
		message("2", bobID, "!translate alice"),
		message("1", aliceID, "buenos días"),
	}
	var buf bytes.Buffer
	h := newTestHandler(t, &stubTranslator{text: "good morning"})
	h.log = zerolog.New(&buf)

	h.handleMessage(context.Background(), api, botID, api.messages[0])

	if !strings.Contains(buf.String(), `"member":"Ally"`) {
		t.Fatalf("expected the member's display name in the log, got %s", buf.String())
	}
}

func TestHandleTranslateUserErrorIsQuoted(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{members: testMembers()}
	newTestHandler(t, &stubTranslator{}).handleMessage(context.Background(), api, botID, message("1", aliceID, "!translate de xx"))

	if len(api.sent) != 1 {
		t.Fatalf("expected one reply, got %q", api.sent)
	}
	if !strings.HasPrefix(api.sent[0], "Could not parse xx as a language or member") {
		t.Fatalf("expected the error detail verbatim, got %q", api.sent[0])
	}
	if !strings.Contains(api.sent[0], "Usage: !translate") {
		t.Fatalf("expected usage for argument errors, got %q", api.sent[0])
	}
}

func TestHandleTranslateNoMessage(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	cmd := message("1", aliceID, "!translate")
	api.messages = []*discordgo.Message{cmd}

	newTestHandler(t, &stubTranslator{}).handleMessage(context.Background(), api, botID, cmd)

	if len(api.sent) != 1 || api.sent[0] != "Found no message to translate" {
		t.Fatalf("unexpected replies %q", api.sent)
	}
}

func TestHandleTranslateProviderErrorIsHidden(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	cmd := message("2", aliceID, "!translate")
	api.messages = []*discordgo.Message{cmd, message("1", bobID, "hola")}
	tr := &stubTranslator{err: &domain.ProviderError{Err: errors.New("deepl status 403: wrong auth key abc")}}

	newTestHandler(t, tr).handleMessage(context.Background(), api, botID, cmd)

	if len(api.sent) != 1 {
		t.Fatalf("expected one reply, got %q", api.sent)
	}
	if strings.Contains(api.sent[0], "403") || strings.Contains(api.sent[0], "abc") {
		t.Fatalf("provider details leaked: %q", api.sent[0])
	}
	if !strings.HasPrefix(api.sent[0], "Something went wrong") {
		t.Fatalf("expected the generic failure text, got %q", api.sent[0])
	}
}

func TestHandleTranslateReplyWithMember(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{members: testMembers()}
	original := message("1", aliceID, "hola")
	cmd := message("2", bobID, "!translate alice")
	cmd.Type = discordgo.MessageTypeReply
	cmd.MessageReference = &discordgo.MessageReference{MessageID: "1", ChannelID: channelID}
	cmd.ReferencedMessage = original
	api.messages = []*discordgo.Message{cmd, original}
	tr := &stubTranslator{text: "hello"}

	newTestHandler(t, tr).handleMessage(context.Background(), api, botID, cmd)

	if len(api.sent) != 1 || api.sent[0] != domain.ErrMemberNotAllowedOnReply.Error() {
		t.Fatalf("unexpected replies %q", api.sent)
	}
	if tr.calls != 0 {
		t.Fatal("translator must not be called")
	}
}

func TestHandleLanguages(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	newTestHandler(t, &stubTranslator{}).handleMessage(context.Background(), api, botID, message("1", aliceID, "!LANGUAGES"))

	if len(api.sent) != 1 || !strings.Contains(api.sent[0], "DE (German)") || !strings.Contains(api.sent[0], "ZH (Chinese)") {
		t.Fatalf("unexpected replies %q", api.sent)
	}
}

func TestHandleLongTranslationIsSplit(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	cmd := message("2", aliceID, "!translate")
	api.messages = []*discordgo.Message{cmd, message("1", bobID, "hola")}
	tr := &stubTranslator{text: strings.Repeat("line of text\n", 300)}

	newTestHandler(t, tr).handleMessage(context.Background(), api, botID, cmd)

	if len(api.sent) < 2 {
		t.Fatalf("expected the reply to be split, got %d messages", len(api.sent))
	}
	for i, s := range api.sent {
		if len(s) > 2000 {
			t.Fatalf("message %d has %d bytes", i, len(s))
		}
	}
}

func TestReplyTarget(t *testing.T) {
	t.Parallel()

	reply := message("2", bobID, "!translate")
	reply.Type = discordgo.MessageTypeReply
	reply.MessageReference = &discordgo.MessageReference{MessageID: "1", ChannelID: channelID}
	if got := replyTarget(reply); got != "1" {
		t.Fatalf("expected reply target 1, got %q", got)
	}

	forward := message("3", bobID, "!translate")
	forward.MessageReference = &discordgo.MessageReference{MessageID: "1", ChannelID: "other", Type: discordgo.MessageReferenceTypeForward}
	if got := replyTarget(forward); got != "" {
		t.Fatalf("forwards are not replies, got %q", got)
	}

	if got := replyTarget(message("4", bobID, "!translate")); got != "" {
		t.Fatalf("plain messages have no reply target, got %q", got)
	}
}

func TestParseCommand(t *testing.T) {
	t.Parallel()

	name, args, ok := parseCommand("!", "!Translate  de   EN ")
	if !ok || name != "translate" || len(args) != 2 || args[0] != "de" || args[1] != "EN" {
		t.Fatalf("unexpected parse: %q %q %v", name, args, ok)
	}
	for _, content := range []string{"", "!", "! ", "translate de", "?ping"} {
		if _, _, ok := parseCommand("!", content); ok {
			t.Fatalf("parseCommand(%q) should not be a command", content)
		}
	}
}
