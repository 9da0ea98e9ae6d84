package discord

import (
	"context"
	"errors"
	"iter"
	"net/http"
	"strings"

	"github.com/bwmarrin/discordgo"

	"translatebot/internal/domain/entities"
	"translatebot/internal/ports/output"
	pkgdiscord "translatebot/pkg/discord"
)

const (
	// Discord returns at most this many messages per history request.
	historyPageSize  = 100
	memberSearchSize = 100
)

var (
	_ output.MemberResolver = (*conversation)(nil)
	_ output.MessageHistory = (*conversation)(nil)
)

// conversation exposes the channel of one command message to the use case.
type conversation struct {
	api        discordAPI
	guildID    string
	channelID  string
	referenced *discordgo.Message
}

func newConversation(api discordAPI, m *discordgo.Message) *conversation {
	return &conversation{
		api:        api,
		guildID:    m.GuildID,
		channelID:  m.ChannelID,
		referenced: m.ReferencedMessage,
	}
}

// ResolveMember accepts a mention, a user ID, a username (optionally with
// its #discriminator), a display name, or a nickname.
func (c *conversation) ResolveMember(ctx context.Context, token string) output.MemberLookup {
	token = strings.TrimSpace(token)
	if c.guildID == "" || token == "" {
		return output.NotFound()
	}

	id, ok := pkgdiscord.ParseUserMention(token)
	if !ok && pkgdiscord.IsSnowflake(token) {
		id, ok = token, true
	}
	if ok {
		m, err := c.api.GuildMember(c.guildID, id, discordgo.WithContext(ctx))
		if err != nil {
			if isNotFound(err) {
				return output.NotFound()
			}
			return output.Failed(err)
		}
		return output.Found(toMember(m))
	}

	query := token
	if i := strings.LastIndex(token, "#"); i > 0 {
		query = token[:i]
	}
	candidates, err := c.api.GuildMembersSearch(c.guildID, query, memberSearchSize, discordgo.WithContext(ctx))
	if err != nil {
		return output.Failed(err)
	}
	for _, m := range candidates {
		if memberMatches(m, token) {
			return output.Found(toMember(m))
		}
	}
	return output.NotFound()
}

// History pages backwards through the channel until limit messages were
// yielded, the channel is exhausted, or the consumer stops.
func (c *conversation) History(ctx context.Context, limit int) iter.Seq2[entities.Message, error] {
	return func(yield func(entities.Message, error) bool) {
		before := ""
		for remaining := limit; remaining > 0; {
			size := min(remaining, historyPageSize)
			page, err := c.api.ChannelMessages(c.channelID, size, before, "", "", discordgo.WithContext(ctx))
			if err != nil {
				yield(entities.Message{}, err)
				return
			}
			for _, m := range page {
				if !yield(toMessage(m), nil) {
					return
				}
			}
			if len(page) < size {
				return
			}
			remaining -= len(page)
			before = page[len(page)-1].ID
		}
	}
}

// ReferencedMessage uses the copy delivered with the gateway event when it
// matches, and fetches the message otherwise.
func (c *conversation) ReferencedMessage(ctx context.Context, messageID string) (*entities.Message, error) {
	if c.referenced != nil && c.referenced.ID == messageID {
		msg := toMessage(c.referenced)
		return &msg, nil
	}
	m, err := c.api.ChannelMessage(c.channelID, messageID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	msg := toMessage(m)
	return &msg, nil
}

func memberMatches(m *discordgo.Member, token string) bool {
	if m == nil || m.User == nil {
		return false
	}
	u := m.User
	if strings.EqualFold(u.Username, token) ||
		(u.GlobalName != "" && strings.EqualFold(u.GlobalName, token)) ||
		(m.Nick != "" && strings.EqualFold(m.Nick, token)) {
		return true
	}
	return u.Discriminator != "" && u.Discriminator != "0" &&
		strings.EqualFold(u.Username+"#"+u.Discriminator, token)
}

func isNotFound(err error) bool {
	var restErr *discordgo.RESTError
	if !errors.As(err, &restErr) {
		return false
	}
	if restErr.Message != nil {
		switch restErr.Message.Code {
		case discordgo.ErrCodeUnknownMember, discordgo.ErrCodeUnknownUser:
			return true
		}
	}
	return restErr.Response != nil && restErr.Response.StatusCode == http.StatusNotFound
}

func toMember(m *discordgo.Member) *entities.Member {
	out := &entities.Member{Nick: m.Nick}
	if m.User != nil {
		out.ID = m.User.ID
		out.Username = m.User.Username
		out.GlobalName = m.User.GlobalName
	}
	return out
}

func toMessage(m *discordgo.Message) entities.Message {
	msg := entities.Message{ID: m.ID, Content: m.Content}
	if m.Author != nil {
		msg.AuthorID = m.Author.ID
	}
	return msg
}
