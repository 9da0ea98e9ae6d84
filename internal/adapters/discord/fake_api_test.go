package discord

import (
	"errors"
	"net/http"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// fakeAPI serves a single channel's messages (most recent first) and a
// fixed guild member list.
type fakeAPI struct {
	messages      []*discordgo.Message
	members       []*discordgo.Member
	historyErr    error
	searchErr     error
	sent          []string
	historyCalls  int
	requestedSize []int
}

var _ discordAPI = (*fakeAPI)(nil)

func (f *fakeAPI) ChannelMessageSend(channelID string, content string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.sent = append(f.sent, content)
	return &discordgo.Message{ChannelID: channelID, Content: content}, nil
}

func (f *fakeAPI) ChannelMessages(_ string, limit int, beforeID, _, _ string, _ ...discordgo.RequestOption) ([]*discordgo.Message, error) {
	f.historyCalls++
	f.requestedSize = append(f.requestedSize, limit)
	if f.historyErr != nil {
		return nil, f.historyErr
	}
	start := 0
	if beforeID != "" {
		for i, m := range f.messages {
			if m.ID == beforeID {
				start = i + 1
				break
			}
		}
	}
	end := min(start+limit, len(f.messages))
	return f.messages[start:end], nil
}

func (f *fakeAPI) ChannelMessage(_, messageID string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	for _, m := range f.messages {
		if m.ID == messageID {
			return m, nil
		}
	}
	return nil, notFoundError(discordgo.ErrCodeUnknownMessage)
}

func (f *fakeAPI) GuildMember(_, userID string, _ ...discordgo.RequestOption) (*discordgo.Member, error) {
	for _, m := range f.members {
		if m.User.ID == userID {
			return m, nil
		}
	}
	return nil, notFoundError(discordgo.ErrCodeUnknownMember)
}

func (f *fakeAPI) GuildMembersSearch(_, query string, limit int, _ ...discordgo.RequestOption) ([]*discordgo.Member, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	var out []*discordgo.Member
	q := strings.ToLower(query)
	for _, m := range f.members {
		if strings.HasPrefix(strings.ToLower(m.User.Username), q) || strings.HasPrefix(strings.ToLower(m.Nick), q) {
			out = append(out, m)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func notFoundError(code int) error {
	return &discordgo.RESTError{
		Response: &http.Response{StatusCode: http.StatusNotFound},
		Message:  &discordgo.APIErrorMessage{Code: code, Message: "Unknown"},
	}
}

var errGateway = errors.New("502 bad gateway")

func member(id, username, globalName, nick string) *discordgo.Member {
	return &discordgo.Member{
		Nick: nick,
		User: &discordgo.User{ID: id, Username: username, GlobalName: globalName, Discriminator: "0"},
	}
}

func message(id, authorID, content string) *discordgo.Message {
	return &discordgo.Message{
		ID:        id,
		ChannelID: channelID,
		GuildID:   guildID,
		Content:   content,
		Author:    &discordgo.User{ID: authorID},
	}
}

const (
	guildID   = "700000000000000000"
	channelID = "600000000000000000"
	botID     = "900000000000000000"
	aliceID   = "100000000000000001"
	bobID     = "100000000000000002"
)
