package application

import (
	"context"
	"fmt"
	"strings"

	"translatebot/internal/domain"
	"translatebot/internal/domain/entities"
	"translatebot/internal/ports/input"
)

// DefaultHistoryLimit is how many recent messages a scan looks at.
const DefaultHistoryLimit = 100

// Selector picks the message a translate command is about.
type Selector struct {
	historyLimit int
}

func NewSelector(historyLimit int) *Selector {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	return &Selector{historyLimit: historyLimit}
}

// Select returns the replied-to message for a reply, otherwise the most
// recent eligible message of the channel.
func (s *Selector) Select(ctx context.Context, intent *entities.Intent, inv input.Invocation) (*entities.Message, error) {
	if inv.IsReply() {
		return s.selectReply(ctx, intent, inv)
	}
	return s.scan(ctx, intent, inv)
}

func (s *Selector) selectReply(ctx context.Context, intent *entities.Intent, inv input.Invocation) (*entities.Message, error) {
	if intent.Member != nil {
		return nil, domain.ErrMemberNotAllowedOnReply
	}
	if inv.History == nil {
		return nil, domain.ErrReplyResolutionFailed
	}
	msg, err := inv.History.ReferencedMessage(ctx, inv.ReplyToID)
	if err != nil || msg == nil {
		return nil, domain.ErrReplyResolutionFailed
	}
	return msg, nil
}

func (s *Selector) scan(ctx context.Context, intent *entities.Intent, inv input.Invocation) (*entities.Message, error) {
	if inv.History == nil {
		return nil, domain.ErrNoMessageFound
	}
	for msg, err := range inv.History.History(ctx, s.historyLimit) {
		if err != nil {
			return nil, fmt.Errorf("read channel history: %w", err)
		}
		if eligible(msg, intent, inv) {
			return &msg, nil
		}
	}
	return nil, domain.ErrNoMessageFound
}

func eligible(msg entities.Message, intent *entities.Intent, inv input.Invocation) bool {
	if msg.AuthorID == inv.BotUserID || msg.ID == inv.CommandMessageID {
		return false
	}
	if intent.Member != nil && msg.AuthorID != intent.Member.ID {
		return false
	}
	if inv.Prefix != "" && strings.HasPrefix(msg.Content, inv.Prefix) {
		return false
	}
	return true
}
