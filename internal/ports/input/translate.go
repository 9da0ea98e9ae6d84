package input

import (
	"context"

	"translatebot/internal/domain/entities"
	"translatebot/internal/ports/output"
)

// Invocation is one received translate command with its channel context.
// ReplyToID is the referenced message when the command is a reply, else "".
type Invocation struct {
	Args             []string
	BotUserID        string
	CommandMessageID string
	ReplyToID        string
	Prefix           string

	Members output.MemberResolver
	History output.MessageHistory
}

// IsReply reports whether the command was sent as a reply.
func (inv Invocation) IsReply() bool {
	return inv.ReplyToID != ""
}

// Translation is what a successful translate command produced.
type Translation struct {
	Intent   entities.Intent
	Original entities.Message
	Text     string
}

type TranslateUseCase interface {
	Translate(ctx context.Context, inv Invocation) (*Translation, error)
}
