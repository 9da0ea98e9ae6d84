package output

import (
	"context"
	"iter"

	"translatebot/internal/domain/entities"
)

// MessageHistory gives read access to the channel a command was sent in.
type MessageHistory interface {
	// History yields at most limit messages, most recent first. Messages are
	// fetched lazily, so stopping early avoids further requests. A fetch
	// failure is yielded once as a non-nil error and ends the sequence.
	History(ctx context.Context, limit int) iter.Seq2[entities.Message, error]
	// ReferencedMessage fetches a message of the channel by ID.
	ReferencedMessage(ctx context.Context, messageID string) (*entities.Message, error)
}
