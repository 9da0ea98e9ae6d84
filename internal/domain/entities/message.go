package entities

// Message is a read-only view of a chat message that may be translated.
type Message struct {
	ID       string
	AuthorID string
	Content  string
}
