package entities

import "translatebot/internal/domain"

// Intent is a validated translate request: which languages, and optionally
// whose message to look for.
type Intent struct {
	Source *domain.Language // nil = let the provider detect it
	Target domain.Language
	Member *Member
}

// HasSource reports whether the user named a source language.
func (i *Intent) HasSource() bool {
	return i.Source != nil
}
