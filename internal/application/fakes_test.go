package application

import (
	"context"
	"errors"
	"iter"
	"strings"

	"translatebot/internal/domain"
	"translatebot/internal/domain/entities"
	"translatebot/internal/ports/output"
)

var (
	alice = &entities.Member{ID: "100000000000000001", Username: "alice"}
	bob   = &entities.Member{ID: "100000000000000002", Username: "bob"}
)

// fakeMembers resolves tokens case-insensitively against a fixed set.
type fakeMembers struct {
	members map[string]*entities.Member
	failing map[string]bool
	calls   int
}

func newFakeMembers(ms ...*entities.Member) *fakeMembers {
	f := &fakeMembers{members: map[string]*entities.Member{}, failing: map[string]bool{}}
	for _, m := range ms {
		f.members[m.Username] = m
	}
	return f
}

func (f *fakeMembers) ResolveMember(_ context.Context, token string) output.MemberLookup {
	f.calls++
	if f.failing[strings.ToLower(token)] {
		return output.Failed(errors.New("gateway timeout"))
	}
	if m, ok := f.members[strings.ToLower(token)]; ok {
		return output.Found(m)
	}
	return output.NotFound()
}

// fakeHistory serves messages most recent first and counts how many were pulled.
type fakeHistory struct {
	messages   []entities.Message
	referenced map[string]entities.Message
	err        error
	pulled     int
}

func (f *fakeHistory) History(_ context.Context, limit int) iter.Seq2[entities.Message, error] {
	return func(yield func(entities.Message, error) bool) {
		if f.err != nil {
			yield(entities.Message{}, f.err)
			return
		}
		for i, m := range f.messages {
			if i >= limit {
				return
			}
			f.pulled++
			if !yield(m, nil) {
				return
			}
		}
	}
}

func (f *fakeHistory) ReferencedMessage(_ context.Context, id string) (*entities.Message, error) {
	m, ok := f.referenced[id]
	if !ok {
		return nil, errors.New("unknown message")
	}
	return &m, nil
}

// fakeTranslator records the last call and returns a canned answer.
type fakeTranslator struct {
	text   string
	err    error
	calls  int
	got    string
	target domain.Language
	source *domain.Language
}

func (f *fakeTranslator) Translate(_ context.Context, text string, target domain.Language, source *domain.Language) (string, error) {
	f.calls++
	f.got, f.target, f.source = text, target, source
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}
