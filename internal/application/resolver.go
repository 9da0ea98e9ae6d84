package application

import (
	"context"

	"github.com/rs/zerolog"

	"translatebot/internal/domain"
	"translatebot/internal/domain/entities"
	"translatebot/internal/ports/output"
)

const maxArguments = 3

// Resolver turns the raw arguments of a translate command into an Intent.
type Resolver struct {
	log zerolog.Logger
}

func NewResolver(log zerolog.Logger) *Resolver {
	return &Resolver{log: log}
}

// argument is one classified token: exactly one of language or member is set.
type argument struct {
	language *domain.Language
	member   *entities.Member
}

// Arguments are the classified tokens of one command, in input order.
type Arguments struct {
	args []argument
}

// HasMember reports whether any token resolved to a member.
func (a Arguments) HasMember() bool {
	for _, arg := range a.args {
		if arg.member != nil {
			return true
		}
	}
	return false
}

// Resolve accepts up to three tokens, each a language code or a member
// reference. Two languages mean source then target, one means target only,
// none means English. A member among three tokens must come first or last.
func (r *Resolver) Resolve(ctx context.Context, tokens []string, members output.MemberResolver) (*entities.Intent, error) {
	args, err := r.Classify(ctx, tokens, members)
	if err != nil {
		return nil, err
	}
	return args.Intent()
}

// Classify checks the argument count and classifies every token, stopping
// at the first token that is neither a language nor a member.
func (r *Resolver) Classify(ctx context.Context, tokens []string, members output.MemberResolver) (Arguments, error) {
	if len(tokens) > maxArguments {
		return Arguments{}, domain.TooManyArguments(len(tokens))
	}

	args := make([]argument, 0, len(tokens))
	for _, token := range tokens {
		arg, ok := r.classify(ctx, token, members)
		if !ok {
			return Arguments{}, domain.UnparseableArgument(token)
		}
		args = append(args, arg)
	}
	return Arguments{args: args}, nil
}

// Intent applies the count, position and language rules.
func (a Arguments) Intent() (*entities.Intent, error) {
	var (
		languages []domain.Language
		found     []*entities.Member
	)
	memberPos := -1
	for i, arg := range a.args {
		if arg.language != nil {
			languages = append(languages, *arg.language)
			continue
		}
		found = append(found, arg.member)
		memberPos = i
	}

	if len(found) > 1 {
		return nil, domain.ErrTooManyMembers
	}
	if len(languages) > 2 {
		return nil, domain.ErrTooManyLanguages
	}
	if len(found) == 1 && len(a.args) == maxArguments && memberPos == 1 {
		return nil, domain.ErrInvalidMemberPosition
	}

	intent := &entities.Intent{Target: domain.DefaultTarget}
	switch len(languages) {
	case 2:
		if languages[0] == languages[1] {
			return nil, domain.SameLanguage(languages[0])
		}
		source := languages[0]
		intent.Source = &source
		intent.Target = languages[1]
	case 1:
		intent.Target = languages[0]
	}
	if len(found) == 1 {
		intent.Member = found[0]
	}
	return intent, nil
}

// classify tries the language catalog first, then the member lookup.
// A failed lookup counts as "not a member".
func (r *Resolver) classify(ctx context.Context, token string, members output.MemberResolver) (argument, bool) {
	if l, ok := domain.ParseLanguage(token); ok {
		return argument{language: &l}, true
	}
	if members == nil {
		return argument{}, false
	}

	res := members.ResolveMember(ctx, token)
	switch res.Status {
	case output.LookupFound:
		if res.Member != nil {
			return argument{member: res.Member}, true
		}
	case output.LookupFailed:
		r.log.Debug().Err(res.Err).Str("token", token).Msg("member lookup failed")
	}
	return argument{}, false
}
