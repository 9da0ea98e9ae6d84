package application

import (
	"context"
	"errors"

	"translatebot/internal/domain"
	"translatebot/internal/ports/input"
	"translatebot/internal/ports/output"
)

var _ input.TranslateUseCase = (*TranslateService)(nil)

type TranslateService struct {
	resolver   *Resolver
	selector   *Selector
	translator output.Translator
}

func NewTranslateService(resolver *Resolver, selector *Selector, translator output.Translator) *TranslateService {
	return &TranslateService{
		resolver:   resolver,
		selector:   selector,
		translator: translator,
	}
}

// Translate resolves the arguments, picks the message and translates it.
// Argument and selection mistakes come back as *domain.UserInputError;
// provider failures always come back as *domain.ProviderError.
func (s *TranslateService) Translate(ctx context.Context, inv input.Invocation) (*input.Translation, error) {
	args, err := s.resolver.Classify(ctx, inv.Args, inv.Members)
	if err != nil {
		return nil, err
	}
	// Replies pin the message; a member is rejected before any language rule.
	if inv.IsReply() && args.HasMember() {
		return nil, domain.ErrMemberNotAllowedOnReply
	}
	intent, err := args.Intent()
	if err != nil {
		return nil, err
	}

	msg, err := s.selector.Select(ctx, intent, inv)
	if err != nil {
		return nil, err
	}

	text, err := s.translator.Translate(ctx, msg.Content, intent.Target, intent.Source)
	if err != nil {
		var perr *domain.ProviderError
		if !errors.As(err, &perr) {
			err = &domain.ProviderError{Err: err}
		}
		return nil, err
	}

	return &input.Translation{
		Intent:   *intent,
		Original: *msg,
		Text:     text,
	}, nil
}
