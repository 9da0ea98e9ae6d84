package discord

import (
	"errors"

	"translatebot/internal/domain"
	"translatebot/internal/ports/output"
)

// UserErrorMessage returns the text to show for a user input error, or ""
// when err is not one and must not be shown to the user. The text comes
// from the reply catalog entry named after the error code; codes without
// an entry fall back to the error's own text.
func UserErrorMessage(err error, texts output.T) string {
	var uie *domain.UserInputError
	if !errors.As(err, &uie) {
		return ""
	}
	if texts != nil {
		if msg := texts.T(uie.Code, uie.Data); msg != "" && msg != uie.Code {
			return msg
		}
	}
	return uie.Error()
}

// IsArgumentError reports whether the error concerns how the command
// arguments were written, as opposed to which message was targeted.
func IsArgumentError(err error) bool {
	switch domain.Code(err) {
	case domain.CodeTooManyArguments,
		domain.CodeUnparseableArgument,
		domain.CodeTooManyMembers,
		domain.CodeTooManyLanguages,
		domain.CodeInvalidMemberPosition,
		domain.CodeSameLanguage:
		return true
	default:
		return false
	}
}
