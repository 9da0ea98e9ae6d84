package domain

import (
	"errors"
	"fmt"
)

// Error codes for mistakes the invoking user can fix.
const (
	CodeTooManyArguments        = "too_many_arguments"
	CodeUnparseableArgument     = "unparseable_argument"
	CodeTooManyMembers          = "too_many_members"
	CodeTooManyLanguages        = "too_many_languages"
	CodeInvalidMemberPosition   = "invalid_member_position"
	CodeSameLanguage            = "same_language"
	CodeMemberNotAllowedOnReply = "member_not_allowed_on_reply"
	CodeReplyResolutionFailed   = "reply_resolution_failed"
	CodeNoMessageFound          = "no_message_found"
)

// Sentinels to compare against with errors.Is.
var (
	ErrTooManyArguments        = &UserInputError{Code: CodeTooManyArguments}
	ErrUnparseableArgument     = &UserInputError{Code: CodeUnparseableArgument}
	ErrTooManyMembers          = &UserInputError{Code: CodeTooManyMembers, Detail: "Only 1 member can be given as an argument."}
	ErrTooManyLanguages        = &UserInputError{Code: CodeTooManyLanguages, Detail: "A maximum of 2 languages can be given as arguments."}
	ErrInvalidMemberPosition   = &UserInputError{Code: CodeInvalidMemberPosition, Detail: "Member arguments must be present at the beginning or end of the list of arguments."}
	ErrSameLanguage            = &UserInputError{Code: CodeSameLanguage}
	ErrMemberNotAllowedOnReply = &UserInputError{Code: CodeMemberNotAllowedOnReply, Detail: "A member cannot be given when replying to a message."}
	ErrReplyResolutionFailed   = &UserInputError{Code: CodeReplyResolutionFailed, Detail: "Could not fetch the message being replied to."}
	ErrNoMessageFound          = &UserInputError{Code: CodeNoMessageFound, Detail: "Found no message to translate"}
)

// UserInputError is a failure caused by what the user typed or pointed at.
// Detail is the English text; Data fills the placeholders of the reply
// catalog entry named by Code.
type UserInputError struct {
	Code   string
	Detail string
	Data   map[string]any
}

func (e *UserInputError) Error() string {
	if e.Detail == "" {
		return e.Code
	}
	return e.Detail
}

// Is matches any UserInputError carrying the same code.
func (e *UserInputError) Is(target error) bool {
	t, ok := target.(*UserInputError)
	return ok && t.Code == e.Code
}

func TooManyArguments(n int) error {
	return &UserInputError{
		Code:   CodeTooManyArguments,
		Detail: fmt.Sprintf("Command only takes a maximum of 3 arguments, but %d were given.", n),
		Data:   map[string]any{"Count": n},
	}
}

func UnparseableArgument(token string) error {
	return &UserInputError{
		Code:   CodeUnparseableArgument,
		Detail: fmt.Sprintf("Could not parse %s as a language or member", token),
		Data:   map[string]any{"Token": token},
	}
}

func SameLanguage(l Language) error {
	return &UserInputError{
		Code:   CodeSameLanguage,
		Detail: fmt.Sprintf("Source and target language are both %s.", l.Code()),
		Data:   map[string]any{"Language": l.Code()},
	}
}

// ProviderError wraps any failure of the translation provider.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("translation provider: %v", e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Code returns the UserInputError code carried by err, or "".
func Code(err error) string {
	var uie *UserInputError
	if errors.As(err, &uie) {
		return uie.Code
	}
	return ""
}

// IsUserInput reports whether err should be shown to the user verbatim.
func IsUserInput(err error) bool {
	return Code(err) != ""
}
