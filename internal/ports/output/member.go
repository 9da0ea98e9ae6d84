package output

import (
	"context"

	"translatebot/internal/domain/entities"
)

type LookupStatus int

const (
	LookupNotFound LookupStatus = iota
	LookupFound
	LookupFailed
)

// MemberLookup is the outcome of resolving one argument to a guild member.
// Err is only set when Status is LookupFailed.
type MemberLookup struct {
	Status LookupStatus
	Member *entities.Member
	Err    error
}

func Found(m *entities.Member) MemberLookup {
	return MemberLookup{Status: LookupFound, Member: m}
}

func NotFound() MemberLookup {
	return MemberLookup{Status: LookupNotFound}
}

func Failed(err error) MemberLookup {
	return MemberLookup{Status: LookupFailed, Err: err}
}

// MemberResolver turns a name, mention, or ID into a member of the
// channel's guild. Matching is case-insensitive.
type MemberResolver interface {
	ResolveMember(ctx context.Context, token string) MemberLookup
}
