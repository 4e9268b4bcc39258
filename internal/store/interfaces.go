// Package store implements the PostgreSQL persistence layer of the chat
// backend: member accounts, auth tokens, and the append-only chat log.
//
// Concurrency-sensitive operations (register's two writes, login's token
// get-or-create) are implemented as single store primitives, one
// transaction each, so callers never need a separate read-then-write.
package store

import (
	"context"

	"github.com/asemenov/go-chat-backend/models"
)

// MemberRepository manages member account records.
type MemberRepository interface {
	// CreateMemberWithToken persists a new member and its first auth token
	// in one transaction. Either both records are created or neither is.
	CreateMemberWithToken(ctx context.Context, member models.Member, tokenKey string) (models.Member, models.AuthToken, error)

	// FindMemberByName looks up a member by its unique, case-sensitive name.
	FindMemberByName(ctx context.Context, name string) (models.Member, error)

	// UpdateMember applies a partial update (name and/or password hash)
	// and returns the updated record.
	UpdateMember(ctx context.Context, update models.MemberUpdate) (models.Member, error)
}

// TokenRepository manages opaque bearer tokens.
type TokenRepository interface {
	// FindTokenByKey resolves a presented token key to the token record
	// and its owning member in a single lookup.
	FindTokenByKey(ctx context.Context, key string) (models.AuthToken, models.Member, error)

	// GetOrCreateToken returns the member's current token, inserting a new
	// one with candidateKey only if none exists. The get-or-insert is
	// atomic: two concurrent calls for the same member observably create
	// at most one token, the loser reading back the winner's.
	GetOrCreateToken(ctx context.Context, memberID int64, candidateKey string) (models.AuthToken, error)

	// DeleteTokenByID removes exactly one token record. Deleting an
	// already-deleted token is a no-op, not an error.
	DeleteTokenByID(ctx context.Context, tokenID int64) error
}

// MessageRepository manages the shared chat log.
type MessageRepository interface {
	// CreateMessage appends one message authored by memberID. The database
	// assigns the insertion sequence number.
	CreateMessage(ctx context.Context, memberID int64, text string) (models.ChatMessage, error)

	// ListMessages returns messages in ascending stable order
	// (created_at, message_id), skipping offset oldest entries and
	// returning at most limit results. A negative limit means unbounded.
	ListMessages(ctx context.Context, offset, limit int64) ([]models.ChatMessage, error)
}
