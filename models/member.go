package models

import "time"

// Member represents a registered account entity used for authentication
// and as the author identity of chat messages.
// Sensitive fields must never be exposed outside trusted boundaries.
type Member struct {
	// MemberID is the internal unique identifier of the member.
	// It is assigned by the persistence layer.
	MemberID int64 `json:"id"`

	// Name is the unique, case-sensitive member name used for login
	// and displayed to other chat participants.
	Name string `json:"name"`

	// PasswordHash stores the one-way hash of the member's password.
	// This value MUST be a bcrypt hash, never plaintext.
	// It is never serialized via JSON under any code path.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Member model.
func (m Member) TableName() string {
	return "members"
}

// MemberUpdate describes a partial update of a member record.
// Only non-nil fields are applied (partial update support).
type MemberUpdate struct {
	// MemberID identifies the record to update. Required.
	MemberID int64

	// Name is the new member name. If nil, the name is left untouched.
	Name *string

	// PasswordHash is the new password hash. If nil, the stored hash
	// is left untouched.
	PasswordHash *string
}
