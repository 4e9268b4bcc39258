package models

import "time"

// AuthToken is an opaque bearer credential bound to exactly one Member.
//
// The Key is a high-entropy random string generated server-side and
// handed to the client on registration or login. Every authenticated
// request presents it in the "Authorization: Token <key>" header, and
// logout deletes this specific record; other tokens of the same member
// stay valid.
type AuthToken struct {
	// TokenID is the internal unique identifier of the token record.
	TokenID int64 `json:"-"`

	// Key is the opaque token value transmitted to the client.
	// 32 random bytes, hex-encoded (64 characters).
	Key string `json:"-"`

	// MemberID is the owner of the token.
	MemberID int64 `json:"-"`

	// CreatedAt is the timestamp when the token was issued.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the AuthToken model.
func (t AuthToken) TableName() string {
	return "auth_tokens"
}
