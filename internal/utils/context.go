// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// opaque token generation, password hashing, HTTP response writing,
// and other common operations.
package utils

import (
	"context"

	"github.com/asemenov/go-chat-backend/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// MemberCtxKey is the key used to store the authenticated member in the
// request context. Set by the authentication middleware after a
// successful token lookup.
var MemberCtxKey = contextKey("member")

// AuthTokenCtxKey is the key used to store the token record that
// authenticated the current request. Logout operates on this specific
// instance, so other tokens of the same member stay valid.
var AuthTokenCtxKey = contextKey("authToken")

// MemberFromContext retrieves the authenticated member from the context.
//
// Returns the member and an ok flag:
//   - ok == true: a member was stored by the authentication middleware
//   - ok == false: the request is anonymous
func MemberFromContext(ctx context.Context) (models.Member, bool) {
	member, ok := ctx.Value(MemberCtxKey).(models.Member)
	return member, ok
}

// AuthTokenFromContext retrieves the authenticating token record from
// the context. The ok flag follows the same convention as
// [MemberFromContext].
func AuthTokenFromContext(ctx context.Context) (models.AuthToken, bool) {
	token, ok := ctx.Value(AuthTokenCtxKey).(models.AuthToken)
	return token, ok
}

// ContextWithIdentity returns a child context carrying the resolved
// (member, token) pair. Downstream handlers depend only on these values
// and never re-parse the Authorization header themselves.
func ContextWithIdentity(ctx context.Context, member models.Member, token models.AuthToken) context.Context {
	ctx = context.WithValue(ctx, MemberCtxKey, member)
	return context.WithValue(ctx, AuthTokenCtxKey, token)
}
