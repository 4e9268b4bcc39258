// Package client implements the HTTP/REST client of the chat backend API.
// It is consumed by the command-line client and usable as a library.
package client

import (
	"context"

	"github.com/asemenov/go-chat-backend/models"
)

// APIClient is the outbound counterpart of the server's REST API.
//
// Register and Login store the returned token on the client, so subsequent
// calls are authenticated without further setup. The token can also be
// injected directly via SetToken (e.g. when restored from a previous run).
type APIClient interface {
	// SetToken stores token for use in the Authorization header of all
	// subsequent authenticated requests.
	SetToken(token string)

	// Token returns the token currently held by the client, or an empty
	// string if none has been set.
	Token() string

	// Register creates a new account and stores the returned token.
	Register(ctx context.Context, req models.RegisterRequest) (models.TokenResponse, error)

	// Login authenticates and stores the returned token.
	Login(ctx context.Context, req models.LoginRequest) (models.TokenResponse, error)

	// Logout revokes the held token on the server and clears it locally.
	Logout(ctx context.Context) error

	// Profile fetches the authenticated member's own public view.
	Profile(ctx context.Context) (models.MemberResponse, error)

	// UpdateProfile applies a partial update to the member's account.
	UpdateProfile(ctx context.Context, req models.ProfileUpdateRequest) (models.MemberResponse, error)

	// SendMessage appends one message to the shared chat.
	SendMessage(ctx context.Context, req models.PostMessageRequest) (models.ChatMessageResponse, error)

	// Messages lists chat messages oldest first. A non-positive limit
	// means all remaining messages after the offset.
	Messages(ctx context.Context, offset, limit int64) ([]models.ChatMessageResponse, error)
}
