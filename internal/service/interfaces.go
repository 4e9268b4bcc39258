// Package service contains the business logic of the chat backend:
// account lifecycle, credential verification, token issuance, and the
// shared chat log operations. Handlers stay thin; every rule that is not
// pure transport lives here.
package service

import (
	"context"

	"github.com/asemenov/go-chat-backend/models"
)

type AuthService interface {
	// Authenticate resolves a presented token key to the member and the
	// exact token record it belongs to.
	Authenticate(ctx context.Context, tokenKey string) (models.Member, models.AuthToken, error)

	// Register creates a new member account and unconditionally mints a
	// fresh token for it, even if the member could somehow already hold one.
	Register(ctx context.Context, req models.RegisterRequest) (models.TokenResponse, error)

	// Login verifies credentials and returns the member's token,
	// reusing an existing one when present (idempotent get-or-create).
	Login(ctx context.Context, req models.LoginRequest) (models.TokenResponse, error)

	// Logout revokes exactly the token that authenticated the current
	// request. Other tokens of the same member stay valid.
	Logout(ctx context.Context, tokenID int64) error

	// UpdateProfile applies a partial update to the member's name and/or
	// password and returns the updated public view.
	UpdateProfile(ctx context.Context, memberID int64, req models.ProfileUpdateRequest) (models.MemberResponse, error)
}

type ChatService interface {
	// PostMessage appends one message to the shared chat log with the
	// given member as author.
	PostMessage(ctx context.Context, author models.Member, req models.PostMessageRequest) (models.ChatMessageResponse, error)

	// ListMessages returns messages oldest first, skipping offset entries
	// and returning at most limit. A negative limit means all remaining.
	ListMessages(ctx context.Context, offset, limit int64) ([]models.ChatMessageResponse, error)
}
