package http

import (
	"context"
	"testing"

	"github.com/asemenov/go-chat-backend/internal/logger"
	"github.com/asemenov/go-chat-backend/internal/service"
	"github.com/asemenov/go-chat-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	authenticateFn  func(ctx context.Context, tokenKey string) (models.Member, models.AuthToken, error)
	registerFn      func(ctx context.Context, req models.RegisterRequest) (models.TokenResponse, error)
	loginFn         func(ctx context.Context, req models.LoginRequest) (models.TokenResponse, error)
	logoutFn        func(ctx context.Context, tokenID int64) error
	updateProfileFn func(ctx context.Context, memberID int64, req models.ProfileUpdateRequest) (models.MemberResponse, error)
}

func (m *mockAuthService) Authenticate(ctx context.Context, tokenKey string) (models.Member, models.AuthToken, error) {
	if m.authenticateFn != nil {
		return m.authenticateFn(ctx, tokenKey)
	}
	return models.Member{}, models.AuthToken{}, nil
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.TokenResponse, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, req)
	}
	return models.TokenResponse{}, nil
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.TokenResponse, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, req)
	}
	return models.TokenResponse{}, nil
}

func (m *mockAuthService) Logout(ctx context.Context, tokenID int64) error {
	if m.logoutFn != nil {
		return m.logoutFn(ctx, tokenID)
	}
	return nil
}

func (m *mockAuthService) UpdateProfile(ctx context.Context, memberID int64, req models.ProfileUpdateRequest) (models.MemberResponse, error) {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(ctx, memberID, req)
	}
	return models.MemberResponse{}, nil
}

// ─────────────────────────────────────────────
// Mock: service.ChatService
// ─────────────────────────────────────────────

type mockChatService struct {
	postMessageFn  func(ctx context.Context, author models.Member, req models.PostMessageRequest) (models.ChatMessageResponse, error)
	listMessagesFn func(ctx context.Context, offset, limit int64) ([]models.ChatMessageResponse, error)
}

func (m *mockChatService) PostMessage(ctx context.Context, author models.Member, req models.PostMessageRequest) (models.ChatMessageResponse, error) {
	if m.postMessageFn != nil {
		return m.postMessageFn(ctx, author, req)
	}
	return models.ChatMessageResponse{}, nil
}

func (m *mockChatService) ListMessages(ctx context.Context, offset, limit int64) ([]models.ChatMessageResponse, error) {
	if m.listMessagesFn != nil {
		return m.listMessagesFn(ctx, offset, limit)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Helper
// ─────────────────────────────────────────────

func newTestHandler(auth *mockAuthService, chat *mockChatService) *Handler {
	if auth == nil {
		auth = &mockAuthService{}
	}
	if chat == nil {
		chat = &mockChatService{}
	}
	return &Handler{
		services: &service.Services{AuthService: auth, ChatService: chat},
		logger:   logger.Nop(),
	}
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_ReturnsNonNil(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())

	require.NotNil(t, h)
}

func TestNewHandler_StoresServices(t *testing.T) {
	svc := &service.Services{}
	h := NewHandler(svc, logger.Nop())

	assert.Equal(t, svc, h.services)
}

func TestNewHandler_StoresLogger(t *testing.T) {
	log := logger.Nop()
	h := NewHandler(&service.Services{}, log)

	assert.Equal(t, log, h.logger)
}
