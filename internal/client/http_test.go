// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Semenov

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/asemenov/go-chat-backend/internal/config"
	"github.com/asemenov/go-chat-backend/internal/logger"
	"github.com/asemenov/go-chat-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPIClient(t *testing.T, serverURL string) *httpAPIClient {
	t.Helper()
	cfg := &config.ClientConfig{BaseURL: serverURL, RequestTimeout: 5 * time.Second}

	c, err := NewAPIClient(cfg, logger.Nop())
	require.NoError(t, err)
	return c.(*httpAPIClient)
}

// ── NewAPIClient ────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "full url kept", input: "http://localhost:8080", want: "http://localhost:8080"},
		{name: "scheme added when missing", input: "localhost:8080", want: "http://localhost:8080"},
		{name: "trailing slash trimmed", input: "http://localhost:8080/", want: "http://localhost:8080"},
		{name: "surrounding spaces trimmed", input: "  http://localhost:8080  ", want: "http://localhost:8080"},
		{name: "empty address rejected", input: "", wantErr: true},
		{name: "scheme without host rejected", input: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewAPIClient_RejectsBadBaseURL(t *testing.T) {
	cfg := &config.ClientConfig{BaseURL: "", RequestTimeout: time.Second}

	_, err := NewAPIClient(cfg, logger.Nop())

	require.Error(t, err)
}

// ── Register / Login ────────────────────────────────────────────────────────

func TestRegister_StoresReturnedToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/register", r.URL.Path)

		var req models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Name)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.TokenResponse{
			Token:  "fresh-token",
			Member: models.MemberResponse{ID: 1, Name: "alice"},
		})
	}))
	defer srv.Close()

	c := newTestAPIClient(t, srv.URL)
	got, err := c.Register(context.Background(), models.RegisterRequest{Name: "alice", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "fresh-token", got.Token)
	assert.Equal(t, "alice", got.Member.Name)
	assert.Equal(t, "fresh-token", c.Token())
}

func TestRegister_NameTaken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"field_errors":{"name":"a user with that name already exists"}}`))
	}))
	defer srv.Close()

	c := newTestAPIClient(t, srv.URL)
	_, err := c.Register(context.Background(), models.RegisterRequest{Name: "alice", Password: "secret1"})

	require.ErrorIs(t, err, ErrBadRequest)
	assert.Empty(t, c.Token())
}

func TestLogin_StoresReturnedToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.TokenResponse{Token: "reused-token"})
	}))
	defer srv.Close()

	c := newTestAPIClient(t, srv.URL)
	got, err := c.Login(context.Background(), models.LoginRequest{Name: "alice", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "reused-token", got.Token)
	assert.Equal(t, "reused-token", c.Token())
}

func TestLogin_BadCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("WWW-Authenticate", "Token")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"invalid credentials"}`))
	}))
	defer srv.Close()

	c := newTestAPIClient(t, srv.URL)
	_, err := c.Login(context.Background(), models.LoginRequest{Name: "alice", Password: "wrong"})

	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, c.Token())
}

// ── Logout ──────────────────────────────────────────────────────────────────

func TestLogout_SendsTokenAndClearsIt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/logout", r.URL.Path)
		assert.Equal(t, "Token session-token", r.Header.Get("Authorization"))

		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := newTestAPIClient(t, srv.URL)
	c.SetToken("session-token")

	require.NoError(t, c.Logout(context.Background()))
	assert.Empty(t, c.Token())
}

func TestLogout_ServerRejectsStaleToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"invalid token"}`))
	}))
	defer srv.Close()

	c := newTestAPIClient(t, srv.URL)
	c.SetToken("stale-token")

	err := c.Logout(context.Background())

	require.ErrorIs(t, err, ErrUnauthorized)
	// the token is kept so the caller can inspect or retry
	assert.Equal(t, "stale-token", c.Token())
}

// ── Profile ─────────────────────────────────────────────────────────────────

func TestProfile_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/profile", r.URL.Path)
		assert.Equal(t, "Token session-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.MemberResponse{ID: 7, Name: "alice"})
	}))
	defer srv.Close()

	c := newTestAPIClient(t, srv.URL)
	c.SetToken("session-token")

	got, err := c.Profile(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, "alice", got.Name)
}

func TestUpdateProfile_SendsOnlyProvidedFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/profile", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "bob", body["name"])
		assert.NotContains(t, body, "password")

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.MemberResponse{ID: 7, Name: "bob"})
	}))
	defer srv.Close()

	c := newTestAPIClient(t, srv.URL)
	c.SetToken("session-token")

	name := "bob"
	got, err := c.UpdateProfile(context.Background(), models.ProfileUpdateRequest{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, "bob", got.Name)
}

// ── Chat ────────────────────────────────────────────────────────────────────

func TestSendMessage_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/chat/messages", r.URL.Path)
		assert.Equal(t, "Token session-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.ChatMessageResponse{
			ID:     42,
			Author: models.MemberBrief{ID: 7, Name: "alice"},
			Text:   "hello everyone",
		})
	}))
	defer srv.Close()

	c := newTestAPIClient(t, srv.URL)
	c.SetToken("session-token")

	got, err := c.SendMessage(context.Background(), models.PostMessageRequest{Text: "hello everyone"})

	require.NoError(t, err)
	assert.Equal(t, int64(42), got.ID)
	assert.Equal(t, "alice", got.Author.Name)
}

func TestMessages_PaginationQueryParams(t *testing.T) {
	tests := []struct {
		name       string
		offset     int64
		limit      int64
		wantOffset string
		wantLimit  string
	}{
		{name: "defaults omit both params", offset: 0, limit: -1, wantOffset: "", wantLimit: ""},
		{name: "offset and limit forwarded", offset: 10, limit: 50, wantOffset: "10", wantLimit: "50"},
		{name: "limit alone", offset: 0, limit: 5, wantOffset: "", wantLimit: "5"},
		{name: "zero limit treated as unbounded", offset: 0, limit: 0, wantOffset: "", wantLimit: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/chat/messages", r.URL.Path)
				assert.Equal(t, tt.wantOffset, r.URL.Query().Get("offset"))
				assert.Equal(t, tt.wantLimit, r.URL.Query().Get("limit"))

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`[]`))
			}))
			defer srv.Close()

			c := newTestAPIClient(t, srv.URL)
			c.SetToken("session-token")

			got, err := c.Messages(context.Background(), tt.offset, tt.limit)

			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestMessages_DecodesList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":1,"author":{"id":7,"name":"alice"},"text":"first"},
			{"id":2,"author":{"id":8,"name":"bob"},"text":"second"}
		]`))
	}))
	defer srv.Close()

	c := newTestAPIClient(t, srv.URL)
	c.SetToken("session-token")

	got, err := c.Messages(context.Background(), 0, -1)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Text)
	assert.Equal(t, "bob", got[1].Author.Name)
}

// ── Error mapping ───────────────────────────────────────────────────────────

func TestMapHTTPError_StatusClasses(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "400", status: http.StatusBadRequest, wantErr: ErrBadRequest},
		{name: "401", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "404", status: http.StatusNotFound, wantErr: ErrNotFound},
		{name: "405", status: http.StatusMethodNotAllowed, wantErr: ErrMethodNotAllowed},
		{name: "500", status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"detail":"boom"}`))
			}))
			defer srv.Close()

			c := newTestAPIClient(t, srv.URL)
			_, err := c.Profile(context.Background())

			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), "boom")
		})
	}
}
