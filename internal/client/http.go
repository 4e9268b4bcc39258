// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Semenov

package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/asemenov/go-chat-backend/internal/config"
	"github.com/asemenov/go-chat-backend/internal/logger"
	"github.com/asemenov/go-chat-backend/models"
	"github.com/go-resty/resty/v2"
)

type httpAPIClient struct {
	client *resty.Client

	token string

	logger *logger.Logger
}

// NewAPIClient constructs an HTTP/REST implementation of [APIClient].
// It normalises and validates the base URL from cfg.BaseURL and configures
// the underlying HTTP client with the resolved base URL and request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewAPIClient(cfg *config.ClientConfig, logger *logger.Logger) (APIClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid client base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpAPIClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [APIClient]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpAPIClient) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [APIClient].
func (h *httpAPIClient) Token() string {
	return h.token
}

// Register implements [APIClient]. It POSTs the candidate credentials to
// POST /api/auth/register and stores the returned token via SetToken.
func (h *httpAPIClient) Register(ctx context.Context, req models.RegisterRequest) (models.TokenResponse, error) {
	var tokenResp models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&tokenResp).
		Post("/api/auth/register")
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}

	h.SetToken(tokenResp.Token)
	return tokenResp, nil
}

// Login implements [APIClient]. It POSTs the credentials to
// POST /api/auth/login and stores the returned token via SetToken. The
// server reuses an existing token when the member already holds one.
func (h *httpAPIClient) Login(ctx context.Context, req models.LoginRequest) (models.TokenResponse, error) {
	var tokenResp models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&tokenResp).
		Post("/api/auth/login")
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}

	h.SetToken(tokenResp.Token)
	return tokenResp, nil
}

// Logout implements [APIClient]. It POSTs to POST /api/auth/logout with the
// held token and clears it locally on success. The server revokes exactly
// this token; the member's other sessions stay valid.
func (h *httpAPIClient) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.token = ""
	return nil
}

// Profile implements [APIClient]. It GETs /api/profile.
func (h *httpAPIClient) Profile(ctx context.Context) (models.MemberResponse, error) {
	var member models.MemberResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&member).
		Get("/api/profile")
	if err != nil {
		return models.MemberResponse{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MemberResponse{}, err
	}

	return member, nil
}

// UpdateProfile implements [APIClient]. It PUTs the partial update to
// PUT /api/profile.
func (h *httpAPIClient) UpdateProfile(ctx context.Context, req models.ProfileUpdateRequest) (models.MemberResponse, error) {
	var member models.MemberResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&member).
		Put("/api/profile")
	if err != nil {
		return models.MemberResponse{}, fmt.Errorf("update profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MemberResponse{}, err
	}

	return member, nil
}

// SendMessage implements [APIClient]. It POSTs the message body to
// POST /api/chat/messages.
func (h *httpAPIClient) SendMessage(ctx context.Context, req models.PostMessageRequest) (models.ChatMessageResponse, error) {
	var message models.ChatMessageResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&message).
		Post("/api/chat/messages")
	if err != nil {
		return models.ChatMessageResponse{}, fmt.Errorf("send message request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ChatMessageResponse{}, err
	}

	return message, nil
}

// Messages implements [APIClient]. It GETs /api/chat/messages with the
// offset and limit query parameters; defaults (offset 0, non-positive
// limit meaning unbounded) are omitted from the query string.
func (h *httpAPIClient) Messages(ctx context.Context, offset, limit int64) ([]models.ChatMessageResponse, error) {
	var messages []models.ChatMessageResponse

	req := h.authedRequest(ctx).SetResult(&messages)
	if offset > 0 {
		req.SetQueryParam("offset", strconv.FormatInt(offset, 10))
	}
	if limit > 0 {
		req.SetQueryParam("limit", strconv.FormatInt(limit, 10))
	}

	resp, err := req.Get("/api/chat/messages")
	if err != nil {
		return nil, fmt.Errorf("messages request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return messages, nil
}

// authedRequest returns a request primed with the context and the
// Authorization header carrying the held token.
func (h *httpAPIClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.token != "" {
		req.SetHeader("Authorization", "Token "+h.token)
	}
	return req
}
