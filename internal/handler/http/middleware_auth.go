// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Semenov

package http

import (
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/asemenov/go-chat-backend/internal/app"
	"github.com/asemenov/go-chat-backend/internal/logger"
	"github.com/asemenov/go-chat-backend/internal/store"
	"github.com/asemenov/go-chat-backend/internal/utils"
	"github.com/asemenov/go-chat-backend/models"
)

// tokenScheme is the keyword expected in the Authorization header.
const tokenScheme = "Token"

// authenticate is an HTTP middleware that resolves the Authorization
// header into a member identity.
//
// It is installed globally and never rejects requests that carry no
// credentials: an absent or blank header leaves the request anonymous and
// delegates to the next handler, so public endpoints work unchanged.
// Protected routes additionally install [Handler.requireAuth], which
// rejects anonymous requests.
//
// A header that is present is parsed strictly:
//   - not valid UTF-8 → 401, undecodable header.
//   - not exactly "<scheme> <value>" with scheme equal to "Token"
//     (case-sensitive, single space) → 401, malformed header naming the
//     expected format.
//   - scheme present but value empty → 401, missing token.
//   - value does not resolve to a stored token → 401, invalid token.
//
// On success the resolved member and the exact token record that
// authenticated the request are stored in the context via
// [utils.ContextWithIdentity]; logout later deletes precisely that token.
//
// Every 401 carries a `WWW-Authenticate: Token` challenge and a JSON
// `{detail}` body.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if strings.TrimSpace(authHeader) == "" {
			// no credentials: proceed anonymously
			next.ServeHTTP(w, r)
			return
		}

		if !utf8.ValidString(authHeader) {
			log.Error().Msg("authorization header is not valid utf-8")
			writeAuthError(w, app.MsgAuthHeaderNotText)
			return
		}

		tokenKey, errMessage := tokenKeyFromAuthHeader(authHeader)
		if errMessage != "" {
			log.Error().Str("header", authHeader).Msg("authorization header rejected")
			writeAuthError(w, errMessage)
			return
		}

		ctx := r.Context()
		member, token, err := h.services.AuthService.Authenticate(ctx, tokenKey)
		if err != nil {
			if !errors.Is(err, store.ErrTokenNotFound) {
				log.Err(err).Msg("token lookup failed")
				utils.WriteJSON(w, models.ErrorResponse{Detail: app.MsgInternalServerError}, http.StatusInternalServerError)
				return
			}
			log.Error().Msg("presented token did not resolve to a member")
			writeAuthError(w, app.MsgInvalidToken)
			return
		}

		// Store the member and the authenticating token in the context so
		// downstream handlers can use them without a second lookup.
		ctx = utils.ContextWithIdentity(ctx, member, token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// tokenKeyFromAuthHeader extracts the token value from a raw
// "Authorization" header. The header is expected to follow the exact
// format:
//
//	Authorization: Token <value>
//
// It returns the extracted key, or a non-empty rejection message when
// the header does not match.
func tokenKeyFromAuthHeader(authHeader string) (string, string) {
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != tokenScheme {
		return "", app.MsgMalformedAuthHeader
	}

	tokenKey := strings.TrimSpace(parts[1])
	if tokenKey == "" {
		return "", app.MsgMissingToken
	}

	return tokenKey, ""
}

// requireAuth rejects requests that reached a protected route without an
// authenticated member in the context.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.MemberFromContext(r.Context()); !ok {
			logger.FromRequest(r).Error().Msg("unauthenticated request to protected route")
			writeAuthError(w, app.MsgNotAuthenticated)
			return
		}

		next.ServeHTTP(w, r)
	})
}
