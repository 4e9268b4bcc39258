// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Semenov

package http

import (
	"errors"
	"net/http"

	"github.com/asemenov/go-chat-backend/internal/app"
	"github.com/asemenov/go-chat-backend/internal/service"
	"github.com/asemenov/go-chat-backend/internal/store"
	"github.com/asemenov/go-chat-backend/internal/utils"
	"github.com/asemenov/go-chat-backend/models"
)

// writeAuthError writes a 401 rejection with the mandatory challenge
// header advertising the expected scheme and a `{detail}` JSON body.
func writeAuthError(w http.ResponseWriter, detail string) {
	w.Header().Set("WWW-Authenticate", tokenScheme)
	utils.WriteJSON(w, models.ErrorResponse{Detail: detail}, http.StatusUnauthorized)
}

// writeServiceError maps an error returned by the service layer onto the
// uniform error body of the API.
//
// The mapping follows the failure taxonomy of the service:
//   - [*service.ValidationError] → 400 with per-field messages.
//   - [store.ErrNameAlreadyExists] → 400, reported as a field error on
//     "name" so clients can attach it to the input that caused it.
//   - [service.ErrEmptyUpdate] → 400 with a detail message.
//   - [service.ErrInvalidCredentials] → 401 with the deliberately vague
//     detail message (no challenge header: credentials were presented in
//     the body, not the Authorization header).
//   - anything else → 500 with a generic detail, never leaking internals.
func writeServiceError(w http.ResponseWriter, err error) {
	var validationErr *service.ValidationError

	switch {
	case errors.As(err, &validationErr):
		utils.WriteJSON(w, models.ErrorResponse{FieldErrors: validationErr.Fields}, http.StatusBadRequest)

	case errors.Is(err, store.ErrNameAlreadyExists):
		utils.WriteJSON(w, models.ErrorResponse{
			FieldErrors: map[string]string{"name": app.MsgNameTaken},
		}, http.StatusBadRequest)

	case errors.Is(err, service.ErrEmptyUpdate):
		utils.WriteJSON(w, models.ErrorResponse{Detail: app.MsgEmptyUpdate}, http.StatusBadRequest)

	case errors.Is(err, service.ErrInvalidCredentials):
		utils.WriteJSON(w, models.ErrorResponse{Detail: app.MsgInvalidCredentials}, http.StatusUnauthorized)

	default:
		utils.WriteJSON(w, models.ErrorResponse{Detail: app.MsgInternalServerError}, http.StatusInternalServerError)
	}
}
