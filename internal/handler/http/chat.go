// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Semenov

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/asemenov/go-chat-backend/internal/app"
	"github.com/asemenov/go-chat-backend/internal/logger"
	"github.com/asemenov/go-chat-backend/internal/utils"
	"github.com/asemenov/go-chat-backend/models"
)

func (h *Handler) postMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	member, ok := utils.MemberFromContext(ctx)
	if !ok {
		log.Error().Msg("no member in context on protected route")
		utils.WriteJSON(w, models.ErrorResponse{Detail: app.MsgInternalServerError}, http.StatusInternalServerError)
		return
	}

	var req models.PostMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Detail: app.MsgInvalidJSON}, http.StatusBadRequest)
		return
	}

	resp, err := h.services.ChatService.PostMessage(ctx, member, req)
	if err != nil {
		log.Err(err).Int64("author_id", member.MemberID).Msg("posting message failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusCreated)
}

func (h *Handler) listMessages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	offset, limit, fieldErr := parsePagination(r)
	if fieldErr != nil {
		log.Error().Str("query", r.URL.RawQuery).Msg("invalid pagination parameters")
		utils.WriteJSON(w, models.ErrorResponse{FieldErrors: fieldErr}, http.StatusBadRequest)
		return
	}

	messages, err := h.services.ChatService.ListMessages(ctx, offset, limit)
	if err != nil {
		log.Err(err).Msg("listing messages failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, messages, http.StatusOK)
}

// parsePagination extracts the offset and limit query parameters.
//
// offset must be a non-negative integer and defaults to 0; limit must be
// a positive integer, with absence meaning unbounded (returned as -1).
// A parameter that is present but empty (`?offset=`) is rejected like any
// other non-numeric value, not defaulted. The first offending parameter
// is reported as a field error.
func parsePagination(r *http.Request) (offset, limit int64, fieldErr map[string]string) {
	offset, limit = 0, -1
	query := r.URL.Query()

	if query.Has("offset") {
		parsed, err := strconv.ParseInt(query.Get("offset"), 10, 64)
		if err != nil || parsed < 0 {
			return 0, 0, map[string]string{"offset": app.MsgOffsetParam}
		}
		offset = parsed
	}

	if query.Has("limit") {
		parsed, err := strconv.ParseInt(query.Get("limit"), 10, 64)
		if err != nil || parsed <= 0 {
			return 0, 0, map[string]string{"limit": app.MsgLimitParam}
		}
		limit = parsed
	}

	return offset, limit, nil
}
