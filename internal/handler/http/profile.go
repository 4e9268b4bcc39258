package http

import (
	"encoding/json"
	"net/http"

	"github.com/asemenov/go-chat-backend/internal/app"
	"github.com/asemenov/go-chat-backend/internal/logger"
	"github.com/asemenov/go-chat-backend/internal/utils"
	"github.com/asemenov/go-chat-backend/models"
)

// getProfile returns the authenticated member's own public view. The
// member was already loaded by the auth middleware, so no extra store
// round-trip is needed.
func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	member, ok := utils.MemberFromContext(r.Context())
	if !ok {
		log.Error().Msg("no member in context on protected route")
		utils.WriteJSON(w, models.ErrorResponse{Detail: app.MsgInternalServerError}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, member.PublicView(), http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	member, ok := utils.MemberFromContext(ctx)
	if !ok {
		log.Error().Msg("no member in context on protected route")
		utils.WriteJSON(w, models.ErrorResponse{Detail: app.MsgInternalServerError}, http.StatusInternalServerError)
		return
	}

	var req models.ProfileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Detail: app.MsgInvalidJSON}, http.StatusBadRequest)
		return
	}

	resp, err := h.services.AuthService.UpdateProfile(ctx, member.MemberID, req)
	if err != nil {
		log.Err(err).Int64("id", member.MemberID).Msg("profile update failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
