package http

import (
	"encoding/json"
	"net/http"

	"github.com/asemenov/go-chat-backend/internal/app"
	"github.com/asemenov/go-chat-backend/internal/logger"
	"github.com/asemenov/go-chat-backend/internal/utils"
	"github.com/asemenov/go-chat-backend/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Detail: app.MsgInvalidJSON}, http.StatusBadRequest)
		return
	}

	resp, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		log.Err(err).Str("name", req.Name).Msg("member registration failed")
		writeServiceError(w, err)
		return
	}

	log.Debug().Int64("id", resp.Member.ID).Str("name", resp.Member.Name).Msg("member registered")

	utils.WriteJSON(w, resp, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Detail: app.MsgInvalidJSON}, http.StatusBadRequest)
		return
	}

	resp, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		log.Err(err).Str("name", req.Name).Msg("member login failed")
		writeServiceError(w, err)
		return
	}

	log.Debug().Int64("id", resp.Member.ID).Msg("member successfully logged in")

	utils.WriteJSON(w, resp, http.StatusOK)
}

// logout revokes the token that authenticated this request. The member's
// other tokens stay valid; a second logout with the same token fails at
// the authentication step because the token no longer resolves.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	token, ok := utils.AuthTokenFromContext(ctx)
	if !ok {
		// requireAuth guarantees an identity; a missing token is a wiring bug
		log.Error().Msg("no auth token in context on protected route")
		utils.WriteJSON(w, models.ErrorResponse{Detail: app.MsgInternalServerError}, http.StatusInternalServerError)
		return
	}

	if err := h.services.AuthService.Logout(ctx, token.TokenID); err != nil {
		log.Err(err).Int64("token_id", token.TokenID).Msg("logout failed")
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
