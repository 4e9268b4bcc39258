package http

import (
	"net/http"

	"github.com/asemenov/go-chat-backend/internal/utils"
	"github.com/asemenov/go-chat-backend/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.authenticate)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// routes that require an authenticated member
	router.Group(func(r chi.Router) {
		r.Use(h.requireAuth)

		r.Post("/api/auth/logout", h.logout)

		r.Get("/api/profile", h.getProfile)
		r.Put("/api/profile", h.updateProfile)

		r.Get("/api/chat/messages", h.listMessages)
		r.Post("/api/chat/messages", h.postMessage)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	return router
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Detail: "not found"}, http.StatusNotFound)
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Detail: "method not allowed"}, http.StatusMethodNotAllowed)
}
