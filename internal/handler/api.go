// Package handler exposes the application state controller over HTTP.
// It is a thin presentation collaborator: every route decodes input,
// invokes one controller operation and writes the tagged result back as
// JSON with a status code derived from the result kind.
package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/prn-tf/mira-movil/internal/controller"
)

// APIHandler handles the JSON API.
type APIHandler struct {
	controller *controller.Controller
	logger     zerolog.Logger
}

// APIConfig contains configuration for the API handler.
type APIConfig struct {
	Controller *controller.Controller
	Logger     zerolog.Logger
}

// NewAPIHandler creates a new API handler.
func NewAPIHandler(cfg APIConfig) *APIHandler {
	return &APIHandler{
		controller: cfg.Controller,
		logger:     cfg.Logger.With().Str("handler", "api").Logger(),
	}
}

// Routes builds the HTTP handler for the whole API surface.
func (h *APIHandler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(h.requestLogger)

	r.Get("/health", h.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", h.handleLogin)
		r.Post("/auth/logout", h.handleLogout)
		r.Post("/auth/recover", h.handleRecover)

		r.Get("/state", h.handleState)
		r.Put("/state/screen", h.handleSetScreen)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.handleListUsers)
			r.Post("/", h.handleRegisterUser)
			r.Patch("/{id}", h.handleUpdateUser)
			r.Delete("/{id}", h.handleDeleteUser)
		})

		r.Route("/equipment", func(r chi.Router) {
			r.Get("/", h.handleListEquipment)
			r.Post("/", h.handleRegisterEquipment)
		})

		r.Route("/movements", func(r chi.Router) {
			r.Get("/", h.handleListMovements)
			r.Post("/", h.handleRegisterMovement)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Post("/", h.handleGenerateReport)
			r.Get("/{id}", h.handleDownloadReport)
		})
	})

	return r
}

// handleHealth handles health check requests.
func (h *APIHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// requestLogger logs one line per finished request.
func (h *APIHandler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		h.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
