package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"bairro-ads/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the booking use case and a logger for structured logging. Routes
// are registered on a chi.Router.
type Handler struct {
	svc    port.BookingUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.BookingUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/catalog", h.handleCatalog)
		r.Get("/availability", h.handleAvailability)

		r.Post("/sessions", h.handleStartSession)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", h.handleGetSession)
			r.Put("/placement", h.handlePlacement)
			r.Put("/period", h.handlePeriod)
			r.Put("/neighborhoods", h.handleNeighborhoods)
			r.Post("/neighborhoods/select-all", h.handleSelectAll)
			r.Put("/addon", h.handleAddon)
			r.Put("/creative", h.handleCreative)
			r.Post("/validate", h.handleValidate)
			r.Post("/publish", h.handlePublish)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
