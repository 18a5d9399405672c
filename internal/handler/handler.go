// Package handler exposes the stored products and their computed timeline
// layouts over HTTP. The only wire format is JSON layout data; rendering
// and styling belong to the frontend consuming it.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"pricetimeline/internal/domain"
	"pricetimeline/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler wires the HTTP API to the product and timeline services.
type Handler struct {
	productService  *service.ProductService
	timelineService *service.TimelineService
	logger          *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	productService *service.ProductService,
	timelineService *service.TimelineService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		productService:  productService,
		timelineService: timelineService,
		logger:          logger,
	}
}

// Routes builds the HTTP router
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(h.requestLogger)

	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.listProducts)
		r.Post("/", h.ingestProduct)
		r.Get("/{slug}", h.getProduct)
		r.Delete("/{slug}", h.deleteProduct)
		r.Get("/{slug}/timeline", h.getTimeline)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return r
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found"})
	case errors.Is(err, domain.ErrValidation):
		h.writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	default:
		h.logger.Error("Request failed", zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal_error"})
	}
}
