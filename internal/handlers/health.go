package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/driveshare-capital/backend/internal/logger"
)

// StorePinger defines only the methods needed by this handler.
type StorePinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse reports service liveness and store reachability.
// swagger:model HealthResponse
type HealthResponse struct {
	// Service name
	// default: DriveShare Capital API
	Name string `json:"name"`

	// Liveness status
	// default: ok
	Status string `json:"status"`

	// Server time, RFC 3339
	Time string `json:"time"`
}

// NewHealthHandler returns an HTTP handler reporting liveness and database
// reachability.
// @Summary Health check
// @Description Reports liveness and pings the database.
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse
// @Failure 503 {object} handlers.ErrorResponse "Database unavailable"
// @Router /health [get]
func NewHealthHandler(store StorePinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		w.Header().Set("Content-Type", "application/json")

		if err := store.PingContext(ctx); err != nil {
			logger.Log.Errorw("health check failed to ping store", "error", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Database unavailable"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(HealthResponse{
			Name:   "DriveShare Capital API",
			Status: "ok",
			Time:   time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// RegisterHealthHandler registers routes for the health check
func RegisterHealthHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/health", h)
}
