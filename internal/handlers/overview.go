package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/driveshare-capital/backend/internal/logger"
	"github.com/driveshare-capital/backend/internal/models"
)

// OverviewReader defines the interface that the service must implement.
type OverviewReader interface {
	Overview(ctx context.Context) (*models.OverviewDB, error)
}

// NewOverviewHandler returns an HTTP handler serving the admin overview.
// @Summary Admin overview
// @Description Returns platform counts and the total value locked across wallets.
// @Tags admin
// @Produce json
// @Success 200 {object} models.OverviewDB
// @Router /admin/overview [get]
func NewOverviewHandler(svc OverviewReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		w.Header().Set("Content-Type", "application/json")

		overview, err := svc.Overview(ctx)
		if err != nil {
			logger.Log.Errorw("failed to compute overview", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(overview)
	}
}

// RegisterOverviewHandler registers routes for the admin overview
func RegisterOverviewHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/admin/overview", h)
}
