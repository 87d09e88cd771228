package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/driveshare-capital/backend/internal/logger"
	"github.com/driveshare-capital/backend/internal/models"
)

// OfferingLister defines the interface that the service must implement.
type OfferingLister interface {
	List(ctx context.Context, status *string) ([]models.OfferingDB, error)
}

// NewListOfferingsHandler returns an HTTP handler listing offerings.
// @Summary List offerings
// @Description Lists offerings, optionally filtered by status.
// @Tags offerings
// @Produce json
// @Param status query string false "Filter by status (open, closed, fully_subscribed)"
// @Success 200 {array} models.OfferingDB
// @Router /offerings [get]
func NewListOfferingsHandler(svc OfferingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		w.Header().Set("Content-Type", "application/json")

		var status *string
		if v := r.URL.Query().Get("status"); v != "" {
			status = &v
		}

		offerings, err := svc.List(ctx, status)
		if err != nil {
			logger.Log.Errorw("failed to list offerings", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}
		if offerings == nil {
			offerings = []models.OfferingDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(offerings)
	}
}

// RegisterListOfferingsHandler registers routes for listing offerings
func RegisterListOfferingsHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/offerings", h)
}
