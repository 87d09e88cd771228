package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/driveshare-capital/backend/internal/logger"
	"github.com/driveshare-capital/backend/internal/models"
	"github.com/google/uuid"
)

// OrderBookReader defines the interface that the service must implement.
type OrderBookReader interface {
	Book(ctx context.Context, offeringID *uuid.UUID) ([]models.SecondaryOrderDB, error)
}

// NewOrderBookHandler returns an HTTP handler serving the open order book.
// @Summary Order book
// @Description Lists open secondary-market orders, optionally for one offering.
// @Tags secondary
// @Produce json
// @Param offering_id query string false "Filter by offering"
// @Success 200 {array} models.SecondaryOrderDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid offering id"
// @Router /secondary/book [get]
func NewOrderBookHandler(svc OrderBookReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		w.Header().Set("Content-Type", "application/json")

		var offeringID *uuid.UUID
		if v := r.URL.Query().Get("offering_id"); v != "" {
			id, err := uuid.Parse(v)
			if err != nil {
				logger.Log.Warnw("invalid offering id", "offeringID", v)
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid offering_id"})
				return
			}
			offeringID = &id
		}

		orders, err := svc.Book(ctx, offeringID)
		if err != nil {
			logger.Log.Errorw("failed to read order book", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}
		if orders == nil {
			orders = []models.SecondaryOrderDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(orders)
	}
}

// RegisterOrderBookHandler registers routes for the order book
func RegisterOrderBookHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/secondary/book", h)
}
