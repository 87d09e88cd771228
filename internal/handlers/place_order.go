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

// OrderPlacer defines the interface that the service must implement.
type OrderPlacer interface {
	Place(ctx context.Context, userID, offeringID uuid.UUID, side string, shares int, pricePerShare float64) (*models.SecondaryOrderDB, error)
}

// PlaceOrderRequest represents the JSON body for placing a secondary-market order
// swagger:model PlaceOrderRequest
type PlaceOrderRequest struct {
	// Placing user
	// required: true
	UserID string `json:"user_id"`

	// Offering whose shares are traded
	// required: true
	OfferingID string `json:"offering_id"`

	// Order side, buy or sell
	// required: true
	// default: sell
	Side string `json:"side"`

	// Number of shares
	// required: true
	// default: 5
	Shares int `json:"shares"`

	// Limit price per share
	// required: true
	// default: 95.0
	PricePerShare float64 `json:"price_per_share"`
}

// PlaceOrderResponse represents a successful order placement response
// swagger:model PlaceOrderResponse
type PlaceOrderResponse struct {
	// Identifier of the new order
	ID string `json:"id"`
}

// NewPlaceOrderHandler returns an HTTP handler that records a secondary-market order.
// @Summary Place order
// @Description Records a buy or sell order for offering shares. Orders are never matched here.
// @Tags secondary
// @Accept json
// @Produce json
// @Param request body handlers.PlaceOrderRequest true "Place Order Request"
// @Success 201 {object} handlers.PlaceOrderResponse
// @Failure 400 {object} handlers.ErrorResponse "Validation failure"
// @Router /secondary/orders [post]
func NewPlaceOrderHandler(svc OrderPlacer) http.HandlerFunc {
	validSides := map[string]struct{}{
		models.OrderBuy:  {},
		models.OrderSell: {},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		w.Header().Set("Content-Type", "application/json")

		var req PlaceOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode place order request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		userID, err := uuid.Parse(req.UserID)
		if err != nil {
			logger.Log.Warnw("invalid user id", "userID", req.UserID)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid user_id"})
			return
		}
		offeringID, err := uuid.Parse(req.OfferingID)
		if err != nil {
			logger.Log.Warnw("invalid offering id", "offeringID", req.OfferingID)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid offering_id"})
			return
		}
		if _, ok := validSides[req.Side]; !ok {
			logger.Log.Warnw("invalid order side", "side", req.Side)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Side must be buy or sell"})
			return
		}
		if req.Shares < 1 || req.PricePerShare < 0 {
			logger.Log.Warnw("invalid order fields", "shares", req.Shares, "pricePerShare", req.PricePerShare)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid order fields"})
			return
		}

		order, err := svc.Place(ctx, userID, offeringID, req.Side, req.Shares, req.PricePerShare)
		if err != nil {
			logger.Log.Errorw("failed to place order", "userID", userID, "offeringID", offeringID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(PlaceOrderResponse{ID: order.OrderID.String()})
	}
}

// RegisterPlaceOrderHandler registers routes for placing orders
func RegisterPlaceOrderHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/secondary/orders", h)
}
