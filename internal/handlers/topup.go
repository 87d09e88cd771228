package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/driveshare-capital/backend/internal/logger"
	"github.com/google/uuid"
)

// WalletTopUpper defines the interface that the service must implement.
type WalletTopUpper interface {
	TopUp(ctx context.Context, userID uuid.UUID, amount float64) (float64, error)
}

// TopUpRequest represents the JSON body for topping up a wallet
// swagger:model TopUpRequest
type TopUpRequest struct {
	// User whose wallet is credited
	// required: true
	UserID string `json:"user_id"`

	// Amount; the absolute value is credited
	// required: true
	// default: 100.0
	Amount float64 `json:"amount"`
}

// TopUpResponse represents a successful top-up response
// swagger:model TopUpResponse
type TopUpResponse struct {
	// Operation status
	// default: ok
	Status string `json:"status"`

	// New wallet balance
	Balance float64 `json:"balance"`
}

// NewTopUpHandler returns an HTTP handler that credits a wallet top-up.
// @Summary Top up wallet
// @Description Credits the absolute amount to the user's wallet, creating the wallet when absent.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.TopUpRequest true "Top Up Request"
// @Success 200 {object} handlers.TopUpResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid user id"
// @Router /wallet/topup [post]
func NewTopUpHandler(svc WalletTopUpper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		w.Header().Set("Content-Type", "application/json")

		var req TopUpRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode top up request", "error", err)
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

		balance, err := svc.TopUp(ctx, userID, req.Amount)
		if err != nil {
			logger.Log.Errorw("failed to top up wallet", "userID", userID, "amount", req.Amount, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TopUpResponse{Status: "ok", Balance: balance})
	}
}

// RegisterTopUpHandler registers routes for wallet top-ups
func RegisterTopUpHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/wallet/topup", h)
}
