package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/driveshare-capital/backend/internal/logger"
	"github.com/google/uuid"
)

// InstalmentPayer defines the interface that the service must implement.
type InstalmentPayer interface {
	PayInstalment(ctx context.Context, userID, investmentID uuid.UUID, amount float64) (float64, error)
}

// PayInstalmentRequest represents the JSON body for paying an instalment
// swagger:model PayInstalmentRequest
type PayInstalmentRequest struct {
	// Paying user
	// required: true
	UserID string `json:"user_id"`

	// Investment the instalment belongs to
	// required: true
	InvestmentID string `json:"investment_id"`

	// Instalment amount; the absolute value is debited
	// required: true
	// default: 50.0
	Amount float64 `json:"amount"`
}

// PayInstalmentResponse represents a successful instalment payment response
// swagger:model PayInstalmentResponse
type PayInstalmentResponse struct {
	// Operation status
	// default: ok
	Status string `json:"status"`

	// New wallet balance; may be negative
	Balance float64 `json:"balance"`
}

// NewPayInstalmentHandler returns an HTTP handler that records an instalment payment.
// @Summary Pay instalment
// @Description Records a paid instalment for the current month and debits the wallet. The balance may go negative.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.PayInstalmentRequest true "Pay Instalment Request"
// @Success 200 {object} handlers.PayInstalmentResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid user or investment id"
// @Router /instalments/pay [post]
func NewPayInstalmentHandler(svc InstalmentPayer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		w.Header().Set("Content-Type", "application/json")

		var req PayInstalmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode pay instalment request", "error", err)
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
		investmentID, err := uuid.Parse(req.InvestmentID)
		if err != nil {
			logger.Log.Warnw("invalid investment id", "investmentID", req.InvestmentID)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid investment_id"})
			return
		}

		balance, err := svc.PayInstalment(ctx, userID, investmentID, req.Amount)
		if err != nil {
			logger.Log.Errorw("failed to pay instalment", "userID", userID, "investmentID", investmentID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PayInstalmentResponse{Status: "ok", Balance: balance})
	}
}

// RegisterPayInstalmentHandler registers routes for instalment payments
func RegisterPayInstalmentHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/instalments/pay", h)
}
