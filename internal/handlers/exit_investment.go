package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/driveshare-capital/backend/internal/logger"
	"github.com/driveshare-capital/backend/internal/services"
	"github.com/google/uuid"
)

// InvestmentExiter defines the interface that the service must implement.
type InvestmentExiter interface {
	Exit(ctx context.Context, investmentID uuid.UUID) (float64, error)
}

// ExitInvestmentRequest represents the JSON body for exiting an investment
// swagger:model ExitInvestmentRequest
type ExitInvestmentRequest struct {
	// Investment to exit
	// required: true
	InvestmentID string `json:"investment_id"`
}

// ExitInvestmentResponse represents a successful exit response
// swagger:model ExitInvestmentResponse
type ExitInvestmentResponse struct {
	// Operation status
	// default: ok
	Status string `json:"status"`

	// Payout credited to the wallet
	// default: 450.0
	Payout float64 `json:"payout"`
}

// NewExitInvestmentHandler returns an HTTP handler that exits an investment.
// @Summary Exit investment
// @Description Marks the investment exited and credits the payout to the investor's wallet.
// @Tags investments
// @Accept json
// @Produce json
// @Param request body handlers.ExitInvestmentRequest true "Exit Investment Request"
// @Success 200 {object} handlers.ExitInvestmentResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid investment id"
// @Failure 404 {object} handlers.ErrorResponse "Investment not found"
// @Router /investments/exit [post]
func NewExitInvestmentHandler(svc InvestmentExiter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		w.Header().Set("Content-Type", "application/json")

		var req ExitInvestmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode exit investment request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		investmentID, err := uuid.Parse(req.InvestmentID)
		if err != nil {
			logger.Log.Warnw("invalid investment id", "investmentID", req.InvestmentID)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid investment_id"})
			return
		}

		payout, err := svc.Exit(ctx, investmentID)
		if err != nil {
			if errors.Is(err, services.ErrInvestmentNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Investment not found"})
				return
			}
			logger.Log.Errorw("failed to exit investment", "investmentID", investmentID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ExitInvestmentResponse{Status: "ok", Payout: payout})
	}
}

// RegisterExitInvestmentHandler registers routes for exiting investments
func RegisterExitInvestmentHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/investments/exit", h)
}
