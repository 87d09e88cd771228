package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/driveshare-capital/backend/internal/logger"
	"github.com/driveshare-capital/backend/internal/models"
	"github.com/driveshare-capital/backend/internal/services"
	"github.com/google/uuid"
)

// InvestmentCreator defines the interface that the service must implement.
type InvestmentCreator interface {
	Create(ctx context.Context, userID, offeringID uuid.UUID, shares int, pledgeAmount, monthlyInstalment float64, months int) (*models.InvestmentDB, error)
}

// CreateInvestmentRequest represents the JSON body for creating an investment
// swagger:model CreateInvestmentRequest
type CreateInvestmentRequest struct {
	// Investing user
	// required: true
	UserID string `json:"user_id"`

	// Offering being invested in
	// required: true
	OfferingID string `json:"offering_id"`

	// Number of shares pledged
	// required: true
	// default: 10
	Shares int `json:"shares"`

	// Total pledge amount
	// required: true
	// default: 1000.0
	PledgeAmount float64 `json:"pledge_amount"`

	// Monthly instalment amount
	// required: true
	// default: 50.0
	MonthlyInstalment float64 `json:"monthly_instalment"`

	// Instalment term in months
	// required: true
	// default: 36
	Months int `json:"months"`
}

// CreateInvestmentResponse represents a successful investment creation response
// swagger:model CreateInvestmentResponse
type CreateInvestmentResponse struct {
	// Identifier of the new investment
	ID string `json:"id"`
}

// NewCreateInvestmentHandler returns an HTTP handler that creates an investment.
// @Summary Create investment
// @Description Creates an active investment in an offering and notifies the investor.
// @Tags investments
// @Accept json
// @Produce json
// @Param request body handlers.CreateInvestmentRequest true "Create Investment Request"
// @Success 201 {object} handlers.CreateInvestmentResponse
// @Failure 400 {object} handlers.ErrorResponse "Validation failure"
// @Failure 404 {object} handlers.ErrorResponse "Offering not found"
// @Router /investments [post]
func NewCreateInvestmentHandler(svc InvestmentCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		w.Header().Set("Content-Type", "application/json")

		var req CreateInvestmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode create investment request", "error", err)
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
		if req.Shares < 1 || req.PledgeAmount < 0 || req.MonthlyInstalment < 0 || req.Months < 1 {
			logger.Log.Warnw("invalid investment fields",
				"shares", req.Shares, "pledgeAmount", req.PledgeAmount,
				"monthlyInstalment", req.MonthlyInstalment, "months", req.Months)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid investment fields"})
			return
		}

		inv, err := svc.Create(ctx, userID, offeringID, req.Shares, req.PledgeAmount, req.MonthlyInstalment, req.Months)
		if err != nil {
			if errors.Is(err, services.ErrOfferingNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Offering not found"})
				return
			}
			logger.Log.Errorw("failed to create investment", "userID", userID, "offeringID", offeringID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateInvestmentResponse{ID: inv.InvestmentID.String()})
	}
}

// RegisterCreateInvestmentHandler registers routes for creating investments
func RegisterCreateInvestmentHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/investments", h)
}
