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

// DistributionRunner defines the interface that the service must implement.
type DistributionRunner interface {
	Run(ctx context.Context, offeringID uuid.UUID, month int, totalAmount float64) (*models.DistributionDB, int, error)
}

// RunDistributionRequest represents the JSON body for running a distribution
// swagger:model RunDistributionRequest
type RunDistributionRequest struct {
	// Offering whose income is distributed
	// required: true
	OfferingID string `json:"offering_id"`

	// Distribution month
	// required: true
	// default: 6
	Month int `json:"month"`

	// Total amount to distribute across all shares
	// required: true
	// default: 1000.0
	TotalAmount float64 `json:"total_amount"`
}

// RunDistributionResponse represents a successful distribution run
// swagger:model RunDistributionResponse
type RunDistributionResponse struct {
	// Operation status
	// default: ok
	Status string `json:"status"`

	// Identifier of the distribution record
	DistributionID string `json:"distribution_id"`

	// Unrounded per-share rate used for the run
	PerShare float64 `json:"per_share"`

	// Number of investments that received a credit
	CreditedInvestments int `json:"credited_investments"`
}

// NewRunDistributionHandler returns an HTTP handler that runs a monthly distribution.
// @Summary Run distribution
// @Description Distributes a month's rental income across the offering's active investments. A repeated run for the same offering and month is rejected.
// @Tags distributions
// @Accept json
// @Produce json
// @Param request body handlers.RunDistributionRequest true "Run Distribution Request"
// @Success 200 {object} handlers.RunDistributionResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request or offering without shares"
// @Failure 404 {object} handlers.ErrorResponse "Offering not found"
// @Failure 409 {object} handlers.ErrorResponse "Distribution already ran for this offering and month"
// @Router /distributions/run [post]
func NewRunDistributionHandler(svc DistributionRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		w.Header().Set("Content-Type", "application/json")

		var req RunDistributionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode run distribution request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		offeringID, err := uuid.Parse(req.OfferingID)
		if err != nil {
			logger.Log.Warnw("invalid offering id", "offeringID", req.OfferingID)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid offering_id"})
			return
		}

		dist, credited, err := svc.Run(ctx, offeringID, req.Month, req.TotalAmount)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrOfferingNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Offering not found"})
			case errors.Is(err, services.ErrNoShares):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Offering has no shares"})
			case errors.Is(err, services.ErrDistributionExists):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Distribution already exists for offering and month"})
			default:
				logger.Log.Errorw("failed to run distribution", "offeringID", offeringID, "month", req.Month, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RunDistributionResponse{
			Status:              "ok",
			DistributionID:      dist.DistributionID.String(),
			PerShare:            dist.PerShare,
			CreditedInvestments: credited,
		})
	}
}

// RegisterRunDistributionHandler registers routes for running distributions
func RegisterRunDistributionHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/distributions/run", h)
}
