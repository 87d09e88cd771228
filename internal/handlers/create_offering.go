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
)

// OfferingCreator defines the interface that the service must implement.
type OfferingCreator interface {
	Create(ctx context.Context, title string, description *string, carsCount, sharesTotal int, sharePrice float64, termMonths int) (*models.OfferingDB, error)
}

// CreateOfferingRequest represents the JSON body for creating an offering
// swagger:model CreateOfferingRequest
type CreateOfferingRequest struct {
	// Offering title
	// required: true
	// default: City Fleet 2026
	Title string `json:"title"`

	// Optional description
	Description *string `json:"description,omitempty"`

	// Number of cars in the pool
	// required: true
	// default: 10
	CarsCount int `json:"cars_count"`

	// Total shares; at least cars_count * 10
	// required: true
	// default: 100
	SharesTotal int `json:"shares_total"`

	// Price per share
	// required: true
	// default: 100.0
	SharePrice float64 `json:"share_price"`

	// Term in months
	// required: true
	// default: 36
	TermMonths int `json:"term_months"`
}

// CreateOfferingResponse represents a successful offering creation response
// swagger:model CreateOfferingResponse
type CreateOfferingResponse struct {
	// Identifier of the new offering
	ID string `json:"id"`
}

// NewCreateOfferingHandler returns an HTTP handler that creates an offering.
// @Summary Create offering
// @Description Creates a vehicle-pool offering. Ten shares represent one car, so shares_total must be at least cars_count * 10.
// @Tags offerings
// @Accept json
// @Produce json
// @Param request body handlers.CreateOfferingRequest true "Create Offering Request"
// @Success 201 {object} handlers.CreateOfferingResponse
// @Failure 400 {object} handlers.ErrorResponse "Validation failure"
// @Router /offerings [post]
func NewCreateOfferingHandler(svc OfferingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		w.Header().Set("Content-Type", "application/json")

		var req CreateOfferingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode create offering request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.Title == "" {
			logger.Log.Warnw("missing offering title")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Title is required"})
			return
		}
		if req.CarsCount < 1 || req.SharesTotal < models.SharesPerCar || req.SharePrice < 0 || req.TermMonths < 1 {
			logger.Log.Warnw("invalid offering fields",
				"carsCount", req.CarsCount, "sharesTotal", req.SharesTotal,
				"sharePrice", req.SharePrice, "termMonths", req.TermMonths)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid offering fields"})
			return
		}

		off, err := svc.Create(ctx, req.Title, req.Description, req.CarsCount, req.SharesTotal, req.SharePrice, req.TermMonths)
		if err != nil {
			if errors.Is(err, services.ErrSharesBelowFloor) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "shares_total must be at least cars_count * 10"})
				return
			}
			logger.Log.Errorw("failed to create offering", "title", req.Title, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateOfferingResponse{ID: off.OfferingID.String()})
	}
}

// RegisterCreateOfferingHandler registers routes for creating offerings
func RegisterCreateOfferingHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/offerings", h)
}
