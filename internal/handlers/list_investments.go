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

// InvestmentLister defines the interface that the service must implement.
type InvestmentLister interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.InvestmentDB, error)
}

// NewListInvestmentsHandler returns an HTTP handler listing a user's investments.
// @Summary List user investments
// @Description Lists the investments of one user, newest first.
// @Tags investments
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {array} models.InvestmentDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid user id"
// @Router /investments/user/{user_id} [get]
func NewListInvestmentsHandler(svc InvestmentLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		w.Header().Set("Content-Type", "application/json")

		userID, err := uuid.Parse(chi.URLParam(r, "user_id"))
		if err != nil {
			logger.Log.Warnw("invalid user id", "userID", chi.URLParam(r, "user_id"))
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid user_id"})
			return
		}

		investments, err := svc.ListByUser(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to list investments", "userID", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}
		if investments == nil {
			investments = []models.InvestmentDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(investments)
	}
}

// RegisterListInvestmentsHandler registers routes for listing user investments
func RegisterListInvestmentsHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/investments/user/{user_id}", h)
}
