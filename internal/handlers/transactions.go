package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/driveshare-capital/backend/internal/logger"
	"github.com/driveshare-capital/backend/internal/models"
	"github.com/google/uuid"
)

// TransactionLister defines the interface that the service must implement.
type TransactionLister interface {
	ListTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]models.TransactionDB, error)
}

// NewListTransactionsHandler returns an HTTP handler serving the wallet history.
// @Summary List wallet transactions
// @Description Lists the user's ledger entries, newest first.
// @Tags wallet
// @Produce json
// @Param user_id path string true "User ID"
// @Param limit query int false "Maximum entries to return (default 50)"
// @Success 200 {array} models.TransactionDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid user id or limit"
// @Router /wallet/{user_id}/transactions [get]
func NewListTransactionsHandler(svc TransactionLister) http.HandlerFunc {
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

		var limit int
		if v := r.URL.Query().Get("limit"); v != "" {
			limit, err = strconv.Atoi(v)
			if err != nil || limit < 1 {
				logger.Log.Warnw("invalid limit", "limit", v)
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid limit"})
				return
			}
		}

		transactions, err := svc.ListTransactions(ctx, userID, limit)
		if err != nil {
			logger.Log.Errorw("failed to list transactions", "userID", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}
		if transactions == nil {
			transactions = []models.TransactionDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(transactions)
	}
}

// RegisterListTransactionsHandler registers routes for the wallet history
func RegisterListTransactionsHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/wallet/{user_id}/transactions", h)
}
