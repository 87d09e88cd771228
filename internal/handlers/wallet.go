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

// WalletGetter defines the interface that the service must implement.
type WalletGetter interface {
	GetWallet(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error)
}

// GetWalletResponse represents a wallet view. For users without a wallet the
// identifier is omitted and the balance is zero.
// swagger:model GetWalletResponse
type GetWalletResponse struct {
	// Wallet identifier; omitted for the zero-balance default
	WalletID string `json:"wallet_id,omitempty"`

	// Owning user
	UserID string `json:"user_id"`

	// Current balance; may be negative
	// default: 0.0
	Balance float64 `json:"balance"`

	// Currency code
	// default: USD
	Currency string `json:"currency"`
}

// NewGetWalletHandler returns an HTTP handler serving the wallet view.
// @Summary Get wallet
// @Description Returns the user's wallet, or a zero-balance default when none exists. The default is never persisted.
// @Tags wallet
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} handlers.GetWalletResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid user id"
// @Router /wallet/{user_id} [get]
func NewGetWalletHandler(svc WalletGetter) http.HandlerFunc {
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

		wallet, err := svc.GetWallet(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to get wallet", "userID", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		resp := GetWalletResponse{
			UserID:   wallet.UserID.String(),
			Balance:  wallet.Balance,
			Currency: wallet.Currency,
		}
		if wallet.WalletID != uuid.Nil {
			resp.WalletID = wallet.WalletID.String()
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}

// RegisterGetWalletHandler registers routes for the wallet view
func RegisterGetWalletHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/wallet/{user_id}", h)
}
