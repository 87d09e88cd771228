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

// NotificationListReader defines the interface that the service must implement.
type NotificationListReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.NotificationDB, error)
}

// NewListNotificationsHandler returns an HTTP handler serving the notification inbox.
// @Summary List notifications
// @Description Lists the user's notifications, newest first.
// @Tags notifications
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {array} models.NotificationDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid user id"
// @Router /notifications/{user_id} [get]
func NewListNotificationsHandler(svc NotificationListReader) http.HandlerFunc {
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

		notifications, err := svc.ListByUser(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to list notifications", "userID", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}
		if notifications == nil {
			notifications = []models.NotificationDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(notifications)
	}
}

// RegisterListNotificationsHandler registers routes for the notification inbox
func RegisterListNotificationsHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/notifications/{user_id}", h)
}
