package facades

import (
	"context"
	"time"

	"github.com/driveshare-capital/backend/internal/logger"
	"github.com/driveshare-capital/backend/internal/models"
	"github.com/google/uuid"
)

// NotificationStore persists notifications.
type NotificationStore interface {
	Save(ctx context.Context, n models.NotificationDB) error
}

// StoreNotifier implements the notification sink on top of the notification
// store. Delivery is fire-and-forget: writes happen outside the caller's DB
// transaction and a failed write never fails the operation that triggered it.
type StoreNotifier struct {
	store NotificationStore
}

// NewStoreNotifier creates a new StoreNotifier.
func NewStoreNotifier(store NotificationStore) *StoreNotifier {
	return &StoreNotifier{store: store}
}

// Notify records a notification for the user. Failures are logged and
// swallowed.
func (f *StoreNotifier) Notify(ctx context.Context, userID uuid.UUID, title, message string) {
	n := models.NotificationDB{
		NotificationID: uuid.New(),
		UserID:         userID,
		Title:          title,
		Message:        message,
		CreatedAt:      time.Now().UTC(),
	}

	if err := f.store.Save(ctx, n); err != nil {
		logger.Log.Errorw("failed to deliver notification", "userID", userID, "title", title, "error", err)
		return
	}

	logger.Log.Infow("notification delivered", "userID", userID, "title", title)
}
