package services

import (
	"context"

	"github.com/driveshare-capital/backend/internal/logger"
	"github.com/driveshare-capital/backend/internal/models"
	"github.com/google/uuid"
)

// Notifier delivers user notifications. Delivery is best effort: implementers
// log failures and never return them.
type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, title, message string)
}

// NotificationLister reads stored notifications.
type NotificationLister interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.NotificationDB, error)
}

// NotificationService serves the user's notification inbox.
type NotificationService struct {
	readRepo NotificationLister
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(readRepo NotificationLister) *NotificationService {
	return &NotificationService{readRepo: readRepo}
}

// ListByUser returns the user's notifications, newest first.
func (s *NotificationService) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.NotificationDB, error) {
	notifications, err := s.readRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list notifications", "userID", userID, "error", err)
		return nil, err
	}
	return notifications, nil
}
