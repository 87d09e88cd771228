package repositories

import (
	"context"
	"strings"

	"github.com/driveshare-capital/backend/internal/logger"
	"github.com/driveshare-capital/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// NotificationWriteRepository persists notifications. It deliberately takes no
// txGetter: notifications are written outside the request transaction so a
// failed delivery never rolls back a money mutation, and vice versa.
type NotificationWriteRepository struct {
	db *sqlx.DB
}

func NewNotificationWriteRepository(db *sqlx.DB) *NotificationWriteRepository {
	return &NotificationWriteRepository{db: db}
}

func (r *NotificationWriteRepository) Save(ctx context.Context, n models.NotificationDB) error {
	query := `
		INSERT INTO notifications (notification_id, user_id, title, message, read, created_at)
		VALUES ($1, $2, $3, $4, FALSE, NOW())
	`
	args := []any{n.NotificationID, n.UserID, n.Title, n.Message}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// NotificationReadRepository handles notification reads.
type NotificationReadRepository struct {
	db *sqlx.DB
}

func NewNotificationReadRepository(db *sqlx.DB) *NotificationReadRepository {
	return &NotificationReadRepository{db: db}
}

// ListByUser returns the user's notifications, newest first.
func (r *NotificationReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.NotificationDB, error) {
	const query = `
		SELECT notification_id, user_id, title, message, read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var notifications []models.NotificationDB
	err := r.db.SelectContext(ctx, &notifications, query, userID)

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(notifications),
		"error", err,
	)

	return notifications, err
}
