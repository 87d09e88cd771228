package models

import (
	"time"

	"github.com/google/uuid"
)

// NotificationDB represents a message queued for a user. Delivery is
// fire-and-forget; the core never waits on it.
type NotificationDB struct {
	NotificationID uuid.UUID `json:"notification_id" db:"notification_id"` // Unique notification identifier
	UserID         uuid.UUID `json:"user_id" db:"user_id"`                 // Recipient
	Title          string    `json:"title" db:"title"`                     // Short subject line
	Message        string    `json:"message" db:"message"`                 // Body text
	Read           bool      `json:"read" db:"read"`                       // Read marker
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
