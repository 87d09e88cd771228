package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles.
const (
	RoleInvestor = "investor"
	RoleAdmin    = "admin"
)

// UserDB represents a user record in the database.
type UserDB struct {
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // Primary key
	Name      string    `json:"name" db:"name"`             // Display name
	Email     string    `json:"email" db:"email"`           // Unique email; creation upserts on it
	Role      string    `json:"role" db:"role"`             // investor or admin
	IsActive  bool      `json:"is_active" db:"is_active"`   // Soft-disable flag
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}
