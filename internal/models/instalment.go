package models

import (
	"time"

	"github.com/google/uuid"
)

// InstalmentDB represents a recorded instalment payment against an investment.
type InstalmentDB struct {
	InstalmentID uuid.UUID `json:"instalment_id" db:"instalment_id"` // Unique instalment identifier
	UserID       uuid.UUID `json:"user_id" db:"user_id"`             // Paying user
	InvestmentID uuid.UUID `json:"investment_id" db:"investment_id"` // Investment being paid down
	Amount       float64   `json:"amount" db:"amount"`               // Paid amount
	DueMonth     int       `json:"due_month" db:"due_month"`         // Calendar month (1-12) the payment covers
	Paid         bool      `json:"paid" db:"paid"`                   // Always true for rows written by the pay path
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
