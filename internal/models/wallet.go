package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCurrency is the currency every wallet is denominated in.
const DefaultCurrency = "USD"

// WalletDB represents a wallet row in the database.
// Exactly one wallet exists per user; it is created lazily on first credit.
type WalletDB struct {
	WalletID  uuid.UUID `json:"wallet_id" db:"wallet_id"`   // Unique wallet identifier
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // Identifier of the wallet's owner
	Balance   float64   `json:"balance" db:"balance"`       // Current balance; may be negative
	Currency  string    `json:"currency" db:"currency"`     // Currency code (USD)
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Timestamp when the wallet was created
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Timestamp of the last balance change
}
