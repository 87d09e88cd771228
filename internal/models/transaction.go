package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Transaction kinds. Every wallet balance change is justified by exactly one
// transaction of one of these kinds.
const (
	KindTopUp              = "topup"
	KindInstalmentPayment  = "instalment_payment"
	KindRentalDistribution = "rental_distribution"
	KindExitPayout         = "exit_payout"
	KindTradeSettlement    = "trade_settlement"
)

// Meta holds optional structured context attached to a transaction
// (offering id, month, per-share rate and the like). Stored as JSONB.
type Meta map[string]any

// Value implements driver.Valuer for JSONB columns.
func (m Meta) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for JSONB columns.
func (m *Meta) Scan(src any) error {
	if src == nil {
		*m = nil
		return nil
	}
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("models: cannot scan %T into Meta", src)
	}
	return json.Unmarshal(b, m)
}

// TransactionDB represents an immutable ledger entry. Rows are appended once
// and never updated or deleted.
type TransactionDB struct {
	TransactionID uuid.UUID `json:"transaction_id" db:"transaction_id"` // Unique transaction identifier
	UserID        uuid.UUID `json:"user_id" db:"user_id"`               // Owner of the wallet that changed
	Kind          string    `json:"kind" db:"kind"`                     // One of the Kind* constants
	Amount        float64   `json:"amount" db:"amount"`                 // Signed amount; negative for debits
	ReferenceID   *string   `json:"reference_id,omitempty" db:"reference_id"` // Originating entity (investment, distribution)
	Meta          Meta      `json:"meta,omitempty" db:"meta"`           // Optional structured context
	CreatedAt     time.Time `json:"created_at" db:"created_at"`         // Append timestamp
}

// TransactionEvent is the message published to Kafka for every ledger entry.
type TransactionEvent struct {
	TransactionID string  `json:"transaction_id"` // Unique identifier of the ledger entry
	UserID        string  `json:"user_id"`        // Owner of the wallet that changed
	Kind          string  `json:"kind"`           // Transaction kind
	Amount        float64 `json:"amount"`         // Signed amount
	ReferenceID   string  `json:"reference_id,omitempty"`
	Timestamp     int64   `json:"timestamp"` // Unix timestamp of the append
}
