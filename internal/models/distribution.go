package models

import (
	"time"

	"github.com/google/uuid"
)

// DistributionDB records one pooled rental-income payment fanned out across
// an offering's active investors. Immutable once written; the
// (offering_id, month) pair is unique and serves as the idempotency key for
// distribution runs.
type DistributionDB struct {
	DistributionID uuid.UUID `json:"distribution_id" db:"distribution_id"` // Unique distribution identifier
	OfferingID     uuid.UUID `json:"offering_id" db:"offering_id"`         // Offering the payment belongs to
	Month          int       `json:"month" db:"month"`                     // Distribution month
	TotalAmount    float64   `json:"total_amount" db:"total_amount"`       // Total paid into the pool
	PerShare       float64   `json:"per_share" db:"per_share"`             // total_amount / shares_total, unrounded
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
