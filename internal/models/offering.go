package models

import (
	"time"

	"github.com/google/uuid"
)

// SharesPerCar is the fixed share split: every vehicle in a pool is divided
// into exactly ten shares.
const SharesPerCar = 10

// Offering statuses.
const (
	OfferingOpen            = "open"
	OfferingClosed          = "closed"
	OfferingFullySubscribed = "fully_subscribed"
)

// OfferingDB represents a vehicle pool open for investment.
type OfferingDB struct {
	OfferingID  uuid.UUID `json:"offering_id" db:"offering_id"` // Unique offering identifier
	Title       string    `json:"title" db:"title"`             // Display title
	Description *string   `json:"description,omitempty" db:"description"`
	CarsCount   int       `json:"cars_count" db:"cars_count"`     // Number of vehicles in the pool
	SharesTotal int       `json:"shares_total" db:"shares_total"` // Total shares; at least cars_count * SharesPerCar
	SharePrice  float64   `json:"share_price" db:"share_price"`   // Price of one share
	TermMonths  int       `json:"term_months" db:"term_months"`   // Investment term
	Status      string    `json:"status" db:"status"`             // One of the Offering* constants
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
