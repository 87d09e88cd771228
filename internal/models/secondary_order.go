package models

import (
	"time"

	"github.com/google/uuid"
)

// Secondary-market order sides.
const (
	OrderBuy  = "buy"
	OrderSell = "sell"
)

// Secondary-market order statuses. Orders are recorded only; nothing in this
// system transitions them to matched.
const (
	OrderOpen      = "open"
	OrderMatched   = "matched"
	OrderCancelled = "cancelled"
)

// SecondaryOrderDB represents a recorded buy/sell order for offering shares.
type SecondaryOrderDB struct {
	OrderID       uuid.UUID `json:"order_id" db:"order_id"`             // Unique order identifier
	UserID        uuid.UUID `json:"user_id" db:"user_id"`               // Placing user
	OfferingID    uuid.UUID `json:"offering_id" db:"offering_id"`       // Offering whose shares are traded
	Side          string    `json:"side" db:"side"`                     // buy or sell
	Shares        int       `json:"shares" db:"shares"`                 // Number of shares
	PricePerShare float64   `json:"price_per_share" db:"price_per_share"` // Limit price
	Status        string    `json:"status" db:"status"`                 // One of the Order* constants
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
