package models

import (
	"time"

	"github.com/google/uuid"
)

// Investment statuses. defaulted is reachable only through manual
// intervention; no automated process drives it.
const (
	InvestmentActive    = "active"
	InvestmentExited    = "exited"
	InvestmentDefaulted = "defaulted"
)

// InvestmentDB represents a user's pledge of shares in an offering.
type InvestmentDB struct {
	InvestmentID      uuid.UUID `json:"investment_id" db:"investment_id"` // Unique investment identifier
	UserID            uuid.UUID `json:"user_id" db:"user_id"`             // Investing user
	OfferingID        uuid.UUID `json:"offering_id" db:"offering_id"`     // Offering the shares belong to
	Shares            int       `json:"shares" db:"shares"`               // Number of shares pledged
	PledgeAmount      float64   `json:"pledge_amount" db:"pledge_amount"` // Total pledged amount
	MonthlyInstalment float64   `json:"monthly_instalment" db:"monthly_instalment"`
	Months            int       `json:"months" db:"months"` // Instalment term in months
	Status            string    `json:"status" db:"status"` // One of the Investment* constants
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`
}
