package models

// OverviewDB aggregates platform-wide counters for the admin overview. Not a
// table row; scanned from a single aggregate query.
type OverviewDB struct {
	Users       int64   `json:"users" db:"users"`
	Offerings   int64   `json:"offerings" db:"offerings"`
	Investments int64   `json:"investments" db:"investments"`
	WalletTVL   float64 `json:"wallet_tvl" db:"wallet_tvl"` // Sum of all wallet balances
}
