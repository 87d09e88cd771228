package repositories

import (
	"context"
	"strings"

	"github.com/driveshare-capital/backend/internal/logger"
	"github.com/driveshare-capital/backend/internal/models"
	"github.com/jmoiron/sqlx"
)

// StatsReadRepository computes platform-wide aggregates.
type StatsReadRepository struct {
	db *sqlx.DB
}

func NewStatsReadRepository(db *sqlx.DB) *StatsReadRepository {
	return &StatsReadRepository{db: db}
}

// Overview returns entity counts and the sum of all wallet balances in one
// round trip.
func (r *StatsReadRepository) Overview(ctx context.Context) (*models.OverviewDB, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM users)       AS users,
			(SELECT COUNT(*) FROM offerings)   AS offerings,
			(SELECT COUNT(*) FROM investments) AS investments,
			(SELECT COALESCE(SUM(balance), 0) FROM wallets) AS wallet_tvl
	`

	var overview models.OverviewDB
	err := r.db.GetContext(ctx, &overview, query)

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{},
		"result", overview,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &overview, nil
}
