package repositories

import (
	"context"
	"strings"

	"github.com/driveshare-capital/backend/internal/logger"
	"github.com/driveshare-capital/backend/internal/models"
	"github.com/jmoiron/sqlx"
)

// DistributionWriteRepository records distribution runs.
type DistributionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewDistributionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *DistributionWriteRepository {
	return &DistributionWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts the distribution record. (offering_id, month) is unique, so a
// repeated run inserts nothing; the returned flag reports whether this call
// created the row.
func (r *DistributionWriteRepository) Save(ctx context.Context, dist models.DistributionDB) (bool, error) {
	query := `
		INSERT INTO distributions (distribution_id, offering_id, month, total_amount, per_share, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (offering_id, month) DO NOTHING
	`
	args := []any{dist.DistributionID, dist.OfferingID, dist.Month, dist.TotalAmount, dist.PerShare}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	res, err := executor.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
