package repositories

import (
	"context"
	"database/sql"
	"strings"

	"github.com/driveshare-capital/backend/internal/logger"
	"github.com/driveshare-capital/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// OfferingWriteRepository handles offering write operations.
type OfferingWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewOfferingWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *OfferingWriteRepository {
	return &OfferingWriteRepository{db: db, txGetter: txGetter}
}

func (r *OfferingWriteRepository) Save(ctx context.Context, off models.OfferingDB) error {
	query := `
		INSERT INTO offerings (offering_id, title, description, cars_count, shares_total, share_price, term_months, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`
	args := []any{off.OfferingID, off.Title, off.Description, off.CarsCount, off.SharesTotal, off.SharePrice, off.TermMonths, off.Status}

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

	return err
}

// OfferingReadRepository handles offering read operations.
type OfferingReadRepository struct {
	db *sqlx.DB
}

func NewOfferingReadRepository(db *sqlx.DB) *OfferingReadRepository {
	return &OfferingReadRepository{db: db}
}

// GetByID retrieves an offering, or nil when none exists.
func (r *OfferingReadRepository) GetByID(ctx context.Context, offeringID uuid.UUID) (*models.OfferingDB, error) {
	const query = `
		SELECT offering_id, title, description, cars_count, shares_total, share_price, term_months, status, created_at, updated_at
		FROM offerings
		WHERE offering_id = $1
	`

	var off models.OfferingDB
	err := r.db.GetContext(ctx, &off, query, offeringID)

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{offeringID},
		"result", off,
		"error", err,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &off, nil
}

// List returns offerings newest first, filtered by status when status is
// non-nil.
func (r *OfferingReadRepository) List(ctx context.Context, status *string) ([]models.OfferingDB, error) {
	const query = `
		SELECT offering_id, title, description, cars_count, shares_total, share_price, term_months, status, created_at, updated_at
		FROM offerings
		WHERE ($1::VARCHAR IS NULL OR status = $1)
		ORDER BY created_at DESC
	`

	var offerings []models.OfferingDB
	err := r.db.SelectContext(ctx, &offerings, query, status)

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{status},
		"result", len(offerings),
		"error", err,
	)

	return offerings, err
}
