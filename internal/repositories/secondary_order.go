package repositories

import (
	"context"
	"strings"

	"github.com/driveshare-capital/backend/internal/logger"
	"github.com/driveshare-capital/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// SecondaryOrderWriteRepository records secondary-market orders.
type SecondaryOrderWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewSecondaryOrderWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *SecondaryOrderWriteRepository {
	return &SecondaryOrderWriteRepository{db: db, txGetter: txGetter}
}

func (r *SecondaryOrderWriteRepository) Save(ctx context.Context, o models.SecondaryOrderDB) error {
	query := `
		INSERT INTO secondary_orders (order_id, user_id, offering_id, side, shares, price_per_share, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
	`
	args := []any{o.OrderID, o.UserID, o.OfferingID, o.Side, o.Shares, o.PricePerShare, o.Status}

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

// SecondaryOrderReadRepository handles order-book reads.
type SecondaryOrderReadRepository struct {
	db *sqlx.DB
}

func NewSecondaryOrderReadRepository(db *sqlx.DB) *SecondaryOrderReadRepository {
	return &SecondaryOrderReadRepository{db: db}
}

// ListOpen returns open orders newest first, filtered by offering when
// offeringID is non-nil.
func (r *SecondaryOrderReadRepository) ListOpen(ctx context.Context, offeringID *uuid.UUID) ([]models.SecondaryOrderDB, error) {
	const query = `
		SELECT order_id, user_id, offering_id, side, shares, price_per_share, status, created_at
		FROM secondary_orders
		WHERE status = $1 AND ($2::UUID IS NULL OR offering_id = $2)
		ORDER BY created_at DESC
	`

	var orders []models.SecondaryOrderDB
	err := r.db.SelectContext(ctx, &orders, query, models.OrderOpen, offeringID)

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{offeringID},
		"result", len(orders),
		"error", err,
	)

	return orders, err
}
