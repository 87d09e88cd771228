package repositories

import (
	"context"
	"strings"

	"github.com/driveshare-capital/backend/internal/logger"
	"github.com/driveshare-capital/backend/internal/models"
	"github.com/jmoiron/sqlx"
)

// InstalmentWriteRepository records paid instalments.
type InstalmentWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewInstalmentWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *InstalmentWriteRepository {
	return &InstalmentWriteRepository{db: db, txGetter: txGetter}
}

func (r *InstalmentWriteRepository) Save(ctx context.Context, ins models.InstalmentDB) error {
	query := `
		INSERT INTO instalments (instalment_id, user_id, investment_id, amount, due_month, paid, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`
	args := []any{ins.InstalmentID, ins.UserID, ins.InvestmentID, ins.Amount, ins.DueMonth, ins.Paid}

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
