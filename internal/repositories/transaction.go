package repositories

import (
	"context"
	"strings"

	"github.com/driveshare-capital/backend/internal/logger"
	"github.com/driveshare-capital/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// TransactionWriteRepository appends rows to the transaction log. Rows are
// never updated or deleted.
type TransactionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTransactionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db, txGetter: txGetter}
}

func (r *TransactionWriteRepository) Save(ctx context.Context, tx models.TransactionDB) error {
	query := `
		INSERT INTO transactions (transaction_id, user_id, kind, amount, reference_id, meta, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`
	args := []any{tx.TransactionID, tx.UserID, tx.Kind, tx.Amount, tx.ReferenceID, tx.Meta}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if dbTx := r.txGetter(ctx); dbTx != nil {
			executor = dbTx
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

// TransactionReadRepository handles transaction log reads.
type TransactionReadRepository struct {
	db *sqlx.DB
}

func NewTransactionReadRepository(db *sqlx.DB) *TransactionReadRepository {
	return &TransactionReadRepository{db: db}
}

// ListByUser returns the user's transactions, newest first, capped at limit.
func (r *TransactionReadRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.TransactionDB, error) {
	const query = `
		SELECT transaction_id, user_id, kind, amount, reference_id, meta, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	var transactions []models.TransactionDB
	err := r.db.SelectContext(ctx, &transactions, query, userID, limit)

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, limit},
		"result", len(transactions),
		"error", err,
	)

	return transactions, err
}
