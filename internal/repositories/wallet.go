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

// WalletWriteRepository handles wallet write operations.
type WalletWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewWalletWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *WalletWriteRepository {
	return &WalletWriteRepository{db: db, txGetter: txGetter}
}

// Ensure performs an UPSERT: creates the wallet with a zero balance if not
// exists, otherwise leaves it untouched. The no-op update makes RETURNING
// yield the existing row.
func (r *WalletWriteRepository) Ensure(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error) {
	query := `
		INSERT INTO wallets (wallet_id, user_id, balance, currency, created_at, updated_at)
		VALUES ($1, $2, 0, $3, NOW(), NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET updated_at = wallets.updated_at
		RETURNING wallet_id, user_id, balance, currency, created_at, updated_at
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var wallet models.WalletDB
	err := sqlx.GetContext(ctx, executor, &wallet, query, uuid.New(), userID, models.DefaultCurrency)

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", wallet,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

// Increment adds a signed delta to the wallet balance in a single UPSERT,
// creating the wallet when absent. There is no lower bound on the balance:
// negative balances are a valid ledger state.
func (r *WalletWriteRepository) Increment(ctx context.Context, userID uuid.UUID, delta float64) (float64, error) {
	query := `
		INSERT INTO wallets (wallet_id, user_id, balance, currency, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET balance = wallets.balance + EXCLUDED.balance, updated_at = NOW()
		RETURNING balance
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var balance float64
	err := sqlx.GetContext(ctx, executor, &balance, query, uuid.New(), userID, delta, models.DefaultCurrency)

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, delta},
		"result", balance,
		"error", err,
	)

	return balance, err
}

// WalletReadRepository handles wallet read operations.
type WalletReadRepository struct {
	db *sqlx.DB
}

func NewWalletReadRepository(db *sqlx.DB) *WalletReadRepository {
	return &WalletReadRepository{db: db}
}

// GetByUserID retrieves the wallet for a given user, or nil when none exists.
func (r *WalletReadRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error) {
	const query = `
		SELECT wallet_id, user_id, balance, currency, created_at, updated_at
		FROM wallets
		WHERE user_id = $1
	`

	var wallet models.WalletDB
	err := r.db.GetContext(ctx, &wallet, query, userID)

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", wallet,
		"error", err,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &wallet, nil
}
