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

// InvestmentWriteRepository handles investment write operations.
type InvestmentWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewInvestmentWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *InvestmentWriteRepository {
	return &InvestmentWriteRepository{db: db, txGetter: txGetter}
}

func (r *InvestmentWriteRepository) Save(ctx context.Context, inv models.InvestmentDB) error {
	query := `
		INSERT INTO investments (investment_id, user_id, offering_id, shares, pledge_amount, monthly_instalment, months, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`
	args := []any{inv.InvestmentID, inv.UserID, inv.OfferingID, inv.Shares, inv.PledgeAmount, inv.MonthlyInstalment, inv.Months, inv.Status}

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

// SetStatus updates the investment status. Returns sql.ErrNoRows when the
// investment does not exist.
func (r *InvestmentWriteRepository) SetStatus(ctx context.Context, investmentID uuid.UUID, status string) error {
	query := `
		UPDATE investments
		SET status = $2, updated_at = NOW()
		WHERE investment_id = $1
	`
	args := []any{investmentID, status}

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
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// InvestmentReadRepository handles investment read operations.
type InvestmentReadRepository struct {
	db *sqlx.DB
}

func NewInvestmentReadRepository(db *sqlx.DB) *InvestmentReadRepository {
	return &InvestmentReadRepository{db: db}
}

// GetByID retrieves an investment, or nil when none exists.
func (r *InvestmentReadRepository) GetByID(ctx context.Context, investmentID uuid.UUID) (*models.InvestmentDB, error) {
	const query = `
		SELECT investment_id, user_id, offering_id, shares, pledge_amount, monthly_instalment, months, status, created_at, updated_at
		FROM investments
		WHERE investment_id = $1
	`

	var inv models.InvestmentDB
	err := r.db.GetContext(ctx, &inv, query, investmentID)

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{investmentID},
		"result", inv,
		"error", err,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// ListByUser returns the user's investments, newest first.
func (r *InvestmentReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.InvestmentDB, error) {
	const query = `
		SELECT investment_id, user_id, offering_id, shares, pledge_amount, monthly_instalment, months, status, created_at, updated_at
		FROM investments
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var investments []models.InvestmentDB
	err := r.db.SelectContext(ctx, &investments, query, userID)

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(investments),
		"error", err,
	)

	return investments, err
}

// ListActiveByOffering returns the active investments of an offering. The
// distribution engine iterates exactly this set.
func (r *InvestmentReadRepository) ListActiveByOffering(ctx context.Context, offeringID uuid.UUID) ([]models.InvestmentDB, error) {
	const query = `
		SELECT investment_id, user_id, offering_id, shares, pledge_amount, monthly_instalment, months, status, created_at, updated_at
		FROM investments
		WHERE offering_id = $1 AND status = $2
		ORDER BY created_at
	`

	var investments []models.InvestmentDB
	err := r.db.SelectContext(ctx, &investments, query, offeringID, models.InvestmentActive)

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{offeringID},
		"result", len(investments),
		"error", err,
	)

	return investments, err
}
