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

// UserWriteRepository handles user write operations.
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save upserts a user by email: inserts when new, otherwise refreshes name and
// role. xmax = 0 only on freshly inserted rows, which distinguishes create
// from update within the single statement.
func (r *UserWriteRepository) Save(ctx context.Context, name, email, role string) (*models.UserDB, bool, error) {
	query := `
		INSERT INTO users (user_id, name, email, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, TRUE, NOW(), NOW())
		ON CONFLICT (email) DO UPDATE
		SET name = EXCLUDED.name,
		    role = EXCLUDED.role,
		    updated_at = NOW()
		RETURNING user_id, name, email, role, is_active, created_at, updated_at, (xmax = 0) AS created
	`
	args := []any{name, email, role}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var row struct {
		models.UserDB
		Created bool `db:"created"`
	}
	err := sqlx.GetContext(ctx, executor, &row, query, uuid.New(), name, email, role)

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", row,
		"error", err,
	)

	if err != nil {
		return nil, false, err
	}
	return &row.UserDB, row.Created, nil
}

// UserReadRepository handles user read operations.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail retrieves a user by email, or nil when none exists.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, name, email, role, is_active, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"result", user,
		"error", err,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns users newest first, filtered by role when role is non-nil.
func (r *UserReadRepository) List(ctx context.Context, role *string) ([]models.UserDB, error) {
	const query = `
		SELECT user_id, name, email, role, is_active, created_at, updated_at
		FROM users
		WHERE ($1::VARCHAR IS NULL OR role = $1)
		ORDER BY created_at DESC
	`

	var users []models.UserDB
	err := r.db.SelectContext(ctx, &users, query, role)

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{role},
		"result", len(users),
		"error", err,
	)

	return users, err
}
