package services

import (
	"context"

	"github.com/driveshare-capital/backend/internal/logger"
	"github.com/driveshare-capital/backend/internal/models"
)

// UserWriter persists users.
type UserWriter interface {
	Save(ctx context.Context, name, email, role string) (*models.UserDB, bool, error) // Upserts by email; true when this call created the row
}

// UserReader reads users.
type UserReader interface {
	List(ctx context.Context, role *string) ([]models.UserDB, error) // Lists users, optionally by role
}

// UserService manages platform accounts. There is no authentication: accounts
// exist so wallets, investments and notifications have an owner.
type UserService struct {
	writeRepo UserWriter
	readRepo  UserReader
	ledger    WalletEnsurer
}

// NewUserService creates a new UserService.
func NewUserService(writeRepo UserWriter, readRepo UserReader, ledger WalletEnsurer) *UserService {
	return &UserService{writeRepo: writeRepo, readRepo: readRepo, ledger: ledger}
}

// Create upserts a user by email and provisions the wallet on first creation.
// The bool reports whether this call created the account.
func (s *UserService) Create(ctx context.Context, name, email, role string) (*models.UserDB, bool, error) {
	user, created, err := s.writeRepo.Save(ctx, name, email, role)
	if err != nil {
		logger.Log.Errorw("failed to save user", "email", email, "error", err)
		return nil, false, err
	}

	if created {
		if _, err := s.ledger.EnsureWallet(ctx, user.UserID); err != nil {
			logger.Log.Errorw("failed to ensure wallet for new user", "userID", user.UserID, "error", err)
			return nil, false, err
		}
	}

	return user, created, nil
}

// List returns users, optionally filtered by role.
func (s *UserService) List(ctx context.Context, role *string) ([]models.UserDB, error) {
	users, err := s.readRepo.List(ctx, role)
	if err != nil {
		logger.Log.Errorw("failed to list users", "error", err)
		return nil, err
	}
	return users, nil
}
