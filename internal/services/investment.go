package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/driveshare-capital/backend/internal/logger"
	"github.com/driveshare-capital/backend/internal/models"
	"github.com/google/uuid"
)

var (
	// ErrInvestmentNotFound is returned when the referenced investment does not exist.
	ErrInvestmentNotFound = errors.New("investment not found")
)

// InvestmentWriter persists investments.
type InvestmentWriter interface {
	Save(ctx context.Context, inv models.InvestmentDB) error
	SetStatus(ctx context.Context, investmentID uuid.UUID, status string) error // sql.ErrNoRows when absent
}

// InvestmentReader reads investments.
type InvestmentReader interface {
	GetByID(ctx context.Context, investmentID uuid.UUID) (*models.InvestmentDB, error) // Returns the investment, or nil when none exists
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.InvestmentDB, error)
	ListActiveByOffering(ctx context.Context, offeringID uuid.UUID) ([]models.InvestmentDB, error)
}

// InvestmentService manages investor positions in offerings.
type InvestmentService struct {
	writeRepo    InvestmentWriter
	readRepo     InvestmentReader
	offeringRepo OfferingReader
	ledger       WalletCreditor
	notifier     Notifier
}

// NewInvestmentService creates a new InvestmentService.
func NewInvestmentService(
	writeRepo InvestmentWriter,
	readRepo InvestmentReader,
	offeringRepo OfferingReader,
	ledger WalletCreditor,
	notifier Notifier,
) *InvestmentService {
	return &InvestmentService{
		writeRepo:    writeRepo,
		readRepo:     readRepo,
		offeringRepo: offeringRepo,
		ledger:       ledger,
		notifier:     notifier,
	}
}

// Create persists a new active investment after checking the offering exists,
// then notifies the investor.
func (s *InvestmentService) Create(ctx context.Context, userID, offeringID uuid.UUID, shares int, pledgeAmount, monthlyInstalment float64, months int) (*models.InvestmentDB, error) {
	off, err := s.offeringRepo.GetByID(ctx, offeringID)
	if err != nil {
		logger.Log.Errorw("failed to look up offering", "offeringID", offeringID, "error", err)
		return nil, err
	}
	if off == nil {
		return nil, ErrOfferingNotFound
	}

	now := time.Now().UTC()
	inv := models.InvestmentDB{
		InvestmentID:      uuid.New(),
		UserID:            userID,
		OfferingID:        offeringID,
		Shares:            shares,
		PledgeAmount:      pledgeAmount,
		MonthlyInstalment: monthlyInstalment,
		Months:            months,
		Status:            models.InvestmentActive,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.writeRepo.Save(ctx, inv); err != nil {
		logger.Log.Errorw("failed to save investment", "userID", userID, "offeringID", offeringID, "error", err)
		return nil, err
	}

	s.notifier.Notify(ctx, userID, "Investment Created", fmt.Sprintf("You pledged %d shares", shares))

	return &inv, nil
}

// ListByUser returns the user's investments, newest first.
func (s *InvestmentService) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.InvestmentDB, error) {
	investments, err := s.readRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list investments", "userID", userID, "error", err)
		return nil, err
	}
	return investments, nil
}

// Exit closes the investment and credits the payout. The payout formula is a
// placeholder valuation (90% of the position at a flat $100 per share,
// ignoring the offering's share_price) and stays until real valuation lands.
func (s *InvestmentService) Exit(ctx context.Context, investmentID uuid.UUID) (float64, error) {
	inv, err := s.readRepo.GetByID(ctx, investmentID)
	if err != nil {
		logger.Log.Errorw("failed to look up investment", "investmentID", investmentID, "error", err)
		return 0, err
	}
	if inv == nil {
		return 0, ErrInvestmentNotFound
	}

	if err := s.writeRepo.SetStatus(ctx, investmentID, models.InvestmentExited); err != nil {
		logger.Log.Errorw("failed to set investment status", "investmentID", investmentID, "error", err)
		return 0, err
	}

	payout := round2(float64(inv.Shares) * 0.9 * 100) // TODO: replace placeholder valuation with offering-priced payout

	ref := inv.InvestmentID.String()
	if _, err := s.ledger.Credit(ctx, inv.UserID, payout, models.KindExitPayout, &ref, nil); err != nil {
		logger.Log.Errorw("failed to credit exit payout", "investmentID", investmentID, "userID", inv.UserID, "payout", payout, "error", err)
		return 0, err
	}

	s.notifier.Notify(ctx, inv.UserID, "Exit Processed", fmt.Sprintf("Exit payout $%.2f credited", payout))

	return payout, nil
}
