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
	// ErrNoShares is returned when the offering has no shares to distribute over.
	ErrNoShares = errors.New("offering has no shares")
	// ErrDistributionExists is returned when a distribution already ran for the
	// same offering and month.
	ErrDistributionExists = errors.New("distribution already exists for offering and month")
)

// DistributionWriter records distribution runs.
type DistributionWriter interface {
	Save(ctx context.Context, dist models.DistributionDB) (bool, error) // Inserts the record; false when the (offering, month) pair already ran
}

// DistributionService spreads a month's rental income of one offering across
// its active investments, proportionally to shares held.
type DistributionService struct {
	offeringRepo     OfferingReader
	investmentRepo   InvestmentReader
	distributionRepo DistributionWriter
	ledger           WalletCreditor
	notifier         Notifier
}

// NewDistributionService creates a new DistributionService.
func NewDistributionService(
	offeringRepo OfferingReader,
	investmentRepo InvestmentReader,
	distributionRepo DistributionWriter,
	ledger WalletCreditor,
	notifier Notifier,
) *DistributionService {
	return &DistributionService{
		offeringRepo:     offeringRepo,
		investmentRepo:   investmentRepo,
		distributionRepo: distributionRepo,
		ledger:           ledger,
		notifier:         notifier,
	}
}

// Run distributes totalAmount across the offering's active investments for the
// given month. Each investment receives round(shares × per_share, 2); amounts
// that round to exactly zero produce no transaction. The rounding residual is
// accepted, never redistributed. The distribution record is written even when
// no investment qualifies for a credit.
//
// Run is expected to execute inside one DB transaction: either the record and
// every credit commit together, or none do.
func (s *DistributionService) Run(ctx context.Context, offeringID uuid.UUID, month int, totalAmount float64) (*models.DistributionDB, int, error) {
	off, err := s.offeringRepo.GetByID(ctx, offeringID)
	if err != nil {
		logger.Log.Errorw("failed to look up offering", "offeringID", offeringID, "error", err)
		return nil, 0, err
	}
	if off == nil {
		return nil, 0, ErrOfferingNotFound
	}
	if off.SharesTotal <= 0 {
		return nil, 0, ErrNoShares
	}

	perShare := totalAmount / float64(off.SharesTotal)

	dist := models.DistributionDB{
		DistributionID: uuid.New(),
		OfferingID:     offeringID,
		Month:          month,
		TotalAmount:    totalAmount,
		PerShare:       perShare,
		CreatedAt:      time.Now().UTC(),
	}

	// Insert before crediting: the unique (offering_id, month) key makes a
	// repeated run a no-op insert, and the request transaction discards the
	// record again if any later credit fails.
	created, err := s.distributionRepo.Save(ctx, dist)
	if err != nil {
		logger.Log.Errorw("failed to save distribution", "offeringID", offeringID, "month", month, "error", err)
		return nil, 0, err
	}
	if !created {
		return nil, 0, ErrDistributionExists
	}

	investments, err := s.investmentRepo.ListActiveByOffering(ctx, offeringID)
	if err != nil {
		logger.Log.Errorw("failed to list active investments", "offeringID", offeringID, "error", err)
		return nil, 0, err
	}

	credited := 0
	for _, inv := range investments {
		amount := round2(float64(inv.Shares) * perShare)
		if amount == 0 {
			continue
		}

		ref := inv.InvestmentID.String()
		meta := models.Meta{
			"offering_id": offeringID.String(),
			"month":       month,
			"per_share":   perShare,
		}
		if _, err := s.ledger.Credit(ctx, inv.UserID, amount, models.KindRentalDistribution, &ref, meta); err != nil {
			logger.Log.Errorw("failed to credit distribution", "investmentID", inv.InvestmentID, "userID", inv.UserID, "amount", amount, "error", err)
			return nil, 0, err
		}
		s.notifier.Notify(ctx, inv.UserID, "Monthly Distribution", fmt.Sprintf("$%.2f credited for month %d", amount, month))
		credited++
	}

	return &dist, credited, nil
}
