package services

import (
	"context"

	"github.com/driveshare-capital/backend/internal/logger"
	"github.com/driveshare-capital/backend/internal/models"
)

// StatsReader computes platform aggregates.
type StatsReader interface {
	Overview(ctx context.Context) (*models.OverviewDB, error)
}

// OverviewService serves the admin dashboard counters.
type OverviewService struct {
	statsRepo StatsReader
}

// NewOverviewService creates a new OverviewService.
func NewOverviewService(statsRepo StatsReader) *OverviewService {
	return &OverviewService{statsRepo: statsRepo}
}

// Overview returns platform counts and the total value locked across wallets,
// rounded to cents.
func (s *OverviewService) Overview(ctx context.Context) (*models.OverviewDB, error) {
	overview, err := s.statsRepo.Overview(ctx)
	if err != nil {
		logger.Log.Errorw("failed to compute overview", "error", err)
		return nil, err
	}

	overview.WalletTVL = round2(overview.WalletTVL)

	return overview, nil
}
