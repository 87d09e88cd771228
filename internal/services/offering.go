package services

import (
	"context"
	"errors"
	"time"

	"github.com/driveshare-capital/backend/internal/logger"
	"github.com/driveshare-capital/backend/internal/models"
	"github.com/google/uuid"
)

var (
	// ErrOfferingNotFound is returned when the referenced offering does not exist.
	ErrOfferingNotFound = errors.New("offering not found")
	// ErrSharesBelowFloor is returned when shares_total is less than
	// cars_count times the per-car share count.
	ErrSharesBelowFloor = errors.New("shares_total must be at least cars_count * 10")
)

// OfferingWriter persists offerings.
type OfferingWriter interface {
	Save(ctx context.Context, off models.OfferingDB) error
}

// OfferingReader reads offerings.
type OfferingReader interface {
	GetByID(ctx context.Context, offeringID uuid.UUID) (*models.OfferingDB, error) // Returns the offering, or nil when none exists
	List(ctx context.Context, status *string) ([]models.OfferingDB, error)         // Lists offerings, optionally by status
}

// OfferingService manages the vehicle-pool offerings investors buy into.
type OfferingService struct {
	writeRepo OfferingWriter
	readRepo  OfferingReader
}

// NewOfferingService creates a new OfferingService.
func NewOfferingService(writeRepo OfferingWriter, readRepo OfferingReader) *OfferingService {
	return &OfferingService{writeRepo: writeRepo, readRepo: readRepo}
}

// Create validates and persists a new offering. Ten shares represent one car,
// so shares_total below cars_count*10 is rejected.
func (s *OfferingService) Create(ctx context.Context, title string, description *string, carsCount, sharesTotal int, sharePrice float64, termMonths int) (*models.OfferingDB, error) {
	if sharesTotal < carsCount*models.SharesPerCar {
		return nil, ErrSharesBelowFloor
	}

	now := time.Now().UTC()
	off := models.OfferingDB{
		OfferingID:  uuid.New(),
		Title:       title,
		Description: description,
		CarsCount:   carsCount,
		SharesTotal: sharesTotal,
		SharePrice:  sharePrice,
		TermMonths:  termMonths,
		Status:      models.OfferingOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.writeRepo.Save(ctx, off); err != nil {
		logger.Log.Errorw("failed to save offering", "title", title, "error", err)
		return nil, err
	}

	return &off, nil
}

// List returns offerings, optionally filtered by status.
func (s *OfferingService) List(ctx context.Context, status *string) ([]models.OfferingDB, error) {
	offerings, err := s.readRepo.List(ctx, status)
	if err != nil {
		logger.Log.Errorw("failed to list offerings", "error", err)
		return nil, err
	}
	return offerings, nil
}
