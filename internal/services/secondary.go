package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/driveshare-capital/backend/internal/logger"
	"github.com/driveshare-capital/backend/internal/models"
	"github.com/google/uuid"
)

// SecondaryOrderWriter records secondary-market orders.
type SecondaryOrderWriter interface {
	Save(ctx context.Context, o models.SecondaryOrderDB) error
}

// SecondaryOrderReader reads the order book.
type SecondaryOrderReader interface {
	ListOpen(ctx context.Context, offeringID *uuid.UUID) ([]models.SecondaryOrderDB, error)
}

// SecondaryOrderService records buy/sell interest in offering shares. Orders
// are never matched or settled here; the book is a bulletin board.
type SecondaryOrderService struct {
	writeRepo SecondaryOrderWriter
	readRepo  SecondaryOrderReader
	notifier  Notifier
}

// NewSecondaryOrderService creates a new SecondaryOrderService.
func NewSecondaryOrderService(writeRepo SecondaryOrderWriter, readRepo SecondaryOrderReader, notifier Notifier) *SecondaryOrderService {
	return &SecondaryOrderService{writeRepo: writeRepo, readRepo: readRepo, notifier: notifier}
}

// Place records a new open order and notifies the placing user.
func (s *SecondaryOrderService) Place(ctx context.Context, userID, offeringID uuid.UUID, side string, shares int, pricePerShare float64) (*models.SecondaryOrderDB, error) {
	order := models.SecondaryOrderDB{
		OrderID:       uuid.New(),
		UserID:        userID,
		OfferingID:    offeringID,
		Side:          side,
		Shares:        shares,
		PricePerShare: pricePerShare,
		Status:        models.OrderOpen,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.writeRepo.Save(ctx, order); err != nil {
		logger.Log.Errorw("failed to save secondary order", "userID", userID, "offeringID", offeringID, "error", err)
		return nil, err
	}

	title := strings.ToUpper(side[:1]) + side[1:]
	s.notifier.Notify(ctx, userID, "Order Placed", fmt.Sprintf("%s %d shares at $%.2f", title, shares, pricePerShare))

	return &order, nil
}

// Book returns the open orders, optionally narrowed to one offering.
func (s *SecondaryOrderService) Book(ctx context.Context, offeringID *uuid.UUID) ([]models.SecondaryOrderDB, error) {
	orders, err := s.readRepo.ListOpen(ctx, offeringID)
	if err != nil {
		logger.Log.Errorw("failed to list order book", "error", err)
		return nil, err
	}
	return orders, nil
}
