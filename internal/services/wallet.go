package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/driveshare-capital/backend/internal/logger"
	"github.com/driveshare-capital/backend/internal/models"
	"github.com/google/uuid"
)

// defaultTransactionLimit caps history reads when the caller asks for no
// particular page size.
const defaultTransactionLimit = 50

// InstalmentWriter records paid instalments.
type InstalmentWriter interface {
	Save(ctx context.Context, ins models.InstalmentDB) error
}

// TransactionReader reads the transaction log.
type TransactionReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.TransactionDB, error)
}

// WalletService exposes the wallet-facing boundary operations on top of the
// ledger: top-ups, instalment payments, the wallet view and its history.
type WalletService struct {
	ledger         WalletCreditor
	readRepo       WalletReader
	instalmentRepo InstalmentWriter
	txnRepo        TransactionReader
	notifier       Notifier
}

// NewWalletService creates a new WalletService.
func NewWalletService(
	ledger WalletCreditor,
	readRepo WalletReader,
	instalmentRepo InstalmentWriter,
	txnRepo TransactionReader,
	notifier Notifier,
) *WalletService {
	return &WalletService{
		ledger:         ledger,
		readRepo:       readRepo,
		instalmentRepo: instalmentRepo,
		txnRepo:        txnRepo,
		notifier:       notifier,
	}
}

// TopUp credits the absolute amount to the user's wallet and returns the new
// balance.
func (s *WalletService) TopUp(ctx context.Context, userID uuid.UUID, amount float64) (float64, error) {
	balance, err := s.ledger.Credit(ctx, userID, math.Abs(amount), models.KindTopUp, nil, nil)
	if err != nil {
		logger.Log.Errorw("failed to top up wallet", "userID", userID, "amount", amount, "error", err)
		return 0, err
	}

	s.notifier.Notify(ctx, userID, "Wallet Top-up", fmt.Sprintf("+$%.2f added to your wallet", amount))

	return balance, nil
}

// PayInstalment records a paid instalment for the current calendar month and
// debits the wallet. The debit may push the balance below zero; that is a
// legal ledger state, not an error.
func (s *WalletService) PayInstalment(ctx context.Context, userID, investmentID uuid.UUID, amount float64) (float64, error) {
	ins := models.InstalmentDB{
		InstalmentID: uuid.New(),
		UserID:       userID,
		InvestmentID: investmentID,
		Amount:       amount,
		DueMonth:     int(time.Now().UTC().Month()),
		Paid:         true,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.instalmentRepo.Save(ctx, ins); err != nil {
		logger.Log.Errorw("failed to save instalment", "userID", userID, "investmentID", investmentID, "error", err)
		return 0, err
	}

	ref := investmentID.String()
	balance, err := s.ledger.Credit(ctx, userID, -math.Abs(amount), models.KindInstalmentPayment, &ref, nil)
	if err != nil {
		logger.Log.Errorw("failed to debit instalment", "userID", userID, "investmentID", investmentID, "amount", amount, "error", err)
		return 0, err
	}

	s.notifier.Notify(ctx, userID, "Instalment Paid", fmt.Sprintf("Payment of $%.2f recorded", amount))

	return balance, nil
}

// GetWallet returns the user's wallet, or a zero-balance default when none
// exists yet. The default is never persisted; only credit paths create
// wallets.
func (s *WalletService) GetWallet(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error) {
	wallet, err := s.readRepo.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get wallet", "userID", userID, "error", err)
		return nil, err
	}
	if wallet == nil {
		return &models.WalletDB{
			UserID:   userID,
			Balance:  0,
			Currency: models.DefaultCurrency,
		}, nil
	}
	return wallet, nil
}

// ListTransactions returns the user's transaction log, newest first.
func (s *WalletService) ListTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]models.TransactionDB, error) {
	if limit <= 0 {
		limit = defaultTransactionLimit
	}

	transactions, err := s.txnRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		logger.Log.Errorw("failed to list transactions", "userID", userID, "error", err)
		return nil, err
	}
	return transactions, nil
}
