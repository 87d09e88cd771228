package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/driveshare-capital/backend/internal/logger"
	"github.com/driveshare-capital/backend/internal/models"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// WalletWriter defines methods for mutating wallet rows.
type WalletWriter interface {
	Ensure(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error)            // Creates the wallet with zero balance if absent
	Increment(ctx context.Context, userID uuid.UUID, delta float64) (float64, error)   // Adds a signed delta, returns the new balance
}

// WalletReader defines methods for reading wallet rows.
type WalletReader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error) // Returns the wallet, or nil when none exists
}

// TransactionWriter appends ledger entries.
type TransactionWriter interface {
	Save(ctx context.Context, txn models.TransactionDB) error // Appends one immutable transaction row
}

// BalanceCache caches wallet balances.
type BalanceCache interface {
	Get(ctx context.Context, userID uuid.UUID) (float64, bool, error)    // Returns cached balance and whether it was present
	Set(ctx context.Context, userID uuid.UUID, balance float64) error    // Caches a balance
	Invalidate(ctx context.Context, userID uuid.UUID) error              // Drops the cached balance
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// LedgerService is the single money-mutation path: every balance change goes
// through Credit, which pairs the wallet increment with exactly one
// transaction row. Both writes share the caller's DB transaction.
type LedgerService struct {
	writeRepo   WalletWriter
	readRepo    WalletReader
	txnRepo     TransactionWriter
	cacheRepo   BalanceCache
	kafkaWriter KafkaWriter
}

// NewLedgerService creates a new LedgerService. cacheRepo and kafkaWriter may
// be nil; both are best-effort side channels.
func NewLedgerService(
	writeRepo WalletWriter,
	readRepo WalletReader,
	txnRepo TransactionWriter,
	cacheRepo BalanceCache,
	kafkaWriter KafkaWriter,
) *LedgerService {
	return &LedgerService{
		writeRepo:   writeRepo,
		readRepo:    readRepo,
		txnRepo:     txnRepo,
		cacheRepo:   cacheRepo,
		kafkaWriter: kafkaWriter,
	}
}

// WalletCreditor is the narrow view of the ledger that crediting services
// depend on.
type WalletCreditor interface {
	Credit(ctx context.Context, userID uuid.UUID, amount float64, kind string, referenceID *string, meta models.Meta) (float64, error)
}

// WalletEnsurer is the narrow view of the ledger that user provisioning
// depends on.
type WalletEnsurer interface {
	EnsureWallet(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error)
}

// EnsureWallet creates the user's wallet with a zero balance when absent and
// returns it. Idempotent: an existing balance is never touched.
func (s *LedgerService) EnsureWallet(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error) {
	wallet, err := s.writeRepo.Ensure(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to ensure wallet", "userID", userID, "error", err)
		return nil, err
	}
	return wallet, nil
}

// Credit applies a signed amount to the user's wallet and appends the matching
// transaction row. The amount is taken as-is: debits arrive negative, and no
// overdraft floor exists, so the balance may go below zero. Returns the new
// balance.
func (s *LedgerService) Credit(ctx context.Context, userID uuid.UUID, amount float64, kind string, referenceID *string, meta models.Meta) (float64, error) {
	balance, err := s.writeRepo.Increment(ctx, userID, amount)
	if err != nil {
		logger.Log.Errorw("failed to increment wallet balance", "userID", userID, "amount", amount, "kind", kind, "error", err)
		return 0, err
	}

	txn := models.TransactionDB{
		TransactionID: uuid.New(),
		UserID:        userID,
		Kind:          kind,
		Amount:        amount,
		ReferenceID:   referenceID,
		Meta:          meta,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.txnRepo.Save(ctx, txn); err != nil {
		logger.Log.Errorw("failed to append transaction", "userID", userID, "amount", amount, "kind", kind, "error", err)
		return 0, err
	}

	if s.cacheRepo != nil {
		if err := s.cacheRepo.Invalidate(ctx, userID); err != nil {
			logger.Log.Errorw("failed to invalidate cached balance", "userID", userID, "error", err)
		}
	}

	s.publishTransaction(ctx, txn)

	return balance, nil
}

// GetBalance returns the user's current balance, 0 when no wallet exists. The
// read never creates a wallet.
func (s *LedgerService) GetBalance(ctx context.Context, userID uuid.UUID) (float64, error) {
	if s.cacheRepo != nil {
		balance, ok, err := s.cacheRepo.Get(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to read cached balance", "userID", userID, "error", err)
		} else if ok {
			return balance, nil
		}
	}

	wallet, err := s.readRepo.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get wallet", "userID", userID, "error", err)
		return 0, err
	}

	var balance float64
	if wallet != nil {
		balance = wallet.Balance
	}

	if s.cacheRepo != nil {
		if err := s.cacheRepo.Set(ctx, userID, balance); err != nil {
			logger.Log.Errorw("failed to cache balance", "userID", userID, "error", err)
		}
	}

	return balance, nil
}

// publishTransaction publishes a ledger entry to Kafka. Failures are logged
// and swallowed; the stream carries no delivery guarantee.
func (s *LedgerService) publishTransaction(ctx context.Context, txn models.TransactionDB) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", txn.TransactionID)
		return
	}

	event := models.TransactionEvent{
		TransactionID: txn.TransactionID.String(),
		UserID:        txn.UserID.String(),
		Kind:          txn.Kind,
		Amount:        txn.Amount,
		Timestamp:     txn.CreatedAt.Unix(),
	}
	if txn.ReferenceID != nil {
		event.ReferenceID = *txn.ReferenceID
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal transaction for Kafka", "transaction_id", txn.TransactionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.TransactionID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish transaction to Kafka", "transaction_id", txn.TransactionID, "error", err)
	} else {
		logger.Log.Infow("Transaction published to Kafka", "transaction_id", txn.TransactionID, "amount", txn.Amount)
	}
}
