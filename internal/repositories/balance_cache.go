package repositories

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/driveshare-capital/backend/internal/logger"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// WalletBalanceCacheRepository provides cached wallet balances using Redis.
// The database stays the source of truth; every credit invalidates the key.
type WalletBalanceCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached balances
}

// NewWalletBalanceCacheRepository creates a new repository instance with optional TTL.
func NewWalletBalanceCacheRepository(client *redis.Client, expiration time.Duration) *WalletBalanceCacheRepository {
	return &WalletBalanceCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func balanceKey(userID uuid.UUID) string {
	return fmt.Sprintf("wallet_balance:%s", userID)
}

// Get fetches a cached balance. A cache miss is reported via the bool, not an
// error.
func (r *WalletBalanceCacheRepository) Get(ctx context.Context, userID uuid.UUID) (float64, bool, error) {
	key := balanceKey(userID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", val,
			"error", err,
		)
		if err == redis.Nil {
			return 0, false, nil
		}
		return 0, false, err
	}

	balance, err := strconv.ParseFloat(val, 64)
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"value", val,
			"result", 0,
			"error", err,
		)
		return 0, false, err
	}

	logger.Log.Infow(
		"key", key,
		"value", val,
		"result", balance,
		"error", nil,
	)

	return balance, true, nil
}

// Set caches a balance in Redis with expiration.
func (r *WalletBalanceCacheRepository) Set(ctx context.Context, userID uuid.UUID, balance float64) error {
	key := balanceKey(userID)
	err := r.client.Set(ctx, key, strconv.FormatFloat(balance, 'f', -1, 64), r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"balance", balance,
		"result", "ok",
		"error", err,
	)

	return err
}

// Invalidate drops the cached balance after a write to the wallet.
func (r *WalletBalanceCacheRepository) Invalidate(ctx context.Context, userID uuid.UUID) error {
	key := balanceKey(userID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"result", "deleted",
		"error", err,
	)

	return err
}
