package usecase

import "time"

const (
	// DefaultTransactionTimeout is the maximum duration for a database transaction
	// This prevents long-running transactions from blocking tables
	DefaultTransactionTimeout = 10 * time.Second

	// BalanceCacheKey is the cache key for the derived cash balance.
	BalanceCacheKey = "cash_balance"

	// DefaultBalanceCacheTTL is how long the derived cash balance is cached
	// before it is recomputed from the store.
	DefaultBalanceCacheTTL = 30 * time.Second

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour
)
