package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/iho/tradeledger/internal/infrastructure/metrics"
)

// BalanceUseCase derives the available cash balance:
// unpaid loan principal minus total expenses. Pure read, no stored entity.
type BalanceUseCase struct {
	ledgerRepo LedgerRepository
	cache      Cache
	cacheTTL   time.Duration
	metrics    *metrics.Metrics
}

// NewBalanceUseCase creates a new BalanceUseCase.
func NewBalanceUseCase(ledgerRepo LedgerRepository, cache Cache, cacheTTL time.Duration, m *metrics.Metrics) *BalanceUseCase {
	if cacheTTL <= 0 {
		cacheTTL = DefaultBalanceCacheTTL
	}

	return &BalanceUseCase{
		ledgerRepo: ledgerRepo,
		cache:      cache,
		cacheTTL:   cacheTTL,
		metrics:    m,
	}
}

// GetBalance computes the cash balance from a single store snapshot.
// Empty aggregates contribute zero.
func (uc *BalanceUseCase) GetBalance(ctx context.Context) (decimal.Decimal, error) {
	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, BalanceCacheKey); err == nil {
			if balance, perr := decimal.NewFromString(cached); perr == nil {
				uc.countQuery("cache")
				return balance, nil
			}
		}
	}

	unpaidLoans, totalExpenses, err := uc.ledgerRepo.CashBalance(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	balance := unpaidLoans.Sub(totalExpenses)

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, BalanceCacheKey, balance.String(), uc.cacheTTL); err != nil {
			log.Warn().Err(err).Msg("failed to cache cash balance")
		}
	}

	uc.countQuery("store")

	return balance, nil
}

func (uc *BalanceUseCase) countQuery(source string) {
	if uc.metrics == nil {
		return
	}

	uc.metrics.BalanceQueries.WithLabelValues(source).Inc()
}

// invalidateBalanceCache drops the cached balance after a ledger mutation.
// Cache trouble is logged and otherwise ignored; the next read recomputes.
func invalidateBalanceCache(ctx context.Context, cache Cache) {
	if cache == nil {
		return
	}

	if err := cache.Delete(ctx, BalanceCacheKey); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate balance cache")
	}
}
