package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// LedgerRepository implements usecase.LedgerRepository.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository creates a new LedgerRepository.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

// CashBalance reads both aggregates in one statement so the balance is
// computed from a single snapshot.
func (r *LedgerRepository) CashBalance(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT
			COALESCE((SELECT SUM(amount) FROM loans WHERE is_paid = FALSE), 0),
			COALESCE((SELECT SUM(amount) FROM expenses), 0)
	`

	var unpaidLoans, totalExpenses pgtype.Numeric

	err := r.pool.QueryRow(ctx, query).Scan(&unpaidLoans, &totalExpenses)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	return numericToDecimal(unpaidLoans), numericToDecimal(totalExpenses), nil
}
