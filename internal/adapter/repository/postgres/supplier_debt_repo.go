package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/tradeledger/internal/domain"
)

// SupplierDebtRepository implements usecase.SupplierDebtRepository.
type SupplierDebtRepository struct {
	pool *pgxpool.Pool
}

// NewSupplierDebtRepository creates a new SupplierDebtRepository.
func NewSupplierDebtRepository(pool *pgxpool.Pool) *SupplierDebtRepository {
	return &SupplierDebtRepository{pool: pool}
}

// SupplierExists reports whether the supplier is known.
func (r *SupplierDebtRepository) SupplierExists(ctx context.Context, supplierID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM suppliers WHERE id = $1)`

	var exists bool
	err := r.pool.QueryRow(ctx, query, supplierID).Scan(&exists)

	return exists, err
}

// ListOutstandingByItem aggregates a supplier's unsettled debts per item.
func (r *SupplierDebtRepository) ListOutstandingByItem(ctx context.Context, supplierID string) ([]*domain.ItemDebt, error) {
	query := `
		SELECT item_id, SUM(amount), COUNT(*)
		FROM supplier_debts
		WHERE supplier_id = $1 AND is_settled = FALSE
		GROUP BY item_id
		ORDER BY item_id
	`

	rows, err := r.pool.Query(ctx, query, supplierID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	debts := make([]*domain.ItemDebt, 0)
	for rows.Next() {
		var debt domain.ItemDebt
		var outstanding pgtype.Numeric

		err := rows.Scan(&debt.ItemID, &outstanding, &debt.DebtCount)
		if err != nil {
			return nil, err
		}

		debt.Outstanding = numericToDecimal(outstanding)

		debts = append(debts, &debt)
	}

	return debts, rows.Err()
}
