package usecase

import (
	"context"

	"github.com/iho/tradeledger/internal/domain"
)

// DebtUseCase exposes read access to outstanding supplier obligations,
// grouped by item. Settlement is owned by the supplier workflow.
type DebtUseCase struct {
	debtRepo SupplierDebtRepository
}

// NewDebtUseCase creates a new DebtUseCase.
func NewDebtUseCase(debtRepo SupplierDebtRepository) *DebtUseCase {
	return &DebtUseCase{debtRepo: debtRepo}
}

// ListOutstanding returns a supplier's unsettled debts aggregated per item.
func (uc *DebtUseCase) ListOutstanding(ctx context.Context, supplierID string) ([]*domain.ItemDebt, error) {
	exists, err := uc.debtRepo.SupplierExists(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	if !exists {
		return nil, domain.ErrSupplierNotFound
	}

	debts, err := uc.debtRepo.ListOutstandingByItem(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	if debts == nil {
		debts = []*domain.ItemDebt{}
	}

	return debts, nil
}
