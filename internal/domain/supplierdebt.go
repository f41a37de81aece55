package domain

import "github.com/shopspring/decimal"

// SupplierDebt represents an outstanding obligation towards a supplier for a
// specific item on an order. Read-mostly in this service; settlement is owned
// by the supplier workflow.
type SupplierDebt struct {
	ID         string
	SupplierID string
	ItemID     string
	OrderID    string
	DebtValue  decimal.Decimal
	IsSettled  bool
}

// ItemDebt is the grouped-by-item aggregation of a supplier's unsettled debts.
type ItemDebt struct {
	ItemID      string
	Outstanding decimal.Decimal
	DebtCount   int64
}
