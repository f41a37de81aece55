package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseType classifies a recorded cash outflow.
type ExpenseType string

const (
	// ExpenseTypeOther is a standalone expense not attributed to an order.
	ExpenseTypeOther ExpenseType = "other"
	// ExpenseTypeOrder is an expense linked to an order at creation time.
	ExpenseTypeOrder ExpenseType = "order"
	// ExpenseTypeOperational is an operational cost always attributed to an order.
	ExpenseTypeOperational ExpenseType = "operational"
)

// Valid reports whether t is a known expense type.
func (t ExpenseType) Valid() bool {
	switch t {
	case ExpenseTypeOther, ExpenseTypeOrder, ExpenseTypeOperational:
		return true
	}

	return false
}

// Expense represents a discrete cash expenditure. Immutable once created.
type Expense struct {
	ID          string
	Amount      decimal.Decimal
	Description string
	Type        ExpenseType
	OrderID     *string
	CreatedAt   time.Time
}
