package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the slice of the order entity this core reads and mutates.
// Order CRUD is owned elsewhere; here only TotalPrice moves, and only upward.
type Order struct {
	ID          string
	OrderNumber string
	TotalPrice  decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ApplyPriceIncrease returns the total price after attributing an expense.
func (o *Order) ApplyPriceIncrease(amount decimal.Decimal) decimal.Decimal {
	return o.TotalPrice.Add(amount)
}
