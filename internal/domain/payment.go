package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment represents a single repayment against a loan. Payments are written
// in the same transaction as the loan mutation and are the source of payment
// history (never reconstructed from activity log text).
type Payment struct {
	ID        string
	LoanID    string
	Amount    decimal.Decimal
	CreatedAt time.Time
}
