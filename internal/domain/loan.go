package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Loan represents partner-supplied funding, tracked as remaining principal.
type Loan struct {
	ID        string
	PartnerID string
	OrderID   *string
	Amount    decimal.Decimal
	IsPaid    bool
	CreatedAt time.Time
}

// ValidateRepayment checks if the loan can accept a repayment of amount.
func (l *Loan) ValidateRepayment(amount decimal.Decimal, partial bool) error {
	if l.IsPaid {
		return ErrAlreadySettled
	}

	if partial {
		if amount.LessThanOrEqual(decimal.Zero) || amount.GreaterThan(l.Amount) {
			return ErrInvalidAmount
		}
	}

	return nil
}

// ConsumesRemaining reports whether a repayment of amount settles the loan.
// A non-partial repayment always settles; a partial one settles only when it
// covers the full remaining principal.
func (l *Loan) ConsumesRemaining(amount decimal.Decimal, partial bool) bool {
	if !partial {
		return true
	}

	return amount.GreaterThanOrEqual(l.Amount)
}

// ApplyPartialRepayment returns the remaining principal after a partial repayment.
func (l *Loan) ApplyPartialRepayment(amount decimal.Decimal) decimal.Decimal {
	return l.Amount.Sub(amount)
}
