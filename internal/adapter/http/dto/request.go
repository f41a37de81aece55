package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/tradeledger/internal/usecase"
)

// CreateLoanRequest represents a request to record a partner loan.
type CreateLoanRequest struct {
	PartnerID string          `json:"partner_id"`
	OrderID   *string         `json:"order_id,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateLoanRequest) ToUseCaseInput() usecase.CreateLoanInput {
	return usecase.CreateLoanInput{
		PartnerID: r.PartnerID,
		OrderID:   r.OrderID,
		Amount:    r.Amount,
	}
}

// RepayLoanRequest represents a request to repay a loan.
type RepayLoanRequest struct {
	Amount  decimal.Decimal `json:"amount"`
	Partial bool            `json:"partial"`
}

// ToUseCaseInput converts to use case input.
func (r *RepayLoanRequest) ToUseCaseInput(loanID string) usecase.RepayLoanInput {
	return usecase.RepayLoanInput{
		LoanID:  loanID,
		Amount:  r.Amount,
		Partial: r.Partial,
	}
}

// CreateExpenseRequest represents a request to record an expense.
type CreateExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	OrderID     *string         `json:"order_id,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateExpenseRequest) ToUseCaseInput() usecase.CreateExpenseInput {
	return usecase.CreateExpenseInput{
		Amount:      r.Amount,
		Description: r.Description,
		OrderID:     r.OrderID,
	}
}

// AddOrderExpenseRequest represents a request to record an operational cost
// against an order.
type AddOrderExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// ToUseCaseInput converts to use case input.
func (r *AddOrderExpenseRequest) ToUseCaseInput(orderID string) usecase.AddOrderExpenseInput {
	return usecase.AddOrderExpenseInput{
		OrderID:     orderID,
		Amount:      r.Amount,
		Description: r.Description,
	}
}
