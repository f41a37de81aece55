package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/tradeledger/internal/domain"
	"github.com/iho/tradeledger/internal/usecase"
)

// LoanResponse represents a loan in API responses.
type LoanResponse struct {
	ID        string          `json:"id"`
	PartnerID string          `json:"partner_id"`
	OrderID   *string         `json:"order_id,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	IsPaid    bool            `json:"is_paid"`
	CreatedAt time.Time       `json:"created_at"`
}

// LoanFromDomain converts a domain loan to a response.
func LoanFromDomain(l *domain.Loan) *LoanResponse {
	return &LoanResponse{
		ID:        l.ID,
		PartnerID: l.PartnerID,
		OrderID:   l.OrderID,
		Amount:    l.Amount,
		IsPaid:    l.IsPaid,
		CreatedAt: l.CreatedAt,
	}
}

// LoansFromDomain converts domain loans to responses.
func LoansFromDomain(loans []*domain.Loan) []*LoanResponse {
	result := make([]*LoanResponse, len(loans))
	for i, l := range loans {
		result[i] = LoanFromDomain(l)
	}
	return result
}

// RepaymentResponse describes a repayment outcome.
type RepaymentResponse struct {
	LoanID          string          `json:"loan_id"`
	PaidAmount      decimal.Decimal `json:"paid_amount"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
	Settled         bool            `json:"settled"`
}

// RepaymentFromResult converts a repayment result to a response.
func RepaymentFromResult(r *usecase.RepayLoanResult) *RepaymentResponse {
	return &RepaymentResponse{
		LoanID:          r.LoanID,
		PaidAmount:      r.PaidAmount,
		RemainingAmount: r.RemainingAmount,
		Settled:         r.Settled,
	}
}

// PaymentResponse represents a payment in API responses.
type PaymentResponse struct {
	ID        string          `json:"id"`
	LoanID    string          `json:"loan_id"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

// PaymentsFromDomain converts domain payments to responses.
func PaymentsFromDomain(payments []*domain.Payment) []*PaymentResponse {
	result := make([]*PaymentResponse, len(payments))
	for i, p := range payments {
		result[i] = &PaymentResponse{
			ID:        p.ID,
			LoanID:    p.LoanID,
			Amount:    p.Amount,
			CreatedAt: p.CreatedAt,
		}
	}
	return result
}

// ExpenseResponse represents an expense in API responses.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Type        string          `json:"type"`
	OrderID     *string         `json:"order_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ExpenseFromDomain converts a domain expense to a response.
func ExpenseFromDomain(e *domain.Expense) *ExpenseResponse {
	return &ExpenseResponse{
		ID:          e.ID,
		Amount:      e.Amount,
		Description: e.Description,
		Type:        string(e.Type),
		OrderID:     e.OrderID,
		CreatedAt:   e.CreatedAt,
	}
}

// ExpensesFromDomain converts domain expenses to responses.
func ExpensesFromDomain(expenses []*domain.Expense) []*ExpenseResponse {
	result := make([]*ExpenseResponse, len(expenses))
	for i, e := range expenses {
		result[i] = ExpenseFromDomain(e)
	}
	return result
}

// BalanceResponse represents the derived cash balance.
type BalanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

// ActivityEntryResponse represents an activity entry in API responses.
type ActivityEntryResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Action     string    `json:"action"`
	EntityType string    `json:"entity_type"`
	EntityID   *string   `json:"entity_id,omitempty"`
	Details    string    `json:"details"`
	CreatedAt  time.Time `json:"created_at"`
}

// ActivityEntriesFromDomain converts domain activity entries to responses.
func ActivityEntriesFromDomain(entries []*domain.ActivityEntry) []*ActivityEntryResponse {
	result := make([]*ActivityEntryResponse, len(entries))
	for i, e := range entries {
		result[i] = &ActivityEntryResponse{
			ID:         e.ID,
			UserID:     e.UserID,
			Action:     string(e.Action),
			EntityType: string(e.EntityType),
			EntityID:   e.EntityID,
			Details:    e.Details,
			CreatedAt:  e.CreatedAt,
		}
	}
	return result
}

// ItemDebtResponse represents a supplier's outstanding debt for one item.
type ItemDebtResponse struct {
	ItemID      string          `json:"item_id"`
	Outstanding decimal.Decimal `json:"outstanding"`
	DebtCount   int64           `json:"debt_count"`
}

// ItemDebtsFromDomain converts domain item debts to responses.
func ItemDebtsFromDomain(debts []*domain.ItemDebt) []*ItemDebtResponse {
	result := make([]*ItemDebtResponse, len(debts))
	for i, d := range debts {
		result[i] = &ItemDebtResponse{
			ItemID:      d.ItemID,
			Outstanding: d.Outstanding,
			DebtCount:   d.DebtCount,
		}
	}
	return result
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
