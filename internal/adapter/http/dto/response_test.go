package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/tradeledger/internal/domain"
)

func TestLoanFromDomain(t *testing.T) {
	now := time.Now()
	loan := &domain.Loan{
		ID:        "loan-1",
		PartnerID: "partner-1",
		Amount:    decimal.NewFromInt(1000),
		IsPaid:    false,
		CreatedAt: now,
	}

	resp := LoanFromDomain(loan)

	if resp.ID != "loan-1" || resp.PartnerID != "partner-1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.OrderID != nil {
		t.Fatal("expected nil order id for unattributed loan")
	}
	if !resp.CreatedAt.Equal(now) {
		t.Fatalf("expected created_at %v, got %v", now, resp.CreatedAt)
	}
}

func TestLoansFromDomainEmpty(t *testing.T) {
	resp := LoansFromDomain(nil)
	if resp == nil {
		t.Fatal("expected non-nil slice for empty input")
	}
	if len(resp) != 0 {
		t.Fatalf("expected empty slice, got %d", len(resp))
	}
}

func TestExpenseFromDomain(t *testing.T) {
	orderID := "order-1"
	expense := &domain.Expense{
		ID:          "expense-1",
		Amount:      decimal.NewFromInt(100),
		Description: "freight",
		Type:        domain.ExpenseTypeOrder,
		OrderID:     &orderID,
	}

	resp := ExpenseFromDomain(expense)

	if resp.Type != "order" {
		t.Fatalf("expected type order, got %s", resp.Type)
	}
	if resp.OrderID == nil || *resp.OrderID != "order-1" {
		t.Fatalf("expected order-1, got %v", resp.OrderID)
	}
}

func TestActivityEntriesFromDomain(t *testing.T) {
	entityID := "loan-1"
	entries := []*domain.ActivityEntry{
		{
			ID:         "entry-1",
			UserID:     domain.SystemPrincipal.UserID,
			Action:     domain.ActionLoanCreated,
			EntityType: domain.EntityLoan,
			EntityID:   &entityID,
			Details:    "loan of 1000 from partner-1",
		},
	}

	resp := ActivityEntriesFromDomain(entries)

	if len(resp) != 1 {
		t.Fatalf("expected one entry, got %d", len(resp))
	}
	if resp[0].Action != "loan_created" {
		t.Fatalf("expected loan_created, got %s", resp[0].Action)
	}
	if resp[0].EntityID == nil || *resp[0].EntityID != "loan-1" {
		t.Fatalf("expected entity loan-1, got %v", resp[0].EntityID)
	}
}
