package dto

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCreateLoanRequestToUseCaseInput(t *testing.T) {
	orderID := "order-1"
	req := &CreateLoanRequest{
		PartnerID: "partner-1",
		OrderID:   &orderID,
		Amount:    decimal.NewFromInt(5000),
	}

	input := req.ToUseCaseInput()

	if input.PartnerID != "partner-1" {
		t.Fatalf("expected partner-1, got %s", input.PartnerID)
	}
	if input.OrderID == nil || *input.OrderID != "order-1" {
		t.Fatalf("expected order-1, got %v", input.OrderID)
	}
	if !input.Amount.Equal(decimal.NewFromInt(5000)) {
		t.Fatalf("expected 5000, got %s", input.Amount)
	}
}

func TestRepayLoanRequestToUseCaseInput(t *testing.T) {
	req := &RepayLoanRequest{
		Amount:  decimal.NewFromInt(400),
		Partial: true,
	}

	input := req.ToUseCaseInput("loan-1")

	if input.LoanID != "loan-1" {
		t.Fatalf("expected loan-1, got %s", input.LoanID)
	}
	if !input.Partial {
		t.Fatal("expected partial flag to carry over")
	}
}

func TestAddOrderExpenseRequestToUseCaseInput(t *testing.T) {
	req := &AddOrderExpenseRequest{
		Amount:      decimal.NewFromInt(250),
		Description: "packaging",
	}

	input := req.ToUseCaseInput("order-1")

	if input.OrderID != "order-1" {
		t.Fatalf("expected order-1, got %s", input.OrderID)
	}
	if input.Description != "packaging" {
		t.Fatalf("expected packaging, got %s", input.Description)
	}
}
