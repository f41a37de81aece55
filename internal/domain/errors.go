package domain

import "errors"

var (
	// Loan errors
	ErrLoanNotFound   = errors.New("loan not found")
	ErrAlreadySettled = errors.New("loan is already settled")

	// Order/expense errors
	ErrOrderNotFound   = errors.New("order not found")
	ErrExpenseNotFound = errors.New("expense not found")

	// Supplier/partner errors
	ErrSupplierNotFound = errors.New("supplier not found")
	ErrPartnerNotFound  = errors.New("partner not found")

	// Shared errors
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrStoreUnavailable = errors.New("backing store is not initialized")
)
