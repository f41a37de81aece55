package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/tradeledger/internal/domain"
)

// LoanRepository defines data access for loans.
type LoanRepository interface {
	Create(ctx context.Context, loan *domain.Loan) error
	GetByID(ctx context.Context, id string) (*domain.Loan, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Loan, error)
	UpdateRepayment(ctx context.Context, tx Transaction, id string, amount decimal.Decimal, isPaid bool) error
	List(ctx context.Context, unpaidOnly bool, limit, offset int) ([]*domain.Loan, error)
}

// PaymentRepository defines data access for loan repayments.
type PaymentRepository interface {
	Create(ctx context.Context, tx Transaction, payment *domain.Payment) error
	ListByLoan(ctx context.Context, loanID string) ([]*domain.Payment, error)
}

// ExpenseRepository defines data access for expenses.
type ExpenseRepository interface {
	Create(ctx context.Context, tx Transaction, expense *domain.Expense) error
	List(ctx context.Context, expenseType domain.ExpenseType, orderID string, limit, offset int) ([]*domain.Expense, error)
}

// OrderRepository reads orders and moves their total price. Order CRUD is
// owned by another service; this is the data contract consumed here.
type OrderRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Order, error)
	UpdateTotalPrice(ctx context.Context, tx Transaction, id string, totalPrice decimal.Decimal, updatedAt time.Time) error
}

// LedgerRepository defines ledger-wide aggregate reads.
type LedgerRepository interface {
	// CashBalance returns the unpaid loan principal and total expenses in a
	// single snapshot. Empty aggregates are zero, never an error.
	CashBalance(ctx context.Context) (unpaidLoans, totalExpenses decimal.Decimal, err error)
}

// ActivityRepository defines data access for the activity trail.
type ActivityRepository interface {
	Create(ctx context.Context, entry *domain.ActivityEntry) error
	List(ctx context.Context, filter domain.ActivityFilter) ([]*domain.ActivityEntry, error)
}

// SupplierDebtRepository defines read access to supplier obligations.
type SupplierDebtRepository interface {
	SupplierExists(ctx context.Context, supplierID string) (bool, error)
	ListOutstandingByItem(ctx context.Context, supplierID string) ([]*domain.ItemDebt, error)
}

// PartnerDirectory resolves partner display names for activity details.
// Partner CRUD is owned elsewhere.
type PartnerDirectory interface {
	GetName(ctx context.Context, partnerID string) (string, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Retrier retries an operation on transient store failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
