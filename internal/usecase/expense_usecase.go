package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/tradeledger/internal/domain"
	"github.com/iho/tradeledger/internal/infrastructure/metrics"
)

// ExpenseUseCase handles expense ledger business logic. Both entry points
// funnel into a single record path parameterized by expense type; an
// order-attributed expense and the order price increment commit together.
type ExpenseUseCase struct {
	txManager   TransactionManager
	expenseRepo ExpenseRepository
	orderRepo   OrderRepository
	activity    *ActivityUseCase
	idGen       IDGenerator
	cache       Cache
	metrics     *metrics.Metrics
}

// ExpenseUseCaseDeps holds dependencies for ExpenseUseCase.
type ExpenseUseCaseDeps struct {
	TxManager   TransactionManager
	ExpenseRepo ExpenseRepository
	OrderRepo   OrderRepository
	Activity    *ActivityUseCase
	IDGen       IDGenerator
	Cache       Cache
	Metrics     *metrics.Metrics
}

// NewExpenseUseCase creates a new ExpenseUseCase.
func NewExpenseUseCase(deps ExpenseUseCaseDeps) *ExpenseUseCase {
	return &ExpenseUseCase{
		txManager:   deps.TxManager,
		expenseRepo: deps.ExpenseRepo,
		orderRepo:   deps.OrderRepo,
		activity:    deps.Activity,
		idGen:       deps.IDGen,
		cache:       deps.Cache,
		metrics:     deps.Metrics,
	}
}

// CreateExpenseInput represents input for recording an expense.
type CreateExpenseInput struct {
	Amount      decimal.Decimal
	Description string
	OrderID     *string
}

// CreateExpense records a cash expenditure. When OrderID is set the expense
// is typed "order" and the order's total price grows by the same amount in
// the same transaction; otherwise the expense is typed "other".
func (uc *ExpenseUseCase) CreateExpense(ctx context.Context, input CreateExpenseInput) (*domain.Expense, error) {
	expenseType := domain.ExpenseTypeOther
	if input.OrderID != nil {
		expenseType = domain.ExpenseTypeOrder
	}

	return uc.record(ctx, recordExpenseParams{
		amount:          input.Amount,
		description:     input.Description,
		expenseType:     expenseType,
		orderID:         input.OrderID,
		announceExpense: true,
	})
}

// AddOrderExpenseInput represents input for an operational order expense.
type AddOrderExpenseInput struct {
	OrderID     string
	Amount      decimal.Decimal
	Description string
}

// AddOrderExpense records an operational cost against an order, growing the
// order's total price atomically with the expense row.
func (uc *ExpenseUseCase) AddOrderExpense(ctx context.Context, input AddOrderExpenseInput) (*domain.Expense, error) {
	return uc.record(ctx, recordExpenseParams{
		amount:          input.Amount,
		description:     input.Description,
		expenseType:     domain.ExpenseTypeOperational,
		orderID:         &input.OrderID,
		announceExpense: false,
	})
}

type recordExpenseParams struct {
	amount          decimal.Decimal
	description     string
	expenseType     domain.ExpenseType
	orderID         *string
	announceExpense bool
}

func (uc *ExpenseUseCase) record(ctx context.Context, params recordExpenseParams) (*domain.Expense, error) {
	if err := domain.ValidateAmount(params.amount); err != nil {
		return nil, err
	}

	if err := domain.ValidateDescription(params.description); err != nil {
		return nil, err
	}

	// Fail fast on a missing order before opening the transaction.
	var order *domain.Order
	if params.orderID != nil {
		var err error

		order, err = uc.orderRepo.GetByID(ctx, *params.orderID)
		if err != nil {
			return nil, err
		}
	}

	expense, newTotal, err := uc.recordOnce(ctx, params)
	if err != nil {
		return nil, err
	}

	uc.invalidateBalance(ctx)
	uc.countExpense(expense)

	if order != nil {
		uc.appendActivity(ctx, domain.ActionOrderPriceIncreased, domain.EntityOrder, order.ID,
			fmt.Sprintf("order %s total increased by %s to %s", order.OrderNumber, expense.Amount, newTotal))
	}

	if params.announceExpense {
		details := fmt.Sprintf("expense %s of %s recorded", expense.ID, expense.Amount)
		if expense.OrderID != nil {
			details += fmt.Sprintf(" against order %s", *expense.OrderID)
		}

		uc.appendActivity(ctx, domain.ActionExpenseCreated, domain.EntityExpense, expense.ID, details)
	}

	return expense, nil
}

func (uc *ExpenseUseCase) recordOnce(ctx context.Context, params recordExpenseParams) (*domain.Expense, decimal.Decimal, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, decimal.Zero, err
	}
	defer tx.Rollback(ctx)

	now := time.Now().UTC()

	expense := &domain.Expense{
		ID:          uc.idGen.Generate(),
		Amount:      params.amount,
		Description: params.description,
		Type:        params.expenseType,
		OrderID:     params.orderID,
		CreatedAt:   now,
	}

	if err := uc.expenseRepo.Create(ctx, tx, expense); err != nil {
		return nil, decimal.Zero, err
	}

	newTotal := decimal.Zero
	if params.orderID != nil {
		order, err := uc.orderRepo.GetByIDForUpdate(ctx, tx, *params.orderID)
		if err != nil {
			return nil, decimal.Zero, err
		}

		newTotal = order.ApplyPriceIncrease(params.amount)

		if err := uc.orderRepo.UpdateTotalPrice(ctx, tx, order.ID, newTotal, now); err != nil {
			return nil, decimal.Zero, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, decimal.Zero, err
	}

	return expense, newTotal, nil
}

// ListExpensesInput represents input for listing expenses.
type ListExpensesInput struct {
	Type    domain.ExpenseType
	OrderID string
	Limit   int
	Offset  int
}

// ListExpenses lists expenses with optional type/order filters.
func (uc *ExpenseUseCase) ListExpenses(ctx context.Context, input ListExpensesInput) ([]*domain.Expense, error) {
	if input.Type != "" && !input.Type.Valid() {
		return nil, fmt.Errorf("unknown expense type %q", input.Type)
	}

	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	return uc.expenseRepo.List(ctx, input.Type, input.OrderID, limit, offset)
}

func (uc *ExpenseUseCase) appendActivity(ctx context.Context, action domain.ActivityAction, entityType domain.EntityType, entityID, details string) {
	if uc.activity == nil {
		return
	}

	principal, _ := domain.PrincipalFromContext(ctx)

	_ = uc.activity.Append(ctx, AppendActivityInput{
		Principal:  principal,
		Action:     action,
		EntityType: entityType,
		EntityID:   &entityID,
		Details:    details,
	}, domain.AppendBestEffort)
}

func (uc *ExpenseUseCase) invalidateBalance(ctx context.Context) {
	invalidateBalanceCache(ctx, uc.cache)
}

func (uc *ExpenseUseCase) countExpense(expense *domain.Expense) {
	if uc.metrics == nil {
		return
	}

	uc.metrics.ExpensesTotal.WithLabelValues(string(expense.Type)).Inc()

	f, _ := expense.Amount.Float64()
	uc.metrics.ExpenseAmount.Observe(f)
}
