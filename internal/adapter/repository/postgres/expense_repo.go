package postgres

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/tradeledger/internal/domain"
	"github.com/iho/tradeledger/internal/usecase"
)

// ExpenseRepository implements usecase.ExpenseRepository.
type ExpenseRepository struct {
	pool *pgxpool.Pool
}

// NewExpenseRepository creates a new ExpenseRepository.
func NewExpenseRepository(pool *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{pool: pool}
}

// Create inserts an expense row inside the caller's transaction.
func (r *ExpenseRepository) Create(ctx context.Context, tx usecase.Transaction, expense *domain.Expense) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		INSERT INTO expenses (id, amount, description, expense_type, order_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := pgxTx.Exec(ctx, query,
		expense.ID,
		decimalToNumeric(expense.Amount),
		expense.Description,
		string(expense.Type),
		expense.OrderID,
		timeToPgTimestamptz(expense.CreatedAt),
	)

	return err
}

// List returns expenses newest first, filtered by type and order.
func (r *ExpenseRepository) List(ctx context.Context, expenseType domain.ExpenseType, orderID string, limit, offset int) ([]*domain.Expense, error) {
	query := `
		SELECT id, amount, description, expense_type, order_id, created_at
		FROM expenses
		WHERE 1=1
	`
	args := []any{}
	argPos := 1

	if expenseType != "" {
		query += ` AND expense_type = $` + strconv.Itoa(argPos)
		args = append(args, string(expenseType))
		argPos++
	}

	if orderID != "" {
		query += ` AND order_id = $` + strconv.Itoa(argPos)
		args = append(args, orderID)
		argPos++
	}

	query += ` ORDER BY created_at DESC, id DESC`
	query += ` LIMIT $` + strconv.Itoa(argPos)
	args = append(args, limit)
	argPos++
	query += ` OFFSET $` + strconv.Itoa(argPos)
	args = append(args, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := make([]*domain.Expense, 0)
	for rows.Next() {
		var expense domain.Expense
		var amount pgtype.Numeric
		var expenseTypeText string
		var createdAt pgtype.Timestamptz

		err := rows.Scan(
			&expense.ID,
			&amount,
			&expense.Description,
			&expenseTypeText,
			&expense.OrderID,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		expense.Amount = numericToDecimal(amount)
		expense.Type = domain.ExpenseType(expenseTypeText)
		expense.CreatedAt = createdAt.Time

		expenses = append(expenses, &expense)
	}

	return expenses, rows.Err()
}
