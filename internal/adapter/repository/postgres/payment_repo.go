package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/tradeledger/internal/domain"
	"github.com/iho/tradeledger/internal/usecase"
)

// PaymentRepository implements usecase.PaymentRepository.
type PaymentRepository struct {
	pool *pgxpool.Pool
}

// NewPaymentRepository creates a new PaymentRepository.
func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{pool: pool}
}

// Create inserts a repayment row inside the repayment transaction.
func (r *PaymentRepository) Create(ctx context.Context, tx usecase.Transaction, payment *domain.Payment) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		INSERT INTO payments (id, loan_id, amount, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := pgxTx.Exec(ctx, query,
		payment.ID,
		payment.LoanID,
		decimalToNumeric(payment.Amount),
		timeToPgTimestamptz(payment.CreatedAt),
	)

	return err
}

// ListByLoan returns a loan's repayments newest first.
func (r *PaymentRepository) ListByLoan(ctx context.Context, loanID string) ([]*domain.Payment, error) {
	query := `
		SELECT id, loan_id, amount, created_at
		FROM payments
		WHERE loan_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.pool.Query(ctx, query, loanID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]*domain.Payment, 0)
	for rows.Next() {
		var payment domain.Payment
		var amount pgtype.Numeric
		var createdAt pgtype.Timestamptz

		err := rows.Scan(&payment.ID, &payment.LoanID, &amount, &createdAt)
		if err != nil {
			return nil, err
		}

		payment.Amount = numericToDecimal(amount)
		payment.CreatedAt = createdAt.Time

		payments = append(payments, &payment)
	}

	return payments, rows.Err()
}
