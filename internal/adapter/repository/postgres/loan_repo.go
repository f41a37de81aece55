package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/tradeledger/internal/domain"
	"github.com/iho/tradeledger/internal/usecase"
)

// LoanRepository implements usecase.LoanRepository.
type LoanRepository struct {
	pool *pgxpool.Pool
}

// NewLoanRepository creates a new LoanRepository.
func NewLoanRepository(pool *pgxpool.Pool) *LoanRepository {
	return &LoanRepository{pool: pool}
}

// Create inserts a new loan.
func (r *LoanRepository) Create(ctx context.Context, loan *domain.Loan) error {
	query := `
		INSERT INTO loans (id, partner_id, order_id, amount, is_paid, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		loan.ID,
		loan.PartnerID,
		loan.OrderID,
		decimalToNumeric(loan.Amount),
		loan.IsPaid,
		timeToPgTimestamptz(loan.CreatedAt),
	)

	return err
}

const loanColumns = `id, partner_id, order_id, amount, is_paid, created_at`

// GetByID retrieves a loan by ID.
func (r *LoanRepository) GetByID(ctx context.Context, id string) (*domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE id = $1`

	return scanLoan(r.pool.QueryRow(ctx, query, id))
}

// GetByIDForUpdate retrieves a loan by ID with a FOR UPDATE lock.
func (r *LoanRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Loan, error) {
	pgxTx := tx.(*Tx).PgxTx()

	query := `SELECT ` + loanColumns + ` FROM loans WHERE id = $1 FOR UPDATE`

	return scanLoan(pgxTx.QueryRow(ctx, query, id))
}

// UpdateRepayment writes the remaining principal and settlement flag.
func (r *LoanRepository) UpdateRepayment(ctx context.Context, tx usecase.Transaction, id string, amount decimal.Decimal, isPaid bool) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `UPDATE loans SET amount = $2, is_paid = $3 WHERE id = $1`

	tag, err := pgxTx.Exec(ctx, query, id, decimalToNumeric(amount), isPaid)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrLoanNotFound
	}

	return nil
}

// List lists loans newest first, optionally restricted to unpaid ones.
func (r *LoanRepository) List(ctx context.Context, unpaidOnly bool, limit, offset int) ([]*domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans`
	if unpaidOnly {
		query += ` WHERE is_paid = FALSE`
	}
	query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	loans := make([]*domain.Loan, 0)
	for rows.Next() {
		loan, err := scanLoan(rows)
		if err != nil {
			return nil, err
		}

		loans = append(loans, loan)
	}

	return loans, rows.Err()
}

func scanLoan(row pgx.Row) (*domain.Loan, error) {
	var loan domain.Loan
	var amount pgtype.Numeric
	var createdAt pgtype.Timestamptz

	err := row.Scan(
		&loan.ID,
		&loan.PartnerID,
		&loan.OrderID,
		&amount,
		&loan.IsPaid,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrLoanNotFound
		}

		return nil, err
	}

	loan.Amount = numericToDecimal(amount)
	loan.CreatedAt = createdAt.Time

	return &loan, nil
}
