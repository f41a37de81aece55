package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/tradeledger/internal/domain"
	"github.com/iho/tradeledger/internal/infrastructure/metrics"
)

// LoanUseCase handles loan ledger business logic.
type LoanUseCase struct {
	txManager   TransactionManager
	loanRepo    LoanRepository
	paymentRepo PaymentRepository
	orderRepo   OrderRepository
	partners    PartnerDirectory
	activity    *ActivityUseCase
	idGen       IDGenerator
	retrier     Retrier
	cache       Cache
	metrics     *metrics.Metrics
}

// LoanUseCaseDeps holds dependencies for LoanUseCase.
type LoanUseCaseDeps struct {
	TxManager   TransactionManager
	LoanRepo    LoanRepository
	PaymentRepo PaymentRepository
	OrderRepo   OrderRepository
	Partners    PartnerDirectory
	Activity    *ActivityUseCase
	IDGen       IDGenerator
	Retrier     Retrier
	Cache       Cache
	Metrics     *metrics.Metrics
}

// NewLoanUseCase creates a new LoanUseCase.
func NewLoanUseCase(deps LoanUseCaseDeps) *LoanUseCase {
	return &LoanUseCase{
		txManager:   deps.TxManager,
		loanRepo:    deps.LoanRepo,
		paymentRepo: deps.PaymentRepo,
		orderRepo:   deps.OrderRepo,
		partners:    deps.Partners,
		activity:    deps.Activity,
		idGen:       deps.IDGen,
		retrier:     deps.Retrier,
		cache:       deps.Cache,
		metrics:     deps.Metrics,
	}
}

// CreateLoanInput represents input for creating a loan.
type CreateLoanInput struct {
	PartnerID string
	OrderID   *string
	Amount    decimal.Decimal
}

// CreateLoan records a new partner-funded loan.
func (uc *LoanUseCase) CreateLoan(ctx context.Context, input CreateLoanInput) (*domain.Loan, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	if input.OrderID != nil {
		if _, err := uc.orderRepo.GetByID(ctx, *input.OrderID); err != nil {
			return nil, err
		}
	}

	loan := &domain.Loan{
		ID:        uc.idGen.Generate(),
		PartnerID: input.PartnerID,
		OrderID:   input.OrderID,
		Amount:    input.Amount,
		IsPaid:    false,
		CreatedAt: time.Now().UTC(),
	}

	if err := uc.loanRepo.Create(ctx, loan); err != nil {
		return nil, err
	}

	uc.invalidateBalance(ctx)

	if uc.metrics != nil {
		uc.metrics.LoansCreated.Inc()
	}

	uc.appendActivity(ctx, domain.ActionLoanCreated, loan.ID,
		fmt.Sprintf("loan %s of %s from %s created", loan.ID, loan.Amount, uc.partnerName(ctx, loan.PartnerID)))

	return loan, nil
}

// RepayLoanInput represents input for repaying a loan.
type RepayLoanInput struct {
	LoanID  string
	Amount  decimal.Decimal
	Partial bool
}

// RepayLoanResult describes the outcome of a repayment.
type RepayLoanResult struct {
	LoanID          string
	PaidAmount      decimal.Decimal
	RemainingAmount decimal.Decimal
	Settled         bool
}

// RepayLoan applies a full or partial repayment as one atomic unit: the loan
// mutation and the payment row commit together. A non-partial repayment, or a
// partial one covering the whole remaining principal, settles the loan and
// zeroes its amount.
func (uc *LoanUseCase) RepayLoan(ctx context.Context, input RepayLoanInput) (*RepayLoanResult, error) {
	if input.Partial {
		if err := domain.ValidateAmount(input.Amount); err != nil {
			return nil, err
		}
	}

	var (
		result  *RepayLoanResult
		partner string
	)

	op := func() error {
		res, loan, err := uc.repayOnce(ctx, input)
		if err != nil {
			return err
		}

		result = res
		partner = loan.PartnerID

		return nil
	}

	var err error
	if uc.retrier != nil {
		err = uc.retrier.Retry(ctx, op)
	} else {
		err = op()
	}

	if err != nil {
		return nil, err
	}

	uc.invalidateBalance(ctx)

	name := uc.partnerName(ctx, partner)
	if result.Settled {
		uc.countRepayment("full", result.PaidAmount)
		uc.appendActivity(ctx, domain.ActionLoanFullyRepaid, result.LoanID,
			fmt.Sprintf("loan %s from %s settled in full; %s paid", result.LoanID, name, result.PaidAmount))
	} else {
		uc.countRepayment("partial", result.PaidAmount)
		uc.appendActivity(ctx, domain.ActionLoanPartiallyRepaid, result.LoanID,
			fmt.Sprintf("%s repaid %s on loan %s; %s remaining", name, result.PaidAmount, result.LoanID, result.RemainingAmount))
	}

	return result, nil
}

func (uc *LoanUseCase) repayOnce(ctx context.Context, input RepayLoanInput) (*RepayLoanResult, *domain.Loan, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback(ctx)

	loan, err := uc.loanRepo.GetByIDForUpdate(ctx, tx, input.LoanID)
	if err != nil {
		return nil, nil, err
	}

	if err := loan.ValidateRepayment(input.Amount, input.Partial); err != nil {
		return nil, nil, err
	}

	settled := loan.ConsumesRemaining(input.Amount, input.Partial)

	paid := input.Amount
	remaining := decimal.Zero

	if settled {
		paid = loan.Amount
	} else {
		remaining = loan.ApplyPartialRepayment(paid)
	}

	if err := uc.loanRepo.UpdateRepayment(ctx, tx, loan.ID, remaining, settled); err != nil {
		return nil, nil, err
	}

	payment := &domain.Payment{
		ID:        uc.idGen.Generate(),
		LoanID:    loan.ID,
		Amount:    paid,
		CreatedAt: time.Now().UTC(),
	}

	if err := uc.paymentRepo.Create(ctx, tx, payment); err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, err
	}

	return &RepayLoanResult{
		LoanID:          loan.ID,
		PaidAmount:      paid,
		RemainingAmount: remaining,
		Settled:         settled,
	}, loan, nil
}

// GetLoan retrieves a loan by ID.
func (uc *LoanUseCase) GetLoan(ctx context.Context, id string) (*domain.Loan, error) {
	return uc.loanRepo.GetByID(ctx, id)
}

// GetPaymentHistory returns a loan's repayments, newest first. History is a
// direct read of payment rows written alongside each repayment.
func (uc *LoanUseCase) GetPaymentHistory(ctx context.Context, loanID string) ([]*domain.Payment, error) {
	if _, err := uc.loanRepo.GetByID(ctx, loanID); err != nil {
		return nil, err
	}

	return uc.paymentRepo.ListByLoan(ctx, loanID)
}

// ListLoansInput represents input for listing loans.
type ListLoansInput struct {
	UnpaidOnly bool
	Limit      int
	Offset     int
}

// ListLoans lists loans with pagination.
func (uc *LoanUseCase) ListLoans(ctx context.Context, input ListLoansInput) ([]*domain.Loan, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	return uc.loanRepo.List(ctx, input.UnpaidOnly, limit, offset)
}

func (uc *LoanUseCase) appendActivity(ctx context.Context, action domain.ActivityAction, loanID, details string) {
	if uc.activity == nil {
		return
	}

	principal, _ := domain.PrincipalFromContext(ctx)

	_ = uc.activity.Append(ctx, AppendActivityInput{
		Principal:  principal,
		Action:     action,
		EntityType: domain.EntityLoan,
		EntityID:   &loanID,
		Details:    details,
	}, domain.AppendBestEffort)
}

func (uc *LoanUseCase) partnerName(ctx context.Context, partnerID string) string {
	if uc.partners == nil {
		return partnerID
	}

	name, err := uc.partners.GetName(ctx, partnerID)
	if err != nil || name == "" {
		return partnerID
	}

	return name
}

func (uc *LoanUseCase) invalidateBalance(ctx context.Context) {
	invalidateBalanceCache(ctx, uc.cache)
}

func (uc *LoanUseCase) countRepayment(kind string, amount decimal.Decimal) {
	if uc.metrics == nil {
		return
	}

	uc.metrics.RepaymentsTotal.WithLabelValues(kind).Inc()

	f, _ := amount.Float64()
	uc.metrics.RepaymentAmount.Observe(f)
}
