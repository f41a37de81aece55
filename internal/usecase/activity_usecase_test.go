package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/iho/tradeledger/internal/domain"
	"github.com/iho/tradeledger/internal/usecase"
	"github.com/iho/tradeledger/internal/usecase/mocks"
)

func TestActivityUseCase_Append_SystemPrincipalFallback(t *testing.T) {
	repo := mocks.NewMockActivityRepository()
	uc := usecase.NewActivityUseCase(repo, nil)

	err := uc.Append(context.Background(), usecase.AppendActivityInput{
		Action:     domain.ActionLoanCreated,
		EntityType: domain.EntityLoan,
		Details:    "loan created",
	}, domain.AppendCritical)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := repo.All()
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	if entries[0].UserID != domain.SystemPrincipal.UserID {
		t.Errorf("expected system attribution, got %s", entries[0].UserID)
	}
}

func TestActivityUseCase_Append_BestEffortSwallowsFailure(t *testing.T) {
	repo := mocks.NewMockActivityRepository()
	repo.CreateFunc = func(ctx context.Context, entry *domain.ActivityEntry) error {
		return errors.New("store down")
	}

	uc := usecase.NewActivityUseCase(repo, nil)

	err := uc.Append(context.Background(), usecase.AppendActivityInput{
		Action:     domain.ActionExpenseCreated,
		EntityType: domain.EntityExpense,
	}, domain.AppendBestEffort)
	if err != nil {
		t.Fatalf("best-effort append must swallow store failure, got %v", err)
	}
}

func TestActivityUseCase_Append_CriticalSurfacesFailure(t *testing.T) {
	repo := mocks.NewMockActivityRepository()
	storeErr := errors.New("store down")
	repo.CreateFunc = func(ctx context.Context, entry *domain.ActivityEntry) error {
		return storeErr
	}

	uc := usecase.NewActivityUseCase(repo, nil)

	err := uc.Append(context.Background(), usecase.AppendActivityInput{
		Action:     domain.ActionExpenseCreated,
		EntityType: domain.EntityExpense,
	}, domain.AppendCritical)
	if !errors.Is(err, storeErr) {
		t.Fatalf("critical append must surface store failure, got %v", err)
	}
}

func TestActivityUseCase_NilStore(t *testing.T) {
	uc := usecase.NewActivityUseCase(nil, nil)

	err := uc.Append(context.Background(), usecase.AppendActivityInput{
		Action:     domain.ActionLoanCreated,
		EntityType: domain.EntityLoan,
	}, domain.AppendBestEffort)
	if err != nil {
		t.Fatalf("best-effort append on uninitialized store must be a no-op, got %v", err)
	}

	err = uc.Append(context.Background(), usecase.AppendActivityInput{
		Action:     domain.ActionLoanCreated,
		EntityType: domain.EntityLoan,
	}, domain.AppendCritical)
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("critical append on uninitialized store must fail, got %v", err)
	}

	entries, err := uc.Query(context.Background(), domain.ActivityFilter{})
	if err != nil {
		t.Fatalf("query on uninitialized store must degrade, got %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty result, got %d entries", len(entries))
	}
}

func TestActivityUseCase_Query_LimitCap(t *testing.T) {
	repo := mocks.NewMockActivityRepository()

	var captured domain.ActivityFilter
	repo.ListFunc = func(ctx context.Context, filter domain.ActivityFilter) ([]*domain.ActivityEntry, error) {
		captured = filter
		return nil, nil
	}

	uc := usecase.NewActivityUseCase(repo, nil)

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "zero defaults to cap", limit: 0, want: domain.MaxActivityQueryLimit},
		{name: "above cap is clamped", limit: 5000, want: domain.MaxActivityQueryLimit},
		{name: "within cap passes through", limit: 25, want: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := uc.Query(context.Background(), domain.ActivityFilter{Limit: tt.limit})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if captured.Limit != tt.want {
				t.Errorf("expected limit %d, got %d", tt.want, captured.Limit)
			}
			if entries == nil {
				t.Error("expected non-nil slice even for empty result")
			}
		})
	}
}

func TestActivityUseCase_Query_Filtering(t *testing.T) {
	repo := mocks.NewMockActivityRepository()
	uc := usecase.NewActivityUseCase(repo, nil)

	seed := []struct {
		action domain.ActivityAction
		entity domain.EntityType
		userID string
	}{
		{domain.ActionLoanCreated, domain.EntityLoan, "user-1"},
		{domain.ActionExpenseCreated, domain.EntityExpense, "user-2"},
		{domain.ActionLoanFullyRepaid, domain.EntityLoan, "user-1"},
	}
	for _, s := range seed {
		if err := uc.Append(context.Background(), usecase.AppendActivityInput{
			Principal:  domain.Principal{UserID: s.userID},
			Action:     s.action,
			EntityType: s.entity,
		}, domain.AppendCritical); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	byEntity, err := uc.Query(context.Background(), domain.ActivityFilter{EntityType: domain.EntityLoan})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(byEntity) != 2 {
		t.Errorf("expected 2 loan entries, got %d", len(byEntity))
	}
	// newest first
	if len(byEntity) == 2 && byEntity[0].Action != domain.ActionLoanFullyRepaid {
		t.Errorf("expected newest entry first, got %s", byEntity[0].Action)
	}

	byUser, err := uc.Query(context.Background(), domain.ActivityFilter{UserID: "user-2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(byUser) != 1 || byUser[0].Action != domain.ActionExpenseCreated {
		t.Fatalf("expected user-2's single expense entry, got %v", byUser)
	}
}
