package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/iho/tradeledger/internal/usecase"
	"github.com/iho/tradeledger/internal/usecase/mocks"
)

func TestBalanceUseCase_GetBalance(t *testing.T) {
	tests := []struct {
		name          string
		unpaidLoans   decimal.Decimal
		totalExpenses decimal.Decimal
		want          decimal.Decimal
	}{
		{
			name:          "loans minus expenses",
			unpaidLoans:   decimal.NewFromInt(1000),
			totalExpenses: decimal.NewFromInt(200),
			want:          decimal.NewFromInt(800),
		},
		{
			name:          "empty ledger is zero",
			unpaidLoans:   decimal.Zero,
			totalExpenses: decimal.Zero,
			want:          decimal.Zero,
		},
		{
			name:          "expenses exceeding loans go negative",
			unpaidLoans:   decimal.NewFromInt(100),
			totalExpenses: decimal.NewFromInt(350),
			want:          decimal.NewFromInt(-250),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ledgerRepo := mocks.NewMockLedgerRepository(ctrl)
			ledgerRepo.EXPECT().
				CashBalance(gomock.Any()).
				Return(tt.unpaidLoans, tt.totalExpenses, nil)

			uc := usecase.NewBalanceUseCase(ledgerRepo, nil, 0, nil)

			balance, err := uc.GetBalance(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !balance.Equal(tt.want) {
				t.Errorf("expected %s, got %s", tt.want, balance)
			}
		})
	}
}

func TestBalanceUseCase_GetBalance_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledgerRepo := mocks.NewMockLedgerRepository(ctrl)
	ledgerRepo.EXPECT().
		CashBalance(gomock.Any()).
		Return(decimal.Zero, decimal.Zero, errors.New("connection refused"))

	uc := usecase.NewBalanceUseCase(ledgerRepo, nil, 0, nil)

	_, err := uc.GetBalance(context.Background())
	if err == nil {
		t.Fatal("expected store error to surface")
	}
}

func TestBalanceUseCase_GetBalance_CachesResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledgerRepo := mocks.NewMockLedgerRepository(ctrl)
	// Exactly one store hit: the second read must come from cache.
	ledgerRepo.EXPECT().
		CashBalance(gomock.Any()).
		Return(decimal.NewFromInt(1000), decimal.NewFromInt(200), nil).
		Times(1)

	cache := mocks.NewMockCache()
	uc := usecase.NewBalanceUseCase(ledgerRepo, cache, 0, nil)

	for i := 0; i < 2; i++ {
		balance, err := uc.GetBalance(context.Background())
		if err != nil {
			t.Fatalf("read %d: unexpected error: %v", i, err)
		}
		if !balance.Equal(decimal.NewFromInt(800)) {
			t.Errorf("read %d: expected 800, got %s", i, balance)
		}
	}

	if cache.Value(usecase.BalanceCacheKey) != "800" {
		t.Errorf("expected cached value 800, got %q", cache.Value(usecase.BalanceCacheKey))
	}
}

func TestBalanceUseCase_GetBalance_CorruptCacheFallsThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledgerRepo := mocks.NewMockLedgerRepository(ctrl)
	ledgerRepo.EXPECT().
		CashBalance(gomock.Any()).
		Return(decimal.NewFromInt(500), decimal.Zero, nil)

	cache := mocks.NewMockCache()
	cache.Seed(usecase.BalanceCacheKey, "not-a-number")

	uc := usecase.NewBalanceUseCase(ledgerRepo, cache, 0, nil)

	balance, err := uc.GetBalance(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !balance.Equal(decimal.NewFromInt(500)) {
		t.Errorf("expected 500 from store, got %s", balance)
	}
}
