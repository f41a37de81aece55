package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/iho/tradeledger/internal/adapter/http/handler"
	apimiddleware "github.com/iho/tradeledger/internal/adapter/http/middleware"
	"github.com/iho/tradeledger/internal/usecase"
	"github.com/iho/tradeledger/internal/usecase/mocks"
)

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_MetricsEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /metrics to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_IdempotencyMiddlewareInvokesStore(t *testing.T) {
	store := &stubIdempotencyStore{}
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.IdempotencyStore = store
	}))

	body := `{"partner_id":"partner-1","amount":"5000"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/loans/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apimiddleware.IdempotencyKeyHeader, "key-123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if !store.checkCalled {
		t.Fatalf("expected idempotency store to be used")
	}
}

func TestNewRouter_RegistersKeyRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig())

	chiRoutes, ok := router.(chi.Router)
	if !ok {
		t.Fatal("router does not implement chi.Routes")
	}

	seen := map[string]bool{}
	if err := chi.Walk(chiRoutes, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		seen[method+" "+route] = true
		return nil
	}); err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	expected := []string{
		"GET /health",
		"GET /ready",
		"POST /api/v1/loans/",
		"GET /api/v1/loans/",
		"GET /api/v1/loans/{id}",
		"POST /api/v1/loans/{id}/repayments",
		"GET /api/v1/loans/{id}/payments",
		"POST /api/v1/expenses/",
		"GET /api/v1/expenses/",
		"POST /api/v1/orders/{id}/expenses",
		"GET /api/v1/balance",
		"GET /api/v1/activity",
		"GET /api/v1/suppliers/{id}/debts",
	}

	for _, route := range expected {
		if !seen[route] {
			t.Fatalf("expected route %s to be registered", route)
		}
	}
}

func newRouterConfig(opts ...func(*RouterConfig)) RouterConfig {
	activityUC := usecase.NewActivityUseCase(mocks.NewMockActivityRepository(), nil)

	loanUC := usecase.NewLoanUseCase(usecase.LoanUseCaseDeps{
		TxManager:   mocks.NewMockTransactionManager(),
		LoanRepo:    mocks.NewMockLoanRepository(),
		PaymentRepo: mocks.NewMockPaymentRepository(),
		OrderRepo:   mocks.NewMockOrderRepository(),
		Partners:    mocks.NewMockPartnerDirectory(),
		Activity:    activityUC,
		IDGen:       mocks.NewMockIDGenerator(),
		Retrier:     mocks.NewMockRetrier(),
		Cache:       mocks.NewMockCache(),
	})

	expenseUC := usecase.NewExpenseUseCase(usecase.ExpenseUseCaseDeps{
		TxManager:   mocks.NewMockTransactionManager(),
		ExpenseRepo: mocks.NewMockExpenseRepository(),
		OrderRepo:   mocks.NewMockOrderRepository(),
		Activity:    activityUC,
		IDGen:       mocks.NewMockIDGenerator(),
		Cache:       mocks.NewMockCache(),
	})

	cfg := RouterConfig{
		LoanHandler:     handler.NewLoanHandler(loanUC),
		ExpenseHandler:  handler.NewExpenseHandler(expenseUC),
		BalanceHandler:  handler.NewBalanceHandler(nil),
		ActivityHandler: handler.NewActivityHandler(activityUC),
		DebtHandler:     handler.NewDebtHandler(nil),
		HealthHandler:   &handler.HealthHandler{},
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

type stubIdempotencyStore struct {
	checkCalled bool
}

func (s *stubIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	s.checkCalled = true
	return false, nil, nil
}

func (s *stubIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return nil
}
