//	mockgen -source=internal/usecase/interfaces.go -destination=internal/usecase/mocks/mock_interfaces.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"

	decimal "github.com/shopspring/decimal"
	gomock "go.uber.org/mock/gomock"

	domain "github.com/iho/tradeledger/internal/domain"
)

// MockLedgerRepository is a mock of LedgerRepository interface.
type MockLedgerRepository struct {
	ctrl     *gomock.Controller
	recorder *MockLedgerRepositoryMockRecorder
	isgomock struct{}
}

// MockLedgerRepositoryMockRecorder is the mock recorder for MockLedgerRepository.
type MockLedgerRepositoryMockRecorder struct {
	mock *MockLedgerRepository
}

// NewMockLedgerRepository creates a new mock instance.
func NewMockLedgerRepository(ctrl *gomock.Controller) *MockLedgerRepository {
	mock := &MockLedgerRepository{ctrl: ctrl}
	mock.recorder = &MockLedgerRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockLedgerRepository) EXPECT() *MockLedgerRepositoryMockRecorder {
	return m.recorder
}

// CashBalance mocks base method.
func (m *MockLedgerRepository) CashBalance(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CashBalance", ctx)
	ret0, _ := ret[0].(decimal.Decimal)
	ret1, _ := ret[1].(decimal.Decimal)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// CashBalance indicates an expected call of CashBalance.
func (mr *MockLedgerRepositoryMockRecorder) CashBalance(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CashBalance", reflect.TypeOf((*MockLedgerRepository)(nil).CashBalance), ctx)
}

// MockSupplierDebtRepository is a mock of SupplierDebtRepository interface.
type MockSupplierDebtRepository struct {
	ctrl     *gomock.Controller
	recorder *MockSupplierDebtRepositoryMockRecorder
	isgomock struct{}
}

// MockSupplierDebtRepositoryMockRecorder is the mock recorder for MockSupplierDebtRepository.
type MockSupplierDebtRepositoryMockRecorder struct {
	mock *MockSupplierDebtRepository
}

// NewMockSupplierDebtRepository creates a new mock instance.
func NewMockSupplierDebtRepository(ctrl *gomock.Controller) *MockSupplierDebtRepository {
	mock := &MockSupplierDebtRepository{ctrl: ctrl}
	mock.recorder = &MockSupplierDebtRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSupplierDebtRepository) EXPECT() *MockSupplierDebtRepositoryMockRecorder {
	return m.recorder
}

// ListOutstandingByItem mocks base method.
func (m *MockSupplierDebtRepository) ListOutstandingByItem(ctx context.Context, supplierID string) ([]*domain.ItemDebt, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListOutstandingByItem", ctx, supplierID)
	ret0, _ := ret[0].([]*domain.ItemDebt)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListOutstandingByItem indicates an expected call of ListOutstandingByItem.
func (mr *MockSupplierDebtRepositoryMockRecorder) ListOutstandingByItem(ctx, supplierID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListOutstandingByItem", reflect.TypeOf((*MockSupplierDebtRepository)(nil).ListOutstandingByItem), ctx, supplierID)
}

// SupplierExists mocks base method.
func (m *MockSupplierDebtRepository) SupplierExists(ctx context.Context, supplierID string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SupplierExists", ctx, supplierID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SupplierExists indicates an expected call of SupplierExists.
func (mr *MockSupplierDebtRepositoryMockRecorder) SupplierExists(ctx, supplierID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SupplierExists", reflect.TypeOf((*MockSupplierDebtRepository)(nil).SupplierExists), ctx, supplierID)
}
