package services_test

import (
	"context"

	"github.com/SscSPs/sheets_ledger_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock repositories ---

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, fy string) ([]domain.Account, error) {
	args := m.Called(ctx, fy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	// hand out a copy so callers cannot mutate the fixture
	acc := *args.Get(0).(*domain.Account)
	return &acc, args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	return m.Called(ctx, account).Error(0)
}

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, fy string) ([]domain.Transaction, error) {
	args := m.Called(ctx, fy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	return m.Called(ctx, txn).Error(0)
}

type MockCashbookRepository struct {
	mock.Mock
}

func (m *MockCashbookRepository) ListCashbookEntries(ctx context.Context, fy string) ([]domain.CashbookEntry, error) {
	args := m.Called(ctx, fy)
	if fn, ok := args.Get(0).(func(context.Context, string) []domain.CashbookEntry); ok {
		return fn(ctx, fy), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashbookEntry), args.Error(1)
}

func (m *MockCashbookRepository) SaveCashbookEntry(ctx context.Context, entry domain.CashbookEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockCashbookRepository) UpdateCashbookBalances(ctx context.Context, entries []domain.CashbookEntry) error {
	return m.Called(ctx, entries).Error(0)
}

type MockInvestmentRepository struct {
	mock.Mock
}

func (m *MockInvestmentRepository) ListInvestments(ctx context.Context, fy string) ([]domain.Investment, error) {
	args := m.Called(ctx, fy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Investment), args.Error(1)
}

func (m *MockInvestmentRepository) FindInvestmentByID(ctx context.Context, investmentID string) (*domain.Investment, error) {
	args := m.Called(ctx, investmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	inv := *args.Get(0).(*domain.Investment)
	return &inv, args.Error(1)
}

func (m *MockInvestmentRepository) SaveInvestment(ctx context.Context, inv domain.Investment) error {
	return m.Called(ctx, inv).Error(0)
}

func (m *MockInvestmentRepository) UpdateInvestment(ctx context.Context, inv domain.Investment) error {
	return m.Called(ctx, inv).Error(0)
}

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) SaveSummary(ctx context.Context, summary domain.FinancialSummary) error {
	return m.Called(ctx, summary).Error(0)
}
