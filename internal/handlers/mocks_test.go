package handlers_test

import (
	"context"

	"github.com/SscSPs/sheets_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/sheets_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/sheets_ledger_app/internal/dto"
	"github.com/SscSPs/sheets_ledger_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) GenerateAccountCode(ctx context.Context, req dto.GenerateAccountCodeRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}
func (m *MockAccountService) CalculateAccountBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockAccountService) RecalculateAccountBalance(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) RecalculateBalances(ctx context.Context, accountIDs []string) error {
	return m.Called(ctx, accountIDs).Error(0)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, string, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), args.String(1), args.Error(2)
}
func (m *MockTransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) ValidateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*dto.ValidateTransactionResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ValidateTransactionResponse), args.Error(1)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock CashbookService ---
type MockCashbookService struct {
	mock.Mock
}

func (m *MockCashbookService) ListCashbookEntries(ctx context.Context, params dto.ListCashbookParams) ([]domain.CashbookEntry, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashbookEntry), args.Error(1)
}
func (m *MockCashbookService) CreateCashbookEntry(ctx context.Context, req dto.CreateCashbookEntryRequest) (*domain.CashbookEntry, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashbookEntry), args.Error(1)
}
func (m *MockCashbookService) CashFlow(ctx context.Context, params dto.CashFlowParams) (accounting.CashFlow, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(accounting.CashFlow), args.Error(1)
}

var _ portssvc.CashbookSvcFacade = (*MockCashbookService)(nil)

// --- Mock InvestmentService ---
type MockInvestmentService struct {
	mock.Mock
}

func (m *MockInvestmentService) ListInvestments(ctx context.Context, fy string) ([]domain.Investment, error) {
	args := m.Called(ctx, fy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Investment), args.Error(1)
}
func (m *MockInvestmentService) Portfolio(ctx context.Context, fy string) (*dto.PortfolioResponse, error) {
	args := m.Called(ctx, fy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PortfolioResponse), args.Error(1)
}
func (m *MockInvestmentService) CreateInvestment(ctx context.Context, req dto.CreateInvestmentRequest) (*domain.Investment, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Investment), args.Error(1)
}
func (m *MockInvestmentService) UpdateInvestmentPrice(ctx context.Context, investmentID string, req dto.UpdateInvestmentPriceRequest) (*domain.Investment, error) {
	args := m.Called(ctx, investmentID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Investment), args.Error(1)
}

var _ portssvc.InvestmentSvcFacade = (*MockInvestmentService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) Dashboard(ctx context.Context, params dto.ReportParams) (*dto.DashboardResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DashboardResponse), args.Error(1)
}
func (m *MockReportingService) NetWorth(ctx context.Context, params dto.ReportParams) (accounting.NetWorth, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(accounting.NetWorth), args.Error(1)
}
func (m *MockReportingService) ExpensesByCategory(ctx context.Context, params dto.ReportParams) ([]domain.CategoryAmount, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryAmount), args.Error(1)
}
func (m *MockReportingService) CashFlow(ctx context.Context, params dto.ReportParams) (accounting.CashFlow, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(accounting.CashFlow), args.Error(1)
}
func (m *MockReportingService) Monthly(ctx context.Context, params dto.ReportParams) (*dto.MonthlyReportResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MonthlyReportResponse), args.Error(1)
}
func (m *MockReportingService) BalanceSheet(ctx context.Context, params dto.ReportParams) (*domain.BalanceSheet, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheet), args.Error(1)
}
func (m *MockReportingService) IncomeStatement(ctx context.Context, params dto.ReportParams) (*domain.IncomeStatement, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IncomeStatement), args.Error(1)
}
func (m *MockReportingService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

// --- Mock SessionService ---
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Login(ctx context.Context, password string) (string, *domain.Session, error) {
	args := m.Called(ctx, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*domain.Session), args.Error(2)
}
func (m *MockSessionService) VerifyToken(ctx context.Context, token string) (*domain.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

var _ portssvc.SessionSvc = (*MockSessionService)(nil)

// --- Mock FinancialYearService ---
type MockFinancialYearService struct {
	mock.Mock
}

func (m *MockFinancialYearService) ListFinancialYears(ctx context.Context) []domain.FinancialYear {
	return m.Called(ctx).Get(0).([]domain.FinancialYear)
}
func (m *MockFinancialYearService) SelectedFinancialYear() string {
	return m.Called().String(0)
}
func (m *MockFinancialYearService) CurrentFinancialYear() string {
	return m.Called().String(0)
}
func (m *MockFinancialYearService) SelectFinancialYear(ctx context.Context, label string) error {
	return m.Called(ctx, label).Error(0)
}

var _ portssvc.FinancialYearSvc = (*MockFinancialYearService)(nil)
