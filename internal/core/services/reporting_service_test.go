package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/sheets_ledger_app/internal/apperrors"
	"github.com/SscSPs/sheets_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/sheets_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sheets_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/sheets_ledger_app/internal/core/services"
	"github.com/SscSPs/sheets_ledger_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	ctx            context.Context
	accountRepo    *MockAccountRepository
	txnRepo        *MockTransactionRepository
	cashbookRepo   *MockCashbookRepository
	investmentRepo *MockInvestmentRepository
	categoryRepo   *MockCategoryRepository
	dashboardRepo  *MockDashboardRepository
	service        portssvc.ReportingService
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.accountRepo = new(MockAccountRepository)
	suite.txnRepo = new(MockTransactionRepository)
	suite.cashbookRepo = new(MockCashbookRepository)
	suite.investmentRepo = new(MockInvestmentRepository)
	suite.categoryRepo = new(MockCategoryRepository)
	suite.dashboardRepo = new(MockDashboardRepository)

	repos := portsrepo.RepositoryProvider{
		AccountRepo:     suite.accountRepo,
		TransactionRepo: suite.txnRepo,
		CashbookRepo:    suite.cashbookRepo,
		InvestmentRepo:  suite.investmentRepo,
		CategoryRepo:    suite.categoryRepo,
		DashboardRepo:   suite.dashboardRepo,
	}
	suite.service = services.NewReportingService(repos, newSelector(suite.T()),
		services.WithDisplayCurrency("INR"),
		services.WithReportingBaseOptions(services.WithClock(fixedClock)))
}

func (suite *ReportingServiceTestSuite) TearDownTest() {
	suite.accountRepo.AssertExpectations(suite.T())
	suite.txnRepo.AssertExpectations(suite.T())
	suite.dashboardRepo.AssertExpectations(suite.T())
}

func reportAccounts() []domain.Account {
	return []domain.Account{
		{ID: "1001", Name: "Wallet", Type: domain.Asset, SubType: "Cash", Balance: amount("5000"), IsActive: true},
		{ID: "2001", Name: "Card", Type: domain.Liability, SubType: "Credit Card", Balance: amount("1000"), IsActive: true},
		{ID: "4001", Name: "Salary", Type: domain.Income, SubType: "Employment", IsActive: true},
		{ID: "5001", Name: "Living", Type: domain.Expense, SubType: "Household", IsActive: true},
	}
}

func reportTransactions() []domain.Transaction {
	return []domain.Transaction{
		{ID: "t1", Date: "2024-05-01", Entries: []domain.TransactionEntry{
			{AccountID: "1001", Debit: amount("5000")}, {AccountID: "4001", Credit: amount("5000")},
		}},
		{ID: "t2", Date: "2024-05-03", Category: "Housing", Entries: []domain.TransactionEntry{
			{AccountID: "5001", Debit: amount("1200")}, {AccountID: "1001", Credit: amount("1200")},
		}},
		{ID: "t3", Date: "2024-04-20", Category: "Food", Entries: []domain.TransactionEntry{
			{AccountID: "5001", Debit: amount("300")}, {AccountID: "2001", Credit: amount("300")},
		}},
	}
}

func (suite *ReportingServiceTestSuite) TestDashboard() {
	suite.accountRepo.On("ListAccounts", suite.ctx, "2024-25").Return(reportAccounts(), nil).Once()
	suite.accountRepo.On("ListAccounts", suite.ctx, "").Return(reportAccounts(), nil).Once()
	suite.txnRepo.On("ListTransactions", suite.ctx, "2024-25").Return(reportTransactions(), nil).Once()
	suite.investmentRepo.On("ListInvestments", suite.ctx, "2024-25").Return([]domain.Investment{}, nil).Once()
	suite.dashboardRepo.On("SaveSummary", suite.ctx, mock.MatchedBy(func(s domain.FinancialSummary) bool {
		return s.NetWorth.Equal(amount("4000")) && s.LastUpdated.Equal(fixedNow)
	})).Return(nil).Once()

	d, err := suite.service.Dashboard(suite.ctx, dto.ReportParams{})

	suite.Require().NoError(err)
	suite.Equal("2024-25", d.FinancialYear)
	suite.True(d.Summary.MonthlyIncome.Equal(amount("5000")))
	suite.True(d.Summary.MonthlyExpenses.Equal(amount("1200")))
	suite.True(d.Summary.CashBalance.Equal(amount("5000")))
	suite.Equal("₹4,000.00", d.FormattedSummary["netWorth"])
	suite.Require().Len(d.RecentTransactions, 3)
	suite.Equal("t2", d.RecentTransactions[0].ID)
	suite.Require().Len(d.ExpensesByCategory, 2)
	suite.Equal("Housing", d.ExpensesByCategory[0].Category)
	suite.Len(d.Trend, 12)
	suite.Equal("2024-04", d.Trend[0].Month)
	suite.True(d.Trend[0].Expenses.Equal(amount("300")))
}

func (suite *ReportingServiceTestSuite) TestDashboard_PersistFailureIsNotFatal() {
	suite.accountRepo.On("ListAccounts", suite.ctx, mock.Anything).Return(reportAccounts(), nil).Twice()
	suite.txnRepo.On("ListTransactions", suite.ctx, "2024-25").Return(reportTransactions(), nil).Once()
	suite.investmentRepo.On("ListInvestments", suite.ctx, "2024-25").Return(nil, nil).Once()
	suite.dashboardRepo.On("SaveSummary", suite.ctx, mock.Anything).Return(assert.AnError).Once()

	d, err := suite.service.Dashboard(suite.ctx, dto.ReportParams{})

	suite.NoError(err)
	suite.NotNil(d)
}

func (suite *ReportingServiceTestSuite) TestNetWorth() {
	suite.accountRepo.On("ListAccounts", suite.ctx, "2023-24").Return(reportAccounts(), nil).Once()

	nw, err := suite.service.NetWorth(suite.ctx, dto.ReportParams{FinancialYear: "2023-24"})

	suite.Require().NoError(err)
	suite.True(nw.NetWorth.Equal(amount("4000")))
}

func (suite *ReportingServiceTestSuite) TestMonthly_UsesYearOfMonth() {
	suite.txnRepo.On("ListTransactions", suite.ctx, "2024-25").Return(reportTransactions(), nil).Once()
	suite.accountRepo.On("ListAccounts", suite.ctx, "").Return(reportAccounts(), nil).Once()

	m, err := suite.service.Monthly(suite.ctx, dto.ReportParams{Month: "2024-04"})

	suite.Require().NoError(err)
	suite.True(m.Income.IsZero())
	suite.True(m.Expenses.Equal(amount("300")))
	suite.True(m.Net.Equal(amount("-300")))
	suite.Equal("2024-25", m.FinancialYear)
	suite.Equal(1, m.Quarter)
}

func (suite *ReportingServiceTestSuite) TestMonthly_JanuaryIsLastQuarterOfPreviousYear() {
	suite.txnRepo.On("ListTransactions", suite.ctx, "2024-25").Return([]domain.Transaction{}, nil).Once()
	suite.accountRepo.On("ListAccounts", suite.ctx, "").Return(reportAccounts(), nil).Once()

	m, err := suite.service.Monthly(suite.ctx, dto.ReportParams{Month: "2025-01"})

	suite.Require().NoError(err)
	suite.Equal("2024-25", m.FinancialYear)
	suite.Equal(4, m.Quarter)
}

func (suite *ReportingServiceTestSuite) TestMonthly_BadMonth() {
	_, err := suite.service.Monthly(suite.ctx, dto.ReportParams{Month: "May"})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReportingServiceTestSuite) TestIncomeStatement_DefaultsToYear() {
	suite.txnRepo.On("ListTransactions", suite.ctx, "2024-25").Return(reportTransactions(), nil).Once()
	suite.accountRepo.On("ListAccounts", suite.ctx, "").Return(reportAccounts(), nil).Once()

	st, err := suite.service.IncomeStatement(suite.ctx, dto.ReportParams{})

	suite.Require().NoError(err)
	suite.Equal(domain.Period{From: "2024-04-01", To: "2025-03-31"}, st.Period)
	suite.True(st.NetIncome.Equal(amount("3500")))
}

func (suite *ReportingServiceTestSuite) TestIncomeStatement_InvertedRange() {
	_, err := suite.service.IncomeStatement(suite.ctx, dto.ReportParams{StartDate: "2024-09-01", EndDate: "2024-08-01"})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet_DefaultsAsOfToday() {
	suite.accountRepo.On("ListAccounts", suite.ctx, "2024-25").Return(reportAccounts(), nil).Once()

	bs, err := suite.service.BalanceSheet(suite.ctx, dto.ReportParams{})

	suite.Require().NoError(err)
	suite.Equal("2024-05-15", bs.AsOfDate)
	suite.True(bs.TotalAssets.Equal(amount("5000")))
}

func (suite *ReportingServiceTestSuite) TestListCategories_Error() {
	suite.categoryRepo.On("ListCategories", suite.ctx).Return(nil, assert.AnError).Once()

	_, err := suite.service.ListCategories(suite.ctx)

	suite.ErrorIs(err, assert.AnError)
}

func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
