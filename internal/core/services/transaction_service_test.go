package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/sheets_ledger_app/internal/apperrors"
	"github.com/SscSPs/sheets_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/sheets_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/sheets_ledger_app/internal/core/services"
	"github.com/SscSPs/sheets_ledger_app/internal/dto"
	"github.com/SscSPs/sheets_ledger_app/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockBalanceRecalculator records which accounts a transaction touched.
type MockBalanceRecalculator struct {
	mock.Mock
	portssvc.AccountCalculatorSvc
}

func (m *MockBalanceRecalculator) RecalculateBalances(ctx context.Context, accountIDs []string) error {
	return m.Called(ctx, accountIDs).Error(0)
}

type TransactionServiceTestSuite struct {
	suite.Suite
	ctx         context.Context
	txnRepo     *MockTransactionRepository
	accountRepo *MockAccountRepository
	balances    *MockBalanceRecalculator
	service     portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.txnRepo = new(MockTransactionRepository)
	suite.accountRepo = new(MockAccountRepository)
	suite.balances = new(MockBalanceRecalculator)
	suite.service = services.NewTransactionService(suite.txnRepo, suite.accountRepo, suite.balances, newSelector(suite.T()), services.WithClock(fixedClock))
}

func (suite *TransactionServiceTestSuite) TearDownTest() {
	suite.txnRepo.AssertExpectations(suite.T())
	suite.accountRepo.AssertExpectations(suite.T())
	suite.balances.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) knownAccounts() {
	suite.accountRepo.On("ListAccounts", suite.ctx, "").Return([]domain.Account{
		{ID: "1001", Name: "Savings", Type: domain.Asset},
		{ID: "5001", Name: "Groceries", Type: domain.Expense},
	}, nil).Once()
}

func groceryRequest() dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		Date:        "2025-02-10",
		Description: " Weekly shop ",
		Category:    "Food",
		Entries: []dto.TransactionEntryRequest{
			{AccountID: "5001", Debit: amount("82.50")},
			{AccountID: "1001", Credit: amount("82.50")},
		},
	}
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	suite.knownAccounts()
	var saved domain.Transaction
	suite.txnRepo.On("SaveTransaction", suite.ctx, mock.AnythingOfType("domain.Transaction")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Transaction) }).
		Return(nil).Once()
	suite.balances.On("RecalculateBalances", suite.ctx, []string{"5001", "1001"}).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(suite.ctx, groceryRequest())

	suite.Require().NoError(err)
	suite.NotEmpty(txn.ID)
	suite.Equal("Weekly shop", txn.Description)
	suite.Equal("2024-25", txn.FinancialYear, "February 2025 belongs to the year starting April 2024")
	suite.True(txn.IsBalanced)
	suite.True(txn.TotalAmount.Equal(amount("82.50")))
	suite.Equal("Groceries", txn.Entries[0].AccountName)
	suite.Equal("Savings", txn.Entries[1].AccountName)
	suite.Equal(fixedNow, txn.CreatedAt)
	suite.Equal(txn.ID, saved.ID)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_RejectsWithAllMessages() {
	suite.accountRepo.On("ListAccounts", suite.ctx, "").Return([]domain.Account{}, nil).Once()

	_, err := suite.service.CreateTransaction(suite.ctx, dto.CreateTransactionRequest{
		Entries: []dto.TransactionEntryRequest{
			{AccountID: "1001", Debit: amount("10"), Credit: amount("10")},
			{AccountID: "", Debit: amount("5")},
		},
	})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	details := apperrors.DetailsOf(err)
	suite.Contains(details, accounting.MsgDescriptionRequired)
	suite.Contains(details, accounting.MsgDateRequired)
	suite.Contains(details, accounting.MsgEntryAccount)
	suite.Contains(details, accounting.MsgEntryBothAmounts)
	suite.Contains(details, "Unknown account: 1001")
	suite.txnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_SurvivesRecalculationFailure() {
	suite.knownAccounts()
	suite.txnRepo.On("SaveTransaction", suite.ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()
	suite.balances.On("RecalculateBalances", suite.ctx, mock.Anything).Return(assert.AnError).Once()

	txn, err := suite.service.CreateTransaction(suite.ctx, groceryRequest())

	suite.NoError(err)
	suite.NotNil(txn)
}

func (suite *TransactionServiceTestSuite) TestValidateTransaction_ReportsTotals() {
	suite.knownAccounts()
	req := groceryRequest()
	req.Entries[1].Credit = amount("80")

	result, err := suite.service.ValidateTransaction(suite.ctx, req)

	suite.Require().NoError(err)
	suite.False(result.IsValid)
	suite.False(result.IsBalanced)
	suite.True(result.Difference.Equal(amount("2.5")))
}

func (suite *TransactionServiceTestSuite) TestListTransactions_FiltersSortsAndPages() {
	t0 := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	suite.txnRepo.On("ListTransactions", suite.ctx, "2024-25").Return([]domain.Transaction{
		{ID: "a", Date: "2024-06-01", CreatedAt: t0, Entries: []domain.TransactionEntry{{AccountID: "1001"}}},
		{ID: "b", Date: "2024-07-01", CreatedAt: t0, Entries: []domain.TransactionEntry{{AccountID: "1001"}}},
		{ID: "c", Date: "2024-07-01", CreatedAt: t0.Add(time.Hour), Entries: []domain.TransactionEntry{{AccountID: "1001"}}},
		{ID: "d", Date: "2024-08-01", CreatedAt: t0, Entries: []domain.TransactionEntry{{AccountID: "2001"}}},
	}, nil).Twice()

	page, next, err := suite.service.ListTransactions(suite.ctx, dto.ListTransactionsParams{AccountID: "1001", Limit: 2})
	suite.Require().NoError(err)
	suite.Require().Len(page, 2)
	suite.Equal("c", page[0].ID)
	suite.Equal("b", page[1].ID)
	suite.NotEmpty(next)

	page, next, err = suite.service.ListTransactions(suite.ctx, dto.ListTransactionsParams{AccountID: "1001", Limit: 2, NextToken: next})
	suite.Require().NoError(err)
	suite.Require().Len(page, 1)
	suite.Equal("a", page[0].ID)
	suite.Empty(next)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_BadToken() {
	suite.txnRepo.On("ListTransactions", suite.ctx, "2023-24").Return([]domain.Transaction{}, nil).Once()

	_, _, err := suite.service.ListTransactions(suite.ctx, dto.ListTransactionsParams{FinancialYear: "2023-24", NextToken: "%%%"})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestTransactionService(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
