package mapping_test

import (
	"testing"
	"time"

	"github.com/SscSPs/sheets_ledger_app/internal/apperrors"
	"github.com/SscSPs/sheets_ledger_app/internal/core/domain"
	"github.com/SscSPs/sheets_ledger_app/internal/models"
	"github.com/SscSPs/sheets_ledger_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionModelRoundTrip(t *testing.T) {
	created := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	txn := domain.Transaction{
		ID: "t1", Date: "2024-05-01", Description: "Salary", Category: "Income",
		Entries: []domain.TransactionEntry{
			{AccountID: "1001", AccountName: "Savings", Debit: decimal.RequireFromString("5000"), Credit: decimal.Zero},
			{AccountID: "4001", AccountName: "Salary", Debit: decimal.Zero, Credit: decimal.RequireFromString("5000")},
		},
		TotalAmount: decimal.RequireFromString("5000"), IsBalanced: true,
		FinancialYear: "2024-25", CreatedAt: created, UpdatedAt: created,
	}

	m, err := mapping.ToModelTransaction(txn)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), m.TransactionDate)
	assert.Contains(t, string(m.Entries), `"accountId":"1001"`)

	back, err := mapping.ToDomainTransaction(m)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", back.Date)
	require.Len(t, back.Entries, 2)
	assert.True(t, back.Entries[1].Credit.Equal(decimal.RequireFromString("5000")))
	assert.Equal(t, "Salary", back.Entries[1].AccountName)
}

func TestTransactionModel_RejectsBadDate(t *testing.T) {
	_, err := mapping.ToModelTransaction(domain.Transaction{ID: "t1", Date: "01/05/2024"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestAccountModelRoundTrip(t *testing.T) {
	acc := domain.Account{ID: "1001", Name: "Savings", Type: domain.Asset, SubType: "Bank",
		Balance: decimal.RequireFromString("10.25"), IsActive: true, FinancialYear: "2024-25"}
	assert.Equal(t, acc, mapping.ToDomainAccount(mapping.ToModelAccount(acc)))
}

func TestInvestmentModelRoundTrip(t *testing.T) {
	inv := domain.Investment{ID: "i1", Symbol: "INFY", Type: domain.MutualFund, Quantity: decimal.RequireFromString("3")}
	assert.Equal(t, inv, mapping.ToDomainInvestment(mapping.ToModelInvestment(inv)))
}

func TestCashbookEntryFromModel(t *testing.T) {
	m := models.CashbookEntry{
		EntryID: "c1", EntryDate: time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), BankAccount: "HDFC",
		EntryType: "withdrawal", Amount: decimal.RequireFromString("250"), Reconciled: true,
	}
	d := mapping.ToDomainCashbookEntry(m)
	assert.Equal(t, "2024-06-03", d.Date)
	assert.Equal(t, domain.Withdrawal, d.Type)
	assert.True(t, d.Reconciled)
}

func TestParseISODate(t *testing.T) {
	d, err := mapping.ParseISODate("2025-03-31")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-31", mapping.FormatISODate(d))

	_, err = mapping.ParseISODate("2025-3-31")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
