package accounting_test

import (
	"testing"

	"github.com/SscSPs/sheets_ledger_app/internal/core/domain"
	"github.com/SscSPs/sheets_ledger_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "%s: expected %s, got %s", field, want, got.String())
}

func debit(accountID, amount string) domain.TransactionEntry {
	return domain.TransactionEntry{AccountID: accountID, Debit: dec(amount), Credit: decimal.Zero}
}

func credit(accountID, amount string) domain.TransactionEntry {
	return domain.TransactionEntry{AccountID: accountID, Debit: decimal.Zero, Credit: dec(amount)}
}

func TestValidateDoubleEntry_Balanced(t *testing.T) {
	result := accounting.ValidateDoubleEntry([]domain.TransactionEntry{
		debit("1001", "250.50"),
		credit("4001", "200"),
		credit("4002", "50.50"),
	})

	assert.True(t, result.IsValid)
	assert.True(t, result.Difference.IsZero())
	assertDecimal(t, "250.50", result.TotalDebits, "TotalDebits")
	assertDecimal(t, "250.50", result.TotalCredits, "TotalCredits")
}

func TestValidateDoubleEntry_ToleranceBoundary(t *testing.T) {
	testCases := []struct {
		name      string
		creditAmt string
		wantValid bool
	}{
		{name: "difference 0.009 is within tolerance", creditAmt: "99.991", wantValid: true},
		{name: "difference 0.01 is outside tolerance", creditAmt: "99.99", wantValid: false},
		{name: "difference 0.011 is outside tolerance", creditAmt: "99.989", wantValid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := accounting.ValidateDoubleEntry([]domain.TransactionEntry{
				debit("1001", "100"),
				credit("2001", tc.creditAmt),
			})
			assert.Equal(t, tc.wantValid, result.IsValid)
		})
	}
}

func TestValidateDoubleEntry_Empty(t *testing.T) {
	result := accounting.ValidateDoubleEntry(nil)
	assert.True(t, result.IsValid)
	assert.True(t, result.TotalDebits.IsZero())
}

func TestValidateTransaction_CollectsAllErrors(t *testing.T) {
	txn := domain.Transaction{
		Description: "   ",
		Entries: []domain.TransactionEntry{
			{AccountID: "", Debit: dec("10"), Credit: dec("5")},
			{AccountID: "5001", Debit: decimal.Zero, Credit: decimal.Zero},
		},
	}

	validation := accounting.ValidateTransaction(txn)

	assert.False(t, validation.IsValid)
	assert.Equal(t, []string{
		accounting.MsgDescriptionRequired,
		accounting.MsgDateRequired,
		"Transaction is not balanced. Difference: 5.00",
		accounting.MsgEntryAccount,
		accounting.MsgEntryBothAmounts,
		accounting.MsgEntryNoAmount,
	}, validation.Errors)
	assert.Contains(t, validation.Error(), accounting.MsgDateRequired+", ")
}

func TestValidateTransaction_NoEntries(t *testing.T) {
	validation := accounting.ValidateTransaction(domain.Transaction{Description: "Rent", Date: "2024-05-01"})

	assert.False(t, validation.IsValid)
	assert.Equal(t, []string{accounting.MsgEntriesRequired}, validation.Errors)
}

func TestValidateTransaction_Valid(t *testing.T) {
	validation := accounting.ValidateTransaction(domain.Transaction{
		Description: "Salary",
		Date:        "2024-05-01",
		Entries:     []domain.TransactionEntry{debit("1001", "5000"), credit("4001", "5000")},
	})

	assert.True(t, validation.IsValid)
	assert.Empty(t, validation.Errors)
}

func TestApplyTransactionTotals(t *testing.T) {
	txn := domain.Transaction{
		Entries: []domain.TransactionEntry{debit("5001", "120"), credit("1001", "100")},
	}

	out := accounting.ApplyTransactionTotals(txn)

	assertDecimal(t, "120", out.TotalAmount, "TotalAmount")
	assert.False(t, out.IsBalanced)
	assert.False(t, txn.IsBalanced)
	assert.True(t, txn.TotalAmount.IsZero(), "input must not be modified")
}

func TestCalculateAccountBalance_NormalBalanceSign(t *testing.T) {
	txns := []domain.Transaction{
		{ID: "t1", Entries: []domain.TransactionEntry{debit("X", "100")}},
	}

	asset := domain.Account{ID: "X", Type: domain.Asset}
	liability := domain.Account{ID: "X", Type: domain.Liability}

	assertDecimal(t, "100", accounting.CalculateAccountBalance(asset, txns), "asset")
	assertDecimal(t, "-100", accounting.CalculateAccountBalance(liability, txns), "liability")
}

func TestCalculateAccountBalance_SumsAcrossTransactions(t *testing.T) {
	txns := []domain.Transaction{
		{ID: "t1", Entries: []domain.TransactionEntry{debit("5001", "40"), credit("1001", "40")}},
		{ID: "t2", Entries: []domain.TransactionEntry{debit("5001", "60.25"), credit("1001", "60.25")}},
		{ID: "t3", Entries: []domain.TransactionEntry{credit("5001", "10"), debit("1001", "10")}},
	}

	expense := domain.Account{ID: "5001", Type: domain.Expense}
	assertDecimal(t, "90.25", accounting.CalculateAccountBalance(expense, txns), "expense")

	income := domain.Account{ID: "4001", Type: domain.Income}
	assert.True(t, accounting.CalculateAccountBalance(income, txns).IsZero(), "untouched account")

	unknown := domain.Account{ID: "5001", Type: domain.AccountType("bogus")}
	assert.True(t, accounting.CalculateAccountBalance(unknown, txns).IsZero(), "unknown type contributes zero")
}

func TestCalculateRunningBalance_OrdersByDate(t *testing.T) {
	entries := []domain.CashbookEntry{
		{ID: "w", Date: "2024-06-02", Type: domain.Withdrawal, Amount: dec("20"), Description: "ATM"},
		{ID: "d", Date: "2024-06-01", Type: domain.Deposit, Amount: dec("50"), Description: "Salary"},
	}

	out := accounting.CalculateRunningBalance(entries, decimal.Zero)

	require.Len(t, out, 2)
	assert.Equal(t, "d", out[0].ID)
	assert.Equal(t, "w", out[1].ID)
	assertDecimal(t, "50", out[0].Balance, "first balance")
	assertDecimal(t, "30", out[1].Balance, "second balance")

	assert.Equal(t, "w", entries[0].ID, "input order must be untouched")
	assert.True(t, entries[0].Balance.IsZero(), "input balances must be untouched")
}

func TestCalculateRunningBalance_StableForEqualDates(t *testing.T) {
	entries := []domain.CashbookEntry{
		{ID: "a", Date: "2024-06-01", Type: domain.Deposit, Amount: dec("10")},
		{ID: "b", Date: "2024-06-01", Type: domain.Deposit, Amount: dec("20")},
		{ID: "c", Date: "2024-06-01", Type: domain.CashbookEntryType("transfer"), Amount: dec("5")},
	}

	out := accounting.CalculateRunningBalance(entries, dec("100"))

	require.Len(t, out, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{out[0].ID, out[1].ID, out[2].ID})
	assertDecimal(t, "110", out[0].Balance, "a")
	assertDecimal(t, "130", out[1].Balance, "b")
	assertDecimal(t, "125", out[2].Balance, "c: non-deposit subtracts")
}

func TestCalculateRunningBalance_UnreadableDatesSortLast(t *testing.T) {
	entries := []domain.CashbookEntry{
		{ID: "x", Date: "someday", Type: domain.Deposit, Amount: dec("1")},
		{ID: "late", Date: "2024-06-05", Type: domain.Deposit, Amount: dec("2")},
		{ID: "y", Date: "", Type: domain.Deposit, Amount: dec("3")},
		{ID: "early", Date: "2024-06-01", Type: domain.Deposit, Amount: dec("4")},
		{ID: "mid", Date: "2024-06-03T10:00:00Z", Type: domain.Deposit, Amount: dec("5")},
	}

	out := accounting.CalculateRunningBalance(entries, decimal.Zero)

	ids := make([]string, len(out))
	for i, e := range out {
		ids[i] = e.ID
	}
	assert.Equal(t, []string{"early", "mid", "late", "y", "x"}, ids)
	assertDecimal(t, "15", out[4].Balance, "final balance")
}

func TestCalculateRunningBalance_PreservesOtherFields(t *testing.T) {
	entries := []domain.CashbookEntry{
		{ID: "1", Date: "2024-04-10", Description: "Rent", BankAccount: "HDFC", Type: domain.Withdrawal,
			Amount: dec("1500"), Category: "Housing", Reference: "CHQ-9", Reconciled: true, FinancialYear: "2024-25"},
		{ID: "2", Date: "2024-04-01", Description: "Opening", BankAccount: "HDFC", Type: domain.Deposit,
			Amount: dec("5000"), Category: "Transfer", FinancialYear: "2024-25"},
	}

	out := accounting.CalculateRunningBalance(entries, decimal.Zero)

	byID := map[string]domain.CashbookEntry{}
	for _, e := range out {
		byID[e.ID] = e
	}
	for _, original := range entries {
		got := byID[original.ID]
		got.Balance = original.Balance
		assert.Equal(t, original, got)
	}
}

func TestCalculateNetWorth_ExcludesInactive(t *testing.T) {
	accounts := []domain.Account{
		{ID: "1001", Type: domain.Asset, Balance: dec("1000"), IsActive: true},
		{ID: "1002", Type: domain.Asset, Balance: dec("500"), IsActive: false},
		{ID: "2001", Type: domain.Liability, Balance: dec("300"), IsActive: true},
		{ID: "4001", Type: domain.Income, Balance: dec("9999"), IsActive: true},
	}

	nw := accounting.CalculateNetWorth(accounts)

	assertDecimal(t, "1000", nw.TotalAssets, "TotalAssets")
	assertDecimal(t, "300", nw.TotalLiabilities, "TotalLiabilities")
	assertDecimal(t, "700", nw.NetWorth, "NetWorth")
}

func TestCalculateInvestmentMetrics(t *testing.T) {
	m := accounting.CalculateInvestmentMetrics(domain.Investment{
		Quantity: dec("10"), AveragePrice: dec("100"), CurrentPrice: dec("120"),
	})

	assertDecimal(t, "1000", m.TotalInvestment, "TotalInvestment")
	assertDecimal(t, "1200", m.CurrentValue, "CurrentValue")
	assertDecimal(t, "200", m.GainLoss, "GainLoss")
	assertDecimal(t, "20", m.GainLossPercentage, "GainLossPercentage")
}

func TestCalculateInvestmentMetrics_ZeroCost(t *testing.T) {
	m := accounting.CalculateInvestmentMetrics(domain.Investment{
		Quantity: decimal.Zero, AveragePrice: decimal.Zero, CurrentPrice: dec("50"),
	})

	assert.True(t, m.GainLossPercentage.IsZero())
	assert.True(t, m.TotalInvestment.IsZero())
}

func TestApplyInvestmentMetrics(t *testing.T) {
	inv := domain.Investment{ID: "i1", Symbol: "INFY", Quantity: dec("4"), AveragePrice: dec("50"), CurrentPrice: dec("40")}

	out := accounting.ApplyInvestmentMetrics(inv)

	assert.Equal(t, "INFY", out.Symbol)
	assertDecimal(t, "200", out.TotalInvestment, "TotalInvestment")
	assertDecimal(t, "160", out.CurrentValue, "CurrentValue")
	assertDecimal(t, "-40", out.GainLoss, "GainLoss")
	assertDecimal(t, "-20", out.GainLossPercentage, "GainLossPercentage")
}

func TestCalculatePortfolioValue(t *testing.T) {
	p := accounting.CalculatePortfolioValue([]domain.Investment{
		{Quantity: dec("10"), AveragePrice: dec("100"), CurrentPrice: dec("120")},
		{Quantity: dec("5"), AveragePrice: dec("200"), CurrentPrice: dec("150")},
	})

	assertDecimal(t, "2000", p.TotalInvestment, "TotalInvestment")
	assertDecimal(t, "1950", p.CurrentValue, "CurrentValue")
	assertDecimal(t, "-50", p.TotalGainLoss, "TotalGainLoss")
	assertDecimal(t, "-2.5", p.TotalGainLossPercentage, "TotalGainLossPercentage")

	empty := accounting.CalculatePortfolioValue(nil)
	assert.True(t, empty.TotalGainLossPercentage.IsZero())
}

func rollupFixture() ([]domain.Transaction, []domain.Account) {
	accounts := []domain.Account{
		{ID: "1001", Name: "Savings", Type: domain.Asset},
		{ID: "4001", Name: "Salary", Type: domain.Income},
		{ID: "5001", Name: "Groceries", Type: domain.Expense, SubType: "Household"},
		{ID: "5002", Name: "Fuel", Type: domain.Expense},
		{ID: "5003", Name: "Rent", Type: domain.Expense, SubType: "Housing"},
	}
	txns := []domain.Transaction{
		{ID: "t1", Date: "2024-05-01", Entries: []domain.TransactionEntry{debit("1001", "5000"), credit("4001", "5000")}},
		{ID: "t2", Date: "2024-05-03", Category: "Food", Entries: []domain.TransactionEntry{debit("5001", "120"), credit("1001", "120")}},
		{ID: "t3", Date: "2024-05-20", Category: "Food", Entries: []domain.TransactionEntry{debit("5001", "80"), credit("1001", "80")}},
		{ID: "t4", Date: "2024-05-21", Entries: []domain.TransactionEntry{debit("5002", "60"), credit("1001", "60")}},
		{ID: "t5", Date: "2024-05-28", Entries: []domain.TransactionEntry{debit("5003", "900"), credit("1001", "900")}},
		{ID: "t6", Date: "2024-06-01", Category: "Food", Entries: []domain.TransactionEntry{debit("5001", "999"), credit("1001", "999")}},
		{ID: "t7", Date: "2024-05-15", Entries: []domain.TransactionEntry{debit("ghost", "77"), credit("4001", "77")}},
	}
	return txns, accounts
}

func TestCalculateMonthlyIncomeAndExpenses(t *testing.T) {
	txns, accounts := rollupFixture()

	assertDecimal(t, "5077", accounting.CalculateMonthlyIncome(txns, accounts, "2024-05"), "May income")
	assertDecimal(t, "1160", accounting.CalculateMonthlyExpenses(txns, accounts, "2024-05"), "May expenses")
	assertDecimal(t, "999", accounting.CalculateMonthlyExpenses(txns, accounts, "2024-06"), "June expenses")
	assert.True(t, accounting.CalculateMonthlyIncome(txns, accounts, "2023-01").IsZero())
}

func TestCalculateExpensesByCategory(t *testing.T) {
	txns, accounts := rollupFixture()

	got := accounting.CalculateExpensesByCategory(txns, accounts, accounting.DateRange{Start: "2024-05-01", End: "2024-05-31"})

	require.Len(t, got, 3)
	assert.Equal(t, "Housing", got[0].Category)
	assertDecimal(t, "900", got[0].Amount, "Housing")
	assert.Equal(t, "Food", got[1].Category)
	assertDecimal(t, "200", got[1].Amount, "Food")
	assert.Equal(t, accounting.UncategorizedLabel, got[2].Category)
	assertDecimal(t, "60", got[2].Amount, "Uncategorized")
}

func TestCalculateExpensesByCategory_OpenRange(t *testing.T) {
	txns, accounts := rollupFixture()

	got := accounting.CalculateExpensesByCategory(txns, accounts, accounting.DateRange{})

	require.NotEmpty(t, got)
	assert.Equal(t, "Food", got[0].Category)
	assertDecimal(t, "1199", got[0].Amount, "Food")
}

func TestCalculateCashFlow(t *testing.T) {
	entries := []domain.CashbookEntry{
		{Date: "2024-05-01", Type: domain.Deposit, Amount: dec("1000")},
		{Date: "2024-05-10", Type: domain.Withdrawal, Amount: dec("250")},
		{Date: "2024-05-31", Type: domain.Withdrawal, Amount: dec("50")},
		{Date: "2024-06-01", Type: domain.Deposit, Amount: dec("700")},
	}

	flow := accounting.CalculateCashFlow(entries, accounting.DateRange{Start: "2024-05-01", End: "2024-05-31"})

	assertDecimal(t, "1000", flow.TotalInflow, "TotalInflow")
	assertDecimal(t, "300", flow.TotalOutflow, "TotalOutflow")
	assertDecimal(t, "700", flow.NetCashFlow, "NetCashFlow")
}

func TestGenerateAccountCode(t *testing.T) {
	existing := []domain.Account{
		{ID: "1001", Type: domain.Asset},
		{ID: "1007", Type: domain.Asset},
		{ID: "1abc", Type: domain.Asset},
		{ID: "1012", Type: domain.Liability},
		{ID: "2003", Type: domain.Liability},
		{ID: "5001", Type: domain.Expense},
	}

	testCases := []struct {
		name        string
		accountType domain.AccountType
		want        string
	}{
		{name: "asset continues after highest", accountType: domain.Asset, want: "1008"},
		{name: "liability", accountType: domain.Liability, want: "2004"},
		{name: "first equity", accountType: domain.Equity, want: "3001"},
		{name: "first income", accountType: domain.Income, want: "4001"},
		{name: "expense", accountType: domain.Expense, want: "5002"},
		{name: "unknown type", accountType: domain.AccountType("other"), want: "9001"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, accounting.GenerateAccountCode(tc.accountType, "", existing))
		})
	}
}

func TestGenerateAccountCode_SubTypeDoesNotSplitRanges(t *testing.T) {
	existing := []domain.Account{{ID: "1004", Type: domain.Asset, SubType: "Bank"}}

	assert.Equal(t, "1005", accounting.GenerateAccountCode(domain.Asset, "Cash", existing))
	assert.Equal(t, "1005", accounting.GenerateAccountCode(domain.Asset, "Bank", existing))
}

func TestBuildBalanceSheet(t *testing.T) {
	accounts := []domain.Account{
		{ID: "1001", Name: "Savings", Type: domain.Asset, Balance: dec("750"), IsActive: true},
		{ID: "1002", Name: "Wallet", Type: domain.Asset, Balance: dec("250"), IsActive: true},
		{ID: "1003", Name: "Old", Type: domain.Asset, Balance: dec("999"), IsActive: false},
		{ID: "2001", Name: "Card", Type: domain.Liability, Balance: dec("100"), IsActive: true},
		{ID: "3001", Name: "Capital", Type: domain.Equity, Balance: dec("900"), IsActive: true},
	}

	sheet := accounting.BuildBalanceSheet(accounts, "2025-03-31", "2024-25")

	require.Len(t, sheet.Assets, 2)
	assertDecimal(t, "1000", sheet.TotalAssets, "TotalAssets")
	assertDecimal(t, "75", sheet.Assets[0].Percentage, "Savings share")
	assertDecimal(t, "25", sheet.Assets[1].Percentage, "Wallet share")
	assertDecimal(t, "100", sheet.TotalLiabilities, "TotalLiabilities")
	assertDecimal(t, "900", sheet.TotalEquity, "TotalEquity")
	assert.Equal(t, "2024-25", sheet.FinancialYear)
}

func TestBuildIncomeStatement(t *testing.T) {
	txns, accounts := rollupFixture()

	statement := accounting.BuildIncomeStatement(txns, accounts, "2024-05-01", "2024-05-31", "2024-25")

	require.Len(t, statement.Income, 1)
	assert.Equal(t, "Salary", statement.Income[0].AccountName)
	assertDecimal(t, "5077", statement.TotalIncome, "TotalIncome")
	require.Len(t, statement.Expenses, 3)
	assertDecimal(t, "1160", statement.TotalExpenses, "TotalExpenses")
	assertDecimal(t, "3917", statement.NetIncome, "NetIncome")
}

func TestBuildFinancialSummary(t *testing.T) {
	txns, accounts := rollupFixture()
	accounts = append(accounts,
		domain.Account{ID: "1010", Type: domain.Asset, SubType: "Cash in hand", Balance: dec("40"), IsActive: true},
		domain.Account{ID: "1011", Type: domain.Asset, SubType: "Petty CASH", Balance: dec("10"), IsActive: true},
		domain.Account{ID: "1012", Type: domain.Asset, SubType: "cash", Balance: dec("500"), IsActive: false},
	)
	investments := []domain.Investment{{Quantity: dec("2"), AveragePrice: dec("10"), CurrentPrice: dec("15")}}

	summary := accounting.BuildFinancialSummary(accounting.SummaryInput{
		Accounts: accounts, Transactions: txns, Investments: investments, Month: "2024-05",
	})

	assertDecimal(t, "50", summary.CashBalance, "CashBalance")
	assertDecimal(t, "30", summary.InvestmentValue, "InvestmentValue")
	assertDecimal(t, "5077", summary.MonthlyIncome, "MonthlyIncome")
	assertDecimal(t, "50", summary.NetWorth, "NetWorth")
}

func TestBuildFinancialSummary_RollupAccounts(t *testing.T) {
	txns, accounts := rollupFixture()
	yearAccounts := []domain.Account{{ID: "1001", Type: domain.Asset, Balance: dec("700"), IsActive: true}}

	withAll := accounting.BuildFinancialSummary(accounting.SummaryInput{
		Accounts: yearAccounts, RollupAccounts: accounts, Transactions: txns, Month: "2024-05",
	})
	yearOnly := accounting.BuildFinancialSummary(accounting.SummaryInput{
		Accounts: yearAccounts, Transactions: txns, Month: "2024-05",
	})

	assertDecimal(t, "700", withAll.NetWorth, "NetWorth")
	assertDecimal(t, "1160", withAll.MonthlyExpenses, "MonthlyExpenses")
	assertDecimal(t, "5077", withAll.MonthlyIncome, "MonthlyIncome")
	assert.True(t, yearOnly.MonthlyExpenses.IsZero())
	assert.True(t, yearOnly.MonthlyIncome.IsZero())
}

func TestRecentTransactions_UndatedLast(t *testing.T) {
	txns := []domain.Transaction{
		{ID: "undated"},
		{ID: "old", Date: "2024-01-01"},
		{ID: "junk", Date: "n/a"},
		{ID: "new", Date: "2024-03-01"},
	}

	recent := accounting.RecentTransactions(txns, -1)

	require.Len(t, recent, 4)
	assert.Equal(t, "new", recent[0].ID)
	assert.Equal(t, "old", recent[1].ID)
	assert.ElementsMatch(t, []string{"undated", "junk"}, []string{recent[2].ID, recent[3].ID})
}

func TestRecentTransactions(t *testing.T) {
	txns, _ := rollupFixture()

	recent := accounting.RecentTransactions(txns, 3)

	require.Len(t, recent, 3)
	assert.Equal(t, []string{"t6", "t5", "t4"}, []string{recent[0].ID, recent[1].ID, recent[2].ID})
	assert.Equal(t, "t1", txns[0].ID)
}

func TestCalculations_AreIdempotent(t *testing.T) {
	txns, accounts := rollupFixture()
	period := accounting.DateRange{Start: "2024-05-01", End: "2024-05-31"}
	cash := []domain.CashbookEntry{
		{ID: "a", Date: "2024-05-02", Type: domain.Deposit, Amount: dec("10")},
		{ID: "b", Date: "2024-05-01", Type: domain.Withdrawal, Amount: dec("3")},
	}
	invs := []domain.Investment{{Quantity: dec("3"), AveragePrice: dec("7"), CurrentPrice: dec("9")}}

	assert.Equal(t, accounting.CalculateExpensesByCategory(txns, accounts, period), accounting.CalculateExpensesByCategory(txns, accounts, period))
	assert.Equal(t, accounting.CalculateRunningBalance(cash, decimal.Zero), accounting.CalculateRunningBalance(cash, decimal.Zero))
	assert.Equal(t, accounting.CalculatePortfolioValue(invs), accounting.CalculatePortfolioValue(invs))
	assert.Equal(t, accounting.CalculateNetWorth(accounts), accounting.CalculateNetWorth(accounts))
	assert.Equal(t, accounting.ValidateTransaction(txns[1]), accounting.ValidateTransaction(txns[1]))
	assert.Equal(t, accounting.GenerateAccountCode(domain.Expense, "", accounts), accounting.GenerateAccountCode(domain.Expense, "", accounts))
}
