package accounting

import (
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/sheets_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CashSubTypeMarker identifies asset accounts counted as cash on the dashboard.
const CashSubTypeMarker = "cash"

// SummaryInput is the snapshot BuildFinancialSummary works over.
type SummaryInput struct {
	Accounts []domain.Account
	// RollupAccounts classifies transactions for the month's income and
	// expenses. Accounts is used when it is nil.
	RollupAccounts []domain.Account
	Transactions   []domain.Transaction
	Investments  []domain.Investment
	Month        string // YYYY-MM
	AsOf         time.Time
}

// BuildFinancialSummary computes the dashboard headline figures.
func BuildFinancialSummary(in SummaryInput) domain.FinancialSummary {
	netWorth := CalculateNetWorth(in.Accounts)
	portfolio := CalculatePortfolioValue(in.Investments)
	rollupAccounts := in.RollupAccounts
	if rollupAccounts == nil {
		rollupAccounts = in.Accounts
	}

	return domain.FinancialSummary{
		TotalAssets:      netWorth.TotalAssets,
		TotalLiabilities: netWorth.TotalLiabilities,
		NetWorth:         netWorth.NetWorth,
		MonthlyIncome:    CalculateMonthlyIncome(in.Transactions, rollupAccounts, in.Month),
		MonthlyExpenses:  CalculateMonthlyExpenses(in.Transactions, rollupAccounts, in.Month),
		InvestmentValue:  portfolio.CurrentValue,
		CashBalance:      CashBalance(in.Accounts),
		LastUpdated:      in.AsOf,
	}
}

// CashBalance sums active asset accounts whose sub-type mentions cash.
func CashBalance(accounts []domain.Account) decimal.Decimal {
	total := decimal.Zero
	for _, account := range accounts {
		if !account.IsActive || account.Type != domain.Asset {
			continue
		}
		if strings.Contains(strings.ToLower(account.SubType), CashSubTypeMarker) {
			total = total.Add(account.Balance)
		}
	}
	return total
}

// BuildBalanceSheet lists active asset, liability and equity accounts by
// section. Each item's percentage is its share of the section total.
func BuildBalanceSheet(accounts []domain.Account, asOf string, financialYear string) domain.BalanceSheet {
	sheet := domain.BalanceSheet{
		Assets:        make([]domain.BalanceSheetItem, 0),
		Liabilities:   make([]domain.BalanceSheetItem, 0),
		Equity:        make([]domain.BalanceSheetItem, 0),
		AsOfDate:      asOf,
		FinancialYear: financialYear,
	}

	for _, account := range accounts {
		if !account.IsActive {
			continue
		}
		item := domain.BalanceSheetItem{AccountName: account.Name, AccountType: account.Type, Amount: account.Balance}
		switch account.Type {
		case domain.Asset:
			sheet.Assets = append(sheet.Assets, item)
		case domain.Liability:
			sheet.Liabilities = append(sheet.Liabilities, item)
		case domain.Equity:
			sheet.Equity = append(sheet.Equity, item)
		}
	}

	sheet.TotalAssets = withPercentages(sheet.Assets)
	sheet.TotalLiabilities = withPercentages(sheet.Liabilities)
	sheet.TotalEquity = withPercentages(sheet.Equity)
	return sheet
}

// BuildIncomeStatement aggregates income credits and expense debits per
// account over the inclusive period [from, to].
func BuildIncomeStatement(transactions []domain.Transaction, accounts []domain.Account, from, to, financialYear string) domain.IncomeStatement {
	period := DateRange{Start: from, End: to}
	income := accountsOfType(accounts, domain.Income)
	expenses := accountsOfType(accounts, domain.Expense)

	incomeItems := newItemAccumulator()
	expenseItems := newItemAccumulator()
	for _, txn := range transactions {
		if !period.Contains(txn.Date) {
			continue
		}
		for _, entry := range txn.Entries {
			if account, ok := income[entry.AccountID]; ok && !entry.Credit.IsZero() {
				incomeItems.add(account, entry.Credit)
			}
			if account, ok := expenses[entry.AccountID]; ok && !entry.Debit.IsZero() {
				expenseItems.add(account, entry.Debit)
			}
		}
	}

	statement := domain.IncomeStatement{
		Income:        incomeItems.items(),
		Expenses:      expenseItems.items(),
		Period:        domain.Period{From: from, To: to},
		FinancialYear: financialYear,
	}
	statement.TotalIncome = withPercentages(statement.Income)
	statement.TotalExpenses = withPercentages(statement.Expenses)
	statement.NetIncome = statement.TotalIncome.Sub(statement.TotalExpenses)
	return statement
}

// MonthlyTrend returns income and expenses for each month in order.
func MonthlyTrend(transactions []domain.Transaction, accounts []domain.Account, months []string) []domain.MonthlyTrendPoint {
	points := make([]domain.MonthlyTrendPoint, 0, len(months))
	for _, month := range months {
		points = append(points, domain.MonthlyTrendPoint{
			Month:    month,
			Income:   CalculateMonthlyIncome(transactions, accounts, month),
			Expenses: CalculateMonthlyExpenses(transactions, accounts, month),
		})
	}
	return points
}

// RecentTransactions returns up to limit transactions, newest first. Undated
// or unreadable dates come last.
func RecentTransactions(transactions []domain.Transaction, limit int) []domain.Transaction {
	sorted := make([]domain.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		_, okI := parseDate(sorted[i].Date)
		_, okJ := parseDate(sorted[j].Date)
		if okI != okJ {
			return okI
		}
		return compareDates(sorted[i].Date, sorted[j].Date) > 0
	})
	if limit >= 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// withPercentages fills in each item's share of the total and returns the total.
func withPercentages(items []domain.BalanceSheetItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amount)
	}
	for i := range items {
		items[i].Percentage = gainPercentage(items[i].Amount, total)
	}
	return total
}

type itemAccumulator struct {
	order []string
	byID  map[string]domain.BalanceSheetItem
}

func newItemAccumulator() *itemAccumulator {
	return &itemAccumulator{byID: make(map[string]domain.BalanceSheetItem)}
}

func (a *itemAccumulator) add(account domain.Account, amount decimal.Decimal) {
	item, ok := a.byID[account.ID]
	if !ok {
		a.order = append(a.order, account.ID)
		item = domain.BalanceSheetItem{AccountName: account.Name, AccountType: account.Type, Amount: decimal.Zero}
	}
	item.Amount = item.Amount.Add(amount)
	a.byID[account.ID] = item
}

func (a *itemAccumulator) items() []domain.BalanceSheetItem {
	out := make([]domain.BalanceSheetItem, 0, len(a.order))
	for _, id := range a.order {
		out = append(out, a.byID[id])
	}
	return out
}
