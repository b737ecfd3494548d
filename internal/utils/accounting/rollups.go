package accounting

import (
	"sort"

	"github.com/SscSPs/sheets_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UncategorizedLabel is used when neither the transaction nor the account
// carries a category.
const UncategorizedLabel = "Uncategorized"

// DateRange is an optional inclusive range of ISO dates. An empty bound is open.
// Bounds are compared lexically, which orders ISO-8601 dates correctly.
type DateRange struct {
	Start string `json:"startDate,omitempty"`
	End   string `json:"endDate,omitempty"`
}

// Contains reports whether date falls within the range.
func (r DateRange) Contains(date string) bool {
	if r.Start != "" && date < r.Start {
		return false
	}
	if r.End != "" && date > r.End {
		return false
	}
	return true
}

// CashFlow is the outcome of CalculateCashFlow.
type CashFlow struct {
	TotalInflow  decimal.Decimal `json:"totalInflow"`
	TotalOutflow decimal.Decimal `json:"totalOutflow"`
	NetCashFlow  decimal.Decimal `json:"netCashFlow"`
}

// accountsOfType indexes the accounts of one type by id. When ids repeat the
// first account wins.
func accountsOfType(accounts []domain.Account, accountType domain.AccountType) map[string]domain.Account {
	index := make(map[string]domain.Account)
	for _, account := range accounts {
		if account.Type != accountType {
			continue
		}
		if _, seen := index[account.ID]; !seen {
			index[account.ID] = account
		}
	}
	return index
}

// monthOf returns the YYYY-MM prefix of an ISO date.
func monthOf(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}

// CalculateMonthlyIncome sums credits posted to income accounts by the
// transactions dated in month (YYYY-MM). Entries on unknown accounts add nothing.
func CalculateMonthlyIncome(transactions []domain.Transaction, accounts []domain.Account, month string) decimal.Decimal {
	income := accountsOfType(accounts, domain.Income)
	total := decimal.Zero
	for _, txn := range transactions {
		if monthOf(txn.Date) != month {
			continue
		}
		for _, entry := range txn.Entries {
			if _, ok := income[entry.AccountID]; ok {
				total = total.Add(entry.Credit)
			}
		}
	}
	return total
}

// CalculateMonthlyExpenses sums debits posted to expense accounts by the
// transactions dated in month (YYYY-MM).
func CalculateMonthlyExpenses(transactions []domain.Transaction, accounts []domain.Account, month string) decimal.Decimal {
	expenses := accountsOfType(accounts, domain.Expense)
	total := decimal.Zero
	for _, txn := range transactions {
		if monthOf(txn.Date) != month {
			continue
		}
		for _, entry := range txn.Entries {
			if _, ok := expenses[entry.AccountID]; ok {
				total = total.Add(entry.Debit)
			}
		}
	}
	return total
}

// CalculateExpensesByCategory groups expense debits inside period by category
// and returns the groups sorted by amount, largest first. Groups with equal
// amounts keep the order in which they were first seen.
func CalculateExpensesByCategory(transactions []domain.Transaction, accounts []domain.Account, period DateRange) []domain.CategoryAmount {
	expenses := accountsOfType(accounts, domain.Expense)
	totals := make(map[string]decimal.Decimal)
	order := make([]string, 0)

	for _, txn := range transactions {
		if !period.Contains(txn.Date) {
			continue
		}
		for _, entry := range txn.Entries {
			account, ok := expenses[entry.AccountID]
			if !ok || entry.Debit.IsZero() {
				continue
			}
			category := txn.Category
			if category == "" {
				category = account.SubType
			}
			if category == "" {
				category = UncategorizedLabel
			}
			if _, seen := totals[category]; !seen {
				order = append(order, category)
			}
			totals[category] = totals[category].Add(entry.Debit)
		}
	}

	result := make([]domain.CategoryAmount, 0, len(order))
	for _, category := range order {
		result = append(result, domain.CategoryAmount{Category: category, Amount: totals[category]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Amount.GreaterThan(result[j].Amount)
	})
	return result
}

// CalculateCashFlow partitions cashbook entries inside period into deposits
// and withdrawals.
func CalculateCashFlow(entries []domain.CashbookEntry, period DateRange) CashFlow {
	inflow := decimal.Zero
	outflow := decimal.Zero
	for _, entry := range entries {
		if !period.Contains(entry.Date) {
			continue
		}
		switch entry.Type {
		case domain.Deposit:
			inflow = inflow.Add(entry.Amount)
		case domain.Withdrawal:
			outflow = outflow.Add(entry.Amount)
		}
	}
	return CashFlow{
		TotalInflow:  inflow,
		TotalOutflow: outflow,
		NetCashFlow:  inflow.Sub(outflow),
	}
}
