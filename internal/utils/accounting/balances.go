package accounting

import (
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/sheets_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedAmount applies the normal-balance convention to one entry:
// debits increase asset and expense accounts, credits increase liability,
// income and equity accounts. The second result is false for an unknown
// account type, in which case the amount is zero.
func SignedAmount(entry domain.TransactionEntry, accountType domain.AccountType) (decimal.Decimal, bool) {
	switch accountType {
	case domain.Asset, domain.Expense:
		return entry.Debit.Sub(entry.Credit), true
	case domain.Liability, domain.Equity, domain.Income:
		return entry.Credit.Sub(entry.Debit), true
	default:
		return decimal.Zero, false
	}
}

// CalculateAccountBalance accumulates the signed amount of every entry that
// references account across the journal.
func CalculateAccountBalance(account domain.Account, transactions []domain.Transaction) decimal.Decimal {
	balance := decimal.Zero
	for _, txn := range transactions {
		if !txn.TouchesAccount(account.ID) {
			continue
		}
		for _, entry := range txn.Entries {
			if entry.AccountID != account.ID {
				continue
			}
			signed, _ := SignedAmount(entry, account.Type)
			balance = balance.Add(signed)
		}
	}
	return balance
}

// CalculateRunningBalance orders a copy of entries by date (stable for equal
// dates) and sets each entry's Balance to the running total after it.
// Deposits add to the total; every other type subtracts.
func CalculateRunningBalance(entries []domain.CashbookEntry, startingBalance decimal.Decimal) []domain.CashbookEntry {
	sorted := make([]domain.CashbookEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return compareDates(sorted[i].Date, sorted[j].Date) < 0
	})

	running := startingBalance
	for i := range sorted {
		if sorted[i].Type == domain.Deposit {
			running = running.Add(sorted[i].Amount)
		} else {
			running = running.Sub(sorted[i].Amount)
		}
		sorted[i].Balance = running
	}
	return sorted
}

// NetWorth is the outcome of CalculateNetWorth.
type NetWorth struct {
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	NetWorth         decimal.Decimal `json:"netWorth"`
}

// CalculateNetWorth sums the cached balances of active asset and liability
// accounts. Inactive accounts are left out entirely.
func CalculateNetWorth(accounts []domain.Account) NetWorth {
	totalAssets := decimal.Zero
	totalLiabilities := decimal.Zero
	for _, account := range accounts {
		if !account.IsActive {
			continue
		}
		switch account.Type {
		case domain.Asset:
			totalAssets = totalAssets.Add(account.Balance)
		case domain.Liability:
			totalLiabilities = totalLiabilities.Add(account.Balance)
		}
	}
	return NetWorth{
		TotalAssets:      totalAssets,
		TotalLiabilities: totalLiabilities,
		NetWorth:         totalAssets.Sub(totalLiabilities),
	}
}

var dateLayouts = []string{"2006-01-02", time.RFC3339, time.RFC3339Nano}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// compareDates orders ISO dates chronologically. Dates that do not parse sort
// after every valid one, lexically among themselves.
func compareDates(a, b string) int {
	ta, okA := parseDate(a)
	tb, okB := parseDate(b)
	switch {
	case okA && okB:
		return ta.Compare(tb)
	case okA:
		return -1
	case okB:
		return 1
	}
	return strings.Compare(a, b)
}
