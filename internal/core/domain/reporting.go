package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryAmount is one row of a categorized expense rollup.
type CategoryAmount struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// FinancialSummary holds the headline figures shown on the dashboard.
type FinancialSummary struct {
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	NetWorth         decimal.Decimal `json:"netWorth"`
	MonthlyIncome    decimal.Decimal `json:"monthlyIncome"`
	MonthlyExpenses  decimal.Decimal `json:"monthlyExpenses"`
	InvestmentValue  decimal.Decimal `json:"investmentValue"`
	CashBalance      decimal.Decimal `json:"cashBalance"`
	LastUpdated      time.Time       `json:"lastUpdated"`
}

// BalanceSheetItem is one account line of a balance sheet or income statement.
type BalanceSheetItem struct {
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Amount      decimal.Decimal `json:"amount"`
	Percentage  decimal.Decimal `json:"percentage"`
}

// BalanceSheet groups active balance-sheet accounts by section.
type BalanceSheet struct {
	Assets           []BalanceSheetItem `json:"assets"`
	Liabilities      []BalanceSheetItem `json:"liabilities"`
	Equity           []BalanceSheetItem `json:"equity"`
	TotalAssets      decimal.Decimal    `json:"totalAssets"`
	TotalLiabilities decimal.Decimal    `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal    `json:"totalEquity"`
	AsOfDate         string             `json:"asOfDate"`
	FinancialYear    string             `json:"financialYear"`
}

// Period is an inclusive ISO date range.
type Period struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// IncomeStatement reports income and expense activity over a period.
type IncomeStatement struct {
	Income        []BalanceSheetItem `json:"income"`
	Expenses      []BalanceSheetItem `json:"expenses"`
	TotalIncome   decimal.Decimal    `json:"totalIncome"`
	TotalExpenses decimal.Decimal    `json:"totalExpenses"`
	NetIncome     decimal.Decimal    `json:"netIncome"`
	Period        Period             `json:"period"`
	FinancialYear string             `json:"financialYear"`
}

// MonthlyTrendPoint is one month of the dashboard trend series.
type MonthlyTrendPoint struct {
	Month    string          `json:"month"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}

// FinancialYear describes an April-March reporting period.
type FinancialYear struct {
	Year      string    `json:"year"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	IsCurrent bool      `json:"isCurrent"`
}
