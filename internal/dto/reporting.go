package dto

import (
	"github.com/SscSPs/sheets_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportParams holds the query parameters shared by the report endpoints.
type ReportParams struct {
	FinancialYear string `form:"fy" binding:"omitempty,fylabel"`
	Month         string `form:"month" binding:"omitempty,yearmonth"`
	StartDate     string `form:"startDate" binding:"omitempty,isodate"`
	EndDate       string `form:"endDate" binding:"omitempty,isodate"`
	AsOf          string `form:"asOf" binding:"omitempty,isodate"`
}

// MonthlyReportResponse reports income and expenses for one calendar month.
type MonthlyReportResponse struct {
	Month         string          `json:"month"`
	FinancialYear string          `json:"financialYear"`
	Quarter       int             `json:"quarter"` // financial quarter, April-June is 1
	Income        decimal.Decimal `json:"income"`
	Expenses      decimal.Decimal `json:"expenses"`
	Net           decimal.Decimal `json:"net"`
}

// DashboardResponse is everything the dashboard page renders.
type DashboardResponse struct {
	FinancialYear      string                     `json:"financialYear"`
	Summary            domain.FinancialSummary    `json:"summary"`
	FormattedSummary   map[string]string          `json:"formattedSummary"`
	RecentTransactions []TransactionResponse      `json:"recentTransactions"`
	ExpensesByCategory []domain.CategoryAmount    `json:"expensesByCategory"`
	Portfolio          PortfolioResponse          `json:"portfolio"`
	Trend              []domain.MonthlyTrendPoint `json:"trend"`
}
