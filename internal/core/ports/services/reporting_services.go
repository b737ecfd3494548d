package services

import (
	"context"

	"github.com/SscSPs/sheets_ledger_app/internal/core/domain"
	"github.com/SscSPs/sheets_ledger_app/internal/dto"
	"github.com/SscSPs/sheets_ledger_app/internal/utils/accounting"
)

// ReportingService defines the interface for generating financial reports.
type ReportingService interface {
	// Dashboard computes the headline figures of a financial year and persists them.
	Dashboard(ctx context.Context, params dto.ReportParams) (*dto.DashboardResponse, error)

	NetWorth(ctx context.Context, params dto.ReportParams) (accounting.NetWorth, error)
	ExpensesByCategory(ctx context.Context, params dto.ReportParams) ([]domain.CategoryAmount, error)
	CashFlow(ctx context.Context, params dto.ReportParams) (accounting.CashFlow, error)
	Monthly(ctx context.Context, params dto.ReportParams) (*dto.MonthlyReportResponse, error)
	BalanceSheet(ctx context.Context, params dto.ReportParams) (*domain.BalanceSheet, error)
	IncomeStatement(ctx context.Context, params dto.ReportParams) (*domain.IncomeStatement, error)

	ListCategories(ctx context.Context) ([]domain.Category, error)
}
