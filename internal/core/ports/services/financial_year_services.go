package services

import (
	"context"

	"github.com/SscSPs/sheets_ledger_app/internal/core/domain"
)

// FinancialYearSvc exposes the selectable reporting years.
type FinancialYearSvc interface {
	ListFinancialYears(ctx context.Context) []domain.FinancialYear
	SelectedFinancialYear() string
	CurrentFinancialYear() string
	SelectFinancialYear(ctx context.Context, label string) error
}
