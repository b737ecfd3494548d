package dto

import "github.com/SscSPs/sheets_ledger_app/internal/core/domain"

// SelectFinancialYearRequest changes the financial year the app works in.
type SelectFinancialYearRequest struct {
	Year string `json:"year" binding:"required,fylabel"`
}

// FinancialYearsResponse lists the selectable years.
type FinancialYearsResponse struct {
	Selected string                 `json:"selected"`
	Current  string                 `json:"current"`
	Years    []domain.FinancialYear `json:"years"`
}

// FinancialYearQuery selects a financial year in a query string; empty means the selected one.
type FinancialYearQuery struct {
	FinancialYear string `form:"fy" binding:"omitempty,fylabel"`
}
