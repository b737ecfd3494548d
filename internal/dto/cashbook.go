package dto

import (
	"github.com/SscSPs/sheets_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCashbookEntryRequest defines the data needed to record a bank movement.
type CreateCashbookEntryRequest struct {
	Date        string                   `json:"date" binding:"required,isodate"`
	Description string                   `json:"description" binding:"required"`
	BankAccount string                   `json:"bankAccount" binding:"required"`
	Type        domain.CashbookEntryType `json:"type" binding:"required,oneof=deposit withdrawal"`
	Amount      decimal.Decimal          `json:"amount"`
	Category    string                   `json:"category"`
	Reference   string                   `json:"reference"`
	Reconciled  bool                     `json:"reconciled"`
}

// ListCashbookParams defines query parameters for listing cashbook entries.
// StartingBalance is the balance before the first entry of the period.
type ListCashbookParams struct {
	FinancialYear   string `form:"fy" binding:"omitempty,fylabel"`
	BankAccount     string `form:"bankAccount"`
	StartingBalance string `form:"startingBalance" binding:"omitempty,number"`
}

// CashFlowParams restricts a cash flow report to a financial year and date range.
type CashFlowParams struct {
	FinancialYear string `form:"fy" binding:"omitempty,fylabel"`
	StartDate     string `form:"startDate" binding:"omitempty,isodate"`
	EndDate       string `form:"endDate" binding:"omitempty,isodate"`
}
