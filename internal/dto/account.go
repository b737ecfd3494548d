package dto

import (
	"time"

	"github.com/SscSPs/sheets_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
// When ID is empty an account code is generated from the type.
type CreateAccountRequest struct {
	ID            string             `json:"id" binding:"omitempty,numeric"`
	Name          string             `json:"name" binding:"required"`
	Type          domain.AccountType `json:"type" binding:"required,oneof=asset liability equity income expense"`
	SubType       string             `json:"subType" binding:"required"`
	FinancialYear string             `json:"financialYear" binding:"omitempty,fylabel"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	Name     *string `json:"name"`
	SubType  *string `json:"subType"`
	IsActive *bool   `json:"isActive"`
}

// GenerateAccountCodeRequest asks for the next free code of an account type.
type GenerateAccountCodeRequest struct {
	Type    domain.AccountType `json:"type" binding:"required,oneof=asset liability equity income expense"`
	SubType string             `json:"subType"`
}

// AccountCodeResponse carries a proposed account code.
type AccountCodeResponse struct {
	Code string `json:"code"`
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	FinancialYear string `form:"fy" binding:"omitempty,fylabel"`
	Type          string `form:"type" binding:"omitempty,oneof=asset liability equity income expense"`
	ActiveOnly    bool   `form:"activeOnly"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	ID            string             `json:"id"`
	Code          string             `json:"code"`
	Name          string             `json:"name"`
	Type          domain.AccountType `json:"type"`
	SubType       string             `json:"subType"`
	Balance       decimal.Decimal    `json:"balance"`
	IsActive      bool               `json:"isActive"`
	CreatedAt     time.Time          `json:"createdAt"`
	FinancialYear string             `json:"financialYear"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		ID:            acc.ID,
		Code:          acc.ID,
		Name:          acc.Name,
		Type:          acc.Type,
		SubType:       acc.SubType,
		Balance:       acc.Balance,
		IsActive:      acc.IsActive,
		CreatedAt:     acc.CreatedAt,
		FinancialYear: acc.FinancialYear,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// AccountBalanceResponse compares the stored balance with the one recomputed from the journal.
type AccountBalanceResponse struct {
	AccountID string          `json:"accountId"`
	Stored    decimal.Decimal `json:"stored"`
	Computed  decimal.Decimal `json:"computed"`
	InSync    bool            `json:"inSync"`
}
