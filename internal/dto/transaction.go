package dto

import (
	"time"

	"github.com/SscSPs/sheets_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionEntryRequest is one debit or credit line of a new transaction.
type TransactionEntryRequest struct {
	AccountID string          `json:"accountId"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// CreateTransactionRequest defines the data needed to record a journal transaction.
// Business rules (balanced entries, one side per line) are checked by the service
// so that every violation is reported together.
type CreateTransactionRequest struct {
	Date        string                    `json:"date" binding:"omitempty,isodate"`
	Description string                    `json:"description"`
	Reference   string                    `json:"reference"`
	Category    string                    `json:"category"`
	Entries     []TransactionEntryRequest `json:"entries"`
}

// ToDomainTransaction builds an unsaved transaction from the request.
func (r CreateTransactionRequest) ToDomainTransaction() domain.Transaction {
	entries := make([]domain.TransactionEntry, len(r.Entries))
	for i, e := range r.Entries {
		entries[i] = domain.TransactionEntry{AccountID: e.AccountID, Debit: e.Debit, Credit: e.Credit}
	}
	return domain.Transaction{
		Date:        r.Date,
		Description: r.Description,
		Reference:   r.Reference,
		Category:    r.Category,
		Entries:     entries,
	}
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	FinancialYear string `form:"fy" binding:"omitempty,fylabel"`
	StartDate     string `form:"startDate" binding:"omitempty,isodate"`
	EndDate       string `form:"endDate" binding:"omitempty,isodate"`
	AccountID     string `form:"accountId"`
	Category      string `form:"category"`
	Limit         int    `form:"limit,default=50" binding:"min=1,max=500"`
	NextToken     string `form:"nextToken"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	ID            string                    `json:"id"`
	Date          string                    `json:"date"`
	Description   string                    `json:"description"`
	Reference     string                    `json:"reference,omitempty"`
	Category      string                    `json:"category,omitempty"`
	Entries       []domain.TransactionEntry `json:"entries"`
	TotalAmount   decimal.Decimal           `json:"totalAmount"`
	IsBalanced    bool                      `json:"isBalanced"`
	FinancialYear string                    `json:"financialYear"`
	CreatedAt     time.Time                 `json:"createdAt"`
	UpdatedAt     time.Time                 `json:"updatedAt"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(t domain.Transaction) TransactionResponse {
	entries := t.Entries
	if entries == nil {
		entries = []domain.TransactionEntry{}
	}
	return TransactionResponse{
		ID:            t.ID,
		Date:          t.Date,
		Description:   t.Description,
		Reference:     t.Reference,
		Category:      t.Category,
		Entries:       entries,
		TotalAmount:   t.TotalAmount,
		IsBalanced:    t.IsBalanced,
		FinancialYear: t.FinancialYear,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

// ToListTransactionResponse converts transactions to response DTOs.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		res[i] = ToTransactionResponse(t)
	}
	return res
}

// ListTransactionsResponse is one page of transactions, newest first.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    string                `json:"nextToken,omitempty"`
}

// ValidateTransactionResponse reports the outcome of validating a draft transaction.
type ValidateTransactionResponse struct {
	IsValid      bool            `json:"isValid"`
	Errors       []string        `json:"errors"`
	IsBalanced   bool            `json:"isBalanced"`
	TotalDebits  decimal.Decimal `json:"totalDebits"`
	TotalCredits decimal.Decimal `json:"totalCredits"`
	Difference   decimal.Decimal `json:"difference"`
}
