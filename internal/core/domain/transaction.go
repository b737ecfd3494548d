package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionEntry is one line of a journal transaction, affecting one account.
// Exactly one of Debit and Credit is expected to be non-zero.
type TransactionEntry struct {
	AccountID   string          `json:"accountId"`
	AccountName string          `json:"accountName"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// Transaction is a dated journal event owning its entries.
// TotalAmount and IsBalanced are cached values derived from Entries.
type Transaction struct {
	ID            string             `json:"id"`
	Date          string             `json:"date"` // ISO-8601 YYYY-MM-DD
	Description   string             `json:"description"`
	Reference     string             `json:"reference,omitempty"`
	Entries       []TransactionEntry `json:"entries"`
	TotalAmount   decimal.Decimal    `json:"totalAmount"`
	IsBalanced    bool               `json:"isBalanced"`
	Category      string             `json:"category,omitempty"`
	FinancialYear string             `json:"financialYear"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

// TouchesAccount reports whether any entry references accountID.
func (t Transaction) TouchesAccount(accountID string) bool {
	for _, e := range t.Entries {
		if e.AccountID == accountID {
			return true
		}
	}
	return false
}
