package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashbookEntryType is the direction of a bank movement.
type CashbookEntryType string

const (
	Deposit    CashbookEntryType = "deposit"
	Withdrawal CashbookEntryType = "withdrawal"
)

// CashbookEntry is a single bank movement. Balance holds the running total
// after this entry and is only ever set by the running-balance computation.
type CashbookEntry struct {
	ID            string            `json:"id"`
	Date          string            `json:"date"`
	Description   string            `json:"description"`
	BankAccount   string            `json:"bankAccount"`
	Type          CashbookEntryType `json:"type"`
	Amount        decimal.Decimal   `json:"amount"`
	Balance       decimal.Decimal   `json:"balance"`
	Category      string            `json:"category"`
	Reference     string            `json:"reference,omitempty"`
	Reconciled    bool              `json:"reconciled"`
	FinancialYear string            `json:"financialYear"`
	CreatedAt     time.Time         `json:"createdAt"`
}
