package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the persisted form of a journal transaction.
// Entries holds the JSON-encoded entry list (JSONB column).
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	TransactionDate time.Time       `db:"transaction_date"`
	Description     string          `db:"description"`
	Reference       string          `db:"reference"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	IsBalanced      bool            `db:"is_balanced"`
	Category        string          `db:"category"`
	FinancialYear   string          `db:"financial_year"`
	Entries         []byte          `db:"entries"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

// CashbookEntry is the persisted form of a bank movement.
type CashbookEntry struct {
	EntryID       string          `db:"entry_id"`
	EntryDate     time.Time       `db:"entry_date"`
	Description   string          `db:"description"`
	BankAccount   string          `db:"bank_account"`
	EntryType     string          `db:"entry_type"`
	Amount        decimal.Decimal `db:"amount"`
	Balance       decimal.Decimal `db:"balance"`
	Category      string          `db:"category"`
	Reference     string          `db:"reference"`
	Reconciled    bool            `db:"reconciled"`
	FinancialYear string          `db:"financial_year"`
	CreatedAt     time.Time       `db:"created_at"`
}

// Investment is the persisted form of a holding.
type Investment struct {
	InvestmentID       string          `db:"investment_id"`
	Symbol             string          `db:"symbol"`
	Name               string          `db:"name"`
	InvestmentType     string          `db:"investment_type"`
	Quantity           decimal.Decimal `db:"quantity"`
	AveragePrice       decimal.Decimal `db:"average_price"`
	CurrentPrice       decimal.Decimal `db:"current_price"`
	TotalInvestment    decimal.Decimal `db:"total_investment"`
	CurrentValue       decimal.Decimal `db:"current_value"`
	GainLoss           decimal.Decimal `db:"gain_loss"`
	GainLossPercentage decimal.Decimal `db:"gain_loss_percentage"`
	LastUpdated        time.Time       `db:"last_updated"`
	FinancialYear      string          `db:"financial_year"`
}
