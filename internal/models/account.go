package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is the persisted form of a ledger account.
type Account struct {
	AccountID     string          `db:"account_id"`
	Name          string          `db:"name"`
	AccountType   string          `db:"account_type"`
	SubType       string          `db:"sub_type"`
	Balance       decimal.Decimal `db:"balance"`
	IsActive      bool            `db:"is_active"`
	CreatedAt     time.Time       `db:"created_at"`
	FinancialYear string          `db:"financial_year"`
}
