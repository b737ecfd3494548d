// Package accounting holds the pure ledger and portfolio calculations.
// Every function works on snapshots, never mutates its input and never fails
// for well-typed input: problems are reported in the returned values.
package accounting

import (
	"fmt"
	"strings"

	"github.com/SscSPs/sheets_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceTolerance is the absolute amount by which debits and credits may
// differ for a transaction to still count as balanced.
var BalanceTolerance = decimal.RequireFromString("0.01")

// Validation messages reported by ValidateTransaction.
const (
	MsgDescriptionRequired = "Description is required"
	MsgDateRequired        = "Date is required"
	MsgEntriesRequired     = "At least one entry is required"
	MsgEntryAccount        = "All entries must have an account"
	MsgEntryNoAmount       = "Each entry must have either a debit or credit amount"
	MsgEntryBothAmounts    = "Each entry cannot have both debit and credit amounts"
)

// DoubleEntryResult is the outcome of ValidateDoubleEntry.
type DoubleEntryResult struct {
	IsValid      bool            `json:"isValid"`
	TotalDebits  decimal.Decimal `json:"totalDebits"`
	TotalCredits decimal.Decimal `json:"totalCredits"`
	Difference   decimal.Decimal `json:"difference"`
}

// TransactionValidation is the outcome of ValidateTransaction.
type TransactionValidation struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// Error joins the collected messages, for callers that need a single string.
func (v TransactionValidation) Error() string {
	return strings.Join(v.Errors, ", ")
}

// ValidateDoubleEntry sums debits and credits independently and checks that
// they agree within BalanceTolerance.
func ValidateDoubleEntry(entries []domain.TransactionEntry) DoubleEntryResult {
	totalDebits := decimal.Zero
	totalCredits := decimal.Zero
	for _, entry := range entries {
		totalDebits = totalDebits.Add(entry.Debit)
		totalCredits = totalCredits.Add(entry.Credit)
	}
	difference := totalDebits.Sub(totalCredits).Abs()

	return DoubleEntryResult{
		IsValid:      difference.LessThan(BalanceTolerance),
		TotalDebits:  totalDebits,
		TotalCredits: totalCredits,
		Difference:   difference,
	}
}

// ValidateTransaction runs the structural checks, the double-entry check and the
// per-entry checks, collecting every error rather than stopping at the first.
func ValidateTransaction(txn domain.Transaction) TransactionValidation {
	errs := make([]string, 0)

	if strings.TrimSpace(txn.Description) == "" {
		errs = append(errs, MsgDescriptionRequired)
	}
	if strings.TrimSpace(txn.Date) == "" {
		errs = append(errs, MsgDateRequired)
	}
	if len(txn.Entries) == 0 {
		errs = append(errs, MsgEntriesRequired)
	}

	if result := ValidateDoubleEntry(txn.Entries); !result.IsValid {
		errs = append(errs, fmt.Sprintf("Transaction is not balanced. Difference: %s", result.Difference.StringFixed(2)))
	}

	for _, entry := range txn.Entries {
		if strings.TrimSpace(entry.AccountID) == "" {
			errs = append(errs, MsgEntryAccount)
		}
		hasDebit := !entry.Debit.IsZero()
		hasCredit := !entry.Credit.IsZero()
		if !hasDebit && !hasCredit {
			errs = append(errs, MsgEntryNoAmount)
		}
		if hasDebit && hasCredit {
			errs = append(errs, MsgEntryBothAmounts)
		}
	}

	return TransactionValidation{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}

// ApplyTransactionTotals returns a copy of txn whose cached TotalAmount and
// IsBalanced fields are recomputed from its entries.
func ApplyTransactionTotals(txn domain.Transaction) domain.Transaction {
	result := ValidateDoubleEntry(txn.Entries)
	out := txn
	out.Entries = append([]domain.TransactionEntry(nil), txn.Entries...)
	out.TotalAmount = result.TotalDebits
	out.IsBalanced = result.IsValid
	return out
}
