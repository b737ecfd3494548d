package accounting

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/sheets_ledger_app/internal/core/domain"
)

var accountCodePrefixes = map[domain.AccountType]string{
	domain.Asset:     "1",
	domain.Liability: "2",
	domain.Equity:    "3",
	domain.Income:    "4",
	domain.Expense:   "5",
}

// AccountCodePrefix returns the leading digit used for account codes of type t.
func AccountCodePrefix(t domain.AccountType) string {
	if prefix, ok := accountCodePrefixes[t]; ok {
		return prefix
	}
	return "9"
}

// GenerateAccountCode proposes the next code for an account of the given type:
// the type prefix followed by the highest existing numeric suffix plus one,
// zero-padded to three digits. Codes are allocated per type; subType does not
// change the result.
//
// The result is advisory. Two callers scanning the same snapshot get the same
// code; nothing here reserves it.
func GenerateAccountCode(accountType domain.AccountType, subType string, existing []domain.Account) string {
	prefix := AccountCodePrefix(accountType)

	maxNumber := 0
	for _, account := range existing {
		if account.Type != accountType || !strings.HasPrefix(account.ID, prefix) {
			continue
		}
		if n := leadingInt(account.ID[len(prefix):]); n > maxNumber {
			maxNumber = n
		}
	}
	return fmt.Sprintf("%s%03d", prefix, maxNumber+1)
}

// leadingInt parses the run of digits at the start of s, returning 0 when
// there is none.
func leadingInt(s string) int {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
