package mapping

import (
	"github.com/SscSPs/sheets_ledger_app/internal/core/domain"
	"github.com/SscSPs/sheets_ledger_app/internal/models"
)

// ToModelAccount converts a domain Account to its persisted form
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:     d.ID,
		Name:          d.Name,
		AccountType:   string(d.Type),
		SubType:       d.SubType,
		Balance:       d.Balance,
		IsActive:      d.IsActive,
		CreatedAt:     d.CreatedAt,
		FinancialYear: d.FinancialYear,
	}
}

// ToDomainAccount converts a persisted account back to the domain type
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		ID:            m.AccountID,
		Name:          m.Name,
		Type:          domain.AccountType(m.AccountType),
		SubType:       m.SubType,
		Balance:       m.Balance,
		IsActive:      m.IsActive,
		CreatedAt:     m.CreatedAt,
		FinancialYear: m.FinancialYear,
	}
}
