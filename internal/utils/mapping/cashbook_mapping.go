package mapping

import (
	"github.com/SscSPs/sheets_ledger_app/internal/core/domain"
	"github.com/SscSPs/sheets_ledger_app/internal/models"
)

func ToDomainCashbookEntry(m models.CashbookEntry) domain.CashbookEntry {
	return domain.CashbookEntry{
		ID:            m.EntryID,
		Date:          FormatISODate(m.EntryDate),
		Description:   m.Description,
		BankAccount:   m.BankAccount,
		Type:          domain.CashbookEntryType(m.EntryType),
		Amount:        m.Amount,
		Balance:       m.Balance,
		Category:      m.Category,
		Reference:     m.Reference,
		Reconciled:    m.Reconciled,
		FinancialYear: m.FinancialYear,
		CreatedAt:     m.CreatedAt,
	}
}
