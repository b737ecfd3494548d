package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/sheets_ledger_app/internal/core/domain"
	"github.com/SscSPs/sheets_ledger_app/internal/models"
)

func ToModelTransaction(d domain.Transaction) (models.Transaction, error) {
	date, err := ParseISODate(d.Date)
	if err != nil {
		return models.Transaction{}, err
	}
	entries := d.Entries
	if entries == nil {
		entries = []domain.TransactionEntry{}
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("failed to encode entries of transaction %s: %w", d.ID, err)
	}
	return models.Transaction{
		TransactionID:   d.ID,
		TransactionDate: date,
		Description:     d.Description,
		Reference:       d.Reference,
		TotalAmount:     d.TotalAmount,
		IsBalanced:      d.IsBalanced,
		Category:        d.Category,
		FinancialYear:   d.FinancialYear,
		Entries:         raw,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}, nil
}

func ToDomainTransaction(m models.Transaction) (domain.Transaction, error) {
	entries := make([]domain.TransactionEntry, 0)
	if len(m.Entries) > 0 {
		if err := json.Unmarshal(m.Entries, &entries); err != nil {
			return domain.Transaction{}, fmt.Errorf("failed to decode entries of transaction %s: %w", m.TransactionID, err)
		}
	}
	return domain.Transaction{
		ID:            m.TransactionID,
		Date:          FormatISODate(m.TransactionDate),
		Description:   m.Description,
		Reference:     m.Reference,
		Entries:       entries,
		TotalAmount:   m.TotalAmount,
		IsBalanced:    m.IsBalanced,
		Category:      m.Category,
		FinancialYear: m.FinancialYear,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}, nil
}
