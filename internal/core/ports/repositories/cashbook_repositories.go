package repositories

import (
	"context"

	"github.com/SscSPs/sheets_ledger_app/internal/core/domain"
)

type CashbookReader interface {
	ListCashbookEntries(ctx context.Context, fy string) ([]domain.CashbookEntry, error)
}

type CashbookWriter interface {
	SaveCashbookEntry(ctx context.Context, entry domain.CashbookEntry) error

	// UpdateCashbookBalances rewrites the stored running balance of each given entry.
	UpdateCashbookBalances(ctx context.Context, entries []domain.CashbookEntry) error
}

// CashbookRepositoryFacade combines all cashbook repository interfaces
type CashbookRepositoryFacade interface {
	CashbookReader
	CashbookWriter
}
