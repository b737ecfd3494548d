package repositories

import (
	"context"

	"github.com/SscSPs/sheets_ledger_app/internal/core/domain"
)

// TransactionReader defines read operations for journal transactions
type TransactionReader interface {
	// ListTransactions retrieves the transactions of a financial year, or all when fy is empty.
	ListTransactions(ctx context.Context, fy string) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for journal transactions
type TransactionWriter interface {
	// SaveTransaction persists a transaction together with its entries.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
