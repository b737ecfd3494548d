package sheets

import (
	"context"
	"fmt"

	"github.com/SscSPs/sheets_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/sheets_ledger_app/internal/core/ports/repositories"
)

type transactionRepository struct {
	store
}

func newTransactionRepository(client Client) *transactionRepository {
	return &transactionRepository{store{client: client}}
}

var _ portsrepo.TransactionRepositoryFacade = (*transactionRepository)(nil)

func (r *transactionRepository) ListTransactions(ctx context.Context, fy string) ([]domain.Transaction, error) {
	rows, err := r.readRows(ctx, transactionsTable)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	txns := decodeAll(ctx, transactionsTable, rows, decodeTransaction)
	if fy == "" {
		return txns, nil
	}
	filtered := make([]domain.Transaction, 0, len(txns))
	for _, t := range txns {
		if inYear(t.FinancialYear, t.Date, fy) {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

// SaveTransaction appends the transaction as a single row with its entries
// serialized into the Entries column.
func (r *transactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	row, err := encodeTransaction(txn)
	if err != nil {
		return err
	}
	if err := r.append(ctx, transactionsTable, row); err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", txn.ID, err)
	}
	return nil
}
