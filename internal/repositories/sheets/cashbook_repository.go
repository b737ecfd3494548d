package sheets

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/sheets_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/sheets_ledger_app/internal/core/ports/repositories"
)

type cashbookRepository struct {
	store
}

func newCashbookRepository(client Client) *cashbookRepository {
	return &cashbookRepository{store{client: client}}
}

var _ portsrepo.CashbookRepositoryFacade = (*cashbookRepository)(nil)

func (r *cashbookRepository) ListCashbookEntries(ctx context.Context, fy string) ([]domain.CashbookEntry, error) {
	rows, err := r.readRows(ctx, cashbookTable)
	if err != nil {
		return nil, fmt.Errorf("failed to list cashbook entries: %w", err)
	}
	entries := decodeAll(ctx, cashbookTable, rows, decodeCashbookEntry)
	if fy == "" {
		return entries, nil
	}
	filtered := make([]domain.CashbookEntry, 0, len(entries))
	for _, e := range entries {
		if inYear(e.FinancialYear, e.Date, fy) {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

func (r *cashbookRepository) SaveCashbookEntry(ctx context.Context, entry domain.CashbookEntry) error {
	if err := r.append(ctx, cashbookTable, encodeCashbookEntry(entry)); err != nil {
		return fmt.Errorf("failed to save cashbook entry %s: %w", entry.ID, err)
	}
	return nil
}

// UpdateCashbookBalances writes only the Balance cell of each entry's row, in
// one batch request.
func (r *cashbookRepository) UpdateCashbookBalances(ctx context.Context, entries []domain.CashbookEntry) error {
	if len(entries) == 0 {
		return nil
	}
	rows, err := r.readRows(ctx, cashbookTable)
	if err != nil {
		return fmt.Errorf("failed to update cashbook balances: %w", err)
	}

	balanceColumn := columnLetter(cashbookTable.index["Balance"] + 1)
	updates := make([]RangeUpdate, 0, len(entries))
	for _, e := range entries {
		i := r.findRow(rows, e.ID)
		if i < 0 {
			slog.WarnContext(ctx, "Cashbook entry vanished before its balance could be updated", slog.String("entry_id", e.ID))
			continue
		}
		updates = append(updates, RangeUpdate{
			Range: fmt.Sprintf("%s!%s%d", cashbookTable.name, balanceColumn, i+2),
			Rows:  [][]interface{}{{decimalCell(e.Balance)}},
		})
	}
	if err := r.client.BatchUpdate(ctx, updates); err != nil {
		return fmt.Errorf("failed to update cashbook balances: %w", err)
	}
	return nil
}
