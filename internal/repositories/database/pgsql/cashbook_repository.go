package pgsql

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/sheets_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/sheets_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/sheets_ledger_app/internal/models"
	"github.com/SscSPs/sheets_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCashbookRepository struct {
	BaseRepository
}

func newPgxCashbookRepository(pool *pgxpool.Pool) *PgxCashbookRepository {
	return &PgxCashbookRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.CashbookRepositoryFacade = (*PgxCashbookRepository)(nil)

func (r *PgxCashbookRepository) ListCashbookEntries(ctx context.Context, fy string) ([]domain.CashbookEntry, error) {
	query := `
		SELECT entry_id, entry_date, description, bank_account, entry_type, amount, balance,
		       category, reference, reconciled, financial_year, created_at
		FROM cashbook_entries
		WHERE ($1 = '' OR financial_year = $1)
		ORDER BY entry_date, created_at;
	`
	rows, err := r.Pool.Query(ctx, query, fy)
	if err != nil {
		return nil, fmt.Errorf("failed to list cashbook entries: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.CashbookEntry, 0)
	for rows.Next() {
		var m models.CashbookEntry
		if err := rows.Scan(&m.EntryID, &m.EntryDate, &m.Description, &m.BankAccount, &m.EntryType, &m.Amount,
			&m.Balance, &m.Category, &m.Reference, &m.Reconciled, &m.FinancialYear, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan cashbook row: %w", err)
		}
		entries = append(entries, mapping.ToDomainCashbookEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cashbook rows: %w", err)
	}
	return entries, nil
}

func (r *PgxCashbookRepository) SaveCashbookEntry(ctx context.Context, entry domain.CashbookEntry) error {
	date, err := mapping.ParseISODate(entry.Date)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO cashbook_entries (entry_id, entry_date, description, bank_account, entry_type, amount,
			balance, category, reference, reconciled, financial_year, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = r.Pool.Exec(ctx, query, entry.ID, date, entry.Description, entry.BankAccount, string(entry.Type),
		entry.Amount, entry.Balance, entry.Category, entry.Reference, entry.Reconciled, entry.FinancialYear, entry.CreatedAt)
	if err != nil {
		return mapInsertError(err, "cashbook entry", entry.ID)
	}
	return nil
}

// UpdateCashbookBalances writes all balances in a single batch inside one transaction.
func (r *PgxCashbookRepository) UpdateCashbookBalances(ctx context.Context, entries []domain.CashbookEntry) error {
	if len(entries) == 0 {
		return nil
	}
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	batch := &pgx.Batch{}
	for _, e := range entries {
		batch.Queue(`UPDATE cashbook_entries SET balance = $2 WHERE entry_id = $1;`, e.ID, e.Balance)
	}
	results := tx.SendBatch(ctx, batch)
	updated := int64(0)
	for range entries {
		tag, err := results.Exec()
		if err != nil {
			results.Close()
			return fmt.Errorf("failed to update cashbook balance: %w", err)
		}
		updated += tag.RowsAffected()
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to close cashbook balance batch: %w", err)
	}
	if updated != int64(len(entries)) {
		slog.WarnContext(ctx, "Mismatch between expected and actual cashbook balance updates", "expected", len(entries), "actual", updated)
	}
	return r.Commit(ctx, tx)
}
