package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/sheets_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/sheets_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/sheets_ledger_app/internal/models"
	"github.com/SscSPs/sheets_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// ListTransactions returns transactions ordered by date then creation time.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, fy string) ([]domain.Transaction, error) {
	query := `
		SELECT transaction_id, transaction_date, description, reference, total_amount, is_balanced,
		       category, financial_year, entries, created_at, updated_at
		FROM transactions
		WHERE ($1 = '' OR financial_year = $1)
		ORDER BY transaction_date, created_at;
	`
	rows, err := r.Pool.Query(ctx, query, fy)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	txns := make([]domain.Transaction, 0)
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(&m.TransactionID, &m.TransactionDate, &m.Description, &m.Reference, &m.TotalAmount,
			&m.IsBalanced, &m.Category, &m.FinancialYear, &m.Entries, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txn, err := mapping.ToDomainTransaction(m)
		if err != nil {
			return nil, err
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return txns, nil
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m, err := mapping.ToModelTransaction(txn)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO transactions (transaction_id, transaction_date, description, reference, total_amount,
			is_balanced, category, financial_year, entries, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = r.Pool.Exec(ctx, query, m.TransactionID, m.TransactionDate, m.Description, m.Reference, m.TotalAmount,
		m.IsBalanced, m.Category, m.FinancialYear, m.Entries, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return mapInsertError(err, "transaction", m.TransactionID)
	}
	return nil
}
