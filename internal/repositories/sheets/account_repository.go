package sheets

import (
	"context"
	"fmt"

	"github.com/SscSPs/sheets_ledger_app/internal/apperrors"
	"github.com/SscSPs/sheets_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/sheets_ledger_app/internal/core/ports/repositories"
)

type accountRepository struct {
	store
}

func newAccountRepository(client Client) *accountRepository {
	return &accountRepository{store{client: client}}
}

var _ portsrepo.AccountRepositoryFacade = (*accountRepository)(nil)

func (r *accountRepository) ListAccounts(ctx context.Context, fy string) ([]domain.Account, error) {
	rows, err := r.readRows(ctx, accountsTable)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	accounts := decodeAll(ctx, accountsTable, rows, decodeAccount)
	if fy == "" {
		return accounts, nil
	}
	filtered := make([]domain.Account, 0, len(accounts))
	for _, a := range accounts {
		if a.FinancialYear == fy {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

func (r *accountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	accounts, err := r.ListAccounts(ctx, "")
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		if accounts[i].ID == accountID {
			return &accounts[i], nil
		}
	}
	return nil, notFound("account", accountID)
}

// SaveAccount appends a new account row. Ids must be unique across the sheet.
func (r *accountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	rows, err := r.readRows(ctx, accountsTable)
	if err != nil {
		return fmt.Errorf("failed to save account %s: %w", account.ID, err)
	}
	if r.findRow(rows, account.ID) >= 0 {
		return fmt.Errorf("%w: account with ID %s already exists", apperrors.ErrDuplicate, account.ID)
	}
	if err := r.append(ctx, accountsTable, encodeAccount(account)); err != nil {
		return fmt.Errorf("failed to save account %s: %w", account.ID, err)
	}
	return nil
}

func (r *accountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	rows, err := r.readRows(ctx, accountsTable)
	if err != nil {
		return fmt.Errorf("failed to update account %s: %w", account.ID, err)
	}
	i := r.findRow(rows, account.ID)
	if i < 0 {
		return notFound("account", account.ID)
	}
	if err := r.client.UpdateRange(ctx, accountsTable.rowRange(i), [][]interface{}{encodeAccount(account)}); err != nil {
		return fmt.Errorf("failed to update account %s: %w", account.ID, err)
	}
	return nil
}
