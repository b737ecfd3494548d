package services

import (
	"context"

	"github.com/SscSPs/sheets_ledger_app/internal/core/domain"
	"github.com/SscSPs/sheets_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its code.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves the accounts of a financial year, optionally filtered.
	ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount persists a new account, generating its code when none is given.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)

	// UpdateAccount updates an existing account's details.
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)

	// GenerateAccountCode proposes the next free code for an account type.
	GenerateAccountCode(ctx context.Context, req dto.GenerateAccountCodeRequest) (string, error)
}

// AccountCalculatorSvc defines calculation operations for account data
type AccountCalculatorSvc interface {
	// CalculateAccountBalance recomputes an account's balance from the journal without storing it.
	CalculateAccountBalance(ctx context.Context, accountID string) (decimal.Decimal, error)

	// RecalculateAccountBalance recomputes an account's balance and writes it back.
	RecalculateAccountBalance(ctx context.Context, accountID string) (*domain.Account, error)

	// RecalculateBalances refreshes the stored balance of every given account.
	RecalculateBalances(ctx context.Context, accountIDs []string) error
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	AccountCalculatorSvc
}
