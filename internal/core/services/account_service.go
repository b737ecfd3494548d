package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/sheets_ledger_app/internal/apperrors"
	"github.com/SscSPs/sheets_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/sheets_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sheets_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/sheets_ledger_app/internal/dto"
	"github.com/SscSPs/sheets_ledger_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	txnRepo     portsrepo.TransactionReader
	selector    *FinancialYearSelector
}

// NewAccountService creates a new account service. Balances are recomputed
// from txnRepo, the journal.
func NewAccountService(
	accountRepo portsrepo.AccountRepositoryFacade,
	txnRepo portsrepo.TransactionReader,
	selector *FinancialYearSelector,
	options ...ServiceOption,
) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
		selector:    selector,
	}
	svc.apply(options)
	return svc
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	name := strings.TrimSpace(req.Name)
	subType := strings.TrimSpace(req.SubType)
	var problems []string
	if name == "" {
		problems = append(problems, "Account name is required")
	}
	if !req.Type.IsKnown() {
		problems = append(problems, "Account type must be one of asset, liability, equity, income, expense")
	}
	if subType == "" {
		problems = append(problems, "Account sub-type is required")
	}
	if len(problems) > 0 {
		return nil, apperrors.NewValidationErrors(problems)
	}

	// Codes are unique across every financial year.
	existing, err := s.accountRepo.ListAccounts(ctx, "")
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts for code generation")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	id := strings.TrimSpace(req.ID)
	if id == "" {
		id = accounting.GenerateAccountCode(req.Type, subType, existing)
	} else {
		for _, a := range existing {
			if a.ID == id {
				return nil, fmt.Errorf("%w: account %s already exists", apperrors.ErrDuplicate, id)
			}
		}
	}

	account := domain.Account{
		ID:            id,
		Name:          name,
		Type:          req.Type,
		SubType:       subType,
		Balance:       decimal.Zero,
		IsActive:      true,
		CreatedAt:     s.Now(),
		FinancialYear: s.selector.Resolve(req.FinancialYear),
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("account_id", account.ID))
		return nil, err
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.String("account_id", account.ID),
		slog.String("account_type", string(account.Type)),
		slog.String("financial_year", account.FinancialYear))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID", slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error) {
	fy := s.selector.Resolve(params.FinancialYear)
	accounts, err := s.accountRepo.ListAccounts(ctx, fy)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("financial_year", fy))
		return nil, fmt.Errorf("failed to list accounts for financial year %s: %w", fy, err)
	}

	filtered := make([]domain.Account, 0, len(accounts))
	for _, a := range accounts {
		if params.Type != "" && string(a.Type) != params.Type {
			continue
		}
		if params.ActiveOnly && !a.IsActive {
			continue
		}
		filtered = append(filtered, a)
	}

	s.LogDebug(ctx, "Accounts listed successfully",
		slog.Int("count", len(filtered)),
		slog.String("financial_year", fy))
	return filtered, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	account, err := s.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewValidationError("Account name is required")
		}
		account.Name = name
		updated = true
	}
	if req.SubType != nil {
		subType := strings.TrimSpace(*req.SubType)
		if subType == "" {
			return nil, apperrors.NewValidationError("Account sub-type is required")
		}
		account.SubType = subType
		updated = true
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
		updated = true
	}
	if !updated {
		s.LogDebug(ctx, "No fields provided for account update", slog.String("account_id", accountID))
		return account, nil
	}

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account updated successfully", slog.String("account_id", accountID))
	return account, nil
}

func (s *accountService) GenerateAccountCode(ctx context.Context, req dto.GenerateAccountCodeRequest) (string, error) {
	if !req.Type.IsKnown() {
		return "", apperrors.NewValidationError("Account type must be one of asset, liability, equity, income, expense")
	}
	existing, err := s.accountRepo.ListAccounts(ctx, "")
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts for code generation")
		return "", fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounting.GenerateAccountCode(req.Type, req.SubType, existing), nil
}

func (s *accountService) CalculateAccountBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	account, err := s.GetAccountByID(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	txns, err := s.txnRepo.ListTransactions(ctx, "")
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for balance calculation", slog.String("account_id", accountID))
		return decimal.Zero, fmt.Errorf("failed to list transactions: %w", err)
	}
	return accounting.CalculateAccountBalance(*account, txns), nil
}

func (s *accountService) RecalculateAccountBalance(ctx context.Context, accountID string) (*domain.Account, error) {
	if _, err := s.GetAccountByID(ctx, accountID); err != nil {
		return nil, err
	}
	if err := s.RecalculateBalances(ctx, []string{accountID}); err != nil {
		return nil, err
	}
	return s.GetAccountByID(ctx, accountID)
}

// RecalculateBalances loads the journal once and writes back every balance
// that drifted from it. Unknown ids are skipped.
func (s *accountService) RecalculateBalances(ctx context.Context, accountIDs []string) error {
	if len(accountIDs) == 0 {
		return nil
	}
	txns, err := s.txnRepo.ListTransactions(ctx, "")
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for balance recalculation")
		return fmt.Errorf("failed to list transactions: %w", err)
	}

	seen := make(map[string]bool, len(accountIDs))
	for _, id := range accountIDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		account, err := s.accountRepo.FindAccountByID(ctx, id)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				s.LogDebug(ctx, "Skipping balance of unknown account", slog.String("account_id", id))
				continue
			}
			s.LogError(ctx, err, "Failed to load account for recalculation", slog.String("account_id", id))
			return err
		}

		balance := accounting.CalculateAccountBalance(*account, txns)
		if balance.Equal(account.Balance) {
			continue
		}
		account.Balance = balance
		if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
			s.LogError(ctx, err, "Failed to store recalculated balance", slog.String("account_id", id))
			return fmt.Errorf("failed to store balance of account %s: %w", id, err)
		}
		s.LogDebug(ctx, "Account balance recalculated",
			slog.String("account_id", id),
			slog.String("balance", balance.String()))
	}
	return nil
}
