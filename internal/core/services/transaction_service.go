package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/sheets_ledger_app/internal/apperrors"
	"github.com/SscSPs/sheets_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/sheets_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sheets_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/sheets_ledger_app/internal/dto"
	"github.com/SscSPs/sheets_ledger_app/internal/utils/accounting"
	"github.com/SscSPs/sheets_ledger_app/internal/utils/fiscal"
	"github.com/SscSPs/sheets_ledger_app/internal/utils/pagination"
	"github.com/google/uuid"
)

const defaultTransactionPageSize = 50

// Messages added to the calculator's own validation results.
const (
	MsgDateFormat     = "Date must be in YYYY-MM-DD format"
	MsgUnknownAccount = "Unknown account: %s"
)

type transactionService struct {
	BaseService
	txnRepo     portsrepo.TransactionRepositoryFacade
	accountRepo portsrepo.AccountReader
	balances    portssvc.AccountCalculatorSvc
	selector    *FinancialYearSelector
}

// NewTransactionService creates the journal service. balances is refreshed for
// every account a new transaction touches.
func NewTransactionService(
	txnRepo portsrepo.TransactionRepositoryFacade,
	accountRepo portsrepo.AccountReader,
	balances portssvc.AccountCalculatorSvc,
	selector *FinancialYearSelector,
	options ...ServiceOption,
) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		txnRepo:     txnRepo,
		accountRepo: accountRepo,
		balances:    balances,
		selector:    selector,
	}
	svc.apply(options)
	return svc
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) ValidateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*dto.ValidateTransactionResponse, error) {
	result, _, err := s.checkDraft(ctx, req.ToDomainTransaction())
	if err != nil {
		return nil, err
	}
	return result, nil
}

// checkDraft runs every rule a new transaction must satisfy and returns the
// accounts indexed by id for later use.
func (s *transactionService) checkDraft(ctx context.Context, txn domain.Transaction) (*dto.ValidateTransactionResponse, map[string]domain.Account, error) {
	validation := accounting.ValidateTransaction(txn)
	problems := append([]string(nil), validation.Errors...)

	if txn.Date != "" {
		if _, err := time.Parse(time.DateOnly, txn.Date); err != nil {
			problems = append(problems, MsgDateFormat)
		}
	}

	accounts, err := s.accountRepo.ListAccounts(ctx, "")
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts for transaction validation")
		return nil, nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	byID := make(map[string]domain.Account, len(accounts))
	for _, a := range accounts {
		if _, ok := byID[a.ID]; !ok {
			byID[a.ID] = a
		}
	}
	reported := make(map[string]bool)
	for _, e := range txn.Entries {
		if e.AccountID == "" || reported[e.AccountID] {
			continue
		}
		if _, ok := byID[e.AccountID]; !ok {
			reported[e.AccountID] = true
			problems = append(problems, fmt.Sprintf(MsgUnknownAccount, e.AccountID))
		}
	}

	balance := accounting.ValidateDoubleEntry(txn.Entries)
	if problems == nil {
		problems = []string{}
	}
	return &dto.ValidateTransactionResponse{
		IsValid:      len(problems) == 0,
		Errors:       problems,
		IsBalanced:   balance.IsValid,
		TotalDebits:  balance.TotalDebits,
		TotalCredits: balance.TotalCredits,
		Difference:   balance.Difference,
	}, byID, nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	txn := req.ToDomainTransaction()
	txn.Description = strings.TrimSpace(txn.Description)

	result, accounts, err := s.checkDraft(ctx, txn)
	if err != nil {
		return nil, err
	}
	if !result.IsValid {
		s.LogDebug(ctx, "Transaction rejected", slog.Any("errors", result.Errors))
		return nil, apperrors.NewValidationErrors(result.Errors)
	}

	date, _ := time.Parse(time.DateOnly, txn.Date)
	now := s.Now()
	txn.ID = uuid.NewString()
	txn.FinancialYear = fiscal.FromDate(date)
	txn.CreatedAt = now
	txn.UpdatedAt = now
	for i := range txn.Entries {
		txn.Entries[i].AccountName = accounts[txn.Entries[i].AccountID].Name
	}
	txn = accounting.ApplyTransactionTotals(txn)

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", txn.ID))
		return nil, err
	}

	touched := make([]string, 0, len(txn.Entries))
	for _, e := range txn.Entries {
		touched = append(touched, e.AccountID)
	}
	// The transaction is already stored; a stale balance is repaired by the next recalculation.
	if err := s.balances.RecalculateBalances(ctx, touched); err != nil {
		s.LogError(ctx, err, "Failed to refresh balances after transaction",
			slog.String("transaction_id", txn.ID))
	}

	s.LogInfo(ctx, "Transaction created successfully",
		slog.String("transaction_id", txn.ID),
		slog.String("financial_year", txn.FinancialYear),
		slog.String("total_amount", txn.TotalAmount.String()))
	return &txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, string, error) {
	fy := s.selector.Resolve(params.FinancialYear)
	txns, err := s.txnRepo.ListTransactions(ctx, fy)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("financial_year", fy))
		return nil, "", fmt.Errorf("failed to list transactions for financial year %s: %w", fy, err)
	}

	period := accounting.DateRange{Start: params.StartDate, End: params.EndDate}
	filtered := make([]domain.Transaction, 0, len(txns))
	for _, t := range txns {
		if !period.Contains(t.Date) {
			continue
		}
		if params.AccountID != "" && !t.TouchesAccount(params.AccountID) {
			continue
		}
		if params.Category != "" && !strings.EqualFold(t.Category, params.Category) {
			continue
		}
		filtered = append(filtered, t)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].Date != filtered[j].Date {
			return filtered[i].Date > filtered[j].Date
		}
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	if params.NextToken != "" {
		cursorDate, cursorCreatedAt, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			return nil, "", apperrors.NewAppError("VALIDATION_ERROR", "Invalid pagination token", fmt.Errorf("%w: %v", apperrors.ErrValidation, err))
		}
		remaining := filtered[:0:0]
		for _, t := range filtered {
			if pagination.After(transactionDate(t), t.CreatedAt, cursorDate, cursorCreatedAt) {
				remaining = append(remaining, t)
			}
		}
		filtered = remaining
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultTransactionPageSize
	}
	if len(filtered) <= limit {
		return filtered, "", nil
	}
	page := filtered[:limit]
	last := page[len(page)-1]
	return page, pagination.EncodeToken(transactionDate(last), last.CreatedAt), nil
}

func transactionDate(t domain.Transaction) time.Time {
	d, _ := time.Parse(time.DateOnly, t.Date)
	return d
}
