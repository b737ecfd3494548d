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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type cashbookService struct {
	BaseService
	cashbookRepo portsrepo.CashbookRepositoryFacade
	selector     *FinancialYearSelector
}

// NewCashbookService creates the bank movement service.
func NewCashbookService(repo portsrepo.CashbookRepositoryFacade, selector *FinancialYearSelector, options ...ServiceOption) portssvc.CashbookSvcFacade {
	svc := &cashbookService{cashbookRepo: repo, selector: selector}
	svc.apply(options)
	return svc
}

var _ portssvc.CashbookSvcFacade = (*cashbookService)(nil)

// ListCashbookEntries returns entries oldest first with their running balances.
// Each bank account runs separately; the starting balance only applies when
// the listing is restricted to one bank account.
func (s *cashbookService) ListCashbookEntries(ctx context.Context, params dto.ListCashbookParams) ([]domain.CashbookEntry, error) {
	start := decimal.Zero
	if params.StartingBalance != "" {
		v, err := decimal.NewFromString(params.StartingBalance)
		if err != nil {
			return nil, apperrors.NewValidationError("Starting balance must be a number")
		}
		start = v
	}

	fy := s.selector.Resolve(params.FinancialYear)
	entries, err := s.cashbookRepo.ListCashbookEntries(ctx, fy)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cashbook entries", slog.String("financial_year", fy))
		return nil, fmt.Errorf("failed to list cashbook entries for financial year %s: %w", fy, err)
	}

	if params.BankAccount != "" {
		return accounting.CalculateRunningBalance(entriesOfBank(entries, params.BankAccount), start), nil
	}

	var banks []string
	byBank := make(map[string][]domain.CashbookEntry)
	for _, e := range entries {
		if _, ok := byBank[e.BankAccount]; !ok {
			banks = append(banks, e.BankAccount)
		}
		byBank[e.BankAccount] = append(byBank[e.BankAccount], e)
	}
	result := make([]domain.CashbookEntry, 0, len(entries))
	for _, bank := range banks {
		result = append(result, accounting.CalculateRunningBalance(byBank[bank], decimal.Zero)...)
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result, nil
}

func (s *cashbookService) CreateCashbookEntry(ctx context.Context, req dto.CreateCashbookEntryRequest) (*domain.CashbookEntry, error) {
	var problems []string
	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		problems = append(problems, MsgDateFormat)
	}
	if strings.TrimSpace(req.BankAccount) == "" {
		problems = append(problems, "Bank account is required")
	}
	if req.Type != domain.Deposit && req.Type != domain.Withdrawal {
		problems = append(problems, "Type must be deposit or withdrawal")
	}
	if !req.Amount.IsPositive() {
		problems = append(problems, "Amount must be greater than zero")
	}
	if len(problems) > 0 {
		return nil, apperrors.NewValidationErrors(problems)
	}

	entry := domain.CashbookEntry{
		ID:            uuid.NewString(),
		Date:          req.Date,
		Description:   strings.TrimSpace(req.Description),
		BankAccount:   strings.TrimSpace(req.BankAccount),
		Type:          req.Type,
		Amount:        req.Amount,
		Balance:       decimal.Zero,
		Category:      req.Category,
		Reference:     req.Reference,
		Reconciled:    req.Reconciled,
		FinancialYear: fiscal.FromDate(date),
		CreatedAt:     s.Now(),
	}

	if err := s.cashbookRepo.SaveCashbookEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save cashbook entry", slog.String("entry_id", entry.ID))
		return nil, err
	}

	refreshed, err := s.refreshRunningBalances(ctx, entry.BankAccount)
	if err != nil {
		// The entry is stored; only its cached balance is stale.
		s.LogError(ctx, err, "Failed to refresh running balances", slog.String("bank_account", entry.BankAccount))
	} else if b, ok := refreshed[entry.ID]; ok {
		entry.Balance = b
	}

	s.LogInfo(ctx, "Cashbook entry created successfully",
		slog.String("entry_id", entry.ID),
		slog.String("bank_account", entry.BankAccount),
		slog.String("amount", entry.Amount.String()))
	return &entry, nil
}

// refreshRunningBalances recomputes the running balance of one bank account
// over every year and stores the balances that changed.
func (s *cashbookService) refreshRunningBalances(ctx context.Context, bankAccount string) (map[string]decimal.Decimal, error) {
	entries, err := s.cashbookRepo.ListCashbookEntries(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list cashbook entries: %w", err)
	}
	recomputed := accounting.CalculateRunningBalance(entriesOfBank(entries, bankAccount), decimal.Zero)

	stored := make(map[string]decimal.Decimal, len(entries))
	for _, e := range entries {
		stored[e.ID] = e.Balance
	}
	balances := make(map[string]decimal.Decimal, len(recomputed))
	changed := make([]domain.CashbookEntry, 0)
	for _, e := range recomputed {
		balances[e.ID] = e.Balance
		if !stored[e.ID].Equal(e.Balance) {
			changed = append(changed, e)
		}
	}
	if err := s.cashbookRepo.UpdateCashbookBalances(ctx, changed); err != nil {
		return nil, fmt.Errorf("failed to store running balances: %w", err)
	}
	return balances, nil
}

func (s *cashbookService) CashFlow(ctx context.Context, params dto.CashFlowParams) (accounting.CashFlow, error) {
	fy := s.selector.Resolve(params.FinancialYear)
	entries, err := s.cashbookRepo.ListCashbookEntries(ctx, fy)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cashbook entries for cash flow", slog.String("financial_year", fy))
		return accounting.CashFlow{}, fmt.Errorf("failed to list cashbook entries: %w", err)
	}
	return accounting.CalculateCashFlow(entries, accounting.DateRange{Start: params.StartDate, End: params.EndDate}), nil
}

func entriesOfBank(entries []domain.CashbookEntry, bankAccount string) []domain.CashbookEntry {
	out := make([]domain.CashbookEntry, 0, len(entries))
	for _, e := range entries {
		if e.BankAccount == bankAccount {
			out = append(out, e)
		}
	}
	return out
}
