package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/sheets_ledger_app/internal/apperrors"
	"github.com/SscSPs/sheets_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/sheets_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sheets_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/sheets_ledger_app/internal/dto"
	"github.com/SscSPs/sheets_ledger_app/internal/utils"
	"github.com/SscSPs/sheets_ledger_app/internal/utils/accounting"
	"github.com/SscSPs/sheets_ledger_app/internal/utils/fiscal"
)

// RecentTransactionsLimit is the number of transactions shown on the dashboard.
const RecentTransactionsLimit = 5

type reportingService struct {
	BaseService
	accountRepo    portsrepo.AccountReader
	txnRepo        portsrepo.TransactionReader
	cashbookRepo   portsrepo.CashbookReader
	investmentRepo portsrepo.InvestmentReader
	categoryRepo   portsrepo.CategoryRepository
	dashboardRepo  portsrepo.DashboardRepository
	selector       *FinancialYearSelector
	currencyCode   string
}

// ReportingOption configures the reporting service.
type ReportingOption func(*reportingService)

// WithDisplayCurrency sets the ISO currency used for formatted figures.
func WithDisplayCurrency(code string) ReportingOption {
	return func(s *reportingService) {
		s.currencyCode = code
	}
}

// WithReportingBaseOptions applies shared service options such as WithClock.
func WithReportingBaseOptions(options ...ServiceOption) ReportingOption {
	return func(s *reportingService) {
		s.apply(options)
	}
}

// NewReportingService creates the reporting service. A nil DashboardRepo in
// repos disables persisting the dashboard summary.
func NewReportingService(repos portsrepo.RepositoryProvider, selector *FinancialYearSelector, options ...ReportingOption) portssvc.ReportingService {
	svc := &reportingService{
		accountRepo:    repos.AccountRepo,
		txnRepo:        repos.TransactionRepo,
		cashbookRepo:   repos.CashbookRepo,
		investmentRepo: repos.InvestmentRepo,
		categoryRepo:   repos.CategoryRepo,
		dashboardRepo:  repos.DashboardRepo,
		selector:       selector,
		currencyCode:   "INR",
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReportingService = (*reportingService)(nil)

func (s *reportingService) listAccounts(ctx context.Context, fy string) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, fy)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts for report", slog.String("financial_year", fy))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

func (s *reportingService) listTransactions(ctx context.Context, fy string) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListTransactions(ctx, fy)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for report", slog.String("financial_year", fy))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

func (s *reportingService) Dashboard(ctx context.Context, params dto.ReportParams) (*dto.DashboardResponse, error) {
	fy := s.selector.Resolve(params.FinancialYear)
	now := s.Now()

	accounts, err := s.listAccounts(ctx, fy)
	if err != nil {
		return nil, err
	}
	// Rollups classify entries by account type, so they see accounts of every year.
	allAccounts, err := s.listAccounts(ctx, "")
	if err != nil {
		return nil, err
	}
	txns, err := s.listTransactions(ctx, fy)
	if err != nil {
		return nil, err
	}
	investments, err := s.investmentRepo.ListInvestments(ctx, fy)
	if err != nil {
		s.LogError(ctx, err, "Failed to list investments for dashboard", slog.String("financial_year", fy))
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}

	month := params.Month
	if month == "" {
		month = fiscal.CurrentMonth(now)
	}
	summary := accounting.BuildFinancialSummary(accounting.SummaryInput{
		Accounts:       accounts,
		RollupAccounts: allAccounts,
		Transactions:   txns,
		Investments:    investments,
		Month:          month,
		AsOf:           now,
	})

	if s.dashboardRepo != nil {
		if err := s.dashboardRepo.SaveSummary(ctx, summary); err != nil {
			s.LogError(ctx, err, "Failed to persist dashboard summary", slog.String("financial_year", fy))
		}
	}

	months, err := fiscal.Months(fy)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	s.LogDebug(ctx, "Dashboard computed",
		slog.String("financial_year", fy),
		slog.Int("transactions", len(txns)),
		slog.Int("accounts", len(accounts)))

	return &dto.DashboardResponse{
		FinancialYear:      fy,
		Summary:            summary,
		FormattedSummary:   s.formatSummary(summary),
		RecentTransactions: dto.ToListTransactionResponse(accounting.RecentTransactions(txns, RecentTransactionsLimit)),
		ExpensesByCategory: accounting.CalculateExpensesByCategory(txns, allAccounts, accounting.DateRange{Start: params.StartDate, End: params.EndDate}),
		Portfolio:          *portfolioResponse(investments),
		Trend:              accounting.MonthlyTrend(txns, allAccounts, months),
	}, nil
}

func (s *reportingService) formatSummary(summary domain.FinancialSummary) map[string]string {
	return map[string]string{
		"totalAssets":      utils.FormatMoney(summary.TotalAssets, s.currencyCode),
		"totalLiabilities": utils.FormatMoney(summary.TotalLiabilities, s.currencyCode),
		"netWorth":         utils.FormatMoney(summary.NetWorth, s.currencyCode),
		"monthlyIncome":    utils.FormatMoney(summary.MonthlyIncome, s.currencyCode),
		"monthlyExpenses":  utils.FormatMoney(summary.MonthlyExpenses, s.currencyCode),
		"investmentValue":  utils.FormatMoney(summary.InvestmentValue, s.currencyCode),
		"cashBalance":      utils.FormatMoney(summary.CashBalance, s.currencyCode),
	}
}

func (s *reportingService) NetWorth(ctx context.Context, params dto.ReportParams) (accounting.NetWorth, error) {
	accounts, err := s.listAccounts(ctx, s.selector.Resolve(params.FinancialYear))
	if err != nil {
		return accounting.NetWorth{}, err
	}
	return accounting.CalculateNetWorth(accounts), nil
}

func (s *reportingService) ExpensesByCategory(ctx context.Context, params dto.ReportParams) ([]domain.CategoryAmount, error) {
	txns, err := s.listTransactions(ctx, s.selector.Resolve(params.FinancialYear))
	if err != nil {
		return nil, err
	}
	accounts, err := s.listAccounts(ctx, "")
	if err != nil {
		return nil, err
	}
	return accounting.CalculateExpensesByCategory(txns, accounts, accounting.DateRange{Start: params.StartDate, End: params.EndDate}), nil
}

func (s *reportingService) CashFlow(ctx context.Context, params dto.ReportParams) (accounting.CashFlow, error) {
	fy := s.selector.Resolve(params.FinancialYear)
	entries, err := s.cashbookRepo.ListCashbookEntries(ctx, fy)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cashbook entries for report", slog.String("financial_year", fy))
		return accounting.CashFlow{}, fmt.Errorf("failed to list cashbook entries: %w", err)
	}
	return accounting.CalculateCashFlow(entries, accounting.DateRange{Start: params.StartDate, End: params.EndDate}), nil
}

// Monthly reports one calendar month, read from the financial year containing it.
func (s *reportingService) Monthly(ctx context.Context, params dto.ReportParams) (*dto.MonthlyReportResponse, error) {
	month := params.Month
	if month == "" {
		month = fiscal.CurrentMonth(s.Now())
	}
	first, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, apperrors.NewValidationError("Month must be in YYYY-MM format")
	}

	fy := fiscal.FromDate(first)
	txns, err := s.listTransactions(ctx, fy)
	if err != nil {
		return nil, err
	}
	accounts, err := s.listAccounts(ctx, "")
	if err != nil {
		return nil, err
	}
	income := accounting.CalculateMonthlyIncome(txns, accounts, month)
	expenses := accounting.CalculateMonthlyExpenses(txns, accounts, month)
	return &dto.MonthlyReportResponse{
		Month:         month,
		FinancialYear: fy,
		Quarter:       fiscal.Quarter(first),
		Income:        income,
		Expenses:      expenses,
		Net:           income.Sub(expenses),
	}, nil
}

func (s *reportingService) BalanceSheet(ctx context.Context, params dto.ReportParams) (*domain.BalanceSheet, error) {
	fy := s.selector.Resolve(params.FinancialYear)
	accounts, err := s.listAccounts(ctx, fy)
	if err != nil {
		return nil, err
	}
	asOf := params.AsOf
	if asOf == "" {
		asOf = s.Now().Format(time.DateOnly)
	}
	sheet := accounting.BuildBalanceSheet(accounts, asOf, fy)
	return &sheet, nil
}

func (s *reportingService) IncomeStatement(ctx context.Context, params dto.ReportParams) (*domain.IncomeStatement, error) {
	fy := s.selector.Resolve(params.FinancialYear)
	from, to, err := fiscal.ISODates(fy)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if params.StartDate != "" {
		from = params.StartDate
	}
	if params.EndDate != "" {
		to = params.EndDate
	}
	if from > to {
		return nil, apperrors.NewValidationError("Start date must not be after end date")
	}

	txns, err := s.listTransactions(ctx, fy)
	if err != nil {
		return nil, err
	}
	accounts, err := s.listAccounts(ctx, "")
	if err != nil {
		return nil, err
	}
	statement := accounting.BuildIncomeStatement(txns, accounts, from, to, fy)
	return &statement, nil
}

func (s *reportingService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}
