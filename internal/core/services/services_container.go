package services

import (
	"fmt"

	portsrepo "github.com/SscSPs/sheets_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sheets_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/sheets_ledger_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, selector *FinancialYearSelector) (*portssvc.ServiceContainer, error) {
	container := &portssvc.ServiceContainer{}

	container.FinancialYear = NewFinancialYearService(selector)

	// Transactions refresh account balances, so the account service comes first.
	container.Account = NewAccountService(repos.AccountRepo, repos.TransactionRepo, selector)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.AccountRepo, container.Account, selector)
	container.Cashbook = NewCashbookService(repos.CashbookRepo, selector)
	container.Investment = NewInvestmentService(repos.InvestmentRepo, selector)
	container.Reporting = NewReportingService(repos, selector, WithDisplayCurrency(cfg.CurrencyCode))

	session, err := NewSessionService(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create session service: %w", err)
	}
	container.Session = session

	return container, nil
}
