package sheets

import (
	portsrepo "github.com/SscSPs/sheets_ledger_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(client Client) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:     newAccountRepository(client),
		TransactionRepo: newTransactionRepository(client),
		CashbookRepo:    newCashbookRepository(client),
		InvestmentRepo:  newInvestmentRepository(client),
		CategoryRepo:    &categoryRepository{store{client: client}},
		DashboardRepo:   &dashboardRepository{store{client: client}},
		Schema:          &schemaInitializer{store{client: client}},
	}
}
