package pgsql

import (
	portsrepo "github.com/SscSPs/sheets_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool, databaseURL string) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:     newPgxAccountRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		CashbookRepo:    newPgxCashbookRepository(dbPool),
		InvestmentRepo:  newPgxInvestmentRepository(dbPool),
		CategoryRepo:    newPgxCategoryRepository(dbPool),
		DashboardRepo:   newPgxDashboardRepository(dbPool),
		Schema:          NewMigrator(databaseURL),
	}
}
