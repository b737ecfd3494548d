package repositories

import (
	"context"

	"github.com/SscSPs/sheets_ledger_app/internal/core/domain"
)

// InvestmentReader defines read operations for investment positions
type InvestmentReader interface {
	ListInvestments(ctx context.Context, fy string) ([]domain.Investment, error)
	FindInvestmentByID(ctx context.Context, investmentID string) (*domain.Investment, error)
}

// InvestmentWriter defines write operations for investment positions
type InvestmentWriter interface {
	SaveInvestment(ctx context.Context, inv domain.Investment) error
	UpdateInvestment(ctx context.Context, inv domain.Investment) error
}

// InvestmentRepositoryFacade combines all investment repository interfaces
type InvestmentRepositoryFacade interface {
	InvestmentReader
	InvestmentWriter
}
