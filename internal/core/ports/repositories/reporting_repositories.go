package repositories

import (
	"context"

	"github.com/SscSPs/sheets_ledger_app/internal/core/domain"
)

// CategoryRepository lists the user-maintained transaction categories.
type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// DashboardRepository persists the computed dashboard figures.
type DashboardRepository interface {
	SaveSummary(ctx context.Context, summary domain.FinancialSummary) error
}

// SchemaInitializer prepares the storage backend: sheets and header rows, or tables.
type SchemaInitializer interface {
	EnsureSchema(ctx context.Context) error
}
