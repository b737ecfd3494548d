package sheets

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/sheets_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/sheets_ledger_app/internal/core/ports/repositories"
)

type categoryRepository struct {
	store
}

var _ portsrepo.CategoryRepository = (*categoryRepository)(nil)

func (r *categoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.readRows(ctx, categoriesTable)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return decodeAll(ctx, categoriesTable, rows, decodeCategory), nil
}

type dashboardRepository struct {
	store
}

var _ portsrepo.DashboardRepository = (*dashboardRepository)(nil)

// SaveSummary overwrites the fixed metric block below the Dashboard header.
func (r *dashboardRepository) SaveSummary(ctx context.Context, summary domain.FinancialSummary) error {
	rows := encodeSummary(summary)
	rng := fmt.Sprintf("%s!A2:%s%d", dashboardTable.name, dashboardTable.lastColumn(), len(rows)+1)
	if err := r.client.UpdateRange(ctx, rng, rows); err != nil {
		return fmt.Errorf("failed to save dashboard summary: %w", err)
	}
	return nil
}

type schemaInitializer struct {
	store
}

var _ portsrepo.SchemaInitializer = (*schemaInitializer)(nil)

// EnsureSchema creates every missing sheet and writes its header row.
// Existing sheets are left untouched.
func (r *schemaInitializer) EnsureSchema(ctx context.Context) error {
	titles, err := r.client.SheetTitles(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize sheets: %w", err)
	}
	existing := make(map[string]bool, len(titles))
	for _, t := range titles {
		existing[t] = true
	}

	for _, t := range allTables {
		if existing[t.name] {
			continue
		}
		if err := r.client.AddSheet(ctx, t.name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", t.name, err)
		}
		if err := r.client.UpdateRange(ctx, t.headerRange(), [][]interface{}{t.header()}); err != nil {
			return fmt.Errorf("failed to write header of sheet %s: %w", t.name, err)
		}
		slog.InfoContext(ctx, "Created sheet", slog.String("sheet", t.name))
	}
	return nil
}
