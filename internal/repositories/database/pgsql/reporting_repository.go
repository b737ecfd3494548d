package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/sheets_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/sheets_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxCategoryRepository struct {
	BaseRepository
}

var _ portsrepo.CategoryRepository = (*PgxCategoryRepository)(nil)

func (r *PgxCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT category_id, name, category_type, is_active, created_at
		FROM categories
		ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]domain.Category, 0)
	for rows.Next() {
		var c domain.Category
		var categoryType string
		if err := rows.Scan(&c.ID, &c.Name, &categoryType, &c.IsActive, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		c.Type = domain.CategoryType(categoryType)
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

type PgxDashboardRepository struct {
	BaseRepository
}

var _ portsrepo.DashboardRepository = (*PgxDashboardRepository)(nil)

// SaveSummary upserts one row per headline metric.
func (r *PgxDashboardRepository) SaveSummary(ctx context.Context, summary domain.FinancialSummary) error {
	metrics := []struct {
		name  string
		value decimal.Decimal
	}{
		{"Total Assets", summary.TotalAssets},
		{"Total Liabilities", summary.TotalLiabilities},
		{"Net Worth", summary.NetWorth},
		{"Monthly Income", summary.MonthlyIncome},
		{"Monthly Expenses", summary.MonthlyExpenses},
		{"Investment Value", summary.InvestmentValue},
		{"Cash Balance", summary.CashBalance},
	}

	batch := &pgx.Batch{}
	for _, m := range metrics {
		batch.Queue(`
			INSERT INTO dashboard_metrics (metric, value, last_updated) VALUES ($1, $2, $3)
			ON CONFLICT (metric) DO UPDATE SET value = EXCLUDED.value, last_updated = EXCLUDED.last_updated;`,
			m.name, m.value, summary.LastUpdated)
	}
	if err := r.Pool.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to save dashboard summary: %w", err)
	}
	return nil
}

func newPgxCategoryRepository(pool *pgxpool.Pool) *PgxCategoryRepository {
	return &PgxCategoryRepository{BaseRepository{Pool: pool}}
}

func newPgxDashboardRepository(pool *pgxpool.Pool) *PgxDashboardRepository {
	return &PgxDashboardRepository{BaseRepository{Pool: pool}}
}
