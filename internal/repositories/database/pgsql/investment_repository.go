package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/sheets_ledger_app/internal/apperrors"
	"github.com/SscSPs/sheets_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/sheets_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/sheets_ledger_app/internal/models"
	"github.com/SscSPs/sheets_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxInvestmentRepository struct {
	BaseRepository
}

func newPgxInvestmentRepository(pool *pgxpool.Pool) *PgxInvestmentRepository {
	return &PgxInvestmentRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.InvestmentRepositoryFacade = (*PgxInvestmentRepository)(nil)

const investmentColumns = `investment_id, symbol, name, investment_type, quantity, average_price, current_price,
	total_investment, current_value, gain_loss, gain_loss_percentage, last_updated, financial_year`

func scanInvestment(row pgx.Row) (models.Investment, error) {
	var m models.Investment
	err := row.Scan(&m.InvestmentID, &m.Symbol, &m.Name, &m.InvestmentType, &m.Quantity, &m.AveragePrice,
		&m.CurrentPrice, &m.TotalInvestment, &m.CurrentValue, &m.GainLoss, &m.GainLossPercentage,
		&m.LastUpdated, &m.FinancialYear)
	return m, err
}

func (r *PgxInvestmentRepository) ListInvestments(ctx context.Context, fy string) ([]domain.Investment, error) {
	query := `SELECT ` + investmentColumns + ` FROM investments
		WHERE ($1 = '' OR financial_year = $1)
		ORDER BY symbol;`
	rows, err := r.Pool.Query(ctx, query, fy)
	if err != nil {
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}
	defer rows.Close()

	investments := make([]domain.Investment, 0)
	for rows.Next() {
		m, err := scanInvestment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan investment row: %w", err)
		}
		investments = append(investments, mapping.ToDomainInvestment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating investment rows: %w", err)
	}
	return investments, nil
}

func (r *PgxInvestmentRepository) FindInvestmentByID(ctx context.Context, investmentID string) (*domain.Investment, error) {
	query := `SELECT ` + investmentColumns + ` FROM investments WHERE investment_id = $1;`
	m, err := scanInvestment(r.Pool.QueryRow(ctx, query, investmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: investment %s", apperrors.ErrNotFound, investmentID)
		}
		return nil, fmt.Errorf("failed to find investment %s: %w", investmentID, err)
	}
	inv := mapping.ToDomainInvestment(m)
	return &inv, nil
}

func (r *PgxInvestmentRepository) SaveInvestment(ctx context.Context, inv domain.Investment) error {
	m := mapping.ToModelInvestment(inv)
	query := `INSERT INTO investments (` + investmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`
	_, err := r.Pool.Exec(ctx, query, m.InvestmentID, m.Symbol, m.Name, m.InvestmentType, m.Quantity, m.AveragePrice,
		m.CurrentPrice, m.TotalInvestment, m.CurrentValue, m.GainLoss, m.GainLossPercentage, m.LastUpdated, m.FinancialYear)
	if err != nil {
		return mapInsertError(err, "investment", m.InvestmentID)
	}
	return nil
}

func (r *PgxInvestmentRepository) UpdateInvestment(ctx context.Context, inv domain.Investment) error {
	m := mapping.ToModelInvestment(inv)
	query := `
		UPDATE investments
		SET symbol = $2, name = $3, investment_type = $4, quantity = $5, average_price = $6, current_price = $7,
		    total_investment = $8, current_value = $9, gain_loss = $10, gain_loss_percentage = $11,
		    last_updated = $12, financial_year = $13
		WHERE investment_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.InvestmentID, m.Symbol, m.Name, m.InvestmentType, m.Quantity, m.AveragePrice,
		m.CurrentPrice, m.TotalInvestment, m.CurrentValue, m.GainLoss, m.GainLossPercentage, m.LastUpdated, m.FinancialYear)
	if err != nil {
		return fmt.Errorf("failed to update investment %s: %w", m.InvestmentID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: investment %s", apperrors.ErrNotFound, m.InvestmentID)
	}
	return nil
}
