package sheets

import (
	"context"
	"fmt"

	"github.com/SscSPs/sheets_ledger_app/internal/apperrors"
	"github.com/SscSPs/sheets_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/sheets_ledger_app/internal/core/ports/repositories"
)

type investmentRepository struct {
	store
}

func newInvestmentRepository(client Client) *investmentRepository {
	return &investmentRepository{store{client: client}}
}

var _ portsrepo.InvestmentRepositoryFacade = (*investmentRepository)(nil)

func (r *investmentRepository) ListInvestments(ctx context.Context, fy string) ([]domain.Investment, error) {
	rows, err := r.readRows(ctx, investmentsTable)
	if err != nil {
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}
	investments := decodeAll(ctx, investmentsTable, rows, decodeInvestment)
	if fy == "" {
		return investments, nil
	}
	filtered := make([]domain.Investment, 0, len(investments))
	for _, inv := range investments {
		if inv.FinancialYear == fy {
			filtered = append(filtered, inv)
		}
	}
	return filtered, nil
}

func (r *investmentRepository) FindInvestmentByID(ctx context.Context, investmentID string) (*domain.Investment, error) {
	investments, err := r.ListInvestments(ctx, "")
	if err != nil {
		return nil, err
	}
	for i := range investments {
		if investments[i].ID == investmentID {
			return &investments[i], nil
		}
	}
	return nil, notFound("investment", investmentID)
}

func (r *investmentRepository) SaveInvestment(ctx context.Context, inv domain.Investment) error {
	rows, err := r.readRows(ctx, investmentsTable)
	if err != nil {
		return fmt.Errorf("failed to save investment %s: %w", inv.ID, err)
	}
	if r.findRow(rows, inv.ID) >= 0 {
		return fmt.Errorf("%w: investment with ID %s already exists", apperrors.ErrDuplicate, inv.ID)
	}
	if err := r.append(ctx, investmentsTable, encodeInvestment(inv)); err != nil {
		return fmt.Errorf("failed to save investment %s: %w", inv.ID, err)
	}
	return nil
}

func (r *investmentRepository) UpdateInvestment(ctx context.Context, inv domain.Investment) error {
	rows, err := r.readRows(ctx, investmentsTable)
	if err != nil {
		return fmt.Errorf("failed to update investment %s: %w", inv.ID, err)
	}
	i := r.findRow(rows, inv.ID)
	if i < 0 {
		return notFound("investment", inv.ID)
	}
	if err := r.client.UpdateRange(ctx, investmentsTable.rowRange(i), [][]interface{}{encodeInvestment(inv)}); err != nil {
		return fmt.Errorf("failed to update investment %s: %w", inv.ID, err)
	}
	return nil
}
