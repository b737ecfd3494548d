package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/sheets_ledger_app/internal/apperrors"
	"github.com/SscSPs/sheets_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/sheets_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sheets_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/sheets_ledger_app/internal/dto"
	"github.com/SscSPs/sheets_ledger_app/internal/utils/accounting"
	"github.com/google/uuid"
)

type investmentService struct {
	BaseService
	investmentRepo portsrepo.InvestmentRepositoryFacade
	selector       *FinancialYearSelector
}

// NewInvestmentService creates the portfolio service.
func NewInvestmentService(repo portsrepo.InvestmentRepositoryFacade, selector *FinancialYearSelector, options ...ServiceOption) portssvc.InvestmentSvcFacade {
	svc := &investmentService{investmentRepo: repo, selector: selector}
	svc.apply(options)
	return svc
}

var _ portssvc.InvestmentSvcFacade = (*investmentService)(nil)

func (s *investmentService) ListInvestments(ctx context.Context, fy string) ([]domain.Investment, error) {
	fy = s.selector.Resolve(fy)
	investments, err := s.investmentRepo.ListInvestments(ctx, fy)
	if err != nil {
		s.LogError(ctx, err, "Failed to list investments", slog.String("financial_year", fy))
		return nil, fmt.Errorf("failed to list investments for financial year %s: %w", fy, err)
	}
	return investments, nil
}

func (s *investmentService) Portfolio(ctx context.Context, fy string) (*dto.PortfolioResponse, error) {
	investments, err := s.ListInvestments(ctx, fy)
	if err != nil {
		return nil, err
	}
	return portfolioResponse(investments), nil
}

func portfolioResponse(investments []domain.Investment) *dto.PortfolioResponse {
	value := accounting.CalculatePortfolioValue(investments)
	if investments == nil {
		investments = []domain.Investment{}
	}
	return &dto.PortfolioResponse{
		Investments:             investments,
		TotalInvestment:         value.TotalInvestment,
		CurrentValue:            value.CurrentValue,
		TotalGainLoss:           value.TotalGainLoss,
		TotalGainLossPercentage: value.TotalGainLossPercentage,
	}
}

func (s *investmentService) CreateInvestment(ctx context.Context, req dto.CreateInvestmentRequest) (*domain.Investment, error) {
	var problems []string
	symbol := strings.ToUpper(strings.TrimSpace(req.Symbol))
	if symbol == "" {
		problems = append(problems, "Symbol is required")
	}
	if strings.TrimSpace(req.Name) == "" {
		problems = append(problems, "Name is required")
	}
	if req.Quantity.IsNegative() {
		problems = append(problems, "Quantity cannot be negative")
	}
	if req.AveragePrice.IsNegative() || req.CurrentPrice.IsNegative() {
		problems = append(problems, "Prices cannot be negative")
	}
	if len(problems) > 0 {
		return nil, apperrors.NewValidationErrors(problems)
	}

	inv := accounting.ApplyInvestmentMetrics(domain.Investment{
		ID:            uuid.NewString(),
		Symbol:        symbol,
		Name:          strings.TrimSpace(req.Name),
		Type:          req.Type,
		Quantity:      req.Quantity,
		AveragePrice:  req.AveragePrice,
		CurrentPrice:  req.CurrentPrice,
		LastUpdated:   s.Now(),
		FinancialYear: s.selector.Resolve(req.FinancialYear),
	})

	if err := s.investmentRepo.SaveInvestment(ctx, inv); err != nil {
		s.LogError(ctx, err, "Failed to save investment", slog.String("investment_id", inv.ID))
		return nil, err
	}

	s.LogInfo(ctx, "Investment created successfully",
		slog.String("investment_id", inv.ID),
		slog.String("symbol", inv.Symbol))
	return &inv, nil
}

func (s *investmentService) UpdateInvestmentPrice(ctx context.Context, investmentID string, req dto.UpdateInvestmentPriceRequest) (*domain.Investment, error) {
	if req.CurrentPrice.IsNegative() {
		return nil, apperrors.NewValidationError("Prices cannot be negative")
	}
	inv, err := s.investmentRepo.FindInvestmentByID(ctx, investmentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find investment", slog.String("investment_id", investmentID))
		}
		return nil, err
	}

	inv.CurrentPrice = req.CurrentPrice
	inv.LastUpdated = s.Now()
	updated := accounting.ApplyInvestmentMetrics(*inv)

	if err := s.investmentRepo.UpdateInvestment(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update investment price", slog.String("investment_id", investmentID))
		return nil, err
	}

	s.LogInfo(ctx, "Investment price updated",
		slog.String("investment_id", investmentID),
		slog.String("current_price", updated.CurrentPrice.String()))
	return &updated, nil
}
