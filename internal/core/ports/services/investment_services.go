package services

import (
	"context"

	"github.com/SscSPs/sheets_ledger_app/internal/core/domain"
	"github.com/SscSPs/sheets_ledger_app/internal/dto"
)

// InvestmentReaderSvc defines read operations for investment positions
type InvestmentReaderSvc interface {
	ListInvestments(ctx context.Context, fy string) ([]domain.Investment, error)
	Portfolio(ctx context.Context, fy string) (*dto.PortfolioResponse, error)
}

// InvestmentWriterSvc defines write operations for investment positions
type InvestmentWriterSvc interface {
	CreateInvestment(ctx context.Context, req dto.CreateInvestmentRequest) (*domain.Investment, error)
	UpdateInvestmentPrice(ctx context.Context, investmentID string, req dto.UpdateInvestmentPriceRequest) (*domain.Investment, error)
}

// InvestmentSvcFacade combines all investment service interfaces
type InvestmentSvcFacade interface {
	InvestmentReaderSvc
	InvestmentWriterSvc
}
