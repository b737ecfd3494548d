package dto

import (
	"github.com/SscSPs/sheets_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvestmentRequest defines the data needed to open a position.
type CreateInvestmentRequest struct {
	Symbol        string                `json:"symbol" binding:"required"`
	Name          string                `json:"name" binding:"required"`
	Type          domain.InvestmentType `json:"type" binding:"required,oneof=stock mutual_fund bond crypto other"`
	Quantity      decimal.Decimal       `json:"quantity"`
	AveragePrice  decimal.Decimal       `json:"averagePrice"`
	CurrentPrice  decimal.Decimal       `json:"currentPrice"`
	FinancialYear string                `json:"financialYear" binding:"omitempty,fylabel"`
}

// UpdateInvestmentPriceRequest sets a new market price for a position.
type UpdateInvestmentPriceRequest struct {
	CurrentPrice decimal.Decimal `json:"currentPrice"`
}

// PortfolioResponse pairs the positions with their aggregate value.
type PortfolioResponse struct {
	Investments     []domain.Investment `json:"investments"`
	TotalInvestment decimal.Decimal     `json:"totalInvestment"`
	CurrentValue    decimal.Decimal     `json:"currentValue"`
	TotalGainLoss   decimal.Decimal     `json:"totalGainLoss"`
	// TotalGainLossPercentage is gain over cost, in percent.
	TotalGainLossPercentage decimal.Decimal `json:"totalGainLossPercentage"`
}
