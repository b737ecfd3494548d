package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvestmentType classifies a holding.
type InvestmentType string

const (
	Stock      InvestmentType = "stock"
	MutualFund InvestmentType = "mutual_fund"
	Bond       InvestmentType = "bond"
	Crypto     InvestmentType = "crypto"
	OtherAsset InvestmentType = "other"
)

// Investment is a position in a single security.
// TotalInvestment, CurrentValue, GainLoss and GainLossPercentage are cached
// values derived from Quantity, AveragePrice and CurrentPrice.
type Investment struct {
	ID                 string          `json:"id"`
	Symbol             string          `json:"symbol"`
	Name               string          `json:"name"`
	Type               InvestmentType  `json:"type"`
	Quantity           decimal.Decimal `json:"quantity"`
	AveragePrice       decimal.Decimal `json:"averagePrice"`
	CurrentPrice       decimal.Decimal `json:"currentPrice"`
	TotalInvestment    decimal.Decimal `json:"totalInvestment"`
	CurrentValue       decimal.Decimal `json:"currentValue"`
	GainLoss           decimal.Decimal `json:"gainLoss"`
	GainLossPercentage decimal.Decimal `json:"gainLossPercentage"`
	LastUpdated        time.Time       `json:"lastUpdated"`
	FinancialYear      string          `json:"financialYear"`
}
