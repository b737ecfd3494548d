package accounting

import (
	"github.com/SscSPs/sheets_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// InvestmentMetrics holds the values derived from one position.
type InvestmentMetrics struct {
	TotalInvestment    decimal.Decimal `json:"totalInvestment"`
	CurrentValue       decimal.Decimal `json:"currentValue"`
	GainLoss           decimal.Decimal `json:"gainLoss"`
	GainLossPercentage decimal.Decimal `json:"gainLossPercentage"`
}

// PortfolioValue aggregates a collection of positions.
type PortfolioValue struct {
	TotalInvestment         decimal.Decimal `json:"totalInvestment"`
	CurrentValue            decimal.Decimal `json:"currentValue"`
	TotalGainLoss           decimal.Decimal `json:"totalGainLoss"`
	TotalGainLossPercentage decimal.Decimal `json:"totalGainLossPercentage"`
}

// gainPercentage is gain/cost*100, or exactly zero when cost is not positive.
func gainPercentage(gain, cost decimal.Decimal) decimal.Decimal {
	if !cost.IsPositive() {
		return decimal.Zero
	}
	return gain.Div(cost).Mul(hundred)
}

// CalculateInvestmentMetrics derives cost, value and gain for one position.
func CalculateInvestmentMetrics(inv domain.Investment) InvestmentMetrics {
	totalInvestment := inv.Quantity.Mul(inv.AveragePrice)
	currentValue := inv.Quantity.Mul(inv.CurrentPrice)
	gainLoss := currentValue.Sub(totalInvestment)

	return InvestmentMetrics{
		TotalInvestment:    totalInvestment,
		CurrentValue:       currentValue,
		GainLoss:           gainLoss,
		GainLossPercentage: gainPercentage(gainLoss, totalInvestment),
	}
}

// ApplyInvestmentMetrics returns a copy of inv with its cached derived fields
// recomputed.
func ApplyInvestmentMetrics(inv domain.Investment) domain.Investment {
	m := CalculateInvestmentMetrics(inv)
	inv.TotalInvestment = m.TotalInvestment
	inv.CurrentValue = m.CurrentValue
	inv.GainLoss = m.GainLoss
	inv.GainLossPercentage = m.GainLossPercentage
	return inv
}

// CalculatePortfolioValue sums cost and value over all positions and derives a
// single gain percentage from the totals.
func CalculatePortfolioValue(investments []domain.Investment) PortfolioValue {
	totalInvestment := decimal.Zero
	currentValue := decimal.Zero
	for _, inv := range investments {
		totalInvestment = totalInvestment.Add(inv.Quantity.Mul(inv.AveragePrice))
		currentValue = currentValue.Add(inv.Quantity.Mul(inv.CurrentPrice))
	}
	totalGainLoss := currentValue.Sub(totalInvestment)

	return PortfolioValue{
		TotalInvestment:         totalInvestment,
		CurrentValue:            currentValue,
		TotalGainLoss:           totalGainLoss,
		TotalGainLossPercentage: gainPercentage(totalGainLoss, totalInvestment),
	}
}
