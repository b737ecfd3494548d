package mapping

import (
	"github.com/SscSPs/sheets_ledger_app/internal/core/domain"
	"github.com/SscSPs/sheets_ledger_app/internal/models"
)

func ToModelInvestment(d domain.Investment) models.Investment {
	return models.Investment{
		InvestmentID:       d.ID,
		Symbol:             d.Symbol,
		Name:               d.Name,
		InvestmentType:     string(d.Type),
		Quantity:           d.Quantity,
		AveragePrice:       d.AveragePrice,
		CurrentPrice:       d.CurrentPrice,
		TotalInvestment:    d.TotalInvestment,
		CurrentValue:       d.CurrentValue,
		GainLoss:           d.GainLoss,
		GainLossPercentage: d.GainLossPercentage,
		LastUpdated:        d.LastUpdated,
		FinancialYear:      d.FinancialYear,
	}
}

func ToDomainInvestment(m models.Investment) domain.Investment {
	return domain.Investment{
		ID:                 m.InvestmentID,
		Symbol:             m.Symbol,
		Name:               m.Name,
		Type:               domain.InvestmentType(m.InvestmentType),
		Quantity:           m.Quantity,
		AveragePrice:       m.AveragePrice,
		CurrentPrice:       m.CurrentPrice,
		TotalInvestment:    m.TotalInvestment,
		CurrentValue:       m.CurrentValue,
		GainLoss:           m.GainLoss,
		GainLossPercentage: m.GainLossPercentage,
		LastUpdated:        m.LastUpdated,
		FinancialYear:      m.FinancialYear,
	}
}
