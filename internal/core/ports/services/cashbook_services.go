package services

import (
	"context"

	"github.com/SscSPs/sheets_ledger_app/internal/core/domain"
	"github.com/SscSPs/sheets_ledger_app/internal/dto"
	"github.com/SscSPs/sheets_ledger_app/internal/utils/accounting"
)

// CashbookSvcFacade manages bank movements and their running balances.
type CashbookSvcFacade interface {
	ListCashbookEntries(ctx context.Context, params dto.ListCashbookParams) ([]domain.CashbookEntry, error)
	CreateCashbookEntry(ctx context.Context, req dto.CreateCashbookEntryRequest) (*domain.CashbookEntry, error)
	CashFlow(ctx context.Context, params dto.CashFlowParams) (accounting.CashFlow, error)
}
