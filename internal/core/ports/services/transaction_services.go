package services

import (
	"context"

	"github.com/SscSPs/sheets_ledger_app/internal/core/domain"
	"github.com/SscSPs/sheets_ledger_app/internal/dto"
)

// TransactionReaderSvc defines read operations for the journal
type TransactionReaderSvc interface {
	// ListTransactions returns one page of transactions, newest first, and the token for the next page.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, string, error)
}

// TransactionWriterSvc defines write operations for the journal
type TransactionWriterSvc interface {
	// CreateTransaction validates and records a transaction, then refreshes the balances it touches.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// ValidateTransaction checks a draft without storing it.
	ValidateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*dto.ValidateTransactionResponse, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
