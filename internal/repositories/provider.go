// Package repositories selects the storage backend named by STORAGE_BACKEND.
package repositories

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/sheets_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/sheets_ledger_app/internal/platform/config"
	"github.com/SscSPs/sheets_ledger_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/sheets_ledger_app/internal/repositories/sheets"
	"github.com/SscSPs/sheets_ledger_app/pkg/database"
)

// Open connects to the configured backend. The returned close function
// releases its resources and is never nil.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	switch cfg.StorageBackend {
	case config.StoragePostgres:
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, database.DefaultPoolOptions(cfg.EnableDBCheck), logger)
		if err != nil {
			return portsrepo.RepositoryProvider{}, func() {}, fmt.Errorf("failed to initialize database pool: %w", err)
		}
		logger.Info("Database connection pool established.")
		return pgsql.NewRepositoryProvider(dbPool, cfg.DatabaseURL), func() { database.ClosePgxPool(dbPool, logger) }, nil
	case config.StorageSheets:
		client, err := sheets.NewClient(ctx, sheets.Credentials{
			SpreadsheetID:   cfg.SheetID,
			ClientEmail:     cfg.SheetsClientEmail,
			PrivateKey:      cfg.SheetsPrivateKey,
			CredentialsFile: cfg.SheetsCredentialsFile,
		})
		if err != nil {
			return portsrepo.RepositoryProvider{}, func() {}, fmt.Errorf("failed to initialize sheets client: %w", err)
		}
		logger.Info("Google Sheets client initialized", slog.String("spreadsheet_id", cfg.SheetID))
		return sheets.NewRepositoryProvider(client), func() {}, nil
	default:
		return portsrepo.RepositoryProvider{}, func() {}, fmt.Errorf("unsupported storage backend %q", cfg.StorageBackend)
	}
}
