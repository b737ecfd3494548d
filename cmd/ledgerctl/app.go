package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	portsrepo "github.com/SscSPs/sheets_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sheets_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/sheets_ledger_app/internal/core/services"
	"github.com/SscSPs/sheets_ledger_app/internal/platform/config"
	"github.com/SscSPs/sheets_ledger_app/internal/repositories"
	"github.com/google/subcommands"
)

var commands = []subcommands.Command{
	&initStorageCmd{},
	&fyCmd{},
	&summaryCmd{},
	&recalculateCmd{},
	&validateCmd{},
}

// app bundles what a command needs once storage is open.
type app struct {
	cfg      *config.Config
	repos    portsrepo.RepositoryProvider
	services *portssvc.ServiceContainer
	close    func()
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// openApp loads the configuration, opens the configured storage backend and
// builds the service container. fy overrides FINANCIAL_YEAR when non-empty.
func openApp(ctx context.Context, fy string, verbose bool) (*app, error) {
	logger := newLogger(verbose)
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if fy != "" {
		cfg.FinancialYear = fy
	}

	repos, closeRepos, err := repositories.Open(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("opening %s storage: %w", cfg.StorageBackend, err)
	}

	selector, err := services.NewFinancialYearSelector(cfg.FinancialYear, time.Now())
	if err != nil {
		closeRepos()
		return nil, err
	}

	container, err := services.NewServiceContainer(cfg, repos, selector)
	if err != nil {
		closeRepos()
		return nil, err
	}

	return &app{cfg: cfg, repos: repos, services: container, close: closeRepos}, nil
}
