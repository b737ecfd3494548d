package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type initStorageCmd struct {
	verbose bool
}

func (*initStorageCmd) Name() string     { return "init-storage" }
func (*initStorageCmd) Synopsis() string { return "create the ledger sheets or tables if they are missing" }
func (*initStorageCmd) Usage() string {
	return `ledgerctl init-storage [-v]

  Prepares the configured storage backend (STORAGE_BACKEND). For Google Sheets
  this adds any missing tab and writes its header row; for PostgreSQL it runs
  the pending migrations.
`
}

func (c *initStorageCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.verbose, "v", false, "Enable debug logging.")
}

func (c *initStorageCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx, "", c.verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer a.close()

	if err := a.repos.Schema.EnsureSchema(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error preparing storage: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s storage is ready\n", a.cfg.StorageBackend)
	return subcommands.ExitSuccess
}

type recalculateCmd struct {
	fy      string
	verbose bool
}

func (*recalculateCmd) Name() string     { return "recalculate" }
func (*recalculateCmd) Synopsis() string { return "recompute the cached balance of every account" }
func (*recalculateCmd) Usage() string {
	return `ledgerctl recalculate [-fy <year>] [-v]

  Recomputes the stored balance of each account of the financial year from
  the full transaction history.
`
}

func (c *recalculateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.fy, "fy", "", "Financial year whose accounts are recalculated, e.g. 2024-25 (defaults to the current one).")
	f.BoolVar(&c.verbose, "v", false, "Enable debug logging.")
}

func (c *recalculateCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx, c.fy, c.verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer a.close()

	accounts, err := a.repos.AccountRepo.ListAccounts(ctx, a.services.FinancialYear.SelectedFinancialYear())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing accounts: %v\n", err)
		return subcommands.ExitFailure
	}
	ids := make([]string, len(accounts))
	for i, acc := range accounts {
		ids[i] = acc.ID
	}

	if err := a.services.Account.RecalculateBalances(ctx, ids); err != nil {
		fmt.Fprintf(os.Stderr, "Error recalculating balances: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("recalculated %d accounts\n", len(ids))
	return subcommands.ExitSuccess
}
