package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/SscSPs/sheets_ledger_app/internal/dto"
	"github.com/SscSPs/sheets_ledger_app/internal/utils"
	"github.com/SscSPs/sheets_ledger_app/internal/utils/fiscal"
	"github.com/google/subcommands"
)

type fyCmd struct{}

func (*fyCmd) Name() string     { return "fy" }
func (*fyCmd) Synopsis() string { return "list the selectable financial years" }
func (*fyCmd) Usage() string {
	return `ledgerctl fy

  Lists the financial years offered for selection, newest first, and marks
  the current one.
`
}

func (*fyCmd) SetFlags(*flag.FlagSet) {}

func (*fyCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := writeFinancialYears(os.Stdout, time.Now()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func writeFinancialYears(w io.Writer, now time.Time) error {
	current := fiscal.Current(now)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, label := range fiscal.Available(now) {
		start, end, err := fiscal.ISODates(label)
		if err != nil {
			return err
		}
		marker := ""
		if label == current {
			marker = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", marker, label, start, end)
	}
	return tw.Flush()
}

type summaryCmd struct {
	fy      string
	verbose bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "print the dashboard summary of a financial year" }
func (*summaryCmd) Usage() string {
	return `ledgerctl summary [-fy <year>] [-v]

  Computes the financial summary (assets, liabilities, net worth, this month's
  income and expenses, investments and cash) and stores it in the dashboard.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.fy, "fy", "", "Financial year to summarize, e.g. 2024-25 (defaults to the current one).")
	f.BoolVar(&c.verbose, "v", false, "Enable debug logging.")
}

func (c *summaryCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx, c.fy, c.verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer a.close()

	dashboard, err := a.services.Reporting.Dashboard(ctx, dto.ReportParams{FinancialYear: c.fy})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building summary: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := writeSummary(os.Stdout, dashboard, a.cfg.CurrencyCode); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func writeSummary(w io.Writer, d *dto.DashboardResponse, currencyCode string) error {
	s := d.Summary
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Financial year\t%s\t\n", d.FinancialYear)
	rows := []struct {
		label string
		value string
	}{
		{"Total assets", utils.FormatMoney(s.TotalAssets, currencyCode)},
		{"Total liabilities", utils.FormatMoney(s.TotalLiabilities, currencyCode)},
		{"Net worth", utils.FormatMoney(s.NetWorth, currencyCode)},
		{"Monthly income", utils.FormatMoney(s.MonthlyIncome, currencyCode)},
		{"Monthly expenses", utils.FormatMoney(s.MonthlyExpenses, currencyCode)},
		{"Investments", utils.FormatMoney(s.InvestmentValue, currencyCode)},
		{"Cash", utils.FormatMoney(s.CashBalance, currencyCode)},
	}
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t\n", r.label, r.value)
	}
	return tw.Flush()
}
