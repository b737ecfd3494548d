package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/SscSPs/sheets_ledger_app/internal/dto"
	"github.com/SscSPs/sheets_ledger_app/internal/utils/accounting"
	"github.com/google/subcommands"
)

type validateCmd struct{}

func (*validateCmd) Name() string     { return "validate" }
func (*validateCmd) Synopsis() string { return "check a transaction file without saving it" }
func (*validateCmd) Usage() string {
	return `ledgerctl validate <transaction.json>

  Reads a transaction in the API request format and reports whether it is
  complete and balanced. Use - to read from standard input. No storage is
  touched.
`
}

func (*validateCmd) SetFlags(*flag.FlagSet) {}

func (*validateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "validate expects exactly one file argument")
		return subcommands.ExitUsageError
	}

	var r io.Reader = os.Stdin
	if name := f.Arg(0); name != "-" {
		file, err := os.Open(name)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		r = file
	}

	valid, err := validateTransactionFile(r, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if !valid {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// validateTransactionFile decodes one transaction request from r, writes the
// validation report to w and tells whether the transaction is valid.
func validateTransactionFile(r io.Reader, w io.Writer) (bool, error) {
	var req dto.CreateTransactionRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return false, fmt.Errorf("decoding transaction: %w", err)
	}

	txn := req.ToDomainTransaction()
	balance := accounting.ValidateDoubleEntry(txn.Entries)
	validation := accounting.ValidateTransaction(txn)

	fmt.Fprintf(w, "debits:     %s\n", balance.TotalDebits.StringFixed(2))
	fmt.Fprintf(w, "credits:    %s\n", balance.TotalCredits.StringFixed(2))
	fmt.Fprintf(w, "difference: %s\n", balance.Difference.StringFixed(2))
	if validation.IsValid {
		fmt.Fprintln(w, "transaction is valid")
		return true, nil
	}
	for _, msg := range validation.Errors {
		fmt.Fprintf(w, "error: %s\n", msg)
	}
	return false, nil
}
