package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/sheets_ledger_app/internal/apperrors"
	"github.com/SscSPs/sheets_ledger_app/internal/utils/fiscal"
)

// store wraps a Client with the row bookkeeping shared by all repositories.
type store struct {
	client Client
}

func (s store) readRows(ctx context.Context, t table) ([][]interface{}, error) {
	return s.client.GetValues(ctx, t.dataRange())
}

func (s store) append(ctx context.Context, t table, row []interface{}) error {
	return s.client.AppendRows(ctx, t.appendRange(), [][]interface{}{row})
}

// findRow returns the position of the row whose ID column equals id, or -1.
func (s store) findRow(rows [][]interface{}, id string) int {
	for i, row := range rows {
		if len(row) > 0 && cellString(row[0]) == id {
			return i
		}
	}
	return -1
}

// decodeAll decodes every non-blank row, skipping and logging the ones that fail.
func decodeAll[T any](ctx context.Context, t table, rows [][]interface{}, decode func([]interface{}) (T, error)) []T {
	out := make([]T, 0, len(rows))
	for i, row := range rows {
		if isBlank(row) {
			continue
		}
		v, err := decode(row)
		if err != nil {
			slog.WarnContext(ctx, "Skipping malformed row",
				slog.String("sheet", t.name),
				slog.Int("row", i+2),
				slog.String("error", err.Error()))
			continue
		}
		out = append(out, v)
	}
	return out
}

// inYear matches a record to the financial year fy by its FinancialYear cell,
// or by its date when that cell was left blank.
func inYear(label, date, fy string) bool {
	if label != "" {
		return label == fy
	}
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(date))
	return err == nil && fiscal.Contains(t, fy)
}

func isBlank(row []interface{}) bool {
	for _, c := range row {
		if strings.TrimSpace(cellString(c)) != "" {
			return false
		}
	}
	return true
}

func notFound(kind, id string) error {
	return fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, kind, id)
}
