package sheets

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/sheets_ledger_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// table describes one sheet: its title, its ordered header columns and the
// columns a record cannot do without.
type table struct {
	name     string
	columns  []string
	index    map[string]int
	required []string
}

func newTable(name string, columns ...string) table {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		index[c] = i
	}
	return table{name: name, columns: columns, index: index}
}

func (t table) requires(columns ...string) table {
	t.required = columns
	return t
}

var (
	accountsTable = newTable("Accounts",
		"ID", "Name", "Type", "SubType", "Balance", "IsActive", "CreatedAt", "FinancialYear").
		requires("ID", "Type")
	transactionsTable = newTable("Transactions",
		"ID", "Date", "Description", "Reference", "TotalAmount", "IsBalanced", "Category",
		"FinancialYear", "CreatedAt", "UpdatedAt", "Entries").
		requires("ID", "Date")
	cashbookTable = newTable("Cashbook",
		"ID", "Date", "Description", "BankAccount", "Type", "Amount", "Balance", "Category",
		"Reference", "Reconciled", "FinancialYear", "CreatedAt").
		requires("ID", "Date")
	investmentsTable = newTable("Investments",
		"ID", "Symbol", "Name", "Type", "Quantity", "AveragePrice", "CurrentPrice",
		"TotalInvestment", "CurrentValue", "GainLoss", "GainLossPercentage", "LastUpdated", "FinancialYear").
		requires("ID")
	categoriesTable = newTable("Categories",
		"ID", "Name", "Type", "IsActive", "CreatedAt").
		requires("ID", "Name", "Type")
	dashboardTable = newTable("Dashboard",
		"Metric", "Value", "LastUpdated")
	configTable = newTable("Config",
		"Key", "Value", "Description")
)

// allTables lists every sheet EnsureSchema maintains, in creation order.
var allTables = []table{
	accountsTable, transactionsTable, cashbookTable, investmentsTable,
	categoriesTable, dashboardTable, configTable,
}

func (t table) lastColumn() string {
	return columnLetter(len(t.columns))
}

// columnLetter converts a 1-based column number to its A1 letters.
func columnLetter(n int) string {
	letters := ""
	for n > 0 {
		n--
		letters = string(rune('A'+n%26)) + letters
		n /= 26
	}
	return letters
}

// dataRange covers every record row, below the header.
func (t table) dataRange() string {
	return fmt.Sprintf("%s!A2:%s", t.name, t.lastColumn())
}

func (t table) appendRange() string {
	return fmt.Sprintf("%s!A:%s", t.name, t.lastColumn())
}

// rowRange addresses the record at position i (0-based) of dataRange.
func (t table) rowRange(i int) string {
	row := i + 2
	return fmt.Sprintf("%s!A%d:%s%d", t.name, row, t.lastColumn(), row)
}

func (t table) headerRange() string {
	return fmt.Sprintf("%s!A1", t.name)
}

func (t table) header() []interface{} {
	out := make([]interface{}, len(t.columns))
	for i, c := range t.columns {
		out[i] = c
	}
	return out
}

// rowReader extracts typed values from a row by column name. The first
// conversion failure is kept and reported by Err; later reads return zero values.
type rowReader struct {
	table table
	cells []interface{}
	err   error
}

// reader pads cells to the header width, since the values API drops trailing
// empty cells, and rejects rows missing a required column.
func (t table) reader(cells []interface{}) (*rowReader, error) {
	if len(cells) < len(t.columns) {
		padded := make([]interface{}, len(t.columns))
		copy(padded, cells)
		cells = padded
	}
	for _, column := range t.required {
		if strings.TrimSpace(cellString(cells[t.index[column]])) == "" {
			return nil, fmt.Errorf("%w: %s row is missing %s", apperrors.ErrMalformedRow, t.name, column)
		}
	}
	return &rowReader{table: t, cells: cells}, nil
}

func (r *rowReader) fail(column, value string, err error) {
	if r.err == nil {
		r.err = fmt.Errorf("%w: %s.%s %q: %v", apperrors.ErrMalformedRow, r.table.name, column, value, err)
	}
}

func (r *rowReader) String(column string) string {
	i, ok := r.table.index[column]
	if !ok {
		panic(fmt.Sprintf("sheets: unknown column %s.%s", r.table.name, column))
	}
	return cellString(r.cells[i])
}

func (r *rowReader) Decimal(column string) decimal.Decimal {
	raw := strings.ReplaceAll(strings.TrimSpace(r.String(column)), ",", "")
	if raw == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		r.fail(column, raw, err)
		return decimal.Zero
	}
	return d
}

func (r *rowReader) Bool(column string) bool {
	return strings.EqualFold(strings.TrimSpace(r.String(column)), "TRUE")
}

// sheetsEpoch is day zero of spreadsheet date serial numbers.
var sheetsEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

var timeLayouts = []string{time.RFC3339Nano, time.DateTime, time.DateOnly}

// Time reads an audit timestamp. Besides RFC 3339 it accepts dates typed by
// hand and date serial numbers. Anything else reads as the zero time; audit
// stamps never reject a record.
func (r *rowReader) Time(column string) time.Time {
	i := r.table.index[column]
	if serial, ok := r.cells[i].(float64); ok {
		return sheetsEpoch.Add(time.Duration(serial * float64(24*time.Hour))).Round(time.Second)
	}
	raw := strings.TrimSpace(r.String(column))
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	slog.Debug("Ignoring unreadable timestamp",
		slog.String("sheet", r.table.name),
		slog.String("column", column),
		slog.String("value", raw))
	return time.Time{}
}

func (r *rowReader) Err() error {
	return r.err
}

// cellString renders a value as returned by the API with UNFORMATTED_VALUE.
func cellString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return boolCell(val)
	default:
		return fmt.Sprint(val)
	}
}

func boolCell(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

func decimalCell(d decimal.Decimal) interface{} {
	return d.InexactFloat64()
}

func timeCell(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}
