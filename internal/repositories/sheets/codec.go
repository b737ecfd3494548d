package sheets

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/SscSPs/sheets_ledger_app/internal/apperrors"
	"github.com/SscSPs/sheets_ledger_app/internal/core/domain"
)

func encodeAccount(a domain.Account) []interface{} {
	return []interface{}{
		a.ID,
		a.Name,
		string(a.Type),
		a.SubType,
		decimalCell(a.Balance),
		boolCell(a.IsActive),
		timeCell(a.CreatedAt),
		a.FinancialYear,
	}
}

func decodeAccount(cells []interface{}) (domain.Account, error) {
	r, err := accountsTable.reader(cells)
	if err != nil {
		return domain.Account{}, err
	}
	a := domain.Account{
		ID:            r.String("ID"),
		Name:          r.String("Name"),
		Type:          domain.AccountType(r.String("Type")),
		SubType:       r.String("SubType"),
		Balance:       r.Decimal("Balance"),
		IsActive:      r.Bool("IsActive"),
		CreatedAt:     r.Time("CreatedAt"),
		FinancialYear: r.String("FinancialYear"),
	}
	return a, r.Err()
}

// entryCell is the JSON shape of one entry in the Entries column. Amounts are
// written as bare JSON numbers.
type entryCell struct {
	AccountID   string      `json:"accountId"`
	AccountName string      `json:"accountName"`
	Debit       json.Number `json:"debit"`
	Credit      json.Number `json:"credit"`
}

func encodeTransaction(t domain.Transaction) ([]interface{}, error) {
	cells := make([]entryCell, 0, len(t.Entries))
	for _, e := range t.Entries {
		cells = append(cells, entryCell{
			AccountID:   e.AccountID,
			AccountName: e.AccountName,
			Debit:       json.Number(e.Debit.String()),
			Credit:      json.Number(e.Credit.String()),
		})
	}
	entries, err := json.Marshal(cells)
	if err != nil {
		return nil, fmt.Errorf("failed to encode entries of transaction %s: %w", t.ID, err)
	}

	return []interface{}{
		t.ID,
		t.Date,
		t.Description,
		t.Reference,
		decimalCell(t.TotalAmount),
		boolCell(t.IsBalanced),
		t.Category,
		t.FinancialYear,
		timeCell(t.CreatedAt),
		timeCell(t.UpdatedAt),
		string(entries),
	}, nil
}

func decodeTransaction(cells []interface{}) (domain.Transaction, error) {
	r, err := transactionsTable.reader(cells)
	if err != nil {
		return domain.Transaction{}, err
	}
	t := domain.Transaction{
		ID:            r.String("ID"),
		Date:          r.String("Date"),
		Description:   r.String("Description"),
		Reference:     r.String("Reference"),
		TotalAmount:   r.Decimal("TotalAmount"),
		IsBalanced:    r.Bool("IsBalanced"),
		Category:      r.String("Category"),
		FinancialYear: r.String("FinancialYear"),
		CreatedAt:     r.Time("CreatedAt"),
		UpdatedAt:     r.Time("UpdatedAt"),
		Entries:       []domain.TransactionEntry{},
	}
	if err := r.Err(); err != nil {
		return domain.Transaction{}, err
	}

	if raw := strings.TrimSpace(r.String("Entries")); raw != "" {
		if err := json.Unmarshal([]byte(raw), &t.Entries); err != nil {
			return domain.Transaction{}, fmt.Errorf("%w: transaction %s entries: %v", apperrors.ErrMalformedRow, t.ID, err)
		}
	}
	return t, nil
}

func encodeCashbookEntry(e domain.CashbookEntry) []interface{} {
	return []interface{}{
		e.ID,
		e.Date,
		e.Description,
		e.BankAccount,
		string(e.Type),
		decimalCell(e.Amount),
		decimalCell(e.Balance),
		e.Category,
		e.Reference,
		boolCell(e.Reconciled),
		e.FinancialYear,
		timeCell(e.CreatedAt),
	}
}

func decodeCashbookEntry(cells []interface{}) (domain.CashbookEntry, error) {
	r, err := cashbookTable.reader(cells)
	if err != nil {
		return domain.CashbookEntry{}, err
	}
	e := domain.CashbookEntry{
		ID:            r.String("ID"),
		Date:          r.String("Date"),
		Description:   r.String("Description"),
		BankAccount:   r.String("BankAccount"),
		Type:          domain.CashbookEntryType(r.String("Type")),
		Amount:        r.Decimal("Amount"),
		Balance:       r.Decimal("Balance"),
		Category:      r.String("Category"),
		Reference:     r.String("Reference"),
		Reconciled:    r.Bool("Reconciled"),
		FinancialYear: r.String("FinancialYear"),
		CreatedAt:     r.Time("CreatedAt"),
	}
	return e, r.Err()
}

func encodeInvestment(i domain.Investment) []interface{} {
	return []interface{}{
		i.ID,
		i.Symbol,
		i.Name,
		string(i.Type),
		decimalCell(i.Quantity),
		decimalCell(i.AveragePrice),
		decimalCell(i.CurrentPrice),
		decimalCell(i.TotalInvestment),
		decimalCell(i.CurrentValue),
		decimalCell(i.GainLoss),
		decimalCell(i.GainLossPercentage),
		timeCell(i.LastUpdated),
		i.FinancialYear,
	}
}

func decodeInvestment(cells []interface{}) (domain.Investment, error) {
	r, err := investmentsTable.reader(cells)
	if err != nil {
		return domain.Investment{}, err
	}
	i := domain.Investment{
		ID:                 r.String("ID"),
		Symbol:             r.String("Symbol"),
		Name:               r.String("Name"),
		Type:               domain.InvestmentType(r.String("Type")),
		Quantity:           r.Decimal("Quantity"),
		AveragePrice:       r.Decimal("AveragePrice"),
		CurrentPrice:       r.Decimal("CurrentPrice"),
		TotalInvestment:    r.Decimal("TotalInvestment"),
		CurrentValue:       r.Decimal("CurrentValue"),
		GainLoss:           r.Decimal("GainLoss"),
		GainLossPercentage: r.Decimal("GainLossPercentage"),
		LastUpdated:        r.Time("LastUpdated"),
		FinancialYear:      r.String("FinancialYear"),
	}
	return i, r.Err()
}

func decodeCategory(cells []interface{}) (domain.Category, error) {
	r, err := categoriesTable.reader(cells)
	if err != nil {
		return domain.Category{}, err
	}
	c := domain.Category{
		ID:        r.String("ID"),
		Name:      r.String("Name"),
		Type:      domain.CategoryType(r.String("Type")),
		IsActive:  r.Bool("IsActive"),
		CreatedAt: r.Time("CreatedAt"),
	}
	return c, r.Err()
}

func encodeSummary(s domain.FinancialSummary) [][]interface{} {
	updated := timeCell(s.LastUpdated)
	return [][]interface{}{
		{"Total Assets", decimalCell(s.TotalAssets), updated},
		{"Total Liabilities", decimalCell(s.TotalLiabilities), updated},
		{"Net Worth", decimalCell(s.NetWorth), updated},
		{"Monthly Income", decimalCell(s.MonthlyIncome), updated},
		{"Monthly Expenses", decimalCell(s.MonthlyExpenses), updated},
		{"Investment Value", decimalCell(s.InvestmentValue), updated},
		{"Cash Balance", decimalCell(s.CashBalance), updated},
	}
}
