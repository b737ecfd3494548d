package mapping

import (
	"fmt"
	"time"

	"github.com/SscSPs/sheets_ledger_app/internal/apperrors"
)

// ParseISODate converts a YYYY-MM-DD string for a DATE column.
func ParseISODate(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q is not YYYY-MM-DD", apperrors.ErrValidation, s)
	}
	return t, nil
}

func FormatISODate(t time.Time) string {
	return t.Format(time.DateOnly)
}
