// Package fiscal implements the April to March financial year used to partition
// ledger records. A year is labelled by its start year and the last two digits
// of its end year, e.g. "2024-25".
package fiscal

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// StartMonth is the first month of every financial year.
const StartMonth = time.April

// ErrInvalidLabel is returned for labels not of the form "YYYY-YY" with
// consecutive years.
var ErrInvalidLabel = errors.New("invalid financial year label")

var labelPattern = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

// Label builds the label of the financial year starting in startYear.
func Label(startYear int) string {
	return fmt.Sprintf("%d-%02d", startYear, (startYear+1)%100)
}

// startYearOf returns the calendar year in which the financial year containing t begins.
func startYearOf(t time.Time) int {
	if t.Month() >= StartMonth {
		return t.Year()
	}
	return t.Year() - 1
}

// FromDate returns the label of the financial year containing t.
func FromDate(t time.Time) string {
	return Label(startYearOf(t))
}

// Current returns the label of the financial year containing now.
func Current(now time.Time) string {
	return FromDate(now)
}

// Valid reports whether label is a well-formed financial year label.
func Valid(label string) bool {
	_, err := parse(label)
	return err == nil
}

func parse(label string) (int, error) {
	m := labelPattern.FindStringSubmatch(label)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLabel, label)
	}
	start, _ := strconv.Atoi(m[1])
	end, _ := strconv.Atoi(m[2])
	if (start+1)%100 != end {
		return 0, fmt.Errorf("%w: %q does not span consecutive years", ErrInvalidLabel, label)
	}
	return start, nil
}

// Dates returns the first and last day of the financial year, in UTC.
func Dates(label string) (start, end time.Time, err error) {
	startYear, err := parse(label)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start = time.Date(startYear, StartMonth, 1, 0, 0, 0, 0, time.UTC)
	end = time.Date(startYear+1, time.March, 31, 0, 0, 0, 0, time.UTC)
	return start, end, nil
}

// ISODates is Dates formatted as YYYY-MM-DD strings.
func ISODates(label string) (string, string, error) {
	start, end, err := Dates(label)
	if err != nil {
		return "", "", err
	}
	return start.Format(time.DateOnly), end.Format(time.DateOnly), nil
}

// Contains reports whether t falls within the financial year label.
// It is false for malformed labels.
func Contains(t time.Time, label string) bool {
	startYear, err := parse(label)
	if err != nil {
		return false
	}
	return startYearOf(t) == startYear
}

// Available lists the financial years offered for selection: five years back
// to two years ahead of the current one, latest first.
func Available(now time.Time) []string {
	current := startYearOf(now)
	years := make([]string, 0, 8)
	for y := current + 2; y >= current-5; y-- {
		years = append(years, Label(y))
	}
	return years
}

// Months lists the twelve months of the financial year as YYYY-MM, April first.
func Months(label string) ([]string, error) {
	start, _, err := Dates(label)
	if err != nil {
		return nil, err
	}
	months := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		months = append(months, start.AddDate(0, i, 0).Format("2006-01"))
	}
	return months, nil
}

// Quarter returns the financial quarter of t: April to June is 1, January to March is 4.
func Quarter(t time.Time) int {
	offset := (int(t.Month()) - int(StartMonth) + 12) % 12
	return offset/3 + 1
}

// CurrentMonth returns now as YYYY-MM.
func CurrentMonth(now time.Time) string {
	return now.Format("2006-01")
}
