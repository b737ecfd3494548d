package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/sheets_ledger_app/internal/apperrors"
	"github.com/SscSPs/sheets_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/sheets_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/sheets_ledger_app/internal/utils/fiscal"
)

// FinancialYearSelector holds the financial year the application is working in.
// It is safe for concurrent use; subscribers are called after each change,
// outside the lock, in subscription order.
type FinancialYearSelector struct {
	mu          sync.RWMutex
	selected    string
	nextID      int
	subscribers []subscriber
}

type subscriber struct {
	id int
	fn func(label string)
}

// NewFinancialYearSelector starts at initial, or at the year containing now when initial is empty.
func NewFinancialYearSelector(initial string, now time.Time) (*FinancialYearSelector, error) {
	if initial == "" {
		initial = fiscal.Current(now)
	}
	if !fiscal.Valid(initial) {
		return nil, fmt.Errorf("%w: %q", fiscal.ErrInvalidLabel, initial)
	}
	return &FinancialYearSelector{selected: initial}, nil
}

// Selected returns the selected financial year label.
func (s *FinancialYearSelector) Selected() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// Resolve returns fy when given, otherwise the selected year.
func (s *FinancialYearSelector) Resolve(fy string) string {
	if fy != "" {
		return fy
	}
	return s.Selected()
}

// Select changes the selected year and notifies subscribers when it differs.
func (s *FinancialYearSelector) Select(label string) error {
	if !fiscal.Valid(label) {
		return apperrors.NewAppError("VALIDATION_ERROR", fmt.Sprintf("invalid financial year %q", label), apperrors.ErrValidation)
	}

	s.mu.Lock()
	if s.selected == label {
		s.mu.Unlock()
		return nil
	}
	s.selected = label
	subs := make([]subscriber, len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(label)
	}
	return nil
}

// Subscribe registers fn to be called with every newly selected year.
// The returned function removes the subscription.
func (s *FinancialYearSelector) Subscribe(fn func(label string)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subscribers {
			if sub.id == id {
				s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

type financialYearService struct {
	BaseService
	selector *FinancialYearSelector
}

// NewFinancialYearService exposes selector as a FinancialYearSvc.
func NewFinancialYearService(selector *FinancialYearSelector, options ...ServiceOption) portssvc.FinancialYearSvc {
	svc := &financialYearService{selector: selector}
	svc.apply(options)
	return svc
}

var _ portssvc.FinancialYearSvc = (*financialYearService)(nil)

func (s *financialYearService) ListFinancialYears(ctx context.Context) []domain.FinancialYear {
	now := s.Now()
	current := fiscal.Current(now)
	labels := fiscal.Available(now)

	years := make([]domain.FinancialYear, 0, len(labels))
	for _, label := range labels {
		start, end, err := fiscal.Dates(label)
		if err != nil {
			s.LogError(ctx, err, "Skipping unparsable financial year", slog.String("financial_year", label))
			continue
		}
		years = append(years, domain.FinancialYear{
			Year:      label,
			StartDate: start,
			EndDate:   end,
			IsCurrent: label == current,
		})
	}
	return years
}

func (s *financialYearService) SelectedFinancialYear() string {
	return s.selector.Selected()
}

func (s *financialYearService) CurrentFinancialYear() string {
	return fiscal.Current(s.Now())
}

func (s *financialYearService) SelectFinancialYear(ctx context.Context, label string) error {
	if err := s.selector.Select(label); err != nil {
		s.LogDebug(ctx, "Rejected financial year selection", slog.String("financial_year", label))
		return err
	}
	s.LogInfo(ctx, "Financial year selected", slog.String("financial_year", label))
	return nil
}
