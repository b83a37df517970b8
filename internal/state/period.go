package state

import (
	"sync"

	"github.com/hanifw/kantong-sync/internal/domain"
)

// PeriodSelector holds the selected month/year and the active list filters.
//
// Navigation is guarded by an explicit transition lock: a successful Next,
// Previous or JumpTo locks the selector, and further navigation is rejected
// with domain.ErrNavigationLocked until the orchestrator calls Unlock at the
// end of the transition. This keeps the rendered view model on a single,
// fully resolved period.
type PeriodSelector struct {
	mu      sync.Mutex
	period  domain.Period
	filters domain.TransactionFilters
	locked  bool
}

// NewPeriodSelector starts at the given period with no filters.
func NewPeriodSelector(p domain.Period) *PeriodSelector {
	return &PeriodSelector{period: p}
}

// Period returns the currently selected period.
func (s *PeriodSelector) Period() domain.Period {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.period
}

// Filters returns the active transaction filters.
func (s *PeriodSelector) Filters() domain.TransactionFilters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// Locked reports whether a navigation transition is in progress.
func (s *PeriodSelector) Locked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locked
}

// Next advances to the following month and locks navigation.
func (s *PeriodSelector) Next() (domain.Period, error) {
	return s.navigate(func(p domain.Period) domain.Period { return p.Next() })
}

// Previous moves to the preceding month and locks navigation.
func (s *PeriodSelector) Previous() (domain.Period, error) {
	return s.navigate(func(p domain.Period) domain.Period { return p.Previous() })
}

// JumpTo selects an arbitrary month and locks navigation.
func (s *PeriodSelector) JumpTo(month, year int) (domain.Period, error) {
	target := domain.Period{Month: month, Year: year}
	if !target.Valid() {
		return domain.Period{}, domain.ErrInvalidPeriod
	}
	return s.navigate(func(domain.Period) domain.Period { return target })
}

func (s *PeriodSelector) navigate(move func(domain.Period) domain.Period) (domain.Period, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.locked {
		return domain.Period{}, domain.ErrNavigationLocked
	}
	s.period = move(s.period)
	s.locked = true
	return s.period, nil
}

// Unlock ends the navigation transition.
func (s *PeriodSelector) Unlock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locked = false
}

// SetFilter applies a partial filter update and returns the resulting filters.
// Filter changes are not navigation and are never rejected by the lock.
func (s *PeriodSelector) SetFilter(patch domain.FilterPatch) domain.TransactionFilters {
	s.mu.Lock()
	defer s.mu.Unlock()
	if patch.ClearType {
		s.filters.Type = nil
	} else if patch.Type != nil {
		t := *patch.Type
		s.filters.Type = &t
	}
	if patch.ClearAccount {
		s.filters.AccountID = nil
	} else if patch.AccountID != nil {
		id := *patch.AccountID
		s.filters.AccountID = &id
	}
	return s.filters
}
