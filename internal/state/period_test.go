package state

import (
	"testing"

	"github.com/hanifw/kantong-sync/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodSelector_Navigation(t *testing.T) {
	s := NewPeriodSelector(domain.Period{Month: 12, Year: 2025})

	p, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, domain.Period{Month: 1, Year: 2026}, p)
	s.Unlock()

	p, err = s.Previous()
	require.NoError(t, err)
	assert.Equal(t, domain.Period{Month: 12, Year: 2025}, p)
	s.Unlock()

	p, err = s.JumpTo(3, 2025)
	require.NoError(t, err)
	assert.Equal(t, domain.Period{Month: 3, Year: 2025}, p)
}

func TestPeriodSelector_RejectsWhileLocked(t *testing.T) {
	s := NewPeriodSelector(domain.Period{Month: 1, Year: 2025})

	_, err := s.Next()
	require.NoError(t, err)
	assert.True(t, s.Locked())

	// every navigation op is a no-op while the transition is in progress
	_, err = s.Next()
	assert.ErrorIs(t, err, domain.ErrNavigationLocked)
	_, err = s.Previous()
	assert.ErrorIs(t, err, domain.ErrNavigationLocked)
	_, err = s.JumpTo(6, 2025)
	assert.ErrorIs(t, err, domain.ErrNavigationLocked)

	// the period did not move
	assert.Equal(t, domain.Period{Month: 2, Year: 2025}, s.Period())

	s.Unlock()
	_, err = s.Next()
	assert.NoError(t, err)
}

func TestPeriodSelector_JumpToValidation(t *testing.T) {
	s := NewPeriodSelector(domain.Period{Month: 1, Year: 2025})

	_, err := s.JumpTo(13, 2025)
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
	_, err = s.JumpTo(0, 2025)
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)

	// invalid jumps do not lock
	assert.False(t, s.Locked())
}

func TestPeriodSelector_SetFilter(t *testing.T) {
	s := NewPeriodSelector(domain.Period{Month: 1, Year: 2025})

	expense := domain.TransactionTypeExpense
	accountID := int64(4)

	f := s.SetFilter(domain.FilterPatch{Type: &expense})
	require.NotNil(t, f.Type)
	assert.Equal(t, expense, *f.Type)
	assert.Nil(t, f.AccountID)

	f = s.SetFilter(domain.FilterPatch{AccountID: &accountID})
	require.NotNil(t, f.Type) // partial update keeps the other field
	require.NotNil(t, f.AccountID)
	assert.Equal(t, "expense/4", f.Key())

	f = s.SetFilter(domain.FilterPatch{ClearType: true, ClearAccount: true})
	assert.Nil(t, f.Type)
	assert.Nil(t, f.AccountID)
	assert.Equal(t, "*/*", f.Key())
}

func TestPeriodSelector_FiltersUnaffectedByLock(t *testing.T) {
	s := NewPeriodSelector(domain.Period{Month: 1, Year: 2025})
	_, err := s.Next()
	require.NoError(t, err)

	income := domain.TransactionTypeIncome
	f := s.SetFilter(domain.FilterPatch{Type: &income})
	require.NotNil(t, f.Type)
}
