package state

import (
	"testing"

	"github.com/hanifw/kantong-sync/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestResourceCache_StartsStale(t *testing.T) {
	c := NewResourceCache()

	for _, k := range domain.AllResourceKinds {
		assert.True(t, c.IsStale(k), "kind %s should start stale", k)
	}

	_, ok := c.Accounts()
	assert.False(t, ok)
	_, _, ok = c.Analytics()
	assert.False(t, ok)
}

func TestResourceCache_SetClearsStale(t *testing.T) {
	c := NewResourceCache()

	c.SetAccounts([]*domain.Account{{ID: 1, Name: "Bank"}})
	assert.False(t, c.IsStale(domain.ResourceAccounts))

	accounts, ok := c.Accounts()
	assert.True(t, ok)
	assert.Len(t, accounts, 1)

	// other kinds remain stale
	assert.True(t, c.IsStale(domain.ResourceCategories))
}

func TestResourceCache_PeriodScopedKeys(t *testing.T) {
	c := NewResourceCache()

	snap := &domain.AnalyticsSnapshot{
		ExpensesByCategory: map[string]decimal.Decimal{"Food": decimal.NewFromInt(100)},
	}
	c.SetAnalytics(snap, "2025-03|*/*")

	got, key, ok := c.Analytics()
	assert.True(t, ok)
	assert.Equal(t, "2025-03|*/*", key)
	assert.Equal(t, snap, got)

	// a newer snapshot replaces the old one entirely
	c.SetAnalytics(&domain.AnalyticsSnapshot{}, "2025-04|*/*")
	_, key, _ = c.Analytics()
	assert.Equal(t, "2025-04|*/*", key)
}

func TestResourceCache_MarkPeriodScopedStale(t *testing.T) {
	c := NewResourceCache()
	c.SetAccounts(nil)
	c.SetAnalytics(&domain.AnalyticsSnapshot{}, "2025-03|*/*")
	c.SetTransactions(nil, "2025-03|*/*")

	c.MarkPeriodScopedStale()

	assert.True(t, c.IsStale(domain.ResourceAnalytics))
	assert.True(t, c.IsStale(domain.ResourceTransactions))
	assert.False(t, c.IsStale(domain.ResourceAccounts))
}

func TestResourceCache_InputsIsConsistentCopy(t *testing.T) {
	c := NewResourceCache()
	c.SetAccounts([]*domain.Account{{ID: 1}})
	c.SetGoals([]*domain.SavingsGoal{{ID: 7, Name: "Emergency"}})

	in := c.Inputs()
	assert.Len(t, in.Accounts, 1)
	assert.Len(t, in.Goals, 1)
	assert.Nil(t, in.Analytics)

	// replacing a snapshot does not mutate a previously taken Inputs copy
	c.SetAccounts([]*domain.Account{{ID: 2}, {ID: 3}})
	assert.Len(t, in.Accounts, 1)
	assert.Equal(t, int64(1), in.Accounts[0].ID)
}
