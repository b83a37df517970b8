// Package state holds the two leaf components of the reconciliation core: the
// resource cache (last-fetched snapshot per resource kind) and the period
// selector. Neither talks to the network.
package state

import (
	"sync"

	"github.com/hanifw/kantong-sync/internal/domain"
)

// Inputs is one consistent copy of every cached snapshot, taken atomically so
// a reconciliation pass never observes a half-updated cache.
type Inputs struct {
	Accounts     []*domain.Account
	Categories   []*domain.Category
	Analytics    *domain.AnalyticsSnapshot
	Transactions []*domain.Transaction
	Goals        []*domain.SavingsGoal
}

// ResourceCache keeps the most recent snapshot per resource kind plus a stale
// marker. Period-scoped snapshots remember the period/filter key they were
// fetched for; only one snapshot per kind is retained. Snapshots are replaced
// whole, never mutated in place.
//
// It is safe for concurrent use.
type ResourceCache struct {
	mu sync.RWMutex

	accounts      []*domain.Account
	hasAccounts   bool
	categories    []*domain.Category
	hasCategories bool
	goals         []*domain.SavingsGoal
	hasGoals      bool

	analytics       *domain.AnalyticsSnapshot
	analyticsKey    string
	transactions    []*domain.Transaction
	transactionsKey string

	stale map[domain.ResourceKind]bool
}

// NewResourceCache returns an empty cache with every kind marked stale.
func NewResourceCache() *ResourceCache {
	stale := make(map[domain.ResourceKind]bool, len(domain.AllResourceKinds))
	for _, k := range domain.AllResourceKinds {
		stale[k] = true
	}
	return &ResourceCache{stale: stale}
}

// Accounts returns the cached account snapshot, if present.
func (c *ResourceCache) Accounts() ([]*domain.Account, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accounts, c.hasAccounts
}

// SetAccounts replaces the account snapshot and clears its stale marker.
func (c *ResourceCache) SetAccounts(accounts []*domain.Account) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accounts = accounts
	c.hasAccounts = true
	c.stale[domain.ResourceAccounts] = false
}

// Categories returns the cached category snapshot, if present.
func (c *ResourceCache) Categories() ([]*domain.Category, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.categories, c.hasCategories
}

// SetCategories replaces the category snapshot and clears its stale marker.
func (c *ResourceCache) SetCategories(categories []*domain.Category) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.categories = categories
	c.hasCategories = true
	c.stale[domain.ResourceCategories] = false
}

// Goals returns the cached savings goal snapshot, if present.
func (c *ResourceCache) Goals() ([]*domain.SavingsGoal, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.goals, c.hasGoals
}

// SetGoals replaces the savings goal snapshot and clears its stale marker.
func (c *ResourceCache) SetGoals(goals []*domain.SavingsGoal) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.goals = goals
	c.hasGoals = true
	c.stale[domain.ResourceSavings] = false
}

// Analytics returns the cached analytics snapshot and the period/filter key it
// was fetched for.
func (c *ResourceCache) Analytics() (*domain.AnalyticsSnapshot, string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.analytics, c.analyticsKey, c.analytics != nil
}

// SetAnalytics replaces the analytics snapshot and clears its stale marker.
func (c *ResourceCache) SetAnalytics(snap *domain.AnalyticsSnapshot, key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.analytics = snap
	c.analyticsKey = key
	c.stale[domain.ResourceAnalytics] = false
}

// Transactions returns the cached transaction snapshot and its key.
func (c *ResourceCache) Transactions() ([]*domain.Transaction, string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.transactions, c.transactionsKey, c.transactionsKey != ""
}

// SetTransactions replaces the transaction snapshot and clears its stale marker.
func (c *ResourceCache) SetTransactions(txs []*domain.Transaction, key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.transactions = txs
	c.transactionsKey = key
	c.stale[domain.ResourceTransactions] = false
}

// MarkStale flags a kind as needing a refetch.
func (c *ResourceCache) MarkStale(kinds ...domain.ResourceKind) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range kinds {
		c.stale[k] = true
	}
}

// MarkPeriodScopedStale flags every period-scoped kind; called on period
// navigation since only one snapshot per kind is kept.
func (c *ResourceCache) MarkPeriodScopedStale() {
	c.MarkStale(domain.PeriodScopedKinds...)
}

// IsStale reports whether a kind needs a refetch.
func (c *ResourceCache) IsStale(kind domain.ResourceKind) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stale[kind]
}

// Inputs takes one atomic copy of everything for a reconciliation pass.
func (c *ResourceCache) Inputs() Inputs {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Inputs{
		Accounts:     c.accounts,
		Categories:   c.categories,
		Analytics:    c.analytics,
		Transactions: c.transactions,
		Goals:        c.goals,
	}
}
