package service

import (
	"context"
	"sync"
	"time"

	"github.com/hanifw/kantong-sync/internal/domain"
	"github.com/hanifw/kantong-sync/internal/state"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Status is the orchestrator's refresh state exposed to the UI. Loading is
// the first population (the UI shows a skeleton), refetching is every
// subsequent cycle (the UI may keep showing the previous data).
type Status string

const (
	StatusIdle       Status = "idle"
	StatusLoading    Status = "loading"
	StatusRefetching Status = "refetching"
)

// NavOp names a period navigation operation.
type NavOp string

const (
	NavNext     NavOp = "next"
	NavPrevious NavOp = "previous"
	NavJump     NavOp = "jump"
)

// Publisher receives derived-state updates after every applied cycle.
type Publisher interface {
	ViewUpdated(vm *domain.ViewModel)
	StatusChanged(s Status)
}

// NoOpPublisher discards updates.
type NoOpPublisher struct{}

func (NoOpPublisher) ViewUpdated(*domain.ViewModel) {}
func (NoOpPublisher) StatusChanged(Status)          {}

// Orchestrator coordinates which resources are (re)fetched when the period
// changes or a mutation succeeds. Each refresh cycle is tagged with a
// monotonically increasing sequence and the period/filter key it was issued
// for; a cycle's results are applied atomically, and only if no later cycle
// has been applied and the selection is still the one the cycle was issued
// for. There is no cancellation of in-flight fetches: stale results are
// discarded silently instead.
type Orchestrator struct {
	cache    *state.ResourceCache
	selector *state.PeriodSelector

	accounts     domain.AccountAPI
	categories   domain.CategoryAPI
	analytics    domain.AnalyticsAPI
	transactions domain.TransactionAPI
	savings      domain.SavingsAPI

	publisher Publisher
	navHold   time.Duration
	now       func() time.Time

	flight singleflight.Group

	mu         sync.Mutex
	status     Status
	lastErr    error
	seq        uint64
	appliedSeq uint64
	loaded     bool
	view       *domain.ViewModel
}

// OrchestratorConfig wires an Orchestrator.
type OrchestratorConfig struct {
	Cache        *state.ResourceCache
	Selector     *state.PeriodSelector
	Accounts     domain.AccountAPI
	Categories   domain.CategoryAPI
	Analytics    domain.AnalyticsAPI
	Transactions domain.TransactionAPI
	Savings      domain.SavingsAPI
	Publisher    Publisher
	// NavHold is the minimum time the navigation lock is held, covering the
	// UI transition animation. Zero disables the hold.
	NavHold time.Duration
	// Now overrides the clock in tests.
	Now func() time.Time
}

// NewOrchestrator creates an idle orchestrator with an empty view model.
func NewOrchestrator(cfg OrchestratorConfig) *Orchestrator {
	if cfg.Publisher == nil {
		cfg.Publisher = NoOpPublisher{}
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Orchestrator{
		cache:        cfg.Cache,
		selector:     cfg.Selector,
		accounts:     cfg.Accounts,
		categories:   cfg.Categories,
		analytics:    cfg.Analytics,
		transactions: cfg.Transactions,
		savings:      cfg.Savings,
		publisher:    cfg.Publisher,
		navHold:      cfg.NavHold,
		now:          cfg.Now,
		status:       StatusIdle,
		view:         domain.EmptyViewModel(cfg.Selector.Period(), cfg.Now()),
	}
}

// View returns the most recently applied view model.
func (o *Orchestrator) View() *domain.ViewModel {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.view
}

// Status returns the refresh state and the error retained from the last
// failed cycle, if any.
func (o *Orchestrator) Status() (Status, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.status, o.lastErr
}

// NavigationLocked reports whether a period transition is in progress.
func (o *Orchestrator) NavigationLocked() bool {
	return o.selector.Locked()
}

// Start performs the initial load: every resource kind in parallel, then one
// reconciliation pass.
func (o *Orchestrator) Start(ctx context.Context) error {
	return o.runCycle(ctx, domain.AllResourceKinds)
}

// Refresh re-issues the period-scoped fetches for the current selection.
// Accounts, categories and savings goals are not period-scoped and are left
// alone unless a mutation names them.
func (o *Orchestrator) Refresh(ctx context.Context) error {
	return o.runCycle(ctx, domain.PeriodScopedKinds)
}

// ChangePeriod navigates and refetches the period-scoped kinds. While the
// transition (fetch plus the configured hold) is in progress, further
// navigation is rejected with domain.ErrNavigationLocked.
func (o *Orchestrator) ChangePeriod(ctx context.Context, op NavOp, month, year int) error {
	var (
		p   domain.Period
		err error
	)
	switch op {
	case NavNext:
		p, err = o.selector.Next()
	case NavPrevious:
		p, err = o.selector.Previous()
	case NavJump:
		p, err = o.selector.JumpTo(month, year)
	default:
		return domain.ErrInvalidInput
	}
	if err != nil {
		return err
	}

	started := time.Now()
	o.cache.MarkPeriodScopedStale()
	log.Debug().Str("period", p.Key()).Str("op", string(op)).Msg("period transition started")

	cycleErr := o.runCycle(ctx, domain.PeriodScopedKinds)

	if remaining := o.navHold - time.Since(started); remaining > 0 {
		time.Sleep(remaining)
	}
	o.selector.Unlock()
	return cycleErr
}

// SetFilter applies a partial filter update and refetches the kinds the
// filters feed into.
func (o *Orchestrator) SetFilter(ctx context.Context, patch domain.FilterPatch) error {
	o.selector.SetFilter(patch)
	o.cache.MarkPeriodScopedStale()
	return o.runCycle(ctx, domain.PeriodScopedKinds)
}

// NotifyMutation refetches exactly the kinds the caller marked stale, plus
// the period-scoped analytics aggregate, which almost every mutation affects.
func (o *Orchestrator) NotifyMutation(ctx context.Context, kinds []domain.ResourceKind) error {
	seen := make(map[domain.ResourceKind]bool, len(kinds)+1)
	refetch := make([]domain.ResourceKind, 0, len(kinds)+1)
	for _, k := range kinds {
		if !k.Known() {
			return domain.ErrInvalidInput
		}
		if !seen[k] {
			seen[k] = true
			refetch = append(refetch, k)
		}
	}
	if !seen[domain.ResourceAnalytics] {
		refetch = append(refetch, domain.ResourceAnalytics)
	}
	o.cache.MarkStale(refetch...)
	return o.runCycle(ctx, refetch)
}

// cycleResults buffers fetched snapshots until the whole cycle resolves, so
// nothing partial is ever applied.
type cycleResults struct {
	mu           sync.Mutex
	accounts     []*domain.Account
	hasAccounts  bool
	categories   []*domain.Category
	hasCats      bool
	analytics    *domain.AnalyticsSnapshot
	transactions []*domain.Transaction
	hasTxs       bool
	goals        []*domain.SavingsGoal
	hasGoals     bool
}

func (o *Orchestrator) runCycle(ctx context.Context, kinds []domain.ResourceKind) error {
	o.mu.Lock()
	o.seq++
	seq := o.seq
	if o.loaded {
		o.status = StatusRefetching
	} else {
		o.status = StatusLoading
	}
	status := o.status
	o.mu.Unlock()

	p := o.selector.Period()
	f := o.selector.Filters()
	key := p.Key() + "|" + f.Key()
	o.publisher.StatusChanged(status)

	results := &cycleResults{}
	g, gctx := errgroup.WithContext(ctx)
	for _, kind := range kinds {
		kind := kind
		g.Go(func() error {
			return o.fetch(gctx, kind, p, f, results)
		})
	}

	if err := g.Wait(); err != nil {
		// the cycle aborts as a whole: none of the resolved partials are
		// applied, the previous view model is retained
		o.mu.Lock()
		o.status = StatusIdle
		o.lastErr = err
		o.mu.Unlock()
		o.publisher.StatusChanged(StatusIdle)
		log.Warn().Err(err).Uint64("cycle", seq).Str("key", key).Msg("refresh cycle aborted")
		return err
	}

	o.mu.Lock()
	current := o.selector.Period().Key() + "|" + o.selector.Filters().Key()
	if seq <= o.appliedSeq || current != key {
		// a later cycle already applied, or the selection moved on while we
		// were in flight; discard silently
		o.status = StatusIdle
		o.mu.Unlock()
		o.publisher.StatusChanged(StatusIdle)
		log.Debug().Uint64("cycle", seq).Str("issued_for", key).Str("current", current).Msg("stale cycle discarded")
		return nil
	}
	o.appliedSeq = seq

	results.mu.Lock()
	if results.hasAccounts {
		o.cache.SetAccounts(results.accounts)
	}
	if results.hasCats {
		o.cache.SetCategories(results.categories)
	}
	if results.analytics != nil {
		o.cache.SetAnalytics(results.analytics, key)
	}
	if results.hasTxs {
		o.cache.SetTransactions(results.transactions, key)
	}
	if results.hasGoals {
		o.cache.SetGoals(results.goals)
	}
	results.mu.Unlock()

	o.loaded = true
	o.lastErr = nil
	vm := Reconcile(InputsFor(o.cache.Inputs(), p, o.now()))
	o.view = vm
	o.status = StatusIdle
	o.mu.Unlock()

	o.publisher.ViewUpdated(vm)
	o.publisher.StatusChanged(StatusIdle)
	log.Debug().Uint64("cycle", seq).Str("key", key).Int("kinds", len(kinds)).Msg("refresh cycle applied")
	return nil
}

// fetch resolves one resource kind, coalescing concurrent requests for the
// same kind and selection onto a single underlying call.
func (o *Orchestrator) fetch(ctx context.Context, kind domain.ResourceKind, p domain.Period, f domain.TransactionFilters, results *cycleResults) error {
	flightKey := string(kind)
	if kind.PeriodScoped() {
		flightKey += ":" + p.Key() + ":" + f.Key()
	}

	v, err, _ := o.flight.Do(flightKey, func() (interface{}, error) {
		switch kind {
		case domain.ResourceAccounts:
			return o.accounts.List(ctx)
		case domain.ResourceCategories:
			return o.categories.List(ctx)
		case domain.ResourceAnalytics:
			return o.analytics.Summary(ctx, p, f)
		case domain.ResourceTransactions:
			return o.transactions.List(ctx, p, f)
		case domain.ResourceSavings:
			return o.savings.List(ctx)
		}
		return nil, domain.ErrInvalidInput
	})
	if err != nil {
		return err
	}

	results.mu.Lock()
	defer results.mu.Unlock()
	switch kind {
	case domain.ResourceAccounts:
		results.accounts = v.([]*domain.Account)
		results.hasAccounts = true
	case domain.ResourceCategories:
		results.categories = v.([]*domain.Category)
		results.hasCats = true
	case domain.ResourceAnalytics:
		results.analytics = v.(*domain.AnalyticsSnapshot)
	case domain.ResourceTransactions:
		results.transactions = v.([]*domain.Transaction)
		results.hasTxs = true
	case domain.ResourceSavings:
		results.goals = v.([]*domain.SavingsGoal)
		results.hasGoals = true
	}
	return nil
}
