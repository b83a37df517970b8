// Package testutil provides handwritten mocks of the resource API interfaces.
// Fetch mocks support per-key error injection, call counting and gates
// (channels a test closes to let a blocked fetch resolve), which is how the
// orchestrator tests drive overlapping refresh cycles deterministically.
package testutil

import (
	"context"
	"sync"

	"github.com/hanifw/kantong-sync/internal/domain"
)

// fetchControl is shared bookkeeping for the fetch-side mocks.
type fetchControl struct {
	mu    sync.Mutex
	calls map[string]int
	errs  map[string]error
	gates map[string]chan struct{}
}

func newFetchControl() fetchControl {
	return fetchControl{
		calls: make(map[string]int),
		errs:  make(map[string]error),
		gates: make(map[string]chan struct{}),
	}
}

// begin records a call and returns the configured error and gate, if any.
func (c *fetchControl) begin(key string) (error, chan struct{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls[key]++
	return c.errs[key], c.gates[key]
}

// Calls returns how many times the given key was fetched.
func (c *fetchControl) Calls(key string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[key]
}

// FailWith makes fetches for key return err.
func (c *fetchControl) FailWith(key string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errs[key] = err
}

// Gate blocks fetches for key until the returned channel is closed.
func (c *fetchControl) Gate(key string) chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	ch := make(chan struct{})
	c.gates[key] = ch
	return ch
}

func wait(ctx context.Context, gate chan struct{}) error {
	if gate == nil {
		return nil
	}
	select {
	case <-gate:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// MockAccountAPI is an in-memory domain.AccountAPI.
type MockAccountAPI struct {
	fetchControl
	mu       sync.Mutex
	Accounts []*domain.Account
	Created  []*domain.NewAccount
	Deleted  []int64
	nextID   int64
}

// NewMockAccountAPI creates a new MockAccountAPI
func NewMockAccountAPI() *MockAccountAPI {
	return &MockAccountAPI{fetchControl: newFetchControl(), nextID: 1}
}

func (m *MockAccountAPI) List(ctx context.Context) ([]*domain.Account, error) {
	err, gate := m.begin("list")
	if werr := wait(ctx, gate); werr != nil {
		return nil, werr
	}
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*domain.Account(nil), m.Accounts...), nil
}

func (m *MockAccountAPI) Create(ctx context.Context, in *domain.NewAccount) (*domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Created = append(m.Created, in)
	a := &domain.Account{ID: m.nextID, Name: in.Name, Type: in.Type, InitialBalance: in.InitialBalance, CurrentBalance: in.InitialBalance}
	m.nextID++
	m.Accounts = append(m.Accounts, a)
	return a, nil
}

func (m *MockAccountAPI) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Deleted = append(m.Deleted, id)
	return nil
}

// MockCategoryAPI is an in-memory domain.CategoryAPI.
type MockCategoryAPI struct {
	fetchControl
	mu         sync.Mutex
	Categories []*domain.Category
	Created    []*domain.NewCategory
	Updated    map[int64]*domain.CategoryUpdate
	nextID     int64
}

// NewMockCategoryAPI creates a new MockCategoryAPI
func NewMockCategoryAPI() *MockCategoryAPI {
	return &MockCategoryAPI{fetchControl: newFetchControl(), Updated: make(map[int64]*domain.CategoryUpdate), nextID: 1}
}

func (m *MockCategoryAPI) List(ctx context.Context) ([]*domain.Category, error) {
	err, gate := m.begin("list")
	if werr := wait(ctx, gate); werr != nil {
		return nil, werr
	}
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*domain.Category(nil), m.Categories...), nil
}

func (m *MockCategoryAPI) Create(ctx context.Context, in *domain.NewCategory) (*domain.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Created = append(m.Created, in)
	c := &domain.Category{ID: m.nextID, Name: in.Name, Type: in.Type, Icon: in.Icon, Color: in.Color, Owner: domain.CategoryOwnerUser}
	m.nextID++
	m.Categories = append(m.Categories, c)
	return c, nil
}

func (m *MockCategoryAPI) Update(ctx context.Context, id int64, in *domain.CategoryUpdate) (*domain.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Updated[id] = in
	for _, c := range m.Categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domain.ErrNotFound
}

// MockAnalyticsAPI serves analytics snapshots keyed by period key.
type MockAnalyticsAPI struct {
	fetchControl
	mu        sync.Mutex
	Snapshots map[string]*domain.AnalyticsSnapshot
}

// NewMockAnalyticsAPI creates a new MockAnalyticsAPI
func NewMockAnalyticsAPI() *MockAnalyticsAPI {
	return &MockAnalyticsAPI{fetchControl: newFetchControl(), Snapshots: make(map[string]*domain.AnalyticsSnapshot)}
}

func (m *MockAnalyticsAPI) Summary(ctx context.Context, p domain.Period, f domain.TransactionFilters) (*domain.AnalyticsSnapshot, error) {
	err, gate := m.begin(p.Key())
	if werr := wait(ctx, gate); werr != nil {
		return nil, werr
	}
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if snap, ok := m.Snapshots[p.Key()]; ok {
		return snap, nil
	}
	return &domain.AnalyticsSnapshot{}, nil
}

// MockTransactionAPI serves transaction lists keyed by period key.
type MockTransactionAPI struct {
	fetchControl
	mu        sync.Mutex
	ByPeriod  map[string][]*domain.Transaction
	Created   []*domain.NewTransaction
	Transfers []*domain.NewTransfer
	Deleted   []int64
	CreateErr error
	nextID    int64
}

// NewMockTransactionAPI creates a new MockTransactionAPI
func NewMockTransactionAPI() *MockTransactionAPI {
	return &MockTransactionAPI{fetchControl: newFetchControl(), ByPeriod: make(map[string][]*domain.Transaction), nextID: 1}
}

func (m *MockTransactionAPI) List(ctx context.Context, p domain.Period, f domain.TransactionFilters) ([]*domain.Transaction, error) {
	err, gate := m.begin(p.Key())
	if werr := wait(ctx, gate); werr != nil {
		return nil, werr
	}
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*domain.Transaction(nil), m.ByPeriod[p.Key()]...), nil
}

func (m *MockTransactionAPI) Create(ctx context.Context, in *domain.NewTransaction) (*domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	m.Created = append(m.Created, in)
	tx := &domain.Transaction{ID: m.nextID, Amount: in.Amount, Type: in.Type, Category: in.Category, Date: in.Date, AccountID: in.AccountID, Description: in.Description}
	m.nextID++
	return tx, nil
}

func (m *MockTransactionAPI) CreateTransfer(ctx context.Context, in *domain.NewTransfer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Transfers = append(m.Transfers, in)
	return nil
}

func (m *MockTransactionAPI) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Deleted = append(m.Deleted, id)
	return nil
}

// MockBudgetAPI is an in-memory domain.BudgetAPI.
type MockBudgetAPI struct {
	mu        sync.Mutex
	ByPeriod  map[string][]*domain.Budget
	Created   []*domain.NewBudget
	Deleted   []int64
	CreateErr error
	nextID    int64
}

// NewMockBudgetAPI creates a new MockBudgetAPI
func NewMockBudgetAPI() *MockBudgetAPI {
	return &MockBudgetAPI{ByPeriod: make(map[string][]*domain.Budget), nextID: 1}
}

func (m *MockBudgetAPI) List(ctx context.Context, p domain.Period) ([]*domain.Budget, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*domain.Budget(nil), m.ByPeriod[p.Key()]...), nil
}

func (m *MockBudgetAPI) Create(ctx context.Context, in *domain.NewBudget) (*domain.Budget, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	m.Created = append(m.Created, in)
	b := &domain.Budget{ID: m.nextID, CategoryName: in.CategoryName, Amount: in.Amount, Month: in.Month, Year: in.Year}
	m.nextID++
	key := domain.Period{Month: in.Month, Year: in.Year}.Key()
	m.ByPeriod[key] = append(m.ByPeriod[key], b)
	return b, nil
}

func (m *MockBudgetAPI) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Deleted = append(m.Deleted, id)
	return nil
}

// MockSavingsAPI is an in-memory domain.SavingsAPI.
type MockSavingsAPI struct {
	fetchControl
	mu       sync.Mutex
	Goals    []*domain.SavingsGoal
	Created  []*domain.NewSavingsGoal
	Deposits []*domain.SavingsDeposit
	Deleted  []int64
	nextID   int64
}

// NewMockSavingsAPI creates a new MockSavingsAPI
func NewMockSavingsAPI() *MockSavingsAPI {
	return &MockSavingsAPI{fetchControl: newFetchControl(), nextID: 1}
}

func (m *MockSavingsAPI) List(ctx context.Context) ([]*domain.SavingsGoal, error) {
	err, gate := m.begin("list")
	if werr := wait(ctx, gate); werr != nil {
		return nil, werr
	}
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*domain.SavingsGoal(nil), m.Goals...), nil
}

func (m *MockSavingsAPI) Create(ctx context.Context, in *domain.NewSavingsGoal) (*domain.SavingsGoal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Created = append(m.Created, in)
	g := &domain.SavingsGoal{ID: m.nextID, Name: in.Name, TargetAmount: in.TargetAmount, TargetDate: in.TargetDate}
	m.nextID++
	m.Goals = append(m.Goals, g)
	return g, nil
}

func (m *MockSavingsAPI) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Deleted = append(m.Deleted, id)
	return nil
}

func (m *MockSavingsAPI) AddFunds(ctx context.Context, in *domain.SavingsDeposit) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Deposits = append(m.Deposits, in)
	return nil
}

// RecordingNotifier records NotifyMutation calls for mutation service tests.
type RecordingNotifier struct {
	mu    sync.Mutex
	Calls [][]domain.ResourceKind
	Err   error
}

func (n *RecordingNotifier) NotifyMutation(ctx context.Context, kinds []domain.ResourceKind) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Calls = append(n.Calls, kinds)
	return n.Err
}

// Len returns how many notifications were recorded.
func (n *RecordingNotifier) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.Calls)
}
