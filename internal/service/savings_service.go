package service

import (
	"context"
	"strings"
	"time"

	"github.com/hanifw/kantong-sync/internal/domain"
	"github.com/hanifw/kantong-sync/internal/util"
)

// SavingsService handles savings goal mutations. Funding a goal is an expense
// transaction on the server side, so deposits also stale the transaction and
// account snapshots.
type SavingsService struct {
	api      domain.SavingsAPI
	notifier MutationNotifier
	now      func() time.Time
}

// NewSavingsService creates a new SavingsService
func NewSavingsService(api domain.SavingsAPI, notifier MutationNotifier) *SavingsService {
	return &SavingsService{api: api, notifier: notifier, now: time.Now}
}

// Create validates and creates a savings goal. The target date, when present,
// must not be in the past (day granularity).
func (s *SavingsService) Create(ctx context.Context, in *domain.NewSavingsGoal) (*domain.SavingsGoal, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrNameRequired
	}
	if !in.TargetAmount.IsPositive() {
		return nil, domain.ErrAmountNotPositive
	}
	if in.TargetDate != nil && util.DaysUntil(s.now(), *in.TargetDate) < 0 {
		return nil, domain.ErrTargetDatePast
	}

	g, err := s.api.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	return g, s.notifier.NotifyMutation(ctx, []domain.ResourceKind{domain.ResourceSavings})
}

// AddFunds deposits into a goal from a source account.
func (s *SavingsService) AddFunds(ctx context.Context, in *domain.SavingsDeposit) error {
	if in.GoalID <= 0 {
		return domain.ErrInvalidInput
	}
	if in.AccountID <= 0 {
		return domain.ErrAccountRequired
	}
	if !in.Amount.IsPositive() {
		return domain.ErrAmountNotPositive
	}

	if err := s.api.AddFunds(ctx, in); err != nil {
		return err
	}
	return s.notifier.NotifyMutation(ctx, []domain.ResourceKind{
		domain.ResourceSavings, domain.ResourceAccounts, domain.ResourceTransactions,
	})
}

// Delete removes a goal. Recorded contributions are not reversed here; that
// is the remote API's call.
func (s *SavingsService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrInvalidInput
	}
	if err := s.api.Delete(ctx, id); err != nil {
		return err
	}
	return s.notifier.NotifyMutation(ctx, []domain.ResourceKind{domain.ResourceSavings})
}
