package service

import (
	"context"
	"strings"

	"github.com/hanifw/kantong-sync/internal/domain"
)

// BudgetService handles monthly category budget mutations. Setting an amount
// of zero is how a budget is reset.
type BudgetService struct {
	api      domain.BudgetAPI
	notifier MutationNotifier
}

// NewBudgetService creates a new BudgetService
func NewBudgetService(api domain.BudgetAPI, notifier MutationNotifier) *BudgetService {
	return &BudgetService{api: api, notifier: notifier}
}

// List returns the budget rows for a period.
func (s *BudgetService) List(ctx context.Context, p domain.Period) ([]*domain.Budget, error) {
	if !p.Valid() {
		return nil, domain.ErrInvalidPeriod
	}
	return s.api.List(ctx, p)
}

// Create upserts the budget for (category, month, year). Only the analytics
// aggregate changes: budgets do not touch accounts or the transaction list.
func (s *BudgetService) Create(ctx context.Context, in *domain.NewBudget) (*domain.Budget, error) {
	if strings.TrimSpace(in.CategoryName) == "" {
		return nil, domain.ErrCategoryRequired
	}
	if in.Amount.IsNegative() {
		return nil, domain.ErrAmountNegative
	}
	if !(domain.Period{Month: in.Month, Year: in.Year}).Valid() {
		return nil, domain.ErrInvalidPeriod
	}

	b, err := s.api.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	return b, s.notifier.NotifyMutation(ctx, []domain.ResourceKind{domain.ResourceAnalytics})
}

// Delete removes a budget row.
func (s *BudgetService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrInvalidInput
	}
	if err := s.api.Delete(ctx, id); err != nil {
		return err
	}
	return s.notifier.NotifyMutation(ctx, []domain.ResourceKind{domain.ResourceAnalytics})
}
