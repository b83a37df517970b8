package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/hanifw/kantong-sync/internal/domain"
)

// BudgetRepository implements domain.BudgetAPI.
type BudgetRepository struct {
	client *Client
}

// NewBudgetRepository creates a new BudgetRepository
func NewBudgetRepository(client *Client) *BudgetRepository {
	return &BudgetRepository{client: client}
}

var _ domain.BudgetAPI = (*BudgetRepository)(nil)

// List fetches the budget rows for a month.
func (r *BudgetRepository) List(ctx context.Context, p domain.Period) ([]*domain.Budget, error) {
	q := url.Values{}
	q.Set("month", fmt.Sprintf("%d", p.Month))
	q.Set("year", fmt.Sprintf("%d", p.Year))
	var out []*domain.Budget
	if err := r.client.get(ctx, "/budgets", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create upserts the budget for (category, month, year).
func (r *BudgetRepository) Create(ctx context.Context, in *domain.NewBudget) (*domain.Budget, error) {
	var out domain.Budget
	if err := r.client.post(ctx, "/budgets", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a budget row.
func (r *BudgetRepository) Delete(ctx context.Context, id int64) error {
	return r.client.delete(ctx, fmt.Sprintf("/budgets/%d", id))
}
