package api

import (
	"context"
	"fmt"

	"github.com/hanifw/kantong-sync/internal/domain"
)

// SavingsRepository implements domain.SavingsAPI.
type SavingsRepository struct {
	client *Client
}

// NewSavingsRepository creates a new SavingsRepository
func NewSavingsRepository(client *Client) *SavingsRepository {
	return &SavingsRepository{client: client}
}

var _ domain.SavingsAPI = (*SavingsRepository)(nil)

// List fetches every savings goal.
func (r *SavingsRepository) List(ctx context.Context) ([]*domain.SavingsGoal, error) {
	var out []*domain.SavingsGoal
	if err := r.client.get(ctx, "/savings", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create adds a savings goal.
func (r *SavingsRepository) Create(ctx context.Context, in *domain.NewSavingsGoal) (*domain.SavingsGoal, error) {
	var out domain.SavingsGoal
	if err := r.client.post(ctx, "/savings", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a savings goal.
func (r *SavingsRepository) Delete(ctx context.Context, id int64) error {
	return r.client.delete(ctx, fmt.Sprintf("/savings/%d", id))
}

// AddFunds deposits into a goal; the server records the matching expense
// transaction.
func (r *SavingsRepository) AddFunds(ctx context.Context, in *domain.SavingsDeposit) error {
	return r.client.post(ctx, "/savings/add", in, nil)
}
