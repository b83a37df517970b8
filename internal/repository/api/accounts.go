package api

import (
	"context"
	"fmt"

	"github.com/hanifw/kantong-sync/internal/domain"
)

// AccountRepository implements domain.AccountAPI.
type AccountRepository struct {
	client *Client
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(client *Client) *AccountRepository {
	return &AccountRepository{client: client}
}

var _ domain.AccountAPI = (*AccountRepository)(nil)

// List fetches every account with its authoritative balances.
func (r *AccountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	var out []*domain.Account
	if err := r.client.get(ctx, "/accounts", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create adds an account.
func (r *AccountRepository) Create(ctx context.Context, in *domain.NewAccount) (*domain.Account, error) {
	var out domain.Account
	if err := r.client.post(ctx, "/accounts", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes an account.
func (r *AccountRepository) Delete(ctx context.Context, id int64) error {
	return r.client.delete(ctx, fmt.Sprintf("/accounts/%d", id))
}
