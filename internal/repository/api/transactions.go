package api

import (
	"context"
	"fmt"

	"github.com/hanifw/kantong-sync/internal/domain"
)

// TransactionRepository implements domain.TransactionAPI.
type TransactionRepository struct {
	client *Client
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(client *Client) *TransactionRepository {
	return &TransactionRepository{client: client}
}

var _ domain.TransactionAPI = (*TransactionRepository)(nil)

// List fetches the transaction list for a period, narrowed by the active
// filters.
func (r *TransactionRepository) List(ctx context.Context, p domain.Period, f domain.TransactionFilters) ([]*domain.Transaction, error) {
	var out []*domain.Transaction
	if err := r.client.get(ctx, "/transactions", periodQuery(p, f), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create records a transaction.
func (r *TransactionRepository) Create(ctx context.Context, in *domain.NewTransaction) (*domain.Transaction, error) {
	var out domain.Transaction
	if err := r.client.post(ctx, "/transactions", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateTransfer records the linked expense/income pair server-side.
func (r *TransactionRepository) CreateTransfer(ctx context.Context, in *domain.NewTransfer) error {
	return r.client.post(ctx, "/transactions/transfer", in, nil)
}

// Delete removes a transaction.
func (r *TransactionRepository) Delete(ctx context.Context, id int64) error {
	return r.client.delete(ctx, fmt.Sprintf("/transactions/%d", id))
}
