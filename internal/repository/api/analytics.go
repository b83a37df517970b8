package api

import (
	"context"

	"github.com/hanifw/kantong-sync/internal/domain"
)

// AnalyticsRepository implements domain.AnalyticsAPI.
type AnalyticsRepository struct {
	client *Client
}

// NewAnalyticsRepository creates a new AnalyticsRepository
func NewAnalyticsRepository(client *Client) *AnalyticsRepository {
	return &AnalyticsRepository{client: client}
}

var _ domain.AnalyticsAPI = (*AnalyticsRepository)(nil)

// Summary fetches the period-scoped aggregate: monthly totals, budget rows
// and expenses grouped by category.
func (r *AnalyticsRepository) Summary(ctx context.Context, p domain.Period, f domain.TransactionFilters) (*domain.AnalyticsSnapshot, error) {
	var out domain.AnalyticsSnapshot
	if err := r.client.get(ctx, "/analytics/summary", periodQuery(p, f), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
