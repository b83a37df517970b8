package api

import (
	"context"
	"fmt"

	"github.com/hanifw/kantong-sync/internal/domain"
)

// CategoryRepository implements domain.CategoryAPI.
type CategoryRepository struct {
	client *Client
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(client *Client) *CategoryRepository {
	return &CategoryRepository{client: client}
}

var _ domain.CategoryAPI = (*CategoryRepository)(nil)

// List fetches user and system-default categories.
func (r *CategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	var out []*domain.Category
	if err := r.client.get(ctx, "/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create adds a category.
func (r *CategoryRepository) Create(ctx context.Context, in *domain.NewCategory) (*domain.Category, error) {
	var out domain.Category
	if err := r.client.post(ctx, "/categories", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update renames or restyles a category; the type never changes.
func (r *CategoryRepository) Update(ctx context.Context, id int64, in *domain.CategoryUpdate) (*domain.Category, error) {
	var out domain.Category
	if err := r.client.put(ctx, fmt.Sprintf("/categories/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
