package service

import (
	"context"
	"strings"

	"github.com/hanifw/kantong-sync/internal/domain"
)

// CategoryService handles category mutations. The category type is immutable
// after creation; updates can only rename or restyle.
type CategoryService struct {
	api      domain.CategoryAPI
	notifier MutationNotifier
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(api domain.CategoryAPI, notifier MutationNotifier) *CategoryService {
	return &CategoryService{api: api, notifier: notifier}
}

// Create validates and creates a category. Editing categories does not stale
// the transaction list, only the category snapshot and the aggregate.
func (s *CategoryService) Create(ctx context.Context, in *domain.NewCategory) (*domain.Category, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrNameRequired
	}
	if in.Type != domain.CategoryTypeIncome && in.Type != domain.CategoryTypeExpense {
		return nil, domain.ErrInvalidType
	}

	c, err := s.api.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	return c, s.notifier.NotifyMutation(ctx, []domain.ResourceKind{domain.ResourceCategories})
}

// Update renames or restyles a category.
func (s *CategoryService) Update(ctx context.Context, id int64, in *domain.CategoryUpdate) (*domain.Category, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, domain.ErrNameRequired
	}

	c, err := s.api.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	return c, s.notifier.NotifyMutation(ctx, []domain.ResourceKind{domain.ResourceCategories})
}
