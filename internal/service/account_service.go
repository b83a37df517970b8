package service

import (
	"context"
	"strings"

	"github.com/hanifw/kantong-sync/internal/domain"
)

// AccountService handles account mutations.
type AccountService struct {
	api      domain.AccountAPI
	notifier MutationNotifier
}

// NewAccountService creates a new AccountService
func NewAccountService(api domain.AccountAPI, notifier MutationNotifier) *AccountService {
	return &AccountService{api: api, notifier: notifier}
}

// Create validates and creates an account.
func (s *AccountService) Create(ctx context.Context, in *domain.NewAccount) (*domain.Account, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrNameRequired
	}

	a, err := s.api.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	return a, s.notifier.NotifyMutation(ctx, []domain.ResourceKind{domain.ResourceAccounts})
}

// Delete removes an account.
func (s *AccountService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrInvalidInput
	}
	if err := s.api.Delete(ctx, id); err != nil {
		return err
	}
	return s.notifier.NotifyMutation(ctx, []domain.ResourceKind{
		domain.ResourceAccounts, domain.ResourceTransactions,
	})
}
