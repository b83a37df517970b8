package service

import (
	"context"
	"strings"

	"github.com/hanifw/kantong-sync/internal/domain"
)

// MutationNotifier is the orchestrator surface the mutation services depend
// on: after a successful remote write they report which resource kinds went
// stale.
type MutationNotifier interface {
	NotifyMutation(ctx context.Context, kinds []domain.ResourceKind) error
}

// TransactionService validates transaction entry at the edge and forwards it
// to the remote API. Validation failures never reach the orchestrator.
type TransactionService struct {
	api      domain.TransactionAPI
	notifier MutationNotifier
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(api domain.TransactionAPI, notifier MutationNotifier) *TransactionService {
	return &TransactionService{api: api, notifier: notifier}
}

// Create records a transaction and refetches what it touched: the transaction
// list and the account balances (the analytics aggregate always follows).
func (s *TransactionService) Create(ctx context.Context, in *domain.NewTransaction) (*domain.Transaction, error) {
	if !in.Amount.IsPositive() {
		return nil, domain.ErrAmountNotPositive
	}
	if in.Type != domain.TransactionTypeIncome && in.Type != domain.TransactionTypeExpense {
		return nil, domain.ErrInvalidType
	}
	if strings.TrimSpace(in.Category) == "" {
		return nil, domain.ErrCategoryRequired
	}
	if in.AccountID <= 0 {
		return nil, domain.ErrAccountRequired
	}

	tx, err := s.api.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	return tx, s.notifier.NotifyMutation(ctx, []domain.ResourceKind{
		domain.ResourceTransactions, domain.ResourceAccounts,
	})
}

// CreateTransfer records a linked expense/income pair across two accounts.
func (s *TransactionService) CreateTransfer(ctx context.Context, in *domain.NewTransfer) error {
	if !in.Amount.IsPositive() {
		return domain.ErrAmountNotPositive
	}
	if in.SourceAccountID <= 0 || in.DestinationAccountID <= 0 {
		return domain.ErrAccountRequired
	}
	if in.SourceAccountID == in.DestinationAccountID {
		return domain.ErrSameAccountTransfer
	}

	if err := s.api.CreateTransfer(ctx, in); err != nil {
		return err
	}
	return s.notifier.NotifyMutation(ctx, []domain.ResourceKind{
		domain.ResourceTransactions, domain.ResourceAccounts,
	})
}

// Delete removes a transaction. Reversing linked savings or balance effects
// is the remote API's responsibility; the client just refetches.
func (s *TransactionService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrInvalidInput
	}
	if err := s.api.Delete(ctx, id); err != nil {
		return err
	}
	return s.notifier.NotifyMutation(ctx, []domain.ResourceKind{
		domain.ResourceTransactions, domain.ResourceAccounts,
	})
}
