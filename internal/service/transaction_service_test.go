package service

import (
	"context"
	"testing"
	"time"

	"github.com/hanifw/kantong-sync/internal/domain"
	"github.com/hanifw/kantong-sync/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionService_Create(t *testing.T) {
	valid := func() *domain.NewTransaction {
		return &domain.NewTransaction{
			Amount:    decimal.NewFromInt(50000),
			Type:      domain.TransactionTypeExpense,
			Category:  "Food",
			Date:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			AccountID: 1,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*domain.NewTransaction)
		wantErr error
	}{
		{
			name:   "valid expense",
			mutate: func(*domain.NewTransaction) {},
		},
		{
			name:    "zero amount",
			mutate:  func(in *domain.NewTransaction) { in.Amount = decimal.Zero },
			wantErr: domain.ErrAmountNotPositive,
		},
		{
			name:    "negative amount",
			mutate:  func(in *domain.NewTransaction) { in.Amount = decimal.NewFromInt(-100) },
			wantErr: domain.ErrAmountNotPositive,
		},
		{
			name:    "invalid type",
			mutate:  func(in *domain.NewTransaction) { in.Type = "loan" },
			wantErr: domain.ErrInvalidType,
		},
		{
			name:    "blank category",
			mutate:  func(in *domain.NewTransaction) { in.Category = "  " },
			wantErr: domain.ErrCategoryRequired,
		},
		{
			name:    "missing account",
			mutate:  func(in *domain.NewTransaction) { in.AccountID = 0 },
			wantErr: domain.ErrAccountRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := testutil.NewMockTransactionAPI()
			notifier := &testutil.RecordingNotifier{}
			svc := NewTransactionService(api, notifier)

			in := valid()
			tt.mutate(in)
			tx, err := svc.Create(context.Background(), in)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, api.Created, "validation failures must not reach the API")
				assert.Zero(t, notifier.Len())
				return
			}
			require.NoError(t, err)
			require.NotNil(t, tx)
			require.Len(t, api.Created, 1)
			require.Equal(t, 1, notifier.Len())
			assert.ElementsMatch(t,
				[]domain.ResourceKind{domain.ResourceTransactions, domain.ResourceAccounts},
				notifier.Calls[0])
		})
	}
}

func TestTransactionService_CreateAPIFailureSkipsNotify(t *testing.T) {
	api := testutil.NewMockTransactionAPI()
	api.CreateErr = domain.ErrFetchFailed
	notifier := &testutil.RecordingNotifier{}
	svc := NewTransactionService(api, notifier)

	_, err := svc.Create(context.Background(), &domain.NewTransaction{
		Amount:    decimal.NewFromInt(100),
		Type:      domain.TransactionTypeIncome,
		Category:  "Salary",
		AccountID: 1,
	})
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
	assert.Zero(t, notifier.Len())
}

func TestTransactionService_CreateTransfer(t *testing.T) {
	tests := []struct {
		name    string
		in      *domain.NewTransfer
		wantErr error
	}{
		{
			name: "valid transfer",
			in:   &domain.NewTransfer{Amount: decimal.NewFromInt(25000), SourceAccountID: 1, DestinationAccountID: 2},
		},
		{
			name:    "zero amount",
			in:      &domain.NewTransfer{SourceAccountID: 1, DestinationAccountID: 2},
			wantErr: domain.ErrAmountNotPositive,
		},
		{
			name:    "missing destination",
			in:      &domain.NewTransfer{Amount: decimal.NewFromInt(100), SourceAccountID: 1},
			wantErr: domain.ErrAccountRequired,
		},
		{
			name:    "same account",
			in:      &domain.NewTransfer{Amount: decimal.NewFromInt(100), SourceAccountID: 1, DestinationAccountID: 1},
			wantErr: domain.ErrSameAccountTransfer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := testutil.NewMockTransactionAPI()
			notifier := &testutil.RecordingNotifier{}
			svc := NewTransactionService(api, notifier)

			err := svc.CreateTransfer(context.Background(), tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, api.Transfers)
				return
			}
			require.NoError(t, err)
			require.Len(t, api.Transfers, 1)
			require.Equal(t, 1, notifier.Len())
		})
	}
}

func TestTransactionService_Delete(t *testing.T) {
	api := testutil.NewMockTransactionAPI()
	notifier := &testutil.RecordingNotifier{}
	svc := NewTransactionService(api, notifier)

	assert.ErrorIs(t, svc.Delete(context.Background(), 0), domain.ErrInvalidInput)

	require.NoError(t, svc.Delete(context.Background(), 7))
	assert.Equal(t, []int64{7}, api.Deleted)
	require.Equal(t, 1, notifier.Len())
	assert.ElementsMatch(t,
		[]domain.ResourceKind{domain.ResourceTransactions, domain.ResourceAccounts},
		notifier.Calls[0])
}
