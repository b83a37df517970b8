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

func TestSavingsService_Create(t *testing.T) {
	past := time.Date(2025, 3, 9, 23, 0, 0, 0, time.UTC)
	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	future := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		in      *domain.NewSavingsGoal
		wantErr error
	}{
		{
			name: "valid with future date",
			in:   &domain.NewSavingsGoal{Name: "Laptop", TargetAmount: decimal.NewFromInt(15000000), TargetDate: &future},
		},
		{
			name: "valid without date",
			in:   &domain.NewSavingsGoal{Name: "Rainy day", TargetAmount: decimal.NewFromInt(1000000)},
		},
		{
			name: "target date today is allowed",
			in:   &domain.NewSavingsGoal{Name: "Due now", TargetAmount: decimal.NewFromInt(100), TargetDate: &today},
		},
		{
			name:    "blank name",
			in:      &domain.NewSavingsGoal{Name: "   ", TargetAmount: decimal.NewFromInt(100)},
			wantErr: domain.ErrNameRequired,
		},
		{
			name:    "zero target",
			in:      &domain.NewSavingsGoal{Name: "Laptop"},
			wantErr: domain.ErrAmountNotPositive,
		},
		{
			name:    "target date in the past",
			in:      &domain.NewSavingsGoal{Name: "Laptop", TargetAmount: decimal.NewFromInt(100), TargetDate: &past},
			wantErr: domain.ErrTargetDatePast,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := testutil.NewMockSavingsAPI()
			notifier := &testutil.RecordingNotifier{}
			svc := NewSavingsService(api, notifier)
			svc.now = func() time.Time { return testNow }

			g, err := svc.Create(context.Background(), tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, api.Created)
				assert.Zero(t, notifier.Len())
				return
			}
			require.NoError(t, err)
			require.NotNil(t, g)
			require.Equal(t, 1, notifier.Len())
			assert.Equal(t, []domain.ResourceKind{domain.ResourceSavings}, notifier.Calls[0])
		})
	}
}

func TestSavingsService_AddFunds(t *testing.T) {
	tests := []struct {
		name    string
		in      *domain.SavingsDeposit
		wantErr error
	}{
		{
			name: "valid deposit",
			in:   &domain.SavingsDeposit{GoalID: 1, AccountID: 2, Amount: decimal.NewFromInt(500000)},
		},
		{
			name:    "missing goal",
			in:      &domain.SavingsDeposit{AccountID: 2, Amount: decimal.NewFromInt(100)},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "missing account",
			in:      &domain.SavingsDeposit{GoalID: 1, Amount: decimal.NewFromInt(100)},
			wantErr: domain.ErrAccountRequired,
		},
		{
			name:    "zero amount",
			in:      &domain.SavingsDeposit{GoalID: 1, AccountID: 2},
			wantErr: domain.ErrAmountNotPositive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := testutil.NewMockSavingsAPI()
			notifier := &testutil.RecordingNotifier{}
			svc := NewSavingsService(api, notifier)

			err := svc.AddFunds(context.Background(), tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, api.Deposits)
				return
			}
			require.NoError(t, err)
			require.Len(t, api.Deposits, 1)
			require.Equal(t, 1, notifier.Len())
			// a deposit is an expense transaction server-side
			assert.ElementsMatch(t,
				[]domain.ResourceKind{domain.ResourceSavings, domain.ResourceAccounts, domain.ResourceTransactions},
				notifier.Calls[0])
		})
	}
}

func TestSavingsService_Delete(t *testing.T) {
	api := testutil.NewMockSavingsAPI()
	notifier := &testutil.RecordingNotifier{}
	svc := NewSavingsService(api, notifier)

	assert.ErrorIs(t, svc.Delete(context.Background(), -1), domain.ErrInvalidInput)

	require.NoError(t, svc.Delete(context.Background(), 3))
	assert.Equal(t, []int64{3}, api.Deleted)
	require.Equal(t, 1, notifier.Len())
	assert.Equal(t, []domain.ResourceKind{domain.ResourceSavings}, notifier.Calls[0])
}
