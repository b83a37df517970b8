package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SavingsGoal tracks progress toward a target amount. The current amount may
// exceed the target; funding a goal is recorded server-side as an expense
// transaction from the source account.
type SavingsGoal struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	TargetDate    *time.Time      `json:"target_date,omitempty"`
}

type NewSavingsGoal struct {
	Name         string          `json:"name"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	TargetDate   *time.Time      `json:"target_date,omitempty"`
}

// SavingsDeposit funds a goal from a source account.
type SavingsDeposit struct {
	GoalID    int64           `json:"goal_id"`
	AccountID int64           `json:"account_id"`
	Amount    decimal.Decimal `json:"amount"`
}

type SavingsAPI interface {
	List(ctx context.Context) ([]*SavingsGoal, error)
	Create(ctx context.Context, in *NewSavingsGoal) (*SavingsGoal, error)
	Delete(ctx context.Context, id int64) error
	AddFunds(ctx context.Context, in *SavingsDeposit) error
}
