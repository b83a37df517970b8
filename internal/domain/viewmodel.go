package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetPocket is the derived per-category budget-vs-actual record for a
// period. Virtual pockets are synthesized for spend that has no budget row:
// they carry a zero budget, a progress pinned to 100 and a negative remaining.
type BudgetPocket struct {
	CategoryName string          `json:"category_name"`
	Budgeted     decimal.Decimal `json:"budgeted_amount"`
	Spent        decimal.Decimal `json:"spent_amount"`
	Remaining    decimal.Decimal `json:"remaining"`
	ProgressPct  float64         `json:"progress_pct"`
	Virtual      bool            `json:"is_virtual"`
}

// MonthlySummary aggregates the selected month. TotalBalance spans all
// accounts and is the only field not scoped to the period.
type MonthlySummary struct {
	TotalIncome    decimal.Decimal `json:"total_income"`
	TotalExpense   decimal.Decimal `json:"total_expense"`
	TotalSavings   decimal.Decimal `json:"total_transferred_to_savings"`
	TotalBudget    decimal.Decimal `json:"total_budget"`
	TotalSpent     decimal.Decimal `json:"total_spent"`
	TotalRemaining decimal.Decimal `json:"total_remaining"`
	TotalBalance   decimal.Decimal `json:"total_balance_across_accounts"`
}

// GoalCountdownState classifies a savings goal against its target date at day
// granularity.
type GoalCountdownState string

const (
	GoalStateNone     GoalCountdownState = "none"
	GoalStateAchieved GoalCountdownState = "achieved"
	GoalStateUpcoming GoalCountdownState = "upcoming"
	GoalStateDueToday GoalCountdownState = "due_today"
	GoalStateOverdue  GoalCountdownState = "overdue"
)

// GoalStatus pairs a savings goal with its derived progress and countdown.
// DaysRemaining is meaningful only in the upcoming state.
type GoalStatus struct {
	Goal          *SavingsGoal       `json:"goal"`
	ProgressPct   float64            `json:"progress_pct"`
	State         GoalCountdownState `json:"countdown_state"`
	DaysRemaining int                `json:"days_remaining,omitempty"`
}

// ViewModel is the derived state the UI renders. It is recomputed on every
// reconciliation pass and never mutated in place.
type ViewModel struct {
	Period      Period         `json:"period"`
	Accounts    []*Account     `json:"accounts"`
	Pockets     []BudgetPocket `json:"pockets"`
	Summary     MonthlySummary `json:"summary"`
	Goals       []GoalStatus   `json:"goals"`
	GeneratedAt time.Time      `json:"generated_at"`
}

// EmptyViewModel is what reconciliation degrades to before any data arrives.
func EmptyViewModel(p Period, now time.Time) *ViewModel {
	return &ViewModel{
		Period:      p,
		Accounts:    []*Account{},
		Pockets:     []BudgetPocket{},
		Goals:       []GoalStatus{},
		GeneratedAt: now,
	}
}
