package service

import (
	"sort"
	"time"

	"github.com/hanifw/kantong-sync/internal/domain"
	"github.com/hanifw/kantong-sync/internal/state"
	"github.com/hanifw/kantong-sync/internal/util"
	"github.com/shopspring/decimal"
)

// ReconcileInput carries one consistent snapshot of every fetched resource
// plus the selected period. Any field may be missing; reconciliation degrades
// to a partial view model instead of failing, since it runs speculatively as
// data arrives.
type ReconcileInput struct {
	Period       domain.Period
	Accounts     []*domain.Account
	Categories   []*domain.Category
	Analytics    *domain.AnalyticsSnapshot
	Transactions []*domain.Transaction
	Goals        []*domain.SavingsGoal
	Now          time.Time
}

// InputsFor adapts a cache snapshot into a reconcile input.
func InputsFor(in state.Inputs, p domain.Period, now time.Time) ReconcileInput {
	return ReconcileInput{
		Period:       p,
		Accounts:     in.Accounts,
		Categories:   in.Categories,
		Analytics:    in.Analytics,
		Transactions: in.Transactions,
		Goals:        in.Goals,
		Now:          now,
	}
}

// Reconcile merges the independently fetched resources into the derived view
// model the UI renders. It is pure and never fails.
func Reconcile(in ReconcileInput) *domain.ViewModel {
	vm := domain.EmptyViewModel(in.Period, in.Now)

	vm.Summary.TotalBalance = decimal.Zero
	if in.Accounts != nil {
		vm.Accounts = in.Accounts
		for _, a := range in.Accounts {
			vm.Summary.TotalBalance = vm.Summary.TotalBalance.Add(a.CurrentBalance)
		}
	}

	if in.Analytics != nil {
		vm.Pockets = buildPockets(in.Analytics.Budget.Details, in.Analytics.ExpensesByCategory)
		totalBudget, totalSpent := pocketTotals(vm.Pockets)
		vm.Summary.TotalBudget = totalBudget
		vm.Summary.TotalSpent = totalSpent
		// Total remaining is derived from the totals, never by summing
		// per-pocket remainders: virtual pockets carry a negative remaining
		// against a zero budget and would double-count.
		vm.Summary.TotalRemaining = totalBudget.Sub(totalSpent)
		vm.Summary.TotalIncome = in.Analytics.Summary.TotalIncome
		vm.Summary.TotalExpense = in.Analytics.Summary.TotalExpense
		vm.Summary.TotalSavings = in.Analytics.Summary.TotalSavings
	}

	for _, g := range in.Goals {
		if !goalRelevant(g, in.Period) {
			continue
		}
		vm.Goals = append(vm.Goals, GoalStatusFor(g, in.Now))
	}

	return vm
}

// buildPockets emits one real pocket per budget row, in budget order, then one
// virtual pocket per expense category with no budget row, in name order.
func buildPockets(budgets []domain.BudgetDetail, expenses map[string]decimal.Decimal) []domain.BudgetPocket {
	pockets := make([]domain.BudgetPocket, 0, len(budgets)+len(expenses))
	covered := make(map[string]bool, len(budgets))

	for _, b := range budgets {
		spent := decimal.Zero
		if v, ok := expenses[b.CategoryName]; ok {
			spent = v
		}
		progress := 0.0
		if b.Amount.IsPositive() {
			progress, _ = spent.Div(b.Amount).Mul(decimal.NewFromInt(100)).Float64()
		}
		pockets = append(pockets, domain.BudgetPocket{
			CategoryName: b.CategoryName,
			Budgeted:     b.Amount,
			Spent:        spent,
			Remaining:    b.Amount.Sub(spent),
			ProgressPct:  progress,
		})
		covered[b.CategoryName] = true
	}

	uncovered := make([]string, 0, len(expenses))
	for name := range expenses {
		if !covered[name] {
			uncovered = append(uncovered, name)
		}
	}
	sort.Strings(uncovered)

	for _, name := range uncovered {
		spent := expenses[name]
		pockets = append(pockets, domain.BudgetPocket{
			CategoryName: name,
			Budgeted:     decimal.Zero,
			Spent:        spent,
			Remaining:    spent.Neg(),
			ProgressPct:  100, // renders as fully over budget
			Virtual:      true,
		})
	}

	return pockets
}

func pocketTotals(pockets []domain.BudgetPocket) (totalBudget, totalSpent decimal.Decimal) {
	totalBudget = decimal.Zero
	totalSpent = decimal.Zero
	for _, p := range pockets {
		if !p.Virtual {
			totalBudget = totalBudget.Add(p.Budgeted)
		}
		totalSpent = totalSpent.Add(p.Spent)
	}
	return totalBudget, totalSpent
}

// GoalStatusFor derives progress and the countdown state for one savings goal.
// A met goal is achieved no matter what the target date says; dates are
// compared at day granularity.
func GoalStatusFor(g *domain.SavingsGoal, now time.Time) domain.GoalStatus {
	status := domain.GoalStatus{Goal: g, State: domain.GoalStateNone}

	if g.TargetAmount.IsPositive() {
		status.ProgressPct, _ = g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100)).Float64()
	}

	if g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount) {
		status.State = domain.GoalStateAchieved
		return status
	}

	if g.TargetDate == nil {
		return status
	}

	switch days := util.DaysUntil(now, *g.TargetDate); {
	case days > 0:
		status.State = domain.GoalStateUpcoming
		status.DaysRemaining = days
	case days == 0:
		status.State = domain.GoalStateDueToday
	default:
		status.State = domain.GoalStateOverdue
	}
	return status
}

// goalRelevant applies the monthly goal filter: a goal belongs to the selected
// period if it has no target date, or its target date falls in exactly that
// month. A goal due in March is not shown in February or April.
func goalRelevant(g *domain.SavingsGoal, p domain.Period) bool {
	return g.TargetDate == nil || p.Contains(*g.TargetDate)
}
