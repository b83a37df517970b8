package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// AnalyticsSnapshot is the wire shape of GET /analytics/summary: the
// period-scoped aggregate combining budgets and expense totals per category.
type AnalyticsSnapshot struct {
	Summary            PeriodTotals               `json:"summary"`
	Budget             BudgetTotals               `json:"budget"`
	ExpensesByCategory map[string]decimal.Decimal `json:"expenses_by_category"`
}

// PeriodTotals are the server-computed income/expense/savings totals for the
// selected month.
type PeriodTotals struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	TotalSavings decimal.Decimal `json:"total_transferred_to_savings"`
}

type BudgetTotals struct {
	TotalAmount decimal.Decimal `json:"total_amount"`
	Spent       decimal.Decimal `json:"spent"`
	Details     []BudgetDetail  `json:"details"`
}

// BudgetDetail is one budget row inside the analytics aggregate, in
// budget-creation order.
type BudgetDetail struct {
	ID           int64           `json:"id"`
	CategoryName string          `json:"category_name"`
	Amount       decimal.Decimal `json:"amount"`
}

type AnalyticsAPI interface {
	Summary(ctx context.Context, p Period, f TransactionFilters) (*AnalyticsSnapshot, error)
}
