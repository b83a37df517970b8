package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// Budget is a per-category monthly allocation. At most one budget exists per
// (category name, month, year); an amount of zero means "no active budget".
type Budget struct {
	ID           int64           `json:"id"`
	CategoryName string          `json:"category_name"`
	Amount       decimal.Decimal `json:"amount"`
	Month        int             `json:"month"`
	Year         int             `json:"year"`
}

type NewBudget struct {
	CategoryName string          `json:"category_name"`
	Amount       decimal.Decimal `json:"amount"`
	Month        int             `json:"month"`
	Year         int             `json:"year"`
}

type BudgetAPI interface {
	List(ctx context.Context, p Period) ([]*Budget, error)
	Create(ctx context.Context, in *NewBudget) (*Budget, error)
	Delete(ctx context.Context, id int64) error
}
