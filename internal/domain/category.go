package domain

import "context"

type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

type CategoryOwner string

const (
	CategoryOwnerUser   CategoryOwner = "user"
	CategoryOwnerSystem CategoryOwner = "system"
)

// Category names are unique per owner and type. The type is immutable after
// creation, which is why CategoryUpdate carries no type field.
type Category struct {
	ID    int64         `json:"id"`
	Name  string        `json:"name"`
	Type  CategoryType  `json:"type"`
	Icon  string        `json:"icon"`
	Color string        `json:"color"`
	Owner CategoryOwner `json:"owner"`
}

type NewCategory struct {
	Name  string       `json:"name"`
	Type  CategoryType `json:"type"`
	Icon  string       `json:"icon"`
	Color string       `json:"color"`
}

type CategoryUpdate struct {
	Name  *string `json:"name,omitempty"`
	Icon  *string `json:"icon,omitempty"`
	Color *string `json:"color,omitempty"`
}

type CategoryAPI interface {
	List(ctx context.Context) ([]*Category, error)
	Create(ctx context.Context, in *NewCategory) (*Category, error)
	Update(ctx context.Context, id int64, in *CategoryUpdate) (*Category, error)
}
