package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction amounts are strictly positive; the type determines the sign
// applied to the account balance. Transfers materialize as a linked
// expense/income pair across two accounts, so DestinationAccountID is only
// set on the expense leg of a transfer.
type Transaction struct {
	ID                   int64           `json:"id"`
	Amount               decimal.Decimal `json:"amount"`
	Type                 TransactionType `json:"type"`
	Category             string          `json:"category"`
	Date                 time.Time       `json:"date"`
	AccountID            int64           `json:"account_id"`
	Description          *string         `json:"description,omitempty"`
	ReceiptURL           *string         `json:"receipt_url,omitempty"`
	DestinationAccountID *int64          `json:"destination_account_id,omitempty"`
}

type NewTransaction struct {
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
	AccountID   int64           `json:"account_id"`
	Description *string         `json:"description,omitempty"`
}

type NewTransfer struct {
	Amount               decimal.Decimal `json:"amount"`
	SourceAccountID      int64           `json:"source_account_id"`
	DestinationAccountID int64           `json:"destination_account_id"`
	Date                 time.Time       `json:"date"`
	Description          *string         `json:"description,omitempty"`
}

// TransactionFilters narrows the period-scoped transaction list.
type TransactionFilters struct {
	Type      *TransactionType `json:"type,omitempty"`
	AccountID *int64           `json:"account_id,omitempty"`
}

// FilterPatch is a partial update to the active filters. Clear flags win over
// the corresponding value fields.
type FilterPatch struct {
	Type         *TransactionType `json:"type,omitempty"`
	AccountID    *int64           `json:"account_id,omitempty"`
	ClearType    bool             `json:"clear_type,omitempty"`
	ClearAccount bool             `json:"clear_account,omitempty"`
}

// Key returns a stable string form of the filters for cache and cycle tagging.
func (f TransactionFilters) Key() string {
	t := "*"
	if f.Type != nil {
		t = string(*f.Type)
	}
	a := "*"
	if f.AccountID != nil {
		a = fmt.Sprintf("%d", *f.AccountID)
	}
	return t + "/" + a
}

type TransactionAPI interface {
	List(ctx context.Context, p Period, f TransactionFilters) ([]*Transaction, error)
	Create(ctx context.Context, in *NewTransaction) (*Transaction, error)
	CreateTransfer(ctx context.Context, in *NewTransfer) error
	Delete(ctx context.Context, id int64) error
}
