package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type AccountType string

const (
	AccountTypeCash    AccountType = "cash"
	AccountTypeBank    AccountType = "bank"
	AccountTypeEWallet AccountType = "e_wallet"
)

// Account is an authoritative server-side snapshot: current balance already
// includes every signed transaction touching the account.
type Account struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Type           AccountType     `json:"type"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
}

// NewAccount is the payload for creating an account.
type NewAccount struct {
	Name           string          `json:"name"`
	Type           AccountType     `json:"type"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
}

type AccountAPI interface {
	List(ctx context.Context) ([]*Account, error)
	Create(ctx context.Context, in *NewAccount) (*Account, error)
	Delete(ctx context.Context, id int64) error
}
