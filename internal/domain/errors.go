package domain

import "errors"

// Domain errors
var (
	ErrNotFound         = errors.New("resource not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrFetchFailed      = errors.New("resource fetch failed")
	ErrNavigationLocked = errors.New("period navigation is locked")

	// Validation errors, handled entirely at the edge: they are surfaced to the
	// caller before anything reaches the remote API or the fetch orchestrator.
	ErrAmountNotPositive   = errors.New("amount must be greater than zero")
	ErrAmountNegative      = errors.New("amount must not be negative")
	ErrNameRequired        = errors.New("name is required")
	ErrCategoryRequired    = errors.New("category is required")
	ErrAccountRequired     = errors.New("account is required")
	ErrSameAccountTransfer = errors.New("transfer source and destination must differ")
	ErrTargetDatePast      = errors.New("target date must not be in the past")
	ErrInvalidType         = errors.New("invalid type")
	ErrInvalidPeriod       = errors.New("invalid period")
)
