package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/hanifw/kantong-sync/internal/domain"
	"github.com/hanifw/kantong-sync/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// TransactionHandler handles transaction entry requests
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// CreateTransaction handles POST /api/v1/transactions
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req domain.NewTransaction
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	tx, err := h.transactionService.Create(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAmountNotPositive):
			return NewValidationError(c, "Amount must be positive", []ValidationError{
				{Field: "amount", Message: "Amount must be greater than zero"},
			})
		case errors.Is(err, domain.ErrInvalidType):
			return NewValidationError(c, "Invalid transaction type", []ValidationError{
				{Field: "type", Message: "Type must be income or expense"},
			})
		case errors.Is(err, domain.ErrCategoryRequired):
			return NewValidationError(c, "Category is required", []ValidationError{
				{Field: "category", Message: "Category must not be empty"},
			})
		case errors.Is(err, domain.ErrAccountRequired):
			return NewValidationError(c, "Account is required", []ValidationError{
				{Field: "account_id", Message: "A valid account is required"},
			})
		default:
			log.Error().Err(err).Msg("Failed to create transaction")
			return NewUpstreamError(c, "Failed to create transaction")
		}
	}

	return c.JSON(http.StatusCreated, tx)
}

// CreateTransfer handles POST /api/v1/transactions/transfers
func (h *TransactionHandler) CreateTransfer(c echo.Context) error {
	var req domain.NewTransfer
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	err := h.transactionService.CreateTransfer(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAmountNotPositive):
			return NewValidationError(c, "Amount must be positive", []ValidationError{
				{Field: "amount", Message: "Amount must be greater than zero"},
			})
		case errors.Is(err, domain.ErrAccountRequired):
			return NewValidationError(c, "Both accounts are required", []ValidationError{
				{Field: "source_account_id", Message: "Source and destination accounts are required"},
			})
		case errors.Is(err, domain.ErrSameAccountTransfer):
			return NewValidationError(c, "Cannot transfer within the same account", []ValidationError{
				{Field: "destination_account_id", Message: "Destination must differ from source"},
			})
		default:
			log.Error().Err(err).Msg("Failed to create transfer")
			return NewUpstreamError(c, "Failed to create transfer")
		}
	}

	return c.NoContent(http.StatusCreated)
}

// DeleteTransaction handles DELETE /api/v1/transactions/:id
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return NewValidationError(c, "Invalid transaction ID", nil)
	}

	if err := h.transactionService.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return NewNotFoundError(c, "Transaction not found")
		}
		log.Error().Err(err).Int64("transaction_id", id).Msg("Failed to delete transaction")
		return NewUpstreamError(c, "Failed to delete transaction")
	}

	return c.NoContent(http.StatusNoContent)
}
