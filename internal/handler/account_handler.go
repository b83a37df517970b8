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

// AccountHandler handles account requests
type AccountHandler struct {
	accountService *service.AccountService
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// CreateAccount handles POST /api/v1/accounts
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	var req domain.NewAccount
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	a, err := h.accountService.Create(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrNameRequired) {
			return NewValidationError(c, "Name is required", []ValidationError{
				{Field: "name", Message: "Name must not be empty"},
			})
		}
		log.Error().Err(err).Msg("Failed to create account")
		return NewUpstreamError(c, "Failed to create account")
	}

	return c.JSON(http.StatusCreated, a)
}

// DeleteAccount handles DELETE /api/v1/accounts/:id
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return NewValidationError(c, "Invalid account ID", nil)
	}

	if err := h.accountService.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return NewNotFoundError(c, "Account not found")
		}
		log.Error().Err(err).Int64("account_id", id).Msg("Failed to delete account")
		return NewUpstreamError(c, "Failed to delete account")
	}

	return c.NoContent(http.StatusNoContent)
}
