package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/hanifw/kantong-sync/internal/domain"
	"github.com/hanifw/kantong-sync/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// SavingsHandler handles savings goal requests
type SavingsHandler struct {
	savingsService *service.SavingsService
}

// NewSavingsHandler creates a new SavingsHandler
func NewSavingsHandler(savingsService *service.SavingsService) *SavingsHandler {
	return &SavingsHandler{
		savingsService: savingsService,
	}
}

// DepositRequest represents the body of POST /api/v1/savings/:id/deposits
type DepositRequest struct {
	AccountID int64           `json:"account_id"`
	Amount    decimal.Decimal `json:"amount"`
}

// CreateGoal handles POST /api/v1/savings
func (h *SavingsHandler) CreateGoal(c echo.Context) error {
	var req domain.NewSavingsGoal
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	g, err := h.savingsService.Create(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNameRequired):
			return NewValidationError(c, "Name is required", []ValidationError{
				{Field: "name", Message: "Name must not be empty"},
			})
		case errors.Is(err, domain.ErrAmountNotPositive):
			return NewValidationError(c, "Target amount must be positive", []ValidationError{
				{Field: "target_amount", Message: "Target amount must be greater than zero"},
			})
		case errors.Is(err, domain.ErrTargetDatePast):
			return NewValidationError(c, "Target date must not be in the past", []ValidationError{
				{Field: "target_date", Message: "Pick today or a future date"},
			})
		default:
			log.Error().Err(err).Msg("Failed to create savings goal")
			return NewUpstreamError(c, "Failed to create savings goal")
		}
	}

	return c.JSON(http.StatusCreated, g)
}

// AddFunds handles POST /api/v1/savings/:id/deposits
func (h *SavingsHandler) AddFunds(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return NewValidationError(c, "Invalid goal ID", nil)
	}

	var req DepositRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	deposit := &domain.SavingsDeposit{
		GoalID:    id,
		AccountID: req.AccountID,
		Amount:    req.Amount,
	}
	if err := h.savingsService.AddFunds(c.Request().Context(), deposit); err != nil {
		switch {
		case errors.Is(err, domain.ErrAccountRequired):
			return NewValidationError(c, "Account is required", []ValidationError{
				{Field: "account_id", Message: "A valid source account is required"},
			})
		case errors.Is(err, domain.ErrAmountNotPositive):
			return NewValidationError(c, "Amount must be positive", []ValidationError{
				{Field: "amount", Message: "Amount must be greater than zero"},
			})
		case errors.Is(err, domain.ErrNotFound):
			return NewNotFoundError(c, "Savings goal not found")
		default:
			log.Error().Err(err).Int64("goal_id", id).Msg("Failed to add funds")
			return NewUpstreamError(c, "Failed to add funds")
		}
	}

	return c.NoContent(http.StatusCreated)
}

// DeleteGoal handles DELETE /api/v1/savings/:id
func (h *SavingsHandler) DeleteGoal(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return NewValidationError(c, "Invalid goal ID", nil)
	}

	if err := h.savingsService.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return NewNotFoundError(c, "Savings goal not found")
		}
		log.Error().Err(err).Int64("goal_id", id).Msg("Failed to delete savings goal")
		return NewUpstreamError(c, "Failed to delete savings goal")
	}

	return c.NoContent(http.StatusNoContent)
}
