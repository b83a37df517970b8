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

// BudgetHandler handles budget upsert and delete requests
type BudgetHandler struct {
	budgetService *service.BudgetService
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(budgetService *service.BudgetService) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
	}
}

// GetBudgets handles GET /api/v1/budgets/:year/:month
func (h *BudgetHandler) GetBudgets(c echo.Context) error {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return NewValidationError(c, "Invalid year", nil)
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		return NewValidationError(c, "Invalid month", nil)
	}

	budgets, err := h.budgetService.List(c.Request().Context(), domain.Period{Month: month, Year: year})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPeriod) {
			return NewValidationError(c, "Invalid month or year", []ValidationError{
				{Field: "month", Message: "Month must be between 1 and 12"},
			})
		}
		log.Error().Err(err).Int("year", year).Int("month", month).Msg("Failed to list budgets")
		return NewUpstreamError(c, "Failed to list budgets")
	}

	return c.JSON(http.StatusOK, budgets)
}

// CreateBudget handles POST /api/v1/budgets
func (h *BudgetHandler) CreateBudget(c echo.Context) error {
	var req domain.NewBudget
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	b, err := h.budgetService.Create(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCategoryRequired):
			return NewValidationError(c, "Category is required", []ValidationError{
				{Field: "category_name", Message: "Category must not be empty"},
			})
		case errors.Is(err, domain.ErrAmountNegative):
			return NewValidationError(c, "Amount must not be negative", []ValidationError{
				{Field: "amount", Message: "Use zero to reset a budget"},
			})
		case errors.Is(err, domain.ErrInvalidPeriod):
			return NewValidationError(c, "Invalid month or year", nil)
		default:
			log.Error().Err(err).Msg("Failed to create budget")
			return NewUpstreamError(c, "Failed to create budget")
		}
	}

	return c.JSON(http.StatusCreated, b)
}

// DeleteBudget handles DELETE /api/v1/budgets/:id
func (h *BudgetHandler) DeleteBudget(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return NewValidationError(c, "Invalid budget ID", nil)
	}

	if err := h.budgetService.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return NewNotFoundError(c, "Budget not found")
		}
		log.Error().Err(err).Int64("budget_id", id).Msg("Failed to delete budget")
		return NewUpstreamError(c, "Failed to delete budget")
	}

	return c.NoContent(http.StatusNoContent)
}
