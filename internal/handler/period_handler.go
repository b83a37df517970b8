package handler

import (
	"errors"
	"net/http"

	"github.com/hanifw/kantong-sync/internal/domain"
	"github.com/hanifw/kantong-sync/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// PeriodHandler handles period navigation and filter requests
type PeriodHandler struct {
	orchestrator *service.Orchestrator
}

// NewPeriodHandler creates a new PeriodHandler
func NewPeriodHandler(orchestrator *service.Orchestrator) *PeriodHandler {
	return &PeriodHandler{
		orchestrator: orchestrator,
	}
}

// JumpRequest represents the body of POST /api/v1/period/jump
type JumpRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// FilterRequest represents the body of PUT /api/v1/filters
type FilterRequest struct {
	Type         *string `json:"type"`
	AccountID    *int64  `json:"account_id"`
	ClearType    bool    `json:"clear_type"`
	ClearAccount bool    `json:"clear_account"`
}

// Next handles POST /api/v1/period/next
func (h *PeriodHandler) Next(c echo.Context) error {
	return h.navigate(c, service.NavNext, 0, 0)
}

// Previous handles POST /api/v1/period/previous
func (h *PeriodHandler) Previous(c echo.Context) error {
	return h.navigate(c, service.NavPrevious, 0, 0)
}

// Jump handles POST /api/v1/period/jump
func (h *PeriodHandler) Jump(c echo.Context) error {
	var req JumpRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	return h.navigate(c, service.NavJump, req.Month, req.Year)
}

func (h *PeriodHandler) navigate(c echo.Context, op service.NavOp, month, year int) error {
	err := h.orchestrator.ChangePeriod(c.Request().Context(), op, month, year)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, h.orchestrator.View())
	case errors.Is(err, domain.ErrNavigationLocked):
		return NewLockedError(c, "A period transition is already in progress")
	case errors.Is(err, domain.ErrInvalidPeriod):
		return NewValidationError(c, "Invalid month or year", []ValidationError{
			{Field: "month", Message: "Month must be between 1 and 12"},
		})
	case errors.Is(err, domain.ErrFetchFailed):
		return NewUpstreamError(c, "Failed to fetch data for the requested month")
	default:
		log.Error().Err(err).Str("op", string(op)).Msg("Period navigation failed")
		return NewUpstreamError(c, "Failed to fetch data for the requested month")
	}
}

// SetFilters handles PUT /api/v1/filters
func (h *PeriodHandler) SetFilters(c echo.Context) error {
	var req FilterRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	patch := domain.FilterPatch{
		AccountID:    req.AccountID,
		ClearType:    req.ClearType,
		ClearAccount: req.ClearAccount,
	}
	if req.Type != nil {
		tt := domain.TransactionType(*req.Type)
		if tt != domain.TransactionTypeIncome && tt != domain.TransactionTypeExpense {
			return NewValidationError(c, "Invalid transaction type", []ValidationError{
				{Field: "type", Message: "Type must be income or expense"},
			})
		}
		patch.Type = &tt
	}

	if err := h.orchestrator.SetFilter(c.Request().Context(), patch); err != nil {
		log.Error().Err(err).Msg("Filter refetch failed")
		return NewUpstreamError(c, "Failed to refetch with the requested filters")
	}
	return c.JSON(http.StatusOK, h.orchestrator.View())
}

// Refresh handles POST /api/v1/refresh
func (h *PeriodHandler) Refresh(c echo.Context) error {
	if err := h.orchestrator.Refresh(c.Request().Context()); err != nil {
		log.Error().Err(err).Msg("Manual refresh failed")
		return NewUpstreamError(c, "Failed to refresh from the remote API")
	}
	return c.JSON(http.StatusOK, h.orchestrator.View())
}
