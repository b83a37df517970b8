package handler

import (
	"net/http"

	"github.com/hanifw/kantong-sync/internal/service"
	"github.com/labstack/echo/v4"
)

// ViewHandler serves the derived view model and the refresh status
type ViewHandler struct {
	orchestrator *service.Orchestrator
}

// NewViewHandler creates a new ViewHandler
func NewViewHandler(orchestrator *service.Orchestrator) *ViewHandler {
	return &ViewHandler{
		orchestrator: orchestrator,
	}
}

// StatusResponse represents the orchestrator state in API responses
type StatusResponse struct {
	Status           string `json:"status"`
	NavigationLocked bool   `json:"navigation_locked"`
	LastError        string `json:"last_error,omitempty"`
}

// GetView handles GET /api/v1/view
func (h *ViewHandler) GetView(c echo.Context) error {
	return c.JSON(http.StatusOK, h.orchestrator.View())
}

// GetStatus handles GET /api/v1/status
func (h *ViewHandler) GetStatus(c echo.Context) error {
	status, lastErr := h.orchestrator.Status()
	resp := StatusResponse{
		Status:           string(status),
		NavigationLocked: h.orchestrator.NavigationLocked(),
	}
	if lastErr != nil {
		resp.LastError = lastErr.Error()
	}
	return c.JSON(http.StatusOK, resp)
}
