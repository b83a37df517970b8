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

// CategoryHandler handles category requests
type CategoryHandler struct {
	categoryService *service.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// CreateCategory handles POST /api/v1/categories
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req domain.NewCategory
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	cat, err := h.categoryService.Create(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNameRequired):
			return NewValidationError(c, "Name is required", []ValidationError{
				{Field: "name", Message: "Name must not be empty"},
			})
		case errors.Is(err, domain.ErrInvalidType):
			return NewValidationError(c, "Invalid category type", []ValidationError{
				{Field: "type", Message: "Type must be income or expense"},
			})
		default:
			log.Error().Err(err).Msg("Failed to create category")
			return NewUpstreamError(c, "Failed to create category")
		}
	}

	return c.JSON(http.StatusCreated, cat)
}

// UpdateCategory handles PUT /api/v1/categories/:id
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return NewValidationError(c, "Invalid category ID", nil)
	}

	var req domain.CategoryUpdate
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	cat, err := h.categoryService.Update(c.Request().Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNameRequired):
			return NewValidationError(c, "Name must not be empty", []ValidationError{
				{Field: "name", Message: "Name must not be empty"},
			})
		case errors.Is(err, domain.ErrNotFound):
			return NewNotFoundError(c, "Category not found")
		default:
			log.Error().Err(err).Int64("category_id", id).Msg("Failed to update category")
			return NewUpstreamError(c, "Failed to update category")
		}
	}

	return c.JSON(http.StatusOK, cat)
}
