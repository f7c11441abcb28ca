package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/finanzas-gatunas/gatunas-backend/internal/domain"
	"github.com/finanzas-gatunas/gatunas-backend/internal/service"
	"github.com/finanzas-gatunas/gatunas-backend/internal/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// CategoryHandler handles category HTTP requests
type CategoryHandler struct {
	categoryService *service.CategoryService
	publisher       websocket.EventPublisher
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService *service.CategoryService, publisher websocket.EventPublisher) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		publisher:       publisher,
	}
}

// CategoryRequest represents the create/update category request body
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID          int32  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
	CreatedAt   string `json:"createdAt"`
}

// CreateCategory handles POST /api/categories
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	category, err := h.categoryService.CreateCategory(service.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		Icon:        req.Icon,
	})
	if err != nil {
		return h.handleServiceError(c, err, "create category")
	}

	log.Info().Int32("category_id", category.ID).Str("name", category.Name).Msg("Category created")
	h.publisher.Publish(websocket.CategoryCreated(toCategoryResponse(category)))

	return c.JSON(http.StatusCreated, toCategoryResponse(category))
}

// GetCategories handles GET /api/categories
func (h *CategoryHandler) GetCategories(c echo.Context) error {
	categories, err := h.categoryService.ListCategories()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list categories")
		return NewInternalError(c, "Failed to list categories")
	}

	response := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		response[i] = toCategoryResponse(category)
	}
	return c.JSON(http.StatusOK, response)
}

// UpdateCategory handles PUT /api/categories/:id
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid category ID", nil)
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	category, err := h.categoryService.UpdateCategory(int32(id), service.UpdateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		Icon:        req.Icon,
	})
	if err != nil {
		return h.handleServiceError(c, err, "update category")
	}

	log.Info().Int32("category_id", category.ID).Str("name", category.Name).Msg("Category updated")
	h.publisher.Publish(websocket.CategoryUpdated(toCategoryResponse(category)))

	return c.JSON(http.StatusOK, toCategoryResponse(category))
}

// DeleteCategory handles DELETE /api/categories/:id
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid category ID", nil)
	}

	if err := h.categoryService.DeleteCategory(int32(id)); err != nil {
		return h.handleServiceError(c, err, "delete category")
	}

	log.Info().Int("category_id", id).Msg("Category deleted")
	h.publisher.Publish(websocket.CategoryDeleted(map[string]int{"id": id}))

	return c.NoContent(http.StatusNoContent)
}

// handleServiceError maps category service errors to problem responses
func (h *CategoryHandler) handleServiceError(c echo.Context, err error, operation string) error {
	switch {
	case errors.Is(err, domain.ErrCategoryNotFound):
		return NewNotFoundError(c, "Category not found")
	case errors.Is(err, domain.ErrNameRequired):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "name", Message: "Name is required"},
		})
	case errors.Is(err, domain.ErrNameTooLong):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "name", Message: "Name must be 100 characters or less"},
		})
	case errors.Is(err, domain.ErrInvalidColor):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "color", Message: "Color must be a #RRGGBB hex value"},
		})
	}
	log.Error().Err(err).Str("operation", operation).Msg("Failed to " + operation)
	return NewInternalError(c, "Failed to "+operation)
}

func toCategoryResponse(category *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		Color:       category.Color,
		Icon:        category.Icon,
		CreatedAt:   category.CreatedAt.Format(time.RFC3339),
	}
}
