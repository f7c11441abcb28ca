package service

import (
	"regexp"
	"strings"

	"github.com/finanzas-gatunas/gatunas-backend/internal/domain"
)

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// CategoryService handles category business logic
type CategoryService struct {
	categoryRepo domain.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo domain.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// CreateCategoryInput holds the input for creating a category
type CreateCategoryInput struct {
	Name        string
	Description string
	Color       string
	Icon        string
}

// CreateCategory creates a new category, filling in the default color and
// icon when they are omitted
func (s *CategoryService) CreateCategory(input CreateCategoryInput) (*domain.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if len(name) > domain.MaxNameLength {
		return nil, domain.ErrNameTooLong
	}

	color := input.Color
	if color == "" {
		color = domain.DefaultCategoryColor
	}
	if !colorPattern.MatchString(color) {
		return nil, domain.ErrInvalidColor
	}

	icon := input.Icon
	if icon == "" {
		icon = domain.DefaultCategoryIcon
	}

	return s.categoryRepo.Create(&domain.Category{
		Name:        name,
		Description: input.Description,
		Color:       color,
		Icon:        icon,
	})
}

// ListCategories retrieves all categories
func (s *CategoryService) ListCategories() ([]*domain.Category, error) {
	return s.categoryRepo.GetAll()
}

// GetCategoryByID retrieves a category by ID
func (s *CategoryService) GetCategoryByID(id int32) (*domain.Category, error) {
	return s.categoryRepo.GetByID(id)
}

// UpdateCategoryInput holds the input for updating a category
type UpdateCategoryInput struct {
	Name        string
	Description string
	Color       string
	Icon        string
}

// UpdateCategory updates an existing category
func (s *CategoryService) UpdateCategory(id int32, input UpdateCategoryInput) (*domain.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if len(name) > domain.MaxNameLength {
		return nil, domain.ErrNameTooLong
	}
	if input.Color != "" && !colorPattern.MatchString(input.Color) {
		return nil, domain.ErrInvalidColor
	}

	existing, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	existing.Name = name
	existing.Description = input.Description
	if input.Color != "" {
		existing.Color = input.Color
	}
	if input.Icon != "" {
		existing.Icon = input.Icon
	}

	return s.categoryRepo.Update(existing)
}

// DeleteCategory removes a category
func (s *CategoryService) DeleteCategory(id int32) error {
	return s.categoryRepo.Delete(id)
}
