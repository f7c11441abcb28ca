package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/finanzas-gatunas/gatunas-backend/internal/domain"
	"github.com/finanzas-gatunas/gatunas-backend/internal/testutil"
)

func TestCreateCategory_Success(t *testing.T) {
	categoryRepo := testutil.NewMockCategoryRepository()
	categoryService := NewCategoryService(categoryRepo)

	category, err := categoryService.CreateCategory(CreateCategoryInput{
		Name:        "Comida",
		Description: "Groceries and cat food",
		Color:       "#4ECDC4",
		Icon:        "🍣",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if category.Name != "Comida" {
		t.Errorf("Expected name 'Comida', got %s", category.Name)
	}
	if category.Color != "#4ECDC4" {
		t.Errorf("Expected color '#4ECDC4', got %s", category.Color)
	}
	if category.Icon != "🍣" {
		t.Errorf("Expected icon '🍣', got %s", category.Icon)
	}
	if category.ID == 0 {
		t.Error("Expected an assigned ID")
	}
}

func TestCreateCategory_Defaults(t *testing.T) {
	categoryRepo := testutil.NewMockCategoryRepository()
	categoryService := NewCategoryService(categoryRepo)

	category, err := categoryService.CreateCategory(CreateCategoryInput{
		Name: "Juguetes",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if category.Color != domain.DefaultCategoryColor {
		t.Errorf("Expected default color %s, got %s", domain.DefaultCategoryColor, category.Color)
	}
	if category.Icon != domain.DefaultCategoryIcon {
		t.Errorf("Expected default icon %s, got %s", domain.DefaultCategoryIcon, category.Icon)
	}
}

func TestCreateCategory_EmptyName(t *testing.T) {
	categoryRepo := testutil.NewMockCategoryRepository()
	categoryService := NewCategoryService(categoryRepo)

	_, err := categoryService.CreateCategory(CreateCategoryInput{Name: "   "})
	if !errors.Is(err, domain.ErrNameRequired) {
		t.Errorf("Expected ErrNameRequired, got %v", err)
	}
}

func TestCreateCategory_NameTooLong(t *testing.T) {
	categoryRepo := testutil.NewMockCategoryRepository()
	categoryService := NewCategoryService(categoryRepo)

	_, err := categoryService.CreateCategory(CreateCategoryInput{
		Name: strings.Repeat("a", domain.MaxNameLength+1),
	})
	if !errors.Is(err, domain.ErrNameTooLong) {
		t.Errorf("Expected ErrNameTooLong, got %v", err)
	}
}

func TestCreateCategory_InvalidColor(t *testing.T) {
	categoryRepo := testutil.NewMockCategoryRepository()
	categoryService := NewCategoryService(categoryRepo)

	_, err := categoryService.CreateCategory(CreateCategoryInput{
		Name:  "Salud",
		Color: "pink",
	})
	if !errors.Is(err, domain.ErrInvalidColor) {
		t.Errorf("Expected ErrInvalidColor, got %v", err)
	}
}

func TestUpdateCategory_Success(t *testing.T) {
	categoryRepo := testutil.NewMockCategoryRepository()
	categoryService := NewCategoryService(categoryRepo)

	created, err := categoryService.CreateCategory(CreateCategoryInput{Name: "Salud"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	updated, err := categoryService.UpdateCategory(created.ID, UpdateCategoryInput{
		Name:  "Veterinario",
		Color: "#FF6B6B",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if updated.Name != "Veterinario" {
		t.Errorf("Expected name 'Veterinario', got %s", updated.Name)
	}
	if updated.Color != "#FF6B6B" {
		t.Errorf("Expected color '#FF6B6B', got %s", updated.Color)
	}
	// Icon was not supplied, the stored one stays
	if updated.Icon != domain.DefaultCategoryIcon {
		t.Errorf("Expected icon %s, got %s", domain.DefaultCategoryIcon, updated.Icon)
	}
}

func TestUpdateCategory_NotFound(t *testing.T) {
	categoryRepo := testutil.NewMockCategoryRepository()
	categoryService := NewCategoryService(categoryRepo)

	_, err := categoryService.UpdateCategory(999, UpdateCategoryInput{Name: "Nada"})
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Errorf("Expected ErrCategoryNotFound, got %v", err)
	}
}

func TestDeleteCategory_Success(t *testing.T) {
	categoryRepo := testutil.NewMockCategoryRepository()
	categoryService := NewCategoryService(categoryRepo)

	created, err := categoryService.CreateCategory(CreateCategoryInput{Name: "Temporal"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if err := categoryService.DeleteCategory(created.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := categoryService.GetCategoryByID(created.ID); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Errorf("Expected ErrCategoryNotFound after delete, got %v", err)
	}
}

func TestDeleteCategory_NotFound(t *testing.T) {
	categoryRepo := testutil.NewMockCategoryRepository()
	categoryService := NewCategoryService(categoryRepo)

	if err := categoryService.DeleteCategory(42); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Errorf("Expected ErrCategoryNotFound, got %v", err)
	}
}

func TestListCategories_SortedByName(t *testing.T) {
	categoryRepo := testutil.NewMockCategoryRepository()
	categoryService := NewCategoryService(categoryRepo)

	for _, name := range []string{"Salud", "Comida", "Juguetes"} {
		if _, err := categoryService.CreateCategory(CreateCategoryInput{Name: name}); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}

	categories, err := categoryService.ListCategories()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(categories) != 3 {
		t.Fatalf("Expected 3 categories, got %d", len(categories))
	}
	expected := []string{"Comida", "Juguetes", "Salud"}
	for i, name := range expected {
		if categories[i].Name != name {
			t.Errorf("Expected categories[%d] = %s, got %s", i, name, categories[i].Name)
		}
	}
}
