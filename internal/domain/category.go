package domain

import "time"

// Default presentation for categories created without explicit styling.
const (
	DefaultCategoryColor = "#FF69B4"
	DefaultCategoryIcon  = "🐱"
)

type Category struct {
	ID          int32     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	Icon        string    `json:"icon"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CategoryRepository interface {
	Create(category *Category) (*Category, error)
	GetByID(id int32) (*Category, error)
	GetAll() ([]*Category, error)
	Update(category *Category) (*Category, error)
	Delete(id int32) error
}
