package postgres

import (
	"context"

	"github.com/finanzas-gatunas/gatunas-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// CategoryRepository implements domain.CategoryRepository using PostgreSQL
type CategoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

// Create creates a new category
func (r *CategoryRepository) Create(category *domain.Category) (*domain.Category, error) {
	ctx := context.Background()

	row := r.pool.QueryRow(ctx,
		`INSERT INTO categories (name, description, color, icon)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, name, description, color, icon, created_at`,
		category.Name, category.Description, category.Color, category.Icon)

	return scanCategory(row)
}

// GetByID retrieves a category by ID
func (r *CategoryRepository) GetByID(id int32) (*domain.Category, error) {
	ctx := context.Background()

	row := r.pool.QueryRow(ctx,
		`SELECT id, name, description, color, icon, created_at
		 FROM categories WHERE id = $1`, id)

	category, err := scanCategory(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

// GetAll retrieves all categories ordered by name
func (r *CategoryRepository) GetAll() ([]*domain.Category, error) {
	ctx := context.Background()

	rows, err := r.pool.Query(ctx,
		`SELECT id, name, description, color, icon, created_at
		 FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*domain.Category
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

// Update updates an existing category
func (r *CategoryRepository) Update(category *domain.Category) (*domain.Category, error) {
	ctx := context.Background()

	row := r.pool.QueryRow(ctx,
		`UPDATE categories
		 SET name = $2, description = $3, color = $4, icon = $5
		 WHERE id = $1
		 RETURNING id, name, description, color, icon, created_at`,
		category.ID, category.Name, category.Description, category.Color, category.Icon)

	updated, err := scanCategory(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes a category and, via ON DELETE CASCADE, its transactions
// and recurring payments
func (r *CategoryRepository) Delete(id int32) error {
	ctx := context.Background()

	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var c domain.Category
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Color, &c.Icon, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func decimalToPgNumeric(d decimal.Decimal) (pgtype.Numeric, error) {
	var num pgtype.Numeric
	if err := num.Scan(d.String()); err != nil {
		return pgtype.Numeric{}, err
	}
	return num, nil
}

func pgNumericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}
	if n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}
