package postgres

import (
	"context"

	"github.com/finanzas-gatunas/gatunas-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RecurringPaymentRepository implements domain.RecurringPaymentRepository
// using PostgreSQL
type RecurringPaymentRepository struct {
	pool *pgxpool.Pool
}

// NewRecurringPaymentRepository creates a new RecurringPaymentRepository
func NewRecurringPaymentRepository(pool *pgxpool.Pool) *RecurringPaymentRepository {
	return &RecurringPaymentRepository{pool: pool}
}

const recurringColumns = `id, name, amount, description, frequency, next_payment_date, is_active, category_id, created_at, updated_at`

// Create creates a new recurring payment
func (r *RecurringPaymentRepository) Create(p *domain.RecurringPayment) (*domain.RecurringPayment, error) {
	ctx := context.Background()

	amount, err := decimalToPgNumeric(p.Amount)
	if err != nil {
		return nil, err
	}

	row := r.pool.QueryRow(ctx,
		`INSERT INTO recurring_payments (name, amount, description, frequency, next_payment_date, is_active, category_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+recurringColumns,
		p.Name, amount, p.Description, string(p.Frequency), p.NextPaymentDate, p.IsActive, p.CategoryID)

	return scanRecurringPayment(row)
}

// GetByID retrieves a recurring payment by ID
func (r *RecurringPaymentRepository) GetByID(id int32) (*domain.RecurringPayment, error) {
	ctx := context.Background()

	row := r.pool.QueryRow(ctx,
		`SELECT `+recurringColumns+` FROM recurring_payments WHERE id = $1`, id)

	p, err := scanRecurringPayment(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, err
	}
	return p, nil
}

// List retrieves recurring payments ordered by next payment date
func (r *RecurringPaymentRepository) List(activeOnly bool) ([]*domain.RecurringPayment, error) {
	ctx := context.Background()

	query := `SELECT ` + recurringColumns + ` FROM recurring_payments`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY next_payment_date, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*domain.RecurringPayment
	for rows.Next() {
		p, err := scanRecurringPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// Update updates an existing recurring payment
func (r *RecurringPaymentRepository) Update(p *domain.RecurringPayment) (*domain.RecurringPayment, error) {
	ctx := context.Background()

	amount, err := decimalToPgNumeric(p.Amount)
	if err != nil {
		return nil, err
	}

	row := r.pool.QueryRow(ctx,
		`UPDATE recurring_payments
		 SET name = $2, amount = $3, description = $4, frequency = $5,
		     next_payment_date = $6, is_active = $7, category_id = $8, updated_at = now()
		 WHERE id = $1
		 RETURNING `+recurringColumns,
		p.ID, p.Name, amount, p.Description, string(p.Frequency),
		p.NextPaymentDate, p.IsActive, p.CategoryID)

	updated, err := scanRecurringPayment(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes a recurring payment
func (r *RecurringPaymentRepository) Delete(id int32) error {
	ctx := context.Background()

	tag, err := r.pool.Exec(ctx, `DELETE FROM recurring_payments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPaymentNotFound
	}
	return nil
}

func scanRecurringPayment(row pgx.Row) (*domain.RecurringPayment, error) {
	var p domain.RecurringPayment
	var amount pgtype.Numeric
	var frequency string
	if err := row.Scan(&p.ID, &p.Name, &amount, &p.Description, &frequency,
		&p.NextPaymentDate, &p.IsActive, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.Amount = pgNumericToDecimal(amount)
	p.Frequency = domain.Frequency(frequency)
	return &p, nil
}
