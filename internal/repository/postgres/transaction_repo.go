package postgres

import (
	"context"

	"github.com/finanzas-gatunas/gatunas-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// TransactionRepository implements domain.TransactionRepository using PostgreSQL
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

// Create creates a new transaction
func (r *TransactionRepository) Create(t *domain.Transaction) (*domain.Transaction, error) {
	ctx := context.Background()

	amount, err := decimalToPgNumeric(t.Amount)
	if err != nil {
		return nil, err
	}

	row := r.pool.QueryRow(ctx,
		`INSERT INTO transactions (amount, description, transaction_type, transaction_date, category_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, amount, description, transaction_type, transaction_date, category_id, created_at`,
		amount, t.Description, string(t.Type), t.TransactionDate, t.CategoryID)

	return scanTransaction(row)
}

// GetByID retrieves a transaction by ID
func (r *TransactionRepository) GetByID(id int32) (*domain.Transaction, error) {
	ctx := context.Background()

	row := r.pool.QueryRow(ctx,
		`SELECT id, amount, description, transaction_type, transaction_date, category_id, created_at
		 FROM transactions WHERE id = $1`, id)

	t, err := scanTransaction(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return t, nil
}

// List retrieves transactions ordered by date descending, optionally filtered
// to a specific month
func (r *TransactionRepository) List(year, month *int) ([]*domain.Transaction, error) {
	ctx := context.Background()

	query := `SELECT id, amount, description, transaction_type, transaction_date, category_id, created_at
		 FROM transactions`
	args := []any{}
	if year != nil && month != nil {
		query += ` WHERE EXTRACT(YEAR FROM transaction_date) = $1 AND EXTRACT(MONTH FROM transaction_date) = $2`
		args = append(args, *year, *month)
	}
	query += ` ORDER BY transaction_date DESC, id DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []*domain.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

// Update updates an existing transaction
func (r *TransactionRepository) Update(t *domain.Transaction) (*domain.Transaction, error) {
	ctx := context.Background()

	amount, err := decimalToPgNumeric(t.Amount)
	if err != nil {
		return nil, err
	}

	row := r.pool.QueryRow(ctx,
		`UPDATE transactions
		 SET amount = $2, description = $3, transaction_type = $4, transaction_date = $5, category_id = $6
		 WHERE id = $1
		 RETURNING id, amount, description, transaction_type, transaction_date, category_id, created_at`,
		t.ID, amount, t.Description, string(t.Type), t.TransactionDate, t.CategoryID)

	updated, err := scanTransaction(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes a transaction
func (r *TransactionRepository) Delete(id int32) error {
	ctx := context.Background()

	tag, err := r.pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

// SumByTypeAndMonth returns the total amount for a transaction type in a month
func (r *TransactionRepository) SumByTypeAndMonth(txType domain.TransactionType, year, month int) (decimal.Decimal, error) {
	ctx := context.Background()

	var sum pgtype.Numeric
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0)
		 FROM transactions
		 WHERE transaction_type = $1
		   AND EXTRACT(YEAR FROM transaction_date) = $2
		   AND EXTRACT(MONTH FROM transaction_date) = $3`,
		string(txType), year, month).Scan(&sum)
	if err != nil {
		return decimal.Zero, err
	}
	return pgNumericToDecimal(sum), nil
}

// ExpensesByCategory returns the per-category expense totals for a month,
// largest first
func (r *TransactionRepository) ExpensesByCategory(year, month int) ([]domain.CategoryExpense, error) {
	ctx := context.Background()

	rows, err := r.pool.Query(ctx,
		`SELECT c.name, c.color, c.icon, SUM(t.amount) AS total
		 FROM transactions t
		 JOIN categories c ON c.id = t.category_id
		 WHERE t.transaction_type = 'expense'
		   AND EXTRACT(YEAR FROM t.transaction_date) = $1
		   AND EXTRACT(MONTH FROM t.transaction_date) = $2
		 GROUP BY c.id, c.name, c.color, c.icon
		 ORDER BY total DESC`, year, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.CategoryExpense
	for rows.Next() {
		var ce domain.CategoryExpense
		var total pgtype.Numeric
		if err := rows.Scan(&ce.Name, &ce.Color, &ce.Icon, &total); err != nil {
			return nil, err
		}
		ce.Amount = pgNumericToDecimal(total)
		result = append(result, ce)
	}
	return result, rows.Err()
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var t domain.Transaction
	var amount pgtype.Numeric
	var txType string
	if err := row.Scan(&t.ID, &amount, &t.Description, &txType, &t.TransactionDate, &t.CategoryID, &t.CreatedAt); err != nil {
		return nil, err
	}
	t.Amount = pgNumericToDecimal(amount)
	t.Type = domain.TransactionType(txType)
	return &t, nil
}
