package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

type Transaction struct {
	ID              int32           `json:"id"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	Type            TransactionType `json:"transactionType"`
	TransactionDate time.Time       `json:"transactionDate"`
	CategoryID      int32           `json:"categoryId"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// CategoryExpense is one row of the expenses-by-category breakdown.
type CategoryExpense struct {
	Name   string          `json:"name"`
	Color  string          `json:"color"`
	Icon   string          `json:"icon"`
	Amount decimal.Decimal `json:"amount"`
}

type TransactionRepository interface {
	Create(t *Transaction) (*Transaction, error)
	GetByID(id int32) (*Transaction, error)
	// List returns transactions ordered by transaction date descending.
	// A nil year/month means no date filtering.
	List(year, month *int) ([]*Transaction, error)
	Update(t *Transaction) (*Transaction, error)
	Delete(id int32) error
	SumByTypeAndMonth(txType TransactionType, year, month int) (decimal.Decimal, error)
	ExpensesByCategory(year, month int) ([]CategoryExpense, error)
}
