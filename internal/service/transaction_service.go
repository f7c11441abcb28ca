package service

import (
	"strings"
	"time"

	"github.com/finanzas-gatunas/gatunas-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// TransactionService handles transaction business logic
type TransactionService struct {
	transactionRepo domain.TransactionRepository
	categoryRepo    domain.CategoryRepository
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(transactionRepo domain.TransactionRepository, categoryRepo domain.CategoryRepository) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// CreateTransactionInput holds the input for creating a transaction
type CreateTransactionInput struct {
	Amount          decimal.Decimal
	Description     string
	Type            domain.TransactionType
	TransactionDate time.Time
	CategoryID      int32
}

// CreateTransaction creates a new transaction
func (s *TransactionService) CreateTransaction(input CreateTransactionInput) (*domain.Transaction, error) {
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}

	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, domain.ErrDescriptionRequired
	}

	if input.Type != domain.TransactionTypeIncome && input.Type != domain.TransactionTypeExpense {
		return nil, domain.ErrInvalidTransactionType
	}

	if _, err := s.categoryRepo.GetByID(input.CategoryID); err != nil {
		return nil, domain.ErrCategoryNotFound
	}

	transactionDate := input.TransactionDate
	if transactionDate.IsZero() {
		transactionDate = time.Now()
	}

	return s.transactionRepo.Create(&domain.Transaction{
		Amount:          input.Amount,
		Description:     description,
		Type:            input.Type,
		TransactionDate: transactionDate,
		CategoryID:      input.CategoryID,
	})
}

// ListTransactions retrieves transactions, optionally filtered to a month
func (s *TransactionService) ListTransactions(year, month *int) ([]*domain.Transaction, error) {
	return s.transactionRepo.List(year, month)
}

// UpdateTransactionInput holds the input for updating a transaction
type UpdateTransactionInput struct {
	Amount          decimal.Decimal
	Description     string
	Type            domain.TransactionType
	TransactionDate time.Time
	CategoryID      int32
}

// UpdateTransaction updates an existing transaction
func (s *TransactionService) UpdateTransaction(id int32, input UpdateTransactionInput) (*domain.Transaction, error) {
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}

	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, domain.ErrDescriptionRequired
	}

	if input.Type != domain.TransactionTypeIncome && input.Type != domain.TransactionTypeExpense {
		return nil, domain.ErrInvalidTransactionType
	}

	if _, err := s.categoryRepo.GetByID(input.CategoryID); err != nil {
		return nil, domain.ErrCategoryNotFound
	}

	existing, err := s.transactionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	existing.Amount = input.Amount
	existing.Description = description
	existing.Type = input.Type
	if !input.TransactionDate.IsZero() {
		existing.TransactionDate = input.TransactionDate
	}
	existing.CategoryID = input.CategoryID

	return s.transactionRepo.Update(existing)
}

// DeleteTransaction removes a transaction
func (s *TransactionService) DeleteTransaction(id int32) error {
	return s.transactionRepo.Delete(id)
}
