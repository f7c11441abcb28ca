package testutil

import (
	"sort"

	"github.com/finanzas-gatunas/gatunas-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// MockCategoryRepository is an in-memory implementation of
// domain.CategoryRepository
type MockCategoryRepository struct {
	Categories map[int32]*domain.Category
	NextID     int32
}

// NewMockCategoryRepository creates a new MockCategoryRepository
func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{
		Categories: make(map[int32]*domain.Category),
		NextID:     1,
	}
}

// AddCategory adds a category to the mock repository (helper for tests)
func (m *MockCategoryRepository) AddCategory(category *domain.Category) {
	m.Categories[category.ID] = category
	if category.ID >= m.NextID {
		m.NextID = category.ID + 1
	}
}

// Create creates a new category
func (m *MockCategoryRepository) Create(category *domain.Category) (*domain.Category, error) {
	c := *category
	c.ID = m.NextID
	m.NextID++
	m.Categories[c.ID] = &c
	return &c, nil
}

// GetByID retrieves a category by ID
func (m *MockCategoryRepository) GetByID(id int32) (*domain.Category, error) {
	if c, ok := m.Categories[id]; ok {
		return c, nil
	}
	return nil, domain.ErrCategoryNotFound
}

// GetAll retrieves all categories ordered by name
func (m *MockCategoryRepository) GetAll() ([]*domain.Category, error) {
	result := make([]*domain.Category, 0, len(m.Categories))
	for _, c := range m.Categories {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// Update updates an existing category
func (m *MockCategoryRepository) Update(category *domain.Category) (*domain.Category, error) {
	if _, ok := m.Categories[category.ID]; !ok {
		return nil, domain.ErrCategoryNotFound
	}
	c := *category
	m.Categories[c.ID] = &c
	return &c, nil
}

// Delete removes a category
func (m *MockCategoryRepository) Delete(id int32) error {
	if _, ok := m.Categories[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(m.Categories, id)
	return nil
}

// MockTransactionRepository is an in-memory implementation of
// domain.TransactionRepository
type MockTransactionRepository struct {
	Transactions map[int32]*domain.Transaction
	Categories   *MockCategoryRepository
	NextID       int32
}

// NewMockTransactionRepository creates a new MockTransactionRepository.
// The category repository is used to resolve the expenses-by-category view.
func NewMockTransactionRepository(categories *MockCategoryRepository) *MockTransactionRepository {
	return &MockTransactionRepository{
		Transactions: make(map[int32]*domain.Transaction),
		Categories:   categories,
		NextID:       1,
	}
}

// AddTransaction adds a transaction to the mock repository (helper for tests)
func (m *MockTransactionRepository) AddTransaction(t *domain.Transaction) {
	m.Transactions[t.ID] = t
	if t.ID >= m.NextID {
		m.NextID = t.ID + 1
	}
}

// Create creates a new transaction
func (m *MockTransactionRepository) Create(t *domain.Transaction) (*domain.Transaction, error) {
	tx := *t
	tx.ID = m.NextID
	m.NextID++
	m.Transactions[tx.ID] = &tx
	return &tx, nil
}

// GetByID retrieves a transaction by ID
func (m *MockTransactionRepository) GetByID(id int32) (*domain.Transaction, error) {
	if t, ok := m.Transactions[id]; ok {
		return t, nil
	}
	return nil, domain.ErrTransactionNotFound
}

// List retrieves transactions ordered by date descending
func (m *MockTransactionRepository) List(year, month *int) ([]*domain.Transaction, error) {
	result := make([]*domain.Transaction, 0, len(m.Transactions))
	for _, t := range m.Transactions {
		if year != nil && month != nil {
			if t.TransactionDate.Year() != *year || int(t.TransactionDate.Month()) != *month {
				continue
			}
		}
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].TransactionDate.Equal(result[j].TransactionDate) {
			return result[i].ID > result[j].ID
		}
		return result[i].TransactionDate.After(result[j].TransactionDate)
	})
	return result, nil
}

// Update updates an existing transaction
func (m *MockTransactionRepository) Update(t *domain.Transaction) (*domain.Transaction, error) {
	if _, ok := m.Transactions[t.ID]; !ok {
		return nil, domain.ErrTransactionNotFound
	}
	tx := *t
	m.Transactions[tx.ID] = &tx
	return &tx, nil
}

// Delete removes a transaction
func (m *MockTransactionRepository) Delete(id int32) error {
	if _, ok := m.Transactions[id]; !ok {
		return domain.ErrTransactionNotFound
	}
	delete(m.Transactions, id)
	return nil
}

// SumByTypeAndMonth returns the total amount for a transaction type in a month
func (m *MockTransactionRepository) SumByTypeAndMonth(txType domain.TransactionType, year, month int) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, t := range m.Transactions {
		if t.Type != txType {
			continue
		}
		if t.TransactionDate.Year() != year || int(t.TransactionDate.Month()) != month {
			continue
		}
		sum = sum.Add(t.Amount)
	}
	return sum, nil
}

// ExpensesByCategory returns per-category expense totals for a month,
// largest first
func (m *MockTransactionRepository) ExpensesByCategory(year, month int) ([]domain.CategoryExpense, error) {
	totals := make(map[int32]decimal.Decimal)
	for _, t := range m.Transactions {
		if t.Type != domain.TransactionTypeExpense {
			continue
		}
		if t.TransactionDate.Year() != year || int(t.TransactionDate.Month()) != month {
			continue
		}
		totals[t.CategoryID] = totals[t.CategoryID].Add(t.Amount)
	}

	var result []domain.CategoryExpense
	for categoryID, total := range totals {
		ce := domain.CategoryExpense{Amount: total}
		if m.Categories != nil {
			if c, err := m.Categories.GetByID(categoryID); err == nil {
				ce.Name = c.Name
				ce.Color = c.Color
				ce.Icon = c.Icon
			}
		}
		result = append(result, ce)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Amount.GreaterThan(result[j].Amount) })
	return result, nil
}

// MockRecurringPaymentRepository is an in-memory implementation of
// domain.RecurringPaymentRepository
type MockRecurringPaymentRepository struct {
	Payments map[int32]*domain.RecurringPayment
	NextID   int32
}

// NewMockRecurringPaymentRepository creates a new MockRecurringPaymentRepository
func NewMockRecurringPaymentRepository() *MockRecurringPaymentRepository {
	return &MockRecurringPaymentRepository{
		Payments: make(map[int32]*domain.RecurringPayment),
		NextID:   1,
	}
}

// AddPayment adds a recurring payment to the mock repository (helper for tests)
func (m *MockRecurringPaymentRepository) AddPayment(p *domain.RecurringPayment) {
	m.Payments[p.ID] = p
	if p.ID >= m.NextID {
		m.NextID = p.ID + 1
	}
}

// Create creates a new recurring payment
func (m *MockRecurringPaymentRepository) Create(p *domain.RecurringPayment) (*domain.RecurringPayment, error) {
	payment := *p
	payment.ID = m.NextID
	m.NextID++
	m.Payments[payment.ID] = &payment
	return &payment, nil
}

// GetByID retrieves a recurring payment by ID
func (m *MockRecurringPaymentRepository) GetByID(id int32) (*domain.RecurringPayment, error) {
	if p, ok := m.Payments[id]; ok {
		return p, nil
	}
	return nil, domain.ErrPaymentNotFound
}

// List retrieves recurring payments ordered by next payment date
func (m *MockRecurringPaymentRepository) List(activeOnly bool) ([]*domain.RecurringPayment, error) {
	result := make([]*domain.RecurringPayment, 0, len(m.Payments))
	for _, p := range m.Payments {
		if activeOnly && !p.IsActive {
			continue
		}
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].NextPaymentDate.Equal(result[j].NextPaymentDate) {
			return result[i].ID < result[j].ID
		}
		return result[i].NextPaymentDate.Before(result[j].NextPaymentDate)
	})
	return result, nil
}

// Update updates an existing recurring payment
func (m *MockRecurringPaymentRepository) Update(p *domain.RecurringPayment) (*domain.RecurringPayment, error) {
	if _, ok := m.Payments[p.ID]; !ok {
		return nil, domain.ErrPaymentNotFound
	}
	payment := *p
	m.Payments[payment.ID] = &payment
	return &payment, nil
}

// Delete removes a recurring payment
func (m *MockRecurringPaymentRepository) Delete(id int32) error {
	if _, ok := m.Payments[id]; !ok {
		return domain.ErrPaymentNotFound
	}
	delete(m.Payments, id)
	return nil
}
