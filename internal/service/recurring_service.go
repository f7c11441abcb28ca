package service

import (
	"strings"
	"time"

	"github.com/finanzas-gatunas/gatunas-backend/internal/domain"
	"github.com/finanzas-gatunas/gatunas-backend/internal/schedule"
	"github.com/shopspring/decimal"
)

// DefaultUpcomingLimit caps the upcoming-payments list when the caller does
// not ask for a specific size, matching what the SPA shows.
const DefaultUpcomingLimit = 5

// RecurringService handles recurring payment business logic. All schedule
// arithmetic is delegated to the schedule package; the service supplies the
// reference date at the boundary and persists the results.
type RecurringService struct {
	recurringRepo domain.RecurringPaymentRepository
	categoryRepo  domain.CategoryRepository
}

// NewRecurringService creates a new RecurringService
func NewRecurringService(recurringRepo domain.RecurringPaymentRepository, categoryRepo domain.CategoryRepository) *RecurringService {
	return &RecurringService{
		recurringRepo: recurringRepo,
		categoryRepo:  categoryRepo,
	}
}

// CreateRecurringInput holds the input for creating a recurring payment
type CreateRecurringInput struct {
	Name            string
	Amount          decimal.Decimal
	Description     string
	Frequency       domain.Frequency
	NextPaymentDate time.Time
	CategoryID      int32
}

// CreateRecurring creates a new recurring payment, active by default
func (s *RecurringService) CreateRecurring(input CreateRecurringInput) (*domain.RecurringPayment, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if len(name) > domain.MaxNameLength {
		return nil, domain.ErrNameTooLong
	}

	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}

	if !input.Frequency.Valid() {
		return nil, domain.ErrInvalidFrequency
	}

	if _, err := s.categoryRepo.GetByID(input.CategoryID); err != nil {
		return nil, domain.ErrCategoryNotFound
	}

	nextDate := input.NextPaymentDate
	if nextDate.IsZero() {
		nextDate = time.Now()
	}

	return s.recurringRepo.Create(&domain.RecurringPayment{
		Name:            name,
		Amount:          input.Amount,
		Description:     input.Description,
		Frequency:       input.Frequency,
		NextPaymentDate: nextDate,
		IsActive:        true,
		CategoryID:      input.CategoryID,
	})
}

// ListRecurring retrieves all recurring payments
func (s *RecurringService) ListRecurring(activeOnly bool) ([]*domain.RecurringPayment, error) {
	return s.recurringRepo.List(activeOnly)
}

// GetRecurringByID retrieves a recurring payment by ID
func (s *RecurringService) GetRecurringByID(id int32) (*domain.RecurringPayment, error) {
	return s.recurringRepo.GetByID(id)
}

// UpdateRecurringInput holds the input for updating a recurring payment
type UpdateRecurringInput struct {
	Name            string
	Amount          decimal.Decimal
	Description     string
	Frequency       domain.Frequency
	NextPaymentDate time.Time
	IsActive        bool
	CategoryID      int32
}

// UpdateRecurring updates an existing recurring payment
func (s *RecurringService) UpdateRecurring(id int32, input UpdateRecurringInput) (*domain.RecurringPayment, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if len(name) > domain.MaxNameLength {
		return nil, domain.ErrNameTooLong
	}

	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}

	if !input.Frequency.Valid() {
		return nil, domain.ErrInvalidFrequency
	}

	if _, err := s.categoryRepo.GetByID(input.CategoryID); err != nil {
		return nil, domain.ErrCategoryNotFound
	}

	existing, err := s.recurringRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	existing.Name = name
	existing.Amount = input.Amount
	existing.Description = input.Description
	existing.Frequency = input.Frequency
	if !input.NextPaymentDate.IsZero() {
		existing.NextPaymentDate = input.NextPaymentDate
	}
	existing.IsActive = input.IsActive
	existing.CategoryID = input.CategoryID

	return s.recurringRepo.Update(existing)
}

// DeleteRecurring removes a recurring payment
func (s *RecurringService) DeleteRecurring(id int32) error {
	return s.recurringRepo.Delete(id)
}

// ToggleActive flips a recurring payment's active flag
func (s *RecurringService) ToggleActive(id int32) (*domain.RecurringPayment, error) {
	existing, err := s.recurringRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	existing.IsActive = !existing.IsActive
	return s.recurringRepo.Update(existing)
}

// AdvanceRecurring moves a payment's next payment date past the reference
// date and persists the result. A payment already in the future is returned
// unchanged without a write.
func (s *RecurringService) AdvanceRecurring(id int32, referenceDate time.Time) (*domain.RecurringPayment, error) {
	existing, err := s.recurringRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	advanced, err := schedule.Advance(*existing, referenceDate)
	if err != nil {
		return nil, err
	}

	if advanced.NextPaymentDate.Equal(existing.NextPaymentDate) {
		return existing, nil
	}
	return s.recurringRepo.Update(&advanced)
}

// AdvanceDuePayments advances every active payment whose due date is at or
// before the reference date. Used by the scheduler worker. Returns the number
// of payments that moved.
func (s *RecurringService) AdvanceDuePayments(referenceDate time.Time) (int, error) {
	payments, err := s.recurringRepo.List(true)
	if err != nil {
		return 0, err
	}

	advanced := 0
	for _, p := range payments {
		next, err := schedule.Advance(*p, referenceDate)
		if err != nil {
			return advanced, err
		}
		if next.NextPaymentDate.Equal(p.NextPaymentDate) {
			continue
		}
		if _, err := s.recurringRepo.Update(&next); err != nil {
			return advanced, err
		}
		advanced++
	}
	return advanced, nil
}

// GetSummary derives the recurring payment overview: the upcoming list,
// the total normalized monthly cost, and days until the nearest due date.
func (s *RecurringService) GetSummary(referenceDate time.Time, limit int) (*domain.RecurringSummary, error) {
	stored, err := s.recurringRepo.List(false)
	if err != nil {
		return nil, err
	}

	payments := make([]domain.RecurringPayment, len(stored))
	for i, p := range stored {
		payments[i] = *p
	}

	upcoming, err := schedule.UpcomingPayments(payments, limit)
	if err != nil {
		return nil, err
	}

	total, err := schedule.TotalMonthlyBurden(payments)
	if err != nil {
		return nil, err
	}

	summary := &domain.RecurringSummary{
		Upcoming:         upcoming,
		TotalMonthlyCost: total,
	}
	if days, ok := schedule.DaysToNextPayment(payments, referenceDate); ok {
		summary.DaysToNextPayment = &days
	}
	return summary, nil
}
