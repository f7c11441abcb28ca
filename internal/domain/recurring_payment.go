package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecurringPayment is a scheduled charge that repeats at a fixed frequency.
// NextPaymentDate is a calendar date (midnight UTC); only the schedule
// calculator's Advance operation moves it forward.
type RecurringPayment struct {
	ID              int32           `json:"id"`
	Name            string          `json:"name"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	Frequency       Frequency       `json:"frequency"`
	NextPaymentDate time.Time       `json:"nextPaymentDate"`
	IsActive        bool            `json:"isActive"`
	CategoryID      int32           `json:"categoryId"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

type RecurringPaymentRepository interface {
	Create(p *RecurringPayment) (*RecurringPayment, error)
	GetByID(id int32) (*RecurringPayment, error)
	// List returns all recurring payments; activeOnly restricts to active ones.
	List(activeOnly bool) ([]*RecurringPayment, error)
	Update(p *RecurringPayment) (*RecurringPayment, error)
	Delete(id int32) error
}
