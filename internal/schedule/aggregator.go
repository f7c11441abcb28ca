package schedule

import (
	"sort"
	"time"

	"github.com/finanzas-gatunas/gatunas-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// TotalMonthlyBurden sums the monthly-equivalent cost of every active payment.
// Inactive payments contribute nothing. Decimal accumulation keeps the result
// independent of summation order.
func TotalMonthlyBurden(payments []domain.RecurringPayment) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, p := range payments {
		if !p.IsActive {
			continue
		}
		monthly, err := MonthlyEquivalent(p.Amount, p.Frequency)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(monthly)
	}
	return total, nil
}

// UpcomingPayments returns the active payments ordered by next payment date
// ascending, truncated to limit. Ties on the date are broken by ID so the
// ordering is deterministic. The input slice is never modified.
func UpcomingPayments(payments []domain.RecurringPayment, limit int) ([]domain.RecurringPayment, error) {
	if limit < 0 {
		return nil, domain.ErrInvalidLimit
	}

	upcoming := make([]domain.RecurringPayment, 0, len(payments))
	for _, p := range payments {
		if p.IsActive {
			upcoming = append(upcoming, p)
		}
	}

	sort.Slice(upcoming, func(i, j int) bool {
		a, b := upcoming[i].NextPaymentDate, upcoming[j].NextPaymentDate
		if a.Equal(b) {
			return upcoming[i].ID < upcoming[j].ID
		}
		return a.Before(b)
	})

	if len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming, nil
}

// DaysToNextPayment returns the calendar-day distance from referenceDate to
// the earliest active payment's due date. ok is false when no active payment
// exists.
func DaysToNextPayment(payments []domain.RecurringPayment, referenceDate time.Time) (days int, ok bool) {
	next, err := UpcomingPayments(payments, 1)
	if err != nil || len(next) == 0 {
		return 0, false
	}
	return DaysUntil(next[0].NextPaymentDate, referenceDate), true
}
