// Package schedule is the recurring payment scheduling and aggregation
// engine: pure functions over dates, frequencies and payment sets. Nothing
// here reads the clock or touches storage; the caller passes the reference
// date in, which keeps every operation deterministic.
package schedule

import (
	"time"

	"github.com/finanzas-gatunas/gatunas-backend/internal/domain"
)

// NextOccurrenceAfter returns the calendar date one period after date.
// Monthly and yearly steps preserve the day of month, clamping to the last
// day of the target month when it is shorter (Jan 31 -> Feb 28/29).
func NextOccurrenceAfter(date time.Time, frequency domain.Frequency) (time.Time, error) {
	date = truncateToDay(date)

	switch frequency {
	case domain.FrequencyDaily:
		return date.AddDate(0, 0, 1), nil
	case domain.FrequencyWeekly:
		return date.AddDate(0, 0, 7), nil
	case domain.FrequencyMonthly:
		return addMonthsClamped(date, 1), nil
	case domain.FrequencyYearly:
		return addMonthsClamped(date, 12), nil
	default:
		return time.Time{}, domain.ErrInvalidFrequency
	}
}

// DaysUntil returns the signed number of calendar days from referenceDate to
// date: positive for future dates, zero for the same day, negative when
// overdue. Time-of-day on either argument is ignored.
func DaysUntil(date, referenceDate time.Time) int {
	d := truncateToDay(date)
	ref := truncateToDay(referenceDate)
	return int(d.Sub(ref).Hours() / 24)
}

// Advance returns a copy of payment whose next payment date is strictly after
// referenceDate, stepping one period at a time so that missed periods are
// skipped rather than accumulated. A payment that is already in the future is
// returned unchanged, which makes Advance idempotent for a fixed reference
// date.
func Advance(payment domain.RecurringPayment, referenceDate time.Time) (domain.RecurringPayment, error) {
	if !payment.Frequency.Valid() {
		return domain.RecurringPayment{}, domain.ErrInvalidFrequency
	}

	next := truncateToDay(payment.NextPaymentDate)
	ref := truncateToDay(referenceDate)

	for !next.After(ref) {
		var err error
		next, err = NextOccurrenceAfter(next, payment.Frequency)
		if err != nil {
			return domain.RecurringPayment{}, err
		}
	}

	payment.NextPaymentDate = next
	return payment, nil
}

// addMonthsClamped adds months calendar-wise, clamping the day of month to
// the length of the target month. time.AddDate is unsuitable here because it
// normalizes overflow (Jan 31 + 1 month = Mar 2/3).
func addMonthsClamped(date time.Time, months int) time.Time {
	year, month, day := date.Date()
	targetMonth := time.Month(int(month) + months)

	lastDay := time.Date(year, targetMonth+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > lastDay {
		day = lastDay
	}

	return time.Date(year, targetMonth, day, 0, 0, 0, 0, time.UTC)
}

// truncateToDay normalizes a timestamp to midnight UTC so that all schedule
// arithmetic happens at calendar-day granularity.
func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
