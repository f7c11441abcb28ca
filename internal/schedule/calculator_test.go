package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/finanzas-gatunas/gatunas-backend/internal/domain"
	"github.com/shopspring/decimal"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestNextOccurrenceAfter(t *testing.T) {
	tests := []struct {
		name      string
		date      time.Time
		frequency domain.Frequency
		want      time.Time
	}{
		{"daily adds one day", date(2024, 3, 10), domain.FrequencyDaily, date(2024, 3, 11)},
		{"daily across month end", date(2024, 1, 31), domain.FrequencyDaily, date(2024, 2, 1)},
		{"weekly adds seven days", date(2024, 3, 10), domain.FrequencyWeekly, date(2024, 3, 17)},
		{"weekly across year end", date(2024, 12, 30), domain.FrequencyWeekly, date(2025, 1, 6)},
		{"monthly preserves day", date(2024, 3, 15), domain.FrequencyMonthly, date(2024, 4, 15)},
		{"monthly clamps to leap february", date(2024, 1, 31), domain.FrequencyMonthly, date(2024, 2, 29)},
		{"monthly clamps to short february", date(2025, 1, 31), domain.FrequencyMonthly, date(2025, 2, 28)},
		{"monthly clamps 31 to 30", date(2024, 3, 31), domain.FrequencyMonthly, date(2024, 4, 30)},
		{"monthly across year end", date(2024, 12, 15), domain.FrequencyMonthly, date(2025, 1, 15)},
		{"yearly preserves date", date(2024, 6, 10), domain.FrequencyYearly, date(2025, 6, 10)},
		{"yearly clamps feb 29", date(2024, 2, 29), domain.FrequencyYearly, date(2025, 2, 28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextOccurrenceAfter(tt.date, tt.frequency)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("NextOccurrenceAfter(%v, %s) = %v, want %v", tt.date, tt.frequency, got, tt.want)
			}
		})
	}
}

func TestNextOccurrenceAfter_StrictlyAfterInput(t *testing.T) {
	frequencies := []domain.Frequency{
		domain.FrequencyDaily,
		domain.FrequencyWeekly,
		domain.FrequencyMonthly,
		domain.FrequencyYearly,
	}

	// Sweep a couple of years of dates, including leap February
	for d := date(2024, 1, 1); d.Before(date(2026, 1, 1)); d = d.AddDate(0, 0, 11) {
		for _, f := range frequencies {
			got, err := NextOccurrenceAfter(d, f)
			if err != nil {
				t.Fatalf("Expected no error for %v %s, got %v", d, f, err)
			}
			if !got.After(d) {
				t.Errorf("NextOccurrenceAfter(%v, %s) = %v, not strictly after input", d, f, got)
			}
		}
	}
}

func TestNextOccurrenceAfter_InvalidFrequency(t *testing.T) {
	_, err := NextOccurrenceAfter(date(2024, 1, 1), domain.Frequency("fortnightly"))
	if !errors.Is(err, domain.ErrInvalidFrequency) {
		t.Errorf("Expected ErrInvalidFrequency, got %v", err)
	}
}

func TestNextOccurrenceAfter_NormalizesTimeOfDay(t *testing.T) {
	late := time.Date(2024, 3, 10, 23, 59, 59, 0, time.UTC)
	got, err := NextOccurrenceAfter(late, domain.FrequencyDaily)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !got.Equal(date(2024, 3, 11)) {
		t.Errorf("Expected midnight 2024-03-11, got %v", got)
	}
}

func TestDaysUntil(t *testing.T) {
	ref := date(2024, 3, 10)

	tests := []struct {
		name string
		date time.Time
		want int
	}{
		{"future date is positive", date(2024, 3, 15), 5},
		{"same day is zero", date(2024, 3, 10), 0},
		{"same day late evening is zero", time.Date(2024, 3, 10, 23, 59, 0, 0, time.UTC), 0},
		{"overdue is negative", date(2024, 3, 7), -3},
		{"across month boundary", date(2024, 4, 1), 22},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysUntil(tt.date, ref); got != tt.want {
				t.Errorf("DaysUntil(%v, %v) = %d, want %d", tt.date, ref, got, tt.want)
			}
		})
	}
}

func TestAdvance_OverduePayment(t *testing.T) {
	payment := domain.RecurringPayment{
		ID:              1,
		Name:            "Gimnasio",
		Amount:          decimal.NewFromInt(100000),
		Frequency:       domain.FrequencyMonthly,
		NextPaymentDate: date(2024, 1, 5),
		IsActive:        true,
	}

	// Three monthly periods missed; a single Advance must land exactly one
	// period past the last boundary at or before the reference date.
	ref := date(2024, 4, 10)
	advanced, err := Advance(payment, ref)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !advanced.NextPaymentDate.Equal(date(2024, 5, 5)) {
		t.Errorf("Expected next payment 2024-05-05, got %v", advanced.NextPaymentDate)
	}
	if !advanced.NextPaymentDate.After(ref) {
		t.Error("Expected next payment strictly after reference date")
	}

	// Other fields carry over untouched
	if advanced.ID != payment.ID || advanced.Name != payment.Name || !advanced.Amount.Equal(payment.Amount) {
		t.Error("Expected Advance to preserve all fields except the next payment date")
	}

	// Input value is not mutated
	if !payment.NextPaymentDate.Equal(date(2024, 1, 5)) {
		t.Errorf("Expected input unchanged, got %v", payment.NextPaymentDate)
	}
}

func TestAdvance_DueTodayMovesOnePeriod(t *testing.T) {
	payment := domain.RecurringPayment{
		ID:              2,
		Frequency:       domain.FrequencyWeekly,
		NextPaymentDate: date(2024, 3, 10),
	}

	advanced, err := Advance(payment, date(2024, 3, 10))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !advanced.NextPaymentDate.Equal(date(2024, 3, 17)) {
		t.Errorf("Expected 2024-03-17, got %v", advanced.NextPaymentDate)
	}
}

func TestAdvance_Idempotent(t *testing.T) {
	payment := domain.RecurringPayment{
		ID:              3,
		Frequency:       domain.FrequencyMonthly,
		NextPaymentDate: date(2024, 1, 31),
	}
	ref := date(2024, 2, 1)

	first, err := Advance(payment, ref)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	second, err := Advance(first, ref)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !second.NextPaymentDate.Equal(first.NextPaymentDate) {
		t.Errorf("Expected reapplied Advance to be a no-op, got %v then %v",
			first.NextPaymentDate, second.NextPaymentDate)
	}
}

func TestAdvance_InvalidFrequency(t *testing.T) {
	payment := domain.RecurringPayment{
		Frequency:       domain.Frequency("quarterly"),
		NextPaymentDate: date(2024, 1, 1),
	}

	_, err := Advance(payment, date(2024, 2, 1))
	if !errors.Is(err, domain.ErrInvalidFrequency) {
		t.Errorf("Expected ErrInvalidFrequency, got %v", err)
	}
}
