package schedule

import (
	"github.com/finanzas-gatunas/gatunas-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// Fixed conversion factors. A 30-day month and 52/12 weeks per month are
// deliberate approximations: the normalized cost must not depend on which
// calendar month it is computed in.
var (
	daysPerMonth  = decimal.NewFromInt(30)
	weeksPerYear  = decimal.NewFromInt(52)
	monthsPerYear = decimal.NewFromInt(12)
	weeksPerMonth = weeksPerYear.Div(monthsPerYear)
)

// MonthlyEquivalent converts a nominal per-occurrence amount into what the
// payment costs per month, so payments of differing frequencies can be
// compared and summed on a common basis.
func MonthlyEquivalent(amount decimal.Decimal, frequency domain.Frequency) (decimal.Decimal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, domain.ErrInvalidAmount
	}

	switch frequency {
	case domain.FrequencyDaily:
		return amount.Mul(daysPerMonth), nil
	case domain.FrequencyWeekly:
		return amount.Mul(weeksPerMonth), nil
	case domain.FrequencyMonthly:
		return amount, nil
	case domain.FrequencyYearly:
		return amount.Div(monthsPerYear), nil
	default:
		return decimal.Zero, domain.ErrInvalidFrequency
	}
}
