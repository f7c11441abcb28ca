package domain

// Frequency is the billing cadence of a recurring payment. The set is closed:
// anything outside it is rejected at the boundary, never defaulted.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// ParseFrequency validates a raw frequency string against the closed set.
func ParseFrequency(raw string) (Frequency, error) {
	f := Frequency(raw)
	if !f.Valid() {
		return "", ErrInvalidFrequency
	}
	return f, nil
}

// Valid reports whether f is one of the supported frequencies.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}
