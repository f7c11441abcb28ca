package domain

import "github.com/shopspring/decimal"

// DashboardSummary is the per-month income/expense overview shown on the
// dashboard and reports pages.
type DashboardSummary struct {
	Income             decimal.Decimal   `json:"income"`
	Expenses           decimal.Decimal   `json:"expenses"`
	Balance            decimal.Decimal   `json:"balance"`
	ExpensesByCategory []CategoryExpense `json:"expensesByCategory"`
}

// MonthTotals is one month of the yearly trend series.
type MonthTotals struct {
	Month    int             `json:"month"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Balance  decimal.Decimal `json:"balance"`
}

// RecurringSummary is the derived view over the recurring payment set:
// the next payments due, the normalized monthly burden, and the distance
// to the nearest due date.
type RecurringSummary struct {
	Upcoming          []RecurringPayment `json:"upcoming"`
	TotalMonthlyCost  decimal.Decimal    `json:"totalMonthlyCost"`
	DaysToNextPayment *int               `json:"daysToNextPayment"`
}
