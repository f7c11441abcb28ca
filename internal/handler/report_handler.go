package handler

import (
	"net/http"
	"strconv"

	"github.com/finanzas-gatunas/gatunas-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ReportHandler handles dashboard and report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// DashboardSummaryResponse represents the monthly dashboard overview
type DashboardSummaryResponse struct {
	Year               int                       `json:"year"`
	Month              int                       `json:"month"`
	Income             string                    `json:"income"`
	Expenses           string                    `json:"expenses"`
	Balance            string                    `json:"balance"`
	ExpensesByCategory []CategoryExpenseResponse `json:"expensesByCategory"`
}

// CategoryExpenseResponse represents one category's expense total
type CategoryExpenseResponse struct {
	Name   string `json:"name"`
	Color  string `json:"color"`
	Icon   string `json:"icon"`
	Amount string `json:"amount"`
}

// MonthTotalsResponse represents one month of the yearly trend
type MonthTotalsResponse struct {
	Month    int    `json:"month"`
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
	Balance  string `json:"balance"`
}

// GetDashboardSummary handles GET /api/dashboard/summary
func (h *ReportHandler) GetDashboardSummary(c echo.Context) error {
	year, month := service.CurrentYearMonth()
	if yearParam := c.QueryParam("year"); yearParam != "" {
		parsed, err := strconv.Atoi(yearParam)
		if err != nil {
			return NewValidationError(c, "Invalid year", nil)
		}
		year = parsed
	}
	if monthParam := c.QueryParam("month"); monthParam != "" {
		parsed, err := strconv.Atoi(monthParam)
		if err != nil || parsed < 1 || parsed > 12 {
			return NewValidationError(c, "Invalid month", nil)
		}
		month = parsed
	}

	summary, err := h.reportService.GetSummary(year, month)
	if err != nil {
		log.Error().Err(err).Int("year", year).Int("month", month).Msg("Failed to compute dashboard summary")
		return NewInternalError(c, "Failed to compute dashboard summary")
	}

	byCategory := make([]CategoryExpenseResponse, len(summary.ExpensesByCategory))
	for i, e := range summary.ExpensesByCategory {
		byCategory[i] = CategoryExpenseResponse{
			Name:   e.Name,
			Color:  e.Color,
			Icon:   e.Icon,
			Amount: e.Amount.StringFixed(2),
		}
	}

	return c.JSON(http.StatusOK, DashboardSummaryResponse{
		Year:               year,
		Month:              month,
		Income:             summary.Income.StringFixed(2),
		Expenses:           summary.Expenses.StringFixed(2),
		Balance:            summary.Balance.StringFixed(2),
		ExpensesByCategory: byCategory,
	})
}

// GetMonthlyTrend handles GET /api/dashboard/monthly-trend
func (h *ReportHandler) GetMonthlyTrend(c echo.Context) error {
	year, _ := service.CurrentYearMonth()
	if yearParam := c.QueryParam("year"); yearParam != "" {
		parsed, err := strconv.Atoi(yearParam)
		if err != nil {
			return NewValidationError(c, "Invalid year", nil)
		}
		year = parsed
	}

	trend, err := h.reportService.GetMonthlyTrend(year)
	if err != nil {
		log.Error().Err(err).Int("year", year).Msg("Failed to compute monthly trend")
		return NewInternalError(c, "Failed to compute monthly trend")
	}

	response := make([]MonthTotalsResponse, len(trend))
	for i, m := range trend {
		response[i] = MonthTotalsResponse{
			Month:    m.Month,
			Income:   m.Income.StringFixed(2),
			Expenses: m.Expenses.StringFixed(2),
			Balance:  m.Balance.StringFixed(2),
		}
	}
	return c.JSON(http.StatusOK, response)
}

