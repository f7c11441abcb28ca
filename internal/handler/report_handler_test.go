package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/finanzas-gatunas/gatunas-backend/internal/domain"
	"github.com/finanzas-gatunas/gatunas-backend/internal/service"
	"github.com/finanzas-gatunas/gatunas-backend/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

func newReportHandler() (*testutil.MockTransactionRepository, *ReportHandler) {
	categoryRepo := testutil.NewMockCategoryRepository()
	categoryRepo.AddCategory(&domain.Category{ID: 1, Name: "Comida", Color: "#4ECDC4", Icon: "🍣"})
	transactionRepo := testutil.NewMockTransactionRepository(categoryRepo)
	reportService := service.NewReportService(transactionRepo)
	return transactionRepo, NewReportHandler(reportService)
}

func TestGetDashboardSummary_Success(t *testing.T) {
	e := echo.New()
	transactionRepo, handler := newReportHandler()

	transactionRepo.AddTransaction(&domain.Transaction{
		ID: 1, Amount: decimal.NewFromInt(30000), Description: "Salary",
		Type: domain.TransactionTypeIncome, CategoryID: 1,
		TransactionDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	})
	transactionRepo.AddTransaction(&domain.Transaction{
		ID: 2, Amount: decimal.NewFromInt(5000), Description: "Groceries",
		Type: domain.TransactionTypeExpense, CategoryID: 1,
		TransactionDate: time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/summary?year=2025&month=6", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetDashboardSummary(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response DashboardSummaryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.Income != "30000.00" {
		t.Errorf("Expected income '30000.00', got %s", response.Income)
	}
	if response.Expenses != "5000.00" {
		t.Errorf("Expected expenses '5000.00', got %s", response.Expenses)
	}
	if response.Balance != "25000.00" {
		t.Errorf("Expected balance '25000.00', got %s", response.Balance)
	}
	if len(response.ExpensesByCategory) != 1 {
		t.Fatalf("Expected 1 category row, got %d", len(response.ExpensesByCategory))
	}
	if response.ExpensesByCategory[0].Name != "Comida" {
		t.Errorf("Expected category 'Comida', got %s", response.ExpensesByCategory[0].Name)
	}
}

func TestGetDashboardSummary_InvalidMonth(t *testing.T) {
	e := echo.New()
	_, handler := newReportHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/summary?year=2025&month=13", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetDashboardSummary(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestGetDashboardSummary_DefaultsToCurrentMonth(t *testing.T) {
	e := echo.New()
	_, handler := newReportHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/summary", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetDashboardSummary(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var response DashboardSummaryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	now := time.Now()
	if response.Year != now.Year() {
		t.Errorf("Expected current year %d, got %d", now.Year(), response.Year)
	}
	if response.Month != int(now.Month()) {
		t.Errorf("Expected current month %d, got %d", int(now.Month()), response.Month)
	}
}

func TestGetMonthlyTrend_Success(t *testing.T) {
	e := echo.New()
	transactionRepo, handler := newReportHandler()

	transactionRepo.AddTransaction(&domain.Transaction{
		ID: 1, Amount: decimal.NewFromInt(1000), Description: "March income",
		Type: domain.TransactionTypeIncome, CategoryID: 1,
		TransactionDate: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/monthly-trend?year=2025", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetMonthlyTrend(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var response []MonthTotalsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if len(response) != 12 {
		t.Fatalf("Expected 12 months, got %d", len(response))
	}
	if response[2].Income != "1000.00" {
		t.Errorf("Expected March income '1000.00', got %s", response[2].Income)
	}
}

func TestGetMonthlyTrend_InvalidYear(t *testing.T) {
	e := echo.New()
	_, handler := newReportHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/monthly-trend?year=abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetMonthlyTrend(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}
