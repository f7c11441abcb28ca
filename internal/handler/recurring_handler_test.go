package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/finanzas-gatunas/gatunas-backend/internal/domain"
	"github.com/finanzas-gatunas/gatunas-backend/internal/service"
	"github.com/finanzas-gatunas/gatunas-backend/internal/testutil"
	"github.com/finanzas-gatunas/gatunas-backend/internal/websocket"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

func newRecurringHandler() (*testutil.MockRecurringPaymentRepository, *RecurringHandler) {
	categoryRepo := testutil.NewMockCategoryRepository()
	categoryRepo.AddCategory(&domain.Category{ID: 1, Name: "Hogar", Color: "#45B7D1", Icon: "🏠"})
	recurringRepo := testutil.NewMockRecurringPaymentRepository()
	recurringService := service.NewRecurringService(recurringRepo, categoryRepo)
	return recurringRepo, NewRecurringHandler(recurringService, &websocket.NoOpPublisher{})
}

func TestCreateRecurring_Success(t *testing.T) {
	e := echo.New()
	_, handler := newRecurringHandler()

	body := `{"name":"Rent","amount":"15000","description":"Monthly rent","frequency":"monthly","nextPaymentDate":"2025-07-01","categoryId":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/recurring-payments", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.CreateRecurring(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", rec.Code)
	}

	var response RecurringResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.Name != "Rent" {
		t.Errorf("Expected name 'Rent', got %s", response.Name)
	}
	if response.Amount != "15000.00" {
		t.Errorf("Expected amount '15000.00', got %s", response.Amount)
	}
	if response.NextPaymentDate != "2025-07-01" {
		t.Errorf("Expected next payment date '2025-07-01', got %s", response.NextPaymentDate)
	}
	if !response.IsActive {
		t.Error("Expected new payment to be active")
	}
}

func TestCreateRecurring_InvalidFrequency(t *testing.T) {
	e := echo.New()
	_, handler := newRecurringHandler()

	body := `{"name":"Rent","amount":"15000","frequency":"biweekly","categoryId":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/recurring-payments", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.CreateRecurring(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestGetRecurringPayments_ActiveFilter(t *testing.T) {
	e := echo.New()
	recurringRepo, handler := newRecurringHandler()

	recurringRepo.AddPayment(&domain.RecurringPayment{
		ID: 1, Name: "Rent", Amount: decimal.NewFromInt(15000),
		Frequency: domain.FrequencyMonthly, IsActive: true, CategoryID: 1,
		NextPaymentDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	})
	recurringRepo.AddPayment(&domain.RecurringPayment{
		ID: 2, Name: "Old gym", Amount: decimal.NewFromInt(500),
		Frequency: domain.FrequencyMonthly, IsActive: false, CategoryID: 1,
		NextPaymentDate: time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/recurring-payments?active=true", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetRecurringPayments(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var response []RecurringResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(response) != 1 {
		t.Fatalf("Expected 1 active payment, got %d", len(response))
	}
	if response[0].Name != "Rent" {
		t.Errorf("Expected 'Rent', got %s", response[0].Name)
	}
}

func TestGetRecurringSummary_Success(t *testing.T) {
	e := echo.New()
	recurringRepo, handler := newRecurringHandler()

	recurringRepo.AddPayment(&domain.RecurringPayment{
		ID: 1, Name: "Rent", Amount: decimal.NewFromInt(15000),
		Frequency: domain.FrequencyMonthly, IsActive: true, CategoryID: 1,
		NextPaymentDate: time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC),
	})
	recurringRepo.AddPayment(&domain.RecurringPayment{
		ID: 2, Name: "Insurance", Amount: decimal.NewFromInt(80000),
		Frequency: domain.FrequencyYearly, IsActive: true, CategoryID: 1,
		NextPaymentDate: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/recurring-payments/summary?date=2025-06-10", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetRecurringSummary(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response RecurringSummaryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if len(response.Upcoming) != 2 {
		t.Fatalf("Expected 2 upcoming payments, got %d", len(response.Upcoming))
	}
	if response.Upcoming[0].Name != "Rent" {
		t.Errorf("Expected nearest payment first, got %s", response.Upcoming[0].Name)
	}
	// 15000 monthly + 80000/12 yearly
	if response.TotalMonthlyCost != "21666.67" {
		t.Errorf("Expected total monthly cost '21666.67', got %s", response.TotalMonthlyCost)
	}
	if response.DaysToNextPayment == nil {
		t.Fatal("Expected days to next payment")
	}
	if *response.DaysToNextPayment != 10 {
		t.Errorf("Expected 10 days, got %d", *response.DaysToNextPayment)
	}
}

func TestGetRecurringSummary_LimitApplied(t *testing.T) {
	e := echo.New()
	recurringRepo, handler := newRecurringHandler()

	for i := int32(1); i <= 3; i++ {
		recurringRepo.AddPayment(&domain.RecurringPayment{
			ID: i, Name: "Payment", Amount: decimal.NewFromInt(100),
			Frequency: domain.FrequencyMonthly, IsActive: true, CategoryID: 1,
			NextPaymentDate: time.Date(2025, 7, int(i), 0, 0, 0, 0, time.UTC),
		})
	}

	req := httptest.NewRequest(http.MethodGet, "/api/recurring-payments/summary?date=2025-06-10&limit=2", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetRecurringSummary(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var response RecurringSummaryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(response.Upcoming) != 2 {
		t.Errorf("Expected 2 upcoming payments, got %d", len(response.Upcoming))
	}
}

func TestGetRecurringSummary_NegativeLimit(t *testing.T) {
	e := echo.New()
	_, handler := newRecurringHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/recurring-payments/summary?limit=-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetRecurringSummary(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestToggleActive_Success(t *testing.T) {
	e := echo.New()
	recurringRepo, handler := newRecurringHandler()
	recurringRepo.AddPayment(&domain.RecurringPayment{
		ID: 1, Name: "Netflix", Amount: decimal.NewFromInt(199),
		Frequency: domain.FrequencyMonthly, IsActive: true, CategoryID: 1,
		NextPaymentDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	})

	req := httptest.NewRequest(http.MethodPatch, "/api/recurring-payments/1/toggle-active", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := handler.ToggleActive(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var response RecurringResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.IsActive {
		t.Error("Expected payment to be inactive after toggle")
	}
}

func TestAdvanceRecurring_Success(t *testing.T) {
	e := echo.New()
	recurringRepo, handler := newRecurringHandler()
	recurringRepo.AddPayment(&domain.RecurringPayment{
		ID: 1, Name: "Rent", Amount: decimal.NewFromInt(15000),
		Frequency: domain.FrequencyMonthly, IsActive: true, CategoryID: 1,
		NextPaymentDate: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/recurring-payments/1/advance?date=2025-04-10", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := handler.AdvanceRecurring(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response RecurringResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.NextPaymentDate != "2025-05-05" {
		t.Errorf("Expected next payment date '2025-05-05', got %s", response.NextPaymentDate)
	}
}

func TestAdvanceRecurring_NotFound(t *testing.T) {
	e := echo.New()
	_, handler := newRecurringHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/recurring-payments/9/advance", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("9")

	if err := handler.AdvanceRecurring(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

func TestDeleteRecurring_Success(t *testing.T) {
	e := echo.New()
	recurringRepo, handler := newRecurringHandler()
	recurringRepo.AddPayment(&domain.RecurringPayment{
		ID: 1, Name: "Gone", Amount: decimal.NewFromInt(100),
		Frequency: domain.FrequencyMonthly, IsActive: true, CategoryID: 1,
		NextPaymentDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	})

	req := httptest.NewRequest(http.MethodDelete, "/api/recurring-payments/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := handler.DeleteRecurring(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", rec.Code)
	}
}
