package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/finanzas-gatunas/gatunas-backend/internal/domain"
	"github.com/finanzas-gatunas/gatunas-backend/internal/service"
	"github.com/finanzas-gatunas/gatunas-backend/internal/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// RecurringHandler handles recurring payment HTTP requests
type RecurringHandler struct {
	recurringService *service.RecurringService
	publisher        websocket.EventPublisher
}

// NewRecurringHandler creates a new RecurringHandler
func NewRecurringHandler(recurringService *service.RecurringService, publisher websocket.EventPublisher) *RecurringHandler {
	return &RecurringHandler{
		recurringService: recurringService,
		publisher:        publisher,
	}
}

// RecurringRequest represents the create/update recurring payment request body
type RecurringRequest struct {
	Name            string `json:"name"`
	Amount          string `json:"amount"`
	Description     string `json:"description"`
	Frequency       string `json:"frequency"`
	NextPaymentDate string `json:"nextPaymentDate"`
	IsActive        *bool  `json:"isActive,omitempty"`
	CategoryID      int32  `json:"categoryId"`
}

// RecurringResponse represents a recurring payment in API responses
type RecurringResponse struct {
	ID              int32  `json:"id"`
	Name            string `json:"name"`
	Amount          string `json:"amount"`
	Description     string `json:"description"`
	Frequency       string `json:"frequency"`
	NextPaymentDate string `json:"nextPaymentDate"`
	IsActive        bool   `json:"isActive"`
	CategoryID      int32  `json:"categoryId"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

// RecurringSummaryResponse represents the derived recurring payment overview
type RecurringSummaryResponse struct {
	Upcoming          []RecurringResponse `json:"upcoming"`
	TotalMonthlyCost  string              `json:"totalMonthlyCost"`
	DaysToNextPayment *int                `json:"daysToNextPayment"`
}

// CreateRecurring handles POST /api/recurring-payments
func (h *RecurringHandler) CreateRecurring(c echo.Context) error {
	var req RecurringRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return NewValidationError(c, "Invalid amount", []ValidationError{
			{Field: "amount", Message: "Must be a valid decimal number"},
		})
	}

	var nextDate time.Time
	if req.NextPaymentDate != "" {
		nextDate, err = time.Parse(dateLayout, req.NextPaymentDate)
		if err != nil {
			return NewValidationError(c, "Invalid date", []ValidationError{
				{Field: "nextPaymentDate", Message: "Must be a YYYY-MM-DD date"},
			})
		}
	}

	payment, err := h.recurringService.CreateRecurring(service.CreateRecurringInput{
		Name:            req.Name,
		Amount:          amount,
		Description:     req.Description,
		Frequency:       domain.Frequency(req.Frequency),
		NextPaymentDate: nextDate,
		CategoryID:      req.CategoryID,
	})
	if err != nil {
		return h.handleServiceError(c, err, "create recurring payment")
	}

	log.Info().Int32("payment_id", payment.ID).Str("name", payment.Name).
		Str("frequency", string(payment.Frequency)).Msg("Recurring payment created")
	h.publisher.Publish(websocket.RecurringCreated(toRecurringResponse(payment)))

	return c.JSON(http.StatusCreated, toRecurringResponse(payment))
}

// GetRecurringPayments handles GET /api/recurring-payments
func (h *RecurringHandler) GetRecurringPayments(c echo.Context) error {
	activeOnly := c.QueryParam("active") == "true"

	payments, err := h.recurringService.ListRecurring(activeOnly)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list recurring payments")
		return NewInternalError(c, "Failed to list recurring payments")
	}

	response := make([]RecurringResponse, len(payments))
	for i, p := range payments {
		response[i] = toRecurringResponse(p)
	}
	return c.JSON(http.StatusOK, response)
}

// GetRecurringSummary handles GET /api/recurring-payments/summary
//
// The reference date defaults to today and is resolved here, at the outermost
// boundary, so everything below stays deterministic.
func (h *RecurringHandler) GetRecurringSummary(c echo.Context) error {
	referenceDate := time.Now()
	if dateParam := c.QueryParam("date"); dateParam != "" {
		parsed, err := time.Parse(dateLayout, dateParam)
		if err != nil {
			return NewValidationError(c, "Invalid reference date", []ValidationError{
				{Field: "date", Message: "Must be a YYYY-MM-DD date"},
			})
		}
		referenceDate = parsed
	}

	limit := service.DefaultUpcomingLimit
	if limitParam := c.QueryParam("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil {
			return NewValidationError(c, "Invalid limit", []ValidationError{
				{Field: "limit", Message: "Must be an integer"},
			})
		}
		limit = parsed
	}

	summary, err := h.recurringService.GetSummary(referenceDate, limit)
	if err != nil {
		return h.handleServiceError(c, err, "compute recurring summary")
	}

	upcoming := make([]RecurringResponse, len(summary.Upcoming))
	for i := range summary.Upcoming {
		upcoming[i] = toRecurringResponse(&summary.Upcoming[i])
	}

	return c.JSON(http.StatusOK, RecurringSummaryResponse{
		Upcoming:          upcoming,
		TotalMonthlyCost:  summary.TotalMonthlyCost.StringFixed(2),
		DaysToNextPayment: summary.DaysToNextPayment,
	})
}

// UpdateRecurring handles PUT /api/recurring-payments/:id
func (h *RecurringHandler) UpdateRecurring(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid recurring payment ID", nil)
	}

	var req RecurringRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return NewValidationError(c, "Invalid amount", []ValidationError{
			{Field: "amount", Message: "Must be a valid decimal number"},
		})
	}

	var nextDate time.Time
	if req.NextPaymentDate != "" {
		nextDate, err = time.Parse(dateLayout, req.NextPaymentDate)
		if err != nil {
			return NewValidationError(c, "Invalid date", []ValidationError{
				{Field: "nextPaymentDate", Message: "Must be a YYYY-MM-DD date"},
			})
		}
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	payment, err := h.recurringService.UpdateRecurring(int32(id), service.UpdateRecurringInput{
		Name:            req.Name,
		Amount:          amount,
		Description:     req.Description,
		Frequency:       domain.Frequency(req.Frequency),
		NextPaymentDate: nextDate,
		IsActive:        isActive,
		CategoryID:      req.CategoryID,
	})
	if err != nil {
		return h.handleServiceError(c, err, "update recurring payment")
	}

	log.Info().Int32("payment_id", payment.ID).Str("name", payment.Name).Msg("Recurring payment updated")
	h.publisher.Publish(websocket.RecurringUpdated(toRecurringResponse(payment)))

	return c.JSON(http.StatusOK, toRecurringResponse(payment))
}

// DeleteRecurring handles DELETE /api/recurring-payments/:id
func (h *RecurringHandler) DeleteRecurring(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid recurring payment ID", nil)
	}

	if err := h.recurringService.DeleteRecurring(int32(id)); err != nil {
		return h.handleServiceError(c, err, "delete recurring payment")
	}

	log.Info().Int("payment_id", id).Msg("Recurring payment deleted")
	h.publisher.Publish(websocket.RecurringDeleted(map[string]int{"id": id}))

	return c.NoContent(http.StatusNoContent)
}

// ToggleActive handles PATCH /api/recurring-payments/:id/toggle-active
func (h *RecurringHandler) ToggleActive(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid recurring payment ID", nil)
	}

	payment, err := h.recurringService.ToggleActive(int32(id))
	if err != nil {
		return h.handleServiceError(c, err, "toggle recurring payment")
	}

	status := "deactivated"
	if payment.IsActive {
		status = "activated"
	}
	log.Info().Int32("payment_id", payment.ID).Str("status", status).Msg("Recurring payment toggled")
	h.publisher.Publish(websocket.RecurringUpdated(toRecurringResponse(payment)))

	return c.JSON(http.StatusOK, toRecurringResponse(payment))
}

// AdvanceRecurring handles POST /api/recurring-payments/:id/advance
//
// Marks the current due date as handled and moves the payment to its next
// occurrence past the reference date (today unless specified).
func (h *RecurringHandler) AdvanceRecurring(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid recurring payment ID", nil)
	}

	referenceDate := time.Now()
	if dateParam := c.QueryParam("date"); dateParam != "" {
		parsed, err := time.Parse(dateLayout, dateParam)
		if err != nil {
			return NewValidationError(c, "Invalid reference date", []ValidationError{
				{Field: "date", Message: "Must be a YYYY-MM-DD date"},
			})
		}
		referenceDate = parsed
	}

	payment, err := h.recurringService.AdvanceRecurring(int32(id), referenceDate)
	if err != nil {
		return h.handleServiceError(c, err, "advance recurring payment")
	}

	log.Info().Int32("payment_id", payment.ID).
		Str("next_payment_date", payment.NextPaymentDate.Format(dateLayout)).
		Msg("Recurring payment advanced")
	h.publisher.Publish(websocket.RecurringAdvanced(toRecurringResponse(payment)))

	return c.JSON(http.StatusOK, toRecurringResponse(payment))
}

// handleServiceError maps recurring service errors to problem responses
func (h *RecurringHandler) handleServiceError(c echo.Context, err error, operation string) error {
	switch {
	case errors.Is(err, domain.ErrPaymentNotFound):
		return NewNotFoundError(c, "Recurring payment not found")
	case errors.Is(err, domain.ErrNameRequired):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "name", Message: "Name is required"},
		})
	case errors.Is(err, domain.ErrNameTooLong):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "name", Message: "Name must be 100 characters or less"},
		})
	case errors.Is(err, domain.ErrInvalidAmount):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "amount", Message: "Amount must be positive"},
		})
	case errors.Is(err, domain.ErrInvalidFrequency):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "frequency", Message: "Frequency must be 'daily', 'weekly', 'monthly' or 'yearly'"},
		})
	case errors.Is(err, domain.ErrInvalidLimit):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "limit", Message: "Limit must not be negative"},
		})
	case errors.Is(err, domain.ErrCategoryNotFound):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "categoryId", Message: "Category not found"},
		})
	}
	log.Error().Err(err).Str("operation", operation).Msg("Failed to " + operation)
	return NewInternalError(c, "Failed to "+operation)
}

func toRecurringResponse(p *domain.RecurringPayment) RecurringResponse {
	return RecurringResponse{
		ID:              p.ID,
		Name:            p.Name,
		Amount:          p.Amount.StringFixed(2),
		Description:     p.Description,
		Frequency:       string(p.Frequency),
		NextPaymentDate: p.NextPaymentDate.Format(dateLayout),
		IsActive:        p.IsActive,
		CategoryID:      p.CategoryID,
		CreatedAt:       p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       p.UpdatedAt.Format(time.RFC3339),
	}
}
