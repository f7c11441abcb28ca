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

const dateLayout = "2006-01-02"

// TransactionHandler handles transaction HTTP requests
type TransactionHandler struct {
	transactionService *service.TransactionService
	publisher          websocket.EventPublisher
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService *service.TransactionService, publisher websocket.EventPublisher) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		publisher:          publisher,
	}
}

// TransactionRequest represents the create/update transaction request body
type TransactionRequest struct {
	Amount          string `json:"amount"`
	Description     string `json:"description"`
	TransactionType string `json:"transactionType"`
	TransactionDate string `json:"transactionDate"`
	CategoryID      int32  `json:"categoryId"`
}

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	ID              int32  `json:"id"`
	Amount          string `json:"amount"`
	Description     string `json:"description"`
	TransactionType string `json:"transactionType"`
	TransactionDate string `json:"transactionDate"`
	CategoryID      int32  `json:"categoryId"`
	CreatedAt       string `json:"createdAt"`
}

// CreateTransaction handles POST /api/transactions
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req TransactionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input, validationErr := h.parseInput(c, req)
	if input == nil {
		return validationErr
	}

	transaction, err := h.transactionService.CreateTransaction(service.CreateTransactionInput(*input))
	if err != nil {
		return h.handleServiceError(c, err, "create transaction")
	}

	log.Info().Int32("transaction_id", transaction.ID).Str("type", string(transaction.Type)).
		Str("amount", transaction.Amount.StringFixed(2)).Msg("Transaction created")
	h.publisher.Publish(websocket.TransactionCreated(toTransactionResponse(transaction)))

	return c.JSON(http.StatusCreated, toTransactionResponse(transaction))
}

// GetTransactions handles GET /api/transactions
func (h *TransactionHandler) GetTransactions(c echo.Context) error {
	var year, month *int
	if yearParam := c.QueryParam("year"); yearParam != "" {
		y, err := strconv.Atoi(yearParam)
		if err != nil {
			return NewValidationError(c, "Invalid year", nil)
		}
		year = &y
	}
	if monthParam := c.QueryParam("month"); monthParam != "" {
		m, err := strconv.Atoi(monthParam)
		if err != nil || m < 1 || m > 12 {
			return NewValidationError(c, "Invalid month", nil)
		}
		month = &m
	}
	// Month filtering needs both parts
	if (year == nil) != (month == nil) {
		return NewValidationError(c, "Both month and year are required for filtering", nil)
	}

	transactions, err := h.transactionService.ListTransactions(year, month)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list transactions")
		return NewInternalError(c, "Failed to list transactions")
	}

	response := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		response[i] = toTransactionResponse(t)
	}
	return c.JSON(http.StatusOK, response)
}

// UpdateTransaction handles PUT /api/transactions/:id
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid transaction ID", nil)
	}

	var req TransactionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input, validationErr := h.parseInput(c, req)
	if input == nil {
		return validationErr
	}

	transaction, err := h.transactionService.UpdateTransaction(int32(id), service.UpdateTransactionInput(*input))
	if err != nil {
		return h.handleServiceError(c, err, "update transaction")
	}

	log.Info().Int32("transaction_id", transaction.ID).Msg("Transaction updated")
	h.publisher.Publish(websocket.TransactionUpdated(toTransactionResponse(transaction)))

	return c.JSON(http.StatusOK, toTransactionResponse(transaction))
}

// DeleteTransaction handles DELETE /api/transactions/:id
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid transaction ID", nil)
	}

	if err := h.transactionService.DeleteTransaction(int32(id)); err != nil {
		return h.handleServiceError(c, err, "delete transaction")
	}

	log.Info().Int("transaction_id", id).Msg("Transaction deleted")
	h.publisher.Publish(websocket.TransactionDeleted(map[string]int{"id": id}))

	return c.NoContent(http.StatusNoContent)
}

// parseInput converts the wire representation into service input. On a
// malformed field it writes the validation problem and returns a nil input.
func (h *TransactionHandler) parseInput(c echo.Context, req TransactionRequest) (*service.CreateTransactionInput, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, NewValidationError(c, "Invalid amount", []ValidationError{
			{Field: "amount", Message: "Must be a valid decimal number"},
		})
	}

	var transactionDate time.Time
	if req.TransactionDate != "" {
		transactionDate, err = time.Parse(dateLayout, req.TransactionDate)
		if err != nil {
			return nil, NewValidationError(c, "Invalid transaction date", []ValidationError{
				{Field: "transactionDate", Message: "Must be a YYYY-MM-DD date"},
			})
		}
	}

	return &service.CreateTransactionInput{
		Amount:          amount,
		Description:     req.Description,
		Type:            domain.TransactionType(req.TransactionType),
		TransactionDate: transactionDate,
		CategoryID:      req.CategoryID,
	}, nil
}

// handleServiceError maps transaction service errors to problem responses
func (h *TransactionHandler) handleServiceError(c echo.Context, err error, operation string) error {
	switch {
	case errors.Is(err, domain.ErrTransactionNotFound):
		return NewNotFoundError(c, "Transaction not found")
	case errors.Is(err, domain.ErrInvalidAmount):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "amount", Message: "Amount must be positive"},
		})
	case errors.Is(err, domain.ErrDescriptionRequired):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "description", Message: "Description is required"},
		})
	case errors.Is(err, domain.ErrInvalidTransactionType):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "transactionType", Message: "Type must be 'income' or 'expense'"},
		})
	case errors.Is(err, domain.ErrCategoryNotFound):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "categoryId", Message: "Category not found"},
		})
	}
	log.Error().Err(err).Str("operation", operation).Msg("Failed to " + operation)
	return NewInternalError(c, "Failed to "+operation)
}

func toTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              t.ID,
		Amount:          t.Amount.StringFixed(2),
		Description:     t.Description,
		TransactionType: string(t.Type),
		TransactionDate: t.TransactionDate.Format(dateLayout),
		CategoryID:      t.CategoryID,
		CreatedAt:       t.CreatedAt.Format(time.RFC3339),
	}
}
