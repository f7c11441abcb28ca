package domain

import "errors"

// Domain errors
var (
	ErrNotFound               = errors.New("resource not found")
	ErrCategoryNotFound       = errors.New("category not found")
	ErrTransactionNotFound    = errors.New("transaction not found")
	ErrPaymentNotFound        = errors.New("recurring payment not found")
	ErrNameRequired           = errors.New("name is required")
	ErrNameTooLong            = errors.New("name exceeds maximum length")
	ErrDescriptionRequired    = errors.New("description is required")
	ErrInvalidAmount          = errors.New("amount must be positive")
	ErrInvalidFrequency       = errors.New("invalid frequency")
	ErrInvalidLimit           = errors.New("limit must not be negative")
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidColor           = errors.New("invalid color")
	ErrInternalError          = errors.New("internal error")
)

// Validation constants
const (
	MaxNameLength = 100
)
