package domain

import (
	"fmt"
	"time"
)

// APIError represents a standardized error response
type APIError struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Error codes for different failure scenarios
const (
	ErrInvalidInput    = "INVALID_INPUT"
	ErrSessionNotFound = "SESSION_NOT_FOUND"
	ErrNotComplete     = "CONSULTATION_NOT_COMPLETE"
	ErrDuplicateEntry  = "DUPLICATE_ENTRY"
	ErrRateLimit       = "RATE_LIMIT_EXCEEDED"
	ErrInternalServer  = "INTERNAL_SERVER_ERROR"
)

// ValidationError represents an answer that violates the active step's
// declared kind, range or choice set. It is recoverable: the caller
// re-prompts the same step and no state advances.
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value"`
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

// DuplicateEntryError signals a progress check-in already recorded for
// that calendar date. Recoverable: the log is left unchanged.
type DuplicateEntryError struct {
	Date string `json:"date"`
}

// Error implements the error interface
func (e *DuplicateEntryError) Error() string {
	return fmt.Sprintf("progress entry already exists for %s", e.Date)
}

// NewAPIError creates a new APIError with timestamp
func NewAPIError(code, message, details, requestID string) *APIError {
	return &APIError{
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now().UTC(),
		RequestID: requestID,
	}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, message string, value interface{}) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Value:   value,
	}
}

// NewDuplicateEntryError creates a new DuplicateEntryError
func NewDuplicateEntryError(date time.Time) *DuplicateEntryError {
	return &DuplicateEntryError{Date: date.Format("2006-01-02")}
}
