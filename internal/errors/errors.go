// Package errors defines the structured error type shared by the ops,
// db, and web layers.
package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents an application error code.
type ErrorCode string

const (
	ErrInvalidRequest ErrorCode = "INVALID_REQUEST" // 400
	ErrValidation     ErrorCode = "VALIDATION"      // 422
	ErrNotFound       ErrorCode = "NOT_FOUND"       // 404
	ErrStore          ErrorCode = "STORE"           // 500, store unreachable/corrupt
	ErrInternal       ErrorCode = "INTERNAL"        // 500
)

// AppError represents a structured error with code, status, and details.
type AppError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *AppError {
	return &AppError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewValidation creates a 422 error naming the missing or invalid fields.
// No partial write occurs when this is returned.
func NewValidation(fields []string) *AppError {
	return &AppError{
		Code:    ErrValidation,
		Status:  422,
		Message: fmt.Sprintf("required fields missing or invalid: %s", strings.Join(fields, ", ")),
		Details: map[string]any{"fields": fields},
	}
}

// NewNotFound creates a 404 error for a row that does not exist.
func NewNotFound(what string) *AppError {
	return &AppError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("not found: %s", what),
		Details: map[string]any{"identifier": what},
	}
}

// NewStore creates a 500 error for store open/read/write failures.
// This is the only condition allowed to propagate as a hard failure.
func NewStore(err error) *AppError {
	msg := "store unavailable"
	if err != nil {
		msg = err.Error()
	}
	return &AppError{
		Code:    ErrStore,
		Status:  500,
		Message: msg,
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *AppError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &AppError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is an AppError with the given code.
func Is(err error, code ErrorCode) bool {
	if aErr, ok := err.(*AppError); ok {
		return aErr.Code == code
	}
	return false
}

// Fields returns the field list attached to a validation error, or nil.
func Fields(err error) []string {
	aErr, ok := err.(*AppError)
	if !ok || aErr.Details == nil {
		return nil
	}
	fields, _ := aErr.Details["fields"].([]string)
	return fields
}
