// Package apperror provides the typed error taxonomy shared by the
// qualification core and translated to HTTP statuses by the server layer.
package apperror

import (
	"errors"
	"fmt"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeNotFound          ErrorCode = "NOT_FOUND"
	ErrCodeSessionNotFound   ErrorCode = "SESSION_NOT_FOUND"
	ErrCodeIncompleteSession ErrorCode = "INCOMPLETE_SESSION"
	ErrCodeStepOutOfOrder    ErrorCode = "STEP_OUT_OF_ORDER"
	ErrCodeInvalidRequest    ErrorCode = "INVALID_REQUEST"
)

// AppError is a structured application error.
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewNotFound flags a missing category or step. Never used for option lookup
// misses, which are permissively ignored by the extractors.
func NewNotFound(format string, args ...interface{}) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// NewSessionNotFound flags operations on an unknown or expired session.
// Callers surface this as a "please restart qualification" condition.
func NewSessionNotFound(sessionId string) *AppError {
	return &AppError{Code: ErrCodeSessionNotFound, Message: fmt.Sprintf("qualification session %s not found", sessionId)}
}

// NewIncompleteSession flags a recommendations request before completion.
func NewIncompleteSession(sessionId string) *AppError {
	return &AppError{Code: ErrCodeIncompleteSession, Message: fmt.Sprintf("qualification session %s is not completed yet", sessionId)}
}

// NewStepOutOfOrder flags an answer whose step does not match the cursor.
func NewStepOutOfOrder(got, want int) *AppError {
	return &AppError{Code: ErrCodeStepOutOfOrder, Message: fmt.Sprintf("received answer for step %d, expected step %d", got, want)}
}

// NewInvalidRequest flags a malformed request payload.
func NewInvalidRequest(format string, args ...interface{}) *AppError {
	return &AppError{Code: ErrCodeInvalidRequest, Message: fmt.Sprintf(format, args...)}
}

// Is reports whether err is an AppError with the given code.
func Is(err error, code ErrorCode) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
