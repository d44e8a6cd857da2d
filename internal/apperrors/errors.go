package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrCommitBlocked indicates that a pending batch failed the verification
// gate and cannot be committed until every row passes every check.
var ErrCommitBlocked = fmt.Errorf("pending batch has invalid rows: %w", ErrValidation)

// ErrUnauthorized indicates the caller failed authentication.
var ErrUnauthorized = errors.New("unauthorized")

// ErrEmptyBatch indicates an operation that requires a staged batch found none.
var ErrEmptyBatch = errors.New("no pending transactions")

// ErrStoreWrite indicates the underlying persistence rejected a write; no
// partial data was persisted.
var ErrStoreWrite = errors.New("store write failed")

// AppError carries an HTTP-ish status code alongside the wrapped cause. It
// is used at the repository boundary for infrastructure failures.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError builds an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}
