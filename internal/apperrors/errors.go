package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicateCode indicates that an account with the same code already exists.
var ErrDuplicateCode = errors.New("account code already exists")

// ErrUnbalancedEntry indicates that the debit and credit sums of an entry differ.
var ErrUnbalancedEntry = errors.New("entry debits and credits do not balance")

// ErrUnknownAccount indicates that a journal line references an account that does not exist.
var ErrUnknownAccount = errors.New("unknown account")

// ErrInvalidAmount indicates a negative or over-precise monetary amount.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrAccountInUse indicates that an account cannot be deleted because journal lines reference it.
var ErrAccountInUse = errors.New("account is referenced by journal lines")

// ErrStorage marks failures of the underlying store rather than of the request.
var ErrStorage = errors.New("storage unavailable")

// AppError carries an HTTP-like status code alongside an underlying error.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError.
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

// Is reports server-side AppErrors as storage failures.
func (e *AppError) Is(target error) bool {
	return target == ErrStorage && e.Code >= 500
}
