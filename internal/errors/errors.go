package errors

import (
	"fmt"
)

type ErrorCode string

const (
	AccountNotFound      ErrorCode = "account_not_found"
	DuplicateAccount     ErrorCode = "duplicate_account"
	AuthenticationFailed ErrorCode = "authentication_failed"
	InvalidAmount        ErrorCode = "invalid_amount"
	InsufficientFunds    ErrorCode = "insufficient_funds"
	InvalidPIN           ErrorCode = "invalid_pin"
	InvalidInput         ErrorCode = "invalid_input"
	InternalError        ErrorCode = "internal_error"
)

type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches on the error code so errors.Is recognizes detailed copies of the
// predefined errors.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

func NewAppError(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func NewAppErrorf(code ErrorCode, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WithDetails returns a copy so the predefined errors stay untouched.
func (e *AppError) WithDetails(details string) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

// Predefined errors for common cases
var (
	ErrAccountNotFound      = NewAppError(AccountNotFound, "account not found")
	ErrDuplicateAccount     = NewAppError(DuplicateAccount, "account already exists")
	ErrAuthenticationFailed = NewAppError(AuthenticationFailed, "invalid account number or PIN")
	ErrInvalidAmount        = NewAppError(InvalidAmount, "amount must be greater than zero")
	ErrInsufficientFunds    = NewAppError(InsufficientFunds, "insufficient funds")
	ErrInvalidPIN           = NewAppError(InvalidPIN, "PIN must be at least 4 digits")
	ErrSessionClosed        = NewAppError(InvalidInput, "session is closed")
)
