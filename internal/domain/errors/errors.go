package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrAlreadyExists      = errors.New("resource already exists")
	ErrConflict           = errors.New("persistence conflict")
	ErrInvalidInput       = errors.New("invalid input")
	ErrBadRequest         = errors.New("bad request")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrRegistrationClosed = errors.New("tournament registration closed")
	ErrTournamentFull     = errors.New("tournament is full")
	ErrOutOfStock         = errors.New("product out of stock")
)

// Unit-of-work state errors
var (
	ErrTransactionActive = errors.New("transaction already active")
	ErrNoTransaction     = errors.New("no active transaction")
	ErrUnitOfWorkClosed  = errors.New("unit of work is closed")
)

// Machine-readable error codes returned to API clients
const (
	CodeNotFound      = "NOT_FOUND"
	CodeConflict      = "CONFLICT"
	CodeBadRequest    = "BAD_REQUEST"
	CodeInvalidInput  = "INVALID_INPUT"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeForbidden     = "FORBIDDEN"
	CodeInternalError = "INTERNAL_ERROR"
)

// AppError represents an application error with HTTP status and a stable code
type AppError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, code, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, CodeNotFound, message, ErrNotFound)
}

func Conflict(message string) *AppError {
	return NewAppError(http.StatusConflict, CodeConflict, message, ErrConflict)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, CodeInvalidInput, message, ErrInvalidInput)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, CodeUnauthorized, message, ErrUnauthorized)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, CodeForbidden, message, ErrForbidden)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, CodeInternalError, "internal server error", err)
}

func InternalServerError(message string) *AppError {
	return NewAppError(http.StatusInternalServerError, CodeInternalError, message, nil)
}

// NewError wraps a sentinel with a caller-facing message. The HTTP status
// and code follow the sentinel, so "already registered" surfaces as a
// conflict rather than a generic bad request.
func NewError(message string, err error) error {
	status, code := classify(err)
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, CodeNotFound
	case errors.Is(err, ErrAlreadyExists),
		errors.Is(err, ErrConflict),
		errors.Is(err, ErrTournamentFull),
		errors.Is(err, ErrRegistrationClosed),
		errors.Is(err, ErrOutOfStock):
		return http.StatusConflict, CodeConflict
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrTokenExpired):
		return http.StatusUnauthorized, CodeUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden, CodeForbidden
	default:
		return http.StatusBadRequest, CodeInvalidInput
	}
}
