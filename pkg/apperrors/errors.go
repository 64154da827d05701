package apperrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode is a stable machine-readable error identifier.
type ErrorCode string

// AppError is the application error carried from services up to the
// HTTP boundary. HTTPCode and the wrapped Err never leave the process.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

func (e *AppError) WithError(err error) *AppError {
	clone := *e
	clone.Err = err
	return &clone
}

// MarshalJSON hides Err and HTTPCode from responses.
func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

// Is wraps the standard errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As wraps the standard errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// AsAppError extracts an *AppError from an error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Predefined errors
var (
	// Authentication. ErrAuthFailure is deliberately the single shape for
	// unknown email, wrong password and disabled account on login, so the
	// endpoint cannot be used to enumerate accounts.
	ErrAuthFailure     = New(CodeAuthFailure, "Invalid email or password", http.StatusUnauthorized)
	ErrUnauthenticated = New(CodeUnauthenticated, "Authentication required", http.StatusUnauthorized)
	ErrForbidden       = New(CodeForbidden, "Access denied", http.StatusForbidden)
	ErrInvalidToken    = New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)

	// Users
	ErrUserNotFound    = New(CodeNotFound, "User not found", http.StatusNotFound)
	ErrDuplicateEmail  = New(CodeDuplicateEmail, "Email already registered", http.StatusConflict)
	ErrWeakPassword    = New(CodeWeakPassword, "Password does not meet the minimum strength policy", http.StatusUnprocessableEntity)
	ErrInvalidUserRole = New(CodeInvalidUserRole, "Invalid user role", http.StatusBadRequest)
	ErrAccountDisabled = New(CodeAccountDisabled, "Account is disabled", http.StatusForbidden)

	// Profiles
	ErrProfileNotFound = New(CodeProfileNotFound, "Profile not found", http.StatusNotFound)

	// Validation / search
	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)
	ErrInvalidFilter    = New(CodeInvalidFilter, "Invalid search filter", http.StatusBadRequest)

	// Events
	ErrEventNotFound     = New(CodeNotFound, "Event not found", http.StatusNotFound)
	ErrEventFull         = New(CodeEventFull, "Event has reached maximum attendees", http.StatusConflict)
	ErrEventClosed       = New(CodeEventClosed, "Event is not open for registration", http.StatusUnprocessableEntity)
	ErrAlreadyRegistered = New(CodeAlreadyRegistered, "Already registered for this event", http.StatusConflict)

	// Jobs
	ErrJobNotFound    = New(CodeNotFound, "Job posting not found", http.StatusNotFound)
	ErrJobClosed      = New(CodeJobClosed, "Job posting is no longer accepting applications", http.StatusUnprocessableEntity)
	ErrAlreadyApplied = New(CodeAlreadyApplied, "Already applied to this job", http.StatusConflict)
)

// Helpers for errors built with details attached.

func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

func FilterError(details interface{}) *AppError {
	return ErrInvalidFilter.WithDetails(details)
}

func NotFound(resource string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", resource), http.StatusNotFound)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthenticated, message, http.StatusUnauthorized)
}

func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}
