package apperrors

// Error codes grouped by domain. Codes are part of the API contract:
// clients switch on them, humans read the message.
const (
	// Authentication and authorization
	CodeAuthFailure     ErrorCode = "AUTH_FAILURE"
	CodeUnauthenticated ErrorCode = "UNAUTHENTICATED"
	CodeForbidden       ErrorCode = "FORBIDDEN"
	CodeInvalidToken    ErrorCode = "INVALID_TOKEN"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeWeakPassword     ErrorCode = "WEAK_PASSWORD"
	CodeInvalidUserRole  ErrorCode = "INVALID_USER_ROLE"
	CodeInvalidFilter    ErrorCode = "INVALID_FILTER"

	// Resources
	CodeNotFound        ErrorCode = "NOT_FOUND"
	CodeProfileNotFound ErrorCode = "PROFILE_NOT_FOUND"

	// Business logic
	CodeDuplicateEmail    ErrorCode = "DUPLICATE_EMAIL"
	CodeAccountDisabled   ErrorCode = "ACCOUNT_DISABLED"
	CodeAlreadyRegistered ErrorCode = "ALREADY_REGISTERED"
	CodeAlreadyApplied    ErrorCode = "ALREADY_APPLIED"
	CodeEventFull         ErrorCode = "EVENT_FULL"
	CodeEventClosed       ErrorCode = "EVENT_CLOSED"
	CodeJobClosed         ErrorCode = "JOB_CLOSED"

	// System
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"
)
