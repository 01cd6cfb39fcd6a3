package shared

import "errors"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Error codes shared by the whole domain
const (
	CodeNotFound       = "NOT_FOUND"
	CodeValidation     = "VALIDATION_ERROR"
	CodeIntegrityGuard = "INTEGRITY_GUARD"
	CodeAlreadyExists  = "ALREADY_EXISTS"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeForbidden      = "FORBIDDEN"
	CodeInvalidState   = "INVALID_STATE"
)

// Common domain errors
var (
	ErrNotFound      = NewDomainError(CodeNotFound, "Resource not found")
	ErrAlreadyExists = NewDomainError(CodeAlreadyExists, "Resource already exists")
	ErrInvalidInput  = NewDomainError(CodeValidation, "Invalid input provided")
	ErrUnauthorized  = NewDomainError(CodeUnauthorized, "Authentication credentials were not provided")
	ErrForbidden     = NewDomainError(CodeForbidden, "You do not have permission to perform this action")
	ErrInvalidState  = NewDomainError(CodeInvalidState, "Operation not allowed in current state")
)

// NewValidationError creates an error for bad input shape or values
func NewValidationError(message string) *DomainError {
	return NewDomainError(CodeValidation, message)
}

// NewIntegrityGuardError creates an error for a destructive operation blocked by dependent rows
func NewIntegrityGuardError(message string) *DomainError {
	return NewDomainError(CodeIntegrityGuard, message)
}

// NewNotFoundError creates a not-found error with a specific message
func NewNotFoundError(message string) *DomainError {
	return NewDomainError(CodeNotFound, message)
}

// HasCode reports whether err wraps a DomainError with the given code
func HasCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

// IsNotFound reports whether err is a not-found domain error
func IsNotFound(err error) bool {
	return HasCode(err, CodeNotFound)
}
