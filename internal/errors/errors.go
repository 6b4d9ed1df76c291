package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrUnauthenticated is returned when a bearer token is missing, invalid or expired,
	// or when its subject no longer resolves to a user.
	ErrUnauthenticated = errors.New("could not validate credentials")
	// ErrInactiveUser is returned when a valid token belongs to a deactivated user.
	ErrInactiveUser = errors.New("inactive user")
	// ErrInvalidCredentials is returned when username or password is incorrect.
	ErrInvalidCredentials = errors.New("incorrect username or password")
)

// NotFoundError reports a referenced entity that does not exist.
type NotFoundError struct {
	Entity string
	ID     any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %v not found", e.Entity, e.ID)
}

// NotFound builds a NotFoundError.
func NotFound(entity string, id any) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// ConflictError reports a uniqueness violation on a natural key.
type ConflictError struct {
	Field string
	Value string
}

func (e *ConflictError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s already exists", e.Field)
	}
	return fmt.Sprintf("%s %q already exists", e.Field, e.Value)
}

// Conflict builds a ConflictError.
func Conflict(field, value string) *ConflictError {
	return &ConflictError{Field: field, Value: value}
}

// InUseError reports a delete blocked by rows that still reference the entity.
type InUseError struct {
	Entity string
	ID     any
}

func (e *InUseError) Error() string {
	return fmt.Sprintf("%s with id %v is still referenced", e.Entity, e.ID)
}

// ValidationError carries one message per offending field path.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
	Fields     map[string]string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error:  e.Message,
		Code:   e.Code,
		Fields: e.Fields,
	}
}

// Unauthorized reports whether the status requires a WWW-Authenticate challenge.
func (e *HTTPError) Unauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var (
		notFound   *NotFoundError
		conflict   *ConflictError
		inUse      *InUseError
		validation *ValidationError
	)

	switch {
	case errors.Is(err, ErrUnauthenticated), errors.Is(err, ErrInactiveUser):
		// Never tell the caller which check failed.
		return NewHTTPError(http.StatusUnauthorized, ErrUnauthenticated.Error(), "UNAUTHENTICATED")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.As(err, &notFound):
		code := strings.ToUpper(strings.ReplaceAll(notFound.Entity, " ", "_")) + "_NOT_FOUND"
		return NewHTTPError(http.StatusNotFound, notFound.Error(), code)
	case errors.As(err, &conflict):
		return NewHTTPError(http.StatusConflict, conflict.Error(), "CONFLICT")
	case errors.As(err, &inUse):
		return NewHTTPError(http.StatusConflict, inUse.Error(), "RESOURCE_IN_USE")
	case errors.As(err, &validation):
		httpErr := NewHTTPError(http.StatusUnprocessableEntity, "validation failed", "VALIDATION_ERROR")
		httpErr.Fields = validation.Fields
		return httpErr
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
