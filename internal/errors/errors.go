package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// QueryError wraps a failed read against the store
type QueryError struct {
	Collection string
	Err        error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query %s: %v", e.Collection, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// UpdateError wraps a rejected partial update
type UpdateError struct {
	Collection string
	Err        error
}

func (e *UpdateError) Error() string {
	return fmt.Sprintf("update %s: %v", e.Collection, e.Err)
}

func (e *UpdateError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrEmployeeNotFound     = &NotFoundError{Entity: "employee"}
	ErrWorkScheduleNotFound = &NotFoundError{Entity: "work schedule"}
	ErrRecordNotFound       = &NotFoundError{Entity: "record"}
)

// Store Errors
var (
	ErrAmbiguousMatch = errors.New("more than one record matches a single-record query")
	ErrMalformedQuery = errors.New("malformed query")
)

// Session and Screen Errors
var (
	ErrNoSession          = errors.New("no signed-in employee")
	ErrNotEditing         = errors.New("profile is not in edit mode")
	ErrProfileNotLoaded   = errors.New("profile has not been loaded")
	ErrStaleResponse      = errors.New("response superseded by a newer request")
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrSessionExpired     = &AuthenticationError{Message: "session has expired or was signed out"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsQuery checks if an error is a QueryError
func IsQuery(err error) bool {
	var queryErr *QueryError
	return errors.As(err, &queryErr)
}

// IsUpdate checks if an error is an UpdateError
func IsUpdate(err error) bool {
	var updateErr *UpdateError
	return errors.As(err, &updateErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewQueryError wraps err as a failed read on collection
func NewQueryError(collection string, err error) error {
	return &QueryError{Collection: collection, Err: err}
}

// NewUpdateError wraps err as a rejected update on collection
func NewUpdateError(collection string, err error) error {
	return &UpdateError{Collection: collection, Err: err}
}

// MalformedQuery builds an error wrapping ErrMalformedQuery with detail
func MalformedQuery(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrMalformedQuery, fmt.Sprintf(format, args...))
}
