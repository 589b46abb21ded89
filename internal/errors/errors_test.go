package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "employee"}
		assert.Equal(t, "employee not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "employee"}
		err2 := &NotFoundError{Entity: "employee"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrEmployeeNotFound, ErrEmployeeNotFound))
		assert.False(t, errors.Is(ErrEmployeeNotFound, ErrWorkScheduleNotFound))
	})

	t.Run("IsNotFound sees through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("load profile: %w", ErrEmployeeNotFound)
		assert.True(t, IsNotFound(wrapped))
		assert.False(t, IsNotFound(ErrAmbiguousMatch))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "workMode", Message: "unknown value"}
		assert.Equal(t, "validation error: workMode - unknown value", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid draft"}
		assert.Equal(t, "validation error: invalid draft", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("fullName", "required")))
		assert.False(t, IsValidation(ErrEmployeeNotFound))
	})
}

func TestStoreErrors(t *testing.T) {
	t.Run("QueryError unwraps the cause", func(t *testing.T) {
		err := NewQueryError("presences", ErrAmbiguousMatch)
		assert.Equal(t, "query presences: more than one record matches a single-record query", err.Error())
		assert.True(t, errors.Is(err, ErrAmbiguousMatch))
		assert.True(t, IsQuery(err))
		assert.False(t, IsUpdate(err))
	})

	t.Run("UpdateError unwraps the cause", func(t *testing.T) {
		err := NewUpdateError("employees", ErrEmployeeNotFound)
		assert.True(t, IsUpdate(err))
		assert.True(t, IsNotFound(err))
	})

	t.Run("MalformedQuery keeps the sentinel", func(t *testing.T) {
		err := MalformedQuery("unknown field %q", "salary")
		assert.True(t, errors.Is(err, ErrMalformedQuery))
		assert.Contains(t, err.Error(), `unknown field "salary"`)
	})
}

func TestAuthenticationError(t *testing.T) {
	assert.True(t, IsAuthentication(ErrInvalidCredentials))
	assert.True(t, IsAuthentication(NewAuthenticationError("token expired")))
	assert.False(t, IsAuthentication(ErrNoSession))
	assert.Equal(t, "session has expired or was signed out", ErrSessionExpired.Error())
}
