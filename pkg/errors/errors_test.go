package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsCarryStatus(t *testing.T) {
	tests := []struct {
		err    *AppError
		status int
		typ    ErrorType
	}{
		{NewValidationError("bad input"), http.StatusBadRequest, ErrorTypeValidation},
		{NewNotFoundError("user"), http.StatusNotFound, ErrorTypeNotFound},
		{NewConflictError("duplicate"), http.StatusConflict, ErrorTypeConflict},
		{NewForbiddenError("nope"), http.StatusForbidden, ErrorTypeForbidden},
		{NewInternalError("boom"), http.StatusInternalServerError, ErrorTypeInternal},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, tt.err.HTTPStatus)
		assert.Equal(t, tt.typ, tt.err.Type)
	}
}

func TestNotFoundMessageNamesResource(t *testing.T) {
	err := NewNotFoundError("establishment")
	assert.Equal(t, "establishment not found", err.Message)
}

func TestUnwrapAndAs(t *testing.T) {
	cause := fmt.Errorf("connection reset")
	err := NewInternalError("store call failed").WithCause(cause)

	assert.ErrorIs(t, err, cause)

	wrapped := fmt.Errorf("handling request: %w", err)
	appErr, ok := AsAppError(wrapped)
	assert.True(t, ok)
	assert.Equal(t, ErrorTypeInternal, appErr.Type)

	assert.True(t, IsType(wrapped, ErrorTypeInternal))
	assert.False(t, IsType(wrapped, ErrorTypeConflict))
	assert.False(t, IsType(fmt.Errorf("plain"), ErrorTypeInternal))
}
