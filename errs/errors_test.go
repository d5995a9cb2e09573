package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name:     "without cause",
			err:      NotFound("project not found"),
			expected: "not_found: project not found",
		},
		{
			name:     "with cause",
			err:      Server("query failed", errors.New("connection reset")),
			expected: "server: query failed (caused by: connection reset)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Server("wrapped", cause)

	assert.ErrorIs(t, err, cause)
}

func TestAppError_IsType(t *testing.T) {
	err := Validation("bad input")

	assert.True(t, err.IsType(ErrorTypeValidation))
	assert.False(t, err.IsType(ErrorTypeNotFound))
}

func TestAppError_ErrorAs(t *testing.T) {
	var err error = fmt.Errorf("handler: %w", Authorization("missing capability"))

	var appErr *AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, ErrorTypeAuthorization, appErr.Type)
}

func TestErrorType_HTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ErrorTypeValidation.HTTPStatus())
	assert.Equal(t, http.StatusNotFound, ErrorTypeNotFound.HTTPStatus())
	assert.Equal(t, http.StatusForbidden, ErrorTypeAuthorization.HTTPStatus())
	assert.Equal(t, http.StatusConflict, ErrorTypeConflict.HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, ErrorTypeServer.HTTPStatus())
}
