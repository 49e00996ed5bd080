package errors

import (
	"net/http"
	"testing"

	"restapi/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	err := ErrValidationFailed.WithDetails("a", "b")

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.False(t, errors.Is(err, ErrEmailAlreadyInUse))
	assert.Equal(t, []string{"a", "b"}, err.Details())
	assert.Empty(t, ErrValidationFailed.Details(), "predefined value must stay untouched")
}

func TestBaseError_WrapMessageIsUnwrappable(t *testing.T) {
	err := ErrAccessDenied.WrapMessage("password mismatch")

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
	assert.Equal(t, "Access Denied", appErr.Message())
	assert.Equal(t, KindAuthFailure, appErr.ErrorCode())
}

func TestConstraintError(t *testing.T) {
	err := NewConstraintError(`Please provide a value for "title"`)

	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Equal(t, KindConstraintViolation, err.ErrorCode())
	assert.Equal(t, []string{`Please provide a value for "title"`}, err.Details())
	assert.Contains(t, err.Error(), "title")
}

func TestDatabaseExecuteError_HidesCause(t *testing.T) {
	cause := errors.New(`pq: relation "Courses" does not exist`)
	err := NewDatabaseExecuteError(cause, "failed to list courses")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.NotContains(t, err.Message(), "relation")
	assert.Nil(t, err.Details())
	assert.True(t, errors.Is(err, cause))
}
