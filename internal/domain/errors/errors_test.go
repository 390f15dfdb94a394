package errors

import (
	"net/http"
	"testing"

	"teka/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_SurvivesWrapping(t *testing.T) {
	err := errors.Wrap(ErrSelfContactForbidden, "open conversation")

	assert.True(t, errors.Is(err, ErrSelfContactForbidden))

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "SELF_CONTACT_FORBIDDEN", appErr.ErrorCode())
}

func TestBaseError_WithDetailsKeepsCode(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("title too short")

	assert.Equal(t, "VALIDATION_FAILED", detailed.ErrorCode())
	assert.Equal(t, "title too short", detailed.Details())
	assert.Empty(t, ErrValidationFailed.Details())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := errors.Wrap(NewDatabaseExecuteError(cause, "insert message"), "send message")

	assert.True(t, IsStorageFailure(err))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, IsStorageFailure(ErrNotFound))

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
	assert.Equal(t, "STORAGE_FAILURE", appErr.ErrorCode())
	assert.Equal(t, "insert message", appErr.Details())
}

func TestBaseError_DetailedVariantMatchesPredefined(t *testing.T) {
	err := errors.Wrap(ErrValidationFailed.WithDetails("too many photos"), "create product")

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.False(t, errors.Is(err, ErrNotFound))
}
