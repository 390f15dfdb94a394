package validator

import (
	"testing"

	domainerrors "teka/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sendMessageRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
	Note    string `form:"note" validate:"omitempty,min=3"`
}

func TestEchoValidator_Validate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sendMessageRequest{Content: "Bonjour"}))

	err := v.Validate(&sendMessageRequest{Note: "x"})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "content (required)")
	assert.Contains(t, appErr.Details(), "note (min)")
}
