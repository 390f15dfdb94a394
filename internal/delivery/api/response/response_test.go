package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "teka/internal/delivery/context"
	domainerrors "teka/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestSuccess(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, http.StatusCreated, map[string]string{"id": "p1"}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"id":"p1"},"meta":{"request_id":"req-1"}}`, rec.Body.String())
}

func TestError_HidesDetails(t *testing.T) {
	tests := []struct {
		status      int
		wantDetails bool
	}{
		{status: http.StatusBadRequest, wantDetails: true},
		{status: http.StatusNotFound, wantDetails: true},
		{status: http.StatusUnauthorized, wantDetails: false},
		{status: http.StatusForbidden, wantDetails: false},
		{status: http.StatusInternalServerError, wantDetails: false},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			c, rec := newContext()
			require.NoError(t, Error(c, tt.status, "CODE", "msg", "extra"))

			body := decodeError(t, rec)
			assert.Equal(t, "CODE", body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details != nil)
		})
	}
}

func TestHandleAppError(t *testing.T) {
	t.Run("client error is written", func(t *testing.T) {
		c, rec := newContext()
		err := errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("price"), "create product")

		require.NoError(t, HandleAppError(c, err))

		body := decodeError(t, rec)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
		assert.Equal(t, "price", body.Error.Details)
		assert.Equal(t, "req-1", body.Meta.RequestID)
	})

	t.Run("storage failure is passed on", func(t *testing.T) {
		c, rec := newContext()
		storageErr := domainerrors.NewDatabaseExecuteError(errors.New("conn reset"), "list products")

		err := HandleAppError(c, storageErr)

		require.Error(t, err)
		assert.True(t, domainerrors.IsStorageFailure(err))
		assert.Zero(t, rec.Body.Len())
	})

	t.Run("unknown error is passed on", func(t *testing.T) {
		c, _ := newContext()

		assert.Error(t, HandleAppError(c, errors.New("boom")))
	})
}

func TestBindingError(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, BindingError(c, "Requête invalide"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, CodeInvalidInput, decodeError(t, rec).Error.Code)
}
