package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"teka/internal/delivery/api/response"
	domainerrors "teka/internal/domain/errors"
	"teka/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveError(t *testing.T, err error) (*httptest.ResponseRecorder, response.ErrorResponse) {
	t.Helper()

	e := newTestEcho()
	e.GET("/fail", func(echo.Context) error { return err })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestHandleHTTPError(t *testing.T) {
	t.Run("domain error with details", func(t *testing.T) {
		rec, body := serveError(t, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("invalid fields: title (min)"), "create product"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
		assert.Equal(t, "invalid fields: title (min)", body.Error.Details)
	})

	t.Run("storage failure hides details", func(t *testing.T) {
		rec, body := serveError(t, domainerrors.NewDatabaseExecuteError(errors.New("pq: connection refused"), "failed to list products"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "STORAGE_FAILURE", body.Error.Code)
		assert.Nil(t, body.Error.Details)
	})

	t.Run("echo error", func(t *testing.T) {
		rec, body := serveError(t, echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Request Entity Too Large"))

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.Equal(t, "HTTP_ERROR", body.Error.Code)
	})

	t.Run("unknown error", func(t *testing.T) {
		rec, body := serveError(t, errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
		assert.NotContains(t, rec.Body.String(), "boom")
	})
}
