package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "teka/internal/delivery/context"
	"teka/internal/domain/entity"
	domainerrors "teka/internal/domain/errors"
	mockUC "teka/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	return e
}

func whoAmI(c echo.Context) error {
	principal := GetPrincipal(c)
	if principal == nil {
		return c.String(http.StatusOK, "anonymous")
	}

	fromCtx := deliverycontext.GetPrincipal(c.Request().Context())

	return c.String(http.StatusOK, principal.ID.String()+"|"+fromCtx.ID.String())
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	accountUC := mockUC.NewMockAccountUsecase(t)
	m := NewAuthMiddleware(AuthMiddlewareParams{AccountUC: accountUC})
	userID := uuid.New()

	e := newTestEcho()
	e.GET("/me", whoAmI, m.Authenticate)

	accountUC.EXPECT().Authenticate(mock.Anything, "good").Return(&entity.Principal{ID: userID}, nil)
	accountUC.EXPECT().Authenticate(mock.Anything, "expired").Return(nil, domainerrors.ErrUnauthenticated)

	testCases := []struct {
		name   string
		header string
		status int
	}{
		{"valid token", "Bearer good", http.StatusOK},
		{"lowercase scheme", "bearer good", http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic dXNlcjpwYXNz", http.StatusUnauthorized},
		{"rejected token", "Bearer expired", http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tc.header)
			}
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tc.status, rec.Code)
			if tc.status == http.StatusOK {
				assert.Equal(t, userID.String()+"|"+userID.String(), rec.Body.String())
			} else {
				assert.Contains(t, rec.Body.String(), "UNAUTHENTICATED")
			}
		})
	}
}

func TestAuthMiddleware_OptionalAuthenticate(t *testing.T) {
	accountUC := mockUC.NewMockAccountUsecase(t)
	m := NewAuthMiddleware(AuthMiddlewareParams{AccountUC: accountUC})

	e := newTestEcho()
	e.GET("/products/:id", whoAmI, m.OptionalAuthenticate)

	accountUC.EXPECT().Authenticate(mock.Anything, "expired").Return(nil, domainerrors.ErrUnauthenticated)

	for _, header := range []string{"", "Bearer expired"} {
		req := httptest.NewRequest(http.MethodGet, "/products/1", nil)
		if header != "" {
			req.Header.Set(echo.HeaderAuthorization, header)
		}
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "anonymous", rec.Body.String())
	}
}

func TestGetUserID_Anonymous(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	id, ok := GetUserID(c)

	assert.False(t, ok)
	assert.Equal(t, uuid.Nil, id)
	assert.Nil(t, deliverycontext.GetPrincipal(context.Background()))
}
