package middleware

import (
	"strings"

	deliverycontext "teka/internal/delivery/context"
	"teka/internal/domain/entity"
	domainerrors "teka/internal/domain/errors"
	"teka/internal/errors"
	"teka/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const principalKey = "principal"

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
}

// AuthMiddleware resolves bearer tokens into the request principal.
type AuthMiddleware struct {
	accountUC usecase.AccountUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{accountUC: params.AccountUC}
}

// Authenticate rejects requests without a valid bearer token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return errors.WithStack(domainerrors.ErrUnauthenticated)
		}

		principal, err := m.accountUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			return err
		}

		setPrincipal(c, principal)

		return next(c)
	}
}

// OptionalAuthenticate attaches the principal when a valid token is sent and
// otherwise lets the request through anonymously.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if token, ok := bearerToken(c); ok {
			if principal, err := m.accountUC.Authenticate(c.Request().Context(), token); err == nil {
				setPrincipal(c, principal)
			}
		}

		return next(c)
	}
}

func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	scheme, token, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}

func setPrincipal(c echo.Context, principal *entity.Principal) {
	c.Set(principalKey, principal)
	c.SetRequest(c.Request().WithContext(deliverycontext.WithPrincipal(c.Request().Context(), principal)))
}

// GetPrincipal returns the authenticated principal, or nil for anonymous requests.
func GetPrincipal(c echo.Context) *entity.Principal {
	principal, _ := c.Get(principalKey).(*entity.Principal)

	return principal
}

// GetUserID returns the authenticated user's ID.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	principal := GetPrincipal(c)
	if principal == nil {
		return uuid.Nil, false
	}

	return principal.ID, true
}
