package handler

import (
	"log/slog"
	"net/http"

	"teka/internal/delivery/api/response"
	"teka/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AccountHandler serves sign-up and sign-in.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler.
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// SignUp handles account creation
func (h *AccountHandler) SignUp(c echo.Context) error {
	var req usecase.SignUpInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Données d'inscription invalides")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.accountUC.SignUp(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, out)
}

// SignIn handles email/password login
func (h *AccountHandler) SignIn(c echo.Context) error {
	var req usecase.SignInInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Données de connexion invalides")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.accountUC.SignIn(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}
