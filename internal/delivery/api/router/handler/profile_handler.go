package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"teka/internal/delivery/api/middleware"
	"teka/internal/delivery/api/response"
	"teka/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves seller stores and the member's own profile.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// GetSeller handles GET /sellers/:id?active=
func (h *ProfileHandler) GetSeller(c echo.Context) error {
	sellerID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	activeOnly := true
	if raw := c.QueryParam("active"); raw != "" {
		activeOnly, err = strconv.ParseBool(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_QUERY", "Paramètre active invalide")
		}
	}

	view, err := h.profileUC.GetSellerPublicView(c.Request().Context(), sellerID, activeOnly)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// GetMe handles GET /me
func (h *ProfileHandler) GetMe(c echo.Context) error {
	profile, err := h.profileUC.GetMyProfile(c.Request().Context(), middleware.GetPrincipal(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// UpdateMe handles PATCH /me
func (h *ProfileHandler) UpdateMe(c echo.Context) error {
	var req usecase.UpdateProfileInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Données de profil invalides")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.profileUC.UpdateMyProfile(c.Request().Context(), middleware.GetPrincipal(c), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}
