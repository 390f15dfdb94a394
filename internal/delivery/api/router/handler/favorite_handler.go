package handler

import (
	"log/slog"
	"net/http"

	"teka/internal/delivery/api/middleware"
	"teka/internal/delivery/api/response"
	"teka/internal/domain/entity"
	"teka/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FavoriteHandlerParams holds dependencies for FavoriteHandler, injected by Fx.
type FavoriteHandlerParams struct {
	fx.In

	FavoriteUC usecase.FavoriteUsecase
	Logger     *slog.Logger
}

// FavoriteHandler serves the favorites of the signed-in member.
type FavoriteHandler struct {
	favoriteUC usecase.FavoriteUsecase
	logger     *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler.
func NewFavoriteHandler(params FavoriteHandlerParams) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUC: params.FavoriteUC,
		logger:     params.Logger,
	}
}

// ToggleResponse is the body returned by a toggle.
type ToggleResponse struct {
	State entity.FavoriteState `json:"state"`
}

// FavoriteStatusResponse tells whether a product is favorited.
type FavoriteStatusResponse struct {
	IsFavorite bool `json:"is_favorite"`
}

// Toggle handles POST /favorites/:productId/toggle
func (h *FavoriteHandler) Toggle(c echo.Context) error {
	productID, err := pathUUID(c, "productId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	state, err := h.favoriteUC.ToggleFavorite(c.Request().Context(), middleware.GetPrincipal(c), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ToggleResponse{State: state})
}

// List handles GET /favorites
func (h *FavoriteHandler) List(c echo.Context) error {
	products, err := h.favoriteUC.ListFavorites(c.Request().Context(), middleware.GetPrincipal(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// Status handles GET /favorites/:productId
func (h *FavoriteHandler) Status(c echo.Context) error {
	productID, err := pathUUID(c, "productId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	favorite, err := h.favoriteUC.IsFavorite(c.Request().Context(), middleware.GetPrincipal(c), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, FavoriteStatusResponse{IsFavorite: favorite})
}
