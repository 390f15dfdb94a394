package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"teka/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const healthPingTimeout = 2 * time.Second

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	DB     *gorm.DB `optional:"true"`
	Logger *slog.Logger
}

// HealthHandler reports liveness and database reachability.
type HealthHandler struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewHealthHandler is the constructor for HealthHandler.
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{db: params.DB, logger: params.Logger}
}

// HealthCheck answers 200 when the database responds and 503 otherwise.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	status := map[string]string{"status": "ok", "database": "skipped"}
	if h.db == nil {
		return response.Success(c, http.StatusOK, status)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
	defer cancel()

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}

	if err != nil {
		h.logger.Warn("Health check database ping failed", slog.Any("error", err))
		status["status"] = "degraded"
		status["database"] = "unreachable"

		return response.Success(c, http.StatusServiceUnavailable, status)
	}

	status["database"] = "ok"

	return response.Success(c, http.StatusOK, status)
}
