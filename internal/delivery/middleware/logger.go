package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"teka/config"
	deliverycontext "teka/internal/delivery/context"
	domainerrors "teka/internal/domain/errors"
	"teka/internal/errors"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes the access log. Every request is logged in debug
// mode; otherwise only server errors are.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		// the central error handler has not written the response yet
		status := c.Response().Status
		if err != nil {
			status = statusOf(err)
		}

		if m.debug || status >= http.StatusInternalServerError {
			m.logRequest(c, start, status, err)
		}

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, status int, err error) {
	req := c.Request()
	ctx := req.Context()

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("path", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.Int64("bytes_out", c.Response().Size),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}

	if req.URL.RawQuery != "" {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}

	if principal := deliverycontext.GetPrincipal(ctx); principal != nil {
		fields = append(fields, slog.String("user_id", principal.ID.String()))
	}

	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	level := slog.LevelInfo
	switch {
	case status >= http.StatusInternalServerError:
		level = slog.LevelError
	case status >= http.StatusBadRequest:
		level = slog.LevelWarn
	}

	deliverycontext.GetLoggerOrDefault(ctx, m.logger).LogAttrs(ctx, level, "HTTP request", fields...)
}

// statusOf predicts the status the error handler will answer with.
func statusOf(err error) int {
	if httpErr, ok := errors.Find[*echo.HTTPError](err); ok {
		return httpErr.Code
	}

	if appErr, ok := errors.Find[domainerrors.AppError](err); ok {
		return appErr.HTTPCode()
	}

	return http.StatusInternalServerError
}
