package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"teka/config"
	"teka/internal/delivery"
	apimiddleware "teka/internal/delivery/api/middleware"
	"teka/internal/delivery/api/router"
	"teka/internal/delivery/api/validator"
	deliverycontext "teka/internal/delivery/context"
	"teka/internal/delivery/middleware"
	"teka/internal/domain/lifecycle"
	"teka/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Server.ReadTimeout = params.Cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = params.Cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = params.Cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = params.Cfg.HTTP.Timeouts.IdleTimeout

	echoServer.Pre(echomiddleware.RemoveTrailingSlash())

	// Recover first so panics in any later middleware are caught
	echoServer.Use(echomiddleware.Recover())

	// Request ID before the access log so log lines carry it
	requestIDMiddleware := middleware.NewRequestIDMiddleware(params.Logger)
	echoServer.Use(requestIDMiddleware.Process)

	loggerMiddleware := middleware.NewLoggerMiddleware(params.Logger, params.Cfg)
	echoServer.Use(loggerMiddleware.Handle)

	echoServer.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:      "0",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
	}))

	echoServer.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:  allowedOrigins(params.Cfg),
		AllowHeaders:  []string{echo.HeaderAuthorization, echo.HeaderContentType, deliverycontext.HeaderXRequestID},
		ExposeHeaders: []string{deliverycontext.HeaderXRequestID},
	}))

	// Listing photos arrive as multipart bodies, the limit covers all of them
	echoServer.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))

	// Set up centralized error handler
	errorMiddleware := apimiddleware.NewErrorMiddleware(params.Logger)
	echoServer.HTTPErrorHandler = errorMiddleware.HandleHTTPError

	echoServer.Validator = validator.New()
	router.NewRouter(params.RouterParams).RegisterRoutes(echoServer)

	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: echoServer,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve blocks until the server is shut down. Cleartext HTTP/2 is accepted
// next to HTTP/1.1 for clients behind a TLS terminating proxy.
func (s *apiServer) Serve(_ context.Context) error {
	addr := net.JoinHostPort("", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Marketplace API listening", slog.String("addr", addr))

	err := s.server.StartH2CServer(addr, &http2.Server{IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout})
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return errors.WithStack(err)
}

func (s *apiServer) stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Marketplace API draining connections")

	return errors.WithStack(s.server.Shutdown(ctx))
}

func allowedOrigins(cfg *config.Config) []string {
	if len(cfg.HTTP.AllowedOrigins) == 0 {
		return []string{"*"}
	}

	return cfg.HTTP.AllowedOrigins
}
