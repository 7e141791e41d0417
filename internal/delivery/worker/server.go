// Package worker contains the asynchronous deliveries: the push endpoint,
// the outbox relay loop and the pull consumer.
package worker

import (
	"context"
	"log/slog"
	"net/http"

	"eventhub/config"
	"eventhub/internal/delivery"
	"eventhub/internal/delivery/middleware"
	"eventhub/internal/delivery/worker/handler"
	"eventhub/internal/domain/lifecycle"
	"eventhub/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// pushServer receives push deliveries from the local and google buses and
// serves the worker health check.
type pushServer struct {
	addr   string
	logger *slog.Logger
	echo   *echo.Echo
}

type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &pushServer{
		addr:   delivery.ListenAddr(params.Cfg.HTTP.Port),
		logger: params.Logger.With(slog.String("delivery", "push")),
		echo:   NewEcho(params.Cfg, params.Logger, params.PushHandler),
	}
	params.Lc.Append(fx.StopHook(srv.shutdown))

	return srv, nil
}

// NewEcho exposes /health and /push behind the shared request id and
// access log middleware.
func NewEcho(cfg *config.Config, logger *slog.Logger, pushHandler *handler.PushHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(logger).Process,
		middleware.NewLoggerMiddleware(logger, cfg).Handle,
	)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST("/push", pushHandler.HandlePush)

	return e
}

func (s *pushServer) Serve(context.Context) error {
	s.logger.Info("Starting push HTTP server", slog.String("host_port", s.addr))

	err := s.echo.Start(s.addr)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return errors.WithStack(err)
}

func (s *pushServer) shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down push HTTP server")

	return errors.WithStack(s.echo.Shutdown(ctx))
}
