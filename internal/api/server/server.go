package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DjordjeVuckovic/calcfin/internal/apperr"
	mw "github.com/DjordjeVuckovic/calcfin/pkg/middleware"
	pkgserver "github.com/DjordjeVuckovic/calcfin/pkg/server"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const (
	GracefulShutdownTimeout = 10 * time.Second
)

type Server struct {
	Echo *echo.Echo

	cfg      *Config
	health   pkgserver.HealthChecker
	ctx      context.Context
	stop     context.CancelFunc
	shutdown chan struct{}
}

// New creates a server whose Context is cancelled on SIGINT or SIGTERM.
func New(cfg *Config, health pkgserver.HealthChecker) *Server {
	e := echo.New()
	e.HideBanner = true
	e.DisableHTTP2 = !cfg.UseHttp2

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	return &Server{
		Echo:     e,
		cfg:      cfg,
		health:   health,
		ctx:      ctx,
		stop:     stop,
		shutdown: make(chan struct{}),
	}
}

func (s *Server) SetupMiddlewares() *Server {
	s.Echo.Use(mw.Logger(mw.WithSkipper(mw.SkipPaths("/health"))))
	s.Echo.Use(middleware.Recover())
	s.Echo.Use(middleware.BodyLimit(s.cfg.BodyLimit))
	s.Echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: s.cfg.CorsOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost, http.MethodDelete},
	}))
	return s
}

func (s *Server) SetupErrorHandler() *Server {
	s.Echo.HTTPErrorHandler = apperr.GlobalErrorHandler()
	return s
}

func (s *Server) SetupHealthChecks(path string) *Server {
	s.Echo.GET(path, func(c echo.Context) error {
		if s.health != nil && !s.health.Healthy(c.Request().Context()) {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	return s
}

func (s *Server) SetupOpenApi(path string) *Server {
	s.Echo.GET(path, echoSwagger.WrapHandler)
	return s
}

// Context is cancelled when a shutdown signal arrives.
func (s *Server) Context() context.Context {
	return s.ctx
}

// ShutdownSignal is closed once the server has stopped accepting requests.
func (s *Server) ShutdownSignal() <-chan struct{} {
	return s.shutdown
}

func (s *Server) Start() error {
	defer s.stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "port", s.cfg.Port)
		if err := s.Echo.Start(":" + s.cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-s.ctx.Done():
	case err := <-errCh:
		close(s.shutdown)
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), GracefulShutdownTimeout)
	defer cancel()

	err := s.Echo.Shutdown(ctx)
	close(s.shutdown)
	return err
}
