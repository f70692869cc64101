package http

import (
	"log/slog"
	"net/http"
	"strings"

	_ "dashboard/internal/adapters/in/http/docs" // swagger document
	"dashboard/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewEcho builds the echo instance serving s, with request logging, panic
// recovery, health, metrics and swagger routes.
func NewEcho(s *Server, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = errorHandler

	logger = logger.With("component", "http")
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency}
			if v.Error != nil {
				logger.ErrorContext(c.Request().Context(), "request failed", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.InfoContext(c.Request().Context(), "request", attrs...)
			return nil
		},
	}))

	e.GET("/health", health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e.Group("", s.requireSession), s)
	return e
}

// requireSession rejects console API requests while no admin is logged in.
// Logging in is the one call allowed without a session.
func (s *Server) requireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		path := c.Path()
		if !strings.HasPrefix(path, "/api/") ||
			(path == "/api/session" && c.Request().Method == http.MethodPost) {
			return next(c)
		}
		if !s.session.IsActive() {
			return c.JSON(http.StatusUnauthorized, servers.Error{
				Code:    http.StatusUnauthorized,
				Message: "login required",
			})
		}
		return next(c)
	}
}

// health godoc
//
//	@Summary	Liveness check
//	@Tags		system
//	@Produce	plain
//	@Success	200	{string}	string	"Healthy"
//	@Router		/health [get]
func health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}
