package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/99minutos/eld-logs/docs"
	"github.com/99minutos/eld-logs/internal/api/handler"
	"github.com/99minutos/eld-logs/internal/api/middleware"
	"github.com/99minutos/eld-logs/internal/core/domain"
	"github.com/99minutos/eld-logs/internal/core/ports"
)

// Deps are the services and settings the router wires into handlers.
type Deps struct {
	JWTSecret string
	// Location interprets offset-less timestamps when a request names no
	// timezone.
	Location *time.Location

	Auth     ports.AuthService
	Timeline ports.TimelineService
	Maps     ports.MapService
	Trips    ports.TripService

	// Checks run on /health/ready, keyed by dependency name.
	Checks map[string]handler.DependencyCheck
	// Registerer receives the HTTP request metrics; nil means the default
	// Prometheus registry.
	Registerer prometheus.Registerer

	Log zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "eldlogs",
		Registerer: d.Registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Auth)
	timelineHandler := handler.NewTimelineHandler(d.Timeline, d.Location, d.Log)
	mapHandler := handler.NewMapHandler(d.Maps)
	tripHandler := handler.NewTripHandler(d.Trips, d.Location, d.Log)

	// --- Health probes, metrics and docs (no auth required) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)                   // is the process alive?
	e.GET("/health/ready", handler.NewReadinessHandler(d.Checks).Readiness) // are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Auth routes ---
	e.POST("/auth/token", authHandler.Token)

	// --- API v1 (bearer token) ---
	v1 := e.Group("/v1", middleware.Auth(d.JWTSecret))
	v1.POST("/timeline/path", timelineHandler.Path)
	v1.GET("/timeline/grid", timelineHandler.Grid)
	v1.POST("/map/bounds", mapHandler.Bounds)
	v1.POST("/trips/plan", tripHandler.Plan)
	v1.DELETE("/cache", timelineHandler.PurgeCache, middleware.RBAC(domain.RoleAdmin))

	return e
}

// requestLogger emits one structured access-log line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil || v.Status >= 500 {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}
