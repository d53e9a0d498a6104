// Package server exposes the prediction workflow over HTTP: planning and
// executing goals, inspecting and resetting the memory record, searching the
// execution log and serving saved reports.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/mohammad-safakhou/mundial/config"
	"github.com/mohammad-safakhou/mundial/internal/memory"
	"github.com/mohammad-safakhou/mundial/internal/telemetry"
	"github.com/mohammad-safakhou/mundial/internal/workflow"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	serviceName    = "World Cup 2026 Prediction Workflow"
	serviceVersion = "1.0.0"

	shutdownTimeout = 10 * time.Second
)

// WorkflowEngine is the slice of the engine the handlers call.
type WorkflowEngine interface {
	Plan(goal string) workflow.Plan
	Execute(ctx context.Context, plan workflow.Plan) (workflow.Result, error)
	Reset(ctx context.Context) error
}

// Server wires the HTTP API around one workflow engine and its memory store.
type Server struct {
	cfg    config.Config
	echo   *echo.Echo
	engine WorkflowEngine
	store  memory.Store
	tel    *telemetry.Telemetry
	logger *log.Logger
}

// New builds the server and registers all routes.
func New(cfg config.Config, eng WorkflowEngine, store memory.Store, tel *telemetry.Telemetry) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	logger := log.New(log.Writer(), "[HTTP] ", log.LstdFlags)
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		msg := err.Error()
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if he.Message != nil {
				msg = fmt.Sprint(he.Message)
			}
		}
		req := c.Request()
		logger.Printf("%d %s %s from %s: %v", code, req.Method, req.URL.Path, c.RealIP(), err)
		if !c.Response().Committed {
			_ = c.JSON(code, map[string]any{"error": msg})
		}
	}

	origins := cfg.Server.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: origins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType},
	}))

	s := &Server{cfg: cfg, echo: e, engine: eng, store: store, tel: tel, logger: logger}
	s.routes()
	return s
}

func (s *Server) routes() {
	e := s.echo
	e.GET("/", s.info)
	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")
	api.GET("", s.info)
	api.GET("/health", s.health)
	api.GET("/stats", s.stats)
	api.POST("/plan", s.plan)
	api.POST("/execute", s.execute)
	api.GET("/memory", s.memoryState)
	api.GET("/memory/search", s.memorySearch)
	api.POST("/reset", s.reset)
	api.GET("/reports", s.listReports)
	api.GET("/reports/:name", s.getReport)
}

// Start serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.echo.Start(s.cfg.Server.Addr())
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.echo.Shutdown(shutdownCtx)
	}
}

func (s *Server) info(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"name":    serviceName,
		"version": serviceVersion,
		"status":  "running",
		"endpoints": map[string]string{
			"GET /":                  "Service info",
			"GET /api":               "This info",
			"GET /api/health":        "Health check",
			"GET /api/stats":         "Workflow counters",
			"POST /api/plan":         "Generate execution plan",
			"POST /api/execute":      "Execute workflow",
			"GET /api/memory":        "Get memory state",
			"GET /api/memory/search": "Search the execution log",
			"POST /api/reset":        "Reset workflow",
			"GET /api/reports":       "List saved reports",
			"GET /api/reports/:name": "Fetch one saved report",
			"GET /metrics":           "Prometheus metrics",
		},
	})
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) stats(c echo.Context) error {
	return c.JSON(http.StatusOK, s.tel.Stats())
}
