package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"plotchart/render"
)

// Service exposes the chart renderer over HTTP.
type Service struct {
	Renderer *render.Renderer
	Logger   *slog.Logger
}

// NewService creates a new Service with the given Renderer.
func NewService(r *render.Renderer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{Renderer: r, Logger: logger}
}

// Router builds the Echo instance with all routes registered.
func (s *Service) Router() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.Logger.Info("request", "method", v.Method, "uri", v.URI, "status", v.Status, "duration", v.Latency)
			return nil
		},
	}))

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.POST("/charts/bar", s.handleBar)
	e.POST("/charts/line", s.handleLine)
	e.POST("/charts/pie", s.handlePie)

	return e
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Service) Run(ctx context.Context, addr string) error {
	e := s.Router()

	errCh := make(chan error, 1)
	go func() {
		s.Logger.Info("http server listening", "addr", addr)
		errCh <- e.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}

// --- Handlers ---

// ChartRequest is the body of the bar and line endpoints.
type ChartRequest struct {
	Labels   []string  `json:"labels"`
	Values   []float64 `json:"values"`
	Title    string    `json:"title"`
	Filename string    `json:"filename"`
}

// PieRequest is the body of the pie endpoint.
type PieRequest struct {
	Labels   []string  `json:"labels"`
	Sizes    []float64 `json:"sizes"`
	Title    string    `json:"title"`
	Filename string    `json:"filename"`
}

// ChartResponse carries the result string of every chart endpoint.
type ChartResponse struct {
	Result string `json:"result"`
}

func (s *Service) handleBar(c echo.Context) error {
	return s.handleValues(c, render.Bar)
}

func (s *Service) handleLine(c echo.Context) error {
	return s.handleValues(c, render.Line)
}

func (s *Service) handleValues(c echo.Context, kind render.Kind) error {
	var req ChartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ChartResponse{Result: "Error: invalid request"})
	}
	res := s.Renderer.Render(kind, render.ChartRequest{
		Labels:   req.Labels,
		Values:   req.Values,
		Title:    req.Title,
		Filename: req.Filename,
	})
	return c.JSON(statusFor(res), ChartResponse{Result: res.Message})
}

func (s *Service) handlePie(c echo.Context) error {
	var req PieRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ChartResponse{Result: "Error: invalid request"})
	}
	res := s.Renderer.Render(render.Pie, render.ChartRequest{
		Labels:   req.Labels,
		Values:   req.Sizes,
		Title:    req.Title,
		Filename: req.Filename,
	})
	return c.JSON(statusFor(res), ChartResponse{Result: res.Message})
}

func statusFor(res render.Result) int {
	switch res.Failure {
	case render.FailureNone:
		return http.StatusOK
	case render.FailureInputShape, render.FailureInvalidValue:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
