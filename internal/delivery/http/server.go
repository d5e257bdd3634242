package http

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"github.com/transit-dashboard/internal/config"
	"github.com/transit-dashboard/internal/delivery/http/handler"
	"github.com/transit-dashboard/internal/delivery/http/middleware"
	"github.com/transit-dashboard/internal/pkg/errors"
	"github.com/transit-dashboard/internal/pkg/utils"
	"go.uber.org/zap"
)

// Server - HTTP server on Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	dashboardHandler *handler.DashboardHandler
	chartHandler     *handler.ChartHandler
	exportHandler    *handler.ExportHandler
	pageHandler      *handler.PageHandler
}

// NewServer wires the middleware and routes. pageHandler may be nil when the
// templates could not be loaded; GET / then redirects to the swagger UI.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	dashboardHandler *handler.DashboardHandler,
	chartHandler *handler.ChartHandler,
	exportHandler *handler.ExportHandler,
	pageHandler *handler.PageHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Transit Dashboard",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:              app,
		config:           cfg,
		logger:           logger,
		dashboardHandler: dashboardHandler,
		chartHandler:     chartHandler,
		exportHandler:    exportHandler,
		pageHandler:      pageHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App exposes the fiber app, mainly for app.Test in tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.RequestID())
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.AllowOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Dashboard page
	s.app.Get("/", func(c *fiber.Ctx) error {
		if s.pageHandler != nil {
			return s.pageHandler.RenderDashboard(c)
		}
		return c.Redirect("/swagger/index.html")
	})

	api := s.app.Group("/api/v1")

	api.Get("/health", s.dashboardHandler.Health)
	api.Get("/filters", s.dashboardHandler.GetFilters)

	// Aggregates
	api.Get("/dashboard", s.dashboardHandler.GetDashboard)
	api.Get("/dashboard/hourly", s.dashboardHandler.GetHourly)
	api.Get("/dashboard/routes", s.dashboardHandler.GetRoutes)
	api.Get("/dashboard/locations", s.dashboardHandler.GetLocations)
	api.Get("/dashboard/payments", s.dashboardHandler.GetPayments)
	api.Get("/dashboard/gender", s.dashboardHandler.GetGender)
	api.Get("/dashboard/narrative", s.dashboardHandler.GetNarrative)

	// Charts
	api.Get("/charts/hourly.svg", s.chartHandler.GetHourlyChart)
	api.Get("/charts/routes.svg", s.chartHandler.GetRoutesChart)
	api.Get("/charts/payments.svg", s.chartHandler.GetPaymentsChart)
	api.Get("/charts/gender.svg", s.chartHandler.GetGenderChart)

	// Export
	api.Get("/export.xlsx", s.exportHandler.ExportXLSX)
}

// Start - starts the HTTP server
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler answers errors that escaped the handlers (unknown
// routes, panics) in the same envelope as utils.SendError.
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if stderrors.As(err, &fe) {
			if fe.Code >= fiber.StatusInternalServerError {
				logger.Error("HTTP Error", zap.String("path", c.Path()), zap.Error(err))
			}
			return c.Status(fe.Code).JSON(utils.ErrorResponse{
				Error: errors.New(codeForStatus(fe.Code), fe.Message, fe.Code),
			})
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", fiber.StatusInternalServerError),
			zap.Error(err),
		)
		return utils.SendError(c, err)
	}
}

func codeForStatus(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusBadRequest:
		return errors.CodeInvalidRequest
	}
	if status >= fiber.StatusInternalServerError {
		return errors.CodeInternalServer
	}
	return "HTTP_ERROR"
}
