package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/navigation-microservice/internal/config"
	"github.com/navigation-microservice/internal/delivery/http/handler"
	"github.com/navigation-microservice/internal/delivery/http/middleware"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server - HTTP server built on Fiber.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	routeHandler      *handler.RouteHandler
	navigationHandler *handler.NavigationHandler
	checkpointHandler *handler.CheckpointHandler
}

// NewServer creates the HTTP server and wires up middleware and routes.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	routeHandler *handler.RouteHandler,
	navigationHandler *handler.NavigationHandler,
	checkpointHandler *handler.CheckpointHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Navigation Microservice",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:               app,
		config:            cfg,
		logger:            logger,
		routeHandler:      routeHandler,
		navigationHandler: navigationHandler,
		checkpointHandler: checkpointHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Route planning
	api.Post("/route/search", s.routeHandler.SearchRoute)
	api.Get("/route/stations", s.routeHandler.ListStations)

	// Live navigation
	api.Post("/navigation/guide", s.navigationHandler.Guide)

	// Checkpoint guides and realtime feeds
	api.Post("/checkpoint/guide", s.checkpointHandler.Guide)
	api.Get("/checkpoint/realtime/:station", s.checkpointHandler.RealtimeStation)
}

// Start runs the server on the configured address.
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
