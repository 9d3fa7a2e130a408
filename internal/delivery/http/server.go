package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/directory-microservice/internal/config"
	"github.com/directory-microservice/internal/delivery/http/handler"
	"github.com/directory-microservice/internal/delivery/http/middleware"
)

// Server - HTTP server built on Fiber.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	entityHandler *handler.EntityHandler
	signalHandler *handler.SignalHandler
	guideHandler  *handler.GuideHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	entityHandler *handler.EntityHandler,
	signalHandler *handler.SignalHandler,
	guideHandler *handler.GuideHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Directory Microservice",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:           app,
		config:        cfg,
		logger:        logger,
		entityHandler: entityHandler,
		signalHandler: signalHandler,
		guideHandler:  guideHandler,
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

	// Entity routes
	api.Get("/entities", s.entityHandler.List)
	api.Post("/entities", s.entityHandler.Create)
	api.Get("/entities/:id", s.entityHandler.Get)
	api.Patch("/entities/:id", s.entityHandler.Update)
	api.Delete("/entities/:id", s.entityHandler.SoftDelete)
	api.Get("/entities/:id/hours", s.entityHandler.WorkHours)

	// Signal routes
	api.Post("/signals", s.signalHandler.Add)
	api.Get("/signals", s.signalHandler.List)

	// Derived lookups
	api.Get("/areas", s.entityHandler.Areas)
	api.Get("/tags", s.entityHandler.Tags)

	// Guide routes
	api.Get("/guides", s.guideHandler.List)
	api.Get("/guides/:id", s.guideHandler.Get)
}

// Start - blocking listen on the configured address.
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown with deadline from ctx.
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
