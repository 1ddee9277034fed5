package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/foodspot-service/internal/config"
	"github.com/foodspot-service/internal/delivery/http/handler"
	"github.com/foodspot-service/internal/delivery/http/middleware"
)

// Server is the Fiber HTTP server hosting the directory API.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	foodSpotHandler *handler.FoodSpotHandler
	reviewHandler   *handler.ReviewHandler
	statsHandler    *handler.StatsHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	foodSpotHandler *handler.FoodSpotHandler,
	reviewHandler *handler.ReviewHandler,
	statsHandler *handler.StatsHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "FoodSpot Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:             app,
		config:          cfg,
		logger:          logger,
		foodSpotHandler: foodSpotHandler,
		reviewHandler:   reviewHandler,
		statsHandler:    statsHandler,
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

	// Food spot routes. Static paths come before the :id parameter so that
	// "categories" and friends are not swallowed as IDs.
	spots := api.Group("/foodspots")
	spots.Get("/", s.foodSpotHandler.List)
	spots.Post("/", s.foodSpotHandler.Create)
	spots.Get("/categories", s.foodSpotHandler.Categories)
	spots.Post("/nearest", s.foodSpotHandler.Nearest)
	spots.Post("/within_radius", s.foodSpotHandler.WithinRadius)
	spots.Post("/within_bounds", s.foodSpotHandler.WithinBounds)
	spots.Get("/search", s.foodSpotHandler.Search)
	spots.Get("/statistics", s.statsHandler.GetStatistics)
	spots.Get("/:id", s.foodSpotHandler.GetByID)
	spots.Put("/:id", s.foodSpotHandler.Update)
	spots.Delete("/:id", s.foodSpotHandler.Delete)
	spots.Get("/:id/reviews", s.reviewHandler.ListForSpot)
	spots.Post("/:id/reviews", s.reviewHandler.CreateForSpot)

	// Review routes
	reviews := api.Group("/reviews")
	reviews.Get("/", s.reviewHandler.List)
	reviews.Post("/", s.reviewHandler.Create)
	reviews.Get("/by_foodspot", s.reviewHandler.ByFoodSpot)
}

// App exposes the Fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

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
