package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/travelmap/internal/config"
	"github.com/travelmap/internal/delivery/http/handler"
	"github.com/travelmap/internal/delivery/http/middleware"
	"go.uber.org/zap"
)

// Server is the Fiber HTTP server fronting the place store and resolver.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	placeHandler  *handler.PlaceHandler
	searchHandler *handler.SearchHandler
	statsHandler  *handler.StatsHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	placeHandler *handler.PlaceHandler,
	searchHandler *handler.SearchHandler,
	statsHandler *handler.StatsHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "travelmap",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:           app,
		config:        cfg,
		logger:        logger,
		placeHandler:  placeHandler,
		searchHandler: searchHandler,
		statsHandler:  statsHandler,
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
	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Place collection and lifecycle
	api.Get("/places", s.placeHandler.List)
	api.Post("/places", s.placeHandler.Create)
	api.Post("/places/refresh", s.placeHandler.Refresh)
	api.Get("/places/stats", s.statsHandler.GetStatistics)
	api.Put("/places/:id", s.placeHandler.Update)
	api.Patch("/places/:id/visit", s.placeHandler.Visit)
	api.Patch("/places/:id/plan", s.placeHandler.Plan)
	api.Delete("/places/:id", s.placeHandler.Delete)

	// Geocoding resolution
	api.Get("/search", s.searchHandler.Search)
	api.Get("/suggest", s.searchHandler.Suggest)
	api.Post("/reverse-geocode", s.searchHandler.ReverseGeocode)

	// Busy indicator
	api.Get("/activity", s.statsHandler.GetActivity)
}

// App exposes the underlying Fiber app for tests.
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
			"success": false,
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
