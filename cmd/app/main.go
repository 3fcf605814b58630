package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/travelmap/internal/config"
	httpDelivery "github.com/travelmap/internal/delivery/http"
	"github.com/travelmap/internal/delivery/http/handler"
	"github.com/travelmap/internal/domain/repository"
	"github.com/travelmap/internal/infrastructure/mapsurface"
	"github.com/travelmap/internal/infrastructure/nominatim"
	"github.com/travelmap/internal/infrastructure/placesapi"
	"github.com/travelmap/internal/pkg/logger"
	"github.com/travelmap/internal/repository/cache"
	"github.com/travelmap/internal/repository/directory"
	"github.com/travelmap/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting travelmap")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("backend", cfg.Backend.BaseURL),
	)

	// 3. Connect to Redis for the fallback cache. The slot is recovery
	// data, not a hard dependency: without redis the process still runs.
	var fallback repository.FallbackRepository
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Warn("Redis unavailable, fallback cache disabled", zap.Error(err))
		fallback = cache.NewNoopFallback()
	} else {
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()
		fallback = cache.NewFallbackRepository(redisClient, cfg.Redis.FallbackSlot)
	}

	// 4. Load the bundled place directory
	placeDirectory, err := directory.Load()
	if err != nil {
		log.Fatal("Failed to load place directory", zap.Error(err))
	}

	// 5. External clients
	backend := placesapi.NewClient(&cfg.Backend, log)
	geocoder := nominatim.NewClient(&cfg.Geocoder, log)

	// 6. Use cases
	activity := usecase.NewActivityTracker(log)
	store := usecase.NewPlaceStore(backend, fallback, activity, log)
	lifecycle := usecase.NewLifecycle(store, log)
	geocodeUC := usecase.NewGeocodeUseCase(placeDirectory, geocoder, activity, log)
	reconciler := usecase.NewMapReconciler(mapsurface.NewLoggingSurface(log), cfg.Map, log)

	log.Info("Use cases initialized")

	// 7. Initial fetch (degrades to the fallback cache by itself)
	fetchCtx, cancelFetch := context.WithTimeout(context.Background(), cfg.Backend.RequestTimeout+5*time.Second)
	places := store.FetchAll(fetchCtx)
	cancelFetch()
	log.Info("Initial collection loaded", zap.Int("count", len(places)))

	// 8. Reconciler follows the collection stream
	runCtx, cancelRun := context.WithCancel(context.Background())
	defer cancelRun()
	go reconciler.Run(runCtx, store)

	// 9. HTTP server
	placeHandler := handler.NewPlaceHandler(store, lifecycle, log)
	searchHandler := handler.NewSearchHandler(geocodeUC, log)
	statsHandler := handler.NewStatsHandler(store, activity, log)

	server := httpDelivery.NewServer(cfg, log, placeHandler, searchHandler, statsHandler)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down gracefully...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	cancelRun()

	log.Info("Server stopped successfully")
}
