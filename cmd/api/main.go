package main

// @title FoodSpot Service API
// @version 1.0.0
// @description Location-based restaurant directory. Provides spatial lookups (nearest, within radius, within polygon), text search with facet filters, reviews and aggregate statistics.

// @contact.name API Support
// @contact.email support@foodspot-service.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/foodspot-service/docs/swagger"
	"github.com/foodspot-service/internal/config"
	httpDelivery "github.com/foodspot-service/internal/delivery/http"
	"github.com/foodspot-service/internal/delivery/http/handler"
	"github.com/foodspot-service/internal/pkg/logger"
	"github.com/foodspot-service/internal/repository/cache"
	"github.com/foodspot-service/internal/repository/postgres"
	redisRepo "github.com/foodspot-service/internal/repository/redis"
	"github.com/foodspot-service/internal/usecase"
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

	log.Info("Starting FoodSpot Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize repositories
	spotRepo := postgres.NewFoodSpotRepository(db)
	reviewRepo := postgres.NewReviewRepository(db)
	statsRepo := postgres.NewStatsRepository(db, log)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	log.Info("Repositories initialized")

	// 7. Initialize use cases
	spotUC := usecase.NewFoodSpotUsecase(spotRepo, log)
	reviewUC := usecase.NewReviewUsecase(reviewRepo, spotRepo, streamRepo, log)
	statsUC := usecase.NewStatsUsecase(statsRepo, cacheRepo, cfg.Cache.StatsCacheTTL, log)

	// 8. Initialize handlers
	spotHandler := handler.NewFoodSpotHandler(spotUC, log)
	reviewHandler := handler.NewReviewHandler(reviewUC, log)
	statsHandler := handler.NewStatsHandler(statsUC, log)

	// 9. Start HTTP server
	server := httpDelivery.NewServer(cfg, log, spotHandler, reviewHandler, statsHandler)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}

	log.Info("Server stopped")
}
