package main

// @title Navigation Microservice API
// @version 1.0.0
// @description Сервис планирования маршрутов и чекпоинт-навигации в сеульском метро для маломобильных пассажиров. Подбирает выходы с работающими лифтами, оптимальные вагоны для посадки и ведёт пассажира по чекпоинтам с учётом данных реального времени.
// @description
// @description Основные возможности:
// @description - Планирование маршрута между станциями одной линии с учётом профиля мобильности
// @description - Подбор выхода по состоянию лифтов и расстоянию до пассажира
// @description - Живая навигация по GPS с чекпоинтами
// @description - Генерация текстовых подсказок по данным реального времени (лифты, закрытия выходов, прибытия поездов)

// @contact.name API Support
// @contact.email support@navigation-microservice.com

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

	_ "github.com/navigation-microservice/docs"
	"github.com/navigation-microservice/internal/config"
	httpDelivery "github.com/navigation-microservice/internal/delivery/http"
	"github.com/navigation-microservice/internal/delivery/http/handler"
	"github.com/navigation-microservice/internal/infrastructure/guidetext"
	"github.com/navigation-microservice/internal/infrastructure/seoulmetro"
	"github.com/navigation-microservice/internal/pkg/logger"
	"github.com/navigation-microservice/internal/repository/cache"
	"github.com/navigation-microservice/internal/repository/memory"
	"github.com/navigation-microservice/internal/repository/postgres"
	"github.com/navigation-microservice/internal/usecase"
	"github.com/navigation-microservice/internal/worker"
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

	log.Info("Starting Navigation Microservice")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL (station survey data)
	db, err := postgres.New(cfg, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis (upstream API response cache)
	redisClient, err := cache.NewRedis(cfg, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

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
	stationRepo := postgres.NewStationRepository(db)
	apiCacheRepo := cache.NewAPICacheRepository(redisClient)
	facilityRepo := seoulmetro.NewClient(cfg, apiCacheRepo, log)
	guideRepo := guidetext.NewRenderer(log)
	routeCacheRepo := memory.NewRouteCache(cfg.Cache.RouteCacheTTL, memory.SystemClock(), log)

	log.Info("Repositories initialized")

	// 7. Initialize use cases
	routeUC := usecase.NewRouteUseCase(stationRepo, facilityRepo, routeCacheRepo, log)
	navigationUC := usecase.NewNavigationUseCase(routeCacheRepo, stationRepo, facilityRepo, log)
	checkpointUC := usecase.NewCheckpointUseCase(stationRepo, facilityRepo, guideRepo, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers
	routeHandler := handler.NewRouteHandler(routeUC, log)
	navigationHandler := handler.NewNavigationHandler(navigationUC, log)
	checkpointHandler := handler.NewCheckpointHandler(checkpointUC, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		routeHandler,
		navigationHandler,
		checkpointHandler,
	)

	log.Info("HTTP server initialized")

	// 10. Start background workers
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	manager := worker.NewWorkerManager(log)
	manager.Register(worker.NewRouteCacheSweeper(routeCacheRepo, cfg.Cache.SweepInterval, log))
	if err := manager.Start(workerCtx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// 11. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 12. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := manager.Stop(); err != nil {
		log.Error("Worker shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
