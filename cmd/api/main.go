package main

// @title Directory Microservice API
// @version 1.0.0
// @description Microservice for a directory of places and activities with user-submitted trust signals.
// @description
// @description Main capabilities:
// @description - Filterable, searchable entity listings sorted by rating
// @description - Entity lifecycle: create, partial update, soft delete (archive)
// @description - Trust signal ledger with confirm side effects
// @description - Open/closed evaluation of weekly schedules
// @description - Editorial guides grouped by category

// @contact.name API Support
// @contact.email support@directory-microservice.com

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

	_ "github.com/directory-microservice/docs/swagger"
	"github.com/directory-microservice/internal/config"
	httpDelivery "github.com/directory-microservice/internal/delivery/http"
	"github.com/directory-microservice/internal/delivery/http/handler"
	"github.com/directory-microservice/internal/domain/repository"
	"github.com/directory-microservice/internal/pkg/clock"
	"github.com/directory-microservice/internal/pkg/logger"
	"github.com/directory-microservice/internal/repository/memory"
	redisRepo "github.com/directory-microservice/internal/repository/redis"
	"github.com/directory-microservice/internal/usecase"
	"github.com/directory-microservice/internal/worker"
	"github.com/directory-microservice/internal/worker/signals"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Directory Microservice")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("timezone", cfg.Directory.Timezone),
	)

	// 3. Resolve the schedule evaluation timezone
	location, err := time.LoadLocation(cfg.Directory.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone", zap.String("timezone", cfg.Directory.Timezone), zap.Error(err))
	}

	// 4. Connect to Redis (optional, signal streams only)
	var streamRepo repository.StreamRepository
	var redisClient *redisRepo.Client
	if cfg.Redis.Enabled {
		redisClient, err = redisRepo.NewClient(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Health(ctx); err != nil {
			cancel()
			log.Fatal("Redis health check failed", zap.Error(err))
		}
		cancel()

		streamRepo = redisRepo.NewStreamRepository(redisClient.Client(), log)
	} else {
		log.Info("Redis disabled, signal stream egress is off")
	}

	// 5. Initialize repositories
	clk := clock.NewSystem()
	entityRepo := memory.NewEntityRepository(clk, log)
	signalRepo := memory.NewSignalRepository(clk)
	guideRepo := memory.NewGuideRepository(log)

	if cfg.Directory.EntitySeedPath != "" {
		if _, err := entityRepo.LoadSeed(cfg.Directory.EntitySeedPath); err != nil {
			log.Fatal("Failed to load entity seed", zap.Error(err))
		}
	}
	if cfg.Directory.GuideSeedPath != "" {
		if _, err := guideRepo.LoadSeed(cfg.Directory.GuideSeedPath); err != nil {
			log.Fatal("Failed to load guide seed", zap.Error(err))
		}
	}

	log.Info("Repositories initialized")

	// 6. Initialize use cases
	entityUC := usecase.NewEntityUseCase(entityRepo, clk, location, log)
	queryUC := usecase.NewQueryUseCase(
		entityRepo,
		cfg.Directory.DefaultLimit,
		cfg.Directory.MaxLimit,
		cfg.Directory.PopularLimit,
		log,
	)
	signalUC := usecase.NewSignalUseCase(signalRepo, entityRepo, streamRepo, log)
	guideUC := usecase.NewGuideUseCase(guideRepo, log)

	log.Info("Use cases initialized")

	// 7. Run the signal ingestion worker in-process when enabled. It
	// shares the repositories above, so confirm signals consumed from the
	// incoming stream update the same entities this API serves.
	var workerManager *worker.Manager
	var workerCancel context.CancelFunc
	if cfg.Worker.Enabled && streamRepo != nil {
		workerManager = worker.NewManager(log)
		workerManager.Register(signals.NewIngestionWorker(
			streamRepo,
			signalUC,
			cfg.Worker.ConsumerGroup,
			cfg.Worker.BatchSize,
			cfg.Worker.EmptyQueueSleep,
			log,
		))

		var workerCtx context.Context
		workerCtx, workerCancel = context.WithCancel(context.Background())
		defer workerCancel()

		if err := workerManager.Start(workerCtx); err != nil {
			log.Fatal("Failed to start workers", zap.Error(err))
		}
		log.Info("Signal ingestion worker running in-process")
	}

	// 8. Initialize HTTP handlers
	entityHandler := handler.NewEntityHandler(entityUC, queryUC, log)
	signalHandler := handler.NewSignalHandler(signalUC, log)
	guideHandler := handler.NewGuideHandler(guideUC, log)

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(cfg, log, entityHandler, signalHandler, guideHandler)

	log.Info("HTTP server initialized")

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if workerManager != nil {
		workerCancel()
		if err := workerManager.Stop(); err != nil {
			log.Error("Worker shutdown error", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
