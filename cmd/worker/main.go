package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/directory-microservice/internal/config"
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

	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Signal Ingestion Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("batch_size", cfg.Worker.BatchSize))

	// 3. Connect to Redis
	redisClient, err := redisRepo.NewClient(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 4. Initialize repositories. The worker binary keeps its own
	// in-process ledger; entity confirmation requires running the worker
	// inside the API process, so standalone runs only record and republish.
	clk := clock.NewSystem()
	entityRepo := memory.NewEntityRepository(clk, log)
	signalRepo := memory.NewSignalRepository(clk)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	if cfg.Directory.EntitySeedPath != "" {
		if _, err := entityRepo.LoadSeed(cfg.Directory.EntitySeedPath); err != nil {
			log.Fatal("Failed to load entity seed", zap.Error(err))
		}
	}

	// 5. Initialize use cases
	signalUC := usecase.NewSignalUseCase(signalRepo, entityRepo, streamRepo, log)

	// 6. Initialize workers
	ingestionWorker := signals.NewIngestionWorker(
		streamRepo,
		signalUC,
		cfg.Worker.ConsumerGroup,
		cfg.Worker.BatchSize,
		cfg.Worker.EmptyQueueSleep,
		log,
	)

	// 7. Create manager and register workers
	manager := worker.NewManager(log)
	manager.Register(ingestionWorker)

	// 8. Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := manager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down workers gracefully...")
	cancel()

	if err := manager.Stop(); err != nil {
		log.Error("Worker shutdown error", zap.Error(err))
	}

	log.Info("Worker stopped successfully")
}
