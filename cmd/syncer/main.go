package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shenikar/animal_safety_tracker/internal/config"
	"github.com/shenikar/animal_safety_tracker/internal/repository"
	"github.com/shenikar/animal_safety_tracker/internal/telemetry"
	"github.com/shenikar/animal_safety_tracker/pkg/logger"
	redisclient "github.com/shenikar/animal_safety_tracker/pkg/redis"
	"github.com/sirupsen/logrus"
)

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadSyncConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	baseLog := logger.New(cfg.LogLevel)
	log := logger.WithProcess(baseLog, "syncer")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Водяной знак хранится в Redis, без Redis синхронизатор работает с водяным знаком в памяти
	var store telemetry.WatermarkStore
	connectCtx, connectCancel := context.WithTimeout(ctx, 5*time.Second)
	redisClient, err := redisclient.NewRedisClient(connectCtx, redisclient.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
		PoolSize: 2,
	})
	connectCancel()
	if err != nil {
		log.WithError(err).Warn("Redis is unavailable, watermark will not survive restarts")
	} else {
		defer redisClient.Close()
		store = repository.NewWatermarkRepository(redisClient, "")
		log.Info("Successfully connected to Redis")
	}

	provider := telemetry.NewHTTPProvider(cfg.Telemetry.ProviderURL, cfg.Telemetry.ProviderToken, cfg.Telemetry.HTTPTimeout)
	forwarder := telemetry.NewHTTPForwarder(cfg.Telemetry.IngestURL, cfg.Telemetry.IngestAPIKey, cfg.Telemetry.HTTPTimeout)

	syncService := telemetry.NewSyncService(provider, forwarder, store, baseLog, telemetry.Options{
		Interval:         cfg.Telemetry.PollInterval,
		ForwardAttempts:  cfg.Telemetry.ForwardAttempts,
		ForwardBaseDelay: cfg.Telemetry.ForwardBaseDelay,
		MaxBatchSize:     cfg.Telemetry.MaxBatchSize,
	})
	if err := syncService.Start(ctx); err != nil {
		log.Fatalf("Failed to start telemetry sync: %v", err)
	}

	// Graceful shutdown: текущий тик доводится до конца
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, stopping telemetry sync...")

	syncService.Stop()
	log.WithField("watermark", syncService.Watermark()).Info("Syncer gracefully stopped")
}
