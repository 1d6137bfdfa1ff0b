package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/shenikar/animal_safety_tracker/internal/config"
	v1 "github.com/shenikar/animal_safety_tracker/internal/handler/http/v1"
	"github.com/shenikar/animal_safety_tracker/internal/repository"
	"github.com/shenikar/animal_safety_tracker/internal/service"
	"github.com/shenikar/animal_safety_tracker/internal/webhook"
	"github.com/shenikar/animal_safety_tracker/pkg/logger"
	"github.com/shenikar/animal_safety_tracker/pkg/postgres"
	redisclient "github.com/shenikar/animal_safety_tracker/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/animal_safety_tracker/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Animal Safety Tracker API
// @version 1.0
// @description GPS tracking of animals with territories, danger zones, alerts and a public registry of lost aggressive animals.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
func runMigrations(cfg *config.Config, log *logrus.Entry) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
		migrationURL = strings.Replace(migrationURL, "postgresql://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	baseLog := logger.New(cfg.LogLevel)
	log := logger.WithProcess(baseLog, "api")

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Redis: кеш геозон и очередь вебхуков
	redisClient, err := redisclient.NewRedisClient(ctx, redisclient.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Вебхуки: публикация в очередь и фоновая доставка
	webhookPublisher := webhook.NewRedisWebhookPublisher(redisClient)
	webhookWorker := webhook.NewWebhookWorker(redisClient, baseLog, cfg)
	webhookWorker.Start(ctx)

	// Репозитории
	animalRepo := repository.NewAnimalRepository(dbpool)
	locationRepo := repository.NewLocationRepository(dbpool)
	geofenceRepo := repository.NewGeofenceRepository(dbpool, redisClient, cfg.GeofenceCacheTTL)
	alertRepo := repository.NewAlertRepository(dbpool)

	// Сервисы
	evaluator := service.NewGeofenceEvaluator(geofenceRepo, baseLog, cfg.MaxSpeedKmh)
	alertManager := service.NewAlertManager(alertRepo, animalRepo, webhookPublisher, baseLog)
	locationService := service.NewLocationService(locationRepo, animalRepo, evaluator, alertManager, baseLog)
	geofenceService := service.NewGeofenceService(geofenceRepo, animalRepo, baseLog)
	lostService := service.NewLostAnimalService(animalRepo, webhookPublisher, baseLog)

	// Хэндлеры
	handler := v1.NewHandler(locationService, geofenceService, alertManager, lostService, baseLog, cfg)

	if strings.EqualFold(cfg.LogLevel, "debug") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}
	// Останавливаем воркер вебхуков
	cancel()

	log.Info("Server gracefully stopped")
}
