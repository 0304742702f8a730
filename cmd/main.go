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

	"github.com/sirupsen/logrus"
	"github.com/swiftdispatch/emergency_dispatch_system/internal/config"
	"github.com/swiftdispatch/emergency_dispatch_system/internal/dataset"
	v1 "github.com/swiftdispatch/emergency_dispatch_system/internal/handler/http/v1"
	"github.com/swiftdispatch/emergency_dispatch_system/internal/models"
	"github.com/swiftdispatch/emergency_dispatch_system/internal/ranking"
	"github.com/swiftdispatch/emergency_dispatch_system/internal/repository"
	"github.com/swiftdispatch/emergency_dispatch_system/internal/routing"
	"github.com/swiftdispatch/emergency_dispatch_system/internal/service"
	"github.com/swiftdispatch/emergency_dispatch_system/internal/webhook"
	"github.com/swiftdispatch/emergency_dispatch_system/pkg/logger"
	"github.com/swiftdispatch/emergency_dispatch_system/pkg/postgres"
	redisclient "github.com/swiftdispatch/emergency_dispatch_system/pkg/redis"

	_ "github.com/swiftdispatch/emergency_dispatch_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Emergency Dispatch System API
// @version 1.0
// @description This is an Emergency Dispatch System API server.
// @host localhost:8080
// @BasePath /api
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

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
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Справочник больниц загружается один раз при старте и передается
	// клиенту ранжирования как неизменяемый блоб
	datasetBlob, err := dataset.NewFetcher(cfg).Fetch(ctx)
	if err != nil {
		log.Fatalf("Failed to fetch hospital dataset: %v", err)
	}
	log.WithField("size_bytes", len(datasetBlob)).Info("Hospital dataset loaded")

	// Клиент модели ранжирования
	ranker := ranking.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMTimeout, datasetBlob)

	// Поиск маршрутов и агрегатор раунда расчета. Без внешнего роутера
	// используется оценка по прямой.
	var routeLookup routing.RouteLookup = routing.NewOSRMLookup(cfg.RoutingBaseURL, cfg.RoutingTimeout)
	if cfg.RoutingBaseURL == "" {
		routeLookup = routing.NewEstimatorLookup()
	}
	annotator := routing.NewAggregator(routeLookup, log)

	// Инициализация издателя событий диспетчеризации
	eventPublisher := webhook.NewRedisEventPublisher(redisClient)

	// Инициализация и запуск воркера доставки событий
	eventWorker := webhook.NewWorker(redisClient, log, cfg)
	eventWorker.Start(ctx)

	// Инициализация репозиториев
	triageRepo := repository.NewTriageRepository(dbpool)
	resultStore := repository.NewResultStore(redisClient)

	// Инициализация сервисов
	origin := models.Coordinates{Lat: cfg.OriginLat, Lon: cfg.OriginLon}
	dispatchService := service.NewDispatchService(triageRepo, resultStore, ranker, annotator, eventPublisher, origin, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(dispatchService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	handler.RegisterRoutes(router)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
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
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
