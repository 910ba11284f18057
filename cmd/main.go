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

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/shenikar/agency_dispatch_system/internal/auth"
	"github.com/shenikar/agency_dispatch_system/internal/config"
	v1 "github.com/shenikar/agency_dispatch_system/internal/handler/http/v1"
	"github.com/shenikar/agency_dispatch_system/internal/imagestore"
	"github.com/shenikar/agency_dispatch_system/internal/queue"
	"github.com/shenikar/agency_dispatch_system/internal/repository"
	"github.com/shenikar/agency_dispatch_system/internal/service"
	"github.com/shenikar/agency_dispatch_system/pkg/logger"
	"github.com/shenikar/agency_dispatch_system/pkg/objectstore"
	"github.com/shenikar/agency_dispatch_system/pkg/postgres"
	redisclient "github.com/shenikar/agency_dispatch_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/agency_dispatch_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Agency Dispatch System API
// @version 1.0
// @description Incident reporting backend: agencies, events, ground staff and image ingestion.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
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
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

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

	// Redis: основной адрес и запасные
	redisClient, redisAddr, err := redisclient.NewRedisClientWithFallback(ctx, cfg.RedisAddrs(), cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.WithField("addr", redisAddr).Info("Successfully connected to Redis")

	// Объектное хранилище снимков. Недоступность не блокирует запуск.
	objectStore, err := objectstore.NewClient(cfg)
	if err != nil {
		log.Fatalf("Failed to create object store client: %v", err)
	}
	if err := objectStore.Ping(ctx, cfg.ImageBucket); err != nil {
		log.WithError(err).Warn("Object store is not reachable, images will resolve to their URLs")
	}

	// Инициализация репозиториев
	agencyRepo := repository.NewAgencyRepository(dbpool)
	eventRepo := repository.NewEventRepository(dbpool)
	staffRepo := repository.NewGroundStaffRepository(dbpool)
	imageRepo := repository.NewImageRepository(dbpool)
	configRepo := repository.NewConfigRepository(dbpool)
	userRepo := repository.NewUserRepository(dbpool)

	// Токены и их отзыв
	tokenManager := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
	revocations := auth.NewRevocationStore(redisClient)

	// Разрешение снимков с кэшем в Redis
	resolver := imagestore.NewResolver(objectStore, imagestore.NewRedisCache(redisClient), imagestore.Options{
		Bucket:       cfg.ImageBucket,
		CacheTTL:     cfg.ImageCacheTTL,
		Concurrency:  cfg.ImageFetchWorkers,
		FetchTimeout: cfg.ObjectStoreTransferTimeout,
	}, log)

	// Инициализация сервисов
	modelConfigService := service.NewModelConfigService(configRepo, cfg, log)
	agencyService := service.NewAgencyService(agencyRepo, tokenManager, revocations, log)
	eventService := service.NewEventService(eventRepo, agencyRepo, staffRepo, resolver, log)
	staffService := service.NewGroundStaffService(staffRepo, agencyRepo, eventRepo, tokenManager, log)
	imageService := service.NewImageService(imageRepo, modelConfigService, queue.NewRedisPublisher(redisClient), objectStore, cfg, log)
	userService := service.NewUserService(userRepo, tokenManager, log)
	dispatchService := service.NewDispatchService(eventRepo, agencyRepo, imageRepo, cfg, log)

	// Воркер результатов детекции
	detectionWorker := queue.NewDetectionWorker(redisClient, dispatchService, log, cfg)
	workerDone := detectionWorker.Start(ctx)

	// Инициализация хэндлеров
	handler := v1.NewHandler(v1.Services{
		Agencies:    agencyService,
		Events:      eventService,
		GroundStaff: staffService,
		Images:      imageService,
		ModelConfig: modelConfigService,
		Users:       userService,
	}, tokenManager, revocations, log, cfg)

	router := v1.NewRouter(handler)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
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
		log.WithError(err).Error("Server forced to shutdown")
	}

	// Останавливаем воркер и ждем завершения текущего сообщения
	cancel()
	select {
	case <-workerDone:
	case <-shutdownCtx.Done():
		log.Warn("Detection worker did not stop in time")
	}

	log.Info("Server gracefully stopped")
}
