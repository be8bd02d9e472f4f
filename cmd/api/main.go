// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/ammerola/canteen-be/internal/adapters/db"
	redis_a "github.com/ammerola/canteen-be/internal/adapters/redis_adapter"
	"github.com/ammerola/canteen-be/internal/adapters/spreadsheet"
	"github.com/ammerola/canteen-be/internal/adapters/storage"
	"github.com/ammerola/canteen-be/internal/core/ports"
	"github.com/ammerola/canteen-be/internal/core/services"
	"github.com/ammerola/canteen-be/internal/handlers"
	"github.com/ammerola/canteen-be/internal/handlers/middleware"
	"github.com/ammerola/canteen-be/internal/pkg/clock"
	"github.com/ammerola/canteen-be/internal/pkg/config"
	"github.com/ammerola/canteen-be/internal/pkg/logger"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
	GoVersion = "unknown"
)

func main() {
	slogger := logger.SetupLogger("debug", "json").Logger

	slogger.Info("starting canteen back office",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
		slog.String("go_version", GoVersion),
	)

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	appLogger := logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger = appLogger.Logger
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("log_level", cfg.App.LogLevel),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	secrets, err := config.NewSecretsManager(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to create secrets manager", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := config.ApplySecrets(ctx, cfg, secrets); err != nil {
		slogger.Error("failed to apply secrets", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		if err := runMigrateCommand(ctx, cfg, os.Args[2:], os.Stdout, slogger); err != nil {
			slogger.Error("migrate command failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		return
	}

	if cfg.Database.AutoMigrate || !cfg.IsProduction() {
		if err := runMigrations(ctx, cfg, slogger); err != nil {
			slogger.Error("failed to run migrations", slog.String("error", err.Error()))
			if cfg.IsProduction() {
				os.Exit(1)
			}
		}
	}

	deps, err := initializeDependencies(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to initialize dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer deps.cleanup()

	server := setupHTTPServer(ctx, cfg, deps, appLogger)

	serverErrors := make(chan error, 1)
	go func() {
		slogger.Info("starting HTTP server",
			slog.String("address", cfg.GetServerAddress()),
			slog.Bool("tls", cfg.Server.TLSEnabled),
		)

		if cfg.Server.TLSEnabled {
			serverErrors <- server.ListenAndServeTLS(cfg.Server.TLSCertFile, cfg.Server.TLSKeyFile)
		} else {
			serverErrors <- server.ListenAndServe()
		}
	}()

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("server error", slog.String("error", err.Error()))
		}
	case <-ctx.Done():
		slogger.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slogger.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
			server.Close()
		}

		slogger.Info("server shutdown complete")
	}
}

// dependencies holds the long-lived clients and the assembled router
type dependencies struct {
	database       *db.Database
	redisClient    *redis.Client
	asynqClient    *asynq.Client
	asynqInspector *asynq.Inspector
	migrator       *db.Migrator
	router         *handlers.Router
}

func (d *dependencies) cleanup() {
	if d.migrator != nil {
		d.migrator.Close()
	}
	if d.asynqInspector != nil {
		d.asynqInspector.Close()
	}
	if d.asynqClient != nil {
		d.asynqClient.Close()
	}
	if d.redisClient != nil {
		d.redisClient.Close()
	}
	if d.database != nil {
		d.database.Close()
	}
}

func initializeDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*dependencies, error) {
	deps := &dependencies{}

	logger.Info("connecting to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Name),
	)

	database, err := db.NewDatabase(ctx, &db.Config{
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		User:               cfg.Database.User,
		Password:           cfg.Database.Password,
		Database:           cfg.Database.Name,
		SSLMode:            cfg.Database.SSLMode,
		MaxConnections:     cfg.Database.MaxConnections,
		MinConnections:     cfg.Database.MinConnections,
		MaxConnLifetime:    cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:    cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod:  cfg.Database.HealthCheckPeriod,
		ConnectTimeout:     cfg.Database.ConnectTimeout,
		EnableQueryLogging: cfg.Database.EnableQueryLogging,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	deps.database = database

	logger.Info("connecting to Redis", slog.String("addr", cfg.GetRedisAddr()))

	redisClient := redis.NewClient(&redis.Options{
		Addr:            cfg.GetRedisAddr(),
		Password:        cfg.Redis.Password,
		DB:              cfg.Redis.DB,
		MaxRetries:      cfg.Redis.MaxRetries,
		MinRetryBackoff: cfg.Redis.MinRetryBackoff,
		MaxRetryBackoff: cfg.Redis.MaxRetryBackoff,
		DialTimeout:     cfg.Redis.DialTimeout,
		ReadTimeout:     cfg.Redis.ReadTimeout,
		WriteTimeout:    cfg.Redis.WriteTimeout,
		PoolSize:        cfg.Redis.PoolSize,
		MinIdleConns:    cfg.Redis.MinIdleConns,
		PoolTimeout:     cfg.Redis.PoolTimeout,
	})
	deps.redisClient = redisClient

	if err := redisClient.Ping(ctx).Err(); err != nil {
		deps.cleanup()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	cache := redis_a.NewCache(redisClient, cfg.Redis.TTL, logger)

	asynqRedisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Asynq.RedisAddr,
		Password: cfg.Asynq.RedisPassword,
		DB:       cfg.Asynq.RedisDB,
	}
	deps.asynqClient = asynq.NewClient(asynqRedisOpt)
	deps.asynqInspector = asynq.NewInspector(asynqRedisOpt)

	files, err := newObjectStorage(ctx, cfg, logger)
	if err != nil {
		deps.cleanup()
		return nil, err
	}

	loc, err := time.LoadLocation(cfg.Business.DefaultTimezone)
	if err != nil {
		logger.Warn("unknown default timezone, using UTC",
			slog.String("timezone", cfg.Business.DefaultTimezone))
		loc = time.UTC
	}

	clk := clock.System()

	canteenRepo := db.NewCanteenRepository(database, logger)
	inventoryRepo := db.NewInventoryRepository(database, logger)
	promotionRepo := db.NewPromotionRepository(database, logger)
	menuRepo := db.NewMenuRepository(database, logger)
	orderRepo := db.NewOrderRepository(database, logger)
	feedbackRepo := db.NewFeedbackRepository(database, logger)
	staffRepo := db.NewStaffRepository(database, logger)

	canteenService := services.NewCanteenService(canteenRepo, cache, clk, loc, logger)
	dashboardService := services.NewDashboardService(services.DashboardRepositories{
		Inventory:  inventoryRepo,
		Promotions: promotionRepo,
		Orders:     orderRepo,
		Menu:       menuRepo,
		Feedback:   feedbackRepo,
	}, cache, clk, canteenService, cfg.Business.DashboardCacheTTL, logger)

	rt := services.Runtime{Clock: clk, Locator: canteenService, Dashboard: dashboardService}

	encoder := spreadsheet.Encoder{}
	reportService := services.NewReportService(canteenRepo, inventoryRepo, cache, files, encoder, rt,
		services.ReportConfig{PresignExpiry: cfg.AWS.PresignExpiry}, logger)

	health := handlers.NewHealthHandler(database, redisClient, deps.asynqInspector, cfg, logger).
		WithCacheStats(cache)
	if migrator, err := db.NewMigrator(migrationConfig(cfg), logger); err != nil {
		logger.Warn("migration status unavailable", slog.String("error", err.Error()))
	} else {
		deps.migrator = migrator
		health.WithMigrations(migrator)
	}

	deps.router = &handlers.Router{
		Health:    health,
		Dashboard: handlers.NewDashboardHandler(dashboardService, logger),
		Inventory: handlers.NewInventoryHandler(services.NewInventoryService(inventoryRepo, rt, logger), logger),
		Export:    handlers.NewExportHandler(reportService, encoder, deps.asynqClient, logger),
		Promotion: handlers.NewPromotionHandler(services.NewPromotionService(promotionRepo, rt, logger), logger),
		Order:     handlers.NewOrderHandler(services.NewOrderService(orderRepo, menuRepo, rt, logger), logger),
		Menu:      handlers.NewMenuHandler(services.NewMenuService(menuRepo, rt, logger), logger),
		Feedback:  handlers.NewFeedbackHandler(services.NewFeedbackService(feedbackRepo, rt, logger), logger),
		Settings:  handlers.NewSettingsHandler(canteenService, logger),
		User:      handlers.NewUserHandler(services.NewUserService(staffRepo, rt, logger), logger),
	}

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

// newObjectStorage keeps report files on disk when a local path is set and
// in S3 otherwise
func newObjectStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (ports.ObjectStorage, error) {
	if cfg.AWS.LocalStoragePath != "" {
		return storage.NewLocalStorage(cfg.AWS.LocalStoragePath, logger)
	}
	return storage.NewS3Storage(ctx, &storage.S3Config{
		Region:          cfg.AWS.Region,
		Bucket:          cfg.AWS.S3Bucket,
		AccessKeyID:     cfg.AWS.AccessKeyID,
		SecretAccessKey: cfg.AWS.SecretAccessKey,
		Endpoint:        cfg.AWS.S3Endpoint,
		UsePathStyle:    cfg.AWS.UsePathStyle,
		CreateBucket:    cfg.AWS.CreateBucket,
	}, logger)
}

func setupHTTPServer(ctx context.Context, cfg *config.Config, deps *dependencies, appLogger *logger.Logger) *http.Server {
	slogger := appLogger.Logger

	mux := http.NewServeMux()
	if !cfg.Server.EnableHealthCheck {
		deps.router.Health = nil
	}
	deps.router.Register(mux)

	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Logger(slogger),
		middleware.Recovery(appLogger),
	}
	if cfg.Security.SecureHeaders {
		mws = append(mws, middleware.SecureHeaders)
	}
	if len(cfg.Security.AllowedOrigins) > 0 {
		mws = append(mws, middleware.CORS(cfg.Security.AllowedOrigins))
	}
	if cfg.Security.RateLimitRequests > 0 {
		limiter := middleware.NewRateLimiter(cfg.Security.RateLimitRequests, cfg.Security.RateLimitDuration)
		go limiter.Cleanup(ctx)
		mws = append(mws, limiter.Middleware)
	}
	mws = append(mws, middleware.MaxBody(cfg.Security.MaxBodyBytes), middleware.Compression)
	if cfg.Server.WriteTimeout > time.Second {
		mws = append(mws, middleware.Timeout(cfg.Server.WriteTimeout-time.Second))
	}

	return &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        middleware.Chain(mux, mws...),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(slogger.Handler(), slog.LevelError),
	}
}

func runMigrations(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("running database migrations")
	return db.RunMigrationsWithRetry(ctx, migrationConfig(cfg), logger, 3)
}

func migrationConfig(cfg *config.Config) *db.MigrationConfig {
	return &db.MigrationConfig{
		DatabaseURL: cfg.GetDatabaseURL(),
		SourcePath:  cfg.Database.MigrationPath,
		TableName:   "schema_migrations",
		SchemaName:  "public",
	}
}
