package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/org-service/internal/api/http"
	"github.com/spec-kit/org-service/internal/api/http/handlers"
	"github.com/spec-kit/org-service/internal/auth"
	"github.com/spec-kit/org-service/internal/config"
	"github.com/spec-kit/org-service/internal/events"
	"github.com/spec-kit/org-service/internal/observability"
	"github.com/spec-kit/org-service/internal/persistence"
	"github.com/spec-kit/org-service/internal/service"
	"github.com/spec-kit/org-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	tokens, err := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL())
	if err != nil {
		logger.Fatal("invalid token configuration", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := persistence.OpenDatabase(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()
	logger.Info("storage ready", zap.String("driver", db.Driver))

	// Redis only backs the auth rate limiter; without it the limiter keeps
	// its counters in memory.
	var (
		limiterStorage fiber.Storage
		redisProbe     handlers.Pinger
	)
	redis, err := persistence.NewRedis(ctx, cfg.Redis, logger)
	if err != nil {
		logger.Warn("redis unavailable; rate limiter uses memory", zap.Error(err))
	} else {
		defer redis.Close()
		limiterStorage = persistence.NewRedisStorage(redis.Client, "")
		redisProbe = redis
	}

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher(logger)
	worker.StartAuditWorker(service.NewAuditService(dispatcher, logger))

	deps := service.Dependencies{Dispatcher: dispatcher, Logger: logger}
	store := db.Repositories
	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	if cfg.Seed.SampleData {
		loaded, err := service.NewSeeder(store, hasher, deps).SeedSampleData(ctx)
		if err != nil {
			logger.Fatal("failed to seed sample data", zap.Error(err))
		}
		if !loaded {
			logger.Info("sample data skipped; store is not empty")
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, db, redisProbe, metrics),
		Auth:           handlers.NewAuthHandler(service.NewAuthService(store.Employees, tokens, hasher, deps)),
		Employees:      handlers.NewEmployeesHandler(service.NewEmployeeService(store, hasher, deps)),
		Departments:    handlers.NewDepartmentsHandler(service.NewDepartmentService(store, deps)),
		Directorates:   handlers.NewDirectoratesHandler(service.NewDirectorateService(store, deps)),
		AuthMiddleware: auth.NewAuthMiddleware(tokens, store.Employees),
		AuthLimiter:    httptransport.AuthRateLimiter(cfg.RateLimit.Max, cfg.RateLimit.Window(), limiterStorage),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil && !errors.Is(err, context.Canceled) {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
