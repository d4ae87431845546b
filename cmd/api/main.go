// Package main is the entry point for the CakeBook API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/cakebook/backend/config"
	"github.com/cakebook/backend/internal/application/adapter"
	"github.com/cakebook/backend/internal/application/usecase/analytics"
	"github.com/cakebook/backend/internal/application/usecase/auth"
	"github.com/cakebook/backend/internal/application/usecase/expense"
	"github.com/cakebook/backend/internal/application/usecase/sale"
	"github.com/cakebook/backend/internal/infra/db"
	"github.com/cakebook/backend/internal/infra/server/router"
	"github.com/cakebook/backend/internal/integration/adapters"
	"github.com/cakebook/backend/internal/integration/cache"
	"github.com/cakebook/backend/internal/integration/entrypoint/controller"
	"github.com/cakebook/backend/internal/integration/entrypoint/middleware"
	"github.com/cakebook/backend/internal/integration/persistence"
	"github.com/cakebook/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting CakeBook API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Repositories. Without DATABASE_URL the server still runs: listings
	// and analytics serve zero data, writes fail with a clear error, and
	// accounts live in process memory.
	var (
		saleRepo        adapter.SaleRepository
		expenseRepo     adapter.ExpenseRepository
		userRepo        adapter.UserRepository
		tokenRepo       persistence.TokenRepository
		dbHealthChecker func() bool
	)

	if cfg.Database.URL == "" {
		slog.Warn("DATABASE_URL not set, running without a datastore")
		saleRepo = persistence.NewNoopSaleRepository()
		expenseRepo = persistence.NewNoopExpenseRepository()
		userRepo = persistence.NewMemoryUserRepository()
		tokenRepo = persistence.NewMemoryTokenRepository()
		dbHealthChecker = func() bool { return false }
	} else {
		database, err := db.NewPostgresConnection(&cfg.Database)
		if err != nil {
			slog.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()

		if err := database.AutoMigrate(
			&model.UserModel{},
			&model.RefreshTokenModel{},
			&model.SaleModel{},
			&model.SaleItemModel{},
			&model.ExpenseModel{},
		); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		saleRepo = persistence.NewSaleRepository(database.DB())
		expenseRepo = persistence.NewExpenseRepository(database.DB())
		userRepo = persistence.NewUserRepository(database.DB())
		tokenRepo = persistence.NewTokenRepository(database.DB())
		dbHealthChecker = database.HealthCheck
	}

	// Snapshot cache. Redis when configured, process memory otherwise.
	var snapshotCache adapter.SnapshotCache
	if cfg.Redis.URL == "" {
		slog.Info("REDIS_URL not set, using in-memory snapshot cache")
		snapshotCache = cache.NewMemorySnapshotCache()
	} else {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			slog.Error("Invalid REDIS_URL", "error", err)
			os.Exit(1)
		}
		snapshotCache = cache.NewRedisSnapshotCache(redis.NewClient(opts))
	}

	// Adapters and services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
		tokenRepo,
	)

	// Auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Sale, expense and analytics use cases
	createSaleUseCase := sale.NewCreateSaleUseCase(saleRepo)
	listSalesUseCase := sale.NewListSalesUseCase(saleRepo, cfg.Analytics.ListCooldown, cfg.Analytics.ListRetryDelay)
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo, cfg.Analytics.ListCooldown, cfg.Analytics.ListRetryDelay)
	getAnalyticsUseCase := analytics.NewGetAnalyticsUseCase(
		saleRepo,
		expenseRepo,
		snapshotCache,
		cfg.Analytics.Cooldown,
		cfg.Analytics.RetryDelay,
	)

	// Controllers and middleware
	healthController := controller.NewHealthController(dbHealthChecker)
	authController := controller.NewAuthController(registerUseCase, loginUseCase, refreshTokenUseCase, logoutUseCase)
	saleController := controller.NewSaleController(createSaleUseCase, listSalesUseCase, getAnalyticsUseCase.Guard())
	expenseController := controller.NewExpenseController(createExpenseUseCase, listExpensesUseCase, getAnalyticsUseCase.Guard())
	analyticsController := controller.NewAnalyticsController(getAnalyticsUseCase)
	loginRateLimiter := middleware.NewRateLimiter()
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Router and HTTP server
	r := router.NewRouter(
		healthController,
		authController,
		saleController,
		expenseController,
		analyticsController,
		loginRateLimiter,
		authMiddleware,
		cfg.Server.CORSOrigins,
	)
	engine := r.Setup(cfg.Server.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
