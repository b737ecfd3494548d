package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/sheets_ledger_app/internal/core/services"
	"github.com/SscSPs/sheets_ledger_app/internal/handlers"
	"github.com/SscSPs/sheets_ledger_app/internal/middleware"
	"github.com/SscSPs/sheets_ledger_app/internal/platform/config"
	"github.com/SscSPs/sheets_ledger_app/internal/repositories"
	"github.com/SscSPs/sheets_ledger_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// @title Sheets Ledger API
// @version 1.0
// @description Personal double-entry ledger backed by Google Sheets or PostgreSQL.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterValidators(); err != nil {
		logger.Error("Failed to register request validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()
	repos, closeRepos, err := repositories.Open(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to open storage", slog.String("backend", cfg.StorageBackend), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeRepos()

	if cfg.RunMigrations || cfg.StorageBackend == config.StorageSheets {
		logger.Info("Preparing storage schema...", slog.String("backend", cfg.StorageBackend))
		if err := repos.Schema.EnsureSchema(ctx); err != nil {
			logger.Error("Failed to prepare storage schema", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	selector, err := services.NewFinancialYearSelector(cfg.FinancialYear, time.Now())
	if err != nil {
		logger.Error("Invalid FINANCIAL_YEAR", slog.String("error", err.Error()))
		os.Exit(1)
	}
	selector.Subscribe(func(label string) {
		logger.Info("Selected financial year changed", slog.String("financial_year", label))
	})

	container, err := services.NewServiceContainer(cfg, repos, selector)
	if err != nil {
		logger.Error("Failed to create services", slog.String("error", err.Error()))
		os.Exit(1)
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, container, posthogClient); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", slog.String("error", err.Error()))
	}
}
