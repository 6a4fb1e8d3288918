package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/maooe/finance_control_app/internal/adapters/database/sqlite"
	"github.com/maooe/finance_control_app/internal/adapters/llm"
	"github.com/maooe/finance_control_app/internal/adapters/remote"
	portsrepo "github.com/maooe/finance_control_app/internal/core/ports/repositories"
	"github.com/maooe/finance_control_app/internal/core/services"
	"github.com/maooe/finance_control_app/internal/dto"
	"github.com/maooe/finance_control_app/internal/handlers"
	"github.com/maooe/finance_control_app/internal/middleware"
	"github.com/maooe/finance_control_app/internal/utils"
	"github.com/maooe/finance_control_app/pkg/config"
	"github.com/maooe/finance_control_app/pkg/database"
)

// @title MAOOE Finance API
// @version 1.0
// @description Backend for the MAOOE personal and business finance tracker.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

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

	// Open the local storage file. The single value table is created here if
	// this is a fresh install.
	db, err := database.NewSQLiteDB(cfg.SQLitePath)
	if err != nil {
		logger.Error("Failed to open local storage", slog.String("error", err.Error()), slog.String("path", cfg.SQLitePath))
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("Local storage opened", slog.String("path", cfg.SQLitePath))

	stateRepo := sqlite.NewStateRepository(db)
	repos := portsrepo.RepositoryProvider{
		State:      stateRepo,
		Sessions:   stateRepo,
		Remote:     remote.NewSheetsClient(),
		Completion: llm.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiTemperature),
	}

	serviceContainer := services.NewServiceContainer(cfg, repos, logger)

	// Load persisted state into memory before the first request.
	if err := serviceContainer.Store.Hydrate(context.Background()); err != nil {
		logger.Error("Failed to hydrate entity store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := dto.RegisterCustomValidations(); err != nil {
		logger.Error("Failed to register request validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	// The SPA is served from its own origin.
	corsConfig := cors.DefaultConfig()
	if cfg.FrontendBaseURL != "" {
		corsConfig.AllowOrigins = []string{cfg.FrontendBaseURL}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()
	r.Use(middleware.PosthogMiddleware(posthogClient))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down")

	// Drop any pending debounced push before closing the listener.
	serviceContainer.Sync.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", slog.String("error", err.Error()))
	}
}
