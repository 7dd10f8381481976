// Guidepost - learning guide API server
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

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/ashureev/guidepost/internal/ai"
	"github.com/ashureev/guidepost/internal/api"
	"github.com/ashureev/guidepost/internal/config"
	"github.com/ashureev/guidepost/internal/fallback"
	"github.com/ashureev/guidepost/internal/middleware"
	"github.com/ashureev/guidepost/internal/prompt"
	"github.com/ashureev/guidepost/internal/ratelimit"
	"github.com/ashureev/guidepost/internal/store"
	"github.com/ashureev/guidepost/web"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting server", "port", cfg.Port, "dev", cfg.IsDevelopment())

	// Initialize dependencies.
	repo, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			slog.Error("Failed to close repository", "error", closeErr)
		}
	}()

	if err := repo.Ping(context.Background()); err != nil {
		slog.Error("Database health check failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database connected")

	// Initialize services.
	limiter := ratelimit.New(cfg.RateLimitMax, cfg.RateLimitWindow)
	generator := fallback.NewGenerator()
	prompts := prompt.NewBuilder(cfg.GuideTaskCount)

	// The AI gateway is optional; without a credential every guide comes
	// from the store or the fallback generator.
	var gateway *ai.Gateway
	if cfg.AIConfigured() {
		gateway, err = ai.NewGateway(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel, prompts, generator)
		if err != nil {
			slog.Warn("Failed to initialize AI gateway, AI features will be disabled", "error", err)
			gateway = nil
		} else {
			defer gateway.Close()
			slog.Info("AI gateway initialized", "model", cfg.GeminiModel)
		}
	}
	if gateway == nil {
		slog.Info("AI features disabled (GEMINI_API_KEY not set or client init failed)")
	}

	// Initialize handlers.
	handler := api.NewHandler(repo, gateway, generator, limiter, cfg)

	// Setup router.
	r := chi.NewRouter()

	// Global middleware.
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.CORS([]string{"*"}))

	handler.RegisterRoutes(r)

	// Serve embedded frontend (SPA catch-all).
	r.Handle("/*", web.SPAHandler())

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start server.
	go func() {
		slog.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal.
	<-ctx.Done()
	stop()

	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	handler.Stats().LogSummary()
	slog.Info("Server stopped successfully")
}
