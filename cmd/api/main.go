// Package main is the entry point for the Travelog API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
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
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/nvats/travelog/internal/ai"
	"github.com/nvats/travelog/internal/config"
	"github.com/nvats/travelog/internal/handler"
	"github.com/nvats/travelog/internal/middleware"
	"github.com/nvats/travelog/internal/service"
	"github.com/nvats/travelog/internal/storage"
	"github.com/nvats/travelog/internal/store"
)

// maxBodyBytes caps request body sizes. The largest legitimate payload is a
// full tour update with a data-URI cover image, so the limit is generous.
const maxBodyBytes = 8 << 20 // 8 MiB

func main() {
	// --- Config -----------------------------------------------------------
	// .env is optional; real deployments set environment variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// log/slog is the stdlib structured logger introduced in Go 1.21.
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Storage ----------------------------------------------------------
	// Redis holds the persisted tour and settings blobs. Without REDIS_ADDR
	// the server runs purely in memory, which is fine for local development.
	var blobs storage.Store
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		defer client.Close()

		// Verify Redis is reachable before accepting traffic.
		if err := client.Ping(context.Background()).Err(); err != nil {
			slog.Error("failed to connect to redis", "addr", cfg.RedisAddr, "error", err)
			os.Exit(1)
		}
		slog.Info("redis connection established", "addr", cfg.RedisAddr)
		blobs = storage.NewRedis(client)
	} else {
		slog.Warn("REDIS_ADDR not set, running with in-memory storage")
		blobs = storage.NewMemory()
	}

	tourStore := store.NewTourStore(context.Background(), blobs, logger)
	settingsStore := store.NewSettingsStore(context.Background(), blobs, logger)

	// --- Services ---------------------------------------------------------
	gemini := ai.NewGemini(cfg.GeminiAPIKey, &http.Client{Timeout: 60 * time.Second}, logger)
	if cfg.GeminiAPIKey == "" {
		slog.Warn("GEMINI_API_KEY not set, AI endpoints will serve fallback content")
	}

	tourService := service.NewTourService(tourStore, settingsStore)
	quoteService := service.NewQuoteService(cfg.QuoteMarginRate)
	aiService := service.NewAIService(tourStore, gemini)
	exportService := service.NewExportService(tourStore, settingsStore, quoteService)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer
	// → CORS → rate limit → body size cap.
	// RequestID generates a unique trace ID per request.
	// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP (safe behind a proxy).
	// SlogLogger writes one structured JSON log line per request.
	// Recoverer catches panics and returns HTTP 500 instead of crashing.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewRateLimiter(cfg.RateLimitRPS, int(cfg.RateLimitRPS)*2))
	r.Use(middleware.NewMaxBodySizeHandler(maxBodyBytes))

	srvHandler := handler.NewServer(tourService, quoteService, aiService, exportService, settingsStore)
	r.Mount("/", srvHandler.Routes())

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	// WriteTimeout has headroom for PDF export and AI generation requests.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
