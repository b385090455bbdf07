package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"bizlens/internal/config"
	"bizlens/internal/handlers"
	"bizlens/internal/jobs"
	"bizlens/internal/metrics"
	"bizlens/internal/server"
	"bizlens/internal/storage"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()
	setupLogging(cfg)

	// Load YAML config (optional)
	yamlCfg, err := config.LoadYAMLConfig()
	if err != nil {
		log.Fatalf("Failed to load YAML config: %v", err)
	}
	if err := yamlCfg.Apply(cfg); err != nil {
		log.Fatalf("Invalid YAML config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	m := metrics.New()

	// Shared rate limit storage (optional)
	var srv *server.Server
	var checker handlers.ReadinessChecker
	closeStore := func() {}
	if cfg.RedisURL != "" {
		store, err := storage.NewRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect to rate limit storage: %v", err)
		}
		closeStore = func() {
			if err := store.Close(); err != nil {
				log.Printf("Failed to close rate limit storage: %v", err)
			}
		}

		monitor := jobs.NewStorageMonitor(store, cfg.StorageCheckInterval, m)
		go monitor.Start(ctx)
		checker = monitor

		srv = server.New(cfg, m, store)
		log.Println("Rate limiting uses Redis storage")
	} else {
		srv = server.New(cfg, m, nil)
		log.Println("Rate limiting uses in-memory storage. Set REDIS_URL to share limits across instances.")
	}

	if err := srv.RegisterRoutes(ctx, checker); err != nil {
		closeStore()
		log.Fatalf("Failed to register routes: %v", err)
	}

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancel()
	err = srv.Shutdown()
	closeStore()
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}

// setupLogging installs the default slog logger: text in development, JSON
// otherwise.
func setupLogging(cfg *config.Config) {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}

	var h slog.Handler
	if cfg.IsDev() {
		h = slog.NewTextHandler(os.Stderr, opts)
	} else {
		h = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(h))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
