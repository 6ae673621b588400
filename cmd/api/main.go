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

	"github.com/oncoscreen/oncoscreen-backend/internal/api"
	"github.com/oncoscreen/oncoscreen-backend/internal/assistant"
	"github.com/oncoscreen/oncoscreen-backend/internal/config"
	"github.com/oncoscreen/oncoscreen-backend/internal/store"
)

func main() {
	// ── Logger ────────────────────────────────────────────────────────────────
	// JSON in production, pretty text in development.
	var logger *slog.Logger
	if os.Getenv("ENV") == "production" {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	} else {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	// ── Config ────────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	logger.Info("config loaded", "env", cfg.Env, "port", cfg.Port)

	// ── Store ─────────────────────────────────────────────────────────────────
	// Everything lives in memory. A restart discards all sessions, which is the
	// intended behavior for anonymous health data.
	st := store.New()

	// ── Assistant ─────────────────────────────────────────────────────────────
	// The hosted model is only used when a request carries its own API key; the
	// keyword matcher handles everything else.
	asst := assistant.New(assistant.NewClient(cfg.OpenAIModel), logger)

	// ── HTTP server ───────────────────────────────────────────────────────────
	handler := api.NewServer(
		st,
		asst,
		api.Config{
			AllowedOrigin: cfg.AllowedOrigin,
			Env:           cfg.Env,
		},
		logger,
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // chat proxies a slow upstream model
		IdleTimeout:  120 * time.Second,
	}

	// ── Graceful shutdown ─────────────────────────────────────────────────────
	// Root context cancelled by OS signal. Janitor and HTTP server both respect it.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start the session janitor in a background goroutine. It blocks until ctx
	// is done.
	janitor := store.NewJanitor(st, cfg.SessionTTL, cfg.SweepInterval, logger)
	go janitor.Start(ctx)

	// Start the HTTP server in a background goroutine.
	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until either a signal arrives or the server dies unexpectedly.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	}

	// Give in-flight HTTP requests up to 20 seconds to finish.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
