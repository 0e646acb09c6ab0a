// Command nbfcserver serves the NBFC registry over HTTP/JSON.
//
// Endpoints:
//
//	GET /api/v1/recommendations?region=&classification=&max_results=
//	GET /api/v1/institutions/{name}
//	GET /api/v1/search?q=&field=&max_results=
//	GET /api/v1/statistics?region=
//	GET /api/v1/summary?region=&lang=
//
// Configuration is read from config.yaml and environment variables
// (SERVER_PORT, REGISTRY_DATA_PATH, LOG_LEVEL, ...). When the registry CSV
// cannot be read the server still starts and answers 503 on every
// operation rather than refusing to boot.
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

	"github.com/go-chi/chi/v5"

	"github.com/AbhayARao26/nbfcreg"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	logger := newLogger(cfg.Log.Level)
	slog.SetDefault(logger)

	registry := nbfcreg.NewRegistry(
		nbfcreg.WithDataPath(cfg.Registry.DataPath),
		nbfcreg.WithLogger(logger),
	)

	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(requestLogger(logger))
	NewHandler(registry, logger).Register(r)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
