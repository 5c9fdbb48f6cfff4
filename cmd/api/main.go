package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"portfolio_api/internal/config"
	"portfolio_api/internal/database"
	"portfolio_api/internal/logging"
	"portfolio_api/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx := context.Background()

	// The API still starts without a database; store-backed routes then
	// answer "database not available".
	var store database.DocumentStore
	opened, err := database.Open(ctx, database.Options{URL: cfg.DatabaseURL, Name: cfg.DatabaseName}, logger)
	switch {
	case errors.Is(err, database.ErrNotConfigured):
		logger.Warn("DATABASE_URL not set, running without a database")
	case err != nil:
		logger.Error("failed to connect to database", zap.Error(err))
	default:
		store = opened
	}

	app := server.NewServer(cfg, store, logger)

	seedCtx, cancelSeed := context.WithTimeout(ctx, 30*time.Second)
	if err := app.Seed(seedCtx); err != nil {
		logger.Error("failed to seed sample data", zap.Error(err))
	}
	cancelSeed()

	srv := app.HTTPServer()

	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	if err := app.Close(shutdownCtx); err != nil {
		logger.Error("database close", zap.Error(err))
	}
	logger.Info("server exiting")
}
