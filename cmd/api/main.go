package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"client-service/internal/app"
	"client-service/internal/config"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[MAIN] No .env file found, relying on system env vars")
	}
	cfg := config.Load()

	srv, err := app.NewServer(cfg)
	if err != nil {
		log.Fatalf("failed to build server: %v", err)
	}
	logger := srv.Logger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Run server in a separate goroutine so we can listen for shutdown signals
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(ctx)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server failed to start", zap.Error(err))
			_ = srv.Shutdown(context.Background())
			os.Exit(1)
		}
		return
	case <-ctx.Done():
	}

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
		return
	}
	logger.Info("server stopped gracefully")
}
