package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Pazmazz/Mr-Tuckers-Car-Dealership/internal/config"
	"github.com/Pazmazz/Mr-Tuckers-Car-Dealership/internal/listing"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)
	sugar := logger.Sugar()

	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		sugar.Fatal("DATABASE_URL is required for the listing service")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := listing.New(ctx, cfg.DatabaseURL)
	if err != nil {
		sugar.Fatalw("postgres unavailable", "error", err)
	}

	server := &http.Server{
		Addr:              cfg.Address(),
		Handler:           listing.Handler(store),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sugar.Infow("vehicle listing service listening", "addr", cfg.Address())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			sugar.Fatalw("server error", "error", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 8*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("shutdown error", "error", err)
	}
	if err := store.Close(); err != nil {
		sugar.Errorw("close error", "error", err)
	}

	sugar.Info("listing service stopped")
}
