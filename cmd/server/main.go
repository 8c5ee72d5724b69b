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
	"github.com/Pazmazz/Mr-Tuckers-Car-Dealership/internal/dealer"
	"github.com/Pazmazz/Mr-Tuckers-Car-Dealership/internal/httpapi"
	"github.com/Pazmazz/Mr-Tuckers-Car-Dealership/internal/store"
	filestore "github.com/Pazmazz/Mr-Tuckers-Car-Dealership/internal/store/file"
	"github.com/Pazmazz/Mr-Tuckers-Car-Dealership/internal/store/memory"
	"github.com/Pazmazz/Mr-Tuckers-Car-Dealership/internal/store/redisstore"
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

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	snapshots, closers := selectStore(ctx, cfg, sugar)

	svc, err := dealer.New(ctx, snapshots)
	if err != nil {
		sugar.Fatalw("service init failed", "error", err)
	}

	auth, err := httpapi.NewAuthManager(cfg.AuthSecret, time.Duration(cfg.AccessTokenTTLMinutes)*time.Minute, cfg.DemoPassword)
	if err != nil {
		sugar.Fatalw("auth init failed", "error", err)
	}
	api := httpapi.New(svc, auth, cfg.AllowedOrigin)

	server := &http.Server{
		Addr:              cfg.Address(),
		Handler:           api.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sugar.Infow("dealership backend listening", "addr", cfg.Address())
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

	for _, closeFn := range closers {
		if err := closeFn(); err != nil {
			sugar.Errorw("close error", "error", err)
		}
	}

	sugar.Info("server stopped")
}

// selectStore picks the snapshot backend: a file path wins, then Redis, then
// in-memory. Redis being configured but unreachable is fatal rather than a
// silent fallback that would lose data on restart.
func selectStore(ctx context.Context, cfg config.Config, sugar *zap.SugaredLogger) (store.Store, []func() error) {
	closers := make([]func() error, 0, 1)

	if cfg.SnapshotPath != "" {
		sugar.Infow("snapshot store: file", "path", cfg.SnapshotPath)
		return filestore.New(cfg.SnapshotPath), closers
	}

	if cfg.RedisAddr != "" {
		rs := redisstore.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := rs.Ping(ctx); err != nil {
			sugar.Fatalw("redis unavailable and REDIS_ADDR is set; refusing in-memory fallback", "error", err)
		}
		closers = append(closers, rs.Close)
		sugar.Info("snapshot store: redis")
		return rs, closers
	}

	sugar.Info("snapshot store: in-memory (nothing survives a restart)")
	return memory.New(), closers
}
