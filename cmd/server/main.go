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

	redisv9 "github.com/redis/go-redis/v9"

	"news_backend/internal/app/config"
	"news_backend/internal/app/di"
	"news_backend/internal/app/router"
	accountentity "news_backend/internal/feature/account/domain/entity"
	articleentity "news_backend/internal/feature/article/domain/entity"
	dbplatform "news_backend/internal/platform/db"
	"news_backend/internal/platform/logging"
	infraredis "news_backend/internal/platform/redis"
)

// shutdownTimeout は処理中リクエストの完了を待つ上限時間です。
const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

// run はサーバーを起動し、シグナル受信または起動失敗まで処理を続けます。
// deferしたクローズ処理はrunの終了時に実行されます。
func run() error {
	// .envを読み込む（存在しなければ環境変数のみ）
	config.LoadDotEnv()
	cfg := config.Load()

	logger := logging.Setup(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	// db
	db, err := dbplatform.OpenDB(cfg.DB)
	if err != nil {
		return fmt.Errorf("open database (driver=%s): %w", cfg.DB.Driver, err)
	}
	defer func() {
		if err := dbplatform.Close(db); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// マイグレーション
	if err := dbplatform.Migrate(db, &accountentity.User{}, &articleentity.Article{}); err != nil {
		return err
	}

	// Redis（未設定または接続失敗時はキャッシュなしで起動）
	var rdb *redisv9.Client
	if cfg.Redis.Enabled() {
		if tmp, err := infraredis.NewRedisClient(cfg.Redis); err != nil {
			logger.Warn("Redis unavailable. Running without cache.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					logger.Error("failed to close Redis client", "error", err)
				}
			}()
		}
	}

	handlers := di.NewHandlers(db, rdb, di.Options{
		BcryptCost:  cfg.BcryptCost,
		HashWorkers: cfg.HashWorkers,
		CacheTTL:    cfg.CacheTTL,
	})
	r := router.NewRouter(handlers, logger)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen on %s: %w", srv.Addr, err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
