package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-user-service/config"
	"github.com/oksasatya/go-ddd-user-service/internal/container"
	"github.com/oksasatya/go-ddd-user-service/internal/infrastructure/storage"
	"github.com/oksasatya/go-ddd-user-service/internal/router"
	"github.com/oksasatya/go-ddd-user-service/pkg/helpers"
	"github.com/oksasatya/go-ddd-user-service/pkg/metrics"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)

	ctx := context.Background()

	repos, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).WithField("driver", cfg.StorageDriver).Fatal("failed to open storage")
	}
	defer func() {
		if err := repos.Close(); err != nil {
			logger.WithError(err).Warn("failed to close storage")
		}
	}()

	// Redis only backs the rate limiter; without it requests are not limited
	if cfg.RedisAddr != "" {
		rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := helpers.PingRedis(ctx, rdb); err != nil {
			logger.WithError(err).Warn("redis unreachable, rate limiting fails open")
		}
		defer func() { _ = rdb.Close() }()
		container.SetRedis(rdb)
	} else {
		logger.Info("REDIS_ADDR not set, rate limiting disabled")
	}

	// Provide singletons to container for registry auto-wiring
	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetRepositories(repos)
	container.SetMetrics(metrics.New(cfg.AppName))

	srv := &http.Server{Addr: cfg.Addr(), Handler: router.New()}
	go func() {
		logger.WithFields(logrus.Fields{"addr": srv.Addr, "driver": repos.Driver}).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.WithError(err).Error("server forced to shutdown")
		return
	}
	logger.Info("server exited properly")
}
