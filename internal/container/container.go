package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-user-service/config"
	"github.com/oksasatya/go-ddd-user-service/internal/domain/repository"
	"github.com/oksasatya/go-ddd-user-service/internal/infrastructure/storage"
	"github.com/oksasatya/go-ddd-user-service/pkg/metrics"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	redisClient *redis.Client
	repos       *storage.Repositories
	httpMetrics *metrics.Metrics
)

func SetConfig(c *config.Config) { cfg = c }
func GetConfig() *config.Config  { return cfg }
func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger  { return logger }

// SetRedis stores the rate limiter backend; nil disables rate limiting.
func SetRedis(r *redis.Client) { redisClient = r }
func GetRedis() *redis.Client  { return redisClient }

func SetRepositories(r *storage.Repositories) { repos = r }
func GetRepositories() *storage.Repositories  { return repos }

func GetUserRepository() repository.UserRepository {
	if repos == nil {
		return nil
	}
	return repos.Users
}

func SetMetrics(m *metrics.Metrics) { httpMetrics = m }
func GetMetrics() *metrics.Metrics  { return httpMetrics }

// Reset clears every singleton. Used by tests that wire their own container.
func Reset() {
	cfg = nil
	logger = nil
	redisClient = nil
	repos = nil
	httpMetrics = nil
}
