// Package storage builds the repositories for the configured storage driver.
package storage

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-user-service/config"
	"github.com/oksasatya/go-ddd-user-service/internal/domain/repository"
	"github.com/oksasatya/go-ddd-user-service/internal/infrastructure/memory"
	pginfra "github.com/oksasatya/go-ddd-user-service/internal/infrastructure/postgres"
	"github.com/oksasatya/go-ddd-user-service/internal/infrastructure/sqlite"
	"github.com/oksasatya/go-ddd-user-service/pkg/helpers"
)

// Repositories bundles the repository implementations of one driver with
// the lifecycle of the connection behind them.
type Repositories struct {
	Driver string
	Users  repository.UserRepository

	ping  func(ctx context.Context) error
	close func() error
}

// Ping reports whether the backing store is reachable.
func (r *Repositories) Ping(ctx context.Context) error {
	if r.ping == nil {
		return nil
	}
	return r.ping(ctx)
}

// Close releases the backing store.
func (r *Repositories) Close() error {
	if r.close == nil {
		return nil
	}
	return r.close()
}

// Open connects to the store selected by cfg.StorageDriver.
func Open(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*Repositories, error) {
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		pool, err := pginfra.NewPool(ctx, cfg.DatabaseURL, pginfra.PoolOptions{
			MaxConns:        cfg.DBMaxConns,
			MinConns:        cfg.DBMinConns,
			MaxConnLifetime: cfg.DBMaxConnLife,
		})
		if err != nil {
			return nil, err
		}
		users := pginfra.NewUserRepository(pool, logger)
		helpers.LogInfo(logger, "storage ready", logrus.Fields{"driver": cfg.StorageDriver})
		return &Repositories{
			Driver: cfg.StorageDriver,
			Users:  users,
			ping:   users.Ping,
			close:  func() error { pool.Close(); return nil },
		}, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		users := sqlite.NewUserRepository(db, logger)
		helpers.LogInfo(logger, "storage ready", logrus.Fields{"driver": cfg.StorageDriver})
		return &Repositories{
			Driver: cfg.StorageDriver,
			Users:  users,
			ping:   users.Ping,
			close:  users.Close,
		}, nil

	case config.DriverMemory:
		users := memory.NewUserRepository()
		helpers.LogInfo(logger, "storage ready, data is not persisted", logrus.Fields{"driver": cfg.StorageDriver})
		return &Repositories{
			Driver: cfg.StorageDriver,
			Users:  users,
			ping:   users.Ping,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}
