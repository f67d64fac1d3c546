package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/users")
	t.Setenv("SERVER_PORT", "8080")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "user-service", cfg.AppName)
	require.Equal(t, "development", cfg.Env)
	require.Equal(t, ":8080", cfg.Addr())
	require.Equal(t, DriverPostgres, cfg.StorageDriver)
	require.Equal(t, int32(10), cfg.DBMaxConns)
	require.Equal(t, int32(2), cfg.DBMinConns)
	require.Equal(t, time.Hour, cfg.DBMaxConnLife)
	require.Equal(t, 120, cfg.RateLimitPerMinute)
	require.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	require.True(t, cfg.DebugMetricsEnabled)
	require.False(t, cfg.HTTPLogEnabled)
	require.Empty(t, cfg.CORSOrigins())
}

func TestLoadMissingRequired(t *testing.T) {
	cases := []struct {
		name    string
		dbURL   string
		port    string
		wantMsg string
	}{
		{name: "both missing", wantMsg: "DATABASE_URL, SERVER_PORT"},
		{name: "port missing", dbURL: "postgres://x", wantMsg: "SERVER_PORT"},
		{name: "database url missing", port: "8080", wantMsg: "DATABASE_URL"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("DATABASE_URL", tc.dbURL)
			t.Setenv("SERVER_PORT", tc.port)

			cfg, err := Load()
			require.Nil(t, cfg)
			require.ErrorContains(t, err, tc.wantMsg)
		})
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("STORAGE_DRIVER", "SQLite")
	t.Setenv("DB_MAX_CONNS", "25")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("HTTP_LOG_ENABLED", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example , ,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, DriverSQLite, cfg.StorageDriver)
	require.Equal(t, int32(25), cfg.DBMaxConns)
	require.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	require.True(t, cfg.HTTPLogEnabled)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins())
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_MAX_CONNS", "many")
	t.Setenv("DEBUG_METRICS_ENABLED", "maybe")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, int32(10), cfg.DBMaxConns)
	require.True(t, cfg.DebugMetricsEnabled)
}

func TestLoadUnknownDriver(t *testing.T) {
	setRequired(t)
	t.Setenv("STORAGE_DRIVER", "mongo")

	_, err := Load()
	require.ErrorContains(t, err, "mongo")
}
