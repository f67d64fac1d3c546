//go:build integration

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{Addr: endpoint})
	t.Cleanup(func() { _ = rdb.Close() })
	require.NoError(t, rdb.Ping(ctx).Err())
	return rdb
}

func TestRateLimitWithRedis(t *testing.T) {
	rdb := startRedis(t)
	r := newEngine(RealIP(), RateLimit(rdb, 2, time.Minute, KeyByIPAndPath(), nil))

	codes := make([]int, 0, 3)
	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		last = httptest.NewRecorder()
		r.ServeHTTP(last, httptest.NewRequest(http.MethodGet, "/echo/1", nil))
		codes = append(codes, last.Code)
	}

	require.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	require.Equal(t, "2", last.Header().Get("X-RateLimit-Limit"))
	require.Equal(t, "0", last.Header().Get("X-RateLimit-Remaining"))
	require.NotEmpty(t, last.Header().Get("Retry-After"))
	require.JSONEq(t, `{"status_code":429,"data":{"message":"Too many requests"}}`, last.Body.String())
}

func TestRateLimitAllowBypass(t *testing.T) {
	rdb := startRedis(t)
	r := newEngine(RealIP(), RateLimit(rdb, 1, time.Minute, KeyByIP(), func(*gin.Context) bool { return true }))

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/echo/1", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
}
