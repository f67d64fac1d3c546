package modules

import (
	"expvar"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/go-ddd-user-service/internal/interface/middleware"
)

// DebugModule serves expvar at /debug/vars. Private addresses skip the limiter.
type DebugModule struct {
	Redis *redis.Client
}

func NewDebugModule(rdb *redis.Client) *DebugModule { return &DebugModule{Redis: rdb} }

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(m.Redis, 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	rg.GET("/debug/vars", rl, gin.WrapH(expvar.Handler()))
}

// MetricsModule serves the Prometheus registry at /metrics.
type MetricsModule struct {
	Handler http.Handler
	Redis   *redis.Client
}

func NewMetricsModule(h http.Handler, rdb *redis.Client) *MetricsModule {
	return &MetricsModule{Handler: h, Redis: rdb}
}

func (m *MetricsModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(m.Redis, 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	rg.GET("/metrics", rl, gin.WrapH(m.Handler))
}
