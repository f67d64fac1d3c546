package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/go-ddd-user-service/internal/interface/http"
	"github.com/oksasatya/go-ddd-user-service/internal/interface/middleware"
)

// UserModule wires the user CRUD handlers:
// POST /users, GET /users/:id, PUT /users/:id, DELETE /users/:id
// Every route is rate limited per client IP and route.
type UserModule struct {
	Handler        *handlers.UserHandler
	Redis          *redis.Client
	LimitPerMinute int
}

func NewUserModule(h *handlers.UserHandler, rdb *redis.Client, limitPerMinute int) *UserModule {
	return &UserModule{Handler: h, Redis: rdb, LimitPerMinute: limitPerMinute}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	limiter := middleware.RateLimit(m.Redis, m.LimitPerMinute, time.Minute, middleware.KeyByIPAndPath(), nil)

	users := rg.Group("/users", limiter)
	users.POST("", m.Handler.Create)
	users.GET("/:id", m.Handler.Get)
	users.PUT("/:id", m.Handler.Update)
	users.DELETE("/:id", m.Handler.Delete)
}
