package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-user-service/pkg/response"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	Store   Pinger
	Logger  *logrus.Logger
	Timeout time.Duration
}

func NewHealthHandler(store Pinger, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{Store: store, Logger: logger, Timeout: 2 * time.Second}
}

type healthStatus struct {
	Status string `json:"status"`
}

// Livez reports that the process is serving requests.
func (h *HealthHandler) Livez(c *gin.Context) {
	response.Success(c, http.StatusOK, healthStatus{Status: "ok"})
}

// Readyz reports whether the storage backend answers a ping.
func (h *HealthHandler) Readyz(c *gin.Context) {
	if h.Store != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), h.Timeout)
		defer cancel()
		if err := h.Store.Ping(ctx); err != nil {
			if h.Logger != nil {
				h.Logger.WithError(err).Warn("readiness check failed")
			}
			response.Success(c, http.StatusServiceUnavailable, healthStatus{Status: "unavailable"})
			return
		}
	}
	response.Success(c, http.StatusOK, healthStatus{Status: "ok"})
}
