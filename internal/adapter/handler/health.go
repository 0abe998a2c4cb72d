package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"auth-gate/metrics"
)

// Pinger checks connectivity of the backing store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports service liveness and Redis connectivity.
type HealthHandler struct {
	pinger    Pinger
	startTime time.Time
}

// NewHealthHandler creates the health handler.
func NewHealthHandler(pinger Pinger) *HealthHandler {
	return &HealthHandler{pinger: pinger, startTime: time.Now()}
}

// Handle answers GET /health.
func (h *HealthHandler) Handle(c echo.Context) error {
	redisStatus := "connected"
	code := http.StatusOK

	if err := h.pinger.Ping(c.Request().Context()); err != nil {
		redisStatus = "disconnected"
		code = http.StatusServiceUnavailable
		metrics.SetRedisDisconnected()
	} else {
		metrics.SetRedisConnected()
	}

	return c.JSON(code, map[string]any{
		"healthy":        code == http.StatusOK,
		"redis_status":   redisStatus,
		"uptime_seconds": int64(time.Since(h.startTime).Seconds()),
	})
}
