package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	redis "github.com/redis/go-redis/v9"
)

// HealthHandler reports process and persistence health.
type HealthHandler struct {
	redis     *redis.Client
	startTime time.Time
	version   string
}

func NewHealthHandler(client *redis.Client, version string) *HealthHandler {
	return &HealthHandler{
		redis:     client,
		startTime: time.Now(),
		version:   version,
	}
}

// Liveness answers as long as the process runs.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness additionally checks the persistence backend.
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	checks := map[string]string{"storage": "healthy"}
	status := "healthy"
	code := http.StatusOK

	if h.redis != nil {
		if err := h.redis.Ping(ctx).Err(); err != nil {
			checks["storage"] = "unhealthy: " + err.Error()
			status = "unhealthy"
			code = http.StatusServiceUnavailable
		}
	}

	c.JSON(code, gin.H{
		"status":    status,
		"version":   h.version,
		"uptime":    time.Since(h.startTime).Round(time.Second).String(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"checks":    checks,
	})
}

// Health is the basic combined endpoint.
func (h *HealthHandler) Health(c *gin.Context) {
	if h.redis != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.redis.Ping(ctx).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": "storage unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": h.version})
}
