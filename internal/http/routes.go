package http

import (
	"structura/internal/config"
	"structura/internal/http/handlers"
	"structura/internal/http/middleware"
	"structura/internal/notify"
	"structura/internal/storage"
	"structura/internal/store"

	"github.com/gin-gonic/gin"
	redis "github.com/redis/go-redis/v9"
)

// RegisterRoutes wires every HTTP endpoint onto the engine.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, taskStore *store.TaskStore, n handlers.Normalizer, state storage.StateStore, hub *notify.Hub, redisClient *redis.Client, version string) {
	h := handlers.NewHandler(cfg, taskStore, n, state, hub)
	healthHandler := handlers.NewHealthHandler(redisClient, version)

	r.Use(middleware.Metrics())

	// Health checks, no rate limiting
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	v1 := r.Group("/api/v1")
	v1.Use(middleware.RedisRateLimit(cfg.APIRateLimit, cfg.APIRateWindow))
	{
		v1.GET("/tasks", h.ListTasks)
		v1.POST("/tasks", h.CreateTasks)
		v1.PATCH("/tasks/:id/toggle", h.ToggleTask)
		v1.DELETE("/tasks/:id", h.DeleteTask)

		v1.GET("/preferences", h.GetPreferences)
		v1.PUT("/preferences", h.UpdatePreferences)
		v1.GET("/i18n", h.GetLabels)
	}

	// Reminder alert subscription
	r.GET("/ws", h.WS)

	// Provider relay: same-origin path so the browser never hits the
	// inference service cross-origin. In-process limiter here; the relay
	// must keep working even when redis is down.
	r.Any("/api/proxy/*path", middleware.SimpleRateLimit(cfg.APIRateLimit, cfg.APIRateWindow), h.Proxy)
}
