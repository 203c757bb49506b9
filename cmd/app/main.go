package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"structura/internal/config"
	httpServer "structura/internal/http"
	"structura/internal/http/middleware"
	"structura/internal/logger"
	"structura/internal/normalizer"
	"structura/internal/notify"
	"structura/internal/scheduler"
	"structura/internal/storage"
	"structura/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var version = "dev"

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	redisClient := storage.Connect(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer redisClient.Close()

	state := storage.NewRedisState(redisClient)
	taskStore := store.New(state)
	taskStore.Load(context.Background())

	hub := notify.NewHub()

	n := normalizer.New(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAITimeout)
	if cfg.OpenAIAPIKey == "" {
		logger.Warn("OPENAI_API_KEY not set; submissions will fail until configured")
	}

	sched := scheduler.New(taskStore, hub, cfg.ReminderInterval, cfg.ReminderWindow)
	if cfg.NotificationsEnabled {
		sched.Start()
	} else {
		logger.Info("notifications disabled; reminder sweep not started")
	}

	r := gin.Default()

	// CORS for a frontend served from another origin
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		}
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	middleware.UseRedisRateLimiter(redisClient)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	httpServer.RegisterRoutes(r, cfg, taskStore, n, state, hub, redisClient, version)

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	go func() {
		logger.Info("server started", "port", cfg.AppPort, "version", version)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	if cfg.NotificationsEnabled {
		sched.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("forced shutdown", "error", err)
	}

	logger.Info("server exited")
}
