package handlers

import (
	"net/http"

	"structura/internal/logger"
	"structura/internal/notify"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WS upgrades the connection and subscribes it to reminder alerts.
func (h *Handler) WS(c *gin.Context) {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			if h.Cfg.AllowedOrigin == "" {
				return true
			}
			return r.Header.Get("Origin") == h.Cfg.AllowedOrigin
		},
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("ws upgrade failed", "error", err)
		return
	}

	client := notify.NewClient(h.Hub, conn)
	go client.Run()
}
