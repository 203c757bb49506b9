package handlers

import (
	"io"
	"net/http"
	"time"

	"structura/internal/logger"

	"github.com/gin-gonic/gin"
)

var proxyClient = &http.Client{Timeout: 60 * time.Second}

// Proxy forwards inference calls to the provider so the browser only ever
// talks to the same origin. Its whole job is credential injection,
// origin-header stripping and permissive CORS on the way back; upstream
// status codes pass through untouched.
func (h *Handler) Proxy(c *gin.Context) {
	setPermissiveCORS(c.Writer.Header())

	if c.Request.Method == http.MethodOptions {
		c.Status(http.StatusNoContent)
		return
	}

	if h.Cfg.OpenAIAPIKey == "" {
		c.String(http.StatusInternalServerError, "OPENAI_API_KEY not configured")
		return
	}

	target := h.Cfg.OpenAIBaseURL + c.Param("path")
	if q := c.Request.URL.RawQuery; q != "" {
		target += "?" + q
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), c.Request.Method, target, c.Request.Body)
	if err != nil {
		c.String(http.StatusInternalServerError, "proxy error: %s", err)
		return
	}

	req.Header = c.Request.Header.Clone()
	req.Header.Del("Origin")
	req.Header.Del("Referer")
	req.Header.Set("Authorization", "Bearer "+h.Cfg.OpenAIAPIKey)

	resp, err := proxyClient.Do(req)
	if err != nil {
		logger.Warn("proxy upstream failure", "target", target, "error", err)
		c.String(http.StatusBadGateway, "proxy error: %s", err)
		return
	}
	defer resp.Body.Close()

	for k, vals := range resp.Header {
		for _, v := range vals {
			c.Writer.Header().Add(k, v)
		}
	}
	setPermissiveCORS(c.Writer.Header())

	c.Status(resp.StatusCode)
	if _, err := io.Copy(c.Writer, resp.Body); err != nil {
		logger.Warn("proxy response copy interrupted", "error", err)
	}
}

func setPermissiveCORS(h http.Header) {
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "*")
}
