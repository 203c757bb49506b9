package handlers

import (
	"net/http"

	"structura/internal/domain"
	"structura/internal/i18n"
	"structura/internal/logger"

	"github.com/gin-gonic/gin"
)

// GetPreferences returns the three persisted display enums.
func (h *Handler) GetPreferences(c *gin.Context) {
	c.JSON(http.StatusOK, h.preferences())
}

// UpdatePreferences applies a partial update. Each changed enum is
// rewritten to its own persisted key; unknown values are rejected.
func (h *Handler) UpdatePreferences(c *gin.Context) {
	var req struct {
		Theme      *string `json:"theme"`
		Language   *string `json:"language"`
		Handedness *string `json:"handedness"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	ctx := c.Request.Context()
	h.prefsMu.Lock()
	defer h.prefsMu.Unlock()

	if req.Theme != nil {
		t, ok := domain.ParseTheme(*req.Theme)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown theme"})
			return
		}
		h.prefs.Theme = t
		if err := h.State.SaveTheme(ctx, t); err != nil {
			logger.Error("failed to persist theme", "error", err)
		}
	}
	if req.Language != nil {
		l, ok := domain.ParseLanguage(*req.Language)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown language"})
			return
		}
		h.prefs.Language = l
		if err := h.State.SaveLanguage(ctx, l); err != nil {
			logger.Error("failed to persist language", "error", err)
		}
	}
	if req.Handedness != nil {
		hd, ok := domain.ParseHandedness(*req.Handedness)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown handedness"})
			return
		}
		h.prefs.Handedness = hd
		if err := h.State.SaveHandedness(ctx, hd); err != nil {
			logger.Error("failed to persist handedness", "error", err)
		}
	}

	c.JSON(http.StatusOK, h.prefs)
}

// GetLabels resolves the display string table, either for an explicit
// ?lang= or for the persisted language preference.
func (h *Handler) GetLabels(c *gin.Context) {
	lang := h.preferences().Language
	if q := c.Query("lang"); q != "" {
		if l, ok := domain.ParseLanguage(q); ok {
			lang = l
		}
	}
	c.JSON(http.StatusOK, gin.H{"language": lang, "labels": i18n.Get(lang)})
}
