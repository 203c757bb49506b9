package handlers

import (
	"errors"
	"net/http"
	"time"

	"structura/internal/domain"
	"structura/internal/logger"
	"structura/internal/normalizer"

	"github.com/gin-gonic/gin"
)

// ListTasks returns the full ordered collection, newest first.
func (h *Handler) ListTasks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tasks": h.Store.All()})
}

// CreateTasks normalizes a natural-language utterance and adds the
// resulting drafts. At most one submission may be in flight at a time.
func (h *Handler) CreateTasks(c *gin.Context) {
	var req struct {
		Input string `json:"input"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	if !h.beginSubmit() {
		c.JSON(http.StatusConflict, gin.H{"error": "a submission is already in flight"})
		return
	}
	defer h.endSubmit()

	ctx := c.Request.Context()
	drafts, err := h.Normalizer.Normalize(ctx, req.Input, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, normalizer.ErrEmptyInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "input is empty"})
		case errors.Is(err, normalizer.ErrNotConfigured):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "inference service is not configured"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "normalization failed"})
		}
		return
	}

	// The caller may be gone by the time the inference call returns;
	// discard the result without touching the store.
	if ctx.Err() != nil {
		logger.Warn("submission abandoned, discarding drafts", "drafts", len(drafts))
		return
	}

	created := h.Store.Add(ctx, drafts)
	if created == nil {
		created = []domain.Task{}
	}
	c.JSON(http.StatusCreated, gin.H{"tasks": created})
}

// ToggleTask flips completion state for one task.
func (h *Handler) ToggleTask(c *gin.Context) {
	if !h.Store.ToggleComplete(c.Request.Context(), c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DeleteTask removes one task.
func (h *Handler) DeleteTask(c *gin.Context) {
	if !h.Store.Delete(c.Request.Context(), c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
