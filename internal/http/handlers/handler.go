package handlers

import (
	"context"
	"sync"
	"time"

	"structura/internal/config"
	"structura/internal/domain"
	"structura/internal/notify"
	"structura/internal/storage"
	"structura/internal/store"
)

// Normalizer is the submission-path dependency; satisfied by
// normalizer.Normalizer and by fakes in tests.
type Normalizer interface {
	Normalize(ctx context.Context, rawText string, nowLocal time.Time) ([]domain.TaskDraft, error)
}

// Handler carries the wired application state for all HTTP endpoints.
type Handler struct {
	Cfg        *config.Config
	Store      *store.TaskStore
	Normalizer Normalizer
	State      storage.StateStore
	Hub        *notify.Hub

	// submitting is the single-flight state of the submission endpoint:
	// false = idle, true = a normalization call is outstanding.
	submitMu   sync.Mutex
	submitting bool

	// prefs is the in-memory copy of the persisted preference enums.
	prefsMu sync.Mutex
	prefs   domain.Preferences
}

func NewHandler(cfg *config.Config, taskStore *store.TaskStore, n Normalizer, state storage.StateStore, hub *notify.Hub) *Handler {
	return &Handler{
		Cfg:        cfg,
		Store:      taskStore,
		Normalizer: n,
		State:      state,
		Hub:        hub,
		prefs:      state.LoadPreferences(context.Background()),
	}
}

// beginSubmit transitions idle -> submitting. It reports false when a
// submission is already in flight; concurrent attempts are rejected, not
// queued.
func (h *Handler) beginSubmit() bool {
	h.submitMu.Lock()
	defer h.submitMu.Unlock()
	if h.submitting {
		return false
	}
	h.submitting = true
	return true
}

func (h *Handler) endSubmit() {
	h.submitMu.Lock()
	h.submitting = false
	h.submitMu.Unlock()
}

func (h *Handler) preferences() domain.Preferences {
	h.prefsMu.Lock()
	defer h.prefsMu.Unlock()
	return h.prefs
}
