package storage

import (
	"context"
	"encoding/json"
	"sync"

	"structura/internal/domain"
)

// MemoryState is an in-process StateStore used by tests. Values
// round-trip through JSON so serialization behaves the same as the
// redis-backed store.
type MemoryState struct {
	mu    sync.Mutex
	tasks []byte
	prefs domain.Preferences
}

func NewMemoryState() *MemoryState {
	return &MemoryState{prefs: domain.DefaultPreferences()}
}

func (s *MemoryState) LoadTasks(ctx context.Context) []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tasks == nil {
		return nil
	}
	var tasks []domain.Task
	if err := json.Unmarshal(s.tasks, &tasks); err != nil {
		return nil
	}
	return tasks
}

func (s *MemoryState) SaveTasks(ctx context.Context, tasks []domain.Task) error {
	if tasks == nil {
		tasks = []domain.Task{}
	}
	raw, err := json.Marshal(tasks)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.tasks = raw
	s.mu.Unlock()
	return nil
}

// Corrupt overwrites the persisted task value with garbage, for testing
// the corrupt-load fallback.
func (s *MemoryState) Corrupt() {
	s.mu.Lock()
	s.tasks = []byte("{not json")
	s.mu.Unlock()
}

func (s *MemoryState) LoadPreferences(ctx context.Context) domain.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs
}

func (s *MemoryState) SaveTheme(ctx context.Context, t domain.Theme) error {
	s.mu.Lock()
	s.prefs.Theme = t
	s.mu.Unlock()
	return nil
}

func (s *MemoryState) SaveLanguage(ctx context.Context, l domain.Language) error {
	s.mu.Lock()
	s.prefs.Language = l
	s.mu.Unlock()
	return nil
}

func (s *MemoryState) SaveHandedness(ctx context.Context, h domain.Handedness) error {
	s.mu.Lock()
	s.prefs.Handedness = h
	s.mu.Unlock()
	return nil
}
