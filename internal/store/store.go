package store

import (
	"context"
	"sync"
	"time"

	"structura/internal/domain"
	"structura/internal/logger"
	"structura/internal/storage"

	"github.com/google/uuid"
)

// TaskStore owns the ordered task collection, newest first. All mutation
// goes through it; every mutating operation rewrites the full collection
// to the state store. The submission path and the reminder sweep both
// touch the store, so access is serialized with a mutex.
type TaskStore struct {
	mu    sync.Mutex
	tasks []domain.Task
	state storage.StateStore

	now func() time.Time
}

func New(state storage.StateStore) *TaskStore {
	return &TaskStore{state: state, now: time.Now}
}

// Load reconstructs the collection from the last persisted write. Corrupt
// or missing state starts empty.
func (s *TaskStore) Load(ctx context.Context) {
	tasks := s.state.LoadTasks(ctx)
	s.mu.Lock()
	s.tasks = tasks
	s.mu.Unlock()
	logger.Info("task store loaded", "tasks", len(tasks))
}

// Add assigns identity to each draft and prepends the resulting records,
// most recent first. Draft contents are defaulted, never rejected.
func (s *TaskStore) Add(ctx context.Context, drafts []domain.TaskDraft) []domain.Task {
	if len(drafts) == 0 {
		return nil
	}

	now := s.now()
	created := make([]domain.Task, 0, len(drafts))
	for _, d := range drafts {
		category := d.Category
		if category == "" {
			category = domain.CategoryMisc
		}
		created = append(created, domain.Task{
			ID:           uuid.NewString(),
			Summary:      d.Summary,
			DueDateTime:  d.DueDateTime,
			Description:  d.Description,
			Category:     category,
			Priority:     domain.NormalizePriority(d.Priority),
			IsCompleted:  false,
			CreatedAt:    now,
			ReminderSent: false,
		})
	}

	s.mu.Lock()
	s.tasks = append(created, s.tasks...)
	s.persistLocked(ctx)
	s.mu.Unlock()

	return created
}

// ToggleComplete flips completion for the given id. Unknown ids are a
// no-op; found reports whether the record existed.
func (s *TaskStore) ToggleComplete(ctx context.Context, id string) (found bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].IsCompleted = !s.tasks[i].IsCompleted
			s.persistLocked(ctx)
			return true
		}
	}
	return false
}

// Delete removes the record with the given id. Unknown ids are a no-op.
func (s *TaskStore) Delete(ctx context.Context, id string) (found bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			s.persistLocked(ctx)
			return true
		}
	}
	return false
}

// All returns a snapshot of the collection in order. Callers may iterate
// it freely while the store mutates.
func (s *TaskStore) All() []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// MarkRemindersSent sets reminderSent on every listed id in one batched
// update with a single persistence write. The flag is never cleared.
func (s *TaskStore) MarkRemindersSent(ctx context.Context, ids []string) {
	if len(ids) == 0 {
		return
	}

	idSet := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		idSet[id] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for i := range s.tasks {
		if _, ok := idSet[s.tasks[i].ID]; ok && !s.tasks[i].ReminderSent {
			s.tasks[i].ReminderSent = true
			changed = true
		}
	}
	if changed {
		s.persistLocked(ctx)
	}
}

func (s *TaskStore) persistLocked(ctx context.Context) {
	if err := s.state.SaveTasks(ctx, s.tasks); err != nil {
		logger.Error("failed to persist tasks", "error", err)
	}
}
