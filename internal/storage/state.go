package storage

import (
	"context"
	"encoding/json"

	"structura/internal/domain"
	"structura/internal/logger"

	redis "github.com/redis/go-redis/v9"
)

// Persisted state lives in four independent keys. Each is rewritten
// wholesale after any change to the corresponding in-memory value and read
// once at startup with fallback to a default on a missing or corrupt value.
const (
	keyTasks      = "structura:tasks"
	keyTheme      = "structura:theme"
	keyLang       = "structura:lang"
	keyHandedness = "structura:handedness"
)

// StateStore persists the task collection and the three preference enums.
type StateStore interface {
	LoadTasks(ctx context.Context) []domain.Task
	SaveTasks(ctx context.Context, tasks []domain.Task) error

	LoadPreferences(ctx context.Context) domain.Preferences
	SaveTheme(ctx context.Context, t domain.Theme) error
	SaveLanguage(ctx context.Context, l domain.Language) error
	SaveHandedness(ctx context.Context, h domain.Handedness) error
}

type RedisState struct {
	client *redis.Client
}

func NewRedisState(client *redis.Client) *RedisState {
	return &RedisState{client: client}
}

// LoadTasks reconstructs the collection from the last write. A missing or
// unparseable value falls back to an empty collection.
func (s *RedisState) LoadTasks(ctx context.Context) []domain.Task {
	raw, err := s.client.Get(ctx, keyTasks).Result()
	if err != nil {
		if err != redis.Nil {
			logger.Warn("failed to read persisted tasks, starting empty", "error", err)
		}
		return nil
	}

	var tasks []domain.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		logger.Warn("persisted tasks corrupt, starting empty", "error", err)
		return nil
	}
	return tasks
}

func (s *RedisState) SaveTasks(ctx context.Context, tasks []domain.Task) error {
	if tasks == nil {
		tasks = []domain.Task{}
	}
	raw, err := json.Marshal(tasks)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, keyTasks, raw, 0).Err()
}

func (s *RedisState) LoadPreferences(ctx context.Context) domain.Preferences {
	prefs := domain.DefaultPreferences()

	if v, err := s.client.Get(ctx, keyTheme).Result(); err == nil {
		if t, ok := domain.ParseTheme(v); ok {
			prefs.Theme = t
		}
	}
	if v, err := s.client.Get(ctx, keyLang).Result(); err == nil {
		if l, ok := domain.ParseLanguage(v); ok {
			prefs.Language = l
		}
	}
	if v, err := s.client.Get(ctx, keyHandedness).Result(); err == nil {
		if h, ok := domain.ParseHandedness(v); ok {
			prefs.Handedness = h
		}
	}
	return prefs
}

func (s *RedisState) SaveTheme(ctx context.Context, t domain.Theme) error {
	return s.client.Set(ctx, keyTheme, string(t), 0).Err()
}

func (s *RedisState) SaveLanguage(ctx context.Context, l domain.Language) error {
	return s.client.Set(ctx, keyLang, string(l), 0).Err()
}

func (s *RedisState) SaveHandedness(ctx context.Context, h domain.Handedness) error {
	return s.client.Set(ctx, keyHandedness, string(h), 0).Err()
}
