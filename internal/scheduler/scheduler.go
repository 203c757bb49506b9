package scheduler

import (
	"context"
	"sync"
	"time"

	"structura/internal/domain"
	"structura/internal/logger"
	"structura/internal/notify"
	"structura/internal/store"

	"github.com/prometheus/client_golang/prometheus"
)

var remindersSent = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "reminders_sent_total",
		Help: "Reminder alerts fired by the sweep",
	},
)

func init() {
	prometheus.MustRegister(remindersSent)
}

// Scheduler periodically sweeps the task store for newly-due tasks and
// fires a one-shot alert per task. Per task the progression is
// not-due -> eligible -> alerted and never reverses: once reminderSent is
// set the task is ignored forever, whatever happens to its due time or
// completion state afterwards.
type Scheduler struct {
	store    *store.TaskStore
	notifier notify.Notifier

	interval time.Duration
	// window bounds how long after its due time a task may still alert.
	// Tasks that became due while the process was down stay silent.
	window time.Duration

	now    func() time.Time
	loc    *time.Location
	stopCh chan struct{}
	wg     sync.WaitGroup
}

func New(taskStore *store.TaskStore, notifier notify.Notifier, interval, window time.Duration) *Scheduler {
	return &Scheduler{
		store:    taskStore,
		notifier: notifier,
		interval: interval,
		window:   window,
		now:      time.Now,
		loc:      time.Local,
		stopCh:   make(chan struct{}),
	}
}

// Start launches the sweep loop. Stop with Stop.
func (s *Scheduler) Start() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		logger.Info("reminder scheduler started", "interval", s.interval, "window", s.window)
		for {
			select {
			case <-s.stopCh:
				logger.Info("reminder scheduler stopped")
				return
			case <-ticker.C:
				s.Sweep(context.Background())
			}
		}
	}()
}

func (s *Scheduler) Stop() {
	close(s.stopCh)
	s.wg.Wait()
}

// Sweep runs one pass over a snapshot of the store: alert every eligible
// task once, then mark the whole batch in a single store update.
func (s *Scheduler) Sweep(ctx context.Context) {
	now := s.now()
	var alerted []string

	for _, task := range s.store.All() {
		if !s.eligible(&task, now) {
			continue
		}

		s.notifier.Notify(notify.Reminder{
			TaskID:   task.ID,
			Summary:  task.Summary,
			Priority: domain.NormalizePriority(task.Priority),
		})
		remindersSent.Inc()
		alerted = append(alerted, task.ID)
	}

	if len(alerted) > 0 {
		s.store.MarkRemindersSent(ctx, alerted)
		logger.Info("reminders fired", "count", len(alerted))
	}
}

func (s *Scheduler) eligible(task *domain.Task, now time.Time) bool {
	if task.IsCompleted || task.ReminderSent {
		return false
	}
	due, ok := task.DueAt(s.loc)
	if !ok {
		return false
	}
	if now.Before(due) {
		return false
	}
	return now.Sub(due) < s.window
}
