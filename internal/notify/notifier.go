package notify

import (
	"strings"

	"structura/internal/domain"
)

// Title is the fixed literal carried by every reminder alert.
const Title = "STRUCTURA REMINDER"

// Reminder is the one-shot alert emitted when a task becomes due.
type Reminder struct {
	TaskID   string          `json:"taskId"`
	Summary  string          `json:"summary"`
	Priority domain.Priority `json:"priority"`
}

// Body renders the alert body: upper-cased priority tag plus summary.
func (r Reminder) Body() string {
	return "[" + strings.ToUpper(string(r.Priority)) + "] " + r.Summary
}

// Notifier delivers reminder alerts. Delivery is fire-and-forget; an
// unavailable sink is a silent skip and never blocks the sweep.
type Notifier interface {
	Notify(r Reminder)
}
