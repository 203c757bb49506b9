package domain

import "time"

// Category of a task. Values outside the known set are kept verbatim for
// display and treated as misc everywhere else.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryUrgent   Category = "urgent"
	CategoryMisc     Category = "misc"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// DueTimeLayout is the naive local-time format used everywhere a due time
// crosses a boundary: the inference contract, persistence and the API.
// No timezone marker; interpretation is the local zone by convention.
const DueTimeLayout = "2006-01-02T15:04:05"

// TaskDraft is an unpersisted task proposal extracted from natural-language
// input, prior to id/timestamp assignment.
type TaskDraft struct {
	Summary     string   `json:"summary"`
	DueDateTime string   `json:"dueDateTime,omitempty"`
	Description string   `json:"description,omitempty"`
	Category    Category `json:"category"`
	Priority    Priority `json:"priority"`
}

type Task struct {
	ID           string    `json:"id"`
	Summary      string    `json:"summary"`
	DueDateTime  string    `json:"dueDateTime,omitempty"`
	Description  string    `json:"description,omitempty"`
	Category     Category  `json:"category"`
	Priority     Priority  `json:"priority"`
	IsCompleted  bool      `json:"isCompleted"`
	CreatedAt    time.Time `json:"createdAt"`
	ReminderSent bool      `json:"reminderSent"`
}

// DueAt parses the naive due time in the given location. ok is false when
// the task has no due time or the stored value does not parse.
func (t *Task) DueAt(loc *time.Location) (due time.Time, ok bool) {
	if t.DueDateTime == "" {
		return time.Time{}, false
	}
	due, err := time.ParseInLocation(DueTimeLayout, t.DueDateTime, loc)
	if err != nil {
		return time.Time{}, false
	}
	return due, true
}

// EffectiveCategory maps unknown categories to misc for logic while the
// stored value stays untouched for display.
func (t *Task) EffectiveCategory() Category {
	switch t.Category {
	case CategoryWork, CategoryPersonal, CategoryUrgent, CategoryMisc:
		return t.Category
	default:
		return CategoryMisc
	}
}

// NormalizePriority returns p when it is one of the known values and
// medium otherwise.
func NormalizePriority(p Priority) Priority {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return p
	default:
		return PriorityMedium
	}
}
