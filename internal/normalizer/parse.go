package normalizer

import (
	"encoding/json"
	"strings"
	"time"

	"structura/internal/domain"
	"structura/internal/logger"
)

// wire shape of the inference payload; every field is untrusted.
type parseResult struct {
	Tasks []wireDraft `json:"tasks"`
}

type wireDraft struct {
	Summary     string  `json:"summary"`
	DueDateTime *string `json:"dueDateTime"`
	Description *string `json:"description"`
	Category    string  `json:"category"`
	Priority    string  `json:"priority"`
}

// parseDrafts validates the model output into well-formed drafts. Models
// sometimes wrap the object in markdown fences despite the json_object
// response format, so fences are stripped before structural parsing.
// Anything unusable yields zero drafts.
func parseDrafts(content string) []domain.TaskDraft {
	content = stripFences(content)
	if content == "" {
		return []domain.TaskDraft{}
	}

	var result parseResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		logger.Warn("inference payload is not valid json", "error", err)
		failuresTotal.WithLabelValues("parse").Inc()
		return []domain.TaskDraft{}
	}

	drafts := make([]domain.TaskDraft, 0, len(result.Tasks))
	for _, w := range result.Tasks {
		summary := strings.TrimSpace(w.Summary)
		if summary == "" {
			continue
		}

		due := ""
		if w.DueDateTime != nil && *w.DueDateTime != "" {
			if _, err := time.Parse(domain.DueTimeLayout, *w.DueDateTime); err != nil {
				logger.Warn("dropping unparseable due time", "value", *w.DueDateTime)
				continue
			}
			due = *w.DueDateTime
		}

		desc := ""
		if w.Description != nil {
			desc = *w.Description
		}

		drafts = append(drafts, domain.TaskDraft{
			Summary:     summary,
			DueDateTime: due,
			Description: desc,
			Category:    domain.Category(w.Category),
			Priority:    domain.Priority(w.Priority),
		})
	}
	return drafts
}

// stripFences removes leading/trailing markdown code-fence markers,
// including an optional language tag on the opening fence.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		// drop a language tag like "json" on the opening fence line
		first := strings.TrimSpace(s[:idx])
		if first != "" && !strings.ContainsAny(first, "{}[]") {
			s = s[idx+1:]
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
