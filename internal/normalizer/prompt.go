package normalizer

import (
	"fmt"
	"time"
)

// buildPrompt anchors the instruction at the given local time so relative
// expressions resolve deterministically on the server side of the call.
// Resolved timestamps come back as naive local time, never UTC-marked;
// display code depends on that.
func buildPrompt(nowLocal time.Time) string {
	return fmt.Sprintf(`Analyze the following natural language input and extract structured to-do items.

Current System Time (Local): %s
Current Day: %s

Instructions:
1. Extract tasks.
2. STRICT TIME PARSING:
   - Calculate the exact absolute time based on the "Current System Time".
   - If "in 10 minutes" is said, add 10 minutes to current time.
   - If "at 5" is said, assume 5:00. If 5:00 has passed today, assume tomorrow 5:00, unless context implies otherwise.
   - If only a date is given (e.g. "tomorrow"), default to 09:00:00.
   - If "tonight", default to 19:00:00.
   - OUTPUT FORMAT: ISO 8601 string (YYYY-MM-DDTHH:mm:ss). Do NOT use UTC 'Z' suffix. Return local time representation.
3. PRIORITY: Detect priority based on keywords. Default 'medium'.
4. Categorize tasks: 'work', 'personal', 'urgent', 'misc'.

You must output a valid JSON object matching the following schema:
{
  "tasks": [
    {
      "summary": "string (A short, actionable title)",
      "dueDateTime": "string (ISO 8601 timestamp YYYY-MM-DDTHH:mm:ss) or null",
      "description": "string (Additional details) or null",
      "category": "work" | "personal" | "urgent" | "misc",
      "priority": "high" | "medium" | "low"
    }
  ]
}
`, nowLocal.Format("2006-01-02 15:04:05"), nowLocal.Weekday().String())
}
