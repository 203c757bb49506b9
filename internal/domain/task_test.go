package domain

import (
	"testing"
	"time"
)

func TestDueAt(t *testing.T) {
	cases := []struct {
		name  string
		due   string
		ok    bool
		clock string
	}{
		{"valid", "2024-01-01T14:10:00", true, "14:10"},
		{"empty", "", false, ""},
		{"garbage", "next tuesday", false, ""},
		{"utc marker rejected", "2024-01-01T14:10:00Z", false, ""},
	}

	for _, tc := range cases {
		task := Task{DueDateTime: tc.due}
		due, ok := task.DueAt(time.UTC)
		if ok != tc.ok {
			t.Fatalf("%s: DueAt ok = %v; want %v", tc.name, ok, tc.ok)
		}
		if ok && due.Format("15:04") != tc.clock {
			t.Fatalf("%s: DueAt = %s; want %s", tc.name, due.Format("15:04"), tc.clock)
		}
	}
}

func TestEffectiveCategory(t *testing.T) {
	cases := []struct {
		in   Category
		want Category
	}{
		{CategoryWork, CategoryWork},
		{CategoryPersonal, CategoryPersonal},
		{CategoryUrgent, CategoryUrgent},
		{CategoryMisc, CategoryMisc},
		{Category("shopping"), CategoryMisc},
		{Category(""), CategoryMisc},
	}

	for _, tc := range cases {
		task := Task{Category: tc.in}
		if got := task.EffectiveCategory(); got != tc.want {
			t.Fatalf("EffectiveCategory(%q) = %q; want %q", tc.in, got, tc.want)
		}
		// stored value must stay untouched for display
		if task.Category != tc.in {
			t.Fatalf("category mutated: %q -> %q", tc.in, task.Category)
		}
	}
}

func TestNormalizePriority(t *testing.T) {
	if got := NormalizePriority("asap"); got != PriorityMedium {
		t.Fatalf("NormalizePriority(asap) = %q; want medium", got)
	}
	if got := NormalizePriority(PriorityHigh); got != PriorityHigh {
		t.Fatalf("NormalizePriority(high) = %q; want high", got)
	}
	if got := NormalizePriority(""); got != PriorityMedium {
		t.Fatalf("NormalizePriority(empty) = %q; want medium", got)
	}
}

func TestParsePreferenceEnums(t *testing.T) {
	if th, ok := ParseTheme("night"); !ok || th != ThemeNight {
		t.Fatalf("ParseTheme(night) = %v,%v", th, ok)
	}
	if th, ok := ParseTheme("neon"); ok || th != ThemeDay {
		t.Fatalf("expected fallback to day for unknown theme, got %v,%v", th, ok)
	}
	if l, ok := ParseLanguage("zh"); !ok || l != LanguageZH {
		t.Fatalf("ParseLanguage(zh) = %v,%v", l, ok)
	}
	if h, ok := ParseHandedness("left"); !ok || h != HandednessLeft {
		t.Fatalf("ParseHandedness(left) = %v,%v", h, ok)
	}
	if h, ok := ParseHandedness(""); ok || h != HandednessRight {
		t.Fatalf("expected fallback to right, got %v,%v", h, ok)
	}
}
