package i18n

import (
	"testing"

	"structura/internal/domain"
)

func TestGetFallsBackToEnglish(t *testing.T) {
	if got := Get(domain.Language("fr")); got.Title != Get(domain.LanguageEN).Title {
		t.Fatalf("unknown language must fall back to english, got %q", got.Title)
	}
}

func TestTablesComplete(t *testing.T) {
	for _, lang := range []domain.Language{domain.LanguageEN, domain.LanguageZH} {
		labels := Get(lang)
		if labels.Title == "" || labels.NotifyTitle == "" || labels.Error == "" {
			t.Fatalf("%s table incomplete: %+v", lang, labels)
		}
		for _, c := range []domain.Category{domain.CategoryWork, domain.CategoryPersonal, domain.CategoryUrgent, domain.CategoryMisc} {
			if labels.Categories[c] == "" {
				t.Fatalf("%s missing category label for %s", lang, c)
			}
		}
		for _, p := range []domain.Priority{domain.PriorityHigh, domain.PriorityMedium, domain.PriorityLow} {
			if labels.Priorities[p] == "" {
				t.Fatalf("%s missing priority label for %s", lang, p)
			}
		}
	}
}

func TestCategoryLabelUnknownBehavesAsMisc(t *testing.T) {
	if got := CategoryLabel(domain.LanguageEN, "errands"); got != "MISC" {
		t.Fatalf("CategoryLabel(errands) = %q; want MISC", got)
	}
	if got := CategoryLabel(domain.LanguageZH, domain.CategoryWork); got != "工作" {
		t.Fatalf("CategoryLabel(work, zh) = %q", got)
	}
}
