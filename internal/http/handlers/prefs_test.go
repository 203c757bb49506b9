package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"structura/internal/domain"

	"github.com/gin-gonic/gin"
)

func newPrefsRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.GET("/api/v1/preferences", h.GetPreferences)
	r.PUT("/api/v1/preferences", h.UpdatePreferences)
	r.GET("/api/v1/i18n", h.GetLabels)
	return r
}

func TestPreferencesDefaults(t *testing.T) {
	h, _ := newTestHandler(t, &stubNormalizer{})
	r := newPrefsRouter(h)

	w := do(r, "GET", "/api/v1/preferences", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var prefs domain.Preferences
	if err := json.Unmarshal(w.Body.Bytes(), &prefs); err != nil {
		t.Fatal(err)
	}
	if prefs != domain.DefaultPreferences() {
		t.Fatalf("defaults = %+v", prefs)
	}
}

func TestPreferencesPartialUpdatePersists(t *testing.T) {
	h, _ := newTestHandler(t, &stubNormalizer{})
	r := newPrefsRouter(h)

	w := do(r, "PUT", "/api/v1/preferences", `{"theme":"night"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (%s)", w.Code, w.Body.String())
	}

	prefs := h.preferences()
	if prefs.Theme != domain.ThemeNight {
		t.Fatalf("theme = %q; want night", prefs.Theme)
	}
	// untouched enums keep their values
	if prefs.Language != domain.LanguageEN || prefs.Handedness != domain.HandednessRight {
		t.Fatalf("unrelated prefs changed: %+v", prefs)
	}

	// the state store observed the write
	if h.State.LoadPreferences(context.Background()).Theme != domain.ThemeNight {
		t.Fatal("theme not persisted")
	}
}

func TestPreferencesRejectUnknownEnum(t *testing.T) {
	h, _ := newTestHandler(t, &stubNormalizer{})
	r := newPrefsRouter(h)

	w := do(r, "PUT", "/api/v1/preferences", `{"theme":"neon"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", w.Code)
	}
}

func TestLabelsFollowLanguage(t *testing.T) {
	h, _ := newTestHandler(t, &stubNormalizer{})
	r := newPrefsRouter(h)

	w := do(r, "GET", "/api/v1/i18n?lang=zh", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Language domain.Language `json:"language"`
		Labels   struct {
			Title string `json:"title"`
		} `json:"labels"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Language != domain.LanguageZH || resp.Labels.Title == "" {
		t.Fatalf("unexpected labels response: %+v", resp)
	}
}
