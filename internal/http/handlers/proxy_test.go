package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"structura/internal/config"
	"structura/internal/notify"
	"structura/internal/storage"
	"structura/internal/store"

	"github.com/gin-gonic/gin"
)

func newProxyRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	state := storage.NewMemoryState()
	taskStore := store.New(state)
	taskStore.Load(context.Background())
	h := NewHandler(cfg, taskStore, &stubNormalizer{}, state, notify.NewHub())

	r := gin.New()
	r.Any("/api/proxy/*path", h.Proxy)
	return r
}

func TestProxyForwardsWithCredential(t *testing.T) {
	var gotAuth, gotOrigin, gotPath string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotOrigin = r.Header.Get("Origin")
		gotPath = r.URL.Path
		w.Header().Set("X-Upstream", "yes")
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("leaf water"))
	}))
	defer upstream.Close()

	cfg := &config.Config{OpenAIAPIKey: "secret-key", OpenAIBaseURL: upstream.URL}
	r := newProxyRouter(t, cfg)

	req := httptest.NewRequest("POST", "/api/proxy/chat/completions", strings.NewReader("{}"))
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("Referer", "https://evil.example/page")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if gotAuth != "Bearer secret-key" {
		t.Fatalf("credential not injected, got %q", gotAuth)
	}
	if gotOrigin != "" {
		t.Fatal("origin header must be stripped")
	}
	if gotPath != "/chat/completions" {
		t.Fatalf("upstream path = %q", gotPath)
	}
	// upstream status passes through
	if w.Code != http.StatusTeapot {
		t.Fatalf("status = %d; want passthrough 418", w.Code)
	}
	if w.Body.String() != "leaf water" {
		t.Fatalf("body = %q", w.Body.String())
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatal("permissive CORS header missing")
	}
	if w.Header().Get("X-Upstream") != "yes" {
		t.Fatal("upstream headers must pass through")
	}
}

func TestProxyWithoutCredential(t *testing.T) {
	cfg := &config.Config{OpenAIAPIKey: "", OpenAIBaseURL: "http://unused"}
	r := newProxyRouter(t, cfg)

	req := httptest.NewRequest("POST", "/api/proxy/chat/completions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d; want 500", w.Code)
	}
	if !strings.Contains(w.Body.String(), "not configured") {
		t.Fatalf("body = %q", w.Body.String())
	}
}

func TestProxyPreflight(t *testing.T) {
	cfg := &config.Config{OpenAIAPIKey: "k", OpenAIBaseURL: "http://unused"}
	r := newProxyRouter(t, cfg)

	req := httptest.NewRequest("OPTIONS", "/api/proxy/chat/completions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d; want 204", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Fatal("preflight must carry CORS headers")
	}
}

func TestProxyUpstreamUnreachable(t *testing.T) {
	cfg := &config.Config{OpenAIAPIKey: "k", OpenAIBaseURL: "http://127.0.0.1:1"}
	r := newProxyRouter(t, cfg)

	req := httptest.NewRequest("POST", "/api/proxy/chat/completions", strings.NewReader("{}"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d; want 502", w.Code)
	}
	if !strings.Contains(w.Body.String(), "proxy error") {
		t.Fatalf("body = %q", w.Body.String())
	}
}
