package normalizer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"structura/internal/domain"
	"structura/internal/logger"
)

var (
	// ErrNotConfigured is the single hard failure: no credential for the
	// inference service exists, so no call is attempted.
	ErrNotConfigured = errors.New("inference api key is not configured")

	// ErrEmptyInput rejects empty or whitespace-only utterances.
	ErrEmptyInput = errors.New("empty input")
)

// Normalizer turns a raw natural-language utterance into structured task
// drafts via one non-streaming call to an OpenAI-compatible endpoint.
// Upstream failures of any kind yield zero drafts, never an error.
type Normalizer struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func New(baseURL, apiKey, model string, timeout time.Duration) *Normalizer {
	return &Normalizer{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	ResponseFormat respFormat    `json:"response_format"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type respFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Normalize extracts task drafts from rawText, anchored at nowLocal.
// Exactly one upstream attempt is made; transport errors, timeouts,
// non-2xx statuses and malformed payloads all produce an empty slice.
func (n *Normalizer) Normalize(ctx context.Context, rawText string, nowLocal time.Time) ([]domain.TaskDraft, error) {
	if strings.TrimSpace(rawText) == "" {
		return nil, ErrEmptyInput
	}
	if n.apiKey == "" {
		return nil, ErrNotConfigured
	}

	body, err := json.Marshal(chatRequest{
		Model: n.model,
		Messages: []chatMessage{
			{Role: "system", Content: buildPrompt(nowLocal)},
			{Role: "user", Content: rawText},
		},
		ResponseFormat: respFormat{Type: "json_object"},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", n.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+n.apiKey)

	requestsTotal.Inc()

	resp, err := n.httpClient.Do(req)
	if err != nil {
		logger.Warn("inference call failed", "error", err)
		failuresTotal.WithLabelValues("transport").Inc()
		return []domain.TaskDraft{}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Warn("inference call returned non-2xx", "status", resp.StatusCode)
		failuresTotal.WithLabelValues("status").Inc()
		return []domain.TaskDraft{}, nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		failuresTotal.WithLabelValues("transport").Inc()
		return []domain.TaskDraft{}, nil
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil || len(parsed.Choices) == 0 {
		logger.Warn("inference response envelope unreadable")
		failuresTotal.WithLabelValues("parse").Inc()
		return []domain.TaskDraft{}, nil
	}

	drafts := parseDrafts(parsed.Choices[0].Message.Content)
	draftsTotal.Add(float64(len(drafts)))
	return drafts, nil
}
