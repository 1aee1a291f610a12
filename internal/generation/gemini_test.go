package generation

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// geminiPayload wraps text in the generateContent response envelope
func geminiPayload(text string) string {
	body, _ := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
		},
	})
	return string(body)
}

func newGeminiTestClient(t *testing.T, handler http.HandlerFunc) *GeminiClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewGeminiClient("test-key")
	client.SetBaseURL(server.URL)
	return client
}

func TestGeminiGenerateTitles(t *testing.T) {
	titles := `[{"title":"Install Go"},{"title":"Write hello world"},{"title":"Learn slices"},{"title":"Read Effective Go"},{"title":"Build a CLI"}]`

	client := newGeminiTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Error("missing api key")
		}

		var req geminiRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.GenerationConfig.ResponseMimeType != "application/json" {
			t.Errorf("expected JSON response mime type, got %q", req.GenerationConfig.ResponseMimeType)
		}
		if len(req.Contents) != 1 || len(req.Contents[0].Parts) != 1 {
			t.Fatal("unexpected request shape")
		}
		if !strings.Contains(req.Contents[0].Parts[0].Text, "Topic: Learn Go") {
			t.Error("prompt missing topic")
		}

		w.Write([]byte(geminiPayload(titles)))
	})

	got, err := client.GenerateTitles(context.Background(), "Go")
	if err != nil {
		t.Fatalf("GenerateTitles failed: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("expected 5 titles, got %d", len(got))
	}
	if got[0] != "Install Go" {
		t.Errorf("expected first title 'Install Go', got %q", got[0])
	}
}

func TestGeminiGenerateTitles_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name: "server error is unavailable",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
			wantErr: ErrUnavailable,
		},
		{
			name: "rate limited is unavailable",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "slow down", http.StatusTooManyRequests)
			},
			wantErr: ErrUnavailable,
		},
		{
			name: "no candidate text is empty response",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"candidates": []}`))
			},
			wantErr: ErrEmptyResponse,
		},
		{
			name: "blank candidate text is empty response",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(geminiPayload("")))
			},
			wantErr: ErrEmptyResponse,
		},
		{
			name: "non-JSON candidate text is malformed",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(geminiPayload("1. install go\n2. write code")))
			},
			wantErr: ErrMalformedResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newGeminiTestClient(t, tt.handler)

			_, err := client.GenerateTitles(context.Background(), "Go")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestGeminiGenerateTitles_SingleAttempt(t *testing.T) {
	calls := 0
	client := newGeminiTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "boom", http.StatusServiceUnavailable)
	})

	if _, err := client.GenerateTitles(context.Background(), "Go"); err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Errorf("expected exactly 1 attempt, got %d", calls)
	}
}

func TestGeminiGenerateTitles_MissingKey(t *testing.T) {
	client := NewGeminiClient("")

	_, err := client.GenerateTitles(context.Background(), "Go")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
