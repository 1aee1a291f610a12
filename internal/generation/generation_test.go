package generation

import (
	"errors"
	"strings"
	"testing"
)

func TestBuildPrompt(t *testing.T) {
	prompt := buildPrompt("Go")

	if !strings.Contains(prompt, "Topic: Learn Go") {
		t.Error("prompt missing topic line")
	}
	if !strings.Contains(prompt, "exactly 5 short, actionable tasks") {
		t.Error("prompt missing task count instruction")
	}
	if !strings.Contains(prompt, `"title" field only`) {
		t.Error("prompt missing output shape instruction")
	}
}

func TestParseTitles(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []string
		wantErr error
	}{
		{
			name: "plain title array",
			raw:  `[{"title": "Install Go"}, {"title": "Write hello world"}]`,
			want: []string{"Install Go", "Write hello world"},
		},
		{
			name: "wrapped tasks object",
			raw:  `{"tasks": [{"title": "Install Go"}]}`,
			want: []string{"Install Go"},
		},
		{
			name: "whitespace titles dropped",
			raw:  `[{"title": "Install Go"}, {"title": "   "}, {"title": ""}]`,
			want: []string{"Install Go"},
		},
		{
			name: "titles trimmed",
			raw:  `[{"title": "  Install Go  "}]`,
			want: []string{"Install Go"},
		},
		{
			name:    "empty payload",
			raw:     "",
			wantErr: ErrEmptyResponse,
		},
		{
			name:    "not JSON",
			raw:     "here are your tasks: 1. install go",
			wantErr: ErrMalformedResponse,
		},
		{
			name:    "JSON but wrong shape",
			raw:     `{"title": "Install Go"}`,
			wantErr: ErrMalformedResponse,
		},
		{
			name:    "array with no usable titles",
			raw:     `[{"name": "Install Go"}]`,
			wantErr: ErrMalformedResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTitles(tt.raw)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseTitles failed: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d titles, got %d", len(tt.want), len(got))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("title %d: expected %q, got %q", i, tt.want[i], got[i])
				}
			}
		})
	}
}
