// Package generation adapts external text-generation services into ordered
// lists of task titles. Backends share one prompt and one failure taxonomy;
// a single attempt is made per invocation with no retry.
package generation

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Failure taxonomy. Callers treat all three as upstream failures; the
// distinction exists for logs and tests.
var (
	ErrUnavailable       = errors.New("generation service unavailable")
	ErrEmptyResponse     = errors.New("empty generation response")
	ErrMalformedResponse = errors.New("malformed generation response")
)

// buildPrompt produces the fixed instruction for the model
func buildPrompt(topic string) string {
	return `You are an AI tutor helping users learn by doing.
Given a topic, generate exactly 5 short, actionable tasks for a beginner to learn the topic.
Return the result as a JSON array of objects with a "title" field only.

Example:
[
  { "title": "Install Python and set up your environment" },
  { "title": "Learn about variables and data types" },
  ...
]

Topic: Learn ` + topic + `

Only return valid JSON. No explanations. No formatting.`
}

// parseTitles decodes the model's textual payload into task titles.
// The payload must be a JSON array of {"title": ...} objects; some models
// wrap the array in a {"tasks": [...]} object instead, which is accepted.
func parseTitles(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrEmptyResponse
	}

	if !strings.HasPrefix(raw, "[") {
		if wrapped := gjson.Get(raw, "tasks"); wrapped.IsArray() {
			raw = wrapped.Raw
		}
	}

	var entries []struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	titles := make([]string, 0, len(entries))
	for _, e := range entries {
		title := strings.TrimSpace(e.Title)
		if title == "" {
			continue
		}
		titles = append(titles, title)
	}

	if len(titles) == 0 {
		return nil, fmt.Errorf("%w: no titles in payload", ErrMalformedResponse)
	}

	return titles, nil
}
