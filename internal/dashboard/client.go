package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/studyloop/studyloop/internal/core"
)

// TasksAPI is the remote surface the dashboard talks to. The HTTP Client
// implements it; tests substitute a controllable stand-in so every optimistic
// flow can be exercised without a network.
type TasksAPI interface {
	FetchTasks(ctx context.Context) ([]core.Task, error)
	GenerateTasks(ctx context.Context, topic string) ([]core.Task, error)
	EditTitle(ctx context.Context, id, title string) (*core.Task, error)
	ToggleCompleted(ctx context.Context, id string, completed bool) (*core.Task, error)
	DeleteTask(ctx context.Context, id string) (*core.Task, error)
}

// Client talks to the studyloop HTTP API
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewClient creates an API client against baseURL authenticating with token
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{},
	}
}

func (c *Client) FetchTasks(ctx context.Context) ([]core.Task, error) {
	var tasks []core.Task
	if err := c.do(ctx, http.MethodGet, "/api/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *Client) GenerateTasks(ctx context.Context, topic string) ([]core.Task, error) {
	var tasks []core.Task
	body := map[string]string{"topic": topic}
	if err := c.do(ctx, http.MethodPost, "/api/generate-tasks", body, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *Client) EditTitle(ctx context.Context, id, title string) (*core.Task, error) {
	var task core.Task
	body := map[string]string{"title": title}
	if err := c.do(ctx, http.MethodPut, "/api/tasks/"+id, body, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) ToggleCompleted(ctx context.Context, id string, completed bool) (*core.Task, error) {
	var task core.Task
	body := map[string]bool{"completed": completed}
	if err := c.do(ctx, http.MethodPatch, "/api/tasks/"+id, body, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) DeleteTask(ctx context.Context, id string) (*core.Task, error) {
	var task core.Task
	if err := c.do(ctx, http.MethodDelete, "/api/tasks/"+id, nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Error any `json:"error"`
		}
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error != nil {
			return fmt.Errorf("api error (%d): %v", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("api error (%d): %s", resp.StatusCode, string(respBody))
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
