package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/studyloop/studyloop/internal/generation"
	"github.com/studyloop/studyloop/internal/storage"
)

// TaskService orchestrates task persistence and generation
type TaskService struct {
	config    Config
	store     TaskStorage
	generator TitleGenerator
	ids       IDGenerator
}

// TaskServiceDeps holds dependencies for constructing a TaskService.
type TaskServiceDeps struct {
	Config    Config
	Store     TaskStorage
	Generator TitleGenerator
	IDs       IDGenerator
}

// NewTaskService creates a task service with SQLite-backed storage.
func NewTaskService(ctx context.Context, config Config) (*TaskService, error) {
	store, err := storage.NewTaskStore(config.TaskDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open task store: %w", err)
	}

	var generator TitleGenerator
	switch config.Generator {
	case "openai":
		generator = generation.NewOpenAIClient(config.OpenAIAPIKey)
	case "gemini", "":
		gemini := generation.NewGeminiClient(config.GeminiAPIKey)
		if config.GeminiURL != "" {
			gemini.SetBaseURL(config.GeminiURL)
		}
		generator = gemini
	default:
		store.Close()
		return nil, fmt.Errorf("unknown generator backend: %q", config.Generator)
	}

	return &TaskService{
		config:    config,
		store:     store,
		generator: generator,
		ids:       NewIDGenerator(),
	}, nil
}

// NewTaskServiceWithDeps creates a task service with explicit dependencies (for testing).
func NewTaskServiceWithDeps(deps TaskServiceDeps) *TaskService {
	ids := deps.IDs
	if ids == nil {
		ids = NewIDGenerator()
	}
	return &TaskService{
		config:    deps.Config,
		store:     deps.Store,
		generator: deps.Generator,
		ids:       ids,
	}
}

// Close releases all resources
func (s *TaskService) Close() error {
	if s.store != nil {
		return s.store.Close()
	}
	return nil
}

// Generate produces a fresh set of tasks for topic and replaces any prior set
// the user had under that exact topic string. The generator must fully succeed
// before any store mutation happens; the replace itself is transactional.
func (s *TaskService) Generate(ctx context.Context, userID, topic string) ([]Task, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	if topic == "" {
		return nil, validationErr("topic", "must not be empty")
	}

	titles, err := s.generator.GenerateTitles(ctx, topic)
	if err != nil {
		return nil, err
	}

	rows, err := s.store.ReplaceTopic(userID, topic, titles, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to replace topic tasks: %w", err)
	}

	return tasksFromRows(rows), nil
}

// List returns all tasks owned by the caller
func (s *TaskService) List(ctx context.Context, userID string) ([]Task, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	rows, err := s.store.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasksFromRows(rows), nil
}

// Create inserts a single task owned by the caller
func (s *TaskService) Create(ctx context.Context, userID, title, topic string, completed bool) (*Task, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	if title == "" {
		return nil, validationErr("title", "must not be empty")
	}
	if topic == "" {
		return nil, validationErr("topic", "must not be empty")
	}

	row := &storage.TaskRow{
		ID:        s.ids.GenerateID(),
		UserID:    userID,
		Title:     title,
		Topic:     topic,
		Completed: completed,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.InsertTask(row); err != nil {
		return nil, fmt.Errorf("failed to insert task: %w", err)
	}

	task := taskFromRow(row)
	return &task, nil
}

// EditTitle updates a task's title. Only the title changes; an absent row and
// a row owned by someone else both come back as ErrNotFound.
func (s *TaskService) EditTitle(ctx context.Context, userID, id, title string) (*Task, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	if title == "" {
		return nil, validationErr("title", "must not be empty")
	}

	row, err := s.store.UpdateTitle(id, userID, title)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	task := taskFromRow(row)
	return &task, nil
}

// ToggleCompleted updates a task's completed flag, same ownership semantics as EditTitle
func (s *TaskService) ToggleCompleted(ctx context.Context, userID, id string, completed bool) (*Task, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	row, err := s.store.UpdateCompleted(id, userID, completed)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	task := taskFromRow(row)
	return &task, nil
}

// Delete removes a task and returns the deleted row
func (s *TaskService) Delete(ctx context.Context, userID, id string) (*Task, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	row, err := s.store.DeleteTask(id, userID)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	task := taskFromRow(row)
	return &task, nil
}

// Stats returns per-topic completion tallies for the caller
func (s *TaskService) Stats(ctx context.Context, userID string) ([]TopicStat, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	counts, err := s.store.TopicStats(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}

	stats := make([]TopicStat, len(counts))
	for i, c := range counts {
		stats[i] = TopicStat{Topic: c.Topic, Total: c.Total, Completed: c.Completed}
	}
	return stats, nil
}

// Helper functions

func mapStoreErr(err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// Type conversion helpers

func taskFromRow(r *storage.TaskRow) Task {
	return Task{
		ID:        r.ID,
		UserID:    r.UserID,
		Title:     r.Title,
		Topic:     r.Topic,
		Completed: r.Completed,
		CreatedAt: r.CreatedAt,
	}
}

func tasksFromRows(rows []*storage.TaskRow) []Task {
	tasks := make([]Task, len(rows))
	for i, r := range rows {
		tasks[i] = taskFromRow(r)
	}
	return tasks
}
