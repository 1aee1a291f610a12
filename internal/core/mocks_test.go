package core

import (
	"context"
	"errors"
	"time"

	"github.com/studyloop/studyloop/internal/storage"
)

// Test errors
var (
	ErrMockStore     = errors.New("store error")
	ErrMockGenerator = errors.New("generator error")
)

// MockTaskStorage implements TaskStorage for testing
type MockTaskStorage struct {
	InsertTaskFunc      func(row *storage.TaskRow) error
	ListByUserFunc      func(userID string) ([]*storage.TaskRow, error)
	UpdateTitleFunc     func(id, userID, title string) (*storage.TaskRow, error)
	UpdateCompletedFunc func(id, userID string, completed bool) (*storage.TaskRow, error)
	DeleteTaskFunc      func(id, userID string) (*storage.TaskRow, error)
	ReplaceTopicFunc    func(userID, topic string, titles []string, now time.Time) ([]*storage.TaskRow, error)
	TopicStatsFunc      func(userID string) ([]storage.TopicCount, error)
}

func (m *MockTaskStorage) InsertTask(row *storage.TaskRow) error {
	if m.InsertTaskFunc != nil {
		return m.InsertTaskFunc(row)
	}
	return nil
}

func (m *MockTaskStorage) ListByUser(userID string) ([]*storage.TaskRow, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(userID)
	}
	return nil, nil
}

func (m *MockTaskStorage) UpdateTitle(id, userID, title string) (*storage.TaskRow, error) {
	if m.UpdateTitleFunc != nil {
		return m.UpdateTitleFunc(id, userID, title)
	}
	return nil, storage.ErrNotFound
}

func (m *MockTaskStorage) UpdateCompleted(id, userID string, completed bool) (*storage.TaskRow, error) {
	if m.UpdateCompletedFunc != nil {
		return m.UpdateCompletedFunc(id, userID, completed)
	}
	return nil, storage.ErrNotFound
}

func (m *MockTaskStorage) DeleteTask(id, userID string) (*storage.TaskRow, error) {
	if m.DeleteTaskFunc != nil {
		return m.DeleteTaskFunc(id, userID)
	}
	return nil, storage.ErrNotFound
}

func (m *MockTaskStorage) ReplaceTopic(userID, topic string, titles []string, now time.Time) ([]*storage.TaskRow, error) {
	if m.ReplaceTopicFunc != nil {
		return m.ReplaceTopicFunc(userID, topic, titles, now)
	}
	return nil, nil
}

func (m *MockTaskStorage) TopicStats(userID string) ([]storage.TopicCount, error) {
	if m.TopicStatsFunc != nil {
		return m.TopicStatsFunc(userID)
	}
	return nil, nil
}

func (m *MockTaskStorage) Close() error { return nil }

// MockGenerator implements TitleGenerator for testing
type MockGenerator struct {
	GenerateTitlesFunc func(ctx context.Context, topic string) ([]string, error)
}

func (m *MockGenerator) GenerateTitles(ctx context.Context, topic string) ([]string, error) {
	if m.GenerateTitlesFunc != nil {
		return m.GenerateTitlesFunc(ctx, topic)
	}
	return nil, ErrMockGenerator
}

// fixedIDs hands out predictable IDs
type fixedIDs struct {
	next int
}

func (f *fixedIDs) GenerateID() string {
	f.next++
	return string(rune('a' + f.next - 1))
}

func newTestService(store *MockTaskStorage, gen *MockGenerator) *TaskService {
	return NewTaskServiceWithDeps(TaskServiceDeps{
		Store:     store,
		Generator: gen,
		IDs:       &fixedIDs{},
	})
}
