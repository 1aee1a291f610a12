package core

import (
	"context"
	"time"

	"github.com/studyloop/studyloop/internal/storage"
)

// TitleGenerator produces task titles for a topic.
// Implementations: generation.GeminiClient, generation.OpenAIClient
type TitleGenerator interface {
	// GenerateTitles returns an ordered list of task titles for the topic.
	GenerateTitles(ctx context.Context, topic string) ([]string, error)
}

// TaskStorage stores task rows. All mutations are scoped by owning user.
// Implementations: storage.TaskStore (SQLite)
type TaskStorage interface {
	InsertTask(row *storage.TaskRow) error
	ListByUser(userID string) ([]*storage.TaskRow, error)
	UpdateTitle(id, userID, title string) (*storage.TaskRow, error)
	UpdateCompleted(id, userID string, completed bool) (*storage.TaskRow, error)
	DeleteTask(id, userID string) (*storage.TaskRow, error)
	ReplaceTopic(userID, topic string, titles []string, now time.Time) ([]*storage.TaskRow, error)
	TopicStats(userID string) ([]storage.TopicCount, error)
	Close() error
}

// IDGenerator generates unique identifiers.
// Implementations: storage.GenerateID (UUID-based)
type IDGenerator interface {
	GenerateID() string
}

// defaultIDGenerator uses UUID for ID generation
type defaultIDGenerator struct{}

func (g *defaultIDGenerator) GenerateID() string {
	return storage.GenerateID()
}

// NewIDGenerator creates a default ID generator.
func NewIDGenerator() IDGenerator {
	return &defaultIDGenerator{}
}
