package core

import (
	"time"
)

// View filter constants
const (
	FilterAll        = "all"
	FilterCompleted  = "completed"
	FilterIncomplete = "incomplete"
)

// Config holds configuration for the task service
type Config struct {
	GeminiAPIKey string
	OpenAIAPIKey string
	TaskDBPath   string

	// Generator selects the text-generation backend: "gemini" or "openai"
	Generator string

	// GeminiURL overrides the generateContent endpoint (used in tests)
	GeminiURL string
}

// Task represents a single learning task owned by a user
type Task struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Topic     string    `json:"topic"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// TopicStat summarizes progress for one topic
type TopicStat struct {
	Topic     string `json:"topic"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
}
