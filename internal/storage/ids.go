package storage

import "github.com/google/uuid"

// GenerateID creates a new UUID for a task
func GenerateID() string {
	return uuid.New().String()
}
