package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// ErrNotFound means no row matched the (id, user) pair. An absent row and a
// row owned by another user are reported identically.
var ErrNotFound = errors.New("no matching task")

// TaskStore handles SQLite task storage
type TaskStore struct {
	db *sql.DB
}

// TaskRow represents a task in the store
type TaskRow struct {
	ID        string
	UserID    string
	Title     string
	Topic     string
	Completed bool
	CreatedAt time.Time
}

// TopicCount pairs a topic with its completion tally
type TopicCount struct {
	Topic     string
	Total     int
	Completed int
}

// NewTaskStore opens (or creates) the task database at dbPath
func NewTaskStore(dbPath string) (*TaskStore, error) {
	// Expand ~ in path
	if strings.HasPrefix(dbPath, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	store := &TaskStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

// migrate creates the necessary tables
func (s *TaskStore) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS tasks (
			id         TEXT PRIMARY KEY,
			user_id    TEXT NOT NULL,
			title      TEXT NOT NULL,
			topic      TEXT NOT NULL,
			completed  INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_tasks_user ON tasks(user_id);
		CREATE INDEX IF NOT EXISTS idx_tasks_user_topic ON tasks(user_id, topic);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection
func (s *TaskStore) Close() error {
	return s.db.Close()
}

// InsertTask saves a single task row
func (s *TaskStore) InsertTask(row *TaskRow) error {
	_, err := s.db.Exec(`
		INSERT INTO tasks (id, user_id, title, topic, completed, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, row.ID, row.UserID, row.Title, row.Topic, row.Completed, row.CreatedAt)

	return err
}

// ListByUser returns all tasks owned by userID in storage order
func (s *TaskStore) ListByUser(userID string) ([]*TaskRow, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, title, topic, completed, created_at
		FROM tasks
		WHERE user_id = ?
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*TaskRow
	for rows.Next() {
		var t TaskRow
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Topic, &t.Completed, &t.CreatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, &t)
	}

	return tasks, rows.Err()
}

// UpdateTitle sets the title of the row matching both id and userID.
// The ownership check and the mutation are one conditional statement.
func (s *TaskStore) UpdateTitle(id, userID, title string) (*TaskRow, error) {
	row := s.db.QueryRow(`
		UPDATE tasks SET title = ?
		WHERE id = ? AND user_id = ?
		RETURNING id, user_id, title, topic, completed, created_at
	`, title, id, userID)

	return scanTask(row)
}

// UpdateCompleted sets the completed flag of the row matching both id and userID
func (s *TaskStore) UpdateCompleted(id, userID string, completed bool) (*TaskRow, error) {
	row := s.db.QueryRow(`
		UPDATE tasks SET completed = ?
		WHERE id = ? AND user_id = ?
		RETURNING id, user_id, title, topic, completed, created_at
	`, completed, id, userID)

	return scanTask(row)
}

// DeleteTask removes the row matching both id and userID and returns it
func (s *TaskStore) DeleteTask(id, userID string) (*TaskRow, error) {
	row := s.db.QueryRow(`
		DELETE FROM tasks
		WHERE id = ? AND user_id = ?
		RETURNING id, user_id, title, topic, completed, created_at
	`, id, userID)

	return scanTask(row)
}

// ReplaceTopic deletes every task for (userID, topic) and inserts one row per
// title, all inside a single transaction. Returns the inserted rows in order.
func (s *TaskStore) ReplaceTopic(userID, topic string, titles []string, now time.Time) ([]*TaskRow, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM tasks WHERE user_id = ? AND topic = ?`, userID, topic); err != nil {
		return nil, fmt.Errorf("delete topic tasks: %w", err)
	}

	inserted := make([]*TaskRow, 0, len(titles))
	for _, title := range titles {
		row := &TaskRow{
			ID:        GenerateID(),
			UserID:    userID,
			Title:     title,
			Topic:     topic,
			Completed: false,
			CreatedAt: now,
		}
		if _, err := tx.Exec(`
			INSERT INTO tasks (id, user_id, title, topic, completed, created_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, row.ID, row.UserID, row.Title, row.Topic, row.Completed, row.CreatedAt); err != nil {
			return nil, fmt.Errorf("insert generated task: %w", err)
		}
		inserted = append(inserted, row)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return inserted, nil
}

// TopicStats returns per-topic completion tallies for userID
func (s *TaskStore) TopicStats(userID string) ([]TopicCount, error) {
	rows, err := s.db.Query(`
		SELECT topic, COUNT(*), SUM(completed)
		FROM tasks
		WHERE user_id = ?
		GROUP BY topic
		ORDER BY topic
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []TopicCount
	for rows.Next() {
		var tc TopicCount
		if err := rows.Scan(&tc.Topic, &tc.Total, &tc.Completed); err != nil {
			return nil, err
		}
		stats = append(stats, tc)
	}

	return stats, rows.Err()
}

func scanTask(row *sql.Row) (*TaskRow, error) {
	var t TaskRow
	err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Topic, &t.Completed, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}
