package dashboard

import (
	"context"
	"fmt"
	"log"

	"github.com/studyloop/studyloop/internal/core"
)

// State holds the dashboard's local copy of the caller's tasks. Every
// mutating action follows the same compensating shape: apply locally, call
// the remote, and on failure revert to the pre-call snapshot. State is not
// safe for concurrent use; it models a single user surface.
type State struct {
	api   TasksAPI
	tasks []core.Task

	// editingID is the task whose edit surface is open, if any
	editingID string
}

// NewState creates dashboard state backed by api
func NewState(api TasksAPI) *State {
	return &State{api: api}
}

// Tasks returns a copy of the current local list
func (s *State) Tasks() []core.Task {
	out := make([]core.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Refresh replaces the local list with a full fetch. The local list is
// untouched when the fetch fails.
func (s *State) Refresh(ctx context.Context) error {
	tasks, err := s.api.FetchTasks(ctx)
	if err != nil {
		log.Printf("Warning: fetch tasks failed: %v", err)
		return err
	}
	s.tasks = tasks
	return nil
}

// SubmitTopic generates tasks for a new topic. Nothing is applied until the
// call returns; returned rows are appended to the local list.
func (s *State) SubmitTopic(ctx context.Context, topic string) error {
	generated, err := s.api.GenerateTasks(ctx, topic)
	if err != nil {
		log.Printf("Warning: generate tasks failed: %v", err)
		return err
	}
	s.tasks = append(s.tasks, generated...)
	return nil
}

// Toggle optimistically flips a task's completed flag, then confirms with the
// server. On failure only that task's flag is reverted, so unrelated local
// edits are not clobbered.
func (s *State) Toggle(ctx context.Context, id string) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("unknown task: %s", id)
	}

	was := s.tasks[idx].Completed
	s.tasks[idx].Completed = !was

	if _, err := s.api.ToggleCompleted(ctx, id, !was); err != nil {
		log.Printf("Warning: toggle task failed: %v", err)
		if i := s.indexOf(id); i >= 0 {
			s.tasks[i].Completed = was
		}
		return err
	}
	return nil
}

// Delete optimistically removes a task; the full pre-delete list is restored
// on failure.
func (s *State) Delete(ctx context.Context, id string) error {
	prev := s.Tasks()

	kept := s.tasks[:0:0]
	for _, t := range s.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.tasks = kept

	if _, err := s.api.DeleteTask(ctx, id); err != nil {
		log.Printf("Warning: delete task failed: %v", err)
		s.tasks = prev
		return err
	}
	return nil
}

// StartEdit opens the edit surface for a task
func (s *State) StartEdit(id string) error {
	if s.indexOf(id) < 0 {
		return fmt.Errorf("unknown task: %s", id)
	}
	s.editingID = id
	return nil
}

// CancelEdit closes the edit surface without changes
func (s *State) CancelEdit() {
	s.editingID = ""
}

// Editing returns the ID of the task being edited, or "" if none
func (s *State) Editing() string {
	return s.editingID
}

// SaveEdit optimistically applies the new title and closes the edit surface
// immediately. On failure the full pre-edit list is restored; the surface
// stays closed.
func (s *State) SaveEdit(ctx context.Context, title string) error {
	id := s.editingID
	if id == "" {
		return fmt.Errorf("no task being edited")
	}

	prev := s.Tasks()
	if idx := s.indexOf(id); idx >= 0 {
		s.tasks[idx].Title = title
	}
	s.editingID = ""

	if _, err := s.api.EditTitle(ctx, id, title); err != nil {
		log.Printf("Warning: edit task failed: %v", err)
		s.tasks = prev
		return err
	}
	return nil
}

// Regenerate replaces a topic's tasks server-side and then re-fetches the
// full list, so the local view reflects the replace semantics exactly. The
// prior list is restored if either call fails.
func (s *State) Regenerate(ctx context.Context, topic string) error {
	prev := s.Tasks()

	if _, err := s.api.GenerateTasks(ctx, topic); err != nil {
		log.Printf("Warning: regenerate tasks failed: %v", err)
		s.tasks = prev
		return err
	}

	tasks, err := s.api.FetchTasks(ctx)
	if err != nil {
		log.Printf("Warning: fetch after regenerate failed: %v", err)
		s.tasks = prev
		return err
	}
	s.tasks = tasks
	return nil
}

func (s *State) indexOf(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
