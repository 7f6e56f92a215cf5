package domain

import "errors"

// Common validation errors for Task
var (
	ErrEmptyTaskTitle   = errors.New("task title cannot be empty")
	ErrEmptyTaskContent = errors.New("task content cannot be empty")
	ErrEmptyTaskUserID  = errors.New("task user ID cannot be empty")
)

// Task represents a unit of work owned by a single user.
// Priority is an unconstrained caller-supplied integer; no range is
// enforced anywhere in the system.
type Task struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Priority int    `json:"priority"`
	UserID   int64  `json:"user_id"`
}

// NewTask creates a new Task owned by the given user.
// Returns an error if validation fails.
func NewTask(userID int64, title, content string, priority int) (*Task, error) {
	task := &Task{
		Title:    title,
		Content:  content,
		Priority: priority,
		UserID:   userID,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.Title == "" {
		return ErrEmptyTaskTitle
	}

	if t.Content == "" {
		return ErrEmptyTaskContent
	}

	if t.UserID <= 0 {
		return ErrEmptyTaskUserID
	}

	return nil
}
