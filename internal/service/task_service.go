package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/taskwire/taskmanager-api/internal/domain"
	"github.com/taskwire/taskmanager-api/internal/store"
)

// TaskService provides task-related operations
type TaskService interface {
	// ListTasks retrieves all tasks
	ListTasks(ctx context.Context) ([]*domain.Task, error)

	// GetTask retrieves a task by its ID
	GetTask(ctx context.Context, taskID int64) (*domain.Task, error)

	// CreateTask creates a new task owned by the given user.
	// Returns store.ErrUserNotFound if the user does not exist; the check
	// happens before the insert.
	CreateTask(ctx context.Context, userID int64, title, content string, priority int) (*domain.Task, error)

	// UpdateTask replaces a task's title, content and priority.
	// Returns store.ErrTaskNotFound if the task does not exist.
	UpdateTask(ctx context.Context, taskID int64, title, content string, priority int) error

	// DeleteTask deletes a task by its ID.
	// Returns store.ErrTaskNotFound if the task does not exist.
	DeleteTask(ctx context.Context, taskID int64) error
}

// TaskServiceImpl implements the TaskService interface
type TaskServiceImpl struct {
	taskStore store.TaskStore
	userStore store.UserStore
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService
func NewTaskService(
	taskStore store.TaskStore,
	userStore store.UserStore,
	logger *slog.Logger,
) TaskService {
	return &TaskServiceImpl{
		taskStore: taskStore,
		userStore: userStore,
		logger:    logger.With("component", "task_service"),
	}
}

// ListTasks retrieves all tasks
func (s *TaskServiceImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	tasks, err := s.taskStore.List(ctx)
	if err != nil {
		s.logger.Error("failed to list tasks", "error", err)
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

// GetTask retrieves a task by its ID
func (s *TaskServiceImpl) GetTask(ctx context.Context, taskID int64) (*domain.Task, error) {
	task, err := s.taskStore.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			s.logger.Debug("task not found", "task_id", taskID)
		} else {
			s.logger.Error("failed to retrieve task",
				"error", err,
				"task_id", taskID)
		}
		return nil, fmt.Errorf("failed to retrieve task: %w", err)
	}

	return task, nil
}

// CreateTask creates a new task owned by the given user.
// The user existence check runs before the insert; the foreign key
// constraint backs it up against a concurrent user delete.
func (s *TaskServiceImpl) CreateTask(
	ctx context.Context,
	userID int64,
	title, content string,
	priority int,
) (*domain.Task, error) {
	_, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("task creation for missing user", "user_id", userID)
		} else {
			s.logger.Error("failed to load user for task creation",
				"error", err,
				"user_id", userID)
		}
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	task, err := domain.NewTask(userID, title, content, priority)
	if err != nil {
		s.logger.Warn("invalid task data",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		s.logger.Error("failed to save task to database",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// UpdateTask replaces a task's title, content and priority
func (s *TaskServiceImpl) UpdateTask(
	ctx context.Context,
	taskID int64,
	title, content string,
	priority int,
) error {
	task := &domain.Task{
		ID:       taskID,
		Title:    title,
		Content:  content,
		Priority: priority,
	}

	if err := s.taskStore.Update(ctx, task); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			s.logger.Debug("task not found for update", "task_id", taskID)
		} else {
			s.logger.Error("failed to update task",
				"error", err,
				"task_id", taskID)
		}
		return fmt.Errorf("failed to update task: %w", err)
	}

	return nil
}

// DeleteTask deletes a task by its ID
func (s *TaskServiceImpl) DeleteTask(ctx context.Context, taskID int64) error {
	if err := s.taskStore.Delete(ctx, taskID); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			s.logger.Debug("task not found for delete", "task_id", taskID)
		} else {
			s.logger.Error("failed to delete task",
				"error", err,
				"task_id", taskID)
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}
