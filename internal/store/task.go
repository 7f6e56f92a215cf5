package store

import (
	"context"
	"database/sql"

	"github.com/taskwire/taskmanager-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// List retrieves all tasks in storage-default order.
	// Returns an empty slice if no tasks exist.
	List(ctx context.Context) ([]*domain.Task, error)

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// ListByUserID retrieves all tasks owned by the given user.
	// Returns an empty slice if the user owns no tasks. The caller is
	// responsible for verifying the user exists.
	ListByUserID(ctx context.Context, userID int64) ([]*domain.Task, error)

	// Create saves a new task to the store and assigns its ID.
	// Returns ErrInvalidEntity if the owning user does not exist
	// (foreign key violation).
	// Returns validation errors from the domain Task if data is invalid.
	Create(ctx context.Context, task *domain.Task) error

	// Update replaces an existing task's title, content and priority.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task from the store by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id int64) error

	// DeleteByUserID removes every task owned by the given user.
	// Deleting zero tasks is not an error.
	DeleteByUserID(ctx context.Context, userID int64) error

	// WithTx returns a new TaskStore instance that uses the provided transaction.
	// This allows for multiple operations to be executed within a single transaction.
	// The transaction should be created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) TaskStore
}
