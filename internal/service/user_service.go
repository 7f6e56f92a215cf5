package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/taskwire/taskmanager-api/internal/domain"
	"github.com/taskwire/taskmanager-api/internal/store"
)

// UserService provides user-related operations, including the
// transactional cascade delete of a user and their tasks.
type UserService interface {
	// ListUsers retrieves all users
	ListUsers(ctx context.Context) ([]*domain.User, error)

	// GetUser retrieves a user by their ID
	GetUser(ctx context.Context, userID int64) (*domain.User, error)

	// CreateUser creates a new user with the given fields.
	// Returns store.ErrUsernameExists if the username is already taken;
	// the check happens before any write.
	CreateUser(ctx context.Context, username, firstName, lastName string, age int) (*domain.User, error)

	// UpdateUser replaces a user's first name, last name and age.
	// The username is immutable through this path.
	UpdateUser(ctx context.Context, userID int64, firstName, lastName string, age int) error

	// DeleteUser deletes a user and every task they own in a single
	// transaction. Returns store.ErrUserNotFound if the user does not exist.
	DeleteUser(ctx context.Context, userID int64) error

	// ListUserTasks retrieves all tasks owned by the given user.
	// Returns store.ErrUserNotFound if the user does not exist, never an
	// empty list for a missing user.
	ListUserTasks(ctx context.Context, userID int64) ([]*domain.Task, error)
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userStore store.UserStore
	taskStore store.TaskStore
	db        *sql.DB
	logger    *slog.Logger
}

// NewUserService creates a new UserService
func NewUserService(
	userStore store.UserStore,
	taskStore store.TaskStore,
	db *sql.DB,
	logger *slog.Logger,
) UserService {
	return &UserServiceImpl{
		userStore: userStore,
		taskStore: taskStore,
		db:        db,
		logger:    logger.With("component", "user_service"),
	}
}

// ListUsers retrieves all users
func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

// GetUser retrieves a user by their ID
func (s *UserServiceImpl) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("user not found", "user_id", userID)
		} else {
			s.logger.Error("failed to retrieve user",
				"error", err,
				"user_id", userID)
		}
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}

	return user, nil
}

// CreateUser creates a new user with the given fields.
// The username uniqueness check runs before any write; the database
// unique constraint backs it up against concurrent creates.
func (s *UserServiceImpl) CreateUser(
	ctx context.Context,
	username, firstName, lastName string,
	age int,
) (*domain.User, error) {
	user, err := domain.NewUser(username, firstName, lastName, age)
	if err != nil {
		s.logger.Warn("invalid user data",
			"error", err,
			"username", username)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	_, err = s.userStore.GetByUsername(ctx, username)
	if err == nil {
		s.logger.Debug("attempted to create user with existing username",
			"username", username)
		return nil, store.ErrUsernameExists
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		s.logger.Error("failed to check username availability",
			"error", err,
			"username", username)
		return nil, fmt.Errorf("failed to check username availability: %w", err)
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.userStore.WithTx(tx)
		return txStore.Create(ctx, user)
	})

	if err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			s.logger.Debug("username taken by concurrent create",
				"username", username)
		} else {
			s.logger.Error("failed to save user to database",
				"error", err,
				"username", username)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// UpdateUser replaces a user's first name, last name and age
func (s *UserServiceImpl) UpdateUser(
	ctx context.Context,
	userID int64,
	firstName, lastName string,
	age int,
) error {
	user := &domain.User{
		ID:        userID,
		FirstName: firstName,
		LastName:  lastName,
		Age:       age,
	}

	if err := s.userStore.Update(ctx, user); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("user not found for update", "user_id", userID)
		} else {
			s.logger.Error("failed to update user",
				"error", err,
				"user_id", userID)
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

// DeleteUser deletes a user and every task they own.
// Both deletes run in the same transaction so a failure leaves the user
// and their tasks intact.
func (s *UserServiceImpl) DeleteUser(ctx context.Context, userID int64) error {
	_, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("user not found for delete", "user_id", userID)
		} else {
			s.logger.Error("failed to load user for delete",
				"error", err,
				"user_id", userID)
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.taskStore.WithTx(tx).DeleteByUserID(ctx, userID); err != nil {
			return err
		}
		return s.userStore.WithTx(tx).Delete(ctx, userID)
	})

	if err != nil {
		s.logger.Error("failed to delete user and tasks",
			"error", err,
			"user_id", userID)
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("user and related tasks deleted", "user_id", userID)
	return nil
}

// ListUserTasks retrieves all tasks owned by the given user.
// The user existence check runs first so a missing user surfaces as
// not found rather than an empty task list.
func (s *UserServiceImpl) ListUserTasks(ctx context.Context, userID int64) ([]*domain.Task, error) {
	_, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("user not found for task listing", "user_id", userID)
		} else {
			s.logger.Error("failed to load user for task listing",
				"error", err,
				"user_id", userID)
		}
		return nil, fmt.Errorf("failed to list user tasks: %w", err)
	}

	tasks, err := s.taskStore.ListByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list tasks for user",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to list user tasks: %w", err)
	}

	return tasks, nil
}
