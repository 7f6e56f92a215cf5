package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskwire/taskmanager-api/internal/domain"
	"github.com/taskwire/taskmanager-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "user_not_found",
			err:      store.ErrUserNotFound,
			expected: http.StatusNotFound,
		},
		{
			name:     "task_not_found",
			err:      store.ErrTaskNotFound,
			expected: http.StatusNotFound,
		},
		{
			name:     "wrapped_not_found",
			err:      fmt.Errorf("failed to get user: %w", store.ErrUserNotFound),
			expected: http.StatusNotFound,
		},
		{
			name:     "invalid_entity_maps_to_not_found",
			err:      fmt.Errorf("%w: user with ID 42 not found", store.ErrInvalidEntity),
			expected: http.StatusNotFound,
		},
		{
			name:     "duplicate_username_maps_to_bad_request",
			err:      store.ErrUsernameExists,
			expected: http.StatusBadRequest,
		},
		{
			name:     "domain_validation_maps_to_unprocessable",
			err:      domain.ErrInvalidAge,
			expected: http.StatusUnprocessableEntity,
		},
		{
			name:     "unknown_error_maps_to_internal",
			err:      errors.New("connection reset"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil_error",
			err:      nil,
			expected: "An unexpected error occurred",
		},
		{
			name:     "user_not_found",
			err:      store.ErrUserNotFound,
			expected: "User was not found",
		},
		{
			name:     "invalid_entity_reads_as_missing_user",
			err:      fmt.Errorf("%w: user with ID 42 not found", store.ErrInvalidEntity),
			expected: "User was not found",
		},
		{
			name:     "task_not_found",
			err:      store.ErrTaskNotFound,
			expected: "Task not found",
		},
		{
			name:     "duplicate_username",
			err:      store.ErrUsernameExists,
			expected: "User with this username already exists",
		},
		{
			name:     "domain_validation",
			err:      domain.ErrEmptyTaskTitle,
			expected: "Invalid request data",
		},
		{
			name:     "unknown_error_is_not_leaked",
			err:      errors.New("pq: connection refused host=db.internal"),
			expected: "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, GetSafeErrorMessage(tt.err))
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	validate := validator.New()

	t.Run("required_field", func(t *testing.T) {
		t.Parallel()

		req := CreateUserRequest{FirstName: "Alice", LastName: "Smith", Age: 30}
		err := validate.Struct(req)
		require.Error(t, err)

		msg := SanitizeValidationError(err)
		assert.Equal(t, "Invalid Username: required field", msg)
	})

	t.Run("gt_field", func(t *testing.T) {
		t.Parallel()

		req := CreateUserRequest{Username: "alice", FirstName: "Alice", LastName: "Smith", Age: -1}
		err := validate.Struct(req)
		require.Error(t, err)

		msg := SanitizeValidationError(err)
		assert.Equal(t, "Invalid Age: too small", msg)
	})

	t.Run("non_validation_error", func(t *testing.T) {
		t.Parallel()

		msg := SanitizeValidationError(errors.New("something else entirely"))
		assert.Equal(t, "Validation error", msg)
	})
}
