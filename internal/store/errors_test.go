package store_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taskwire/taskmanager-api/internal/store"
)

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"generic_not_found", store.ErrNotFound, true},
		{"user_not_found", store.ErrUserNotFound, true},
		{"task_not_found", store.ErrTaskNotFound, true},
		{"wrapped_user_not_found", fmt.Errorf("failed to retrieve user: %w", store.ErrUserNotFound), true},
		{"duplicate", store.ErrUsernameExists, false},
		{"unrelated", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, store.IsNotFoundError(tt.err))
		})
	}
}

func TestIsDuplicateError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"generic_duplicate", store.ErrDuplicate, true},
		{"username_exists", store.ErrUsernameExists, true},
		{"wrapped_username_exists", fmt.Errorf("failed to create user: %w", store.ErrUsernameExists), true},
		{"not_found", store.ErrUserNotFound, false},
		{"unrelated", errors.New("boom"), false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, store.IsDuplicateError(tt.err))
		})
	}
}

func TestEntitySpecificErrorsWrapGeneric(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, store.ErrUserNotFound, store.ErrNotFound)
	assert.ErrorIs(t, store.ErrTaskNotFound, store.ErrNotFound)
	assert.ErrorIs(t, store.ErrUsernameExists, store.ErrDuplicate)
}
