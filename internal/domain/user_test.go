package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskwire/taskmanager-api/internal/domain"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		username  string
		firstName string
		lastName  string
		age       int
		wantErr   error
	}{
		{
			name:      "valid_user",
			username:  "alice",
			firstName: "Alice",
			lastName:  "A",
			age:       30,
		},
		{
			name:      "empty_username",
			username:  "",
			firstName: "Alice",
			lastName:  "A",
			age:       30,
			wantErr:   domain.ErrEmptyUsername,
		},
		{
			name:      "empty_first_name",
			username:  "alice",
			firstName: "",
			lastName:  "A",
			age:       30,
			wantErr:   domain.ErrEmptyFirstName,
		},
		{
			name:      "empty_last_name",
			username:  "alice",
			firstName: "Alice",
			lastName:  "",
			age:       30,
			wantErr:   domain.ErrEmptyLastName,
		},
		{
			name:      "zero_age",
			username:  "alice",
			firstName: "Alice",
			lastName:  "A",
			age:       0,
			wantErr:   domain.ErrInvalidAge,
		},
		{
			name:      "negative_age",
			username:  "alice",
			firstName: "Alice",
			lastName:  "A",
			age:       -5,
			wantErr:   domain.ErrInvalidAge,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			user, err := domain.NewUser(tt.username, tt.firstName, tt.lastName, tt.age)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, user)
			assert.Equal(t, tt.username, user.Username)
			assert.Equal(t, tt.firstName, user.FirstName)
			assert.Equal(t, tt.lastName, user.LastName)
			assert.Equal(t, tt.age, user.Age)
			assert.Zero(t, user.ID, "ID is assigned by the database")
		})
	}
}

func TestUserValidate(t *testing.T) {
	t.Parallel()

	user := &domain.User{
		ID:        1,
		Username:  "bob",
		FirstName: "Bob",
		LastName:  "B",
		Age:       42,
	}
	assert.NoError(t, user.Validate())

	user.Username = ""
	assert.ErrorIs(t, user.Validate(), domain.ErrEmptyUsername)
}
