package domain

import "errors"

// Common validation errors for User
var (
	ErrEmptyUsername  = errors.New("username cannot be empty")
	ErrEmptyFirstName = errors.New("first name cannot be empty")
	ErrEmptyLastName  = errors.New("last name cannot be empty")
	ErrInvalidAge     = errors.New("age must be a positive integer")
)

// User represents a registered user of the task manager.
// The ID is assigned by the database on insert; a zero ID marks
// a user that has not been persisted yet.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Age       int    `json:"age"`
}

// NewUser creates a new User with the given fields.
// Returns an error if validation fails.
func NewUser(username, firstName, lastName string, age int) (*User, error) {
	user := &User{
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
		Age:       age,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.Username == "" {
		return ErrEmptyUsername
	}

	if u.FirstName == "" {
		return ErrEmptyFirstName
	}

	if u.LastName == "" {
		return ErrEmptyLastName
	}

	if u.Age <= 0 {
		return ErrInvalidAge
	}

	return nil
}
