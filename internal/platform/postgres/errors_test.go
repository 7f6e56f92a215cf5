package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "unique_violation",
			err:  &pgconn.PgError{Code: pgUniqueViolationCode},
			want: true,
		},
		{
			name: "wrapped_unique_violation",
			err:  fmt.Errorf("insert failed: %w", &pgconn.PgError{Code: pgUniqueViolationCode}),
			want: true,
		},
		{
			name: "foreign_key_violation",
			err:  &pgconn.PgError{Code: pgForeignKeyViolationCode},
			want: false,
		},
		{
			name: "plain_error",
			err:  errors.New("connection refused"),
			want: false,
		},
		{
			name: "nil_error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, isUniqueViolation(tt.err))
		})
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "foreign_key_violation",
			err:  &pgconn.PgError{Code: pgForeignKeyViolationCode},
			want: true,
		},
		{
			name: "wrapped_foreign_key_violation",
			err:  fmt.Errorf("insert failed: %w", &pgconn.PgError{Code: pgForeignKeyViolationCode}),
			want: true,
		},
		{
			name: "unique_violation",
			err:  &pgconn.PgError{Code: pgUniqueViolationCode},
			want: false,
		},
		{
			name: "plain_error",
			err:  errors.New("connection refused"),
			want: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, isForeignKeyViolation(tt.err))
		})
	}
}
