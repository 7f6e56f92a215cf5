package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskwire/taskmanager-api/internal/domain"
)

// newRequestWithPathParam builds a request carrying a chi route parameter
// without standing up a router.
func newRequestWithPathParam(t *testing.T, name, value string) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(name, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGetPathID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		value       string
		expectedID  int64
		expectedErr error
	}{
		{name: "valid_id", value: "42", expectedID: 42},
		{name: "missing_param", value: "", expectedErr: domain.ErrValidation},
		{name: "non_integer", value: "abc", expectedErr: domain.ErrInvalidID},
		{name: "zero", value: "0", expectedErr: domain.ErrInvalidID},
		{name: "negative", value: "-3", expectedErr: domain.ErrInvalidID},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := newRequestWithPathParam(t, "user_id", tt.value)
			id, err := getPathID(req, "user_id")

			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedID, id)
		})
	}
}

func TestGetQueryID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		target      string
		expectedID  int64
		expectedErr error
	}{
		{name: "valid_id", target: "/task/delete?task_id=42", expectedID: 42},
		{name: "missing_param", target: "/task/delete", expectedErr: domain.ErrValidation},
		{name: "non_integer", target: "/task/delete?task_id=abc", expectedErr: domain.ErrInvalidID},
		{name: "zero", target: "/task/delete?task_id=0", expectedErr: domain.ErrInvalidID},
		{name: "negative", target: "/task/delete?task_id=-3", expectedErr: domain.ErrInvalidID},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodDelete, tt.target, nil)
			id, err := getQueryID(req, "task_id")

			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedID, id)
		})
	}
}
