package apperror

import (
	"errors"
	"net/http"
	"testing"
)

func TestErrorError(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name: "without internal error",
			err: &Error{
				HTTPStatus: http.StatusNotFound,
				Code:       "not_found",
				Message:    "word 42 not found",
			},
			expected: "not_found: word 42 not found",
		},
		{
			name: "with internal error",
			err: &Error{
				HTTPStatus: http.StatusInternalServerError,
				Code:       "database_error",
				Message:    "Database operation failed",
				Internal:   errors.New("connection refused"),
			},
			expected: "database_error: Database operation failed (connection refused)",
		},
		{
			name: "empty message",
			err: &Error{
				HTTPStatus: http.StatusBadRequest,
				Code:       "bad_request",
				Message:    "",
			},
			expected: "bad_request: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	inner := errors.New("underlying cause")
	err := ErrDatabase.WithInternal(inner)

	if !errors.Is(err, inner) {
		t.Errorf("errors.Is() should find the internal error through Unwrap")
	}

	if ErrNotFound.Unwrap() != nil {
		t.Errorf("Unwrap() on a sentinel without internal error should be nil")
	}
}

func TestWithMessage(t *testing.T) {
	err := ErrNotFound.WithMessage("relation 7 not found")

	if err.Message != "relation 7 not found" {
		t.Errorf("WithMessage() message = %q", err.Message)
	}
	if err.Code != "not_found" || err.HTTPStatus != http.StatusNotFound {
		t.Errorf("WithMessage() must preserve code and status")
	}
	// The sentinel must not be mutated
	if ErrNotFound.Message != "Resource not found" {
		t.Errorf("sentinel ErrNotFound was mutated: %q", ErrNotFound.Message)
	}
}

func TestWithInternal(t *testing.T) {
	inner := errors.New("dial tcp: connection refused")
	err := ErrDatabase.WithInternal(inner)

	if err.Internal != inner {
		t.Errorf("WithInternal() internal = %v, want %v", err.Internal, inner)
	}
	if ErrDatabase.Internal != nil {
		t.Errorf("sentinel ErrDatabase was mutated")
	}
}

func TestWithDetails(t *testing.T) {
	err := ErrValidation.WithDetails(map[string]any{"field": "max_length"})

	if err.Details["field"] != "max_length" {
		t.Errorf("WithDetails() details = %v", err.Details)
	}
	if ErrValidation.Details != nil {
		t.Errorf("sentinel ErrValidation was mutated")
	}
}

func TestNewNotFound(t *testing.T) {
	err := NewNotFound("word", 123)

	if err.Message != "word 123 not found" {
		t.Errorf("NewNotFound() message = %q", err.Message)
	}
	if err.HTTPStatus != http.StatusNotFound {
		t.Errorf("NewNotFound() status = %d", err.HTTPStatus)
	}
}

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"sentinel", ErrNotFound, true},
		{"derived", NewNotFound("word", 1), true},
		{"other app error", ErrBadRequest, false},
		{"plain error", errors.New("not found"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFound(tt.err); got != tt.want {
				t.Errorf("IsNotFound() = %v, want %v", got, tt.want)
			}
		})
	}
}
