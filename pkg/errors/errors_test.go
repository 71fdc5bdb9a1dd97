package chat_errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "Chat already exists", AlreadyExists("Chat already exists").Error())
	assert.Equal(t,
		"Error registering user: EMAIL_EXISTS",
		Internal("Error registering user", errors.New("EMAIL_EXISTS")).Error(),
	)
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal("Error sending message", cause)

	assert.True(t, errors.Is(err, ErrInternal))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil", err: nil, expected: http.StatusOK},
		{name: "invalid input", err: InvalidInput("Invalid request body"), expected: http.StatusBadRequest},
		{name: "forbidden", err: Forbidden("You are not authorized to create a room"), expected: http.StatusForbidden},
		{name: "already exists", err: AlreadyExists("Chat already exists"), expected: http.StatusForbidden},
		{name: "not found", err: NotFound("User u1 not found"), expected: http.StatusNotFound},
		{name: "wrapped not found", err: fmt.Errorf("lookup: %w", ErrNotFound), expected: http.StatusNotFound},
		{name: "unavailable", err: New(ErrUnavailable, "Live updates are not enabled"), expected: http.StatusServiceUnavailable},
		{name: "internal", err: Internal("Error creating room", errors.New("boom")), expected: http.StatusInternalServerError},
		{name: "plain error", err: errors.New("boom"), expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}
