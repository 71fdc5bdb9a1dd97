package quickchat

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChat_RetriesFailedInit(t *testing.T) {
	prev := buildRouter
	t.Cleanup(func() {
		buildRouter = prev
		router = nil
	})

	builds := 0
	buildRouter = func(context.Context) (http.Handler, error) {
		builds++
		if builds == 1 {
			return nil, errors.New("firebase unreachable")
		}
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("pong"))
		}), nil
	}

	w := httptest.NewRecorder()
	Chat(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = httptest.NewRecorder()
	Chat(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())

	// Built once it succeeds.
	Chat(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, 2, builds)
}
