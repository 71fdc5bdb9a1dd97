package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type toolkitCall struct {
	path string
	key  string
	body map[string]any
}

type toolkitRecorder struct {
	mu    sync.Mutex
	calls []toolkitCall
}

func (r *toolkitRecorder) all() []toolkitCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]toolkitCall(nil), r.calls...)
}

func newToolkitServer(t *testing.T, status int, response string) (*httptest.Server, *toolkitRecorder) {
	t.Helper()
	rec := &toolkitRecorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		rec.mu.Lock()
		rec.calls = append(rec.calls, toolkitCall{path: r.URL.Path, key: r.URL.Query().Get("key"), body: body})
		rec.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func TestToolkit_SignInWithPassword(t *testing.T) {
	srv, calls := newToolkitServer(t, http.StatusOK, `{"idToken":"tok","localId":"uid-1"}`)
	tk := NewToolkit(srv.URL+"/v1", "api-key", "")

	uid, err := tk.SignInWithPassword(context.Background(), "a@b.c", "secret")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", uid)

	all := calls.all()
	require.Len(t, all, 1)
	call := all[0]
	assert.Equal(t, "/v1/accounts:signInWithPassword", call.path)
	assert.Equal(t, "api-key", call.key)
	assert.Equal(t, "a@b.c", call.body["email"])
	assert.Equal(t, "secret", call.body["password"])
	assert.Equal(t, true, call.body["returnSecureToken"])
}

func TestToolkit_SignInWithIdp(t *testing.T) {
	srv, calls := newToolkitServer(t, http.StatusOK, `{"localId":"uid-g"}`)
	tk := NewToolkit(srv.URL+"/v1", "api-key", "http://localhost")

	uid, err := tk.SignInWithIdp(context.Background(), "google.com", "google-id-token")
	require.NoError(t, err)
	assert.Equal(t, "uid-g", uid)

	all := calls.all()
	require.Len(t, all, 1)
	call := all[0]
	assert.Equal(t, "/v1/accounts:signInWithIdp", call.path)
	assert.Equal(t, "http://localhost", call.body["requestUri"])

	postBody, err := url.ParseQuery(call.body["postBody"].(string))
	require.NoError(t, err)
	assert.Equal(t, "google-id-token", postBody.Get("id_token"))
	assert.Equal(t, "google.com", postBody.Get("providerId"))
}

func TestToolkit_ErrorEnvelope(t *testing.T) {
	srv, _ := newToolkitServer(t, http.StatusBadRequest,
		`{"error":{"code":400,"message":"INVALID_LOGIN_CREDENTIALS","errors":[]}}`)
	tk := NewToolkit(srv.URL, "k", "")

	_, err := tk.SignInWithPassword(context.Background(), "a@b.c", "wrong")
	require.Error(t, err)
	assert.Equal(t, "INVALID_LOGIN_CREDENTIALS", err.Error())

	var tkErr *ToolkitError
	require.ErrorAs(t, err, &tkErr)
	assert.Equal(t, http.StatusBadRequest, tkErr.Status)
}

func TestToolkit_NonJSONError(t *testing.T) {
	srv, _ := newToolkitServer(t, http.StatusBadGateway, `upstream down`)
	tk := NewToolkit(srv.URL, "k", "")

	_, err := tk.SignInWithPassword(context.Background(), "a@b.c", "pw")
	require.Error(t, err)
	assert.Equal(t, "upstream down", err.Error())
}

func TestNewToolkit_DefaultURL(t *testing.T) {
	tk := NewToolkit("", "k", "")
	assert.Equal(t, DefaultToolkitURL, tk.baseURL)
}
