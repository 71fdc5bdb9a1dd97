package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"quickchat/internal/events"
	chattest "quickchat/internal/testing"
	"quickchat/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newStreamServer(t *testing.T, bus events.Bus) *httptest.Server {
	t.Helper()
	h := NewHandler(bus, logger.NewNop())
	r := gin.New()
	r.GET("/rooms/:roomId/stream", h.RoomStream)
	r.GET("/chats/:chatId/stream", h.ChatStream)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server, path string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + path
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	resp.Body.Close()
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestStream_DisabledWithoutBus(t *testing.T) {
	srv := newStreamServer(t, nil)

	resp, err := http.Get(srv.URL + "/rooms/r1/stream")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestStream_RoomMessages(t *testing.T) {
	bus := chattest.NewFakeBus()
	srv := newStreamServer(t, bus)
	conn := dial(t, srv, "/rooms/r1/stream")

	env, err := events.NewEnvelope(events.EventRoomMessage, "r1", "m1", map[string]any{
		"userId": "u1", "username": "alice", "message": "hi", "timestamp": 5,
	})
	require.NoError(t, err)
	require.NoError(t, bus.Publish(context.Background(), env))

	// A message for another room must not show up.
	other, err := events.NewEnvelope(events.EventRoomMessage, "r2", "m2", map[string]any{"message": "no"})
	require.NoError(t, err)
	require.NoError(t, bus.Publish(context.Background(), other))

	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var frame map[string]any
	require.NoError(t, json.Unmarshal(data, &frame))
	assert.Equal(t, "m1", frame["id"])
	assert.Equal(t, "hi", frame["message"])
	assert.Equal(t, "alice", frame["username"])
}

func TestStream_ChatMessages(t *testing.T) {
	bus := chattest.NewFakeBus()
	srv := newStreamServer(t, bus)
	conn := dial(t, srv, "/chats/a-b/stream")

	env, err := events.NewEnvelope(events.EventChatMessage, "a-b", "m1", map[string]any{"from": "a", "message": "yo"})
	require.NoError(t, err)
	require.NoError(t, bus.Publish(context.Background(), env))

	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"m1","from":"a","message":"yo"}`, string(data))
}
