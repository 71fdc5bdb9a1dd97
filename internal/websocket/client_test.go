package websocket

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
)

func TestClient_WriteLoopClosesConnOnWriteError(t *testing.T) {
	done := make(chan error, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := (&websocket.Upgrader{}).Upgrade(w, r, nil)
		if err != nil {
			done <- err
			return
		}
		tcp, ok := conn.UnderlyingConn().(*net.TCPConn)
		if !ok {
			done <- errors.New("not a TCP connection")
			return
		}
		// Every write fails from here on while the connection stays open.
		_ = tcp.CloseWrite()

		client := NewClient(conn)
		client.SendMessage([]byte("lost"))
		client.WriteLoop(context.Background())

		done <- tcp.SetReadDeadline(time.Now())
	}))
	defer srv.Close()

	dial(t, srv, "/")

	select {
	case err := <-done:
		assert.ErrorIs(t, err, net.ErrClosed)
	case <-time.After(5 * time.Second):
		t.Fatal("WriteLoop did not return after a write error")
	}
}
