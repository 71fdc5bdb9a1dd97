// Package websocket streams newly appended room and chat messages to
// connected clients.
package websocket

import (
	"context"
	"net/http"

	"quickchat/internal/events"
	"quickchat/internal/transport/httpdto"
	"quickchat/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type Handler struct {
	bus      events.Bus
	log      *logger.Logger
	upgrader websocket.Upgrader
}

// NewHandler builds the stream handler. With a nil bus every stream request
// is answered with 503.
func NewHandler(bus events.Bus, log *logger.Logger) *Handler {
	return &Handler{
		bus: bus,
		log: log,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// RoomStream handles GET /rooms/:roomId/stream
func (h *Handler) RoomStream(c *gin.Context) {
	h.stream(c, events.RoomChannel(c.Param("roomId")))
}

// ChatStream handles GET /chats/:chatId/stream
func (h *Handler) ChatStream(c *gin.Context) {
	h.stream(c, events.ChatChannel(c.Param("chatId")))
}

func (h *Handler) stream(c *gin.Context, channel string) {
	if h.bus == nil {
		c.String(http.StatusServiceUnavailable, httpdto.MsgLiveUpdatesDisabled)
		return
	}

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	// Subscribe before upgrading so a failure can still be reported over HTTP
	// and nothing sent after the handshake is missed.
	sub, err := h.bus.Subscribe(ctx, channel)
	if err != nil {
		_ = c.Error(err)
		c.String(http.StatusServiceUnavailable, "Error subscribing to updates: "+err.Error())
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	client := NewClient(conn)
	go client.WriteLoop(ctx)
	go func() {
		for env := range sub {
			frame, err := env.Frame()
			if err != nil {
				h.log.WarnCtx(ctx, "dropping undecodable event", zap.String("channel", channel), zap.Error(err))
				continue
			}
			client.SendMessage(frame)
		}
	}()

	client.ReadLoop()
}
