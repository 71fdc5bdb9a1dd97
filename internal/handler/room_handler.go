package handler

import (
	"net/http"

	"quickchat/internal/services"
	"quickchat/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	service *services.RoomService
}

func NewRoomHandler(service *services.RoomService) *RoomHandler {
	return &RoomHandler{service: service}
}

// Create handles POST /rooms
func (h *RoomHandler) Create(c *gin.Context) {
	var req httpdto.CreateRoomRequest
	if !bindJSON(c, &req) {
		return
	}

	_, err := h.service.CreateRoom(c.Request.Context(), services.CreateRoomInput{
		Name:      req.Name,
		CreatedBy: req.CreatedBy,
		Members:   req.Members,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.String(http.StatusOK, httpdto.MsgRoomCreated)
}

// SendMessage handles POST /rooms/:roomId/messages
func (h *RoomHandler) SendMessage(c *gin.Context) {
	var req httpdto.SendRoomMessageRequest
	if !bindJSON(c, &req) {
		return
	}

	_, err := h.service.SendMessage(c.Request.Context(), c.Param("roomId"), services.RoomMessageInput{
		UserID:   req.UserID,
		Username: req.Username,
		Message:  req.Message,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.String(http.StatusOK, httpdto.MsgMessageSent)
}

// Messages handles GET /rooms/:roomId/messages
func (h *RoomHandler) Messages(c *gin.Context) {
	msgs, err := h.service.Messages(c.Request.Context(), c.Param("roomId"))
	if err != nil {
		writeError(c, err)
		return
	}
	writeMessageList(c, msgs)
}
