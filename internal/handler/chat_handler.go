package handler

import (
	"net/http"

	"quickchat/internal/services"
	"quickchat/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	service *services.ChatService
}

func NewChatHandler(service *services.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

// Create handles POST /chats
func (h *ChatHandler) Create(c *gin.Context) {
	var req httpdto.CreateChatRequest
	if !bindJSON(c, &req) {
		return
	}

	_, err := h.service.CreateChat(c.Request.Context(), services.CreateChatInput{
		From: req.From,
		To:   req.To,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.String(http.StatusOK, httpdto.MsgChatCreated)
}

// SendMessage handles POST /chats/:chatId/messages
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req httpdto.SendChatMessageRequest
	if !bindJSON(c, &req) {
		return
	}

	_, err := h.service.SendMessage(c.Request.Context(), c.Param("chatId"), services.ChatMessageInput{
		From:    req.From,
		Message: req.Message,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.String(http.StatusOK, httpdto.MsgMessageSent)
}

// Messages handles GET /chats/:chatId/messages
func (h *ChatHandler) Messages(c *gin.Context) {
	msgs, err := h.service.Messages(c.Request.Context(), c.Param("chatId"))
	if err != nil {
		writeError(c, err)
		return
	}
	writeMessageList(c, msgs)
}
