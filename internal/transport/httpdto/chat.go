package httpdto

// CreateChatRequest is used for POST /chats
type CreateChatRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// SendChatMessageRequest is used for POST /chats/:chatId/messages
type SendChatMessageRequest struct {
	From    any `json:"from"`
	Message any `json:"message"`
}
