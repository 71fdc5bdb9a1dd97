package httpdto

// CreateRoomRequest is used for POST /rooms
type CreateRoomRequest struct {
	Name      string   `json:"name"`
	CreatedBy string   `json:"createdBy"`
	Members   []string `json:"members"`
}

// SendRoomMessageRequest is used for POST /rooms/:roomId/messages. Fields
// take any JSON value.
type SendRoomMessageRequest struct {
	UserID   any `json:"userId"`
	Username any `json:"username"`
	Message  any `json:"message"`
}
