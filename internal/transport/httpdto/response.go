package httpdto

// Plain-text response bodies for successful requests. Failures respond with
// the error text.
const (
	MsgUserRegistered      = "User registered successfully"
	MsgLoggedIn            = "User logged in successfully"
	MsgLoggedInWithGoogle  = "User logged in successfully with Google"
	MsgRoomCreated         = "Room created successfully"
	MsgChatCreated         = "Chat created successfully"
	MsgMessageSent         = "Message sent successfully"
	MsgInvalidRequestBody  = "Invalid request body"
	MsgLiveUpdatesDisabled = "Live updates are not enabled"
)
