package domain

import (
	"bytes"
	"encoding/json"
	"time"
)

// RoomMessage is appended under messages/<roomId>. Client-supplied fields are
// stored with whatever JSON type the client sent.
type RoomMessage struct {
	UserID    any   `json:"userId,omitempty"`
	Username  any   `json:"username,omitempty"`
	Message   any   `json:"message,omitempty"`
	Timestamp int64 `json:"timestamp"`
}

// DirectMessage is appended under chats/<chatKey>/messages.
type DirectMessage struct {
	From      any   `json:"from,omitempty"`
	Message   any   `json:"message,omitempty"`
	Timestamp int64 `json:"timestamp"`
}

// MessageList is a message list exactly as stored: a JSON object keyed by push
// id, or null when nothing was ever appended. It is never decoded on the way
// out, so fields written by other clients survive.
type MessageList = json.RawMessage

// EmptyMessageList reports whether list holds no messages.
func EmptyMessageList(list MessageList) bool {
	switch string(bytes.TrimSpace(list)) {
	case "", "null", "{}":
		return true
	}
	return false
}

// NowMillis is the server clock in Unix milliseconds, used for every timestamp.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}
