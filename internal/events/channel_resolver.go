package events

import (
	"fmt"
)

func RoomChannel(roomID string) string {
	return fmt.Sprintf("channel:room:%s", roomID)
}

func ChatChannel(chatKey string) string {
	return fmt.Sprintf("channel:chat:%s", chatKey)
}

// ResolveChannel returns the pub/sub channel an envelope is published on.
func ResolveChannel(env Envelope) (string, error) {
	switch env.EventType {
	case EventRoomMessage:
		return RoomChannel(env.AggregateID), nil
	case EventChatMessage:
		return ChatChannel(env.AggregateID), nil
	}
	return "", fmt.Errorf("no channel for event type %q", env.EventType)
}
