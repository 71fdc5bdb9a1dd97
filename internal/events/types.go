package events

import "context"

type EventType string

const (
	EventRoomMessage EventType = "room.message"
	EventChatMessage EventType = "chat.message"
)

// Bus fans appended messages out to live subscribers. Delivery is best effort:
// a subscriber only sees what is published while it is subscribed.
type Bus interface {
	Publish(ctx context.Context, env Envelope) error
	// Subscribe returns a channel of envelopes published on channel. The
	// returned channel is closed once ctx is done.
	Subscribe(ctx context.Context, channel string) (<-chan Envelope, error)
}
