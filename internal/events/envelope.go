package events

import (
	"encoding/json"
	"time"
)

type Envelope struct {
	EventType   EventType       `json:"event_type"`
	AggregateID string          `json:"aggregate_id"`
	MessageID   string          `json:"message_id"`
	OccurredAt  time.Time       `json:"occurred_at"`
	Payload     json.RawMessage `json:"payload"`
}

// NewEnvelope wraps a stored message. aggregateID is the room id or chat key
// the message was appended to.
func NewEnvelope(eventType EventType, aggregateID, messageID string, message any) (Envelope, error) {
	payload, err := json.Marshal(message)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{
		EventType:   eventType,
		AggregateID: aggregateID,
		MessageID:   messageID,
		OccurredAt:  time.Now().UTC(),
		Payload:     payload,
	}, nil
}

// Frame is what stream clients receive: the stored message fields plus its
// push id under "id".
func (e Envelope) Frame() ([]byte, error) {
	fields := map[string]any{}
	if len(e.Payload) > 0 {
		if err := json.Unmarshal(e.Payload, &fields); err != nil {
			return nil, err
		}
	}
	fields["id"] = e.MessageID
	return json.Marshal(fields)
}
