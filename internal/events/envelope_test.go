package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelope_Frame(t *testing.T) {
	env, err := NewEnvelope(EventRoomMessage, "room1", "msg1", map[string]any{
		"userId":    "u1",
		"message":   "hi",
		"timestamp": 42,
	})
	require.NoError(t, err)

	frame, err := env.Frame()
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(frame, &got))
	assert.Equal(t, map[string]any{
		"id":        "msg1",
		"userId":    "u1",
		"message":   "hi",
		"timestamp": float64(42),
	}, got)
}

func TestEnvelope_FrameWithoutPayload(t *testing.T) {
	frame, err := Envelope{MessageID: "m"}.Frame()
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"m"}`, string(frame))
}

func TestResolveChannel(t *testing.T) {
	tests := []struct {
		name    string
		env     Envelope
		want    string
		wantErr bool
	}{
		{name: "room", env: Envelope{EventType: EventRoomMessage, AggregateID: "r1"}, want: "channel:room:r1"},
		{name: "chat", env: Envelope{EventType: EventChatMessage, AggregateID: "a-b"}, want: "channel:chat:a-b"},
		{name: "unknown", env: Envelope{EventType: "other"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveChannel(tt.env)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
