package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutionChannel(t *testing.T) {
	tests := []struct {
		name   string
		cardID string
		want   string
	}{
		{
			name:   "formats execution channel correctly",
			cardID: "abc-123",
			want:   "execution:abc-123",
		},
		{
			name:   "handles UUID format",
			cardID: "550e8400-e29b-41d4-a716-446655440000",
			want:   "execution:550e8400-e29b-41d4-a716-446655440000",
		},
		{
			name:   "handles empty string",
			cardID: "",
			want:   "execution:",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExecutionChannel(tt.cardID)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCardsChannel(t *testing.T) {
	assert.Equal(t, "cards", CardsChannel)
}

func TestEventTypeConstants(t *testing.T) {
	// Verify event types are non-empty and distinct
	types := []string{
		EventTypeCardCreated,
		EventTypeCardUpdated,
		EventTypeCardMoved,
		EventTypeExecutionLogAppended,
	}

	seen := make(map[string]bool)
	for _, typ := range types {
		assert.NotEmpty(t, typ, "event type should not be empty")
		assert.False(t, seen[typ], "duplicate event type: %s", typ)
		seen[typ] = true
	}
}

func TestClientMessage_WireFormat(t *testing.T) {
	// The frontend sends camelCase keys; lastEventId must round-trip.
	raw := `{"action":"subscribe","channel":"cards","lastEventId":42}`

	var msg ClientMessage
	require.NoError(t, json.Unmarshal([]byte(raw), &msg))

	assert.Equal(t, "subscribe", msg.Action)
	assert.Equal(t, "cards", msg.Channel)
	require.NotNil(t, msg.LastEventID)
	assert.Equal(t, 42, *msg.LastEventID)

	// Absent cursor stays nil so the server can distinguish "from zero"
	// from "not provided".
	var bare ClientMessage
	require.NoError(t, json.Unmarshal([]byte(`{"action":"ping"}`), &bare))
	assert.Nil(t, bare.LastEventID)
}
