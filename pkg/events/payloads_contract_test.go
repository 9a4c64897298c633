package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/cardsmith/ent"
	"github.com/codeready-toolchain/cardsmith/ent/executionlog"
	"github.com/codeready-toolchain/cardsmith/pkg/models"
)

// TestEventPayloads_ContainRoutingFields is a contract test between the
// Go backend and the frontend WebSocket client.
//
// The frontend routes incoming WS events by inspecting `type` and `cardId`
// in the JSON payload. ANY payload broadcast on the board channel or an
// execution channel MUST include both fields non-empty — otherwise the
// frontend silently drops it. The truncation envelope preserves exactly
// these fields for the same reason.
//
// All payload structs embed BasePayload which guarantees both are present.
// This test guards against:
//   - A new payload struct that forgets to embed BasePayload
//   - A constructor that forgets to populate BasePayload
func TestEventPayloads_ContainRoutingFields(t *testing.T) {
	card := &ent.Card{
		ID:     "card-contract-test",
		Title:  "Contract",
		Column: string(models.ColumnBacklog),
	}
	logRow := &ent.ExecutionLog{
		ExecutionID: "exec-1",
		Sequence:    1,
		LogType:     executionlog.LogTypeText,
		Content:     "hello",
	}

	// Every payload type that flows through CardsChannel or
	// ExecutionChannel(cardID). If you add a new payload, add it here —
	// the test will fail if type or cardId is missing.
	tests := []struct {
		name     string
		payload  any
		wantType string
	}{
		{
			name:     "CardCreatedPayload",
			payload:  NewCardCreatedPayload(card),
			wantType: EventTypeCardCreated,
		},
		{
			name:     "CardUpdatedPayload",
			payload:  NewCardUpdatedPayload(card),
			wantType: EventTypeCardUpdated,
		},
		{
			name:     "CardMovedPayload",
			payload:  NewCardMovedPayload(card, models.ColumnBacklog, models.ColumnPlan),
			wantType: EventTypeCardMoved,
		},
		{
			name:     "ExecutionLogPayload",
			payload:  NewExecutionLogPayload(card.ID, logRow),
			wantType: EventTypeExecutionLogAppended,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.payload)
			require.NoError(t, err, "failed to marshal %s", tt.name)

			var parsed map[string]any
			require.NoError(t, json.Unmarshal(data, &parsed), "failed to unmarshal %s", tt.name)

			typ, ok := parsed["type"]
			assert.True(t, ok, "%s JSON is missing \"type\" — frontend WS routing will silently drop this event", tt.name)
			assert.Equal(t, tt.wantType, typ)

			cid, ok := parsed["cardId"]
			assert.True(t, ok, "%s JSON is missing \"cardId\" — frontend WS routing will silently drop this event", tt.name)
			assert.Equal(t, "card-contract-test", cid, "%s cardId has wrong value", tt.name)

			ts, ok := parsed["timestamp"]
			assert.True(t, ok, "%s JSON is missing \"timestamp\"", tt.name)
			assert.NotEmpty(t, ts)
		})
	}
}
