package events

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/cardsmith/ent"
)

// mockEventLister implements eventLister for testing the adapter.
type mockEventLister struct {
	events []*ent.Event
	err    error
}

func (m *mockEventLister) ListSince(_ context.Context, _ string, afterID, limit int) ([]*ent.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]*ent.Event, 0, len(m.events))
	for _, evt := range m.events {
		if evt.ID > afterID {
			out = append(out, evt)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func TestEventServiceAdapter_GetCatchupEvents(t *testing.T) {
	// Stored payloads are raw JSON text — the adapter must decode them
	// into maps so the manager can inject dbEventId.
	lister := &mockEventLister{
		events: []*ent.Event{
			{ID: 10, Payload: `{"type":"card_created","cardId":"card-1"}`},
			{ID: 20, Payload: `{"type":"card_moved","cardId":"card-1","fromColumn":"plan","toColumn":"implement"}`},
		},
	}

	adapter := NewEventServiceAdapter(lister)
	events, err := adapter.GetCatchupEvents(context.Background(), "cards", 0, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Verify ID mapping
	assert.Equal(t, 10, events[0].ID)
	assert.Equal(t, 20, events[1].ID)

	// Verify payload decoding
	assert.Equal(t, "card_created", events[0].Payload["type"])
	assert.Equal(t, "card-1", events[0].Payload["cardId"])
	assert.Equal(t, "card_moved", events[1].Payload["type"])
	assert.Equal(t, "implement", events[1].Payload["toColumn"])
}

func TestEventServiceAdapter_GetCatchupEvents_CursorAndLimit(t *testing.T) {
	lister := &mockEventLister{
		events: []*ent.Event{
			{ID: 1, Payload: `{"seq":1}`},
			{ID: 2, Payload: `{"seq":2}`},
			{ID: 3, Payload: `{"seq":3}`},
		},
	}

	adapter := NewEventServiceAdapter(lister)

	events, err := adapter.GetCatchupEvents(context.Background(), "cards", 1, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, 2, events[0].ID)
	assert.Equal(t, 3, events[1].ID)

	events, err = adapter.GetCatchupEvents(context.Background(), "cards", 0, 2)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, 1, events[0].ID)
	assert.Equal(t, 2, events[1].ID)
}

func TestEventServiceAdapter_GetCatchupEvents_SkipsMalformed(t *testing.T) {
	lister := &mockEventLister{
		events: []*ent.Event{
			{ID: 1, Payload: `{"type":"card_created"}`},
			{ID: 2, Payload: `{broken`},
			{ID: 3, Payload: `{"type":"card_updated"}`},
		},
	}

	adapter := NewEventServiceAdapter(lister)
	events, err := adapter.GetCatchupEvents(context.Background(), "cards", 0, 10)
	require.NoError(t, err)
	require.Len(t, events, 2, "malformed row is skipped, not fatal")
	assert.Equal(t, 1, events[0].ID)
	assert.Equal(t, 3, events[1].ID)
}

func TestEventServiceAdapter_GetCatchupEvents_Error(t *testing.T) {
	lister := &mockEventLister{
		err: fmt.Errorf("database connection lost"),
	}

	adapter := NewEventServiceAdapter(lister)
	events, err := adapter.GetCatchupEvents(context.Background(), "cards", 0, 10)
	assert.Error(t, err)
	assert.Nil(t, events)
	assert.Contains(t, err.Error(), "database connection lost")
}

func TestEventServiceAdapter_GetCatchupEvents_Empty(t *testing.T) {
	adapter := NewEventServiceAdapter(&mockEventLister{})
	events, err := adapter.GetCatchupEvents(context.Background(), "cards", 0, 10)
	require.NoError(t, err)
	assert.Empty(t, events)
}
