package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	testdb "github.com/codeready-toolchain/cardsmith/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventService_ListSince(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventService(client.Client)
	ctx := context.Background()

	newEvent := func(t *testing.T, channel, payload string) int {
		t.Helper()
		evt, err := client.Event.Create().
			SetChannel(channel).
			SetPayload(payload).
			Save(ctx)
		require.NoError(t, err)
		return evt.ID
	}

	firstID := newEvent(t, "cards", `{"type":"card_created"}`)
	newEvent(t, "execution:card-1", `{"type":"execution_log_appended"}`)
	secondID := newEvent(t, "cards", `{"type":"card_moved"}`)

	t.Run("filters by channel and cursor", func(t *testing.T) {
		events, err := service.ListSince(ctx, "cards", 0, 100)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, firstID, events[0].ID)
		assert.Equal(t, secondID, events[1].ID)

		// Cursor excludes everything at or before it
		events, err = service.ListSince(ctx, "cards", firstID, 100)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, secondID, events[0].ID)
	})

	t.Run("other channels are invisible", func(t *testing.T) {
		events, err := service.ListSince(ctx, "execution:card-1", 0, 100)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Contains(t, events[0].Payload, "execution_log_appended")
	})

	t.Run("limit is clamped to 200", func(t *testing.T) {
		for i := 0; i < 210; i++ {
			newEvent(t, "bulk", fmt.Sprintf(`{"n":%d}`, i))
		}

		events, err := service.ListSince(ctx, "bulk", 0, 0)
		require.NoError(t, err)
		assert.Len(t, events, 200)

		events, err = service.ListSince(ctx, "bulk", 0, 1000)
		require.NoError(t, err)
		assert.Len(t, events, 200)

		events, err = service.ListSince(ctx, "bulk", 0, 5)
		require.NoError(t, err)
		assert.Len(t, events, 5)
	})
}

func TestEventService_DeleteOlderThan(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventService(client.Client)
	ctx := context.Background()

	old, err := client.Event.Create().
		SetChannel("cards").
		SetPayload(`{"type":"card_created"}`).
		SetCreatedAt(time.Now().Add(-48 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	fresh, err := client.Event.Create().
		SetChannel("cards").
		SetPayload(`{"type":"card_moved"}`).
		Save(ctx)
	require.NoError(t, err)

	deleted, err := service.DeleteOlderThan(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	remaining, err := service.ListSince(ctx, "cards", 0, 100)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, fresh.ID, remaining[0].ID)
	assert.NotEqual(t, old.ID, remaining[0].ID)
}
