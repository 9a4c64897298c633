package events

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/codeready-toolchain/cardsmith/ent"
)

// eventLister is the slice of services.EventService the adapter needs.
type eventLister interface {
	ListSince(ctx context.Context, channel string, afterID, limit int) ([]*ent.Event, error)
}

// EventServiceAdapter wraps services.EventService to implement CatchupQuerier.
type EventServiceAdapter struct {
	events eventLister
}

// NewEventServiceAdapter creates a CatchupQuerier from an EventService.
func NewEventServiceAdapter(es eventLister) *EventServiceAdapter {
	return &EventServiceAdapter{events: es}
}

// GetCatchupEvents queries events since sinceID up to limit for the catchup
// mechanism. The events table stores payloads as raw JSON text (exactly what
// was published), so each row is decoded here before the manager injects the
// dbEventId cursor. Rows with malformed payloads are skipped rather than
// failing the whole catch-up.
func (a *EventServiceAdapter) GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]CatchupEvent, error) {
	rows, err := a.events.ListSince(ctx, channel, sinceID, limit)
	if err != nil {
		return nil, err
	}

	result := make([]CatchupEvent, 0, len(rows))
	for _, evt := range rows {
		var payload map[string]interface{}
		if err := json.Unmarshal([]byte(evt.Payload), &payload); err != nil {
			slog.Warn("Skipping catch-up event with malformed payload",
				"event_id", evt.ID, "channel", channel, "error", err)
			continue
		}
		result = append(result, CatchupEvent{
			ID:      evt.ID,
			Payload: payload,
		})
	}
	return result, nil
}
