package services

import (
	"context"
	"fmt"
	"time"

	"github.com/codeready-toolchain/cardsmith/ent"
	"github.com/codeready-toolchain/cardsmith/ent/event"
)

// EventService reads the persisted event log for WebSocket catch-up
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// ListSince retrieves events on a channel after the given id, oldest first.
// Used for catch-up when a client reconnects with a lastEventId.
func (s *EventService) ListSince(ctx context.Context, channel string, afterID int, limit int) ([]*ent.Event, error) {
	if limit <= 0 || limit > 200 {
		limit = 200
	}

	events, err := s.client.Event.Query().
		Where(
			event.ChannelEQ(channel),
			event.IDGT(afterID),
		).
		Order(ent.Asc(event.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	return events, nil
}

// DeleteOlderThan removes events created before the cutoff
func (s *EventService) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup events: %w", err)
	}

	return count, nil
}
