package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// EventPublisher publishes events for WebSocket delivery.
// Every event is stored in the events table then broadcast via NOTIFY in the
// same transaction, so subscribers only ever observe committed rows and the
// row id is a reliable catch-up cursor.
//
// Each public method accepts a specific typed payload struct — see payloads.go.
// Internally, payloads are marshaled to JSON and routed to the channel derived
// from the card id via persistAndNotify.
type EventPublisher struct {
	db *sql.DB
}

// NewEventPublisher creates a new EventPublisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewEventPublisher(db *sql.DB) *EventPublisher {
	return &EventPublisher{db: db}
}

// --- Typed public methods ---

// PublishCardCreated persists and broadcasts a card_created event on the
// board channel.
func (p *EventPublisher) PublishCardCreated(ctx context.Context, payload CardCreatedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal CardCreatedPayload: %w", err)
	}
	return p.persistAndNotify(ctx, payload.CardID, CardsChannel, payloadJSON)
}

// PublishCardUpdated persists and broadcasts a card_updated event on the
// board channel.
func (p *EventPublisher) PublishCardUpdated(ctx context.Context, payload CardUpdatedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal CardUpdatedPayload: %w", err)
	}
	return p.persistAndNotify(ctx, payload.CardID, CardsChannel, payloadJSON)
}

// PublishCardMoved persists and broadcasts a card_moved event on the
// board channel.
func (p *EventPublisher) PublishCardMoved(ctx context.Context, payload CardMovedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal CardMovedPayload: %w", err)
	}
	return p.persistAndNotify(ctx, payload.CardID, CardsChannel, payloadJSON)
}

// PublishExecutionLog persists and broadcasts an execution_log_appended event
// on the card's execution channel.
func (p *EventPublisher) PublishExecutionLog(ctx context.Context, payload ExecutionLogPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal ExecutionLogPayload: %w", err)
	}
	return p.persistAndNotify(ctx, payload.CardID, ExecutionChannel(payload.CardID), payloadJSON)
}

// --- Internal core methods ---

// persistAndNotify persists a pre-marshaled event to the database and broadcasts
// via NOTIFY in a single transaction (pg_notify is transactional — held until COMMIT).
func (p *EventPublisher) persistAndNotify(ctx context.Context, cardID, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// card_id is nullable — keep NULL rather than an empty string so the
	// column index stays useful.
	var cardRef any
	if cardID != "" {
		cardRef = cardID
	}

	// 1. Persist to events table (within transaction)
	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (card_id, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		cardRef, channel, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	// Build NOTIFY payload with dbEventId for catchup tracking.
	notifyPayload, err := injectDBEventIDAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}

	// 2. pg_notify within same transaction — held until COMMIT
	_, err = tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	// 3. Commit — INSERT is persisted and NOTIFY fires atomically
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}

	return nil
}

// --- Internal helpers ---

// injectDBEventIDAndTruncate adds dbEventId to the JSON payload for NOTIFY
// delivery and applies truncation if the result exceeds PostgreSQL's limit.
func injectDBEventIDAndTruncate(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for dbEventId injection: %w", err)
	}
	m["dbEventId"] = dbEventID

	enrichedBytes, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}

	return truncateIfNeeded(string(enrichedBytes))
}

// truncateIfNeeded returns the payload string as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise returns a minimal
// truncation envelope with only routing fields.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload creates a minimal truncation envelope from the full
// JSON payload bytes, extracting only the routing fields the client needs
// to fetch the complete event from the database.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type      string `json:"type"`
		CardID    string `json:"cardId"`
		DBEventID *int64 `json:"dbEventId,omitempty"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":      routing.Type,
		"cardId":    routing.CardID,
		"truncated": true,
	}
	if routing.DBEventID != nil {
		truncated["dbEventId"] = *routing.DBEventID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
