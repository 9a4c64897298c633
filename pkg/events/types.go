// Package events provides real-time event delivery via WebSocket and
// PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// ════════════════════════════════════════════════════════════════
// Channel Model
// ════════════════════════════════════════════════════════════════
//
// Two kinds of channels exist:
//
//	cards                — board-level card lifecycle events. Every
//	                       client showing the board subscribes here.
//	execution:{card_id}  — the live log stream of one card's agent
//	                       executions. Clients open this when a card's
//	                       detail view is visible.
//
// All event types are persistent: EventPublisher writes the payload to
// the events table and fires pg_notify in the same transaction, so the
// NOTIFY is only ever observed for committed rows. The row id doubles
// as the catch-up cursor — it is injected into the NOTIFY payload as
// dbEventId, and clients echo the highest id they have seen back as
// lastEventId when (re)subscribing.
//
// Delivery contract:
//
//	subscribe            → subscription.confirmed, then a replay of
//	                       stored events after lastEventId (0 = all),
//	                       then live events in committed order.
//	catchup.overflow     → more events were missed than one catch-up
//	                       page holds; the client must do a full REST
//	                       reload instead of paginating.
//	{..., truncated:true}→ the NOTIFY payload exceeded PostgreSQL's
//	                       8000-byte limit; only routing fields were
//	                       delivered. The full payload is in the DB and
//	                       arrives intact via catch-up or REST.
//
// Events are retained for EVENT_TTL_MINUTES and then deleted by the
// cleanup service, so catch-up only replays the recent window.
//
// ════════════════════════════════════════════════════════════════
package events

// Persistent event types (stored in DB + NOTIFY).
const (
	// Board lifecycle — published on CardsChannel.
	EventTypeCardCreated = "card_created"
	EventTypeCardUpdated = "card_updated"
	EventTypeCardMoved   = "card_moved"

	// Execution log stream — published on ExecutionChannel(cardID).
	EventTypeExecutionLogAppended = "execution_log_appended"
)

// CardsChannel is the channel for board-level card events.
// The board page subscribes to this for real-time updates.
const CardsChannel = "cards"

// ExecutionChannel returns the channel name for a card's execution log stream.
// Format: "execution:{card_id}"
func ExecutionChannel(cardID string) string {
	return "execution:" + cardID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`     // Channel name (e.g., "cards", "execution:abc-123")
	LastEventID *int   `json:"lastEventId,omitempty"` // Catch-up cursor; replay starts after this id
}
