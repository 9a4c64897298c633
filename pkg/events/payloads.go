package events

import (
	"time"

	"github.com/codeready-toolchain/cardsmith/ent"
	"github.com/codeready-toolchain/cardsmith/pkg/models"
)

// BasePayload carries the fields every event payload must include. The
// frontend routes incoming WS events by `type` and `cardId`, so any payload
// missing either is silently dropped client-side.
type BasePayload struct {
	Type      string `json:"type"`
	CardID    string `json:"cardId"`
	Timestamp string `json:"timestamp"` // RFC3339Nano
}

func newBasePayload(eventType, cardID string) BasePayload {
	return BasePayload{
		Type:      eventType,
		CardID:    cardID,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	}
}

// CardCreatedPayload is the payload for card_created events.
// Published when decomposition or fix-card spawning adds a card to the board.
type CardCreatedPayload struct {
	BasePayload
	Card *models.CardResponse `json:"card"`
}

// NewCardCreatedPayload builds a card_created payload from a card entity.
func NewCardCreatedPayload(c *ent.Card) CardCreatedPayload {
	return CardCreatedPayload{
		BasePayload: newBasePayload(EventTypeCardCreated, c.ID),
		Card:        models.NewCardResponse(c),
	}
}

// CardUpdatedPayload is the payload for card_updated events.
// Published when card fields change without a column move (spec path,
// workspace attachment, diff stats, test error context).
type CardUpdatedPayload struct {
	BasePayload
	Card *models.CardResponse `json:"card"`
}

// NewCardUpdatedPayload builds a card_updated payload from a card entity.
func NewCardUpdatedPayload(c *ent.Card) CardUpdatedPayload {
	return CardUpdatedPayload{
		BasePayload: newBasePayload(EventTypeCardUpdated, c.ID),
		Card:        models.NewCardResponse(c),
	}
}

// CardMovedPayload is the payload for card_moved events.
// Published for every column transition, including automatic ones
// (workflow stage advancement, done→completed auto-complete).
type CardMovedPayload struct {
	BasePayload
	Card       *models.CardResponse `json:"card"`
	FromColumn string               `json:"fromColumn"`
	ToColumn   string               `json:"toColumn"`
}

// NewCardMovedPayload builds a card_moved payload. The card entity already
// reflects the move; from and to name the transition edge.
func NewCardMovedPayload(c *ent.Card, from, to models.Column) CardMovedPayload {
	return CardMovedPayload{
		BasePayload: newBasePayload(EventTypeCardMoved, c.ID),
		Card:        models.NewCardResponse(c),
		FromColumn:  string(from),
		ToColumn:    string(to),
	}
}

// ExecutionLogPayload is the payload for execution_log_appended events.
// Published for every log row an agent execution appends — content is
// already masked by ExecutionService before it reaches the publisher.
type ExecutionLogPayload struct {
	BasePayload
	ExecutionID string `json:"executionId"`
	Sequence    int    `json:"sequence"`
	LogType     string `json:"logType"`
	Content     string `json:"content"`
}

// NewExecutionLogPayload builds an execution_log_appended payload from a
// persisted log row.
func NewExecutionLogPayload(cardID string, l *ent.ExecutionLog) ExecutionLogPayload {
	return ExecutionLogPayload{
		BasePayload: newBasePayload(EventTypeExecutionLogAppended, cardID),
		ExecutionID: l.ExecutionID,
		Sequence:    l.Sequence,
		LogType:     string(l.LogType),
		Content:     l.Content,
	}
}
