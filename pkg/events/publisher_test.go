package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/cardsmith/ent"
	"github.com/codeready-toolchain/cardsmith/pkg/models"
)

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(ExecutionLogPayload{
			BasePayload: BasePayload{
				Type:   EventTypeExecutionLogAppended,
				CardID: "card-123",
			},
			ExecutionID: "exec-1",
			Sequence:    1,
			LogType:     "text",
			Content:     "some content",
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeExecutionLogAppended)
		assert.Contains(t, result, "card-123")
	})

	t.Run("truncates oversized payload", func(t *testing.T) {
		payload, _ := json.Marshal(ExecutionLogPayload{
			BasePayload: BasePayload{
				Type:   EventTypeExecutionLogAppended,
				CardID: "card-123",
			},
			ExecutionID: "exec-1",
			Sequence:    1,
			LogType:     "result",
			Content:     strings.Repeat("a", 8000),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, "truncated")
		assert.Less(t, len(result), 8000)
	})

	t.Run("truncated payload preserves routing fields", func(t *testing.T) {
		card := &ent.Card{
			ID:          "card-789",
			Title:       "Oversize",
			Description: strings.Repeat("x", 8000),
			Column:      string(models.ColumnBacklog),
		}
		payload, _ := json.Marshal(NewCardCreatedPayload(card))

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)

		assert.Contains(t, result, EventTypeCardCreated)
		assert.Contains(t, result, "card-789")
		assert.Contains(t, result, `"truncated":true`)
		assert.NotContains(t, result, "xxxx")
	})

	t.Run("boundary: payload just under limit is not truncated", func(t *testing.T) {
		// Build a payload whose JSON is just under 7900 bytes.
		// Marshal an empty struct first to measure the overhead of the struct's
		// fixed fields (keys, quotes, separators). The 20-byte safety margin
		// accounts for JSON encoding variability: if new fields with non-zero
		// defaults are added to ExecutionLogPayload, the base overhead grows
		// and the margin prevents the test from flipping unexpectedly.
		base, _ := json.Marshal(ExecutionLogPayload{
			BasePayload: BasePayload{Type: "t"},
		})
		contentSize := 7900 - len(base) - 20
		payload, _ := json.Marshal(ExecutionLogPayload{
			BasePayload: BasePayload{Type: "t"},
			Content:     strings.Repeat("b", contentSize),
		})
		require.LessOrEqual(t, len(payload), 7900, "test payload should be under limit")

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("empty JSON object", func(t *testing.T) {
		result, err := truncateIfNeeded("{}")
		require.NoError(t, err)
		assert.Equal(t, "{}", result)
	})
}

func TestInjectDBEventIDAndTruncate(t *testing.T) {
	t.Run("injects dbEventId into normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(ExecutionLogPayload{
			BasePayload: BasePayload{
				Type:   EventTypeExecutionLogAppended,
				CardID: "card-1",
			},
			ExecutionID: "exec-1",
			Sequence:    1,
			LogType:     "text",
			Content:     "hello",
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"dbEventId":42`)
		assert.Contains(t, result, "exec-1")
	})

	t.Run("truncated payload preserves dbEventId", func(t *testing.T) {
		payload, _ := json.Marshal(ExecutionLogPayload{
			BasePayload: BasePayload{
				Type:   EventTypeExecutionLogAppended,
				CardID: "card-789",
			},
			ExecutionID: "exec-456",
			Sequence:    9,
			LogType:     "result",
			Content:     strings.Repeat("x", 8000),
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, `"dbEventId":42`)
		assert.Contains(t, result, "card-789")
		assert.NotContains(t, result, "exec-456", "envelope keeps routing fields only")
	})

	t.Run("rejects non-JSON payload", func(t *testing.T) {
		_, err := injectDBEventIDAndTruncate([]byte("not json"), 1)
		assert.Error(t, err)
	})
}

func TestNewEventPublisher(t *testing.T) {
	publisher := NewEventPublisher(nil)
	assert.NotNil(t, publisher)
	assert.Nil(t, publisher.db)
}
