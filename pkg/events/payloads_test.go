package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/cardsmith/ent"
	"github.com/codeready-toolchain/cardsmith/ent/executionlog"
	"github.com/codeready-toolchain/cardsmith/pkg/models"
)

func testCard() *ent.Card {
	specPath := "specs/streaming-decoder.md"
	branch := "agent/abc12345-1700000000"
	return &ent.Card{
		ID:             "card-1",
		Title:          "Streaming decoder",
		Description:    "Implement the chunked decoder",
		Column:         string(models.ColumnPlan),
		SpecPath:       &specPath,
		ModelPlan:      "opus-4.5",
		ModelImplement: "opus-4.5",
		ModelTest:      "sonnet-4.5",
		ModelReview:    "opus-4.5",
		BranchName:     &branch,
		Dependencies:   []string{"card-0"},
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
}

func TestNewCardCreatedPayload(t *testing.T) {
	c := testCard()
	payload := NewCardCreatedPayload(c)

	assert.Equal(t, EventTypeCardCreated, payload.Type)
	assert.Equal(t, "card-1", payload.CardID)
	assert.NotEmpty(t, payload.Timestamp)
	require.NotNil(t, payload.Card)
	assert.Equal(t, "Streaming decoder", payload.Card.Title)
	assert.Equal(t, string(models.ColumnPlan), payload.Card.Column)

	// Timestamp must parse as RFC3339Nano — the frontend sorts on it.
	_, err := time.Parse(time.RFC3339Nano, payload.Timestamp)
	assert.NoError(t, err)
}

func TestNewCardUpdatedPayload(t *testing.T) {
	c := testCard()
	payload := NewCardUpdatedPayload(c)

	assert.Equal(t, EventTypeCardUpdated, payload.Type)
	assert.Equal(t, "card-1", payload.CardID)
	require.NotNil(t, payload.Card)
	require.NotNil(t, payload.Card.SpecPath)
	assert.Equal(t, "specs/streaming-decoder.md", *payload.Card.SpecPath)
	require.NotNil(t, payload.Card.BranchName)
	assert.Equal(t, "agent/abc12345-1700000000", *payload.Card.BranchName)
}

func TestNewCardMovedPayload(t *testing.T) {
	c := testCard()
	c.Column = string(models.ColumnImplement)
	payload := NewCardMovedPayload(c, models.ColumnPlan, models.ColumnImplement)

	assert.Equal(t, EventTypeCardMoved, payload.Type)
	assert.Equal(t, "card-1", payload.CardID)
	assert.Equal(t, "plan", payload.FromColumn)
	assert.Equal(t, "implement", payload.ToColumn)
	require.NotNil(t, payload.Card)
	assert.Equal(t, "implement", payload.Card.Column, "card object must already reflect the move")

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"fromColumn":"plan"`)
	assert.Contains(t, string(data), `"toColumn":"implement"`)
}

func TestNewExecutionLogPayload(t *testing.T) {
	logRow := &ent.ExecutionLog{
		ID:          7,
		ExecutionID: "exec-9",
		Sequence:    3,
		LogType:     executionlog.LogTypeTool,
		Content:     "bash: go test ./...",
	}

	payload := NewExecutionLogPayload("card-1", logRow)

	assert.Equal(t, EventTypeExecutionLogAppended, payload.Type)
	assert.Equal(t, "card-1", payload.CardID)
	assert.Equal(t, "exec-9", payload.ExecutionID)
	assert.Equal(t, 3, payload.Sequence)
	assert.Equal(t, "tool", payload.LogType)
	assert.Equal(t, "bash: go test ./...", payload.Content)

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"executionId":"exec-9"`)
	assert.Contains(t, string(data), `"logType":"tool"`)
	assert.Contains(t, string(data), `"sequence":3`)
}

func TestCardPayload_CamelCaseCardObject(t *testing.T) {
	// The embedded card object must serialize with the same camelCase keys
	// the REST API uses, so the frontend can reuse one card parser.
	c := testCard()
	data, err := json.Marshal(NewCardCreatedPayload(c))
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))

	card, ok := parsed["card"].(map[string]any)
	require.True(t, ok, "payload must carry a card object")
	assert.Equal(t, "card-1", card["id"])
	assert.Contains(t, card, "specPath")
	assert.Contains(t, card, "modelPlan")
	assert.Contains(t, card, "branchName")
	assert.Contains(t, card, "createdAt")
	assert.NotContains(t, card, "spec_path", "wire shape is camelCase, not snake_case")
}
