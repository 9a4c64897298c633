package e2e

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/cardsmith/pkg/models"
)

// An illegal board move is rejected over HTTP with the exact transition
// message, the card stays put, and nothing is logged as an execution.
func TestIllegalMoveRejectedOverHTTP(t *testing.T) {
	h := newHarness(t, harnessConfig{})
	ctx := context.Background()

	c, err := h.cards.Create(ctx, models.CreateCardRequest{Title: "Skipping ahead"})
	require.NoError(t, err)

	rec := h.do("PATCH", "/api/cards/"+c.ID+"/move", `{"columnId": "review"}`)
	require.Equal(t, 400, rec.Code)
	assert.JSONEq(t,
		`{"success": false, "error": "Invalid transition from 'backlog' to 'review'. Allowed: [plan, cancelled]"}`,
		rec.Body.String())

	// Card unchanged, no execution record appeared.
	got, err := h.cards.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.ColumnBacklog), got.Column)

	history, err := h.executions.History(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, history)

	count, err := h.client.ExecutionLog.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count, "a rejected move must not append logs")
}
