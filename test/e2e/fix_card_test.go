package e2e

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/cardsmith/ent/execution"
	"github.com/codeready-toolchain/cardsmith/pkg/agent"
	"github.com/codeready-toolchain/cardsmith/pkg/models"
)

// brokenTests fails every test stage with an assertion failure.
func brokenTests(req agent.Request) []agent.Event {
	if strings.HasPrefix(req.Prompt, string(models.CommandTest)) {
		return []agent.Event{
			agent.TextEvent{Content: "TEST FAILED: assertion error"},
			agent.ResultEvent{Result: "Test run finished"},
		}
	}
	return greenAgent(req)
}

// A failing test stage marks the execution as errored, spawns a fix-card
// in backlog, and re-running the stage reuses the same fix-card.
func TestFailingTestsSpawnOneFixCard(t *testing.T) {
	h := newHarness(t, harnessConfig{script: brokenTests})
	ctx := context.Background()

	c, err := h.cards.Create(ctx, models.CreateCardRequest{
		Title:       "Brittle feature",
		Description: "ships with red tests",
	})
	require.NoError(t, err)

	// Walk the card to the test stage through the API.
	rec := h.do("POST", "/api/execute-plan",
		fmt.Sprintf(`{"cardId": %q, "title": "Brittle feature"}`, c.ID))
	require.Equal(t, 200, rec.Code, rec.Body.String())
	rec = h.do("POST", "/api/execute-implement", fmt.Sprintf(`{"cardId": %q}`, c.ID))
	require.Equal(t, 200, rec.Code, rec.Body.String())

	rec = h.do("POST", "/api/execute-test", fmt.Sprintf(`{"cardId": %q}`, c.ID))
	require.Equal(t, 200, rec.Code, rec.Body.String())
	body := h.decode(rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Tests failed", body["error"])
	assert.Equal(t, true, body["fixCardCreated"])
	fixID, _ := body["fixCardId"].(string)
	require.NotEmpty(t, fixID)

	// The test execution is errored and the card holds the test column.
	latest, err := h.executions.LatestExecution(ctx, c.ID, models.CommandTest)
	require.NoError(t, err)
	assert.Equal(t, execution.StatusError, latest.Status)
	require.NotNil(t, latest.WorkflowError)
	assert.Equal(t, "Tests failed", *latest.WorkflowError)

	parent, err := h.cards.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.ColumnTest), parent.Column)

	// The fix-card starts in backlog, tied to its parent, carrying the
	// failing output.
	fix, err := h.cards.Get(ctx, fixID)
	require.NoError(t, err)
	assert.True(t, fix.IsFixCard)
	assert.Equal(t, string(models.ColumnBacklog), fix.Column)
	require.NotNil(t, fix.ParentCardID)
	assert.Equal(t, c.ID, *fix.ParentCardID)
	require.NotNil(t, fix.TestErrorContext)
	assert.Contains(t, *fix.TestErrorContext, "TEST FAILED: assertion error")

	// Re-running the stage fails again but never duplicates the fix-card.
	rec = h.do("POST", "/api/execute-test", fmt.Sprintf(`{"cardId": %q}`, c.ID))
	require.Equal(t, 200, rec.Code, rec.Body.String())
	body = h.decode(rec)
	assert.Equal(t, fixID, body["fixCardId"])

	cards, err := h.cards.List(ctx)
	require.NoError(t, err)
	fixCount := 0
	for _, cc := range cards {
		if cc.IsFixCard {
			fixCount++
		}
	}
	assert.Equal(t, 1, fixCount)
}
