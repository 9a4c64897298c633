package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/cardsmith/ent"
	"github.com/codeready-toolchain/cardsmith/pkg/agent"
	"github.com/codeready-toolchain/cardsmith/pkg/config"
	"github.com/codeready-toolchain/cardsmith/pkg/models"
	"github.com/codeready-toolchain/cardsmith/pkg/services"
	"github.com/codeready-toolchain/cardsmith/pkg/workflow"
	"github.com/codeready-toolchain/cardsmith/pkg/worktree"
	testdb "github.com/codeready-toolchain/cardsmith/test/database"
)

// apiAdapter replays canned events per stage command.
type apiAdapter struct {
	mu     sync.Mutex
	script func(req agent.Request) []agent.Event
}

func (a *apiAdapter) Run(ctx context.Context, req agent.Request) (<-chan agent.Event, error) {
	a.mu.Lock()
	script := a.script
	a.mu.Unlock()

	ch := make(chan agent.Event, 16)
	go func() {
		defer close(ch)
		for _, ev := range script(req) {
			ch <- ev
		}
	}()
	return ch, nil
}

func allGreen(req agent.Request) []agent.Event {
	u := models.Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15, CostUSD: 0.001}
	if strings.HasPrefix(req.Prompt, string(models.CommandPlan)) {
		return []agent.Event{
			agent.TextEvent{Content: "Planning"},
			agent.ResultEvent{Result: "Spec written to specs/api-test.md", Usage: u},
		}
	}
	return []agent.Event{
		agent.TextEvent{Content: "working"},
		agent.ResultEvent{Result: "All good", Usage: u},
	}
}

func failingTests(req agent.Request) []agent.Event {
	if strings.HasPrefix(req.Prompt, string(models.CommandTest)) {
		return []agent.Event{
			agent.TextEvent{Content: "--- FAIL: TestWidget (0.01s)"},
			agent.ResultEvent{Result: "Tests ran"},
		}
	}
	return allGreen(req)
}

type serverFixture struct {
	server *Server
	cards  *services.CardService
	goals  *services.GoalService
}

func newServerFixture(t *testing.T, script func(agent.Request) []agent.Event) *serverFixture {
	t.Helper()
	client := testdb.NewTestClient(t)

	cards := services.NewCardService(client.Client)
	goals := services.NewGoalService(client.Client)
	executions := services.NewExecutionService(client.Client, nil)
	worktrees := worktree.NewManager(&config.WorktreeConfig{RepoPath: t.TempDir(), MaxConcurrent: 3})

	engine := workflow.NewEngine(workflow.EngineDeps{
		Cards:      cards,
		Goals:      goals,
		Executions: executions,
		Adapter:    &apiAdapter{script: script},
		Worktrees:  worktrees,
	})
	runner := workflow.NewRunner(engine, 2)
	t.Cleanup(runner.Stop)

	server := NewServer(ServerDeps{
		Config:     &config.Config{Orchestrator: config.DefaultOrchestratorConfig(), Server: config.DefaultServerConfig()},
		DB:         client,
		Cards:      cards,
		Goals:      goals,
		Executions: executions,
		Engine:     engine,
		Runner:     runner,
		Worktrees:  worktrees,
	})
	return &serverFixture{server: server, cards: cards, goals: goals}
}

func (f *serverFixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.server.echo.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func (f *serverFixture) newCard(t *testing.T, title string) *ent.Card {
	t.Helper()
	c, err := f.cards.Create(context.Background(), models.CreateCardRequest{
		Title:       title,
		Description: "api test card",
	})
	require.NoError(t, err)
	return c
}

func TestServerCardEndpoints(t *testing.T) {
	f := newServerFixture(t, allGreen)
	a := f.newCard(t, "First card")
	f.newCard(t, "Second card")

	t.Run("list", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/cards", "")
		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.EqualValues(t, 2, body["totalCount"])
	})

	t.Run("get", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/cards/"+a.ID, "")
		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "First card", body["title"])
		assert.Equal(t, "backlog", body["column"])
	})

	t.Run("get unknown card", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/cards/no-such-card", "")
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"success": false, "error": "resource not found"}`, rec.Body.String())
	})
}

func TestServerMoveCard(t *testing.T) {
	f := newServerFixture(t, allGreen)
	c := f.newCard(t, "Movable")

	t.Run("legal move", func(t *testing.T) {
		rec := f.do(t, http.MethodPatch, "/api/cards/"+c.ID+"/move", `{"columnId": "plan"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "plan", body["column"])
	})

	t.Run("illegal move returns the exact transition message", func(t *testing.T) {
		rec := f.do(t, http.MethodPatch, "/api/cards/"+c.ID+"/move", `{"columnId": "done"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Invalid transition from 'plan' to 'done'. Allowed: [implement, cancelled]", body["error"])

		// Card unchanged.
		card, err := f.cards.Get(context.Background(), c.ID)
		require.NoError(t, err)
		assert.Equal(t, "plan", card.Column)
	})

	t.Run("unknown card", func(t *testing.T) {
		rec := f.do(t, http.MethodPatch, "/api/cards/ghost/move", `{"columnId": "plan"}`)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServerExecutePlan(t *testing.T) {
	f := newServerFixture(t, allGreen)
	c := f.newCard(t, "Needs a plan")

	rec := f.do(t, http.MethodPost, "/api/execute-plan",
		fmt.Sprintf(`{"cardId": %q, "title": "Needs a plan"}`, c.ID))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, c.ID, body["cardId"])
	assert.Equal(t, "specs/api-test.md", body["specPath"])
	logs, ok := body["logs"].([]any)
	require.True(t, ok)
	assert.NotEmpty(t, logs)

	card, err := f.cards.Get(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, "plan", card.Column)
	require.NotNil(t, card.SpecPath)
	assert.Equal(t, "specs/api-test.md", *card.SpecPath)
}

func TestServerExecuteImplementRequiresSpec(t *testing.T) {
	f := newServerFixture(t, allGreen)
	c := f.newCard(t, "No spec yet")

	rec := f.do(t, http.MethodPost, "/api/execute-implement",
		fmt.Sprintf(`{"cardId": %q}`, c.ID))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Contains(t, body["error"], "specPath is required")
}

func TestServerExecuteTestSpawnsFixCard(t *testing.T) {
	f := newServerFixture(t, failingTests)
	c := f.newCard(t, "Flaky feature")

	// Drive the card to the test stage through the API.
	rec := f.do(t, http.MethodPost, "/api/execute-plan",
		fmt.Sprintf(`{"cardId": %q, "title": "Flaky feature"}`, c.ID))
	require.Equal(t, http.StatusOK, rec.Code)
	rec = f.do(t, http.MethodPost, "/api/execute-implement",
		fmt.Sprintf(`{"cardId": %q}`, c.ID))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/execute-test",
		fmt.Sprintf(`{"cardId": %q}`, c.ID))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Tests failed", body["error"])
	assert.Equal(t, true, body["fixCardCreated"])
	fixID, _ := body["fixCardId"].(string)
	require.NotEmpty(t, fixID)

	fix, err := f.cards.Get(context.Background(), fixID)
	require.NoError(t, err)
	assert.True(t, fix.IsFixCard)
	require.NotNil(t, fix.ParentCardID)
	assert.Equal(t, c.ID, *fix.ParentCardID)
}

func TestServerLogsEndpoints(t *testing.T) {
	f := newServerFixture(t, allGreen)
	c := f.newCard(t, "Logged card")

	rec := f.do(t, http.MethodPost, "/api/execute-plan",
		fmt.Sprintf(`{"cardId": %q, "title": "Logged card"}`, c.ID))
	require.Equal(t, http.StatusOK, rec.Code)

	t.Run("latest execution with logs", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/logs/"+c.ID, "")
		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, c.ID, body["cardId"])
		logs, ok := body["logs"].([]any)
		require.True(t, ok)
		assert.NotEmpty(t, logs)
	})

	t.Run("history", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/logs/"+c.ID+"/history", "")
		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		execs, ok := body["executions"].([]any)
		require.True(t, ok)
		assert.Len(t, execs, 1)
	})

	t.Run("unknown card", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/logs/ghost", "")
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServerGoalEndpoints(t *testing.T) {
	f := newServerFixture(t, allGreen)
	ctx := context.Background()

	t.Run("create", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/goals", `{"description": "Ship the onboarding flow"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, true, body["success"])
		goal, ok := body["goal"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "pending", goal["status"])
	})

	t.Run("create without description", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/goals", `{}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"success": false, "error": "description is required"}`, rec.Body.String())
	})

	t.Run("detail includes goal cards", func(t *testing.T) {
		g, err := f.goals.Create(ctx, models.CreateGoalRequest{Description: "Goal with cards"})
		require.NoError(t, err)
		card, err := f.cards.Create(ctx, models.CreateCardRequest{Title: "Belongs to goal", GoalID: g.ID})
		require.NoError(t, err)
		require.NoError(t, f.goals.AddCard(ctx, g.ID, card.ID))

		rec := f.do(t, http.MethodGet, "/api/goals/"+g.ID, "")
		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		cards, ok := body["cards"].([]any)
		require.True(t, ok)
		require.Len(t, cards, 1)
	})

	t.Run("list", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/goals", "")
		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.EqualValues(t, 2, body["totalCount"])
	})

	t.Run("unknown goal", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/goals/ghost", "")
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServerOrchestratorStatus(t *testing.T) {
	f := newServerFixture(t, allGreen)

	rec := f.do(t, http.MethodGet, "/api/orchestrator/status", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["enabled"])
	assert.Equal(t, false, body["running"])
	wt, ok := body["worktrees"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 3, wt["max"])
}

func TestServerHealth(t *testing.T) {
	f := newServerFixture(t, allGreen)

	rec := f.do(t, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "healthy", body["status"])
	checks, ok := body["checks"].(map[string]any)
	require.True(t, ok)
	db, ok := checks["database"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "healthy", db["status"])
}
