// Package e2e exercises the full system: HTTP API, orchestrator loop,
// workflow engine, and postgres-backed services wired together the same
// way main does, with a scripted agent standing in for the real models.
package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/cardsmith/ent"
	"github.com/codeready-toolchain/cardsmith/pkg/agent"
	"github.com/codeready-toolchain/cardsmith/pkg/api"
	"github.com/codeready-toolchain/cardsmith/pkg/config"
	"github.com/codeready-toolchain/cardsmith/pkg/models"
	"github.com/codeready-toolchain/cardsmith/pkg/orchestrator"
	"github.com/codeready-toolchain/cardsmith/pkg/services"
	"github.com/codeready-toolchain/cardsmith/pkg/usage"
	"github.com/codeready-toolchain/cardsmith/pkg/vector"
	"github.com/codeready-toolchain/cardsmith/pkg/workflow"
	"github.com/codeready-toolchain/cardsmith/pkg/worktree"
	testdb "github.com/codeready-toolchain/cardsmith/test/database"
)

// scriptedAdapter replays a per-request event script.
type scriptedAdapter struct {
	mu     sync.Mutex
	script func(req agent.Request) []agent.Event
}

func (a *scriptedAdapter) Run(ctx context.Context, req agent.Request) (<-chan agent.Event, error) {
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

// greenAgent passes every stage. Planning runs produce a spec file
// reference so the implement stage has something to work from.
func greenAgent(req agent.Request) []agent.Event {
	u := models.Usage{InputTokens: 20, OutputTokens: 10, TotalTokens: 30, CostUSD: 0.002}
	if strings.HasPrefix(req.Prompt, string(models.CommandPlan)) {
		return []agent.Event{
			agent.ToolUseEvent{Name: agent.ToolWriteFile, Input: map[string]interface{}{"path": "specs/feature.md"}},
			agent.ResultEvent{Result: "Specification written to specs/feature.md", Usage: u},
		}
	}
	return []agent.Event{
		agent.TextEvent{Content: "working"},
		agent.ResultEvent{Result: "Stage completed", Usage: u},
	}
}

// stubDecomposer replays a canned goal breakdown.
type stubDecomposer struct {
	cards []orchestrator.DecomposedCard
	err   error
	calls int
}

func (d *stubDecomposer) Decompose(ctx context.Context, goalDescription string, maxCards int) ([]orchestrator.DecomposedCard, error) {
	d.calls++
	return d.cards, d.err
}

// memoryLearningStore keeps learnings in memory, counting occurrences.
type memoryLearningStore struct {
	mu     sync.Mutex
	stored []string
}

func (s *memoryLearningStore) StoreLearning(ctx context.Context, goalDescription, learning string, meta vector.LearningMeta) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stored = append(s.stored, learning)
	return fmt.Sprintf("learning-%d", len(s.stored)), nil
}

func (s *memoryLearningStore) Query(ctx context.Context, text string, limit int, threshold float64, outcomeFilter string) ([]vector.LearningHit, error) {
	return nil, nil
}

func (s *memoryLearningStore) count(learning string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, l := range s.stored {
		if l == learning {
			n++
		}
	}
	return n
}

// mustGit runs git in dir, failing the test on error.
func mustGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %s: %s", strings.Join(args, " "), out)
	return strings.TrimSpace(string(out))
}

// initGitRepo creates a repository on branch main with one commit so the
// worktree manager runs in full git mode.
func initGitRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	mustGit(t, dir, "init", "-b", "main")
	mustGit(t, dir, "config", "user.email", "e2e@example.com")
	mustGit(t, dir, "config", "user.name", "E2E")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("seed\n"), 0o644))
	mustGit(t, dir, "add", ".")
	mustGit(t, dir, "commit", "-m", "initial commit")
	return dir
}

// harnessConfig tunes the system under test.
type harnessConfig struct {
	script       func(req agent.Request) []agent.Event
	probeCommand string
	gitRepo      bool
	maxWorktrees int
}

type harness struct {
	t          *testing.T
	client     *ent.Client
	cards      *services.CardService
	goals      *services.GoalService
	executions *services.ExecutionService
	memory     *services.MemoryService
	recorder   *services.OrchestratorRecorder
	worktrees  *worktree.Manager
	engine     *workflow.Engine
	runner     *workflow.Runner
	loop       *orchestrator.Loop
	decomposer *stubDecomposer
	learnings  *memoryLearningStore
	server     *api.Server
	repoPath   string
}

// newHarness assembles the full stack against a fresh database.
func newHarness(t *testing.T, hc harnessConfig) *harness {
	t.Helper()
	client := testdb.NewTestClient(t)

	if hc.script == nil {
		hc.script = greenAgent
	}
	if hc.maxWorktrees == 0 {
		hc.maxWorktrees = 4
	}

	repoPath := t.TempDir()
	if hc.gitRepo {
		repoPath = initGitRepo(t)
	}

	cfg := config.DefaultOrchestratorConfig()
	cards := services.NewCardService(client.Client)
	goals := services.NewGoalService(client.Client)
	executions := services.NewExecutionService(client.Client, nil)
	memory := services.NewMemoryService(client.Client, config.DefaultMemoryConfig().Retention)
	recorder := services.NewOrchestratorRecorder(client.Client)

	tracker := usage.NewTracker(&config.UsageConfig{
		StateFile:          filepath.Join(t.TempDir(), "usage.json"),
		SessionTokenBudget: 1_000_000,
		DailyTokenBudget:   5_000_000,
	})
	budget := usage.NewBudget(&config.UsageConfig{ProbeCommand: hc.probeCommand}, cfg.UsageLimitPercent, tracker)

	worktrees := worktree.NewManager(&config.WorktreeConfig{
		RepoPath:      repoPath,
		MaxConcurrent: hc.maxWorktrees,
	})

	engine := workflow.NewEngine(workflow.EngineDeps{
		Cards:      cards,
		Goals:      goals,
		Executions: executions,
		Adapter:    &scriptedAdapter{script: hc.script},
		Worktrees:  worktrees,
		Tracker:    tracker,
	})
	runner := workflow.NewRunner(engine, hc.maxWorktrees)
	t.Cleanup(runner.Stop)

	decomposer := &stubDecomposer{}
	learnings := &memoryLearningStore{}

	loop := orchestrator.NewLoop(orchestrator.LoopDeps{
		Config:     cfg,
		Memory:     memory,
		Recorder:   recorder,
		Goals:      goals,
		Cards:      cards,
		Executions: executions,
		Budget:     budget,
		Runner:     runner,
		Decomposer: decomposer,
		Learnings:  learnings,
		Worktrees:  worktrees,
	})

	server := api.NewServer(api.ServerDeps{
		Config:     &config.Config{Orchestrator: cfg, Server: config.DefaultServerConfig()},
		DB:         client,
		Cards:      cards,
		Goals:      goals,
		Executions: executions,
		Engine:     engine,
		Runner:     runner,
		Loop:       loop,
		Budget:     budget,
		Worktrees:  worktrees,
	})

	return &harness{
		t:          t,
		client:     client.Client,
		cards:      cards,
		goals:      goals,
		executions: executions,
		memory:     memory,
		recorder:   recorder,
		worktrees:  worktrees,
		engine:     engine,
		runner:     runner,
		loop:       loop,
		decomposer: decomposer,
		learnings:  learnings,
		server:     server,
		repoPath:   repoPath,
	}
}

// do drives one HTTP request through the API server.
func (h *harness) do(method, path, body string) *httptest.ResponseRecorder {
	h.t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.server.ServeHTTP(rec, req)
	return rec
}

func (h *harness) decode(rec *httptest.ResponseRecorder) map[string]any {
	h.t.Helper()
	var out map[string]any
	require.NoError(h.t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// tick runs one orchestrator cycle.
func (h *harness) tick() {
	h.t.Helper()
	require.NoError(h.t, h.loop.Tick(context.Background()))
}

// submitGoal creates a goal over the HTTP API and returns its id.
func (h *harness) submitGoal(description string) string {
	h.t.Helper()
	rec := h.do("POST", "/api/goals", fmt.Sprintf(`{"description": %q}`, description))
	require.Equal(h.t, 201, rec.Code, rec.Body.String())
	body := h.decode(rec)
	goal, ok := body["goal"].(map[string]any)
	require.True(h.t, ok)
	id, _ := goal["id"].(string)
	require.NotEmpty(h.t, id)
	return id
}
