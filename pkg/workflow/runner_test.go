package workflow

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/cardsmith/pkg/agent"
	"github.com/codeready-toolchain/cardsmith/pkg/models"
)

// blockingAdapter parks every run until released, tracking concurrency.
type blockingAdapter struct {
	release   chan struct{}
	inFlight  atomic.Int32
	maxSeen   atomic.Int32
	startedMu sync.Mutex
	started   []string
}

func newBlockingAdapter() *blockingAdapter {
	return &blockingAdapter{release: make(chan struct{})}
}

func (a *blockingAdapter) Run(ctx context.Context, req agent.Request) (<-chan agent.Event, error) {
	n := a.inFlight.Add(1)
	for {
		max := a.maxSeen.Load()
		if n <= max || a.maxSeen.CompareAndSwap(max, n) {
			break
		}
	}
	a.startedMu.Lock()
	a.started = append(a.started, req.Prompt)
	a.startedMu.Unlock()

	ch := make(chan agent.Event, 4)
	go func() {
		defer close(ch)
		defer a.inFlight.Add(-1)
		select {
		case <-a.release:
			ch <- agent.ToolUseEvent{Name: agent.ToolWriteFile, Input: map[string]interface{}{"path": "specs/x.md"}}
			ch <- agent.ResultEvent{Result: "done, see specs/x.md", Usage: models.Usage{TotalTokens: 10}}
		case <-ctx.Done():
			ch <- agent.ErrorEvent{Message: "cancelled"}
		}
	}()
	return ch, nil
}

func TestRunnerExecuteParallelOrderAndLimit(t *testing.T) {
	adapter := newBlockingAdapter()
	f := newFixture(t, nil)
	f.engine.adapter = adapter
	runner := NewRunner(f.engine, 2)

	ids := []string{
		f.newCard(t, "card a").ID,
		f.newCard(t, "card b").ID,
		f.newCard(t, "card c").ID,
	}

	done := make(chan []*StageResult, 1)
	go func() { done <- runner.ExecuteParallel(context.Background(), ids) }()

	// Only two agents may run at once.
	require.Eventually(t, func() bool {
		return adapter.inFlight.Load() == 2
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, 2, runner.ActiveCount())

	close(adapter.release)
	results := <-done

	require.Len(t, results, 3)
	for i, res := range results {
		assert.Equal(t, ids[i], res.CardID, "results keep input order")
		assert.NoError(t, res.Err)
		assert.True(t, res.Success)
	}
	assert.LessOrEqual(t, adapter.maxSeen.Load(), int32(2))
	assert.Zero(t, runner.ActiveCount())
}

func TestRunnerRejectsDuplicateExecution(t *testing.T) {
	adapter := newBlockingAdapter()
	f := newFixture(t, nil)
	f.engine.adapter = adapter
	runner := NewRunner(f.engine, 4)

	id := f.newCard(t, "contended card").ID

	done := make(chan *StageResult, 1)
	go func() { done <- runner.ExecuteCard(context.Background(), id) }()

	require.Eventually(t, func() bool { return runner.IsActive(id) }, 5*time.Second, 10*time.Millisecond)

	dup := runner.ExecuteCard(context.Background(), id)
	require.Error(t, dup.Err)
	assert.Contains(t, dup.Err.Error(), "already executing")

	close(adapter.release)
	first := <-done
	assert.NoError(t, first.Err)
}

func TestRunnerCancel(t *testing.T) {
	adapter := newBlockingAdapter()
	f := newFixture(t, nil)
	f.engine.adapter = adapter
	runner := NewRunner(f.engine, 4)

	id := f.newCard(t, "cancelled card").ID

	done := make(chan *StageResult, 1)
	go func() { done <- runner.ExecuteCard(context.Background(), id) }()

	require.Eventually(t, func() bool { return runner.IsActive(id) }, 5*time.Second, 10*time.Millisecond)
	require.True(t, runner.Cancel(id))

	res := <-done
	assert.False(t, res.Success)
	assert.False(t, runner.IsActive(id))

	// Cancelling an idle card reports false.
	assert.False(t, runner.Cancel(id))
}

func TestRunnerStopRejectsNewWork(t *testing.T) {
	f := newFixture(t, greenScript)
	runner := NewRunner(f.engine, 2)
	runner.Stop()

	res := runner.ExecuteCard(context.Background(), "whatever")
	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), "stopped")
}
