package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Runner executes cards through the engine with bounded concurrency
// and per-card cancellation. One card runs at most once at a time;
// parallelism across cards is capped by the worktree limit.
type Runner struct {
	engine        *Engine
	maxConcurrent int

	mu     sync.Mutex
	active map[string]context.CancelFunc

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewRunner builds a runner over the engine. maxConcurrent bounds
// simultaneous card executions; values below one collapse to serial.
func NewRunner(engine *Engine, maxConcurrent int) *Runner {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &Runner{
		engine:        engine,
		maxConcurrent: maxConcurrent,
		active:        make(map[string]context.CancelFunc),
		stopCh:        make(chan struct{}),
	}
}

// ExecuteCard runs one card synchronously. A second call for the same
// card while the first is in flight is rejected.
func (r *Runner) ExecuteCard(ctx context.Context, cardID string) *StageResult {
	runCtx, err := r.claim(ctx, cardID)
	if err != nil {
		return &StageResult{CardID: cardID, Err: err}
	}
	defer r.release(cardID)
	return r.engine.ExecuteCard(runCtx, cardID)
}

// ExecuteParallel runs the cards concurrently, capped at the runner's
// concurrency limit, and returns results in input order.
func (r *Runner) ExecuteParallel(ctx context.Context, cardIDs []string) []*StageResult {
	results := make([]*StageResult, len(cardIDs))
	sem := make(chan struct{}, r.maxConcurrent)
	var wg sync.WaitGroup
	for i, id := range cardIDs {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i] = &StageResult{CardID: id, Err: ctx.Err()}
				return
			}
			results[i] = r.ExecuteCard(ctx, id)
		}(i, id)
	}
	wg.Wait()
	return results
}

// Cancel aborts the card's in-flight execution, if any.
func (r *Runner) Cancel(cardID string) bool {
	r.mu.Lock()
	cancel, ok := r.active[cardID]
	r.mu.Unlock()
	if ok {
		cancel()
		slog.Info("Card execution cancelled", "card_id", cardID)
	}
	return ok
}

// IsActive reports whether the card is currently executing.
func (r *Runner) IsActive(cardID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.active[cardID]
	return ok
}

// ActiveCount returns how many cards are executing right now.
func (r *Runner) ActiveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.active)
}

// Stop cancels every in-flight execution and waits for them to drain.
func (r *Runner) Stop() {
	r.stopOnce.Do(func() {
		close(r.stopCh)
		r.mu.Lock()
		for id, cancel := range r.active {
			slog.Info("Stopping card execution", "card_id", id)
			cancel()
		}
		r.mu.Unlock()
	})
	r.wg.Wait()
}

// claim registers the card as active and derives its cancellable
// context.
func (r *Runner) claim(ctx context.Context, cardID string) (context.Context, error) {
	select {
	case <-r.stopCh:
		return nil, fmt.Errorf("runner is stopped")
	default:
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.active[cardID]; ok {
		return nil, fmt.Errorf("card %s is already executing", cardID)
	}
	runCtx, cancel := context.WithCancel(ctx)
	r.active[cardID] = cancel
	r.wg.Add(1)
	return runCtx, nil
}

func (r *Runner) release(cardID string) {
	r.mu.Lock()
	cancel := r.active[cardID]
	delete(r.active, cardID)
	r.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	r.wg.Done()
}
