package usage

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/codeready-toolchain/cardsmith/pkg/config"
)

// ErrBudgetExceeded marks an evaluation that found usage at or above the
// configured limit.
var ErrBudgetExceeded = errors.New("usage budget exceeded")

// Status is one budget evaluation.
type Status struct {
	SessionUsedPercent float64 `json:"sessionUsedPercent"`
	DailyUsedPercent   float64 `json:"dailyUsedPercent"`
	IsSafe             bool    `json:"isSafe"`
	Detail             string  `json:"detail"`
}

// Err returns ErrBudgetExceeded when the status is unsafe, for callers
// propagating the gate as an error.
func (s Status) Err() error {
	if s.IsSafe {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrBudgetExceeded, s.Detail)
}

// Budget evaluates usage against the orchestrator's limit. The signal is
// the external probe command when configured, the internal Tracker
// otherwise.
type Budget struct {
	probeCommand string
	threshold    float64
	tracker      *Tracker

	mu   sync.Mutex
	last *Status
}

// NewBudget wires the budget to its usage signal. thresholdPercent is the
// limit both percentages must stay under for work to proceed.
func NewBudget(cfg *config.UsageConfig, thresholdPercent float64, tracker *Tracker) *Budget {
	return &Budget{
		probeCommand: cfg.ProbeCommand,
		threshold:    thresholdPercent,
		tracker:      tracker,
	}
}

// Check evaluates current usage against the threshold. It never returns
// an error: a failed probe yields IsSafe=false with the cause in Detail,
// carrying the last good percentages when there are any.
func (b *Budget) Check(ctx context.Context) Status {
	session, daily, err := b.measure(ctx)
	if err != nil {
		st := Status{Detail: fmt.Sprintf("usage probe failed, holding new work: %v", err)}
		b.mu.Lock()
		if b.last != nil {
			st.SessionUsedPercent = b.last.SessionUsedPercent
			st.DailyUsedPercent = b.last.DailyUsedPercent
		}
		b.mu.Unlock()
		return st
	}

	st := Status{SessionUsedPercent: session, DailyUsedPercent: daily}
	if session < b.threshold && daily < b.threshold {
		st.IsSafe = true
		st.Detail = fmt.Sprintf("session %.1f%%, daily %.1f%% of %.0f%% limit", session, daily, b.threshold)
	} else {
		st.Detail = fmt.Sprintf("%v: session=%.1f%%, daily=%.1f%%, limit=%.0f%%", ErrBudgetExceeded, session, daily, b.threshold)
	}

	b.mu.Lock()
	b.last = &st
	b.mu.Unlock()
	return st
}

// Last returns a copy of the most recent successful evaluation, or nil
// before the first one. The status endpoint reads this instead of
// triggering a probe.
func (b *Budget) Last() *Status {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.last == nil {
		return nil
	}
	st := *b.last
	return &st
}

func (b *Budget) measure(ctx context.Context) (session, daily float64, err error) {
	if b.probeCommand != "" {
		res, err := runProbe(ctx, b.probeCommand)
		if err != nil {
			return 0, 0, err
		}
		return res.SessionUsedPercent, res.DailyUsedPercent, nil
	}
	if b.tracker == nil {
		return 0, 0, errors.New("no probe command and no tracker configured")
	}
	session, daily = b.tracker.Percentages()
	return session, daily, nil
}
