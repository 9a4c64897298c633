// Package usage answers one question for the orchestrator: is it safe to
// start more agent work right now. The signal either comes from an
// external probe command or from the internal Tracker, which aggregates
// per-execution token counts into a rolling session window and a UTC-day
// window.
package usage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/codeready-toolchain/cardsmith/pkg/config"
)

// sessionWindow matches the five-hour rolling session the upstream
// providers meter against.
const sessionWindow = 5 * time.Hour

// saveDebounce batches state writes so a burst of Record calls costs one
// file write.
const saveDebounce = 5 * time.Second

// sample is one execution's recorded usage.
type sample struct {
	At      time.Time `json:"at"`
	Tokens  int       `json:"tokens"`
	CostUSD float64   `json:"costUsd"`
}

// trackerState is the on-disk shape of the tracker.
type trackerState struct {
	Samples []sample `json:"samples"`
}

// Tracker accumulates token usage across executions and reports it as
// percentages of the configured session and daily budgets. State persists
// to a JSON file so restarts do not reset the windows.
type Tracker struct {
	mu      sync.Mutex
	samples []sample
	dirty   bool

	filePath      string
	sessionBudget int
	dailyBudget   int
	saveDelay     time.Duration

	now func() time.Time
}

// NewTracker loads persisted usage state from cfg.StateFile. A missing or
// corrupt state file starts the tracker empty; usage tracking never blocks
// startup.
func NewTracker(cfg *config.UsageConfig) *Tracker {
	t := &Tracker{
		filePath:      cfg.StateFile,
		sessionBudget: cfg.SessionTokenBudget,
		dailyBudget:   cfg.DailyTokenBudget,
		saveDelay:     saveDebounce,
		now:           time.Now,
	}
	t.load()
	return t
}

func (t *Tracker) load() {
	data, err := os.ReadFile(t.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("Could not read usage state, starting empty",
				"file", t.filePath,
				"error", err)
		}
		return
	}
	var state trackerState
	if err := json.Unmarshal(data, &state); err != nil {
		slog.Warn("Corrupt usage state, starting empty",
			"file", t.filePath,
			"error", err)
		return
	}
	t.samples = state.Samples
}

// Record adds one execution's usage and schedules a debounced save.
func (t *Tracker) Record(tokens int, costUSD float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	t.samples = append(t.samples, sample{At: now, Tokens: tokens, CostUSD: costUSD})
	t.prune(now)

	if !t.dirty {
		t.dirty = true
		time.AfterFunc(t.saveDelay, func() {
			if err := t.Save(); err != nil {
				slog.Warn("Could not save usage state",
					"file", t.filePath,
					"error", err)
			}
			t.mu.Lock()
			t.dirty = false
			t.mu.Unlock()
		})
	}
}

// prune drops samples outside both windows. Callers hold the mutex.
func (t *Tracker) prune(now time.Time) {
	sessionStart := now.Add(-sessionWindow)
	dayStart := utcDayStart(now)
	kept := t.samples[:0]
	for _, s := range t.samples {
		if s.At.After(sessionStart) || !s.At.Before(dayStart) {
			kept = append(kept, s)
		}
	}
	t.samples = kept
}

// Percentages reports current session and daily usage as percentages of
// the configured token budgets. A zero budget reports zero.
func (t *Tracker) Percentages() (session, daily float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	sessionStart := now.Add(-sessionWindow)
	dayStart := utcDayStart(now)

	var sessionTokens, dailyTokens int
	for _, s := range t.samples {
		if s.At.After(sessionStart) {
			sessionTokens += s.Tokens
		}
		if !s.At.Before(dayStart) {
			dailyTokens += s.Tokens
		}
	}
	if t.sessionBudget > 0 {
		session = float64(sessionTokens) / float64(t.sessionBudget) * 100
	}
	if t.dailyBudget > 0 {
		daily = float64(dailyTokens) / float64(t.dailyBudget) * 100
	}
	return session, daily
}

// Save writes the current state synchronously. Shutdown calls it to flush
// a pending debounced write.
func (t *Tracker) Save() error {
	t.mu.Lock()
	state := trackerState{Samples: append([]sample(nil), t.samples...)}
	filePath := t.filePath
	t.mu.Unlock()

	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create usage state directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal usage state: %w", err)
	}
	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		return fmt.Errorf("write usage state: %w", err)
	}
	return nil
}

func utcDayStart(now time.Time) time.Time {
	u := now.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
