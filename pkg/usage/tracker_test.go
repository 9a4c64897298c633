package usage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/cardsmith/pkg/config"
)

func testUsageConfig(t *testing.T) *config.UsageConfig {
	t.Helper()
	return &config.UsageConfig{
		SessionTokenBudget: 1000,
		DailyTokenBudget:   10000,
		StateFile:          filepath.Join(t.TempDir(), "state", "usage.json"),
	}
}

// newTestTracker keeps async saves out of unit tests that only exercise
// the windows.
func newTestTracker(t *testing.T) *Tracker {
	t.Helper()
	trk := NewTracker(testUsageConfig(t))
	trk.saveDelay = time.Hour
	return trk
}

func TestNewTracker_MissingStateFile(t *testing.T) {
	trk := NewTracker(testUsageConfig(t))

	session, daily := trk.Percentages()
	assert.Zero(t, session)
	assert.Zero(t, daily)
}

func TestNewTracker_CorruptStateFile(t *testing.T) {
	cfg := testUsageConfig(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(cfg.StateFile), 0o755))
	require.NoError(t, os.WriteFile(cfg.StateFile, []byte("not json"), 0o644))

	trk := NewTracker(cfg)

	session, daily := trk.Percentages()
	assert.Zero(t, session)
	assert.Zero(t, daily)
}

func TestTracker_Percentages(t *testing.T) {
	trk := newTestTracker(t)
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	trk.now = func() time.Time { return now }

	trk.Record(100, 0.05)
	session, daily := trk.Percentages()
	assert.InDelta(t, 10.0, session, 0.001)
	assert.InDelta(t, 1.0, daily, 0.001)

	trk.Record(400, 0.2)
	session, daily = trk.Percentages()
	assert.InDelta(t, 50.0, session, 0.001)
	assert.InDelta(t, 5.0, daily, 0.001)
}

func TestTracker_SessionWindowRolls(t *testing.T) {
	trk := newTestTracker(t)
	now := time.Date(2026, 3, 14, 6, 0, 0, 0, time.UTC)
	trk.now = func() time.Time { return now }

	trk.Record(500, 0.1)

	// Past the session window but still the same UTC day.
	now = now.Add(sessionWindow + time.Minute)
	session, daily := trk.Percentages()
	assert.Zero(t, session)
	assert.InDelta(t, 5.0, daily, 0.001)
}

func TestTracker_DailyWindowResetsAtUTCMidnight(t *testing.T) {
	trk := newTestTracker(t)
	now := time.Date(2026, 3, 14, 23, 30, 0, 0, time.UTC)
	trk.now = func() time.Time { return now }

	trk.Record(500, 0.1)

	// The next UTC day, still inside the session window.
	now = now.Add(time.Hour)
	session, daily := trk.Percentages()
	assert.InDelta(t, 50.0, session, 0.001)
	assert.Zero(t, daily)
}

func TestTracker_PruneDropsExpiredSamples(t *testing.T) {
	trk := newTestTracker(t)
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	trk.now = func() time.Time { return now }

	trk.Record(100, 0.05)
	now = now.Add(25 * time.Hour)
	trk.Record(200, 0.1)

	trk.mu.Lock()
	kept := len(trk.samples)
	trk.mu.Unlock()
	assert.Equal(t, 1, kept)

	session, daily := trk.Percentages()
	assert.InDelta(t, 20.0, session, 0.001)
	assert.InDelta(t, 2.0, daily, 0.001)
}

func TestTracker_SaveAndReload(t *testing.T) {
	cfg := testUsageConfig(t)
	trk := NewTracker(cfg)
	trk.saveDelay = time.Hour

	trk.Record(250, 0.125)
	require.NoError(t, trk.Save())

	reloaded := NewTracker(cfg)
	session, daily := reloaded.Percentages()
	assert.InDelta(t, 25.0, session, 0.001)
	assert.InDelta(t, 2.5, daily, 0.001)
}

func TestTracker_DebouncedSaveWritesStateFile(t *testing.T) {
	cfg := testUsageConfig(t)
	trk := NewTracker(cfg)
	trk.saveDelay = 10 * time.Millisecond

	trk.Record(100, 0.05)
	trk.Record(200, 0.1)

	require.Eventually(t, func() bool {
		_, err := os.Stat(cfg.StateFile)
		return err == nil
	}, 2*time.Second, 10*time.Millisecond)

	reloaded := NewTracker(cfg)
	session, _ := reloaded.Percentages()
	assert.InDelta(t, 30.0, session, 0.001)
}

func TestTracker_ZeroBudgets(t *testing.T) {
	cfg := testUsageConfig(t)
	cfg.SessionTokenBudget = 0
	cfg.DailyTokenBudget = 0
	trk := NewTracker(cfg)
	trk.saveDelay = time.Hour

	trk.Record(1000, 1)

	session, daily := trk.Percentages()
	assert.Zero(t, session)
	assert.Zero(t, daily)
}
