package usage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudget_TrackerSafe(t *testing.T) {
	trk := newTestTracker(t)
	trk.Record(100, 0.05)

	budget := NewBudget(testUsageConfig(t), 85, trk)
	st := budget.Check(context.Background())

	assert.True(t, st.IsSafe)
	assert.InDelta(t, 10.0, st.SessionUsedPercent, 0.001)
	assert.InDelta(t, 1.0, st.DailyUsedPercent, 0.001)
	assert.Contains(t, st.Detail, "85% limit")
	assert.NoError(t, st.Err())
}

func TestBudget_TrackerExceeded(t *testing.T) {
	trk := newTestTracker(t)
	trk.Record(900, 0.5)

	budget := NewBudget(testUsageConfig(t), 85, trk)
	st := budget.Check(context.Background())

	assert.False(t, st.IsSafe)
	assert.InDelta(t, 90.0, st.SessionUsedPercent, 0.001)
	assert.Contains(t, st.Detail, "session=90.0%")
	assert.ErrorIs(t, st.Err(), ErrBudgetExceeded)
}

func TestBudget_DailyAloneExceeds(t *testing.T) {
	cfg := testUsageConfig(t)
	cfg.SessionTokenBudget = 1000000
	cfg.DailyTokenBudget = 1000
	trk := NewTracker(cfg)
	trk.saveDelay = time.Hour
	trk.Record(900, 0.5)

	budget := NewBudget(cfg, 85, trk)
	st := budget.Check(context.Background())

	assert.False(t, st.IsSafe)
	assert.Less(t, st.SessionUsedPercent, 85.0)
	assert.InDelta(t, 90.0, st.DailyUsedPercent, 0.001)
}

func TestBudget_ProbeCommand(t *testing.T) {
	cfg := testUsageConfig(t)
	cfg.ProbeCommand = `echo '{"sessionUsedPercent": 12.5, "dailyUsedPercent": 40}'`

	budget := NewBudget(cfg, 85, nil)
	st := budget.Check(context.Background())

	assert.True(t, st.IsSafe)
	assert.InDelta(t, 12.5, st.SessionUsedPercent, 0.001)
	assert.InDelta(t, 40.0, st.DailyUsedPercent, 0.001)
}

func TestBudget_ProbeReportsExceeded(t *testing.T) {
	cfg := testUsageConfig(t)
	cfg.ProbeCommand = `echo '{"sessionUsedPercent": 91, "dailyUsedPercent": 12}'`

	budget := NewBudget(cfg, 85, nil)
	st := budget.Check(context.Background())

	assert.False(t, st.IsSafe)
	assert.ErrorIs(t, st.Err(), ErrBudgetExceeded)
}

func TestBudget_ProbeFailureFailsClosed(t *testing.T) {
	probeFile := filepath.Join(t.TempDir(), "probe.json")
	require.NoError(t, os.WriteFile(probeFile, []byte(`{"sessionUsedPercent": 12.5, "dailyUsedPercent": 40}`), 0o644))

	cfg := testUsageConfig(t)
	cfg.ProbeCommand = "cat " + probeFile

	budget := NewBudget(cfg, 85, nil)
	st := budget.Check(context.Background())
	require.True(t, st.IsSafe)

	require.NoError(t, os.Remove(probeFile))
	st = budget.Check(context.Background())

	assert.False(t, st.IsSafe)
	assert.Contains(t, st.Detail, "usage probe failed")
	// The broken probe keeps reporting the last good percentages.
	assert.InDelta(t, 12.5, st.SessionUsedPercent, 0.001)
	assert.InDelta(t, 40.0, st.DailyUsedPercent, 0.001)
}

func TestBudget_ProbeBadOutputFailsClosed(t *testing.T) {
	cfg := testUsageConfig(t)
	cfg.ProbeCommand = "echo not-json"

	budget := NewBudget(cfg, 85, nil)
	st := budget.Check(context.Background())

	assert.False(t, st.IsSafe)
	assert.Contains(t, st.Detail, "parse usage probe output")
}

func TestBudget_NoSignalFailsClosed(t *testing.T) {
	budget := NewBudget(testUsageConfig(t), 85, nil)

	st := budget.Check(context.Background())
	assert.False(t, st.IsSafe)
	assert.Contains(t, st.Detail, "no probe command and no tracker")
}

func TestBudget_Last(t *testing.T) {
	trk := newTestTracker(t)
	budget := NewBudget(testUsageConfig(t), 85, trk)

	assert.Nil(t, budget.Last())

	first := budget.Check(context.Background())
	last := budget.Last()
	require.NotNil(t, last)
	assert.Equal(t, first, *last)
}
