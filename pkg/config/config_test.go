package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultOrchestratorConfig(t *testing.T) {
	cfg := DefaultOrchestratorConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, 5*time.Second, cfg.LoopInterval)
	assert.Equal(t, float64(85), cfg.UsageLimitPercent)
	assert.Equal(t, 8, cfg.MaxCardsPerGoal)
	assert.Equal(t, 30*time.Minute, cfg.StageTimeout)
	assert.Equal(t, 120*time.Second, cfg.DecomposeTimeout)
}

func TestLoadOrchestratorConfigFromEnv(t *testing.T) {
	t.Setenv("ORCHESTRATOR_ENABLED", "false")
	t.Setenv("ORCHESTRATOR_LOOP_INTERVAL_SECONDS", "30")
	t.Setenv("ORCHESTRATOR_USAGE_LIMIT_PERCENT", "70.5")
	t.Setenv("MAX_CARDS_PER_GOAL", "3")

	cfg := LoadOrchestratorConfig()

	assert.False(t, cfg.Enabled)
	assert.Equal(t, 30*time.Second, cfg.LoopInterval)
	assert.Equal(t, 70.5, cfg.UsageLimitPercent)
	assert.Equal(t, 3, cfg.MaxCardsPerGoal)
}

func TestLoadOrchestratorConfigIgnoresGarbage(t *testing.T) {
	t.Setenv("ORCHESTRATOR_LOOP_INTERVAL_SECONDS", "not-a-number")
	t.Setenv("ORCHESTRATOR_USAGE_LIMIT_PERCENT", "")

	cfg := LoadOrchestratorConfig()

	assert.Equal(t, 5*time.Second, cfg.LoopInterval)
	assert.Equal(t, float64(85), cfg.UsageLimitPercent)
}

func TestDefaultWorktreeConfig(t *testing.T) {
	cfg := DefaultWorktreeConfig()

	assert.Equal(t, ".", cfg.RepoPath)
	assert.Equal(t, 10, cfg.MaxConcurrent)
}

func TestLoadMemoryConfig(t *testing.T) {
	t.Setenv("SHORT_TERM_MEMORY_RETENTION_HOURS", "48")

	cfg := LoadMemoryConfig()

	assert.Equal(t, 48*time.Hour, cfg.Retention)
}

func TestDefaultVectorConfig(t *testing.T) {
	cfg := DefaultVectorConfig()

	assert.Equal(t, "localhost", cfg.QdrantHost)
	assert.Equal(t, 6334, cfg.QdrantPort)
	assert.Equal(t, "cardsmith_learnings", cfg.Collection)
	assert.Equal(t, 768, cfg.EmbeddingDimensions)
}

func TestDefaultCleanupConfig(t *testing.T) {
	cfg := DefaultCleanupConfig()

	assert.Equal(t, time.Hour, cfg.Interval)
	assert.Equal(t, 7, cfg.AutoCompleteDays)
	assert.Equal(t, time.Hour, cfg.EventTTL)
}

func TestLoadBuildsAllSections(t *testing.T) {
	cfg := Load()

	assert.NotNil(t, cfg.Server)
	assert.NotNil(t, cfg.Orchestrator)
	assert.NotNil(t, cfg.Memory)
	assert.NotNil(t, cfg.Worktree)
	assert.NotNil(t, cfg.Agent)
	assert.NotNil(t, cfg.Vector)
	assert.NotNil(t, cfg.Usage)
	assert.NotNil(t, cfg.Cleanup)
}
