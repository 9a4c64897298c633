package config

import "time"

// OrchestratorConfig controls the autonomous loop.
type OrchestratorConfig struct {
	// Enabled runs the tick loop; the HTTP surface works either way.
	Enabled bool

	// LoopInterval is the time between ticks. A tick that finds the
	// previous one still running is skipped, never queued.
	LoopInterval time.Duration

	// UsageLimitPercent is the budget threshold: when session or daily
	// usage reaches it, THINK selects WAIT.
	UsageLimitPercent float64

	// LogFile, when set, receives a copy of the loop's structured log.
	LogFile string

	// MaxCardsPerGoal caps how many cards one decomposition may produce.
	MaxCardsPerGoal int

	// StageTimeout bounds a single agent stage run.
	StageTimeout time.Duration

	// DecomposeTimeout bounds the decomposer call.
	DecomposeTimeout time.Duration
}

// DefaultOrchestratorConfig returns the built-in loop defaults.
func DefaultOrchestratorConfig() *OrchestratorConfig {
	return &OrchestratorConfig{
		Enabled:           true,
		LoopInterval:      5 * time.Second,
		UsageLimitPercent: 85,
		MaxCardsPerGoal:   8,
		StageTimeout:      30 * time.Minute,
		DecomposeTimeout:  120 * time.Second,
	}
}

// LoadOrchestratorConfig reads loop settings from the environment.
func LoadOrchestratorConfig() *OrchestratorConfig {
	cfg := DefaultOrchestratorConfig()
	cfg.Enabled = envBool("ORCHESTRATOR_ENABLED", cfg.Enabled)
	cfg.LoopInterval = envSeconds("ORCHESTRATOR_LOOP_INTERVAL_SECONDS", cfg.LoopInterval)
	cfg.UsageLimitPercent = envFloat("ORCHESTRATOR_USAGE_LIMIT_PERCENT", cfg.UsageLimitPercent)
	cfg.LogFile = envString("ORCHESTRATOR_LOG_FILE", cfg.LogFile)
	cfg.MaxCardsPerGoal = envInt("MAX_CARDS_PER_GOAL", cfg.MaxCardsPerGoal)
	cfg.StageTimeout = envMinutes("STAGE_TIMEOUT_MINUTES", cfg.StageTimeout)
	cfg.DecomposeTimeout = envSeconds("DECOMPOSE_TIMEOUT_SECONDS", cfg.DecomposeTimeout)
	return cfg
}

// MemoryConfig controls short-term memory retention.
type MemoryConfig struct {
	// Retention is how long entries stay queryable before cleanup.
	Retention time.Duration
}

// DefaultMemoryConfig returns the built-in retention default.
func DefaultMemoryConfig() *MemoryConfig {
	return &MemoryConfig{
		Retention: 24 * time.Hour,
	}
}

// LoadMemoryConfig reads memory settings from the environment.
func LoadMemoryConfig() *MemoryConfig {
	cfg := DefaultMemoryConfig()
	cfg.Retention = envHours("SHORT_TERM_MEMORY_RETENTION_HOURS", cfg.Retention)
	return cfg
}
