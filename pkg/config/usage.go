package config

// UsageConfig controls the usage budget signal.
type UsageConfig struct {
	// ProbeCommand, when set, is executed each probe and must print JSON
	// {"sessionUsedPercent": n, "dailyUsedPercent": n} on stdout. When
	// empty the internal tracker supplies the percentages.
	ProbeCommand string

	// SessionTokenBudget sizes the rolling 5-hour session window for the
	// internal tracker.
	SessionTokenBudget int

	// DailyTokenBudget sizes the UTC-day window for the internal tracker.
	DailyTokenBudget int

	// StateFile persists the internal tracker across restarts.
	StateFile string
}

// DefaultUsageConfig returns the built-in usage defaults.
func DefaultUsageConfig() *UsageConfig {
	return &UsageConfig{
		SessionTokenBudget: 500000,
		DailyTokenBudget:   2000000,
		StateFile:          ".cardsmith/usage.json",
	}
}

// LoadUsageConfig reads usage settings from the environment.
func LoadUsageConfig() *UsageConfig {
	cfg := DefaultUsageConfig()
	cfg.ProbeCommand = envString("USAGE_PROBE_COMMAND", cfg.ProbeCommand)
	cfg.SessionTokenBudget = envInt("SESSION_TOKEN_BUDGET", cfg.SessionTokenBudget)
	cfg.DailyTokenBudget = envInt("DAILY_TOKEN_BUDGET", cfg.DailyTokenBudget)
	cfg.StateFile = envString("USAGE_STATE_FILE", cfg.StateFile)
	return cfg
}
