package config

import "time"

// CleanupConfig controls the background maintenance service.
type CleanupConfig struct {
	// Interval is how often the cleanup passes run.
	Interval time.Duration

	// AutoCompleteDays is how long a card rests in done before the
	// done→completed auto-move.
	AutoCompleteDays int

	// EventTTL is the maximum age of event rows before deletion.
	EventTTL time.Duration
}

// DefaultCleanupConfig returns the built-in cleanup defaults.
func DefaultCleanupConfig() *CleanupConfig {
	return &CleanupConfig{
		Interval:         time.Hour,
		AutoCompleteDays: 7,
		EventTTL:         time.Hour,
	}
}

// LoadCleanupConfig reads cleanup settings from the environment.
func LoadCleanupConfig() *CleanupConfig {
	cfg := DefaultCleanupConfig()
	cfg.Interval = envMinutes("CLEANUP_INTERVAL_MINUTES", cfg.Interval)
	cfg.AutoCompleteDays = envInt("AUTO_COMPLETE_DAYS", cfg.AutoCompleteDays)
	cfg.EventTTL = envMinutes("EVENT_TTL_MINUTES", cfg.EventTTL)
	return cfg
}
