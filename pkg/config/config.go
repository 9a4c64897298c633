// Package config loads process-wide configuration from the environment.
// Everything is read once at start-up and passed explicitly to constructors.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config is the umbrella configuration object returned by Load() and used
// throughout the application.
type Config struct {
	Server       *ServerConfig
	Orchestrator *OrchestratorConfig
	Memory       *MemoryConfig
	Worktree     *WorktreeConfig
	Agent        *AgentConfig
	Vector       *VectorConfig
	Usage        *UsageConfig
	Cleanup      *CleanupConfig
}

// Load builds the full configuration from environment variables, applying
// built-in defaults for anything unset. godotenv runs at the composition
// root before this is called.
func Load() *Config {
	return &Config{
		Server:       LoadServerConfig(),
		Orchestrator: LoadOrchestratorConfig(),
		Memory:       LoadMemoryConfig(),
		Worktree:     LoadWorktreeConfig(),
		Agent:        LoadAgentConfig(),
		Vector:       LoadVectorConfig(),
		Usage:        LoadUsageConfig(),
		Cleanup:      LoadCleanupConfig(),
	}
}

func envString(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func envInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func envFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func envBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

func envSeconds(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return defaultVal
}

func envMinutes(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			return time.Duration(n) * time.Minute
		}
	}
	return defaultVal
}

func envHours(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			return time.Duration(n) * time.Hour
		}
	}
	return defaultVal
}
