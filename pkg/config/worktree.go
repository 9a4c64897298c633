package config

// WorktreeConfig controls per-card workspace isolation.
type WorktreeConfig struct {
	// RepoPath is the host repository the agents work on.
	RepoPath string

	// MaxConcurrent caps how many agent-prefixed worktrees may exist.
	MaxConcurrent int
}

// DefaultWorktreeConfig returns the built-in worktree defaults.
func DefaultWorktreeConfig() *WorktreeConfig {
	return &WorktreeConfig{
		RepoPath:      ".",
		MaxConcurrent: 10,
	}
}

// LoadWorktreeConfig reads worktree settings from the environment.
func LoadWorktreeConfig() *WorktreeConfig {
	cfg := DefaultWorktreeConfig()
	cfg.RepoPath = envString("REPO_PATH", cfg.RepoPath)
	cfg.MaxConcurrent = envInt("MAX_CONCURRENT_WORKTREES", cfg.MaxConcurrent)
	return cfg
}
