package config

// AgentConfig selects and credentials the LLM back-ends.
type AgentConfig struct {
	// AnthropicAPIKey authenticates the primary streaming back-end.
	AnthropicAPIKey string

	// GeminiCLIPath is the secondary back-end binary.
	GeminiCLIPath string

	// MaxTurns caps the primary back-end's tool-use loop per stage.
	MaxTurns int
}

// DefaultAgentConfig returns the built-in agent defaults.
func DefaultAgentConfig() *AgentConfig {
	return &AgentConfig{
		GeminiCLIPath: "gemini",
		MaxTurns:      50,
	}
}

// LoadAgentConfig reads agent settings from the environment.
func LoadAgentConfig() *AgentConfig {
	cfg := DefaultAgentConfig()
	cfg.AnthropicAPIKey = envString("ANTHROPIC_API_KEY", cfg.AnthropicAPIKey)
	cfg.GeminiCLIPath = envString("GEMINI_CLI_PATH", cfg.GeminiCLIPath)
	cfg.MaxTurns = envInt("AGENT_MAX_TURNS", cfg.MaxTurns)
	return cfg
}
