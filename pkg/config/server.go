package config

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	// Port the echo server listens on.
	Port int

	// LogLevel is the slog level name (debug, info, warn, error).
	LogLevel string
}

// DefaultServerConfig returns the built-in server defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:     8080,
		LogLevel: "info",
	}
}

// LoadServerConfig reads server settings from the environment.
func LoadServerConfig() *ServerConfig {
	cfg := DefaultServerConfig()
	cfg.Port = envInt("PORT", cfg.Port)
	cfg.LogLevel = envString("LOG_LEVEL", cfg.LogLevel)
	return cfg
}
