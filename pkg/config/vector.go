package config

// VectorConfig points at the long-term memory collaborators: the qdrant
// collection and the embedding endpoint.
type VectorConfig struct {
	QdrantHost   string
	QdrantPort   int
	QdrantAPIKey string
	QdrantUseTLS bool

	// Collection is lazily created on first use.
	Collection string

	// EmbeddingEndpoint is an Ollama-compatible HTTP API base URL.
	EmbeddingEndpoint string

	// EmbeddingModel identifies the embedding model.
	EmbeddingModel string

	// EmbeddingDimensions is the vector size the collection is created with.
	EmbeddingDimensions int
}

// DefaultVectorConfig returns the built-in vector-store defaults.
func DefaultVectorConfig() *VectorConfig {
	return &VectorConfig{
		QdrantHost:          "localhost",
		QdrantPort:          6334,
		Collection:          "cardsmith_learnings",
		EmbeddingEndpoint:   "http://localhost:11434",
		EmbeddingModel:      "nomic-embed-text",
		EmbeddingDimensions: 768,
	}
}

// LoadVectorConfig reads vector-store settings from the environment.
func LoadVectorConfig() *VectorConfig {
	cfg := DefaultVectorConfig()
	cfg.QdrantHost = envString("QDRANT_HOST", cfg.QdrantHost)
	cfg.QdrantPort = envInt("QDRANT_PORT", cfg.QdrantPort)
	cfg.QdrantAPIKey = envString("QDRANT_API_KEY", cfg.QdrantAPIKey)
	cfg.QdrantUseTLS = envBool("QDRANT_USE_TLS", cfg.QdrantUseTLS)
	cfg.Collection = envString("QDRANT_COLLECTION", cfg.Collection)
	cfg.EmbeddingEndpoint = envString("EMBEDDING_ENDPOINT", cfg.EmbeddingEndpoint)
	cfg.EmbeddingModel = envString("EMBEDDING_MODEL", cfg.EmbeddingModel)
	cfg.EmbeddingDimensions = envInt("EMBEDDING_DIMENSIONS", cfg.EmbeddingDimensions)
	return cfg
}
