package vector

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/cardsmith/pkg/config"
)

func embedderConfig(endpoint string) *config.VectorConfig {
	cfg := config.DefaultVectorConfig()
	cfg.EmbeddingEndpoint = endpoint
	cfg.EmbeddingModel = "nomic-embed-text"
	cfg.EmbeddingDimensions = 3
	return cfg
}

func TestNewOllamaEmbedder(t *testing.T) {
	e := NewOllamaEmbedder(embedderConfig("http://localhost:11434/"))

	assert.Equal(t, "http://localhost:11434", e.endpoint, "trailing slash should be trimmed")
	assert.Equal(t, "ollama:nomic-embed-text", e.Name())
	assert.Equal(t, 3, e.Dimensions())
}

func TestOllamaEmbedder_Embed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/embeddings", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req struct {
			Model  string `json:"model"`
			Prompt string `json:"prompt"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "nomic-embed-text", req.Model)
		assert.Equal(t, "add a streaming decoder", req.Prompt)

		json.NewEncoder(w).Encode(map[string]any{"embedding": []float32{0.1, 0.2, 0.3}})
	}))
	defer server.Close()

	e := NewOllamaEmbedder(embedderConfig(server.URL))
	vec, err := e.Embed(context.Background(), "add a streaming decoder")
	require.NoError(t, err)
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, vec)
}

func TestOllamaEmbedder_Embed_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer server.Close()

	e := NewOllamaEmbedder(embedderConfig(server.URL))
	_, err := e.Embed(context.Background(), "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), server.URL)
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, err.Error(), "model not found")
}

func TestOllamaEmbedder_Embed_EmptyVector(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"embedding": []float32{}})
	}))
	defer server.Close()

	e := NewOllamaEmbedder(embedderConfig(server.URL))
	_, err := e.Embed(context.Background(), "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty vector")
	assert.Contains(t, err.Error(), "nomic-embed-text")
}

func TestOllamaEmbedder_Embed_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	e := NewOllamaEmbedder(embedderConfig(url))
	_, err := e.Embed(context.Background(), "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), url)
}
