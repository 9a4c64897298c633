// Package vector is the long-term memory of the orchestrator: goal learnings
// embedded and stored in qdrant, queried for similar past work before each
// decision. The store tolerates an unreachable backend by returning errors
// the orchestrator treats as soft.
package vector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/codeready-toolchain/cardsmith/pkg/config"
)

// embedTimeout caps a single embedding call end to end.
const embedTimeout = 30 * time.Second

// Embedder turns text into a vector. Implementations must be safe for
// concurrent use.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	Dimensions() int
	Name() string
}

// OllamaEmbedder generates embeddings via an Ollama-compatible HTTP API.
type OllamaEmbedder struct {
	endpoint   string
	model      string
	dimensions int
	client     *http.Client
}

// NewOllamaEmbedder creates an embedder for cfg's endpoint and model.
func NewOllamaEmbedder(cfg *config.VectorConfig) *OllamaEmbedder {
	return &OllamaEmbedder{
		endpoint:   strings.TrimRight(cfg.EmbeddingEndpoint, "/"),
		model:      cfg.EmbeddingModel,
		dimensions: cfg.EmbeddingDimensions,
		client:     &http.Client{Timeout: embedTimeout},
	}
}

type embedRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type embedResponse struct {
	Embedding []float32 `json:"embedding"`
}

// Embed generates an embedding for a single text.
func (e *OllamaEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	body, err := json.Marshal(embedRequest{Model: e.model, Prompt: text})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal embedding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint+"/api/embeddings", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create embedding request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("embedding request to %s failed: %w", e.endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("embedding endpoint %s returned status %d: %s", e.endpoint, resp.StatusCode, detail)
	}

	var result embedResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode embedding response from %s: %w", e.endpoint, err)
	}

	// Ollama answers 200 with an empty vector for unknown models.
	if len(result.Embedding) == 0 {
		return nil, fmt.Errorf("embedding endpoint %s returned an empty vector for model %s", e.endpoint, e.model)
	}

	return result.Embedding, nil
}

// Dimensions returns the configured vector size.
func (e *OllamaEmbedder) Dimensions() int {
	return e.dimensions
}

// Name identifies the embedder in logs and health output.
func (e *OllamaEmbedder) Name() string {
	return "ollama:" + e.model
}
