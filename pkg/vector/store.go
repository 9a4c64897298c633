package vector

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"

	"github.com/codeready-toolchain/cardsmith/pkg/config"
)

// defaultQueryLimit applies when a caller passes a non-positive limit.
const defaultQueryLimit = 5

// LearningMeta carries the bookkeeping stored alongside a learning.
type LearningMeta struct {
	CardsCreated     []string
	Outcome          string
	ErrorEncountered string
	FixApplied       bool
	TokensUsed       int
	CostUSD          float64
}

// LearningHit is one stored learning, optionally scored by similarity.
type LearningHit struct {
	ID               string   `json:"id"`
	Score            float64  `json:"score"`
	GoalDescription  string   `json:"goalDescription"`
	Learning         string   `json:"learning"`
	CardsCreated     []string `json:"cardsCreated,omitempty"`
	Outcome          string   `json:"outcome"`
	ErrorEncountered string   `json:"errorEncountered,omitempty"`
	FixApplied       bool     `json:"fixApplied"`
	TokensUsed       int      `json:"tokensUsed"`
	CostUSD          float64  `json:"costUsd"`
	Timestamp        string   `json:"timestamp"`
}

// StoreStats summarises the collection for the health endpoint.
type StoreStats struct {
	PointsCount uint64 `json:"pointsCount"`
	Status      string `json:"status"`
}

// Store persists learnings as vectors in a qdrant collection. The collection
// is created lazily on first use; a transient qdrant outage during that first
// use does not wedge the store, the next call retries.
type Store struct {
	client     *qdrant.Client
	embedder   Embedder
	collection string
	dimensions int

	mu      sync.Mutex
	ensured bool
}

// NewStore connects to qdrant (lazily; gRPC dials on first call) and wraps it
// with the given embedder.
func NewStore(cfg *config.VectorConfig, embedder Embedder) (*Store, error) {
	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   cfg.QdrantHost,
		Port:   cfg.QdrantPort,
		APIKey: cfg.QdrantAPIKey,
		UseTLS: cfg.QdrantUseTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &Store{
		client:     client,
		embedder:   embedder,
		collection: cfg.Collection,
		dimensions: embedder.Dimensions(),
	}, nil
}

// Close releases the underlying gRPC connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// ensureCollection creates the collection on first successful use. The flag
// latches only on success so callers keep retrying after an outage.
func (s *Store) ensureCollection(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ensured {
		return nil
	}

	exists, err := s.client.CollectionExists(ctx, s.collection)
	if err != nil {
		return fmt.Errorf("failed to check collection %q: %w", s.collection, err)
	}
	if !exists {
		err = s.client.CreateCollection(ctx, &qdrant.CreateCollection{
			CollectionName: s.collection,
			VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
				Size:     uint64(s.dimensions),
				Distance: qdrant.Distance_Cosine,
			}),
		})
		if err != nil {
			return fmt.Errorf("failed to create collection %q: %w", s.collection, err)
		}
		slog.Info("Created vector collection", "collection", s.collection, "dimensions", s.dimensions)
	}

	s.ensured = true
	return nil
}

// StoreLearning embeds goalDescription+learning and upserts it with its
// metadata, returning the new point id. The timestamp is stamped here, not
// by the caller.
func (s *Store) StoreLearning(ctx context.Context, goalDescription, learning string, meta LearningMeta) (string, error) {
	if err := s.ensureCollection(ctx); err != nil {
		return "", err
	}

	vec, err := s.embedder.Embed(ctx, goalDescription+"\n\n"+learning)
	if err != nil {
		return "", fmt.Errorf("failed to embed learning: %w", err)
	}

	pointID := uuid.New().String()
	_, err = s.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: s.collection,
		Points: []*qdrant.PointStruct{{
			Id:      qdrant.NewID(pointID),
			Vectors: qdrant.NewVectors(vec...),
			Payload: qdrant.NewValueMap(learningPayload(goalDescription, learning, meta)),
		}},
		Wait: qdrant.PtrOf(true),
	})
	if err != nil {
		return "", fmt.Errorf("failed to store learning: %w", err)
	}

	slog.Info("Stored learning", "id", pointID, "outcome", meta.Outcome)
	return pointID, nil
}

// Query returns learnings similar to text, best first. outcomeFilter narrows
// results to one outcome when non-empty.
func (s *Store) Query(ctx context.Context, text string, limit int, threshold float64, outcomeFilter string) ([]LearningHit, error) {
	if err := s.ensureCollection(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultQueryLimit
	}

	vec, err := s.embedder.Embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	query := &qdrant.QueryPoints{
		CollectionName: s.collection,
		Query:          qdrant.NewQuery(vec...),
		Limit:          qdrant.PtrOf(uint64(limit)),
		ScoreThreshold: qdrant.PtrOf(float32(threshold)),
		WithPayload:    qdrant.NewWithPayload(true),
	}
	if outcomeFilter != "" {
		query.Filter = &qdrant.Filter{
			Must: []*qdrant.Condition{qdrant.NewMatch("outcome", outcomeFilter)},
		}
	}

	points, err := s.client.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query learnings: %w", err)
	}

	hits := make([]LearningHit, 0, len(points))
	for _, p := range points {
		hits = append(hits, hitFromPayload(pointIDString(p.GetId()), float64(p.GetScore()), p.GetPayload()))
	}
	return hits, nil
}

// Get retrieves one learning by point id; nil when it does not exist.
func (s *Store) Get(ctx context.Context, id string) (*LearningHit, error) {
	if err := s.ensureCollection(ctx); err != nil {
		return nil, err
	}

	points, err := s.client.Get(ctx, &qdrant.GetPoints{
		CollectionName: s.collection,
		Ids:            []*qdrant.PointId{qdrant.NewID(id)},
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get learning %s: %w", id, err)
	}
	if len(points) == 0 {
		return nil, nil
	}

	hit := hitFromPayload(pointIDString(points[0].GetId()), 0, points[0].GetPayload())
	return &hit, nil
}

// Delete removes a learning by point id.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.ensureCollection(ctx); err != nil {
		return err
	}

	_, err := s.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: s.collection,
		Points:         qdrant.NewPointsSelector(qdrant.NewID(id)),
		Wait:           qdrant.PtrOf(true),
	})
	if err != nil {
		return fmt.Errorf("failed to delete learning %s: %w", id, err)
	}

	slog.Info("Deleted learning", "id", id)
	return nil
}

// Stats reports the collection's point count and status.
func (s *Store) Stats(ctx context.Context) (*StoreStats, error) {
	if err := s.ensureCollection(ctx); err != nil {
		return nil, err
	}

	info, err := s.client.GetCollectionInfo(ctx, s.collection)
	if err != nil {
		return nil, fmt.Errorf("failed to get collection info: %w", err)
	}

	return &StoreStats{
		PointsCount: info.GetPointsCount(),
		Status:      info.GetStatus().String(),
	}, nil
}

// HealthCheck probes qdrant liveness without touching the collection.
func (s *Store) HealthCheck(ctx context.Context) error {
	if _, err := s.client.HealthCheck(ctx); err != nil {
		return fmt.Errorf("qdrant health check failed: %w", err)
	}
	return nil
}

// learningPayload builds the stored payload; "outcome" doubles as the
// filterable field Query matches on.
func learningPayload(goalDescription, learning string, meta LearningMeta) map[string]any {
	cards := make([]any, len(meta.CardsCreated))
	for i, id := range meta.CardsCreated {
		cards[i] = id
	}
	return map[string]any{
		"goal_description":  goalDescription,
		"learning":          learning,
		"cards_created":     cards,
		"outcome":           meta.Outcome,
		"error_encountered": meta.ErrorEncountered,
		"fix_applied":       meta.FixApplied,
		"tokens_used":       meta.TokensUsed,
		"cost_usd":          meta.CostUSD,
		"timestamp":         time.Now().UTC().Format(time.RFC3339),
	}
}

// hitFromPayload maps a stored point back to a LearningHit. Protobuf getters
// are nil-safe, so absent fields come back zero-valued.
func hitFromPayload(id string, score float64, payload map[string]*qdrant.Value) LearningHit {
	hit := LearningHit{ID: id, Score: score}
	if payload == nil {
		return hit
	}

	hit.GoalDescription = payload["goal_description"].GetStringValue()
	hit.Learning = payload["learning"].GetStringValue()
	hit.Outcome = payload["outcome"].GetStringValue()
	hit.ErrorEncountered = payload["error_encountered"].GetStringValue()
	hit.FixApplied = payload["fix_applied"].GetBoolValue()
	hit.TokensUsed = int(payload["tokens_used"].GetIntegerValue())
	hit.CostUSD = payload["cost_usd"].GetDoubleValue()
	hit.Timestamp = payload["timestamp"].GetStringValue()

	for _, v := range payload["cards_created"].GetListValue().GetValues() {
		if s := v.GetStringValue(); s != "" {
			hit.CardsCreated = append(hit.CardsCreated, s)
		}
	}

	return hit
}

// pointIDString renders either point id form.
func pointIDString(id *qdrant.PointId) string {
	if id == nil {
		return ""
	}
	if u := id.GetUuid(); u != "" {
		return u
	}
	return strconv.FormatUint(id.GetNum(), 10)
}
