package vector

import (
	"context"
	"testing"
	"time"

	"github.com/qdrant/go-client/qdrant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/cardsmith/pkg/config"
)

type fakeEmbedder struct {
	dims int
}

func (f *fakeEmbedder) Embed(_ context.Context, _ string) ([]float32, error) {
	return make([]float32, f.dims), nil
}

func (f *fakeEmbedder) Dimensions() int { return f.dims }
func (f *fakeEmbedder) Name() string    { return "fake" }

func TestNewStore(t *testing.T) {
	cfg := config.DefaultVectorConfig()
	store, err := NewStore(cfg, &fakeEmbedder{dims: 4})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	assert.Equal(t, "cardsmith_learnings", store.collection)
	assert.Equal(t, 4, store.dimensions, "dimensions come from the embedder, not the raw config")
}

func TestLearningPayload_RoundTrip(t *testing.T) {
	meta := LearningMeta{
		CardsCreated:     []string{"card-1", "card-2"},
		Outcome:          "success",
		ErrorEncountered: "flaky test on first run",
		FixApplied:       true,
		TokensUsed:       12345,
		CostUSD:          0.42,
	}

	payload := learningPayload("Add a rate limiter", "Token buckets beat sliding windows here", meta)

	// The payload must survive the qdrant value conversion and map back.
	hit := hitFromPayload("point-1", 0.91, qdrant.NewValueMap(payload))

	assert.Equal(t, "point-1", hit.ID)
	assert.Equal(t, 0.91, hit.Score)
	assert.Equal(t, "Add a rate limiter", hit.GoalDescription)
	assert.Equal(t, "Token buckets beat sliding windows here", hit.Learning)
	assert.Equal(t, []string{"card-1", "card-2"}, hit.CardsCreated)
	assert.Equal(t, "success", hit.Outcome)
	assert.Equal(t, "flaky test on first run", hit.ErrorEncountered)
	assert.True(t, hit.FixApplied)
	assert.Equal(t, 12345, hit.TokensUsed)
	assert.Equal(t, 0.42, hit.CostUSD)

	ts, err := time.Parse(time.RFC3339, hit.Timestamp)
	require.NoError(t, err, "timestamp must be RFC3339: %q", hit.Timestamp)
	assert.WithinDuration(t, time.Now().UTC(), ts, time.Minute)
}

func TestLearningPayload_ZeroMeta(t *testing.T) {
	hit := hitFromPayload("p", 0, qdrant.NewValueMap(learningPayload("goal", "learning", LearningMeta{})))

	assert.Empty(t, hit.CardsCreated)
	assert.Empty(t, hit.Outcome)
	assert.False(t, hit.FixApplied)
	assert.Zero(t, hit.TokensUsed)
	assert.Zero(t, hit.CostUSD)
}

func TestHitFromPayload_NilPayload(t *testing.T) {
	hit := hitFromPayload("orphan", 0.5, nil)
	assert.Equal(t, "orphan", hit.ID)
	assert.Equal(t, 0.5, hit.Score)
	assert.Empty(t, hit.GoalDescription)
}

func TestPointIDString(t *testing.T) {
	assert.Equal(t, "8ff30a74-b2f9-4f92-98cd-5a6f0e2c3b11", pointIDString(qdrant.NewID("8ff30a74-b2f9-4f92-98cd-5a6f0e2c3b11")))
	assert.Equal(t, "42", pointIDString(qdrant.NewIDNum(42)))
	assert.Empty(t, pointIDString(nil))
}
