package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/cardsmith/ent"
	"github.com/codeready-toolchain/cardsmith/ent/memoryentry"
	"github.com/codeready-toolchain/cardsmith/pkg/config"
	"github.com/codeready-toolchain/cardsmith/pkg/models"
	"github.com/codeready-toolchain/cardsmith/pkg/services"
	testdb "github.com/codeready-toolchain/cardsmith/test/database"
)

type cleanupFixture struct {
	client  *ent.Client
	service *Service
	memory  *services.MemoryService
	cards   *services.CardService
	events  *services.EventService
}

func newFixture(t *testing.T, memoryRetention time.Duration) *cleanupFixture {
	t.Helper()
	client := testdb.NewTestClient(t)

	memory := services.NewMemoryService(client.Client, memoryRetention)
	cards := services.NewCardService(client.Client)
	eventService := services.NewEventService(client.Client)

	cfg := &config.CleanupConfig{
		Interval:         time.Hour,
		AutoCompleteDays: 7,
		EventTTL:         time.Hour,
	}
	return &cleanupFixture{
		client:  client.Client,
		service: NewService(cfg, memory, cards, eventService, nil),
		memory:  memory,
		cards:   cards,
		events:  eventService,
	}
}

// moveToDone walks a card over the legal edges into done.
func (f *cleanupFixture) moveToDone(t *testing.T, cardID string) {
	t.Helper()
	ctx := context.Background()
	for _, col := range []models.Column{
		models.ColumnPlan, models.ColumnImplement, models.ColumnTest,
		models.ColumnReview, models.ColumnDone,
	} {
		_, _, err := f.cards.Move(ctx, cardID, col)
		require.NoError(t, err)
	}
}

func TestCleanupExpiresMemory(t *testing.T) {
	// Retention in the past: every entry is born expired.
	f := newFixture(t, -time.Minute)
	ctx := context.Background()

	_, err := f.memory.Record(ctx, memoryentry.EntryTypeAct, "stale entry", nil, "")
	require.NoError(t, err)

	f.service.RunAll(ctx)

	entries, err := f.memory.Recent(ctx, 10, nil, "")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCleanupAutoCompletesRestedCards(t *testing.T) {
	f := newFixture(t, time.Hour)
	ctx := context.Background()

	rested, err := f.cards.Create(ctx, models.CreateCardRequest{Title: "Old done card"})
	require.NoError(t, err)
	f.moveToDone(t, rested.ID)

	fresh, err := f.cards.Create(ctx, models.CreateCardRequest{Title: "Fresh done card"})
	require.NoError(t, err)
	f.moveToDone(t, fresh.ID)

	// Age the first card past the auto-complete threshold.
	_, err = f.client.Card.UpdateOneID(rested.ID).
		SetCompletedAt(time.Now().AddDate(0, 0, -8)).
		Save(ctx)
	require.NoError(t, err)

	f.service.RunAll(ctx)

	got, err := f.cards.Get(ctx, rested.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.ColumnCompleted), got.Column)

	got, err = f.cards.Get(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.ColumnDone), got.Column)
}

func TestCleanupDeletesOldEvents(t *testing.T) {
	f := newFixture(t, time.Hour)
	ctx := context.Background()

	// An event row past the TTL and one inside it.
	f.client.Event.Create().
		SetChannel("cards").
		SetPayload(`{"type":"card_moved"}`).
		SetCreatedAt(time.Now().Add(-2 * time.Hour)).
		SaveX(ctx)

	f.client.Event.Create().
		SetChannel("cards").
		SetPayload(`{"type":"card_created"}`).
		SaveX(ctx)

	f.service.RunAll(ctx)

	remaining, err := f.events.ListSince(ctx, "cards", 0, 100)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestCleanupStartStop(t *testing.T) {
	f := newFixture(t, time.Hour)

	f.service.Start(context.Background())
	f.service.Stop()
}
