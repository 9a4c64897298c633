// Package cleanup provides data retention and board maintenance passes.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/codeready-toolchain/cardsmith/pkg/config"
	"github.com/codeready-toolchain/cardsmith/pkg/events"
	"github.com/codeready-toolchain/cardsmith/pkg/models"
	"github.com/codeready-toolchain/cardsmith/pkg/services"
	"github.com/codeready-toolchain/cardsmith/pkg/workflow"
)

// Service periodically enforces retention policies:
//   - Expires short-term memory entries past their TTL
//   - Auto-completes cards that rested in done long enough
//   - Removes event rows past their TTL
//
// All passes are idempotent; a failed pass is logged and never stops the
// service.
type Service struct {
	config       *config.CleanupConfig
	memory       *services.MemoryService
	cards        *services.CardService
	eventService *services.EventService
	publisher    workflow.EventSink

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service. publisher may be nil; the
// auto-complete pass then skips broadcasts.
func NewService(
	cfg *config.CleanupConfig,
	memory *services.MemoryService,
	cards *services.CardService,
	eventService *services.EventService,
	publisher workflow.EventSink,
) *Service {
	return &Service{
		config:       cfg,
		memory:       memory,
		cards:        cards,
		eventService: eventService,
		publisher:    publisher,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"auto_complete_days", s.config.AutoCompleteDays,
		"event_ttl", s.config.EventTTL,
		"interval", s.config.Interval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunAll(ctx)

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunAll(ctx)
		}
	}
}

// RunAll executes every cleanup pass once. Exported so tests and a future
// manual trigger can run a pass without the ticker. Each pass uses a
// fresh background context: a shutdown mid-pass must not abort half-done
// retention work.
func (s *Service) RunAll(_ context.Context) {
	s.expireMemory()
	s.autoCompleteCards()
	s.deleteOldEvents()
}

func (s *Service) expireMemory() {
	count, err := s.memory.CleanupExpired(context.Background())
	if err != nil {
		slog.Error("Retention: memory cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: expired memory entries", "count", count)
	}
}

// autoCompleteCards moves cards that rested in done past the configured
// age over the done→completed edge, broadcasting each move.
func (s *Service) autoCompleteCards() {
	ctx := context.Background()
	cards, err := s.cards.ListByColumn(ctx, models.ColumnDone)
	if err != nil {
		slog.Error("Retention: listing done cards failed", "error", err)
		return
	}

	cutoff := time.Now().AddDate(0, 0, -s.config.AutoCompleteDays)
	moved := 0
	for _, c := range cards {
		if c.CompletedAt == nil || c.CompletedAt.After(cutoff) {
			continue
		}
		card, from, err := s.cards.Move(ctx, c.ID, models.ColumnCompleted)
		if err != nil {
			slog.Error("Retention: auto-complete move failed", "card_id", c.ID, "error", err)
			continue
		}
		moved++
		if s.publisher != nil {
			payload := events.NewCardMovedPayload(card, from, models.ColumnCompleted)
			if err := s.publisher.PublishCardMoved(ctx, payload); err != nil {
				slog.Warn("Retention: auto-complete broadcast failed", "card_id", c.ID, "error", err)
			}
		}
	}
	if moved > 0 {
		slog.Info("Retention: auto-completed cards", "count", moved)
	}
}

func (s *Service) deleteOldEvents() {
	cutoff := time.Now().Add(-s.config.EventTTL)
	count, err := s.eventService.DeleteOlderThan(context.Background(), cutoff)
	if err != nil {
		slog.Error("Retention: event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted old events", "count", count)
	}
}
