package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/cardsmith/ent"
	"github.com/codeready-toolchain/cardsmith/ent/card"
	"github.com/codeready-toolchain/cardsmith/ent/execution"
	"github.com/codeready-toolchain/cardsmith/pkg/models"
)

// fixTitleMaxRunes caps the parent title portion of a fix-card title.
const fixTitleMaxRunes = 50

// CardService manages card lifecycle and the SDLC column state machine
type CardService struct {
	client *ent.Client
}

// NewCardService creates a new CardService
func NewCardService(client *ent.Client) *CardService {
	return &CardService{client: client}
}

// Create creates a new card in the backlog column
func (s *CardService) Create(httpCtx context.Context, req models.CreateCardRequest) (*ent.Card, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, NewValidationError("title", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.Card.Create().
		SetID(uuid.New().String()).
		SetTitle(req.Title).
		SetDescription(req.Description).
		SetColumn(string(models.ColumnBacklog))

	if req.GoalID != "" {
		builder.SetGoalID(req.GoalID)
	}
	if len(req.Dependencies) > 0 {
		builder.SetDependencies(req.Dependencies)
	}
	if req.ModelPlan != "" {
		builder.SetModelPlan(req.ModelPlan)
	}
	if req.ModelImplement != "" {
		builder.SetModelImplement(req.ModelImplement)
	}
	if req.ModelTest != "" {
		builder.SetModelTest(req.ModelTest)
	}
	if req.ModelReview != "" {
		builder.SetModelReview(req.ModelReview)
	}

	c, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create card: %w", err)
	}

	return c, nil
}

// Get retrieves a card by ID
func (s *CardService) Get(ctx context.Context, cardID string) (*ent.Card, error) {
	c, err := s.client.Card.Query().
		Where(card.IDEQ(cardID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}
	return c, nil
}

// List returns all cards in board order (column position, then creation time)
func (s *CardService) List(ctx context.Context) ([]*ent.Card, error) {
	cards, err := s.client.Card.Query().
		Order(ent.Asc(card.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	sortBoardOrder(cards)
	return cards, nil
}

// ListByGoal returns a goal's cards in board order
func (s *CardService) ListByGoal(ctx context.Context, goalID string) ([]*ent.Card, error) {
	cards, err := s.client.Card.Query().
		Where(card.GoalIDEQ(goalID)).
		Order(ent.Asc(card.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards by goal: %w", err)
	}
	sortBoardOrder(cards)
	return cards, nil
}

// ListByColumn returns cards in a column, oldest first
func (s *CardService) ListByColumn(ctx context.Context, column models.Column) ([]*ent.Card, error) {
	cards, err := s.client.Card.Query().
		Where(card.ColumnEQ(string(column))).
		Order(ent.Asc(card.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards by column: %w", err)
	}
	return cards, nil
}

// Move transitions a card to another column and returns the updated card
// plus the column it left. Only edges of the legal graph are accepted;
// same-column moves are no-ops. Entering done stamps completed_at once;
// entering archived sets the archived flag, archived→done clears it.
// Running executions are never touched, so history stays addressable for
// cards in terminal columns.
func (s *CardService) Move(httpCtx context.Context, cardID string, to models.Column) (*ent.Card, models.Column, error) {
	if !models.IsValidColumn(to) {
		return nil, "", NewValidationError("columnId", fmt.Sprintf("unknown column '%s'", to))
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	c, err := tx.Card.Query().
		Where(card.IDEQ(cardID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, "", ErrNotFound
		}
		return nil, "", fmt.Errorf("failed to get card: %w", err)
	}

	from := models.Column(c.Column)
	if from == to {
		if err := tx.Commit(); err != nil {
			return nil, "", fmt.Errorf("failed to commit transaction: %w", err)
		}
		return c, from, nil
	}

	if !models.CanTransition(from, to) {
		return nil, "", NewInvalidTransitionError(from, to)
	}

	update := tx.Card.UpdateOneID(cardID).SetColumn(string(to))
	if to == models.ColumnDone && c.CompletedAt == nil {
		update = update.SetCompletedAt(time.Now())
	}
	switch {
	case to == models.ColumnArchived:
		update = update.SetArchived(true)
	case from == models.ColumnArchived && to == models.ColumnDone:
		update = update.SetArchived(false)
	}

	c, err = update.Save(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to move card: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	return c, from, nil
}

// CreateFixCard spawns a fix-card for a parent whose test stage failed.
// Idempotent: when an active fix-card already exists (column not yet
// workflow-terminal) it is returned unchanged. The fix-card starts in
// backlog, inherits the parent's model selections and goal, and carries the
// captured failure context.
func (s *CardService) CreateFixCard(httpCtx context.Context, parentID, description, testErrorContext string) (*ent.Card, error) {
	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	parent, err := tx.Card.Query().
		Where(card.IDEQ(parentID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get parent card: %w", err)
	}

	existing, err := tx.Card.Query().
		Where(
			card.ParentCardIDEQ(parentID),
			card.IsFixCard(true),
			card.ColumnNotIn(workflowTerminalColumns()...),
		).
		Order(ent.Desc(card.FieldCreatedAt)).
		First(ctx)
	if err == nil {
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("failed to commit transaction: %w", err)
		}
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query active fix card: %w", err)
	}

	builder := tx.Card.Create().
		SetID(uuid.New().String()).
		SetTitle("[FIX] " + truncateRunes(parent.Title, fixTitleMaxRunes)).
		SetDescription(description).
		SetColumn(string(models.ColumnBacklog)).
		SetIsFixCard(true).
		SetParentCardID(parentID).
		SetTestErrorContext(testErrorContext).
		SetModelPlan(parent.ModelPlan).
		SetModelImplement(parent.ModelImplement).
		SetModelTest(parent.ModelTest).
		SetModelReview(parent.ModelReview)

	if parent.GoalID != nil {
		builder.SetGoalID(*parent.GoalID)
	}

	fix, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create fix card: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return fix, nil
}

// ActiveFixCard returns the parent's in-flight fix-card, or ErrNotFound
func (s *CardService) ActiveFixCard(ctx context.Context, parentID string) (*ent.Card, error) {
	fix, err := s.client.Card.Query().
		Where(
			card.ParentCardIDEQ(parentID),
			card.IsFixCard(true),
			card.ColumnNotIn(workflowTerminalColumns()...),
		).
		Order(ent.Desc(card.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get active fix card: %w", err)
	}
	return fix, nil
}

// ResolvedFixCardSince reports whether a fix-card of the parent reached
// done/completed and was created after t
func (s *CardService) ResolvedFixCardSince(ctx context.Context, parentID string, t time.Time) (bool, error) {
	exists, err := s.client.Card.Query().
		Where(
			card.ParentCardIDEQ(parentID),
			card.IsFixCard(true),
			card.ColumnIn(string(models.ColumnDone), string(models.ColumnCompleted)),
			card.CreatedAtGT(t),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to query resolved fix card: %w", err)
	}
	return exists, nil
}

// SetSpecPath records the design doc produced by the plan stage
func (s *CardService) SetSpecPath(httpCtx context.Context, cardID, specPath string) error {
	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Card.UpdateOneID(cardID).
		SetSpecPath(specPath).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set spec path: %w", err)
	}
	return nil
}

// SetWorkspace persists the card's isolated workspace coordinates. Empty
// branch/base are left NULL (degraded no-VCS mode keeps only the path).
func (s *CardService) SetWorkspace(httpCtx context.Context, cardID, branch, path, baseBranch string) error {
	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Card.UpdateOneID(cardID).SetWorktreePath(path)
	if branch != "" {
		update = update.SetBranchName(branch)
	}
	if baseBranch != "" {
		update = update.SetBaseBranch(baseBranch)
	}

	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set workspace: %w", err)
	}
	return nil
}

// SetDiffStats records the implement stage's change footprint
func (s *CardService) SetDiffStats(httpCtx context.Context, cardID string, stats models.DiffStats) error {
	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Card.UpdateOneID(cardID).
		SetDiffStats(stats.ToMap()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set diff stats: %w", err)
	}
	return nil
}

// Snapshot builds the orchestrator's read-only view of a goal's cards in
// board order. TestFailed means the latest /test-implementation execution
// ended in error; FixState classifies the newest fix-card created after
// that failure (none / active / resolved).
func (s *CardService) Snapshot(ctx context.Context, goalID string) ([]models.CardSnapshot, error) {
	cards, err := s.ListByGoal(ctx, goalID)
	if err != nil {
		return nil, err
	}

	snapshots := make([]models.CardSnapshot, 0, len(cards))
	for _, c := range cards {
		snap := models.CardSnapshot{
			ID:           c.ID,
			Column:       models.Column(c.Column),
			Dependencies: c.Dependencies,
			IsFixCard:    c.IsFixCard,
			FixState:     models.FixStateNone,
		}
		if c.ParentCardID != nil {
			snap.ParentCardID = *c.ParentCardID
		}

		running, err := s.client.Execution.Query().
			Where(
				execution.CardIDEQ(c.ID),
				execution.IsActive(true),
				execution.StatusEQ(execution.StatusRunning),
			).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to query running execution: %w", err)
		}
		snap.HasRunningExecution = running

		testExec, err := s.client.Execution.Query().
			Where(
				execution.CardIDEQ(c.ID),
				execution.CommandEQ(string(models.CommandTest)),
			).
			Order(ent.Desc(execution.FieldStartedAt)).
			First(ctx)
		if err != nil {
			if !ent.IsNotFound(err) {
				return nil, fmt.Errorf("failed to query test execution: %w", err)
			}
			snapshots = append(snapshots, snap)
			continue
		}

		if testExec.Status == execution.StatusError {
			snap.TestFailed = true
			snap.FixState, err = s.fixStateAfter(ctx, c.ID, failureTime(testExec))
			if err != nil {
				return nil, err
			}
		}

		snapshots = append(snapshots, snap)
	}

	return snapshots, nil
}

// fixStateAfter classifies the newest fix-card created after a test failure.
func (s *CardService) fixStateAfter(ctx context.Context, parentID string, failedAt time.Time) (models.FixState, error) {
	fix, err := s.client.Card.Query().
		Where(
			card.ParentCardIDEQ(parentID),
			card.IsFixCard(true),
			card.CreatedAtGT(failedAt),
		).
		Order(ent.Desc(card.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return models.FixStateNone, nil
		}
		return models.FixStateNone, fmt.Errorf("failed to query fix card: %w", err)
	}

	switch models.Column(fix.Column) {
	case models.ColumnDone, models.ColumnCompleted:
		return models.FixStateResolved, nil
	case models.ColumnCancelled, models.ColumnArchived:
		// Discarded fix: the failure counts as unfixed again.
		return models.FixStateNone, nil
	default:
		return models.FixStateActive, nil
	}
}

// failureTime picks the moment an execution failed; started_at stands in
// when the completion stamp is missing.
func failureTime(e *ent.Execution) time.Time {
	if e.CompletedAt != nil {
		return *e.CompletedAt
	}
	return e.StartedAt
}

func workflowTerminalColumns() []string {
	return []string{
		string(models.ColumnDone),
		string(models.ColumnCompleted),
		string(models.ColumnArchived),
		string(models.ColumnCancelled),
	}
}

func sortBoardOrder(cards []*ent.Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		return models.BoardOrder(models.Column(cards[i].Column)) <
			models.BoardOrder(models.Column(cards[j].Column))
	})
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
