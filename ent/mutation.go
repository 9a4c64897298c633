// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/cardsmith/ent/card"
	"github.com/codeready-toolchain/cardsmith/ent/event"
	"github.com/codeready-toolchain/cardsmith/ent/execution"
	"github.com/codeready-toolchain/cardsmith/ent/executionlog"
	"github.com/codeready-toolchain/cardsmith/ent/goal"
	"github.com/codeready-toolchain/cardsmith/ent/memoryentry"
	"github.com/codeready-toolchain/cardsmith/ent/orchestratoraction"
	"github.com/codeready-toolchain/cardsmith/ent/orchestratorlog"
	"github.com/codeready-toolchain/cardsmith/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCard               = "Card"
	TypeEvent              = "Event"
	TypeExecution          = "Execution"
	TypeExecutionLog       = "ExecutionLog"
	TypeGoal               = "Goal"
	TypeMemoryEntry        = "MemoryEntry"
	TypeOrchestratorAction = "OrchestratorAction"
	TypeOrchestratorLog    = "OrchestratorLog"
)

// CardMutation represents an operation that mutates the Card nodes in the graph.
type CardMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	title              *string
	description        *string
	column             *string
	spec_path          *string
	model_plan         *string
	model_implement    *string
	model_test         *string
	model_review       *string
	parent_card_id     *string
	is_fix_card        *bool
	test_error_context *string
	branch_name        *string
	worktree_path      *string
	base_branch        *string
	dependencies       *[]string
	appenddependencies []string
	diff_stats         *map[string]interface{}
	archived           *bool
	completed_at       *time.Time
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	goal               *string
	clearedgoal        bool
	executions         map[string]struct{}
	removedexecutions  map[string]struct{}
	clearedexecutions  bool
	done               bool
	oldValue           func(context.Context) (*Card, error)
	predicates         []predicate.Card
}

var _ ent.Mutation = (*CardMutation)(nil)

// cardOption allows management of the mutation configuration using functional options.
type cardOption func(*CardMutation)

// newCardMutation creates new mutation for the Card entity.
func newCardMutation(c config, op Op, opts ...cardOption) *CardMutation {
	m := &CardMutation{
		config:        c,
		op:            op,
		typ:           TypeCard,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCardID sets the ID field of the mutation.
func withCardID(id string) cardOption {
	return func(m *CardMutation) {
		var (
			err   error
			once  sync.Once
			value *Card
		)
		m.oldValue = func(ctx context.Context) (*Card, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Card.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCard sets the old Card of the mutation.
func withCard(node *Card) cardOption {
	return func(m *CardMutation) {
		m.oldValue = func(context.Context) (*Card, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CardMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CardMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Card entities.
func (m *CardMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CardMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CardMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Card.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *CardMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *CardMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *CardMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *CardMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *CardMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *CardMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[card.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *CardMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[card.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *CardMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, card.FieldDescription)
}

// SetColumn sets the "column" field.
func (m *CardMutation) SetColumn(s string) {
	m.column = &s
}

// Column returns the value of the "column" field in the mutation.
func (m *CardMutation) Column() (r string, exists bool) {
	v := m.column
	if v == nil {
		return
	}
	return *v, true
}

// OldColumn returns the old "column" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldColumn(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldColumn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldColumn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldColumn: %w", err)
	}
	return oldValue.Column, nil
}

// ResetColumn resets all changes to the "column" field.
func (m *CardMutation) ResetColumn() {
	m.column = nil
}

// SetSpecPath sets the "spec_path" field.
func (m *CardMutation) SetSpecPath(s string) {
	m.spec_path = &s
}

// SpecPath returns the value of the "spec_path" field in the mutation.
func (m *CardMutation) SpecPath() (r string, exists bool) {
	v := m.spec_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecPath returns the old "spec_path" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldSpecPath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecPath: %w", err)
	}
	return oldValue.SpecPath, nil
}

// ClearSpecPath clears the value of the "spec_path" field.
func (m *CardMutation) ClearSpecPath() {
	m.spec_path = nil
	m.clearedFields[card.FieldSpecPath] = struct{}{}
}

// SpecPathCleared returns if the "spec_path" field was cleared in this mutation.
func (m *CardMutation) SpecPathCleared() bool {
	_, ok := m.clearedFields[card.FieldSpecPath]
	return ok
}

// ResetSpecPath resets all changes to the "spec_path" field.
func (m *CardMutation) ResetSpecPath() {
	m.spec_path = nil
	delete(m.clearedFields, card.FieldSpecPath)
}

// SetModelPlan sets the "model_plan" field.
func (m *CardMutation) SetModelPlan(s string) {
	m.model_plan = &s
}

// ModelPlan returns the value of the "model_plan" field in the mutation.
func (m *CardMutation) ModelPlan() (r string, exists bool) {
	v := m.model_plan
	if v == nil {
		return
	}
	return *v, true
}

// OldModelPlan returns the old "model_plan" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldModelPlan(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelPlan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelPlan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelPlan: %w", err)
	}
	return oldValue.ModelPlan, nil
}

// ResetModelPlan resets all changes to the "model_plan" field.
func (m *CardMutation) ResetModelPlan() {
	m.model_plan = nil
}

// SetModelImplement sets the "model_implement" field.
func (m *CardMutation) SetModelImplement(s string) {
	m.model_implement = &s
}

// ModelImplement returns the value of the "model_implement" field in the mutation.
func (m *CardMutation) ModelImplement() (r string, exists bool) {
	v := m.model_implement
	if v == nil {
		return
	}
	return *v, true
}

// OldModelImplement returns the old "model_implement" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldModelImplement(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelImplement is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelImplement requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelImplement: %w", err)
	}
	return oldValue.ModelImplement, nil
}

// ResetModelImplement resets all changes to the "model_implement" field.
func (m *CardMutation) ResetModelImplement() {
	m.model_implement = nil
}

// SetModelTest sets the "model_test" field.
func (m *CardMutation) SetModelTest(s string) {
	m.model_test = &s
}

// ModelTest returns the value of the "model_test" field in the mutation.
func (m *CardMutation) ModelTest() (r string, exists bool) {
	v := m.model_test
	if v == nil {
		return
	}
	return *v, true
}

// OldModelTest returns the old "model_test" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldModelTest(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelTest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelTest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelTest: %w", err)
	}
	return oldValue.ModelTest, nil
}

// ResetModelTest resets all changes to the "model_test" field.
func (m *CardMutation) ResetModelTest() {
	m.model_test = nil
}

// SetModelReview sets the "model_review" field.
func (m *CardMutation) SetModelReview(s string) {
	m.model_review = &s
}

// ModelReview returns the value of the "model_review" field in the mutation.
func (m *CardMutation) ModelReview() (r string, exists bool) {
	v := m.model_review
	if v == nil {
		return
	}
	return *v, true
}

// OldModelReview returns the old "model_review" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldModelReview(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelReview: %w", err)
	}
	return oldValue.ModelReview, nil
}

// ResetModelReview resets all changes to the "model_review" field.
func (m *CardMutation) ResetModelReview() {
	m.model_review = nil
}

// SetParentCardID sets the "parent_card_id" field.
func (m *CardMutation) SetParentCardID(s string) {
	m.parent_card_id = &s
}

// ParentCardID returns the value of the "parent_card_id" field in the mutation.
func (m *CardMutation) ParentCardID() (r string, exists bool) {
	v := m.parent_card_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentCardID returns the old "parent_card_id" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldParentCardID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentCardID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentCardID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentCardID: %w", err)
	}
	return oldValue.ParentCardID, nil
}

// ClearParentCardID clears the value of the "parent_card_id" field.
func (m *CardMutation) ClearParentCardID() {
	m.parent_card_id = nil
	m.clearedFields[card.FieldParentCardID] = struct{}{}
}

// ParentCardIDCleared returns if the "parent_card_id" field was cleared in this mutation.
func (m *CardMutation) ParentCardIDCleared() bool {
	_, ok := m.clearedFields[card.FieldParentCardID]
	return ok
}

// ResetParentCardID resets all changes to the "parent_card_id" field.
func (m *CardMutation) ResetParentCardID() {
	m.parent_card_id = nil
	delete(m.clearedFields, card.FieldParentCardID)
}

// SetIsFixCard sets the "is_fix_card" field.
func (m *CardMutation) SetIsFixCard(b bool) {
	m.is_fix_card = &b
}

// IsFixCard returns the value of the "is_fix_card" field in the mutation.
func (m *CardMutation) IsFixCard() (r bool, exists bool) {
	v := m.is_fix_card
	if v == nil {
		return
	}
	return *v, true
}

// OldIsFixCard returns the old "is_fix_card" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldIsFixCard(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsFixCard is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsFixCard requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsFixCard: %w", err)
	}
	return oldValue.IsFixCard, nil
}

// ResetIsFixCard resets all changes to the "is_fix_card" field.
func (m *CardMutation) ResetIsFixCard() {
	m.is_fix_card = nil
}

// SetTestErrorContext sets the "test_error_context" field.
func (m *CardMutation) SetTestErrorContext(s string) {
	m.test_error_context = &s
}

// TestErrorContext returns the value of the "test_error_context" field in the mutation.
func (m *CardMutation) TestErrorContext() (r string, exists bool) {
	v := m.test_error_context
	if v == nil {
		return
	}
	return *v, true
}

// OldTestErrorContext returns the old "test_error_context" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldTestErrorContext(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTestErrorContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTestErrorContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTestErrorContext: %w", err)
	}
	return oldValue.TestErrorContext, nil
}

// ClearTestErrorContext clears the value of the "test_error_context" field.
func (m *CardMutation) ClearTestErrorContext() {
	m.test_error_context = nil
	m.clearedFields[card.FieldTestErrorContext] = struct{}{}
}

// TestErrorContextCleared returns if the "test_error_context" field was cleared in this mutation.
func (m *CardMutation) TestErrorContextCleared() bool {
	_, ok := m.clearedFields[card.FieldTestErrorContext]
	return ok
}

// ResetTestErrorContext resets all changes to the "test_error_context" field.
func (m *CardMutation) ResetTestErrorContext() {
	m.test_error_context = nil
	delete(m.clearedFields, card.FieldTestErrorContext)
}

// SetBranchName sets the "branch_name" field.
func (m *CardMutation) SetBranchName(s string) {
	m.branch_name = &s
}

// BranchName returns the value of the "branch_name" field in the mutation.
func (m *CardMutation) BranchName() (r string, exists bool) {
	v := m.branch_name
	if v == nil {
		return
	}
	return *v, true
}

// OldBranchName returns the old "branch_name" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldBranchName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBranchName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBranchName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBranchName: %w", err)
	}
	return oldValue.BranchName, nil
}

// ClearBranchName clears the value of the "branch_name" field.
func (m *CardMutation) ClearBranchName() {
	m.branch_name = nil
	m.clearedFields[card.FieldBranchName] = struct{}{}
}

// BranchNameCleared returns if the "branch_name" field was cleared in this mutation.
func (m *CardMutation) BranchNameCleared() bool {
	_, ok := m.clearedFields[card.FieldBranchName]
	return ok
}

// ResetBranchName resets all changes to the "branch_name" field.
func (m *CardMutation) ResetBranchName() {
	m.branch_name = nil
	delete(m.clearedFields, card.FieldBranchName)
}

// SetWorktreePath sets the "worktree_path" field.
func (m *CardMutation) SetWorktreePath(s string) {
	m.worktree_path = &s
}

// WorktreePath returns the value of the "worktree_path" field in the mutation.
func (m *CardMutation) WorktreePath() (r string, exists bool) {
	v := m.worktree_path
	if v == nil {
		return
	}
	return *v, true
}

// OldWorktreePath returns the old "worktree_path" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldWorktreePath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorktreePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorktreePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorktreePath: %w", err)
	}
	return oldValue.WorktreePath, nil
}

// ClearWorktreePath clears the value of the "worktree_path" field.
func (m *CardMutation) ClearWorktreePath() {
	m.worktree_path = nil
	m.clearedFields[card.FieldWorktreePath] = struct{}{}
}

// WorktreePathCleared returns if the "worktree_path" field was cleared in this mutation.
func (m *CardMutation) WorktreePathCleared() bool {
	_, ok := m.clearedFields[card.FieldWorktreePath]
	return ok
}

// ResetWorktreePath resets all changes to the "worktree_path" field.
func (m *CardMutation) ResetWorktreePath() {
	m.worktree_path = nil
	delete(m.clearedFields, card.FieldWorktreePath)
}

// SetBaseBranch sets the "base_branch" field.
func (m *CardMutation) SetBaseBranch(s string) {
	m.base_branch = &s
}

// BaseBranch returns the value of the "base_branch" field in the mutation.
func (m *CardMutation) BaseBranch() (r string, exists bool) {
	v := m.base_branch
	if v == nil {
		return
	}
	return *v, true
}

// OldBaseBranch returns the old "base_branch" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldBaseBranch(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaseBranch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaseBranch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaseBranch: %w", err)
	}
	return oldValue.BaseBranch, nil
}

// ClearBaseBranch clears the value of the "base_branch" field.
func (m *CardMutation) ClearBaseBranch() {
	m.base_branch = nil
	m.clearedFields[card.FieldBaseBranch] = struct{}{}
}

// BaseBranchCleared returns if the "base_branch" field was cleared in this mutation.
func (m *CardMutation) BaseBranchCleared() bool {
	_, ok := m.clearedFields[card.FieldBaseBranch]
	return ok
}

// ResetBaseBranch resets all changes to the "base_branch" field.
func (m *CardMutation) ResetBaseBranch() {
	m.base_branch = nil
	delete(m.clearedFields, card.FieldBaseBranch)
}

// SetDependencies sets the "dependencies" field.
func (m *CardMutation) SetDependencies(s []string) {
	m.dependencies = &s
	m.appenddependencies = nil
}

// Dependencies returns the value of the "dependencies" field in the mutation.
func (m *CardMutation) Dependencies() (r []string, exists bool) {
	v := m.dependencies
	if v == nil {
		return
	}
	return *v, true
}

// OldDependencies returns the old "dependencies" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldDependencies(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDependencies is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDependencies requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDependencies: %w", err)
	}
	return oldValue.Dependencies, nil
}

// AppendDependencies adds s to the "dependencies" field.
func (m *CardMutation) AppendDependencies(s []string) {
	m.appenddependencies = append(m.appenddependencies, s...)
}

// AppendedDependencies returns the list of values that were appended to the "dependencies" field in this mutation.
func (m *CardMutation) AppendedDependencies() ([]string, bool) {
	if len(m.appenddependencies) == 0 {
		return nil, false
	}
	return m.appenddependencies, true
}

// ClearDependencies clears the value of the "dependencies" field.
func (m *CardMutation) ClearDependencies() {
	m.dependencies = nil
	m.appenddependencies = nil
	m.clearedFields[card.FieldDependencies] = struct{}{}
}

// DependenciesCleared returns if the "dependencies" field was cleared in this mutation.
func (m *CardMutation) DependenciesCleared() bool {
	_, ok := m.clearedFields[card.FieldDependencies]
	return ok
}

// ResetDependencies resets all changes to the "dependencies" field.
func (m *CardMutation) ResetDependencies() {
	m.dependencies = nil
	m.appenddependencies = nil
	delete(m.clearedFields, card.FieldDependencies)
}

// SetDiffStats sets the "diff_stats" field.
func (m *CardMutation) SetDiffStats(value map[string]interface{}) {
	m.diff_stats = &value
}

// DiffStats returns the value of the "diff_stats" field in the mutation.
func (m *CardMutation) DiffStats() (r map[string]interface{}, exists bool) {
	v := m.diff_stats
	if v == nil {
		return
	}
	return *v, true
}

// OldDiffStats returns the old "diff_stats" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldDiffStats(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiffStats is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiffStats requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiffStats: %w", err)
	}
	return oldValue.DiffStats, nil
}

// ClearDiffStats clears the value of the "diff_stats" field.
func (m *CardMutation) ClearDiffStats() {
	m.diff_stats = nil
	m.clearedFields[card.FieldDiffStats] = struct{}{}
}

// DiffStatsCleared returns if the "diff_stats" field was cleared in this mutation.
func (m *CardMutation) DiffStatsCleared() bool {
	_, ok := m.clearedFields[card.FieldDiffStats]
	return ok
}

// ResetDiffStats resets all changes to the "diff_stats" field.
func (m *CardMutation) ResetDiffStats() {
	m.diff_stats = nil
	delete(m.clearedFields, card.FieldDiffStats)
}

// SetArchived sets the "archived" field.
func (m *CardMutation) SetArchived(b bool) {
	m.archived = &b
}

// Archived returns the value of the "archived" field in the mutation.
func (m *CardMutation) Archived() (r bool, exists bool) {
	v := m.archived
	if v == nil {
		return
	}
	return *v, true
}

// OldArchived returns the old "archived" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldArchived(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchived is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchived requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchived: %w", err)
	}
	return oldValue.Archived, nil
}

// ResetArchived resets all changes to the "archived" field.
func (m *CardMutation) ResetArchived() {
	m.archived = nil
}

// SetGoalID sets the "goal_id" field.
func (m *CardMutation) SetGoalID(s string) {
	m.goal = &s
}

// GoalID returns the value of the "goal_id" field in the mutation.
func (m *CardMutation) GoalID() (r string, exists bool) {
	v := m.goal
	if v == nil {
		return
	}
	return *v, true
}

// OldGoalID returns the old "goal_id" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldGoalID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoalID: %w", err)
	}
	return oldValue.GoalID, nil
}

// ClearGoalID clears the value of the "goal_id" field.
func (m *CardMutation) ClearGoalID() {
	m.goal = nil
	m.clearedFields[card.FieldGoalID] = struct{}{}
}

// GoalIDCleared returns if the "goal_id" field was cleared in this mutation.
func (m *CardMutation) GoalIDCleared() bool {
	_, ok := m.clearedFields[card.FieldGoalID]
	return ok
}

// ResetGoalID resets all changes to the "goal_id" field.
func (m *CardMutation) ResetGoalID() {
	m.goal = nil
	delete(m.clearedFields, card.FieldGoalID)
}

// SetCompletedAt sets the "completed_at" field.
func (m *CardMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *CardMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *CardMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[card.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *CardMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[card.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *CardMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, card.FieldCompletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *CardMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CardMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CardMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CardMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CardMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CardMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearGoal clears the "goal" edge to the Goal entity.
func (m *CardMutation) ClearGoal() {
	m.clearedgoal = true
	m.clearedFields[card.FieldGoalID] = struct{}{}
}

// GoalCleared reports if the "goal" edge to the Goal entity was cleared.
func (m *CardMutation) GoalCleared() bool {
	return m.GoalIDCleared() || m.clearedgoal
}

// GoalIDs returns the "goal" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// GoalID instead. It exists only for internal usage by the builders.
func (m *CardMutation) GoalIDs() (ids []string) {
	if id := m.goal; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetGoal resets all changes to the "goal" edge.
func (m *CardMutation) ResetGoal() {
	m.goal = nil
	m.clearedgoal = false
}

// AddExecutionIDs adds the "executions" edge to the Execution entity by ids.
func (m *CardMutation) AddExecutionIDs(ids ...string) {
	if m.executions == nil {
		m.executions = make(map[string]struct{})
	}
	for i := range ids {
		m.executions[ids[i]] = struct{}{}
	}
}

// ClearExecutions clears the "executions" edge to the Execution entity.
func (m *CardMutation) ClearExecutions() {
	m.clearedexecutions = true
}

// ExecutionsCleared reports if the "executions" edge to the Execution entity was cleared.
func (m *CardMutation) ExecutionsCleared() bool {
	return m.clearedexecutions
}

// RemoveExecutionIDs removes the "executions" edge to the Execution entity by IDs.
func (m *CardMutation) RemoveExecutionIDs(ids ...string) {
	if m.removedexecutions == nil {
		m.removedexecutions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.executions, ids[i])
		m.removedexecutions[ids[i]] = struct{}{}
	}
}

// RemovedExecutions returns the removed IDs of the "executions" edge to the Execution entity.
func (m *CardMutation) RemovedExecutionsIDs() (ids []string) {
	for id := range m.removedexecutions {
		ids = append(ids, id)
	}
	return
}

// ExecutionsIDs returns the "executions" edge IDs in the mutation.
func (m *CardMutation) ExecutionsIDs() (ids []string) {
	for id := range m.executions {
		ids = append(ids, id)
	}
	return
}

// ResetExecutions resets all changes to the "executions" edge.
func (m *CardMutation) ResetExecutions() {
	m.executions = nil
	m.clearedexecutions = false
	m.removedexecutions = nil
}

// Where appends a list predicates to the CardMutation builder.
func (m *CardMutation) Where(ps ...predicate.Card) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CardMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CardMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Card, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CardMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CardMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Card).
func (m *CardMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CardMutation) Fields() []string {
	fields := make([]string, 0, 21)
	if m.title != nil {
		fields = append(fields, card.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, card.FieldDescription)
	}
	if m.column != nil {
		fields = append(fields, card.FieldColumn)
	}
	if m.spec_path != nil {
		fields = append(fields, card.FieldSpecPath)
	}
	if m.model_plan != nil {
		fields = append(fields, card.FieldModelPlan)
	}
	if m.model_implement != nil {
		fields = append(fields, card.FieldModelImplement)
	}
	if m.model_test != nil {
		fields = append(fields, card.FieldModelTest)
	}
	if m.model_review != nil {
		fields = append(fields, card.FieldModelReview)
	}
	if m.parent_card_id != nil {
		fields = append(fields, card.FieldParentCardID)
	}
	if m.is_fix_card != nil {
		fields = append(fields, card.FieldIsFixCard)
	}
	if m.test_error_context != nil {
		fields = append(fields, card.FieldTestErrorContext)
	}
	if m.branch_name != nil {
		fields = append(fields, card.FieldBranchName)
	}
	if m.worktree_path != nil {
		fields = append(fields, card.FieldWorktreePath)
	}
	if m.base_branch != nil {
		fields = append(fields, card.FieldBaseBranch)
	}
	if m.dependencies != nil {
		fields = append(fields, card.FieldDependencies)
	}
	if m.diff_stats != nil {
		fields = append(fields, card.FieldDiffStats)
	}
	if m.archived != nil {
		fields = append(fields, card.FieldArchived)
	}
	if m.goal != nil {
		fields = append(fields, card.FieldGoalID)
	}
	if m.completed_at != nil {
		fields = append(fields, card.FieldCompletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, card.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, card.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CardMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case card.FieldTitle:
		return m.Title()
	case card.FieldDescription:
		return m.Description()
	case card.FieldColumn:
		return m.Column()
	case card.FieldSpecPath:
		return m.SpecPath()
	case card.FieldModelPlan:
		return m.ModelPlan()
	case card.FieldModelImplement:
		return m.ModelImplement()
	case card.FieldModelTest:
		return m.ModelTest()
	case card.FieldModelReview:
		return m.ModelReview()
	case card.FieldParentCardID:
		return m.ParentCardID()
	case card.FieldIsFixCard:
		return m.IsFixCard()
	case card.FieldTestErrorContext:
		return m.TestErrorContext()
	case card.FieldBranchName:
		return m.BranchName()
	case card.FieldWorktreePath:
		return m.WorktreePath()
	case card.FieldBaseBranch:
		return m.BaseBranch()
	case card.FieldDependencies:
		return m.Dependencies()
	case card.FieldDiffStats:
		return m.DiffStats()
	case card.FieldArchived:
		return m.Archived()
	case card.FieldGoalID:
		return m.GoalID()
	case card.FieldCompletedAt:
		return m.CompletedAt()
	case card.FieldCreatedAt:
		return m.CreatedAt()
	case card.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CardMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case card.FieldTitle:
		return m.OldTitle(ctx)
	case card.FieldDescription:
		return m.OldDescription(ctx)
	case card.FieldColumn:
		return m.OldColumn(ctx)
	case card.FieldSpecPath:
		return m.OldSpecPath(ctx)
	case card.FieldModelPlan:
		return m.OldModelPlan(ctx)
	case card.FieldModelImplement:
		return m.OldModelImplement(ctx)
	case card.FieldModelTest:
		return m.OldModelTest(ctx)
	case card.FieldModelReview:
		return m.OldModelReview(ctx)
	case card.FieldParentCardID:
		return m.OldParentCardID(ctx)
	case card.FieldIsFixCard:
		return m.OldIsFixCard(ctx)
	case card.FieldTestErrorContext:
		return m.OldTestErrorContext(ctx)
	case card.FieldBranchName:
		return m.OldBranchName(ctx)
	case card.FieldWorktreePath:
		return m.OldWorktreePath(ctx)
	case card.FieldBaseBranch:
		return m.OldBaseBranch(ctx)
	case card.FieldDependencies:
		return m.OldDependencies(ctx)
	case card.FieldDiffStats:
		return m.OldDiffStats(ctx)
	case card.FieldArchived:
		return m.OldArchived(ctx)
	case card.FieldGoalID:
		return m.OldGoalID(ctx)
	case card.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case card.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case card.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Card field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CardMutation) SetField(name string, value ent.Value) error {
	switch name {
	case card.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case card.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case card.FieldColumn:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetColumn(v)
		return nil
	case card.FieldSpecPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecPath(v)
		return nil
	case card.FieldModelPlan:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelPlan(v)
		return nil
	case card.FieldModelImplement:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelImplement(v)
		return nil
	case card.FieldModelTest:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelTest(v)
		return nil
	case card.FieldModelReview:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelReview(v)
		return nil
	case card.FieldParentCardID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentCardID(v)
		return nil
	case card.FieldIsFixCard:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsFixCard(v)
		return nil
	case card.FieldTestErrorContext:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTestErrorContext(v)
		return nil
	case card.FieldBranchName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBranchName(v)
		return nil
	case card.FieldWorktreePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorktreePath(v)
		return nil
	case card.FieldBaseBranch:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaseBranch(v)
		return nil
	case card.FieldDependencies:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDependencies(v)
		return nil
	case card.FieldDiffStats:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiffStats(v)
		return nil
	case card.FieldArchived:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchived(v)
		return nil
	case card.FieldGoalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoalID(v)
		return nil
	case card.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case card.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case card.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Card field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CardMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CardMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CardMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Card numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CardMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(card.FieldDescription) {
		fields = append(fields, card.FieldDescription)
	}
	if m.FieldCleared(card.FieldSpecPath) {
		fields = append(fields, card.FieldSpecPath)
	}
	if m.FieldCleared(card.FieldParentCardID) {
		fields = append(fields, card.FieldParentCardID)
	}
	if m.FieldCleared(card.FieldTestErrorContext) {
		fields = append(fields, card.FieldTestErrorContext)
	}
	if m.FieldCleared(card.FieldBranchName) {
		fields = append(fields, card.FieldBranchName)
	}
	if m.FieldCleared(card.FieldWorktreePath) {
		fields = append(fields, card.FieldWorktreePath)
	}
	if m.FieldCleared(card.FieldBaseBranch) {
		fields = append(fields, card.FieldBaseBranch)
	}
	if m.FieldCleared(card.FieldDependencies) {
		fields = append(fields, card.FieldDependencies)
	}
	if m.FieldCleared(card.FieldDiffStats) {
		fields = append(fields, card.FieldDiffStats)
	}
	if m.FieldCleared(card.FieldGoalID) {
		fields = append(fields, card.FieldGoalID)
	}
	if m.FieldCleared(card.FieldCompletedAt) {
		fields = append(fields, card.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CardMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CardMutation) ClearField(name string) error {
	switch name {
	case card.FieldDescription:
		m.ClearDescription()
		return nil
	case card.FieldSpecPath:
		m.ClearSpecPath()
		return nil
	case card.FieldParentCardID:
		m.ClearParentCardID()
		return nil
	case card.FieldTestErrorContext:
		m.ClearTestErrorContext()
		return nil
	case card.FieldBranchName:
		m.ClearBranchName()
		return nil
	case card.FieldWorktreePath:
		m.ClearWorktreePath()
		return nil
	case card.FieldBaseBranch:
		m.ClearBaseBranch()
		return nil
	case card.FieldDependencies:
		m.ClearDependencies()
		return nil
	case card.FieldDiffStats:
		m.ClearDiffStats()
		return nil
	case card.FieldGoalID:
		m.ClearGoalID()
		return nil
	case card.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Card nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CardMutation) ResetField(name string) error {
	switch name {
	case card.FieldTitle:
		m.ResetTitle()
		return nil
	case card.FieldDescription:
		m.ResetDescription()
		return nil
	case card.FieldColumn:
		m.ResetColumn()
		return nil
	case card.FieldSpecPath:
		m.ResetSpecPath()
		return nil
	case card.FieldModelPlan:
		m.ResetModelPlan()
		return nil
	case card.FieldModelImplement:
		m.ResetModelImplement()
		return nil
	case card.FieldModelTest:
		m.ResetModelTest()
		return nil
	case card.FieldModelReview:
		m.ResetModelReview()
		return nil
	case card.FieldParentCardID:
		m.ResetParentCardID()
		return nil
	case card.FieldIsFixCard:
		m.ResetIsFixCard()
		return nil
	case card.FieldTestErrorContext:
		m.ResetTestErrorContext()
		return nil
	case card.FieldBranchName:
		m.ResetBranchName()
		return nil
	case card.FieldWorktreePath:
		m.ResetWorktreePath()
		return nil
	case card.FieldBaseBranch:
		m.ResetBaseBranch()
		return nil
	case card.FieldDependencies:
		m.ResetDependencies()
		return nil
	case card.FieldDiffStats:
		m.ResetDiffStats()
		return nil
	case card.FieldArchived:
		m.ResetArchived()
		return nil
	case card.FieldGoalID:
		m.ResetGoalID()
		return nil
	case card.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case card.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case card.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Card field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CardMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.goal != nil {
		edges = append(edges, card.EdgeGoal)
	}
	if m.executions != nil {
		edges = append(edges, card.EdgeExecutions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CardMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case card.EdgeGoal:
		if id := m.goal; id != nil {
			return []ent.Value{*id}
		}
	case card.EdgeExecutions:
		ids := make([]ent.Value, 0, len(m.executions))
		for id := range m.executions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CardMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedexecutions != nil {
		edges = append(edges, card.EdgeExecutions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CardMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case card.EdgeExecutions:
		ids := make([]ent.Value, 0, len(m.removedexecutions))
		for id := range m.removedexecutions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CardMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedgoal {
		edges = append(edges, card.EdgeGoal)
	}
	if m.clearedexecutions {
		edges = append(edges, card.EdgeExecutions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CardMutation) EdgeCleared(name string) bool {
	switch name {
	case card.EdgeGoal:
		return m.clearedgoal
	case card.EdgeExecutions:
		return m.clearedexecutions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CardMutation) ClearEdge(name string) error {
	switch name {
	case card.EdgeGoal:
		m.ClearGoal()
		return nil
	}
	return fmt.Errorf("unknown Card unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CardMutation) ResetEdge(name string) error {
	switch name {
	case card.EdgeGoal:
		m.ResetGoal()
		return nil
	case card.EdgeExecutions:
		m.ResetExecutions()
		return nil
	}
	return fmt.Errorf("unknown Card edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	card_id       *string
	channel       *string
	payload       *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCardID sets the "card_id" field.
func (m *EventMutation) SetCardID(s string) {
	m.card_id = &s
}

// CardID returns the value of the "card_id" field in the mutation.
func (m *EventMutation) CardID() (r string, exists bool) {
	v := m.card_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCardID returns the old "card_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCardID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCardID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCardID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCardID: %w", err)
	}
	return oldValue.CardID, nil
}

// ClearCardID clears the value of the "card_id" field.
func (m *EventMutation) ClearCardID() {
	m.card_id = nil
	m.clearedFields[event.FieldCardID] = struct{}{}
}

// CardIDCleared returns if the "card_id" field was cleared in this mutation.
func (m *EventMutation) CardIDCleared() bool {
	_, ok := m.clearedFields[event.FieldCardID]
	return ok
}

// ResetCardID resets all changes to the "card_id" field.
func (m *EventMutation) ResetCardID() {
	m.card_id = nil
	delete(m.clearedFields, event.FieldCardID)
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(s string) {
	m.payload = &s
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r string, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.card_id != nil {
		fields = append(fields, event.FieldCardID)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldCardID:
		return m.CardID()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldCardID:
		return m.OldCardID(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldCardID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCardID(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldCardID) {
		fields = append(fields, event.FieldCardID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldCardID:
		m.ClearCardID()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldCardID:
		m.ResetCardID()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// ExecutionMutation represents an operation that mutates the Execution nodes in the graph.
type ExecutionMutation struct {
	config
	op               Op
	typ              string
	id               *string
	command          *string
	workflow_stage   *execution.WorkflowStage
	status           *execution.Status
	is_active        *bool
	model            *string
	prompt           *string
	result           *string
	workflow_error   *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	total_tokens     *int
	addtotal_tokens  *int
	cost_usd         *float64
	addcost_usd      *float64
	started_at       *time.Time
	completed_at     *time.Time
	clearedFields    map[string]struct{}
	card             *string
	clearedcard      bool
	logs             map[int]struct{}
	removedlogs      map[int]struct{}
	clearedlogs      bool
	done             bool
	oldValue         func(context.Context) (*Execution, error)
	predicates       []predicate.Execution
}

var _ ent.Mutation = (*ExecutionMutation)(nil)

// executionOption allows management of the mutation configuration using functional options.
type executionOption func(*ExecutionMutation)

// newExecutionMutation creates new mutation for the Execution entity.
func newExecutionMutation(c config, op Op, opts ...executionOption) *ExecutionMutation {
	m := &ExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExecutionID sets the ID field of the mutation.
func withExecutionID(id string) executionOption {
	return func(m *ExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *Execution
		)
		m.oldValue = func(ctx context.Context) (*Execution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Execution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExecution sets the old Execution of the mutation.
func withExecution(node *Execution) executionOption {
	return func(m *ExecutionMutation) {
		m.oldValue = func(context.Context) (*Execution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Execution entities.
func (m *ExecutionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExecutionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExecutionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Execution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCardID sets the "card_id" field.
func (m *ExecutionMutation) SetCardID(s string) {
	m.card = &s
}

// CardID returns the value of the "card_id" field in the mutation.
func (m *ExecutionMutation) CardID() (r string, exists bool) {
	v := m.card
	if v == nil {
		return
	}
	return *v, true
}

// OldCardID returns the old "card_id" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldCardID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCardID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCardID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCardID: %w", err)
	}
	return oldValue.CardID, nil
}

// ResetCardID resets all changes to the "card_id" field.
func (m *ExecutionMutation) ResetCardID() {
	m.card = nil
}

// SetCommand sets the "command" field.
func (m *ExecutionMutation) SetCommand(s string) {
	m.command = &s
}

// Command returns the value of the "command" field in the mutation.
func (m *ExecutionMutation) Command() (r string, exists bool) {
	v := m.command
	if v == nil {
		return
	}
	return *v, true
}

// OldCommand returns the old "command" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldCommand(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommand: %w", err)
	}
	return oldValue.Command, nil
}

// ResetCommand resets all changes to the "command" field.
func (m *ExecutionMutation) ResetCommand() {
	m.command = nil
}

// SetWorkflowStage sets the "workflow_stage" field.
func (m *ExecutionMutation) SetWorkflowStage(es execution.WorkflowStage) {
	m.workflow_stage = &es
}

// WorkflowStage returns the value of the "workflow_stage" field in the mutation.
func (m *ExecutionMutation) WorkflowStage() (r execution.WorkflowStage, exists bool) {
	v := m.workflow_stage
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowStage returns the old "workflow_stage" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldWorkflowStage(ctx context.Context) (v execution.WorkflowStage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowStage: %w", err)
	}
	return oldValue.WorkflowStage, nil
}

// ResetWorkflowStage resets all changes to the "workflow_stage" field.
func (m *ExecutionMutation) ResetWorkflowStage() {
	m.workflow_stage = nil
}

// SetStatus sets the "status" field.
func (m *ExecutionMutation) SetStatus(e execution.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *ExecutionMutation) Status() (r execution.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldStatus(ctx context.Context) (v execution.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ExecutionMutation) ResetStatus() {
	m.status = nil
}

// SetIsActive sets the "is_active" field.
func (m *ExecutionMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *ExecutionMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *ExecutionMutation) ResetIsActive() {
	m.is_active = nil
}

// SetModel sets the "model" field.
func (m *ExecutionMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *ExecutionMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *ExecutionMutation) ResetModel() {
	m.model = nil
}

// SetPrompt sets the "prompt" field.
func (m *ExecutionMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *ExecutionMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *ExecutionMutation) ResetPrompt() {
	m.prompt = nil
}

// SetResult sets the "result" field.
func (m *ExecutionMutation) SetResult(s string) {
	m.result = &s
}

// Result returns the value of the "result" field in the mutation.
func (m *ExecutionMutation) Result() (r string, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldResult(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *ExecutionMutation) ClearResult() {
	m.result = nil
	m.clearedFields[execution.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *ExecutionMutation) ResultCleared() bool {
	_, ok := m.clearedFields[execution.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *ExecutionMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, execution.FieldResult)
}

// SetWorkflowError sets the "workflow_error" field.
func (m *ExecutionMutation) SetWorkflowError(s string) {
	m.workflow_error = &s
}

// WorkflowError returns the value of the "workflow_error" field in the mutation.
func (m *ExecutionMutation) WorkflowError() (r string, exists bool) {
	v := m.workflow_error
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowError returns the old "workflow_error" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldWorkflowError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowError: %w", err)
	}
	return oldValue.WorkflowError, nil
}

// ClearWorkflowError clears the value of the "workflow_error" field.
func (m *ExecutionMutation) ClearWorkflowError() {
	m.workflow_error = nil
	m.clearedFields[execution.FieldWorkflowError] = struct{}{}
}

// WorkflowErrorCleared returns if the "workflow_error" field was cleared in this mutation.
func (m *ExecutionMutation) WorkflowErrorCleared() bool {
	_, ok := m.clearedFields[execution.FieldWorkflowError]
	return ok
}

// ResetWorkflowError resets all changes to the "workflow_error" field.
func (m *ExecutionMutation) ResetWorkflowError() {
	m.workflow_error = nil
	delete(m.clearedFields, execution.FieldWorkflowError)
}

// SetInputTokens sets the "input_tokens" field.
func (m *ExecutionMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *ExecutionMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *ExecutionMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *ExecutionMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *ExecutionMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *ExecutionMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *ExecutionMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *ExecutionMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *ExecutionMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *ExecutionMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetTotalTokens sets the "total_tokens" field.
func (m *ExecutionMutation) SetTotalTokens(i int) {
	m.total_tokens = &i
	m.addtotal_tokens = nil
}

// TotalTokens returns the value of the "total_tokens" field in the mutation.
func (m *ExecutionMutation) TotalTokens() (r int, exists bool) {
	v := m.total_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTokens returns the old "total_tokens" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldTotalTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTokens: %w", err)
	}
	return oldValue.TotalTokens, nil
}

// AddTotalTokens adds i to the "total_tokens" field.
func (m *ExecutionMutation) AddTotalTokens(i int) {
	if m.addtotal_tokens != nil {
		*m.addtotal_tokens += i
	} else {
		m.addtotal_tokens = &i
	}
}

// AddedTotalTokens returns the value that was added to the "total_tokens" field in this mutation.
func (m *ExecutionMutation) AddedTotalTokens() (r int, exists bool) {
	v := m.addtotal_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTokens resets all changes to the "total_tokens" field.
func (m *ExecutionMutation) ResetTotalTokens() {
	m.total_tokens = nil
	m.addtotal_tokens = nil
}

// SetCostUsd sets the "cost_usd" field.
func (m *ExecutionMutation) SetCostUsd(f float64) {
	m.cost_usd = &f
	m.addcost_usd = nil
}

// CostUsd returns the value of the "cost_usd" field in the mutation.
func (m *ExecutionMutation) CostUsd() (r float64, exists bool) {
	v := m.cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldCostUsd returns the old "cost_usd" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldCostUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostUsd: %w", err)
	}
	return oldValue.CostUsd, nil
}

// AddCostUsd adds f to the "cost_usd" field.
func (m *ExecutionMutation) AddCostUsd(f float64) {
	if m.addcost_usd != nil {
		*m.addcost_usd += f
	} else {
		m.addcost_usd = &f
	}
}

// AddedCostUsd returns the value that was added to the "cost_usd" field in this mutation.
func (m *ExecutionMutation) AddedCostUsd() (r float64, exists bool) {
	v := m.addcost_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetCostUsd resets all changes to the "cost_usd" field.
func (m *ExecutionMutation) ResetCostUsd() {
	m.cost_usd = nil
	m.addcost_usd = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ExecutionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ExecutionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ExecutionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *ExecutionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ExecutionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ExecutionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[execution.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ExecutionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[execution.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ExecutionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, execution.FieldCompletedAt)
}

// ClearCard clears the "card" edge to the Card entity.
func (m *ExecutionMutation) ClearCard() {
	m.clearedcard = true
	m.clearedFields[execution.FieldCardID] = struct{}{}
}

// CardCleared reports if the "card" edge to the Card entity was cleared.
func (m *ExecutionMutation) CardCleared() bool {
	return m.clearedcard
}

// CardIDs returns the "card" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CardID instead. It exists only for internal usage by the builders.
func (m *ExecutionMutation) CardIDs() (ids []string) {
	if id := m.card; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCard resets all changes to the "card" edge.
func (m *ExecutionMutation) ResetCard() {
	m.card = nil
	m.clearedcard = false
}

// AddLogIDs adds the "logs" edge to the ExecutionLog entity by ids.
func (m *ExecutionMutation) AddLogIDs(ids ...int) {
	if m.logs == nil {
		m.logs = make(map[int]struct{})
	}
	for i := range ids {
		m.logs[ids[i]] = struct{}{}
	}
}

// ClearLogs clears the "logs" edge to the ExecutionLog entity.
func (m *ExecutionMutation) ClearLogs() {
	m.clearedlogs = true
}

// LogsCleared reports if the "logs" edge to the ExecutionLog entity was cleared.
func (m *ExecutionMutation) LogsCleared() bool {
	return m.clearedlogs
}

// RemoveLogIDs removes the "logs" edge to the ExecutionLog entity by IDs.
func (m *ExecutionMutation) RemoveLogIDs(ids ...int) {
	if m.removedlogs == nil {
		m.removedlogs = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.logs, ids[i])
		m.removedlogs[ids[i]] = struct{}{}
	}
}

// RemovedLogs returns the removed IDs of the "logs" edge to the ExecutionLog entity.
func (m *ExecutionMutation) RemovedLogsIDs() (ids []int) {
	for id := range m.removedlogs {
		ids = append(ids, id)
	}
	return
}

// LogsIDs returns the "logs" edge IDs in the mutation.
func (m *ExecutionMutation) LogsIDs() (ids []int) {
	for id := range m.logs {
		ids = append(ids, id)
	}
	return
}

// ResetLogs resets all changes to the "logs" edge.
func (m *ExecutionMutation) ResetLogs() {
	m.logs = nil
	m.clearedlogs = false
	m.removedlogs = nil
}

// Where appends a list predicates to the ExecutionMutation builder.
func (m *ExecutionMutation) Where(ps ...predicate.Execution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Execution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Execution).
func (m *ExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExecutionMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.card != nil {
		fields = append(fields, execution.FieldCardID)
	}
	if m.command != nil {
		fields = append(fields, execution.FieldCommand)
	}
	if m.workflow_stage != nil {
		fields = append(fields, execution.FieldWorkflowStage)
	}
	if m.status != nil {
		fields = append(fields, execution.FieldStatus)
	}
	if m.is_active != nil {
		fields = append(fields, execution.FieldIsActive)
	}
	if m.model != nil {
		fields = append(fields, execution.FieldModel)
	}
	if m.prompt != nil {
		fields = append(fields, execution.FieldPrompt)
	}
	if m.result != nil {
		fields = append(fields, execution.FieldResult)
	}
	if m.workflow_error != nil {
		fields = append(fields, execution.FieldWorkflowError)
	}
	if m.input_tokens != nil {
		fields = append(fields, execution.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, execution.FieldOutputTokens)
	}
	if m.total_tokens != nil {
		fields = append(fields, execution.FieldTotalTokens)
	}
	if m.cost_usd != nil {
		fields = append(fields, execution.FieldCostUsd)
	}
	if m.started_at != nil {
		fields = append(fields, execution.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, execution.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case execution.FieldCardID:
		return m.CardID()
	case execution.FieldCommand:
		return m.Command()
	case execution.FieldWorkflowStage:
		return m.WorkflowStage()
	case execution.FieldStatus:
		return m.Status()
	case execution.FieldIsActive:
		return m.IsActive()
	case execution.FieldModel:
		return m.Model()
	case execution.FieldPrompt:
		return m.Prompt()
	case execution.FieldResult:
		return m.Result()
	case execution.FieldWorkflowError:
		return m.WorkflowError()
	case execution.FieldInputTokens:
		return m.InputTokens()
	case execution.FieldOutputTokens:
		return m.OutputTokens()
	case execution.FieldTotalTokens:
		return m.TotalTokens()
	case execution.FieldCostUsd:
		return m.CostUsd()
	case execution.FieldStartedAt:
		return m.StartedAt()
	case execution.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case execution.FieldCardID:
		return m.OldCardID(ctx)
	case execution.FieldCommand:
		return m.OldCommand(ctx)
	case execution.FieldWorkflowStage:
		return m.OldWorkflowStage(ctx)
	case execution.FieldStatus:
		return m.OldStatus(ctx)
	case execution.FieldIsActive:
		return m.OldIsActive(ctx)
	case execution.FieldModel:
		return m.OldModel(ctx)
	case execution.FieldPrompt:
		return m.OldPrompt(ctx)
	case execution.FieldResult:
		return m.OldResult(ctx)
	case execution.FieldWorkflowError:
		return m.OldWorkflowError(ctx)
	case execution.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case execution.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case execution.FieldTotalTokens:
		return m.OldTotalTokens(ctx)
	case execution.FieldCostUsd:
		return m.OldCostUsd(ctx)
	case execution.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case execution.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Execution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case execution.FieldCardID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCardID(v)
		return nil
	case execution.FieldCommand:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommand(v)
		return nil
	case execution.FieldWorkflowStage:
		v, ok := value.(execution.WorkflowStage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowStage(v)
		return nil
	case execution.FieldStatus:
		v, ok := value.(execution.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case execution.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case execution.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case execution.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case execution.FieldResult:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case execution.FieldWorkflowError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowError(v)
		return nil
	case execution.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case execution.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case execution.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTokens(v)
		return nil
	case execution.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostUsd(v)
		return nil
	case execution.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case execution.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Execution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExecutionMutation) AddedFields() []string {
	var fields []string
	if m.addinput_tokens != nil {
		fields = append(fields, execution.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, execution.FieldOutputTokens)
	}
	if m.addtotal_tokens != nil {
		fields = append(fields, execution.FieldTotalTokens)
	}
	if m.addcost_usd != nil {
		fields = append(fields, execution.FieldCostUsd)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExecutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case execution.FieldInputTokens:
		return m.AddedInputTokens()
	case execution.FieldOutputTokens:
		return m.AddedOutputTokens()
	case execution.FieldTotalTokens:
		return m.AddedTotalTokens()
	case execution.FieldCostUsd:
		return m.AddedCostUsd()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case execution.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case execution.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case execution.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTokens(v)
		return nil
	case execution.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostUsd(v)
		return nil
	}
	return fmt.Errorf("unknown Execution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(execution.FieldResult) {
		fields = append(fields, execution.FieldResult)
	}
	if m.FieldCleared(execution.FieldWorkflowError) {
		fields = append(fields, execution.FieldWorkflowError)
	}
	if m.FieldCleared(execution.FieldCompletedAt) {
		fields = append(fields, execution.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExecutionMutation) ClearField(name string) error {
	switch name {
	case execution.FieldResult:
		m.ClearResult()
		return nil
	case execution.FieldWorkflowError:
		m.ClearWorkflowError()
		return nil
	case execution.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Execution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExecutionMutation) ResetField(name string) error {
	switch name {
	case execution.FieldCardID:
		m.ResetCardID()
		return nil
	case execution.FieldCommand:
		m.ResetCommand()
		return nil
	case execution.FieldWorkflowStage:
		m.ResetWorkflowStage()
		return nil
	case execution.FieldStatus:
		m.ResetStatus()
		return nil
	case execution.FieldIsActive:
		m.ResetIsActive()
		return nil
	case execution.FieldModel:
		m.ResetModel()
		return nil
	case execution.FieldPrompt:
		m.ResetPrompt()
		return nil
	case execution.FieldResult:
		m.ResetResult()
		return nil
	case execution.FieldWorkflowError:
		m.ResetWorkflowError()
		return nil
	case execution.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case execution.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case execution.FieldTotalTokens:
		m.ResetTotalTokens()
		return nil
	case execution.FieldCostUsd:
		m.ResetCostUsd()
		return nil
	case execution.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case execution.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Execution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.card != nil {
		edges = append(edges, execution.EdgeCard)
	}
	if m.logs != nil {
		edges = append(edges, execution.EdgeLogs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExecutionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case execution.EdgeCard:
		if id := m.card; id != nil {
			return []ent.Value{*id}
		}
	case execution.EdgeLogs:
		ids := make([]ent.Value, 0, len(m.logs))
		for id := range m.logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedlogs != nil {
		edges = append(edges, execution.EdgeLogs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExecutionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case execution.EdgeLogs:
		ids := make([]ent.Value, 0, len(m.removedlogs))
		for id := range m.removedlogs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedcard {
		edges = append(edges, execution.EdgeCard)
	}
	if m.clearedlogs {
		edges = append(edges, execution.EdgeLogs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExecutionMutation) EdgeCleared(name string) bool {
	switch name {
	case execution.EdgeCard:
		return m.clearedcard
	case execution.EdgeLogs:
		return m.clearedlogs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExecutionMutation) ClearEdge(name string) error {
	switch name {
	case execution.EdgeCard:
		m.ClearCard()
		return nil
	}
	return fmt.Errorf("unknown Execution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExecutionMutation) ResetEdge(name string) error {
	switch name {
	case execution.EdgeCard:
		m.ResetCard()
		return nil
	case execution.EdgeLogs:
		m.ResetLogs()
		return nil
	}
	return fmt.Errorf("unknown Execution edge %s", name)
}

// ExecutionLogMutation represents an operation that mutates the ExecutionLog nodes in the graph.
type ExecutionLogMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int
	addsequence      *int
	log_type         *executionlog.LogType
	content          *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	execution        *string
	clearedexecution bool
	done             bool
	oldValue         func(context.Context) (*ExecutionLog, error)
	predicates       []predicate.ExecutionLog
}

var _ ent.Mutation = (*ExecutionLogMutation)(nil)

// executionlogOption allows management of the mutation configuration using functional options.
type executionlogOption func(*ExecutionLogMutation)

// newExecutionLogMutation creates new mutation for the ExecutionLog entity.
func newExecutionLogMutation(c config, op Op, opts ...executionlogOption) *ExecutionLogMutation {
	m := &ExecutionLogMutation{
		config:        c,
		op:            op,
		typ:           TypeExecutionLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExecutionLogID sets the ID field of the mutation.
func withExecutionLogID(id int) executionlogOption {
	return func(m *ExecutionLogMutation) {
		var (
			err   error
			once  sync.Once
			value *ExecutionLog
		)
		m.oldValue = func(ctx context.Context) (*ExecutionLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExecutionLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExecutionLog sets the old ExecutionLog of the mutation.
func withExecutionLog(node *ExecutionLog) executionlogOption {
	return func(m *ExecutionLogMutation) {
		m.oldValue = func(context.Context) (*ExecutionLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExecutionLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExecutionLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExecutionLogMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExecutionLogMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExecutionLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExecutionID sets the "execution_id" field.
func (m *ExecutionLogMutation) SetExecutionID(s string) {
	m.execution = &s
}

// ExecutionID returns the value of the "execution_id" field in the mutation.
func (m *ExecutionLogMutation) ExecutionID() (r string, exists bool) {
	v := m.execution
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionID returns the old "execution_id" field's value of the ExecutionLog entity.
// If the ExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionLogMutation) OldExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionID: %w", err)
	}
	return oldValue.ExecutionID, nil
}

// ResetExecutionID resets all changes to the "execution_id" field.
func (m *ExecutionLogMutation) ResetExecutionID() {
	m.execution = nil
}

// SetSequence sets the "sequence" field.
func (m *ExecutionLogMutation) SetSequence(i int) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ExecutionLogMutation) Sequence() (r int, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ExecutionLog entity.
// If the ExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionLogMutation) OldSequence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *ExecutionLogMutation) AddSequence(i int) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ExecutionLogMutation) AddedSequence() (r int, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ExecutionLogMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetLogType sets the "log_type" field.
func (m *ExecutionLogMutation) SetLogType(et executionlog.LogType) {
	m.log_type = &et
}

// LogType returns the value of the "log_type" field in the mutation.
func (m *ExecutionLogMutation) LogType() (r executionlog.LogType, exists bool) {
	v := m.log_type
	if v == nil {
		return
	}
	return *v, true
}

// OldLogType returns the old "log_type" field's value of the ExecutionLog entity.
// If the ExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionLogMutation) OldLogType(ctx context.Context) (v executionlog.LogType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLogType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLogType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLogType: %w", err)
	}
	return oldValue.LogType, nil
}

// ResetLogType resets all changes to the "log_type" field.
func (m *ExecutionLogMutation) ResetLogType() {
	m.log_type = nil
}

// SetContent sets the "content" field.
func (m *ExecutionLogMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ExecutionLogMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the ExecutionLog entity.
// If the ExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionLogMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ExecutionLogMutation) ResetContent() {
	m.content = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ExecutionLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExecutionLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExecutionLog entity.
// If the ExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExecutionLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearExecution clears the "execution" edge to the Execution entity.
func (m *ExecutionLogMutation) ClearExecution() {
	m.clearedexecution = true
	m.clearedFields[executionlog.FieldExecutionID] = struct{}{}
}

// ExecutionCleared reports if the "execution" edge to the Execution entity was cleared.
func (m *ExecutionLogMutation) ExecutionCleared() bool {
	return m.clearedexecution
}

// ExecutionIDs returns the "execution" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ExecutionID instead. It exists only for internal usage by the builders.
func (m *ExecutionLogMutation) ExecutionIDs() (ids []string) {
	if id := m.execution; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetExecution resets all changes to the "execution" edge.
func (m *ExecutionLogMutation) ResetExecution() {
	m.execution = nil
	m.clearedexecution = false
}

// Where appends a list predicates to the ExecutionLogMutation builder.
func (m *ExecutionLogMutation) Where(ps ...predicate.ExecutionLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExecutionLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExecutionLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExecutionLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExecutionLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExecutionLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExecutionLog).
func (m *ExecutionLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExecutionLogMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.execution != nil {
		fields = append(fields, executionlog.FieldExecutionID)
	}
	if m.sequence != nil {
		fields = append(fields, executionlog.FieldSequence)
	}
	if m.log_type != nil {
		fields = append(fields, executionlog.FieldLogType)
	}
	if m.content != nil {
		fields = append(fields, executionlog.FieldContent)
	}
	if m.created_at != nil {
		fields = append(fields, executionlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExecutionLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case executionlog.FieldExecutionID:
		return m.ExecutionID()
	case executionlog.FieldSequence:
		return m.Sequence()
	case executionlog.FieldLogType:
		return m.LogType()
	case executionlog.FieldContent:
		return m.Content()
	case executionlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExecutionLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case executionlog.FieldExecutionID:
		return m.OldExecutionID(ctx)
	case executionlog.FieldSequence:
		return m.OldSequence(ctx)
	case executionlog.FieldLogType:
		return m.OldLogType(ctx)
	case executionlog.FieldContent:
		return m.OldContent(ctx)
	case executionlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExecutionLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case executionlog.FieldExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionID(v)
		return nil
	case executionlog.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case executionlog.FieldLogType:
		v, ok := value.(executionlog.LogType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLogType(v)
		return nil
	case executionlog.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case executionlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExecutionLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExecutionLogMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, executionlog.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExecutionLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case executionlog.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case executionlog.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown ExecutionLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExecutionLogMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExecutionLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExecutionLogMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ExecutionLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExecutionLogMutation) ResetField(name string) error {
	switch name {
	case executionlog.FieldExecutionID:
		m.ResetExecutionID()
		return nil
	case executionlog.FieldSequence:
		m.ResetSequence()
		return nil
	case executionlog.FieldLogType:
		m.ResetLogType()
		return nil
	case executionlog.FieldContent:
		m.ResetContent()
		return nil
	case executionlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExecutionLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExecutionLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.execution != nil {
		edges = append(edges, executionlog.EdgeExecution)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExecutionLogMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case executionlog.EdgeExecution:
		if id := m.execution; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExecutionLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExecutionLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExecutionLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedexecution {
		edges = append(edges, executionlog.EdgeExecution)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExecutionLogMutation) EdgeCleared(name string) bool {
	switch name {
	case executionlog.EdgeExecution:
		return m.clearedexecution
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExecutionLogMutation) ClearEdge(name string) error {
	switch name {
	case executionlog.EdgeExecution:
		m.ClearExecution()
		return nil
	}
	return fmt.Errorf("unknown ExecutionLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExecutionLogMutation) ResetEdge(name string) error {
	switch name {
	case executionlog.EdgeExecution:
		m.ResetExecution()
		return nil
	}
	return fmt.Errorf("unknown ExecutionLog edge %s", name)
}

// GoalMutation represents an operation that mutates the Goal nodes in the graph.
type GoalMutation struct {
	config
	op                Op
	typ               string
	id                *string
	description       *string
	status            *goal.Status
	source            *string
	source_id         *string
	card_ids          *[]string
	appendcard_ids    []string
	learning_text     *string
	learning_id       *string
	total_tokens      *int
	addtotal_tokens   *int
	total_cost_usd    *float64
	addtotal_cost_usd *float64
	error             *string
	created_at        *time.Time
	started_at        *time.Time
	completed_at      *time.Time
	clearedFields     map[string]struct{}
	cards             map[string]struct{}
	removedcards      map[string]struct{}
	clearedcards      bool
	done              bool
	oldValue          func(context.Context) (*Goal, error)
	predicates        []predicate.Goal
}

var _ ent.Mutation = (*GoalMutation)(nil)

// goalOption allows management of the mutation configuration using functional options.
type goalOption func(*GoalMutation)

// newGoalMutation creates new mutation for the Goal entity.
func newGoalMutation(c config, op Op, opts ...goalOption) *GoalMutation {
	m := &GoalMutation{
		config:        c,
		op:            op,
		typ:           TypeGoal,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGoalID sets the ID field of the mutation.
func withGoalID(id string) goalOption {
	return func(m *GoalMutation) {
		var (
			err   error
			once  sync.Once
			value *Goal
		)
		m.oldValue = func(ctx context.Context) (*Goal, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Goal.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGoal sets the old Goal of the mutation.
func withGoal(node *Goal) goalOption {
	return func(m *GoalMutation) {
		m.oldValue = func(context.Context) (*Goal, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GoalMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GoalMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Goal entities.
func (m *GoalMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GoalMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GoalMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Goal.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDescription sets the "description" field.
func (m *GoalMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *GoalMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Goal entity.
// If the Goal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GoalMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *GoalMutation) ResetDescription() {
	m.description = nil
}

// SetStatus sets the "status" field.
func (m *GoalMutation) SetStatus(_go goal.Status) {
	m.status = &_go
}

// Status returns the value of the "status" field in the mutation.
func (m *GoalMutation) Status() (r goal.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Goal entity.
// If the Goal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GoalMutation) OldStatus(ctx context.Context) (v goal.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *GoalMutation) ResetStatus() {
	m.status = nil
}

// SetSource sets the "source" field.
func (m *GoalMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *GoalMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Goal entity.
// If the Goal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GoalMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *GoalMutation) ResetSource() {
	m.source = nil
}

// SetSourceID sets the "source_id" field.
func (m *GoalMutation) SetSourceID(s string) {
	m.source_id = &s
}

// SourceID returns the value of the "source_id" field in the mutation.
func (m *GoalMutation) SourceID() (r string, exists bool) {
	v := m.source_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceID returns the old "source_id" field's value of the Goal entity.
// If the Goal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GoalMutation) OldSourceID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceID: %w", err)
	}
	return oldValue.SourceID, nil
}

// ClearSourceID clears the value of the "source_id" field.
func (m *GoalMutation) ClearSourceID() {
	m.source_id = nil
	m.clearedFields[goal.FieldSourceID] = struct{}{}
}

// SourceIDCleared returns if the "source_id" field was cleared in this mutation.
func (m *GoalMutation) SourceIDCleared() bool {
	_, ok := m.clearedFields[goal.FieldSourceID]
	return ok
}

// ResetSourceID resets all changes to the "source_id" field.
func (m *GoalMutation) ResetSourceID() {
	m.source_id = nil
	delete(m.clearedFields, goal.FieldSourceID)
}

// SetCardIds sets the "card_ids" field.
func (m *GoalMutation) SetCardIds(s []string) {
	m.card_ids = &s
	m.appendcard_ids = nil
}

// CardIds returns the value of the "card_ids" field in the mutation.
func (m *GoalMutation) CardIds() (r []string, exists bool) {
	v := m.card_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldCardIds returns the old "card_ids" field's value of the Goal entity.
// If the Goal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GoalMutation) OldCardIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCardIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCardIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCardIds: %w", err)
	}
	return oldValue.CardIds, nil
}

// AppendCardIds adds s to the "card_ids" field.
func (m *GoalMutation) AppendCardIds(s []string) {
	m.appendcard_ids = append(m.appendcard_ids, s...)
}

// AppendedCardIds returns the list of values that were appended to the "card_ids" field in this mutation.
func (m *GoalMutation) AppendedCardIds() ([]string, bool) {
	if len(m.appendcard_ids) == 0 {
		return nil, false
	}
	return m.appendcard_ids, true
}

// ClearCardIds clears the value of the "card_ids" field.
func (m *GoalMutation) ClearCardIds() {
	m.card_ids = nil
	m.appendcard_ids = nil
	m.clearedFields[goal.FieldCardIds] = struct{}{}
}

// CardIdsCleared returns if the "card_ids" field was cleared in this mutation.
func (m *GoalMutation) CardIdsCleared() bool {
	_, ok := m.clearedFields[goal.FieldCardIds]
	return ok
}

// ResetCardIds resets all changes to the "card_ids" field.
func (m *GoalMutation) ResetCardIds() {
	m.card_ids = nil
	m.appendcard_ids = nil
	delete(m.clearedFields, goal.FieldCardIds)
}

// SetLearningText sets the "learning_text" field.
func (m *GoalMutation) SetLearningText(s string) {
	m.learning_text = &s
}

// LearningText returns the value of the "learning_text" field in the mutation.
func (m *GoalMutation) LearningText() (r string, exists bool) {
	v := m.learning_text
	if v == nil {
		return
	}
	return *v, true
}

// OldLearningText returns the old "learning_text" field's value of the Goal entity.
// If the Goal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GoalMutation) OldLearningText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearningText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearningText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearningText: %w", err)
	}
	return oldValue.LearningText, nil
}

// ClearLearningText clears the value of the "learning_text" field.
func (m *GoalMutation) ClearLearningText() {
	m.learning_text = nil
	m.clearedFields[goal.FieldLearningText] = struct{}{}
}

// LearningTextCleared returns if the "learning_text" field was cleared in this mutation.
func (m *GoalMutation) LearningTextCleared() bool {
	_, ok := m.clearedFields[goal.FieldLearningText]
	return ok
}

// ResetLearningText resets all changes to the "learning_text" field.
func (m *GoalMutation) ResetLearningText() {
	m.learning_text = nil
	delete(m.clearedFields, goal.FieldLearningText)
}

// SetLearningID sets the "learning_id" field.
func (m *GoalMutation) SetLearningID(s string) {
	m.learning_id = &s
}

// LearningID returns the value of the "learning_id" field in the mutation.
func (m *GoalMutation) LearningID() (r string, exists bool) {
	v := m.learning_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearningID returns the old "learning_id" field's value of the Goal entity.
// If the Goal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GoalMutation) OldLearningID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearningID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearningID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearningID: %w", err)
	}
	return oldValue.LearningID, nil
}

// ClearLearningID clears the value of the "learning_id" field.
func (m *GoalMutation) ClearLearningID() {
	m.learning_id = nil
	m.clearedFields[goal.FieldLearningID] = struct{}{}
}

// LearningIDCleared returns if the "learning_id" field was cleared in this mutation.
func (m *GoalMutation) LearningIDCleared() bool {
	_, ok := m.clearedFields[goal.FieldLearningID]
	return ok
}

// ResetLearningID resets all changes to the "learning_id" field.
func (m *GoalMutation) ResetLearningID() {
	m.learning_id = nil
	delete(m.clearedFields, goal.FieldLearningID)
}

// SetTotalTokens sets the "total_tokens" field.
func (m *GoalMutation) SetTotalTokens(i int) {
	m.total_tokens = &i
	m.addtotal_tokens = nil
}

// TotalTokens returns the value of the "total_tokens" field in the mutation.
func (m *GoalMutation) TotalTokens() (r int, exists bool) {
	v := m.total_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTokens returns the old "total_tokens" field's value of the Goal entity.
// If the Goal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GoalMutation) OldTotalTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTokens: %w", err)
	}
	return oldValue.TotalTokens, nil
}

// AddTotalTokens adds i to the "total_tokens" field.
func (m *GoalMutation) AddTotalTokens(i int) {
	if m.addtotal_tokens != nil {
		*m.addtotal_tokens += i
	} else {
		m.addtotal_tokens = &i
	}
}

// AddedTotalTokens returns the value that was added to the "total_tokens" field in this mutation.
func (m *GoalMutation) AddedTotalTokens() (r int, exists bool) {
	v := m.addtotal_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTokens resets all changes to the "total_tokens" field.
func (m *GoalMutation) ResetTotalTokens() {
	m.total_tokens = nil
	m.addtotal_tokens = nil
}

// SetTotalCostUsd sets the "total_cost_usd" field.
func (m *GoalMutation) SetTotalCostUsd(f float64) {
	m.total_cost_usd = &f
	m.addtotal_cost_usd = nil
}

// TotalCostUsd returns the value of the "total_cost_usd" field in the mutation.
func (m *GoalMutation) TotalCostUsd() (r float64, exists bool) {
	v := m.total_cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalCostUsd returns the old "total_cost_usd" field's value of the Goal entity.
// If the Goal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GoalMutation) OldTotalCostUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalCostUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalCostUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalCostUsd: %w", err)
	}
	return oldValue.TotalCostUsd, nil
}

// AddTotalCostUsd adds f to the "total_cost_usd" field.
func (m *GoalMutation) AddTotalCostUsd(f float64) {
	if m.addtotal_cost_usd != nil {
		*m.addtotal_cost_usd += f
	} else {
		m.addtotal_cost_usd = &f
	}
}

// AddedTotalCostUsd returns the value that was added to the "total_cost_usd" field in this mutation.
func (m *GoalMutation) AddedTotalCostUsd() (r float64, exists bool) {
	v := m.addtotal_cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalCostUsd resets all changes to the "total_cost_usd" field.
func (m *GoalMutation) ResetTotalCostUsd() {
	m.total_cost_usd = nil
	m.addtotal_cost_usd = nil
}

// SetError sets the "error" field.
func (m *GoalMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *GoalMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the Goal entity.
// If the Goal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GoalMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *GoalMutation) ClearError() {
	m.error = nil
	m.clearedFields[goal.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *GoalMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[goal.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *GoalMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, goal.FieldError)
}

// SetCreatedAt sets the "created_at" field.
func (m *GoalMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GoalMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Goal entity.
// If the Goal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GoalMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GoalMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *GoalMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *GoalMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Goal entity.
// If the Goal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GoalMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *GoalMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[goal.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *GoalMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[goal.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *GoalMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, goal.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *GoalMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *GoalMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Goal entity.
// If the Goal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GoalMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *GoalMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[goal.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *GoalMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[goal.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *GoalMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, goal.FieldCompletedAt)
}

// AddCardIDs adds the "cards" edge to the Card entity by ids.
func (m *GoalMutation) AddCardIDs(ids ...string) {
	if m.cards == nil {
		m.cards = make(map[string]struct{})
	}
	for i := range ids {
		m.cards[ids[i]] = struct{}{}
	}
}

// ClearCards clears the "cards" edge to the Card entity.
func (m *GoalMutation) ClearCards() {
	m.clearedcards = true
}

// CardsCleared reports if the "cards" edge to the Card entity was cleared.
func (m *GoalMutation) CardsCleared() bool {
	return m.clearedcards
}

// RemoveCardIDs removes the "cards" edge to the Card entity by IDs.
func (m *GoalMutation) RemoveCardIDs(ids ...string) {
	if m.removedcards == nil {
		m.removedcards = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.cards, ids[i])
		m.removedcards[ids[i]] = struct{}{}
	}
}

// RemovedCards returns the removed IDs of the "cards" edge to the Card entity.
func (m *GoalMutation) RemovedCardsIDs() (ids []string) {
	for id := range m.removedcards {
		ids = append(ids, id)
	}
	return
}

// CardsIDs returns the "cards" edge IDs in the mutation.
func (m *GoalMutation) CardsIDs() (ids []string) {
	for id := range m.cards {
		ids = append(ids, id)
	}
	return
}

// ResetCards resets all changes to the "cards" edge.
func (m *GoalMutation) ResetCards() {
	m.cards = nil
	m.clearedcards = false
	m.removedcards = nil
}

// Where appends a list predicates to the GoalMutation builder.
func (m *GoalMutation) Where(ps ...predicate.Goal) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GoalMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GoalMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Goal, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GoalMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GoalMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Goal).
func (m *GoalMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GoalMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.description != nil {
		fields = append(fields, goal.FieldDescription)
	}
	if m.status != nil {
		fields = append(fields, goal.FieldStatus)
	}
	if m.source != nil {
		fields = append(fields, goal.FieldSource)
	}
	if m.source_id != nil {
		fields = append(fields, goal.FieldSourceID)
	}
	if m.card_ids != nil {
		fields = append(fields, goal.FieldCardIds)
	}
	if m.learning_text != nil {
		fields = append(fields, goal.FieldLearningText)
	}
	if m.learning_id != nil {
		fields = append(fields, goal.FieldLearningID)
	}
	if m.total_tokens != nil {
		fields = append(fields, goal.FieldTotalTokens)
	}
	if m.total_cost_usd != nil {
		fields = append(fields, goal.FieldTotalCostUsd)
	}
	if m.error != nil {
		fields = append(fields, goal.FieldError)
	}
	if m.created_at != nil {
		fields = append(fields, goal.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, goal.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, goal.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GoalMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case goal.FieldDescription:
		return m.Description()
	case goal.FieldStatus:
		return m.Status()
	case goal.FieldSource:
		return m.Source()
	case goal.FieldSourceID:
		return m.SourceID()
	case goal.FieldCardIds:
		return m.CardIds()
	case goal.FieldLearningText:
		return m.LearningText()
	case goal.FieldLearningID:
		return m.LearningID()
	case goal.FieldTotalTokens:
		return m.TotalTokens()
	case goal.FieldTotalCostUsd:
		return m.TotalCostUsd()
	case goal.FieldError:
		return m.Error()
	case goal.FieldCreatedAt:
		return m.CreatedAt()
	case goal.FieldStartedAt:
		return m.StartedAt()
	case goal.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GoalMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case goal.FieldDescription:
		return m.OldDescription(ctx)
	case goal.FieldStatus:
		return m.OldStatus(ctx)
	case goal.FieldSource:
		return m.OldSource(ctx)
	case goal.FieldSourceID:
		return m.OldSourceID(ctx)
	case goal.FieldCardIds:
		return m.OldCardIds(ctx)
	case goal.FieldLearningText:
		return m.OldLearningText(ctx)
	case goal.FieldLearningID:
		return m.OldLearningID(ctx)
	case goal.FieldTotalTokens:
		return m.OldTotalTokens(ctx)
	case goal.FieldTotalCostUsd:
		return m.OldTotalCostUsd(ctx)
	case goal.FieldError:
		return m.OldError(ctx)
	case goal.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case goal.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case goal.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Goal field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GoalMutation) SetField(name string, value ent.Value) error {
	switch name {
	case goal.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case goal.FieldStatus:
		v, ok := value.(goal.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case goal.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case goal.FieldSourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceID(v)
		return nil
	case goal.FieldCardIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCardIds(v)
		return nil
	case goal.FieldLearningText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearningText(v)
		return nil
	case goal.FieldLearningID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearningID(v)
		return nil
	case goal.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTokens(v)
		return nil
	case goal.FieldTotalCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalCostUsd(v)
		return nil
	case goal.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case goal.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case goal.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case goal.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Goal field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GoalMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_tokens != nil {
		fields = append(fields, goal.FieldTotalTokens)
	}
	if m.addtotal_cost_usd != nil {
		fields = append(fields, goal.FieldTotalCostUsd)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GoalMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case goal.FieldTotalTokens:
		return m.AddedTotalTokens()
	case goal.FieldTotalCostUsd:
		return m.AddedTotalCostUsd()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GoalMutation) AddField(name string, value ent.Value) error {
	switch name {
	case goal.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTokens(v)
		return nil
	case goal.FieldTotalCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalCostUsd(v)
		return nil
	}
	return fmt.Errorf("unknown Goal numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GoalMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(goal.FieldSourceID) {
		fields = append(fields, goal.FieldSourceID)
	}
	if m.FieldCleared(goal.FieldCardIds) {
		fields = append(fields, goal.FieldCardIds)
	}
	if m.FieldCleared(goal.FieldLearningText) {
		fields = append(fields, goal.FieldLearningText)
	}
	if m.FieldCleared(goal.FieldLearningID) {
		fields = append(fields, goal.FieldLearningID)
	}
	if m.FieldCleared(goal.FieldError) {
		fields = append(fields, goal.FieldError)
	}
	if m.FieldCleared(goal.FieldStartedAt) {
		fields = append(fields, goal.FieldStartedAt)
	}
	if m.FieldCleared(goal.FieldCompletedAt) {
		fields = append(fields, goal.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GoalMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GoalMutation) ClearField(name string) error {
	switch name {
	case goal.FieldSourceID:
		m.ClearSourceID()
		return nil
	case goal.FieldCardIds:
		m.ClearCardIds()
		return nil
	case goal.FieldLearningText:
		m.ClearLearningText()
		return nil
	case goal.FieldLearningID:
		m.ClearLearningID()
		return nil
	case goal.FieldError:
		m.ClearError()
		return nil
	case goal.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case goal.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Goal nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GoalMutation) ResetField(name string) error {
	switch name {
	case goal.FieldDescription:
		m.ResetDescription()
		return nil
	case goal.FieldStatus:
		m.ResetStatus()
		return nil
	case goal.FieldSource:
		m.ResetSource()
		return nil
	case goal.FieldSourceID:
		m.ResetSourceID()
		return nil
	case goal.FieldCardIds:
		m.ResetCardIds()
		return nil
	case goal.FieldLearningText:
		m.ResetLearningText()
		return nil
	case goal.FieldLearningID:
		m.ResetLearningID()
		return nil
	case goal.FieldTotalTokens:
		m.ResetTotalTokens()
		return nil
	case goal.FieldTotalCostUsd:
		m.ResetTotalCostUsd()
		return nil
	case goal.FieldError:
		m.ResetError()
		return nil
	case goal.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case goal.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case goal.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Goal field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GoalMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cards != nil {
		edges = append(edges, goal.EdgeCards)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GoalMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case goal.EdgeCards:
		ids := make([]ent.Value, 0, len(m.cards))
		for id := range m.cards {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GoalMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedcards != nil {
		edges = append(edges, goal.EdgeCards)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GoalMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case goal.EdgeCards:
		ids := make([]ent.Value, 0, len(m.removedcards))
		for id := range m.removedcards {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GoalMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcards {
		edges = append(edges, goal.EdgeCards)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GoalMutation) EdgeCleared(name string) bool {
	switch name {
	case goal.EdgeCards:
		return m.clearedcards
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GoalMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Goal unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GoalMutation) ResetEdge(name string) error {
	switch name {
	case goal.EdgeCards:
		m.ResetCards()
		return nil
	}
	return fmt.Errorf("unknown Goal edge %s", name)
}

// MemoryEntryMutation represents an operation that mutates the MemoryEntry nodes in the graph.
type MemoryEntryMutation struct {
	config
	op            Op
	typ           string
	id            *string
	entry_type    *memoryentry.EntryType
	content       *string
	context       *map[string]interface{}
	goal_id       *string
	created_at    *time.Time
	expires_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*MemoryEntry, error)
	predicates    []predicate.MemoryEntry
}

var _ ent.Mutation = (*MemoryEntryMutation)(nil)

// memoryentryOption allows management of the mutation configuration using functional options.
type memoryentryOption func(*MemoryEntryMutation)

// newMemoryEntryMutation creates new mutation for the MemoryEntry entity.
func newMemoryEntryMutation(c config, op Op, opts ...memoryentryOption) *MemoryEntryMutation {
	m := &MemoryEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeMemoryEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMemoryEntryID sets the ID field of the mutation.
func withMemoryEntryID(id string) memoryentryOption {
	return func(m *MemoryEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *MemoryEntry
		)
		m.oldValue = func(ctx context.Context) (*MemoryEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MemoryEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMemoryEntry sets the old MemoryEntry of the mutation.
func withMemoryEntry(node *MemoryEntry) memoryentryOption {
	return func(m *MemoryEntryMutation) {
		m.oldValue = func(context.Context) (*MemoryEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MemoryEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MemoryEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MemoryEntry entities.
func (m *MemoryEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MemoryEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MemoryEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MemoryEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEntryType sets the "entry_type" field.
func (m *MemoryEntryMutation) SetEntryType(mt memoryentry.EntryType) {
	m.entry_type = &mt
}

// EntryType returns the value of the "entry_type" field in the mutation.
func (m *MemoryEntryMutation) EntryType() (r memoryentry.EntryType, exists bool) {
	v := m.entry_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntryType returns the old "entry_type" field's value of the MemoryEntry entity.
// If the MemoryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryEntryMutation) OldEntryType(ctx context.Context) (v memoryentry.EntryType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntryType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntryType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntryType: %w", err)
	}
	return oldValue.EntryType, nil
}

// ResetEntryType resets all changes to the "entry_type" field.
func (m *MemoryEntryMutation) ResetEntryType() {
	m.entry_type = nil
}

// SetContent sets the "content" field.
func (m *MemoryEntryMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *MemoryEntryMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the MemoryEntry entity.
// If the MemoryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryEntryMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *MemoryEntryMutation) ResetContent() {
	m.content = nil
}

// SetContext sets the "context" field.
func (m *MemoryEntryMutation) SetContext(value map[string]interface{}) {
	m.context = &value
}

// Context returns the value of the "context" field in the mutation.
func (m *MemoryEntryMutation) Context() (r map[string]interface{}, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the MemoryEntry entity.
// If the MemoryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryEntryMutation) OldContext(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// ClearContext clears the value of the "context" field.
func (m *MemoryEntryMutation) ClearContext() {
	m.context = nil
	m.clearedFields[memoryentry.FieldContext] = struct{}{}
}

// ContextCleared returns if the "context" field was cleared in this mutation.
func (m *MemoryEntryMutation) ContextCleared() bool {
	_, ok := m.clearedFields[memoryentry.FieldContext]
	return ok
}

// ResetContext resets all changes to the "context" field.
func (m *MemoryEntryMutation) ResetContext() {
	m.context = nil
	delete(m.clearedFields, memoryentry.FieldContext)
}

// SetGoalID sets the "goal_id" field.
func (m *MemoryEntryMutation) SetGoalID(s string) {
	m.goal_id = &s
}

// GoalID returns the value of the "goal_id" field in the mutation.
func (m *MemoryEntryMutation) GoalID() (r string, exists bool) {
	v := m.goal_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGoalID returns the old "goal_id" field's value of the MemoryEntry entity.
// If the MemoryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryEntryMutation) OldGoalID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoalID: %w", err)
	}
	return oldValue.GoalID, nil
}

// ClearGoalID clears the value of the "goal_id" field.
func (m *MemoryEntryMutation) ClearGoalID() {
	m.goal_id = nil
	m.clearedFields[memoryentry.FieldGoalID] = struct{}{}
}

// GoalIDCleared returns if the "goal_id" field was cleared in this mutation.
func (m *MemoryEntryMutation) GoalIDCleared() bool {
	_, ok := m.clearedFields[memoryentry.FieldGoalID]
	return ok
}

// ResetGoalID resets all changes to the "goal_id" field.
func (m *MemoryEntryMutation) ResetGoalID() {
	m.goal_id = nil
	delete(m.clearedFields, memoryentry.FieldGoalID)
}

// SetCreatedAt sets the "created_at" field.
func (m *MemoryEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MemoryEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MemoryEntry entity.
// If the MemoryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MemoryEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *MemoryEntryMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *MemoryEntryMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the MemoryEntry entity.
// If the MemoryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryEntryMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *MemoryEntryMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// Where appends a list predicates to the MemoryEntryMutation builder.
func (m *MemoryEntryMutation) Where(ps ...predicate.MemoryEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MemoryEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MemoryEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MemoryEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MemoryEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MemoryEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MemoryEntry).
func (m *MemoryEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MemoryEntryMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.entry_type != nil {
		fields = append(fields, memoryentry.FieldEntryType)
	}
	if m.content != nil {
		fields = append(fields, memoryentry.FieldContent)
	}
	if m.context != nil {
		fields = append(fields, memoryentry.FieldContext)
	}
	if m.goal_id != nil {
		fields = append(fields, memoryentry.FieldGoalID)
	}
	if m.created_at != nil {
		fields = append(fields, memoryentry.FieldCreatedAt)
	}
	if m.expires_at != nil {
		fields = append(fields, memoryentry.FieldExpiresAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MemoryEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case memoryentry.FieldEntryType:
		return m.EntryType()
	case memoryentry.FieldContent:
		return m.Content()
	case memoryentry.FieldContext:
		return m.Context()
	case memoryentry.FieldGoalID:
		return m.GoalID()
	case memoryentry.FieldCreatedAt:
		return m.CreatedAt()
	case memoryentry.FieldExpiresAt:
		return m.ExpiresAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MemoryEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case memoryentry.FieldEntryType:
		return m.OldEntryType(ctx)
	case memoryentry.FieldContent:
		return m.OldContent(ctx)
	case memoryentry.FieldContext:
		return m.OldContext(ctx)
	case memoryentry.FieldGoalID:
		return m.OldGoalID(ctx)
	case memoryentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case memoryentry.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	}
	return nil, fmt.Errorf("unknown MemoryEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MemoryEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case memoryentry.FieldEntryType:
		v, ok := value.(memoryentry.EntryType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntryType(v)
		return nil
	case memoryentry.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case memoryentry.FieldContext:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	case memoryentry.FieldGoalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoalID(v)
		return nil
	case memoryentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case memoryentry.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	}
	return fmt.Errorf("unknown MemoryEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MemoryEntryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MemoryEntryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MemoryEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown MemoryEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MemoryEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(memoryentry.FieldContext) {
		fields = append(fields, memoryentry.FieldContext)
	}
	if m.FieldCleared(memoryentry.FieldGoalID) {
		fields = append(fields, memoryentry.FieldGoalID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MemoryEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MemoryEntryMutation) ClearField(name string) error {
	switch name {
	case memoryentry.FieldContext:
		m.ClearContext()
		return nil
	case memoryentry.FieldGoalID:
		m.ClearGoalID()
		return nil
	}
	return fmt.Errorf("unknown MemoryEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MemoryEntryMutation) ResetField(name string) error {
	switch name {
	case memoryentry.FieldEntryType:
		m.ResetEntryType()
		return nil
	case memoryentry.FieldContent:
		m.ResetContent()
		return nil
	case memoryentry.FieldContext:
		m.ResetContext()
		return nil
	case memoryentry.FieldGoalID:
		m.ResetGoalID()
		return nil
	case memoryentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case memoryentry.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown MemoryEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MemoryEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MemoryEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MemoryEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MemoryEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MemoryEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MemoryEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MemoryEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MemoryEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MemoryEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MemoryEntry edge %s", name)
}

// OrchestratorActionMutation represents an operation that mutates the OrchestratorAction nodes in the graph.
type OrchestratorActionMutation struct {
	config
	op             Op
	typ            string
	id             *string
	decision       *string
	goal_id        *string
	card_ids       *[]string
	appendcard_ids []string
	reason         *string
	context        *map[string]interface{}
	success        *bool
	error          *string
	learning       *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*OrchestratorAction, error)
	predicates     []predicate.OrchestratorAction
}

var _ ent.Mutation = (*OrchestratorActionMutation)(nil)

// orchestratoractionOption allows management of the mutation configuration using functional options.
type orchestratoractionOption func(*OrchestratorActionMutation)

// newOrchestratorActionMutation creates new mutation for the OrchestratorAction entity.
func newOrchestratorActionMutation(c config, op Op, opts ...orchestratoractionOption) *OrchestratorActionMutation {
	m := &OrchestratorActionMutation{
		config:        c,
		op:            op,
		typ:           TypeOrchestratorAction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOrchestratorActionID sets the ID field of the mutation.
func withOrchestratorActionID(id string) orchestratoractionOption {
	return func(m *OrchestratorActionMutation) {
		var (
			err   error
			once  sync.Once
			value *OrchestratorAction
		)
		m.oldValue = func(ctx context.Context) (*OrchestratorAction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OrchestratorAction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOrchestratorAction sets the old OrchestratorAction of the mutation.
func withOrchestratorAction(node *OrchestratorAction) orchestratoractionOption {
	return func(m *OrchestratorActionMutation) {
		m.oldValue = func(context.Context) (*OrchestratorAction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OrchestratorActionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OrchestratorActionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of OrchestratorAction entities.
func (m *OrchestratorActionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OrchestratorActionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OrchestratorActionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OrchestratorAction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDecision sets the "decision" field.
func (m *OrchestratorActionMutation) SetDecision(s string) {
	m.decision = &s
}

// Decision returns the value of the "decision" field in the mutation.
func (m *OrchestratorActionMutation) Decision() (r string, exists bool) {
	v := m.decision
	if v == nil {
		return
	}
	return *v, true
}

// OldDecision returns the old "decision" field's value of the OrchestratorAction entity.
// If the OrchestratorAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestratorActionMutation) OldDecision(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecision is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecision requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecision: %w", err)
	}
	return oldValue.Decision, nil
}

// ResetDecision resets all changes to the "decision" field.
func (m *OrchestratorActionMutation) ResetDecision() {
	m.decision = nil
}

// SetGoalID sets the "goal_id" field.
func (m *OrchestratorActionMutation) SetGoalID(s string) {
	m.goal_id = &s
}

// GoalID returns the value of the "goal_id" field in the mutation.
func (m *OrchestratorActionMutation) GoalID() (r string, exists bool) {
	v := m.goal_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGoalID returns the old "goal_id" field's value of the OrchestratorAction entity.
// If the OrchestratorAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestratorActionMutation) OldGoalID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoalID: %w", err)
	}
	return oldValue.GoalID, nil
}

// ClearGoalID clears the value of the "goal_id" field.
func (m *OrchestratorActionMutation) ClearGoalID() {
	m.goal_id = nil
	m.clearedFields[orchestratoraction.FieldGoalID] = struct{}{}
}

// GoalIDCleared returns if the "goal_id" field was cleared in this mutation.
func (m *OrchestratorActionMutation) GoalIDCleared() bool {
	_, ok := m.clearedFields[orchestratoraction.FieldGoalID]
	return ok
}

// ResetGoalID resets all changes to the "goal_id" field.
func (m *OrchestratorActionMutation) ResetGoalID() {
	m.goal_id = nil
	delete(m.clearedFields, orchestratoraction.FieldGoalID)
}

// SetCardIds sets the "card_ids" field.
func (m *OrchestratorActionMutation) SetCardIds(s []string) {
	m.card_ids = &s
	m.appendcard_ids = nil
}

// CardIds returns the value of the "card_ids" field in the mutation.
func (m *OrchestratorActionMutation) CardIds() (r []string, exists bool) {
	v := m.card_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldCardIds returns the old "card_ids" field's value of the OrchestratorAction entity.
// If the OrchestratorAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestratorActionMutation) OldCardIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCardIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCardIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCardIds: %w", err)
	}
	return oldValue.CardIds, nil
}

// AppendCardIds adds s to the "card_ids" field.
func (m *OrchestratorActionMutation) AppendCardIds(s []string) {
	m.appendcard_ids = append(m.appendcard_ids, s...)
}

// AppendedCardIds returns the list of values that were appended to the "card_ids" field in this mutation.
func (m *OrchestratorActionMutation) AppendedCardIds() ([]string, bool) {
	if len(m.appendcard_ids) == 0 {
		return nil, false
	}
	return m.appendcard_ids, true
}

// ClearCardIds clears the value of the "card_ids" field.
func (m *OrchestratorActionMutation) ClearCardIds() {
	m.card_ids = nil
	m.appendcard_ids = nil
	m.clearedFields[orchestratoraction.FieldCardIds] = struct{}{}
}

// CardIdsCleared returns if the "card_ids" field was cleared in this mutation.
func (m *OrchestratorActionMutation) CardIdsCleared() bool {
	_, ok := m.clearedFields[orchestratoraction.FieldCardIds]
	return ok
}

// ResetCardIds resets all changes to the "card_ids" field.
func (m *OrchestratorActionMutation) ResetCardIds() {
	m.card_ids = nil
	m.appendcard_ids = nil
	delete(m.clearedFields, orchestratoraction.FieldCardIds)
}

// SetReason sets the "reason" field.
func (m *OrchestratorActionMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *OrchestratorActionMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the OrchestratorAction entity.
// If the OrchestratorAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestratorActionMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *OrchestratorActionMutation) ResetReason() {
	m.reason = nil
}

// SetContext sets the "context" field.
func (m *OrchestratorActionMutation) SetContext(value map[string]interface{}) {
	m.context = &value
}

// Context returns the value of the "context" field in the mutation.
func (m *OrchestratorActionMutation) Context() (r map[string]interface{}, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the OrchestratorAction entity.
// If the OrchestratorAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestratorActionMutation) OldContext(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// ClearContext clears the value of the "context" field.
func (m *OrchestratorActionMutation) ClearContext() {
	m.context = nil
	m.clearedFields[orchestratoraction.FieldContext] = struct{}{}
}

// ContextCleared returns if the "context" field was cleared in this mutation.
func (m *OrchestratorActionMutation) ContextCleared() bool {
	_, ok := m.clearedFields[orchestratoraction.FieldContext]
	return ok
}

// ResetContext resets all changes to the "context" field.
func (m *OrchestratorActionMutation) ResetContext() {
	m.context = nil
	delete(m.clearedFields, orchestratoraction.FieldContext)
}

// SetSuccess sets the "success" field.
func (m *OrchestratorActionMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *OrchestratorActionMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the OrchestratorAction entity.
// If the OrchestratorAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestratorActionMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *OrchestratorActionMutation) ResetSuccess() {
	m.success = nil
}

// SetError sets the "error" field.
func (m *OrchestratorActionMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *OrchestratorActionMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the OrchestratorAction entity.
// If the OrchestratorAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestratorActionMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *OrchestratorActionMutation) ClearError() {
	m.error = nil
	m.clearedFields[orchestratoraction.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *OrchestratorActionMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[orchestratoraction.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *OrchestratorActionMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, orchestratoraction.FieldError)
}

// SetLearning sets the "learning" field.
func (m *OrchestratorActionMutation) SetLearning(s string) {
	m.learning = &s
}

// Learning returns the value of the "learning" field in the mutation.
func (m *OrchestratorActionMutation) Learning() (r string, exists bool) {
	v := m.learning
	if v == nil {
		return
	}
	return *v, true
}

// OldLearning returns the old "learning" field's value of the OrchestratorAction entity.
// If the OrchestratorAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestratorActionMutation) OldLearning(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearning: %w", err)
	}
	return oldValue.Learning, nil
}

// ClearLearning clears the value of the "learning" field.
func (m *OrchestratorActionMutation) ClearLearning() {
	m.learning = nil
	m.clearedFields[orchestratoraction.FieldLearning] = struct{}{}
}

// LearningCleared returns if the "learning" field was cleared in this mutation.
func (m *OrchestratorActionMutation) LearningCleared() bool {
	_, ok := m.clearedFields[orchestratoraction.FieldLearning]
	return ok
}

// ResetLearning resets all changes to the "learning" field.
func (m *OrchestratorActionMutation) ResetLearning() {
	m.learning = nil
	delete(m.clearedFields, orchestratoraction.FieldLearning)
}

// SetCreatedAt sets the "created_at" field.
func (m *OrchestratorActionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OrchestratorActionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the OrchestratorAction entity.
// If the OrchestratorAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestratorActionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OrchestratorActionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the OrchestratorActionMutation builder.
func (m *OrchestratorActionMutation) Where(ps ...predicate.OrchestratorAction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OrchestratorActionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OrchestratorActionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OrchestratorAction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OrchestratorActionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OrchestratorActionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OrchestratorAction).
func (m *OrchestratorActionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OrchestratorActionMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.decision != nil {
		fields = append(fields, orchestratoraction.FieldDecision)
	}
	if m.goal_id != nil {
		fields = append(fields, orchestratoraction.FieldGoalID)
	}
	if m.card_ids != nil {
		fields = append(fields, orchestratoraction.FieldCardIds)
	}
	if m.reason != nil {
		fields = append(fields, orchestratoraction.FieldReason)
	}
	if m.context != nil {
		fields = append(fields, orchestratoraction.FieldContext)
	}
	if m.success != nil {
		fields = append(fields, orchestratoraction.FieldSuccess)
	}
	if m.error != nil {
		fields = append(fields, orchestratoraction.FieldError)
	}
	if m.learning != nil {
		fields = append(fields, orchestratoraction.FieldLearning)
	}
	if m.created_at != nil {
		fields = append(fields, orchestratoraction.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OrchestratorActionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case orchestratoraction.FieldDecision:
		return m.Decision()
	case orchestratoraction.FieldGoalID:
		return m.GoalID()
	case orchestratoraction.FieldCardIds:
		return m.CardIds()
	case orchestratoraction.FieldReason:
		return m.Reason()
	case orchestratoraction.FieldContext:
		return m.Context()
	case orchestratoraction.FieldSuccess:
		return m.Success()
	case orchestratoraction.FieldError:
		return m.Error()
	case orchestratoraction.FieldLearning:
		return m.Learning()
	case orchestratoraction.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OrchestratorActionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case orchestratoraction.FieldDecision:
		return m.OldDecision(ctx)
	case orchestratoraction.FieldGoalID:
		return m.OldGoalID(ctx)
	case orchestratoraction.FieldCardIds:
		return m.OldCardIds(ctx)
	case orchestratoraction.FieldReason:
		return m.OldReason(ctx)
	case orchestratoraction.FieldContext:
		return m.OldContext(ctx)
	case orchestratoraction.FieldSuccess:
		return m.OldSuccess(ctx)
	case orchestratoraction.FieldError:
		return m.OldError(ctx)
	case orchestratoraction.FieldLearning:
		return m.OldLearning(ctx)
	case orchestratoraction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown OrchestratorAction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrchestratorActionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case orchestratoraction.FieldDecision:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecision(v)
		return nil
	case orchestratoraction.FieldGoalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoalID(v)
		return nil
	case orchestratoraction.FieldCardIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCardIds(v)
		return nil
	case orchestratoraction.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case orchestratoraction.FieldContext:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	case orchestratoraction.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case orchestratoraction.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case orchestratoraction.FieldLearning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearning(v)
		return nil
	case orchestratoraction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown OrchestratorAction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OrchestratorActionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OrchestratorActionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrchestratorActionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown OrchestratorAction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OrchestratorActionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(orchestratoraction.FieldGoalID) {
		fields = append(fields, orchestratoraction.FieldGoalID)
	}
	if m.FieldCleared(orchestratoraction.FieldCardIds) {
		fields = append(fields, orchestratoraction.FieldCardIds)
	}
	if m.FieldCleared(orchestratoraction.FieldContext) {
		fields = append(fields, orchestratoraction.FieldContext)
	}
	if m.FieldCleared(orchestratoraction.FieldError) {
		fields = append(fields, orchestratoraction.FieldError)
	}
	if m.FieldCleared(orchestratoraction.FieldLearning) {
		fields = append(fields, orchestratoraction.FieldLearning)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OrchestratorActionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OrchestratorActionMutation) ClearField(name string) error {
	switch name {
	case orchestratoraction.FieldGoalID:
		m.ClearGoalID()
		return nil
	case orchestratoraction.FieldCardIds:
		m.ClearCardIds()
		return nil
	case orchestratoraction.FieldContext:
		m.ClearContext()
		return nil
	case orchestratoraction.FieldError:
		m.ClearError()
		return nil
	case orchestratoraction.FieldLearning:
		m.ClearLearning()
		return nil
	}
	return fmt.Errorf("unknown OrchestratorAction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OrchestratorActionMutation) ResetField(name string) error {
	switch name {
	case orchestratoraction.FieldDecision:
		m.ResetDecision()
		return nil
	case orchestratoraction.FieldGoalID:
		m.ResetGoalID()
		return nil
	case orchestratoraction.FieldCardIds:
		m.ResetCardIds()
		return nil
	case orchestratoraction.FieldReason:
		m.ResetReason()
		return nil
	case orchestratoraction.FieldContext:
		m.ResetContext()
		return nil
	case orchestratoraction.FieldSuccess:
		m.ResetSuccess()
		return nil
	case orchestratoraction.FieldError:
		m.ResetError()
		return nil
	case orchestratoraction.FieldLearning:
		m.ResetLearning()
		return nil
	case orchestratoraction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown OrchestratorAction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OrchestratorActionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OrchestratorActionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OrchestratorActionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OrchestratorActionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OrchestratorActionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OrchestratorActionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OrchestratorActionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown OrchestratorAction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OrchestratorActionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown OrchestratorAction edge %s", name)
}

// OrchestratorLogMutation represents an operation that mutates the OrchestratorLog nodes in the graph.
type OrchestratorLogMutation struct {
	config
	op            Op
	typ           string
	id            *int
	level         *orchestratorlog.Level
	message       *string
	context       *map[string]interface{}
	goal_id       *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*OrchestratorLog, error)
	predicates    []predicate.OrchestratorLog
}

var _ ent.Mutation = (*OrchestratorLogMutation)(nil)

// orchestratorlogOption allows management of the mutation configuration using functional options.
type orchestratorlogOption func(*OrchestratorLogMutation)

// newOrchestratorLogMutation creates new mutation for the OrchestratorLog entity.
func newOrchestratorLogMutation(c config, op Op, opts ...orchestratorlogOption) *OrchestratorLogMutation {
	m := &OrchestratorLogMutation{
		config:        c,
		op:            op,
		typ:           TypeOrchestratorLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOrchestratorLogID sets the ID field of the mutation.
func withOrchestratorLogID(id int) orchestratorlogOption {
	return func(m *OrchestratorLogMutation) {
		var (
			err   error
			once  sync.Once
			value *OrchestratorLog
		)
		m.oldValue = func(ctx context.Context) (*OrchestratorLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OrchestratorLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOrchestratorLog sets the old OrchestratorLog of the mutation.
func withOrchestratorLog(node *OrchestratorLog) orchestratorlogOption {
	return func(m *OrchestratorLogMutation) {
		m.oldValue = func(context.Context) (*OrchestratorLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OrchestratorLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OrchestratorLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OrchestratorLogMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OrchestratorLogMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OrchestratorLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLevel sets the "level" field.
func (m *OrchestratorLogMutation) SetLevel(o orchestratorlog.Level) {
	m.level = &o
}

// Level returns the value of the "level" field in the mutation.
func (m *OrchestratorLogMutation) Level() (r orchestratorlog.Level, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the OrchestratorLog entity.
// If the OrchestratorLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestratorLogMutation) OldLevel(ctx context.Context) (v orchestratorlog.Level, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *OrchestratorLogMutation) ResetLevel() {
	m.level = nil
}

// SetMessage sets the "message" field.
func (m *OrchestratorLogMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *OrchestratorLogMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the OrchestratorLog entity.
// If the OrchestratorLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestratorLogMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *OrchestratorLogMutation) ResetMessage() {
	m.message = nil
}

// SetContext sets the "context" field.
func (m *OrchestratorLogMutation) SetContext(value map[string]interface{}) {
	m.context = &value
}

// Context returns the value of the "context" field in the mutation.
func (m *OrchestratorLogMutation) Context() (r map[string]interface{}, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the OrchestratorLog entity.
// If the OrchestratorLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestratorLogMutation) OldContext(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// ClearContext clears the value of the "context" field.
func (m *OrchestratorLogMutation) ClearContext() {
	m.context = nil
	m.clearedFields[orchestratorlog.FieldContext] = struct{}{}
}

// ContextCleared returns if the "context" field was cleared in this mutation.
func (m *OrchestratorLogMutation) ContextCleared() bool {
	_, ok := m.clearedFields[orchestratorlog.FieldContext]
	return ok
}

// ResetContext resets all changes to the "context" field.
func (m *OrchestratorLogMutation) ResetContext() {
	m.context = nil
	delete(m.clearedFields, orchestratorlog.FieldContext)
}

// SetGoalID sets the "goal_id" field.
func (m *OrchestratorLogMutation) SetGoalID(s string) {
	m.goal_id = &s
}

// GoalID returns the value of the "goal_id" field in the mutation.
func (m *OrchestratorLogMutation) GoalID() (r string, exists bool) {
	v := m.goal_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGoalID returns the old "goal_id" field's value of the OrchestratorLog entity.
// If the OrchestratorLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestratorLogMutation) OldGoalID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoalID: %w", err)
	}
	return oldValue.GoalID, nil
}

// ClearGoalID clears the value of the "goal_id" field.
func (m *OrchestratorLogMutation) ClearGoalID() {
	m.goal_id = nil
	m.clearedFields[orchestratorlog.FieldGoalID] = struct{}{}
}

// GoalIDCleared returns if the "goal_id" field was cleared in this mutation.
func (m *OrchestratorLogMutation) GoalIDCleared() bool {
	_, ok := m.clearedFields[orchestratorlog.FieldGoalID]
	return ok
}

// ResetGoalID resets all changes to the "goal_id" field.
func (m *OrchestratorLogMutation) ResetGoalID() {
	m.goal_id = nil
	delete(m.clearedFields, orchestratorlog.FieldGoalID)
}

// SetCreatedAt sets the "created_at" field.
func (m *OrchestratorLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OrchestratorLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the OrchestratorLog entity.
// If the OrchestratorLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestratorLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OrchestratorLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the OrchestratorLogMutation builder.
func (m *OrchestratorLogMutation) Where(ps ...predicate.OrchestratorLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OrchestratorLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OrchestratorLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OrchestratorLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OrchestratorLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OrchestratorLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OrchestratorLog).
func (m *OrchestratorLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OrchestratorLogMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.level != nil {
		fields = append(fields, orchestratorlog.FieldLevel)
	}
	if m.message != nil {
		fields = append(fields, orchestratorlog.FieldMessage)
	}
	if m.context != nil {
		fields = append(fields, orchestratorlog.FieldContext)
	}
	if m.goal_id != nil {
		fields = append(fields, orchestratorlog.FieldGoalID)
	}
	if m.created_at != nil {
		fields = append(fields, orchestratorlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OrchestratorLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case orchestratorlog.FieldLevel:
		return m.Level()
	case orchestratorlog.FieldMessage:
		return m.Message()
	case orchestratorlog.FieldContext:
		return m.Context()
	case orchestratorlog.FieldGoalID:
		return m.GoalID()
	case orchestratorlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OrchestratorLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case orchestratorlog.FieldLevel:
		return m.OldLevel(ctx)
	case orchestratorlog.FieldMessage:
		return m.OldMessage(ctx)
	case orchestratorlog.FieldContext:
		return m.OldContext(ctx)
	case orchestratorlog.FieldGoalID:
		return m.OldGoalID(ctx)
	case orchestratorlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown OrchestratorLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrchestratorLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case orchestratorlog.FieldLevel:
		v, ok := value.(orchestratorlog.Level)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case orchestratorlog.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case orchestratorlog.FieldContext:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	case orchestratorlog.FieldGoalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoalID(v)
		return nil
	case orchestratorlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown OrchestratorLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OrchestratorLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OrchestratorLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrchestratorLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown OrchestratorLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OrchestratorLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(orchestratorlog.FieldContext) {
		fields = append(fields, orchestratorlog.FieldContext)
	}
	if m.FieldCleared(orchestratorlog.FieldGoalID) {
		fields = append(fields, orchestratorlog.FieldGoalID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OrchestratorLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OrchestratorLogMutation) ClearField(name string) error {
	switch name {
	case orchestratorlog.FieldContext:
		m.ClearContext()
		return nil
	case orchestratorlog.FieldGoalID:
		m.ClearGoalID()
		return nil
	}
	return fmt.Errorf("unknown OrchestratorLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OrchestratorLogMutation) ResetField(name string) error {
	switch name {
	case orchestratorlog.FieldLevel:
		m.ResetLevel()
		return nil
	case orchestratorlog.FieldMessage:
		m.ResetMessage()
		return nil
	case orchestratorlog.FieldContext:
		m.ResetContext()
		return nil
	case orchestratorlog.FieldGoalID:
		m.ResetGoalID()
		return nil
	case orchestratorlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown OrchestratorLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OrchestratorLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OrchestratorLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OrchestratorLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OrchestratorLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OrchestratorLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OrchestratorLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OrchestratorLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown OrchestratorLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OrchestratorLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown OrchestratorLog edge %s", name)
}
