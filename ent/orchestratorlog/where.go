// Code generated by ent, DO NOT EDIT.

package orchestratorlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/cardsmith/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldLTE(FieldID, id))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldEQ(FieldMessage, v))
}

// GoalID applies equality check predicate on the "goal_id" field. It's identical to GoalIDEQ.
func GoalID(v string) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldEQ(FieldGoalID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldEQ(FieldCreatedAt, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v Level) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v Level) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...Level) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...Level) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldNotIn(FieldLevel, vs...))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldContainsFold(FieldMessage, v))
}

// ContextIsNil applies the IsNil predicate on the "context" field.
func ContextIsNil() predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldIsNull(FieldContext))
}

// ContextNotNil applies the NotNil predicate on the "context" field.
func ContextNotNil() predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldNotNull(FieldContext))
}

// GoalIDEQ applies the EQ predicate on the "goal_id" field.
func GoalIDEQ(v string) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldEQ(FieldGoalID, v))
}

// GoalIDNEQ applies the NEQ predicate on the "goal_id" field.
func GoalIDNEQ(v string) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldNEQ(FieldGoalID, v))
}

// GoalIDIn applies the In predicate on the "goal_id" field.
func GoalIDIn(vs ...string) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldIn(FieldGoalID, vs...))
}

// GoalIDNotIn applies the NotIn predicate on the "goal_id" field.
func GoalIDNotIn(vs ...string) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldNotIn(FieldGoalID, vs...))
}

// GoalIDGT applies the GT predicate on the "goal_id" field.
func GoalIDGT(v string) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldGT(FieldGoalID, v))
}

// GoalIDGTE applies the GTE predicate on the "goal_id" field.
func GoalIDGTE(v string) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldGTE(FieldGoalID, v))
}

// GoalIDLT applies the LT predicate on the "goal_id" field.
func GoalIDLT(v string) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldLT(FieldGoalID, v))
}

// GoalIDLTE applies the LTE predicate on the "goal_id" field.
func GoalIDLTE(v string) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldLTE(FieldGoalID, v))
}

// GoalIDContains applies the Contains predicate on the "goal_id" field.
func GoalIDContains(v string) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldContains(FieldGoalID, v))
}

// GoalIDHasPrefix applies the HasPrefix predicate on the "goal_id" field.
func GoalIDHasPrefix(v string) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldHasPrefix(FieldGoalID, v))
}

// GoalIDHasSuffix applies the HasSuffix predicate on the "goal_id" field.
func GoalIDHasSuffix(v string) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldHasSuffix(FieldGoalID, v))
}

// GoalIDIsNil applies the IsNil predicate on the "goal_id" field.
func GoalIDIsNil() predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldIsNull(FieldGoalID))
}

// GoalIDNotNil applies the NotNil predicate on the "goal_id" field.
func GoalIDNotNil() predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldNotNull(FieldGoalID))
}

// GoalIDEqualFold applies the EqualFold predicate on the "goal_id" field.
func GoalIDEqualFold(v string) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldEqualFold(FieldGoalID, v))
}

// GoalIDContainsFold applies the ContainsFold predicate on the "goal_id" field.
func GoalIDContainsFold(v string) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldContainsFold(FieldGoalID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.OrchestratorLog) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.OrchestratorLog) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.OrchestratorLog) predicate.OrchestratorLog {
	return predicate.OrchestratorLog(sql.NotPredicates(p))
}
