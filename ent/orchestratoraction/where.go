// Code generated by ent, DO NOT EDIT.

package orchestratoraction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/cardsmith/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldContainsFold(FieldID, id))
}

// Decision applies equality check predicate on the "decision" field. It's identical to DecisionEQ.
func Decision(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldEQ(FieldDecision, v))
}

// GoalID applies equality check predicate on the "goal_id" field. It's identical to GoalIDEQ.
func GoalID(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldEQ(FieldGoalID, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldEQ(FieldReason, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldEQ(FieldSuccess, v))
}

// Error applies equality check predicate on the "error" field. It's identical to ErrorEQ.
func Error(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldEQ(FieldError, v))
}

// Learning applies equality check predicate on the "learning" field. It's identical to LearningEQ.
func Learning(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldEQ(FieldLearning, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldEQ(FieldCreatedAt, v))
}

// DecisionEQ applies the EQ predicate on the "decision" field.
func DecisionEQ(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldEQ(FieldDecision, v))
}

// DecisionNEQ applies the NEQ predicate on the "decision" field.
func DecisionNEQ(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldNEQ(FieldDecision, v))
}

// DecisionIn applies the In predicate on the "decision" field.
func DecisionIn(vs ...string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldIn(FieldDecision, vs...))
}

// DecisionNotIn applies the NotIn predicate on the "decision" field.
func DecisionNotIn(vs ...string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldNotIn(FieldDecision, vs...))
}

// DecisionGT applies the GT predicate on the "decision" field.
func DecisionGT(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldGT(FieldDecision, v))
}

// DecisionGTE applies the GTE predicate on the "decision" field.
func DecisionGTE(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldGTE(FieldDecision, v))
}

// DecisionLT applies the LT predicate on the "decision" field.
func DecisionLT(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldLT(FieldDecision, v))
}

// DecisionLTE applies the LTE predicate on the "decision" field.
func DecisionLTE(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldLTE(FieldDecision, v))
}

// DecisionContains applies the Contains predicate on the "decision" field.
func DecisionContains(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldContains(FieldDecision, v))
}

// DecisionHasPrefix applies the HasPrefix predicate on the "decision" field.
func DecisionHasPrefix(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldHasPrefix(FieldDecision, v))
}

// DecisionHasSuffix applies the HasSuffix predicate on the "decision" field.
func DecisionHasSuffix(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldHasSuffix(FieldDecision, v))
}

// DecisionEqualFold applies the EqualFold predicate on the "decision" field.
func DecisionEqualFold(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldEqualFold(FieldDecision, v))
}

// DecisionContainsFold applies the ContainsFold predicate on the "decision" field.
func DecisionContainsFold(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldContainsFold(FieldDecision, v))
}

// GoalIDEQ applies the EQ predicate on the "goal_id" field.
func GoalIDEQ(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldEQ(FieldGoalID, v))
}

// GoalIDNEQ applies the NEQ predicate on the "goal_id" field.
func GoalIDNEQ(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldNEQ(FieldGoalID, v))
}

// GoalIDIn applies the In predicate on the "goal_id" field.
func GoalIDIn(vs ...string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldIn(FieldGoalID, vs...))
}

// GoalIDNotIn applies the NotIn predicate on the "goal_id" field.
func GoalIDNotIn(vs ...string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldNotIn(FieldGoalID, vs...))
}

// GoalIDGT applies the GT predicate on the "goal_id" field.
func GoalIDGT(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldGT(FieldGoalID, v))
}

// GoalIDGTE applies the GTE predicate on the "goal_id" field.
func GoalIDGTE(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldGTE(FieldGoalID, v))
}

// GoalIDLT applies the LT predicate on the "goal_id" field.
func GoalIDLT(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldLT(FieldGoalID, v))
}

// GoalIDLTE applies the LTE predicate on the "goal_id" field.
func GoalIDLTE(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldLTE(FieldGoalID, v))
}

// GoalIDContains applies the Contains predicate on the "goal_id" field.
func GoalIDContains(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldContains(FieldGoalID, v))
}

// GoalIDHasPrefix applies the HasPrefix predicate on the "goal_id" field.
func GoalIDHasPrefix(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldHasPrefix(FieldGoalID, v))
}

// GoalIDHasSuffix applies the HasSuffix predicate on the "goal_id" field.
func GoalIDHasSuffix(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldHasSuffix(FieldGoalID, v))
}

// GoalIDIsNil applies the IsNil predicate on the "goal_id" field.
func GoalIDIsNil() predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldIsNull(FieldGoalID))
}

// GoalIDNotNil applies the NotNil predicate on the "goal_id" field.
func GoalIDNotNil() predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldNotNull(FieldGoalID))
}

// GoalIDEqualFold applies the EqualFold predicate on the "goal_id" field.
func GoalIDEqualFold(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldEqualFold(FieldGoalID, v))
}

// GoalIDContainsFold applies the ContainsFold predicate on the "goal_id" field.
func GoalIDContainsFold(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldContainsFold(FieldGoalID, v))
}

// CardIdsIsNil applies the IsNil predicate on the "card_ids" field.
func CardIdsIsNil() predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldIsNull(FieldCardIds))
}

// CardIdsNotNil applies the NotNil predicate on the "card_ids" field.
func CardIdsNotNil() predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldNotNull(FieldCardIds))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldContainsFold(FieldReason, v))
}

// ContextIsNil applies the IsNil predicate on the "context" field.
func ContextIsNil() predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldIsNull(FieldContext))
}

// ContextNotNil applies the NotNil predicate on the "context" field.
func ContextNotNil() predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldNotNull(FieldContext))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldNEQ(FieldSuccess, v))
}

// ErrorEQ applies the EQ predicate on the "error" field.
func ErrorEQ(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldEQ(FieldError, v))
}

// ErrorNEQ applies the NEQ predicate on the "error" field.
func ErrorNEQ(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldNEQ(FieldError, v))
}

// ErrorIn applies the In predicate on the "error" field.
func ErrorIn(vs ...string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldIn(FieldError, vs...))
}

// ErrorNotIn applies the NotIn predicate on the "error" field.
func ErrorNotIn(vs ...string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldNotIn(FieldError, vs...))
}

// ErrorGT applies the GT predicate on the "error" field.
func ErrorGT(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldGT(FieldError, v))
}

// ErrorGTE applies the GTE predicate on the "error" field.
func ErrorGTE(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldGTE(FieldError, v))
}

// ErrorLT applies the LT predicate on the "error" field.
func ErrorLT(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldLT(FieldError, v))
}

// ErrorLTE applies the LTE predicate on the "error" field.
func ErrorLTE(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldLTE(FieldError, v))
}

// ErrorContains applies the Contains predicate on the "error" field.
func ErrorContains(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldContains(FieldError, v))
}

// ErrorHasPrefix applies the HasPrefix predicate on the "error" field.
func ErrorHasPrefix(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldHasPrefix(FieldError, v))
}

// ErrorHasSuffix applies the HasSuffix predicate on the "error" field.
func ErrorHasSuffix(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldHasSuffix(FieldError, v))
}

// ErrorIsNil applies the IsNil predicate on the "error" field.
func ErrorIsNil() predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldIsNull(FieldError))
}

// ErrorNotNil applies the NotNil predicate on the "error" field.
func ErrorNotNil() predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldNotNull(FieldError))
}

// ErrorEqualFold applies the EqualFold predicate on the "error" field.
func ErrorEqualFold(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldEqualFold(FieldError, v))
}

// ErrorContainsFold applies the ContainsFold predicate on the "error" field.
func ErrorContainsFold(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldContainsFold(FieldError, v))
}

// LearningEQ applies the EQ predicate on the "learning" field.
func LearningEQ(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldEQ(FieldLearning, v))
}

// LearningNEQ applies the NEQ predicate on the "learning" field.
func LearningNEQ(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldNEQ(FieldLearning, v))
}

// LearningIn applies the In predicate on the "learning" field.
func LearningIn(vs ...string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldIn(FieldLearning, vs...))
}

// LearningNotIn applies the NotIn predicate on the "learning" field.
func LearningNotIn(vs ...string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldNotIn(FieldLearning, vs...))
}

// LearningGT applies the GT predicate on the "learning" field.
func LearningGT(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldGT(FieldLearning, v))
}

// LearningGTE applies the GTE predicate on the "learning" field.
func LearningGTE(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldGTE(FieldLearning, v))
}

// LearningLT applies the LT predicate on the "learning" field.
func LearningLT(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldLT(FieldLearning, v))
}

// LearningLTE applies the LTE predicate on the "learning" field.
func LearningLTE(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldLTE(FieldLearning, v))
}

// LearningContains applies the Contains predicate on the "learning" field.
func LearningContains(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldContains(FieldLearning, v))
}

// LearningHasPrefix applies the HasPrefix predicate on the "learning" field.
func LearningHasPrefix(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldHasPrefix(FieldLearning, v))
}

// LearningHasSuffix applies the HasSuffix predicate on the "learning" field.
func LearningHasSuffix(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldHasSuffix(FieldLearning, v))
}

// LearningIsNil applies the IsNil predicate on the "learning" field.
func LearningIsNil() predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldIsNull(FieldLearning))
}

// LearningNotNil applies the NotNil predicate on the "learning" field.
func LearningNotNil() predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldNotNull(FieldLearning))
}

// LearningEqualFold applies the EqualFold predicate on the "learning" field.
func LearningEqualFold(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldEqualFold(FieldLearning, v))
}

// LearningContainsFold applies the ContainsFold predicate on the "learning" field.
func LearningContainsFold(v string) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldContainsFold(FieldLearning, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.OrchestratorAction) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.OrchestratorAction) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.OrchestratorAction) predicate.OrchestratorAction {
	return predicate.OrchestratorAction(sql.NotPredicates(p))
}
