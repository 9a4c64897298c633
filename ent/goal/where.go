// Code generated by ent, DO NOT EDIT.

package goal

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeready-toolchain/cardsmith/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Goal {
	return predicate.Goal(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Goal {
	return predicate.Goal(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Goal {
	return predicate.Goal(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Goal {
	return predicate.Goal(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Goal {
	return predicate.Goal(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Goal {
	return predicate.Goal(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Goal {
	return predicate.Goal(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Goal {
	return predicate.Goal(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Goal {
	return predicate.Goal(sql.FieldContainsFold(FieldID, id))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldDescription, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldSource, v))
}

// SourceID applies equality check predicate on the "source_id" field. It's identical to SourceIDEQ.
func SourceID(v string) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldSourceID, v))
}

// LearningText applies equality check predicate on the "learning_text" field. It's identical to LearningTextEQ.
func LearningText(v string) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldLearningText, v))
}

// LearningID applies equality check predicate on the "learning_id" field. It's identical to LearningIDEQ.
func LearningID(v string) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldLearningID, v))
}

// TotalTokens applies equality check predicate on the "total_tokens" field. It's identical to TotalTokensEQ.
func TotalTokens(v int) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldTotalTokens, v))
}

// TotalCostUsd applies equality check predicate on the "total_cost_usd" field. It's identical to TotalCostUsdEQ.
func TotalCostUsd(v float64) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldTotalCostUsd, v))
}

// Error applies equality check predicate on the "error" field. It's identical to ErrorEQ.
func Error(v string) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldCompletedAt, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Goal {
	return predicate.Goal(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Goal {
	return predicate.Goal(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Goal {
	return predicate.Goal(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Goal {
	return predicate.Goal(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Goal {
	return predicate.Goal(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Goal {
	return predicate.Goal(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Goal {
	return predicate.Goal(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Goal {
	return predicate.Goal(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Goal {
	return predicate.Goal(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Goal {
	return predicate.Goal(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Goal {
	return predicate.Goal(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Goal {
	return predicate.Goal(sql.FieldContainsFold(FieldDescription, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Goal {
	return predicate.Goal(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Goal {
	return predicate.Goal(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Goal {
	return predicate.Goal(sql.FieldNotIn(FieldStatus, vs...))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.Goal {
	return predicate.Goal(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.Goal {
	return predicate.Goal(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.Goal {
	return predicate.Goal(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.Goal {
	return predicate.Goal(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.Goal {
	return predicate.Goal(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.Goal {
	return predicate.Goal(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.Goal {
	return predicate.Goal(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.Goal {
	return predicate.Goal(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.Goal {
	return predicate.Goal(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.Goal {
	return predicate.Goal(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.Goal {
	return predicate.Goal(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.Goal {
	return predicate.Goal(sql.FieldContainsFold(FieldSource, v))
}

// SourceIDEQ applies the EQ predicate on the "source_id" field.
func SourceIDEQ(v string) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldSourceID, v))
}

// SourceIDNEQ applies the NEQ predicate on the "source_id" field.
func SourceIDNEQ(v string) predicate.Goal {
	return predicate.Goal(sql.FieldNEQ(FieldSourceID, v))
}

// SourceIDIn applies the In predicate on the "source_id" field.
func SourceIDIn(vs ...string) predicate.Goal {
	return predicate.Goal(sql.FieldIn(FieldSourceID, vs...))
}

// SourceIDNotIn applies the NotIn predicate on the "source_id" field.
func SourceIDNotIn(vs ...string) predicate.Goal {
	return predicate.Goal(sql.FieldNotIn(FieldSourceID, vs...))
}

// SourceIDGT applies the GT predicate on the "source_id" field.
func SourceIDGT(v string) predicate.Goal {
	return predicate.Goal(sql.FieldGT(FieldSourceID, v))
}

// SourceIDGTE applies the GTE predicate on the "source_id" field.
func SourceIDGTE(v string) predicate.Goal {
	return predicate.Goal(sql.FieldGTE(FieldSourceID, v))
}

// SourceIDLT applies the LT predicate on the "source_id" field.
func SourceIDLT(v string) predicate.Goal {
	return predicate.Goal(sql.FieldLT(FieldSourceID, v))
}

// SourceIDLTE applies the LTE predicate on the "source_id" field.
func SourceIDLTE(v string) predicate.Goal {
	return predicate.Goal(sql.FieldLTE(FieldSourceID, v))
}

// SourceIDContains applies the Contains predicate on the "source_id" field.
func SourceIDContains(v string) predicate.Goal {
	return predicate.Goal(sql.FieldContains(FieldSourceID, v))
}

// SourceIDHasPrefix applies the HasPrefix predicate on the "source_id" field.
func SourceIDHasPrefix(v string) predicate.Goal {
	return predicate.Goal(sql.FieldHasPrefix(FieldSourceID, v))
}

// SourceIDHasSuffix applies the HasSuffix predicate on the "source_id" field.
func SourceIDHasSuffix(v string) predicate.Goal {
	return predicate.Goal(sql.FieldHasSuffix(FieldSourceID, v))
}

// SourceIDIsNil applies the IsNil predicate on the "source_id" field.
func SourceIDIsNil() predicate.Goal {
	return predicate.Goal(sql.FieldIsNull(FieldSourceID))
}

// SourceIDNotNil applies the NotNil predicate on the "source_id" field.
func SourceIDNotNil() predicate.Goal {
	return predicate.Goal(sql.FieldNotNull(FieldSourceID))
}

// SourceIDEqualFold applies the EqualFold predicate on the "source_id" field.
func SourceIDEqualFold(v string) predicate.Goal {
	return predicate.Goal(sql.FieldEqualFold(FieldSourceID, v))
}

// SourceIDContainsFold applies the ContainsFold predicate on the "source_id" field.
func SourceIDContainsFold(v string) predicate.Goal {
	return predicate.Goal(sql.FieldContainsFold(FieldSourceID, v))
}

// CardIdsIsNil applies the IsNil predicate on the "card_ids" field.
func CardIdsIsNil() predicate.Goal {
	return predicate.Goal(sql.FieldIsNull(FieldCardIds))
}

// CardIdsNotNil applies the NotNil predicate on the "card_ids" field.
func CardIdsNotNil() predicate.Goal {
	return predicate.Goal(sql.FieldNotNull(FieldCardIds))
}

// LearningTextEQ applies the EQ predicate on the "learning_text" field.
func LearningTextEQ(v string) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldLearningText, v))
}

// LearningTextNEQ applies the NEQ predicate on the "learning_text" field.
func LearningTextNEQ(v string) predicate.Goal {
	return predicate.Goal(sql.FieldNEQ(FieldLearningText, v))
}

// LearningTextIn applies the In predicate on the "learning_text" field.
func LearningTextIn(vs ...string) predicate.Goal {
	return predicate.Goal(sql.FieldIn(FieldLearningText, vs...))
}

// LearningTextNotIn applies the NotIn predicate on the "learning_text" field.
func LearningTextNotIn(vs ...string) predicate.Goal {
	return predicate.Goal(sql.FieldNotIn(FieldLearningText, vs...))
}

// LearningTextGT applies the GT predicate on the "learning_text" field.
func LearningTextGT(v string) predicate.Goal {
	return predicate.Goal(sql.FieldGT(FieldLearningText, v))
}

// LearningTextGTE applies the GTE predicate on the "learning_text" field.
func LearningTextGTE(v string) predicate.Goal {
	return predicate.Goal(sql.FieldGTE(FieldLearningText, v))
}

// LearningTextLT applies the LT predicate on the "learning_text" field.
func LearningTextLT(v string) predicate.Goal {
	return predicate.Goal(sql.FieldLT(FieldLearningText, v))
}

// LearningTextLTE applies the LTE predicate on the "learning_text" field.
func LearningTextLTE(v string) predicate.Goal {
	return predicate.Goal(sql.FieldLTE(FieldLearningText, v))
}

// LearningTextContains applies the Contains predicate on the "learning_text" field.
func LearningTextContains(v string) predicate.Goal {
	return predicate.Goal(sql.FieldContains(FieldLearningText, v))
}

// LearningTextHasPrefix applies the HasPrefix predicate on the "learning_text" field.
func LearningTextHasPrefix(v string) predicate.Goal {
	return predicate.Goal(sql.FieldHasPrefix(FieldLearningText, v))
}

// LearningTextHasSuffix applies the HasSuffix predicate on the "learning_text" field.
func LearningTextHasSuffix(v string) predicate.Goal {
	return predicate.Goal(sql.FieldHasSuffix(FieldLearningText, v))
}

// LearningTextIsNil applies the IsNil predicate on the "learning_text" field.
func LearningTextIsNil() predicate.Goal {
	return predicate.Goal(sql.FieldIsNull(FieldLearningText))
}

// LearningTextNotNil applies the NotNil predicate on the "learning_text" field.
func LearningTextNotNil() predicate.Goal {
	return predicate.Goal(sql.FieldNotNull(FieldLearningText))
}

// LearningTextEqualFold applies the EqualFold predicate on the "learning_text" field.
func LearningTextEqualFold(v string) predicate.Goal {
	return predicate.Goal(sql.FieldEqualFold(FieldLearningText, v))
}

// LearningTextContainsFold applies the ContainsFold predicate on the "learning_text" field.
func LearningTextContainsFold(v string) predicate.Goal {
	return predicate.Goal(sql.FieldContainsFold(FieldLearningText, v))
}

// LearningIDEQ applies the EQ predicate on the "learning_id" field.
func LearningIDEQ(v string) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldLearningID, v))
}

// LearningIDNEQ applies the NEQ predicate on the "learning_id" field.
func LearningIDNEQ(v string) predicate.Goal {
	return predicate.Goal(sql.FieldNEQ(FieldLearningID, v))
}

// LearningIDIn applies the In predicate on the "learning_id" field.
func LearningIDIn(vs ...string) predicate.Goal {
	return predicate.Goal(sql.FieldIn(FieldLearningID, vs...))
}

// LearningIDNotIn applies the NotIn predicate on the "learning_id" field.
func LearningIDNotIn(vs ...string) predicate.Goal {
	return predicate.Goal(sql.FieldNotIn(FieldLearningID, vs...))
}

// LearningIDGT applies the GT predicate on the "learning_id" field.
func LearningIDGT(v string) predicate.Goal {
	return predicate.Goal(sql.FieldGT(FieldLearningID, v))
}

// LearningIDGTE applies the GTE predicate on the "learning_id" field.
func LearningIDGTE(v string) predicate.Goal {
	return predicate.Goal(sql.FieldGTE(FieldLearningID, v))
}

// LearningIDLT applies the LT predicate on the "learning_id" field.
func LearningIDLT(v string) predicate.Goal {
	return predicate.Goal(sql.FieldLT(FieldLearningID, v))
}

// LearningIDLTE applies the LTE predicate on the "learning_id" field.
func LearningIDLTE(v string) predicate.Goal {
	return predicate.Goal(sql.FieldLTE(FieldLearningID, v))
}

// LearningIDContains applies the Contains predicate on the "learning_id" field.
func LearningIDContains(v string) predicate.Goal {
	return predicate.Goal(sql.FieldContains(FieldLearningID, v))
}

// LearningIDHasPrefix applies the HasPrefix predicate on the "learning_id" field.
func LearningIDHasPrefix(v string) predicate.Goal {
	return predicate.Goal(sql.FieldHasPrefix(FieldLearningID, v))
}

// LearningIDHasSuffix applies the HasSuffix predicate on the "learning_id" field.
func LearningIDHasSuffix(v string) predicate.Goal {
	return predicate.Goal(sql.FieldHasSuffix(FieldLearningID, v))
}

// LearningIDIsNil applies the IsNil predicate on the "learning_id" field.
func LearningIDIsNil() predicate.Goal {
	return predicate.Goal(sql.FieldIsNull(FieldLearningID))
}

// LearningIDNotNil applies the NotNil predicate on the "learning_id" field.
func LearningIDNotNil() predicate.Goal {
	return predicate.Goal(sql.FieldNotNull(FieldLearningID))
}

// LearningIDEqualFold applies the EqualFold predicate on the "learning_id" field.
func LearningIDEqualFold(v string) predicate.Goal {
	return predicate.Goal(sql.FieldEqualFold(FieldLearningID, v))
}

// LearningIDContainsFold applies the ContainsFold predicate on the "learning_id" field.
func LearningIDContainsFold(v string) predicate.Goal {
	return predicate.Goal(sql.FieldContainsFold(FieldLearningID, v))
}

// TotalTokensEQ applies the EQ predicate on the "total_tokens" field.
func TotalTokensEQ(v int) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldTotalTokens, v))
}

// TotalTokensNEQ applies the NEQ predicate on the "total_tokens" field.
func TotalTokensNEQ(v int) predicate.Goal {
	return predicate.Goal(sql.FieldNEQ(FieldTotalTokens, v))
}

// TotalTokensIn applies the In predicate on the "total_tokens" field.
func TotalTokensIn(vs ...int) predicate.Goal {
	return predicate.Goal(sql.FieldIn(FieldTotalTokens, vs...))
}

// TotalTokensNotIn applies the NotIn predicate on the "total_tokens" field.
func TotalTokensNotIn(vs ...int) predicate.Goal {
	return predicate.Goal(sql.FieldNotIn(FieldTotalTokens, vs...))
}

// TotalTokensGT applies the GT predicate on the "total_tokens" field.
func TotalTokensGT(v int) predicate.Goal {
	return predicate.Goal(sql.FieldGT(FieldTotalTokens, v))
}

// TotalTokensGTE applies the GTE predicate on the "total_tokens" field.
func TotalTokensGTE(v int) predicate.Goal {
	return predicate.Goal(sql.FieldGTE(FieldTotalTokens, v))
}

// TotalTokensLT applies the LT predicate on the "total_tokens" field.
func TotalTokensLT(v int) predicate.Goal {
	return predicate.Goal(sql.FieldLT(FieldTotalTokens, v))
}

// TotalTokensLTE applies the LTE predicate on the "total_tokens" field.
func TotalTokensLTE(v int) predicate.Goal {
	return predicate.Goal(sql.FieldLTE(FieldTotalTokens, v))
}

// TotalCostUsdEQ applies the EQ predicate on the "total_cost_usd" field.
func TotalCostUsdEQ(v float64) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldTotalCostUsd, v))
}

// TotalCostUsdNEQ applies the NEQ predicate on the "total_cost_usd" field.
func TotalCostUsdNEQ(v float64) predicate.Goal {
	return predicate.Goal(sql.FieldNEQ(FieldTotalCostUsd, v))
}

// TotalCostUsdIn applies the In predicate on the "total_cost_usd" field.
func TotalCostUsdIn(vs ...float64) predicate.Goal {
	return predicate.Goal(sql.FieldIn(FieldTotalCostUsd, vs...))
}

// TotalCostUsdNotIn applies the NotIn predicate on the "total_cost_usd" field.
func TotalCostUsdNotIn(vs ...float64) predicate.Goal {
	return predicate.Goal(sql.FieldNotIn(FieldTotalCostUsd, vs...))
}

// TotalCostUsdGT applies the GT predicate on the "total_cost_usd" field.
func TotalCostUsdGT(v float64) predicate.Goal {
	return predicate.Goal(sql.FieldGT(FieldTotalCostUsd, v))
}

// TotalCostUsdGTE applies the GTE predicate on the "total_cost_usd" field.
func TotalCostUsdGTE(v float64) predicate.Goal {
	return predicate.Goal(sql.FieldGTE(FieldTotalCostUsd, v))
}

// TotalCostUsdLT applies the LT predicate on the "total_cost_usd" field.
func TotalCostUsdLT(v float64) predicate.Goal {
	return predicate.Goal(sql.FieldLT(FieldTotalCostUsd, v))
}

// TotalCostUsdLTE applies the LTE predicate on the "total_cost_usd" field.
func TotalCostUsdLTE(v float64) predicate.Goal {
	return predicate.Goal(sql.FieldLTE(FieldTotalCostUsd, v))
}

// ErrorEQ applies the EQ predicate on the "error" field.
func ErrorEQ(v string) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldError, v))
}

// ErrorNEQ applies the NEQ predicate on the "error" field.
func ErrorNEQ(v string) predicate.Goal {
	return predicate.Goal(sql.FieldNEQ(FieldError, v))
}

// ErrorIn applies the In predicate on the "error" field.
func ErrorIn(vs ...string) predicate.Goal {
	return predicate.Goal(sql.FieldIn(FieldError, vs...))
}

// ErrorNotIn applies the NotIn predicate on the "error" field.
func ErrorNotIn(vs ...string) predicate.Goal {
	return predicate.Goal(sql.FieldNotIn(FieldError, vs...))
}

// ErrorGT applies the GT predicate on the "error" field.
func ErrorGT(v string) predicate.Goal {
	return predicate.Goal(sql.FieldGT(FieldError, v))
}

// ErrorGTE applies the GTE predicate on the "error" field.
func ErrorGTE(v string) predicate.Goal {
	return predicate.Goal(sql.FieldGTE(FieldError, v))
}

// ErrorLT applies the LT predicate on the "error" field.
func ErrorLT(v string) predicate.Goal {
	return predicate.Goal(sql.FieldLT(FieldError, v))
}

// ErrorLTE applies the LTE predicate on the "error" field.
func ErrorLTE(v string) predicate.Goal {
	return predicate.Goal(sql.FieldLTE(FieldError, v))
}

// ErrorContains applies the Contains predicate on the "error" field.
func ErrorContains(v string) predicate.Goal {
	return predicate.Goal(sql.FieldContains(FieldError, v))
}

// ErrorHasPrefix applies the HasPrefix predicate on the "error" field.
func ErrorHasPrefix(v string) predicate.Goal {
	return predicate.Goal(sql.FieldHasPrefix(FieldError, v))
}

// ErrorHasSuffix applies the HasSuffix predicate on the "error" field.
func ErrorHasSuffix(v string) predicate.Goal {
	return predicate.Goal(sql.FieldHasSuffix(FieldError, v))
}

// ErrorIsNil applies the IsNil predicate on the "error" field.
func ErrorIsNil() predicate.Goal {
	return predicate.Goal(sql.FieldIsNull(FieldError))
}

// ErrorNotNil applies the NotNil predicate on the "error" field.
func ErrorNotNil() predicate.Goal {
	return predicate.Goal(sql.FieldNotNull(FieldError))
}

// ErrorEqualFold applies the EqualFold predicate on the "error" field.
func ErrorEqualFold(v string) predicate.Goal {
	return predicate.Goal(sql.FieldEqualFold(FieldError, v))
}

// ErrorContainsFold applies the ContainsFold predicate on the "error" field.
func ErrorContainsFold(v string) predicate.Goal {
	return predicate.Goal(sql.FieldContainsFold(FieldError, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Goal {
	return predicate.Goal(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Goal {
	return predicate.Goal(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Goal {
	return predicate.Goal(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Goal {
	return predicate.Goal(sql.FieldNotNull(FieldCompletedAt))
}

// HasCards applies the HasEdge predicate on the "cards" edge.
func HasCards() predicate.Goal {
	return predicate.Goal(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CardsTable, CardsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCardsWith applies the HasEdge predicate on the "cards" edge with a given conditions (other predicates).
func HasCardsWith(preds ...predicate.Card) predicate.Goal {
	return predicate.Goal(func(s *sql.Selector) {
		step := newCardsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Goal) predicate.Goal {
	return predicate.Goal(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Goal) predicate.Goal {
	return predicate.Goal(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Goal) predicate.Goal {
	return predicate.Goal(sql.NotPredicates(p))
}
