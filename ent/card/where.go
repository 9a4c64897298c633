// Code generated by ent, DO NOT EDIT.

package card

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeready-toolchain/cardsmith/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldDescription, v))
}

// Column applies equality check predicate on the "column" field. It's identical to ColumnEQ.
func Column(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldColumn, v))
}

// SpecPath applies equality check predicate on the "spec_path" field. It's identical to SpecPathEQ.
func SpecPath(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldSpecPath, v))
}

// ModelPlan applies equality check predicate on the "model_plan" field. It's identical to ModelPlanEQ.
func ModelPlan(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldModelPlan, v))
}

// ModelImplement applies equality check predicate on the "model_implement" field. It's identical to ModelImplementEQ.
func ModelImplement(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldModelImplement, v))
}

// ModelTest applies equality check predicate on the "model_test" field. It's identical to ModelTestEQ.
func ModelTest(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldModelTest, v))
}

// ModelReview applies equality check predicate on the "model_review" field. It's identical to ModelReviewEQ.
func ModelReview(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldModelReview, v))
}

// ParentCardID applies equality check predicate on the "parent_card_id" field. It's identical to ParentCardIDEQ.
func ParentCardID(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldParentCardID, v))
}

// IsFixCard applies equality check predicate on the "is_fix_card" field. It's identical to IsFixCardEQ.
func IsFixCard(v bool) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldIsFixCard, v))
}

// TestErrorContext applies equality check predicate on the "test_error_context" field. It's identical to TestErrorContextEQ.
func TestErrorContext(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldTestErrorContext, v))
}

// BranchName applies equality check predicate on the "branch_name" field. It's identical to BranchNameEQ.
func BranchName(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldBranchName, v))
}

// WorktreePath applies equality check predicate on the "worktree_path" field. It's identical to WorktreePathEQ.
func WorktreePath(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldWorktreePath, v))
}

// BaseBranch applies equality check predicate on the "base_branch" field. It's identical to BaseBranchEQ.
func BaseBranch(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldBaseBranch, v))
}

// Archived applies equality check predicate on the "archived" field. It's identical to ArchivedEQ.
func Archived(v bool) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldArchived, v))
}

// GoalID applies equality check predicate on the "goal_id" field. It's identical to GoalIDEQ.
func GoalID(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldGoalID, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldCompletedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldUpdatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Card {
	return predicate.Card(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Card {
	return predicate.Card(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldDescription, v))
}

// ColumnEQ applies the EQ predicate on the "column" field.
func ColumnEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldColumn, v))
}

// ColumnNEQ applies the NEQ predicate on the "column" field.
func ColumnNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldColumn, v))
}

// ColumnIn applies the In predicate on the "column" field.
func ColumnIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldColumn, vs...))
}

// ColumnNotIn applies the NotIn predicate on the "column" field.
func ColumnNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldColumn, vs...))
}

// ColumnGT applies the GT predicate on the "column" field.
func ColumnGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldColumn, v))
}

// ColumnGTE applies the GTE predicate on the "column" field.
func ColumnGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldColumn, v))
}

// ColumnLT applies the LT predicate on the "column" field.
func ColumnLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldColumn, v))
}

// ColumnLTE applies the LTE predicate on the "column" field.
func ColumnLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldColumn, v))
}

// ColumnContains applies the Contains predicate on the "column" field.
func ColumnContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldColumn, v))
}

// ColumnHasPrefix applies the HasPrefix predicate on the "column" field.
func ColumnHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldColumn, v))
}

// ColumnHasSuffix applies the HasSuffix predicate on the "column" field.
func ColumnHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldColumn, v))
}

// ColumnEqualFold applies the EqualFold predicate on the "column" field.
func ColumnEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldColumn, v))
}

// ColumnContainsFold applies the ContainsFold predicate on the "column" field.
func ColumnContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldColumn, v))
}

// SpecPathEQ applies the EQ predicate on the "spec_path" field.
func SpecPathEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldSpecPath, v))
}

// SpecPathNEQ applies the NEQ predicate on the "spec_path" field.
func SpecPathNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldSpecPath, v))
}

// SpecPathIn applies the In predicate on the "spec_path" field.
func SpecPathIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldSpecPath, vs...))
}

// SpecPathNotIn applies the NotIn predicate on the "spec_path" field.
func SpecPathNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldSpecPath, vs...))
}

// SpecPathGT applies the GT predicate on the "spec_path" field.
func SpecPathGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldSpecPath, v))
}

// SpecPathGTE applies the GTE predicate on the "spec_path" field.
func SpecPathGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldSpecPath, v))
}

// SpecPathLT applies the LT predicate on the "spec_path" field.
func SpecPathLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldSpecPath, v))
}

// SpecPathLTE applies the LTE predicate on the "spec_path" field.
func SpecPathLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldSpecPath, v))
}

// SpecPathContains applies the Contains predicate on the "spec_path" field.
func SpecPathContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldSpecPath, v))
}

// SpecPathHasPrefix applies the HasPrefix predicate on the "spec_path" field.
func SpecPathHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldSpecPath, v))
}

// SpecPathHasSuffix applies the HasSuffix predicate on the "spec_path" field.
func SpecPathHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldSpecPath, v))
}

// SpecPathIsNil applies the IsNil predicate on the "spec_path" field.
func SpecPathIsNil() predicate.Card {
	return predicate.Card(sql.FieldIsNull(FieldSpecPath))
}

// SpecPathNotNil applies the NotNil predicate on the "spec_path" field.
func SpecPathNotNil() predicate.Card {
	return predicate.Card(sql.FieldNotNull(FieldSpecPath))
}

// SpecPathEqualFold applies the EqualFold predicate on the "spec_path" field.
func SpecPathEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldSpecPath, v))
}

// SpecPathContainsFold applies the ContainsFold predicate on the "spec_path" field.
func SpecPathContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldSpecPath, v))
}

// ModelPlanEQ applies the EQ predicate on the "model_plan" field.
func ModelPlanEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldModelPlan, v))
}

// ModelPlanNEQ applies the NEQ predicate on the "model_plan" field.
func ModelPlanNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldModelPlan, v))
}

// ModelPlanIn applies the In predicate on the "model_plan" field.
func ModelPlanIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldModelPlan, vs...))
}

// ModelPlanNotIn applies the NotIn predicate on the "model_plan" field.
func ModelPlanNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldModelPlan, vs...))
}

// ModelPlanGT applies the GT predicate on the "model_plan" field.
func ModelPlanGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldModelPlan, v))
}

// ModelPlanGTE applies the GTE predicate on the "model_plan" field.
func ModelPlanGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldModelPlan, v))
}

// ModelPlanLT applies the LT predicate on the "model_plan" field.
func ModelPlanLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldModelPlan, v))
}

// ModelPlanLTE applies the LTE predicate on the "model_plan" field.
func ModelPlanLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldModelPlan, v))
}

// ModelPlanContains applies the Contains predicate on the "model_plan" field.
func ModelPlanContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldModelPlan, v))
}

// ModelPlanHasPrefix applies the HasPrefix predicate on the "model_plan" field.
func ModelPlanHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldModelPlan, v))
}

// ModelPlanHasSuffix applies the HasSuffix predicate on the "model_plan" field.
func ModelPlanHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldModelPlan, v))
}

// ModelPlanEqualFold applies the EqualFold predicate on the "model_plan" field.
func ModelPlanEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldModelPlan, v))
}

// ModelPlanContainsFold applies the ContainsFold predicate on the "model_plan" field.
func ModelPlanContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldModelPlan, v))
}

// ModelImplementEQ applies the EQ predicate on the "model_implement" field.
func ModelImplementEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldModelImplement, v))
}

// ModelImplementNEQ applies the NEQ predicate on the "model_implement" field.
func ModelImplementNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldModelImplement, v))
}

// ModelImplementIn applies the In predicate on the "model_implement" field.
func ModelImplementIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldModelImplement, vs...))
}

// ModelImplementNotIn applies the NotIn predicate on the "model_implement" field.
func ModelImplementNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldModelImplement, vs...))
}

// ModelImplementGT applies the GT predicate on the "model_implement" field.
func ModelImplementGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldModelImplement, v))
}

// ModelImplementGTE applies the GTE predicate on the "model_implement" field.
func ModelImplementGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldModelImplement, v))
}

// ModelImplementLT applies the LT predicate on the "model_implement" field.
func ModelImplementLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldModelImplement, v))
}

// ModelImplementLTE applies the LTE predicate on the "model_implement" field.
func ModelImplementLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldModelImplement, v))
}

// ModelImplementContains applies the Contains predicate on the "model_implement" field.
func ModelImplementContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldModelImplement, v))
}

// ModelImplementHasPrefix applies the HasPrefix predicate on the "model_implement" field.
func ModelImplementHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldModelImplement, v))
}

// ModelImplementHasSuffix applies the HasSuffix predicate on the "model_implement" field.
func ModelImplementHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldModelImplement, v))
}

// ModelImplementEqualFold applies the EqualFold predicate on the "model_implement" field.
func ModelImplementEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldModelImplement, v))
}

// ModelImplementContainsFold applies the ContainsFold predicate on the "model_implement" field.
func ModelImplementContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldModelImplement, v))
}

// ModelTestEQ applies the EQ predicate on the "model_test" field.
func ModelTestEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldModelTest, v))
}

// ModelTestNEQ applies the NEQ predicate on the "model_test" field.
func ModelTestNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldModelTest, v))
}

// ModelTestIn applies the In predicate on the "model_test" field.
func ModelTestIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldModelTest, vs...))
}

// ModelTestNotIn applies the NotIn predicate on the "model_test" field.
func ModelTestNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldModelTest, vs...))
}

// ModelTestGT applies the GT predicate on the "model_test" field.
func ModelTestGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldModelTest, v))
}

// ModelTestGTE applies the GTE predicate on the "model_test" field.
func ModelTestGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldModelTest, v))
}

// ModelTestLT applies the LT predicate on the "model_test" field.
func ModelTestLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldModelTest, v))
}

// ModelTestLTE applies the LTE predicate on the "model_test" field.
func ModelTestLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldModelTest, v))
}

// ModelTestContains applies the Contains predicate on the "model_test" field.
func ModelTestContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldModelTest, v))
}

// ModelTestHasPrefix applies the HasPrefix predicate on the "model_test" field.
func ModelTestHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldModelTest, v))
}

// ModelTestHasSuffix applies the HasSuffix predicate on the "model_test" field.
func ModelTestHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldModelTest, v))
}

// ModelTestEqualFold applies the EqualFold predicate on the "model_test" field.
func ModelTestEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldModelTest, v))
}

// ModelTestContainsFold applies the ContainsFold predicate on the "model_test" field.
func ModelTestContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldModelTest, v))
}

// ModelReviewEQ applies the EQ predicate on the "model_review" field.
func ModelReviewEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldModelReview, v))
}

// ModelReviewNEQ applies the NEQ predicate on the "model_review" field.
func ModelReviewNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldModelReview, v))
}

// ModelReviewIn applies the In predicate on the "model_review" field.
func ModelReviewIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldModelReview, vs...))
}

// ModelReviewNotIn applies the NotIn predicate on the "model_review" field.
func ModelReviewNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldModelReview, vs...))
}

// ModelReviewGT applies the GT predicate on the "model_review" field.
func ModelReviewGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldModelReview, v))
}

// ModelReviewGTE applies the GTE predicate on the "model_review" field.
func ModelReviewGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldModelReview, v))
}

// ModelReviewLT applies the LT predicate on the "model_review" field.
func ModelReviewLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldModelReview, v))
}

// ModelReviewLTE applies the LTE predicate on the "model_review" field.
func ModelReviewLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldModelReview, v))
}

// ModelReviewContains applies the Contains predicate on the "model_review" field.
func ModelReviewContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldModelReview, v))
}

// ModelReviewHasPrefix applies the HasPrefix predicate on the "model_review" field.
func ModelReviewHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldModelReview, v))
}

// ModelReviewHasSuffix applies the HasSuffix predicate on the "model_review" field.
func ModelReviewHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldModelReview, v))
}

// ModelReviewEqualFold applies the EqualFold predicate on the "model_review" field.
func ModelReviewEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldModelReview, v))
}

// ModelReviewContainsFold applies the ContainsFold predicate on the "model_review" field.
func ModelReviewContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldModelReview, v))
}

// ParentCardIDEQ applies the EQ predicate on the "parent_card_id" field.
func ParentCardIDEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldParentCardID, v))
}

// ParentCardIDNEQ applies the NEQ predicate on the "parent_card_id" field.
func ParentCardIDNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldParentCardID, v))
}

// ParentCardIDIn applies the In predicate on the "parent_card_id" field.
func ParentCardIDIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldParentCardID, vs...))
}

// ParentCardIDNotIn applies the NotIn predicate on the "parent_card_id" field.
func ParentCardIDNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldParentCardID, vs...))
}

// ParentCardIDGT applies the GT predicate on the "parent_card_id" field.
func ParentCardIDGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldParentCardID, v))
}

// ParentCardIDGTE applies the GTE predicate on the "parent_card_id" field.
func ParentCardIDGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldParentCardID, v))
}

// ParentCardIDLT applies the LT predicate on the "parent_card_id" field.
func ParentCardIDLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldParentCardID, v))
}

// ParentCardIDLTE applies the LTE predicate on the "parent_card_id" field.
func ParentCardIDLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldParentCardID, v))
}

// ParentCardIDContains applies the Contains predicate on the "parent_card_id" field.
func ParentCardIDContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldParentCardID, v))
}

// ParentCardIDHasPrefix applies the HasPrefix predicate on the "parent_card_id" field.
func ParentCardIDHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldParentCardID, v))
}

// ParentCardIDHasSuffix applies the HasSuffix predicate on the "parent_card_id" field.
func ParentCardIDHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldParentCardID, v))
}

// ParentCardIDIsNil applies the IsNil predicate on the "parent_card_id" field.
func ParentCardIDIsNil() predicate.Card {
	return predicate.Card(sql.FieldIsNull(FieldParentCardID))
}

// ParentCardIDNotNil applies the NotNil predicate on the "parent_card_id" field.
func ParentCardIDNotNil() predicate.Card {
	return predicate.Card(sql.FieldNotNull(FieldParentCardID))
}

// ParentCardIDEqualFold applies the EqualFold predicate on the "parent_card_id" field.
func ParentCardIDEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldParentCardID, v))
}

// ParentCardIDContainsFold applies the ContainsFold predicate on the "parent_card_id" field.
func ParentCardIDContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldParentCardID, v))
}

// IsFixCardEQ applies the EQ predicate on the "is_fix_card" field.
func IsFixCardEQ(v bool) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldIsFixCard, v))
}

// IsFixCardNEQ applies the NEQ predicate on the "is_fix_card" field.
func IsFixCardNEQ(v bool) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldIsFixCard, v))
}

// TestErrorContextEQ applies the EQ predicate on the "test_error_context" field.
func TestErrorContextEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldTestErrorContext, v))
}

// TestErrorContextNEQ applies the NEQ predicate on the "test_error_context" field.
func TestErrorContextNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldTestErrorContext, v))
}

// TestErrorContextIn applies the In predicate on the "test_error_context" field.
func TestErrorContextIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldTestErrorContext, vs...))
}

// TestErrorContextNotIn applies the NotIn predicate on the "test_error_context" field.
func TestErrorContextNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldTestErrorContext, vs...))
}

// TestErrorContextGT applies the GT predicate on the "test_error_context" field.
func TestErrorContextGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldTestErrorContext, v))
}

// TestErrorContextGTE applies the GTE predicate on the "test_error_context" field.
func TestErrorContextGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldTestErrorContext, v))
}

// TestErrorContextLT applies the LT predicate on the "test_error_context" field.
func TestErrorContextLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldTestErrorContext, v))
}

// TestErrorContextLTE applies the LTE predicate on the "test_error_context" field.
func TestErrorContextLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldTestErrorContext, v))
}

// TestErrorContextContains applies the Contains predicate on the "test_error_context" field.
func TestErrorContextContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldTestErrorContext, v))
}

// TestErrorContextHasPrefix applies the HasPrefix predicate on the "test_error_context" field.
func TestErrorContextHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldTestErrorContext, v))
}

// TestErrorContextHasSuffix applies the HasSuffix predicate on the "test_error_context" field.
func TestErrorContextHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldTestErrorContext, v))
}

// TestErrorContextIsNil applies the IsNil predicate on the "test_error_context" field.
func TestErrorContextIsNil() predicate.Card {
	return predicate.Card(sql.FieldIsNull(FieldTestErrorContext))
}

// TestErrorContextNotNil applies the NotNil predicate on the "test_error_context" field.
func TestErrorContextNotNil() predicate.Card {
	return predicate.Card(sql.FieldNotNull(FieldTestErrorContext))
}

// TestErrorContextEqualFold applies the EqualFold predicate on the "test_error_context" field.
func TestErrorContextEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldTestErrorContext, v))
}

// TestErrorContextContainsFold applies the ContainsFold predicate on the "test_error_context" field.
func TestErrorContextContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldTestErrorContext, v))
}

// BranchNameEQ applies the EQ predicate on the "branch_name" field.
func BranchNameEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldBranchName, v))
}

// BranchNameNEQ applies the NEQ predicate on the "branch_name" field.
func BranchNameNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldBranchName, v))
}

// BranchNameIn applies the In predicate on the "branch_name" field.
func BranchNameIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldBranchName, vs...))
}

// BranchNameNotIn applies the NotIn predicate on the "branch_name" field.
func BranchNameNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldBranchName, vs...))
}

// BranchNameGT applies the GT predicate on the "branch_name" field.
func BranchNameGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldBranchName, v))
}

// BranchNameGTE applies the GTE predicate on the "branch_name" field.
func BranchNameGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldBranchName, v))
}

// BranchNameLT applies the LT predicate on the "branch_name" field.
func BranchNameLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldBranchName, v))
}

// BranchNameLTE applies the LTE predicate on the "branch_name" field.
func BranchNameLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldBranchName, v))
}

// BranchNameContains applies the Contains predicate on the "branch_name" field.
func BranchNameContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldBranchName, v))
}

// BranchNameHasPrefix applies the HasPrefix predicate on the "branch_name" field.
func BranchNameHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldBranchName, v))
}

// BranchNameHasSuffix applies the HasSuffix predicate on the "branch_name" field.
func BranchNameHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldBranchName, v))
}

// BranchNameIsNil applies the IsNil predicate on the "branch_name" field.
func BranchNameIsNil() predicate.Card {
	return predicate.Card(sql.FieldIsNull(FieldBranchName))
}

// BranchNameNotNil applies the NotNil predicate on the "branch_name" field.
func BranchNameNotNil() predicate.Card {
	return predicate.Card(sql.FieldNotNull(FieldBranchName))
}

// BranchNameEqualFold applies the EqualFold predicate on the "branch_name" field.
func BranchNameEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldBranchName, v))
}

// BranchNameContainsFold applies the ContainsFold predicate on the "branch_name" field.
func BranchNameContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldBranchName, v))
}

// WorktreePathEQ applies the EQ predicate on the "worktree_path" field.
func WorktreePathEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldWorktreePath, v))
}

// WorktreePathNEQ applies the NEQ predicate on the "worktree_path" field.
func WorktreePathNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldWorktreePath, v))
}

// WorktreePathIn applies the In predicate on the "worktree_path" field.
func WorktreePathIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldWorktreePath, vs...))
}

// WorktreePathNotIn applies the NotIn predicate on the "worktree_path" field.
func WorktreePathNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldWorktreePath, vs...))
}

// WorktreePathGT applies the GT predicate on the "worktree_path" field.
func WorktreePathGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldWorktreePath, v))
}

// WorktreePathGTE applies the GTE predicate on the "worktree_path" field.
func WorktreePathGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldWorktreePath, v))
}

// WorktreePathLT applies the LT predicate on the "worktree_path" field.
func WorktreePathLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldWorktreePath, v))
}

// WorktreePathLTE applies the LTE predicate on the "worktree_path" field.
func WorktreePathLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldWorktreePath, v))
}

// WorktreePathContains applies the Contains predicate on the "worktree_path" field.
func WorktreePathContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldWorktreePath, v))
}

// WorktreePathHasPrefix applies the HasPrefix predicate on the "worktree_path" field.
func WorktreePathHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldWorktreePath, v))
}

// WorktreePathHasSuffix applies the HasSuffix predicate on the "worktree_path" field.
func WorktreePathHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldWorktreePath, v))
}

// WorktreePathIsNil applies the IsNil predicate on the "worktree_path" field.
func WorktreePathIsNil() predicate.Card {
	return predicate.Card(sql.FieldIsNull(FieldWorktreePath))
}

// WorktreePathNotNil applies the NotNil predicate on the "worktree_path" field.
func WorktreePathNotNil() predicate.Card {
	return predicate.Card(sql.FieldNotNull(FieldWorktreePath))
}

// WorktreePathEqualFold applies the EqualFold predicate on the "worktree_path" field.
func WorktreePathEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldWorktreePath, v))
}

// WorktreePathContainsFold applies the ContainsFold predicate on the "worktree_path" field.
func WorktreePathContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldWorktreePath, v))
}

// BaseBranchEQ applies the EQ predicate on the "base_branch" field.
func BaseBranchEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldBaseBranch, v))
}

// BaseBranchNEQ applies the NEQ predicate on the "base_branch" field.
func BaseBranchNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldBaseBranch, v))
}

// BaseBranchIn applies the In predicate on the "base_branch" field.
func BaseBranchIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldBaseBranch, vs...))
}

// BaseBranchNotIn applies the NotIn predicate on the "base_branch" field.
func BaseBranchNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldBaseBranch, vs...))
}

// BaseBranchGT applies the GT predicate on the "base_branch" field.
func BaseBranchGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldBaseBranch, v))
}

// BaseBranchGTE applies the GTE predicate on the "base_branch" field.
func BaseBranchGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldBaseBranch, v))
}

// BaseBranchLT applies the LT predicate on the "base_branch" field.
func BaseBranchLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldBaseBranch, v))
}

// BaseBranchLTE applies the LTE predicate on the "base_branch" field.
func BaseBranchLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldBaseBranch, v))
}

// BaseBranchContains applies the Contains predicate on the "base_branch" field.
func BaseBranchContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldBaseBranch, v))
}

// BaseBranchHasPrefix applies the HasPrefix predicate on the "base_branch" field.
func BaseBranchHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldBaseBranch, v))
}

// BaseBranchHasSuffix applies the HasSuffix predicate on the "base_branch" field.
func BaseBranchHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldBaseBranch, v))
}

// BaseBranchIsNil applies the IsNil predicate on the "base_branch" field.
func BaseBranchIsNil() predicate.Card {
	return predicate.Card(sql.FieldIsNull(FieldBaseBranch))
}

// BaseBranchNotNil applies the NotNil predicate on the "base_branch" field.
func BaseBranchNotNil() predicate.Card {
	return predicate.Card(sql.FieldNotNull(FieldBaseBranch))
}

// BaseBranchEqualFold applies the EqualFold predicate on the "base_branch" field.
func BaseBranchEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldBaseBranch, v))
}

// BaseBranchContainsFold applies the ContainsFold predicate on the "base_branch" field.
func BaseBranchContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldBaseBranch, v))
}

// DependenciesIsNil applies the IsNil predicate on the "dependencies" field.
func DependenciesIsNil() predicate.Card {
	return predicate.Card(sql.FieldIsNull(FieldDependencies))
}

// DependenciesNotNil applies the NotNil predicate on the "dependencies" field.
func DependenciesNotNil() predicate.Card {
	return predicate.Card(sql.FieldNotNull(FieldDependencies))
}

// DiffStatsIsNil applies the IsNil predicate on the "diff_stats" field.
func DiffStatsIsNil() predicate.Card {
	return predicate.Card(sql.FieldIsNull(FieldDiffStats))
}

// DiffStatsNotNil applies the NotNil predicate on the "diff_stats" field.
func DiffStatsNotNil() predicate.Card {
	return predicate.Card(sql.FieldNotNull(FieldDiffStats))
}

// ArchivedEQ applies the EQ predicate on the "archived" field.
func ArchivedEQ(v bool) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldArchived, v))
}

// ArchivedNEQ applies the NEQ predicate on the "archived" field.
func ArchivedNEQ(v bool) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldArchived, v))
}

// GoalIDEQ applies the EQ predicate on the "goal_id" field.
func GoalIDEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldGoalID, v))
}

// GoalIDNEQ applies the NEQ predicate on the "goal_id" field.
func GoalIDNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldGoalID, v))
}

// GoalIDIn applies the In predicate on the "goal_id" field.
func GoalIDIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldGoalID, vs...))
}

// GoalIDNotIn applies the NotIn predicate on the "goal_id" field.
func GoalIDNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldGoalID, vs...))
}

// GoalIDGT applies the GT predicate on the "goal_id" field.
func GoalIDGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldGoalID, v))
}

// GoalIDGTE applies the GTE predicate on the "goal_id" field.
func GoalIDGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldGoalID, v))
}

// GoalIDLT applies the LT predicate on the "goal_id" field.
func GoalIDLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldGoalID, v))
}

// GoalIDLTE applies the LTE predicate on the "goal_id" field.
func GoalIDLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldGoalID, v))
}

// GoalIDContains applies the Contains predicate on the "goal_id" field.
func GoalIDContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldGoalID, v))
}

// GoalIDHasPrefix applies the HasPrefix predicate on the "goal_id" field.
func GoalIDHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldGoalID, v))
}

// GoalIDHasSuffix applies the HasSuffix predicate on the "goal_id" field.
func GoalIDHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldGoalID, v))
}

// GoalIDIsNil applies the IsNil predicate on the "goal_id" field.
func GoalIDIsNil() predicate.Card {
	return predicate.Card(sql.FieldIsNull(FieldGoalID))
}

// GoalIDNotNil applies the NotNil predicate on the "goal_id" field.
func GoalIDNotNil() predicate.Card {
	return predicate.Card(sql.FieldNotNull(FieldGoalID))
}

// GoalIDEqualFold applies the EqualFold predicate on the "goal_id" field.
func GoalIDEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldGoalID, v))
}

// GoalIDContainsFold applies the ContainsFold predicate on the "goal_id" field.
func GoalIDContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldGoalID, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Card {
	return predicate.Card(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Card {
	return predicate.Card(sql.FieldNotNull(FieldCompletedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasGoal applies the HasEdge predicate on the "goal" edge.
func HasGoal() predicate.Card {
	return predicate.Card(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, GoalTable, GoalColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGoalWith applies the HasEdge predicate on the "goal" edge with a given conditions (other predicates).
func HasGoalWith(preds ...predicate.Goal) predicate.Card {
	return predicate.Card(func(s *sql.Selector) {
		step := newGoalStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasExecutions applies the HasEdge predicate on the "executions" edge.
func HasExecutions() predicate.Card {
	return predicate.Card(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ExecutionsTable, ExecutionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExecutionsWith applies the HasEdge predicate on the "executions" edge with a given conditions (other predicates).
func HasExecutionsWith(preds ...predicate.Execution) predicate.Card {
	return predicate.Card(func(s *sql.Selector) {
		step := newExecutionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Card) predicate.Card {
	return predicate.Card(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Card) predicate.Card {
	return predicate.Card(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Card) predicate.Card {
	return predicate.Card(sql.NotPredicates(p))
}
