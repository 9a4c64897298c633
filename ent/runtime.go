// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/codeready-toolchain/cardsmith/ent/card"
	"github.com/codeready-toolchain/cardsmith/ent/event"
	"github.com/codeready-toolchain/cardsmith/ent/execution"
	"github.com/codeready-toolchain/cardsmith/ent/executionlog"
	"github.com/codeready-toolchain/cardsmith/ent/goal"
	"github.com/codeready-toolchain/cardsmith/ent/memoryentry"
	"github.com/codeready-toolchain/cardsmith/ent/orchestratoraction"
	"github.com/codeready-toolchain/cardsmith/ent/orchestratorlog"
	"github.com/codeready-toolchain/cardsmith/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	cardFields := schema.Card{}.Fields()
	_ = cardFields
	// cardDescColumn is the schema descriptor for column field.
	cardDescColumn := cardFields[3].Descriptor()
	// card.DefaultColumn holds the default value on creation for the column field.
	card.DefaultColumn = cardDescColumn.Default.(string)
	// cardDescModelPlan is the schema descriptor for model_plan field.
	cardDescModelPlan := cardFields[5].Descriptor()
	// card.DefaultModelPlan holds the default value on creation for the model_plan field.
	card.DefaultModelPlan = cardDescModelPlan.Default.(string)
	// cardDescModelImplement is the schema descriptor for model_implement field.
	cardDescModelImplement := cardFields[6].Descriptor()
	// card.DefaultModelImplement holds the default value on creation for the model_implement field.
	card.DefaultModelImplement = cardDescModelImplement.Default.(string)
	// cardDescModelTest is the schema descriptor for model_test field.
	cardDescModelTest := cardFields[7].Descriptor()
	// card.DefaultModelTest holds the default value on creation for the model_test field.
	card.DefaultModelTest = cardDescModelTest.Default.(string)
	// cardDescModelReview is the schema descriptor for model_review field.
	cardDescModelReview := cardFields[8].Descriptor()
	// card.DefaultModelReview holds the default value on creation for the model_review field.
	card.DefaultModelReview = cardDescModelReview.Default.(string)
	// cardDescIsFixCard is the schema descriptor for is_fix_card field.
	cardDescIsFixCard := cardFields[10].Descriptor()
	// card.DefaultIsFixCard holds the default value on creation for the is_fix_card field.
	card.DefaultIsFixCard = cardDescIsFixCard.Default.(bool)
	// cardDescArchived is the schema descriptor for archived field.
	cardDescArchived := cardFields[17].Descriptor()
	// card.DefaultArchived holds the default value on creation for the archived field.
	card.DefaultArchived = cardDescArchived.Default.(bool)
	// cardDescCreatedAt is the schema descriptor for created_at field.
	cardDescCreatedAt := cardFields[20].Descriptor()
	// card.DefaultCreatedAt holds the default value on creation for the created_at field.
	card.DefaultCreatedAt = cardDescCreatedAt.Default.(func() time.Time)
	// cardDescUpdatedAt is the schema descriptor for updated_at field.
	cardDescUpdatedAt := cardFields[21].Descriptor()
	// card.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	card.DefaultUpdatedAt = cardDescUpdatedAt.Default.(func() time.Time)
	// card.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	card.UpdateDefaultUpdatedAt = cardDescUpdatedAt.UpdateDefault.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[3].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	executionFields := schema.Execution{}.Fields()
	_ = executionFields
	// executionDescIsActive is the schema descriptor for is_active field.
	executionDescIsActive := executionFields[5].Descriptor()
	// execution.DefaultIsActive holds the default value on creation for the is_active field.
	execution.DefaultIsActive = executionDescIsActive.Default.(bool)
	// executionDescInputTokens is the schema descriptor for input_tokens field.
	executionDescInputTokens := executionFields[10].Descriptor()
	// execution.DefaultInputTokens holds the default value on creation for the input_tokens field.
	execution.DefaultInputTokens = executionDescInputTokens.Default.(int)
	// executionDescOutputTokens is the schema descriptor for output_tokens field.
	executionDescOutputTokens := executionFields[11].Descriptor()
	// execution.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	execution.DefaultOutputTokens = executionDescOutputTokens.Default.(int)
	// executionDescTotalTokens is the schema descriptor for total_tokens field.
	executionDescTotalTokens := executionFields[12].Descriptor()
	// execution.DefaultTotalTokens holds the default value on creation for the total_tokens field.
	execution.DefaultTotalTokens = executionDescTotalTokens.Default.(int)
	// executionDescCostUsd is the schema descriptor for cost_usd field.
	executionDescCostUsd := executionFields[13].Descriptor()
	// execution.DefaultCostUsd holds the default value on creation for the cost_usd field.
	execution.DefaultCostUsd = executionDescCostUsd.Default.(float64)
	// executionDescStartedAt is the schema descriptor for started_at field.
	executionDescStartedAt := executionFields[14].Descriptor()
	// execution.DefaultStartedAt holds the default value on creation for the started_at field.
	execution.DefaultStartedAt = executionDescStartedAt.Default.(func() time.Time)
	executionlogFields := schema.ExecutionLog{}.Fields()
	_ = executionlogFields
	// executionlogDescCreatedAt is the schema descriptor for created_at field.
	executionlogDescCreatedAt := executionlogFields[4].Descriptor()
	// executionlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	executionlog.DefaultCreatedAt = executionlogDescCreatedAt.Default.(func() time.Time)
	goalFields := schema.Goal{}.Fields()
	_ = goalFields
	// goalDescSource is the schema descriptor for source field.
	goalDescSource := goalFields[3].Descriptor()
	// goal.DefaultSource holds the default value on creation for the source field.
	goal.DefaultSource = goalDescSource.Default.(string)
	// goalDescTotalTokens is the schema descriptor for total_tokens field.
	goalDescTotalTokens := goalFields[8].Descriptor()
	// goal.DefaultTotalTokens holds the default value on creation for the total_tokens field.
	goal.DefaultTotalTokens = goalDescTotalTokens.Default.(int)
	// goalDescTotalCostUsd is the schema descriptor for total_cost_usd field.
	goalDescTotalCostUsd := goalFields[9].Descriptor()
	// goal.DefaultTotalCostUsd holds the default value on creation for the total_cost_usd field.
	goal.DefaultTotalCostUsd = goalDescTotalCostUsd.Default.(float64)
	// goalDescCreatedAt is the schema descriptor for created_at field.
	goalDescCreatedAt := goalFields[11].Descriptor()
	// goal.DefaultCreatedAt holds the default value on creation for the created_at field.
	goal.DefaultCreatedAt = goalDescCreatedAt.Default.(func() time.Time)
	memoryentryFields := schema.MemoryEntry{}.Fields()
	_ = memoryentryFields
	// memoryentryDescCreatedAt is the schema descriptor for created_at field.
	memoryentryDescCreatedAt := memoryentryFields[5].Descriptor()
	// memoryentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	memoryentry.DefaultCreatedAt = memoryentryDescCreatedAt.Default.(func() time.Time)
	orchestratoractionFields := schema.OrchestratorAction{}.Fields()
	_ = orchestratoractionFields
	// orchestratoractionDescSuccess is the schema descriptor for success field.
	orchestratoractionDescSuccess := orchestratoractionFields[6].Descriptor()
	// orchestratoraction.DefaultSuccess holds the default value on creation for the success field.
	orchestratoraction.DefaultSuccess = orchestratoractionDescSuccess.Default.(bool)
	// orchestratoractionDescCreatedAt is the schema descriptor for created_at field.
	orchestratoractionDescCreatedAt := orchestratoractionFields[9].Descriptor()
	// orchestratoraction.DefaultCreatedAt holds the default value on creation for the created_at field.
	orchestratoraction.DefaultCreatedAt = orchestratoractionDescCreatedAt.Default.(func() time.Time)
	orchestratorlogFields := schema.OrchestratorLog{}.Fields()
	_ = orchestratorlogFields
	// orchestratorlogDescCreatedAt is the schema descriptor for created_at field.
	orchestratorlogDescCreatedAt := orchestratorlogFields[4].Descriptor()
	// orchestratorlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	orchestratorlog.DefaultCreatedAt = orchestratorlogDescCreatedAt.Default.(func() time.Time)
}
