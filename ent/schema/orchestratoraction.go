package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OrchestratorAction holds the schema definition for the OrchestratorAction
// entity: the loop's durable per-tick trace (RECORD phase).
type OrchestratorAction struct {
	ent.Schema
}

// Fields of the OrchestratorAction.
func (OrchestratorAction) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("action_id").
			Unique().
			Immutable(),
		field.String("decision").
			Comment("wait, decompose, execute_card, execute_cards_parallel, create_fix, complete_goal"),
		field.String("goal_id").
			Optional().
			Nillable(),
		field.JSON("card_ids", []string{}).
			Optional(),
		field.Text("reason"),
		field.JSON("context", map[string]interface{}{}).
			Optional(),
		field.Bool("success").
			Default(true),
		field.Text("error").
			Optional().
			Nillable(),
		field.Text("learning").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the OrchestratorAction.
func (OrchestratorAction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("goal_id"),
		index.Fields("created_at"),
		index.Fields("decision", "created_at"),
	}
}
