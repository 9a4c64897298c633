package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Card holds the schema definition for the Card entity.
// One unit of work moving through the SDLC columns.
type Card struct {
	ent.Schema
}

// Fields of the Card.
func (Card) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("card_id").
			Unique().
			Immutable(),
		field.String("title"),
		field.Text("description").
			Optional(),
		field.String("column").
			StorageKey("board_column").
			Default("backlog").
			Comment("SDLC column; legal transitions enforced by CardService"),
		field.String("spec_path").
			Optional().
			Nillable().
			Comment("Markdown design doc produced by the plan stage"),
		field.String("model_plan").
			Default("opus-4.5"),
		field.String("model_implement").
			Default("opus-4.5"),
		field.String("model_test").
			Default("opus-4.5"),
		field.String("model_review").
			Default("opus-4.5"),
		field.String("parent_card_id").
			Optional().
			Nillable().
			Comment("Back-reference only, never an ownership edge"),
		field.Bool("is_fix_card").
			Default(false),
		field.Text("test_error_context").
			Optional().
			Nillable().
			Comment("Failure excerpt handed to the fix-card"),
		field.String("branch_name").
			Optional().
			Nillable(),
		field.String("worktree_path").
			Optional().
			Nillable(),
		field.String("base_branch").
			Optional().
			Nillable(),
		field.JSON("dependencies", []string{}).
			Optional().
			Comment("Card ids that must be done before this card is eligible"),
		field.JSON("diff_stats", map[string]interface{}{}).
			Optional().
			Comment("files_changed/insertions/deletions after implement"),
		field.Bool("archived").
			Default(false),
		field.String("goal_id").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("First entry into done"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Card.
func (Card) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("goal", Goal.Type).
			Ref("cards").
			Field("goal_id").
			Unique(),
		edge.To("executions", Execution.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Card.
func (Card) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("column"),
		index.Fields("goal_id"),
		index.Fields("parent_card_id"),
		index.Fields("column", "created_at"),
		// Active fix-card lookups scan by parent + flag
		index.Fields("parent_card_id", "is_fix_card"),
	}
}
