package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Goal holds the schema definition for the Goal entity.
// A goal is a user intent the orchestrator decomposes into cards.
type Goal struct {
	ent.Schema
}

// Fields of the Goal.
func (Goal) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("goal_id").
			Unique().
			Immutable(),
		field.Text("description").
			Comment("User-submitted intent, verbatim"),
		field.Enum("status").
			Values("pending", "active", "completed", "failed").
			Default("pending"),
		field.String("source").
			Default("api").
			Comment("Provenance (api, chat, ...)"),
		field.String("source_id").
			Optional().
			Nillable(),
		field.JSON("card_ids", []string{}).
			Optional().
			Comment("Ordered card ids, append-only"),
		field.Text("learning_text").
			Optional().
			Nillable().
			Comment("Human-readable learning produced at completion"),
		field.String("learning_id").
			Optional().
			Nillable().
			Comment("Vector-store point id (weak reference)"),
		field.Int("total_tokens").
			Default(0),
		field.Float("total_cost_usd").
			Default(0),
		field.String("error").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("First promotion to active"),
		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("Entered completed or failed"),
	}
}

// Edges of the Goal.
func (Goal) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("cards", Card.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Goal.
func (Goal) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "created_at"),
		index.Fields("status", "started_at"),
	}
}
