package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Execution holds the schema definition for the Execution entity.
// One invocation of an SDLC stage command on a card.
type Execution struct {
	ent.Schema
}

// Fields of the Execution.
func (Execution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("execution_id").
			Unique().
			Immutable(),
		field.String("card_id").
			Immutable(),
		field.String("command").
			Comment("/plan, /implement, /test-implementation or /review"),
		field.Enum("workflow_stage").
			Values("planning", "implementing", "testing", "reviewing"),
		field.Enum("status").
			Values("running", "success", "error").
			Default("running"),
		field.Bool("is_active").
			Default(true).
			Comment("At most one active execution per card"),
		field.String("model").
			Comment("Model profile the stage ran with"),
		field.Text("prompt"),
		field.Text("result").
			Optional().
			Nillable().
			Comment("Accumulated agent output"),
		field.Text("workflow_error").
			Optional().
			Nillable(),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Int("total_tokens").
			Default(0),
		field.Float("cost_usd").
			Default(0),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Execution.
func (Execution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("card", Card.Type).
			Ref("executions").
			Field("card_id").
			Unique().
			Required().
			Immutable(),
		edge.To("logs", ExecutionLog.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Execution.
func (Execution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("card_id"),
		index.Fields("card_id", "is_active"),
		index.Fields("card_id", "command", "started_at"),
	}
}
