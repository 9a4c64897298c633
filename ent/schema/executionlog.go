package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExecutionLog holds the schema definition for the ExecutionLog entity.
// Typed, strictly sequence-numbered entries within one execution.
type ExecutionLog struct {
	ent.Schema
}

// Fields of the ExecutionLog.
func (ExecutionLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("execution_id").
			Immutable(),
		field.Int("sequence").
			Comment("1..N, gap-free per execution"),
		field.Enum("log_type").
			Values("info", "text", "tool", "result", "error"),
		field.Text("content").
			Comment("Masked before persistence"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ExecutionLog.
func (ExecutionLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("execution", Execution.Type).
			Ref("logs").
			Field("execution_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ExecutionLog.
func (ExecutionLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("execution_id", "sequence").
			Unique(),
	}
}
