package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OrchestratorLog holds the schema definition for the OrchestratorLog entity.
// Notable loop events (decision reasons, act failures) kept queryable.
type OrchestratorLog struct {
	ent.Schema
}

// Fields of the OrchestratorLog.
func (OrchestratorLog) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("level").
			Values("info", "warning", "error").
			Default("info"),
		field.Text("message"),
		field.JSON("context", map[string]interface{}{}).
			Optional(),
		field.String("goal_id").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the OrchestratorLog.
func (OrchestratorLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("goal_id"),
		index.Fields("level", "created_at"),
	}
}
