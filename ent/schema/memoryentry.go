package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MemoryEntry holds the schema definition for the MemoryEntry entity:
// the orchestrator's short-term memory. Entries are immutable and expire.
type MemoryEntry struct {
	ent.Schema
}

// Fields of the MemoryEntry.
func (MemoryEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("entry_id").
			Unique().
			Immutable(),
		field.Enum("entry_type").
			Values("act", "decision", "observation", "error"),
		field.Text("content").
			Immutable(),
		field.JSON("context", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.String("goal_id").
			Optional().
			Nillable().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("expires_at").
			Immutable().
			Comment("created_at + retention"),
	}
}

// Indexes of the MemoryEntry.
func (MemoryEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("expires_at"),
		index.Fields("entry_type", "created_at"),
		index.Fields("goal_id"),
	}
}
