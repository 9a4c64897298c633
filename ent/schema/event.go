package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity: the persisted
// backbone of WebSocket fan-out. Rows are written by EventPublisher in the
// same transaction as pg_notify; ids double as catch-up cursors.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("card_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("channel").
			Immutable().
			Comment("cards or execution:<cardId>"),
		field.Text("payload").
			Immutable().
			Comment("JSON, truncated to the NOTIFY limit if oversized"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("channel", "created_at"),
		index.Fields("card_id"),
		index.Fields("created_at"),
	}
}

// Annotations of the Event.
func (Event) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "events"},
	}
}
