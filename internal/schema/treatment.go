package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Treatment is the clinical record written when an appointment completes.
// Rows are append-only.
type Treatment struct {
	ent.Schema
}

func (Treatment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Treatment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("appointment_id", uuid.UUID{}).
			Unique().
			Comment("FK → appointments.id; one record per completed visit"),

		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → doctor_profiles.id"),

		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patient_profiles.id"),

		field.Text("diagnosis"),

		field.Text("prescription").
			Optional().
			Nillable(),

		field.Text("notes").
			Optional().
			Nillable(),
	}
}

func (Treatment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "created_at"),
		index.Fields("doctor_id", "created_at"),
	}
}
