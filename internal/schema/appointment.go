package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Appointment is one slot on a doctor's calendar claimed by a patient.
type Appointment struct {
	ent.Schema
}

func (Appointment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Appointment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → doctor_profiles.id"),

		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patient_profiles.id"),

		field.Time("date").
			Comment("Calendar day of the visit, stored at UTC midnight"),

		field.String("slot").
			MaxLen(5).
			Comment("Slot start in 24h HH:MM form, e.g. 16:00"),

		field.Enum("status").
			Values("booked", "cancelled", "completed").
			Default("booked"),

		field.Text("reason").
			Optional().
			Nillable(),

		field.Time("cancelled_at").
			Optional().
			Nillable(),

		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (Appointment) Indexes() []ent.Index {
	return []ent.Index{
		// Last line of defense against double booking: at most one live
		// booking per doctor/date/slot, enforced by the database.
		index.Fields("doctor_id", "date", "slot").
			Unique().
			Annotations(entsql.IndexWhere("status = 'booked'")),

		index.Fields("doctor_id", "status", "date"),
		index.Fields("patient_id", "status", "date"),
	}
}
