package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// PatientProfile carries demographic data for a patient user.
type PatientProfile struct {
	ent.Schema
}

func (PatientProfile) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (PatientProfile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Unique().
			Comment("FK → users.id"),

		field.Time("date_of_birth").
			Optional().
			Nillable(),

		field.Enum("gender").
			Values("male", "female", "other").
			Optional().
			Nillable(),

		field.String("contact_encrypted").
			Optional().
			Nillable().
			Sensitive().
			Comment("AES-256-GCM encrypted contact number, base64"),

		field.Text("address").
			Optional().
			Nillable(),
	}
}
