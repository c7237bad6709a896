package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// DoctorProfile carries the scheduling and directory data for a doctor user.
type DoctorProfile struct {
	ent.Schema
}

func (DoctorProfile) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (DoctorProfile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Unique().
			Comment("FK → users.id"),

		field.UUID("department_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → departments.id; nil until assigned"),

		field.String("qualification").
			Optional().
			Nillable().
			MaxLen(255),

		field.Int("experience_years").
			Default(0).
			NonNegative(),

		// Day-level availability flags keyed by "YYYY-MM-DD".
		// true marks a working day; absent or false days are closed.
		field.JSON("availability", map[string]bool{}).
			Optional().
			Default(map[string]bool{}),

		field.Bool("approved").
			Default(false).
			Comment("Admin approval gate; unapproved doctors are not bookable"),

		field.Bool("blocked").
			Default(false).
			Comment("Admin kill switch; blocked doctors are not bookable"),
	}
}

func (DoctorProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("department_id"),
		index.Fields("approved", "blocked"),
	}
}
