package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Department is a hospital specialty doctors are assigned to.
type Department struct {
	ent.Schema
}

func (Department) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Department) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Unique().
			MaxLen(120),

		field.Text("description").
			Optional().
			Nillable(),
	}
}
