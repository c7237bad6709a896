// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/aryabanda/Hospital-management-system/internal/repo/patientprofile"
	"github.com/google/uuid"
)

// PatientProfileCreate is the builder for creating a PatientProfile entity.
type PatientProfileCreate struct {
	config
	mutation *PatientProfileMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *PatientProfileCreate) SetCreatedAt(v time.Time) *PatientProfileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PatientProfileCreate) SetNillableCreatedAt(v *time.Time) *PatientProfileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PatientProfileCreate) SetUpdatedAt(v time.Time) *PatientProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PatientProfileCreate) SetNillableUpdatedAt(v *time.Time) *PatientProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *PatientProfileCreate) SetUserID(v uuid.UUID) *PatientProfileCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetDateOfBirth sets the "date_of_birth" field.
func (_c *PatientProfileCreate) SetDateOfBirth(v time.Time) *PatientProfileCreate {
	_c.mutation.SetDateOfBirth(v)
	return _c
}

// SetNillableDateOfBirth sets the "date_of_birth" field if the given value is not nil.
func (_c *PatientProfileCreate) SetNillableDateOfBirth(v *time.Time) *PatientProfileCreate {
	if v != nil {
		_c.SetDateOfBirth(*v)
	}
	return _c
}

// SetGender sets the "gender" field.
func (_c *PatientProfileCreate) SetGender(v patientprofile.Gender) *PatientProfileCreate {
	_c.mutation.SetGender(v)
	return _c
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_c *PatientProfileCreate) SetNillableGender(v *patientprofile.Gender) *PatientProfileCreate {
	if v != nil {
		_c.SetGender(*v)
	}
	return _c
}

// SetContactEncrypted sets the "contact_encrypted" field.
func (_c *PatientProfileCreate) SetContactEncrypted(v string) *PatientProfileCreate {
	_c.mutation.SetContactEncrypted(v)
	return _c
}

// SetNillableContactEncrypted sets the "contact_encrypted" field if the given value is not nil.
func (_c *PatientProfileCreate) SetNillableContactEncrypted(v *string) *PatientProfileCreate {
	if v != nil {
		_c.SetContactEncrypted(*v)
	}
	return _c
}

// SetAddress sets the "address" field.
func (_c *PatientProfileCreate) SetAddress(v string) *PatientProfileCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_c *PatientProfileCreate) SetNillableAddress(v *string) *PatientProfileCreate {
	if v != nil {
		_c.SetAddress(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PatientProfileCreate) SetID(v uuid.UUID) *PatientProfileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PatientProfileCreate) SetNillableID(v *uuid.UUID) *PatientProfileCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the PatientProfileMutation object of the builder.
func (_c *PatientProfileCreate) Mutation() *PatientProfileMutation {
	return _c.mutation
}

// Save creates the PatientProfile in the database.
func (_c *PatientProfileCreate) Save(ctx context.Context) (*PatientProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PatientProfileCreate) SaveX(ctx context.Context) *PatientProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PatientProfileCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := patientprofile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := patientprofile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := patientprofile.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PatientProfileCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "PatientProfile.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "PatientProfile.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "PatientProfile.user_id"`)}
	}
	if v, ok := _c.mutation.Gender(); ok {
		if err := patientprofile.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`repo: validator failed for field "PatientProfile.gender": %w`, err)}
		}
	}
	return nil
}

func (_c *PatientProfileCreate) sqlSave(ctx context.Context) (*PatientProfile, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PatientProfileCreate) createSpec() (*PatientProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &PatientProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(patientprofile.Table, sqlgraph.NewFieldSpec(patientprofile.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(patientprofile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(patientprofile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(patientprofile.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.DateOfBirth(); ok {
		_spec.SetField(patientprofile.FieldDateOfBirth, field.TypeTime, value)
		_node.DateOfBirth = &value
	}
	if value, ok := _c.mutation.Gender(); ok {
		_spec.SetField(patientprofile.FieldGender, field.TypeEnum, value)
		_node.Gender = &value
	}
	if value, ok := _c.mutation.ContactEncrypted(); ok {
		_spec.SetField(patientprofile.FieldContactEncrypted, field.TypeString, value)
		_node.ContactEncrypted = &value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(patientprofile.FieldAddress, field.TypeString, value)
		_node.Address = &value
	}
	return _node, _spec
}

// PatientProfileCreateBulk is the builder for creating many PatientProfile entities in bulk.
type PatientProfileCreateBulk struct {
	config
	err      error
	builders []*PatientProfileCreate
}

// Save creates the PatientProfile entities in the database.
func (_c *PatientProfileCreateBulk) Save(ctx context.Context) ([]*PatientProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PatientProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PatientProfileMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PatientProfileCreateBulk) SaveX(ctx context.Context) []*PatientProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
