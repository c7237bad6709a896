// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/aryabanda/Hospital-management-system/internal/repo/doctorprofile"
	"github.com/google/uuid"
)

// DoctorProfileCreate is the builder for creating a DoctorProfile entity.
type DoctorProfileCreate struct {
	config
	mutation *DoctorProfileMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *DoctorProfileCreate) SetCreatedAt(v time.Time) *DoctorProfileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DoctorProfileCreate) SetNillableCreatedAt(v *time.Time) *DoctorProfileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DoctorProfileCreate) SetUpdatedAt(v time.Time) *DoctorProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DoctorProfileCreate) SetNillableUpdatedAt(v *time.Time) *DoctorProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *DoctorProfileCreate) SetUserID(v uuid.UUID) *DoctorProfileCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetDepartmentID sets the "department_id" field.
func (_c *DoctorProfileCreate) SetDepartmentID(v uuid.UUID) *DoctorProfileCreate {
	_c.mutation.SetDepartmentID(v)
	return _c
}

// SetNillableDepartmentID sets the "department_id" field if the given value is not nil.
func (_c *DoctorProfileCreate) SetNillableDepartmentID(v *uuid.UUID) *DoctorProfileCreate {
	if v != nil {
		_c.SetDepartmentID(*v)
	}
	return _c
}

// SetQualification sets the "qualification" field.
func (_c *DoctorProfileCreate) SetQualification(v string) *DoctorProfileCreate {
	_c.mutation.SetQualification(v)
	return _c
}

// SetNillableQualification sets the "qualification" field if the given value is not nil.
func (_c *DoctorProfileCreate) SetNillableQualification(v *string) *DoctorProfileCreate {
	if v != nil {
		_c.SetQualification(*v)
	}
	return _c
}

// SetExperienceYears sets the "experience_years" field.
func (_c *DoctorProfileCreate) SetExperienceYears(v int) *DoctorProfileCreate {
	_c.mutation.SetExperienceYears(v)
	return _c
}

// SetNillableExperienceYears sets the "experience_years" field if the given value is not nil.
func (_c *DoctorProfileCreate) SetNillableExperienceYears(v *int) *DoctorProfileCreate {
	if v != nil {
		_c.SetExperienceYears(*v)
	}
	return _c
}

// SetAvailability sets the "availability" field.
func (_c *DoctorProfileCreate) SetAvailability(v map[string]bool) *DoctorProfileCreate {
	_c.mutation.SetAvailability(v)
	return _c
}

// SetApproved sets the "approved" field.
func (_c *DoctorProfileCreate) SetApproved(v bool) *DoctorProfileCreate {
	_c.mutation.SetApproved(v)
	return _c
}

// SetNillableApproved sets the "approved" field if the given value is not nil.
func (_c *DoctorProfileCreate) SetNillableApproved(v *bool) *DoctorProfileCreate {
	if v != nil {
		_c.SetApproved(*v)
	}
	return _c
}

// SetBlocked sets the "blocked" field.
func (_c *DoctorProfileCreate) SetBlocked(v bool) *DoctorProfileCreate {
	_c.mutation.SetBlocked(v)
	return _c
}

// SetNillableBlocked sets the "blocked" field if the given value is not nil.
func (_c *DoctorProfileCreate) SetNillableBlocked(v *bool) *DoctorProfileCreate {
	if v != nil {
		_c.SetBlocked(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DoctorProfileCreate) SetID(v uuid.UUID) *DoctorProfileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DoctorProfileCreate) SetNillableID(v *uuid.UUID) *DoctorProfileCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the DoctorProfileMutation object of the builder.
func (_c *DoctorProfileCreate) Mutation() *DoctorProfileMutation {
	return _c.mutation
}

// Save creates the DoctorProfile in the database.
func (_c *DoctorProfileCreate) Save(ctx context.Context) (*DoctorProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DoctorProfileCreate) SaveX(ctx context.Context) *DoctorProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DoctorProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DoctorProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DoctorProfileCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := doctorprofile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := doctorprofile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ExperienceYears(); !ok {
		v := doctorprofile.DefaultExperienceYears
		_c.mutation.SetExperienceYears(v)
	}
	if _, ok := _c.mutation.Availability(); !ok {
		v := doctorprofile.DefaultAvailability
		_c.mutation.SetAvailability(v)
	}
	if _, ok := _c.mutation.Approved(); !ok {
		v := doctorprofile.DefaultApproved
		_c.mutation.SetApproved(v)
	}
	if _, ok := _c.mutation.Blocked(); !ok {
		v := doctorprofile.DefaultBlocked
		_c.mutation.SetBlocked(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := doctorprofile.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DoctorProfileCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "DoctorProfile.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "DoctorProfile.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "DoctorProfile.user_id"`)}
	}
	if v, ok := _c.mutation.Qualification(); ok {
		if err := doctorprofile.QualificationValidator(v); err != nil {
			return &ValidationError{Name: "qualification", err: fmt.Errorf(`repo: validator failed for field "DoctorProfile.qualification": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExperienceYears(); !ok {
		return &ValidationError{Name: "experience_years", err: errors.New(`repo: missing required field "DoctorProfile.experience_years"`)}
	}
	if v, ok := _c.mutation.ExperienceYears(); ok {
		if err := doctorprofile.ExperienceYearsValidator(v); err != nil {
			return &ValidationError{Name: "experience_years", err: fmt.Errorf(`repo: validator failed for field "DoctorProfile.experience_years": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Approved(); !ok {
		return &ValidationError{Name: "approved", err: errors.New(`repo: missing required field "DoctorProfile.approved"`)}
	}
	if _, ok := _c.mutation.Blocked(); !ok {
		return &ValidationError{Name: "blocked", err: errors.New(`repo: missing required field "DoctorProfile.blocked"`)}
	}
	return nil
}

func (_c *DoctorProfileCreate) sqlSave(ctx context.Context) (*DoctorProfile, error) {
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

func (_c *DoctorProfileCreate) createSpec() (*DoctorProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &DoctorProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(doctorprofile.Table, sqlgraph.NewFieldSpec(doctorprofile.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(doctorprofile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(doctorprofile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(doctorprofile.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.DepartmentID(); ok {
		_spec.SetField(doctorprofile.FieldDepartmentID, field.TypeUUID, value)
		_node.DepartmentID = &value
	}
	if value, ok := _c.mutation.Qualification(); ok {
		_spec.SetField(doctorprofile.FieldQualification, field.TypeString, value)
		_node.Qualification = &value
	}
	if value, ok := _c.mutation.ExperienceYears(); ok {
		_spec.SetField(doctorprofile.FieldExperienceYears, field.TypeInt, value)
		_node.ExperienceYears = value
	}
	if value, ok := _c.mutation.Availability(); ok {
		_spec.SetField(doctorprofile.FieldAvailability, field.TypeJSON, value)
		_node.Availability = value
	}
	if value, ok := _c.mutation.Approved(); ok {
		_spec.SetField(doctorprofile.FieldApproved, field.TypeBool, value)
		_node.Approved = value
	}
	if value, ok := _c.mutation.Blocked(); ok {
		_spec.SetField(doctorprofile.FieldBlocked, field.TypeBool, value)
		_node.Blocked = value
	}
	return _node, _spec
}

// DoctorProfileCreateBulk is the builder for creating many DoctorProfile entities in bulk.
type DoctorProfileCreateBulk struct {
	config
	err      error
	builders []*DoctorProfileCreate
}

// Save creates the DoctorProfile entities in the database.
func (_c *DoctorProfileCreateBulk) Save(ctx context.Context) ([]*DoctorProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DoctorProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DoctorProfileMutation)
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
func (_c *DoctorProfileCreateBulk) SaveX(ctx context.Context) []*DoctorProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DoctorProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DoctorProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
