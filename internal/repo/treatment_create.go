// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/aryabanda/Hospital-management-system/internal/repo/treatment"
	"github.com/google/uuid"
)

// TreatmentCreate is the builder for creating a Treatment entity.
type TreatmentCreate struct {
	config
	mutation *TreatmentMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *TreatmentCreate) SetCreatedAt(v time.Time) *TreatmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TreatmentCreate) SetNillableCreatedAt(v *time.Time) *TreatmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetAppointmentID sets the "appointment_id" field.
func (_c *TreatmentCreate) SetAppointmentID(v uuid.UUID) *TreatmentCreate {
	_c.mutation.SetAppointmentID(v)
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *TreatmentCreate) SetDoctorID(v uuid.UUID) *TreatmentCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *TreatmentCreate) SetPatientID(v uuid.UUID) *TreatmentCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetDiagnosis sets the "diagnosis" field.
func (_c *TreatmentCreate) SetDiagnosis(v string) *TreatmentCreate {
	_c.mutation.SetDiagnosis(v)
	return _c
}

// SetPrescription sets the "prescription" field.
func (_c *TreatmentCreate) SetPrescription(v string) *TreatmentCreate {
	_c.mutation.SetPrescription(v)
	return _c
}

// SetNillablePrescription sets the "prescription" field if the given value is not nil.
func (_c *TreatmentCreate) SetNillablePrescription(v *string) *TreatmentCreate {
	if v != nil {
		_c.SetPrescription(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *TreatmentCreate) SetNotes(v string) *TreatmentCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *TreatmentCreate) SetNillableNotes(v *string) *TreatmentCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TreatmentCreate) SetID(v uuid.UUID) *TreatmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TreatmentCreate) SetNillableID(v *uuid.UUID) *TreatmentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the TreatmentMutation object of the builder.
func (_c *TreatmentCreate) Mutation() *TreatmentMutation {
	return _c.mutation
}

// Save creates the Treatment in the database.
func (_c *TreatmentCreate) Save(ctx context.Context) (*Treatment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TreatmentCreate) SaveX(ctx context.Context) *Treatment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TreatmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TreatmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TreatmentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := treatment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := treatment.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TreatmentCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Treatment.created_at"`)}
	}
	if _, ok := _c.mutation.AppointmentID(); !ok {
		return &ValidationError{Name: "appointment_id", err: errors.New(`repo: missing required field "Treatment.appointment_id"`)}
	}
	if _, ok := _c.mutation.DoctorID(); !ok {
		return &ValidationError{Name: "doctor_id", err: errors.New(`repo: missing required field "Treatment.doctor_id"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "Treatment.patient_id"`)}
	}
	if _, ok := _c.mutation.Diagnosis(); !ok {
		return &ValidationError{Name: "diagnosis", err: errors.New(`repo: missing required field "Treatment.diagnosis"`)}
	}
	return nil
}

func (_c *TreatmentCreate) sqlSave(ctx context.Context) (*Treatment, error) {
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

func (_c *TreatmentCreate) createSpec() (*Treatment, *sqlgraph.CreateSpec) {
	var (
		_node = &Treatment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(treatment.Table, sqlgraph.NewFieldSpec(treatment.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(treatment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.AppointmentID(); ok {
		_spec.SetField(treatment.FieldAppointmentID, field.TypeUUID, value)
		_node.AppointmentID = value
	}
	if value, ok := _c.mutation.DoctorID(); ok {
		_spec.SetField(treatment.FieldDoctorID, field.TypeUUID, value)
		_node.DoctorID = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(treatment.FieldPatientID, field.TypeUUID, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.Diagnosis(); ok {
		_spec.SetField(treatment.FieldDiagnosis, field.TypeString, value)
		_node.Diagnosis = value
	}
	if value, ok := _c.mutation.Prescription(); ok {
		_spec.SetField(treatment.FieldPrescription, field.TypeString, value)
		_node.Prescription = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(treatment.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	return _node, _spec
}

// TreatmentCreateBulk is the builder for creating many Treatment entities in bulk.
type TreatmentCreateBulk struct {
	config
	err      error
	builders []*TreatmentCreate
}

// Save creates the Treatment entities in the database.
func (_c *TreatmentCreateBulk) Save(ctx context.Context) ([]*Treatment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Treatment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TreatmentMutation)
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
func (_c *TreatmentCreateBulk) SaveX(ctx context.Context) []*Treatment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TreatmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TreatmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
