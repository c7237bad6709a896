// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/aryabanda/Hospital-management-system/internal/repo/predicate"
	"github.com/aryabanda/Hospital-management-system/internal/repo/treatment"
	"github.com/google/uuid"
)

// TreatmentUpdate is the builder for updating Treatment entities.
type TreatmentUpdate struct {
	config
	hooks    []Hook
	mutation *TreatmentMutation
}

// Where appends a list predicates to the TreatmentUpdate builder.
func (_u *TreatmentUpdate) Where(ps ...predicate.Treatment) *TreatmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAppointmentID sets the "appointment_id" field.
func (_u *TreatmentUpdate) SetAppointmentID(v uuid.UUID) *TreatmentUpdate {
	_u.mutation.SetAppointmentID(v)
	return _u
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_u *TreatmentUpdate) SetNillableAppointmentID(v *uuid.UUID) *TreatmentUpdate {
	if v != nil {
		_u.SetAppointmentID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *TreatmentUpdate) SetDoctorID(v uuid.UUID) *TreatmentUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *TreatmentUpdate) SetNillableDoctorID(v *uuid.UUID) *TreatmentUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *TreatmentUpdate) SetPatientID(v uuid.UUID) *TreatmentUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *TreatmentUpdate) SetNillablePatientID(v *uuid.UUID) *TreatmentUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetDiagnosis sets the "diagnosis" field.
func (_u *TreatmentUpdate) SetDiagnosis(v string) *TreatmentUpdate {
	_u.mutation.SetDiagnosis(v)
	return _u
}

// SetNillableDiagnosis sets the "diagnosis" field if the given value is not nil.
func (_u *TreatmentUpdate) SetNillableDiagnosis(v *string) *TreatmentUpdate {
	if v != nil {
		_u.SetDiagnosis(*v)
	}
	return _u
}

// SetPrescription sets the "prescription" field.
func (_u *TreatmentUpdate) SetPrescription(v string) *TreatmentUpdate {
	_u.mutation.SetPrescription(v)
	return _u
}

// SetNillablePrescription sets the "prescription" field if the given value is not nil.
func (_u *TreatmentUpdate) SetNillablePrescription(v *string) *TreatmentUpdate {
	if v != nil {
		_u.SetPrescription(*v)
	}
	return _u
}

// ClearPrescription clears the value of the "prescription" field.
func (_u *TreatmentUpdate) ClearPrescription() *TreatmentUpdate {
	_u.mutation.ClearPrescription()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *TreatmentUpdate) SetNotes(v string) *TreatmentUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *TreatmentUpdate) SetNillableNotes(v *string) *TreatmentUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *TreatmentUpdate) ClearNotes() *TreatmentUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the TreatmentMutation object of the builder.
func (_u *TreatmentUpdate) Mutation() *TreatmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TreatmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TreatmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TreatmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TreatmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TreatmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(treatment.Table, treatment.Columns, sqlgraph.NewFieldSpec(treatment.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AppointmentID(); ok {
		_spec.SetField(treatment.FieldAppointmentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(treatment.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(treatment.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Diagnosis(); ok {
		_spec.SetField(treatment.FieldDiagnosis, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prescription(); ok {
		_spec.SetField(treatment.FieldPrescription, field.TypeString, value)
	}
	if _u.mutation.PrescriptionCleared() {
		_spec.ClearField(treatment.FieldPrescription, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(treatment.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(treatment.FieldNotes, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{treatment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TreatmentUpdateOne is the builder for updating a single Treatment entity.
type TreatmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TreatmentMutation
}

// SetAppointmentID sets the "appointment_id" field.
func (_u *TreatmentUpdateOne) SetAppointmentID(v uuid.UUID) *TreatmentUpdateOne {
	_u.mutation.SetAppointmentID(v)
	return _u
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_u *TreatmentUpdateOne) SetNillableAppointmentID(v *uuid.UUID) *TreatmentUpdateOne {
	if v != nil {
		_u.SetAppointmentID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *TreatmentUpdateOne) SetDoctorID(v uuid.UUID) *TreatmentUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *TreatmentUpdateOne) SetNillableDoctorID(v *uuid.UUID) *TreatmentUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *TreatmentUpdateOne) SetPatientID(v uuid.UUID) *TreatmentUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *TreatmentUpdateOne) SetNillablePatientID(v *uuid.UUID) *TreatmentUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetDiagnosis sets the "diagnosis" field.
func (_u *TreatmentUpdateOne) SetDiagnosis(v string) *TreatmentUpdateOne {
	_u.mutation.SetDiagnosis(v)
	return _u
}

// SetNillableDiagnosis sets the "diagnosis" field if the given value is not nil.
func (_u *TreatmentUpdateOne) SetNillableDiagnosis(v *string) *TreatmentUpdateOne {
	if v != nil {
		_u.SetDiagnosis(*v)
	}
	return _u
}

// SetPrescription sets the "prescription" field.
func (_u *TreatmentUpdateOne) SetPrescription(v string) *TreatmentUpdateOne {
	_u.mutation.SetPrescription(v)
	return _u
}

// SetNillablePrescription sets the "prescription" field if the given value is not nil.
func (_u *TreatmentUpdateOne) SetNillablePrescription(v *string) *TreatmentUpdateOne {
	if v != nil {
		_u.SetPrescription(*v)
	}
	return _u
}

// ClearPrescription clears the value of the "prescription" field.
func (_u *TreatmentUpdateOne) ClearPrescription() *TreatmentUpdateOne {
	_u.mutation.ClearPrescription()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *TreatmentUpdateOne) SetNotes(v string) *TreatmentUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *TreatmentUpdateOne) SetNillableNotes(v *string) *TreatmentUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *TreatmentUpdateOne) ClearNotes() *TreatmentUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the TreatmentMutation object of the builder.
func (_u *TreatmentUpdateOne) Mutation() *TreatmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the TreatmentUpdate builder.
func (_u *TreatmentUpdateOne) Where(ps ...predicate.Treatment) *TreatmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TreatmentUpdateOne) Select(field string, fields ...string) *TreatmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Treatment entity.
func (_u *TreatmentUpdateOne) Save(ctx context.Context) (*Treatment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TreatmentUpdateOne) SaveX(ctx context.Context) *Treatment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TreatmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TreatmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TreatmentUpdateOne) sqlSave(ctx context.Context) (_node *Treatment, err error) {
	_spec := sqlgraph.NewUpdateSpec(treatment.Table, treatment.Columns, sqlgraph.NewFieldSpec(treatment.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Treatment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, treatment.FieldID)
		for _, f := range fields {
			if !treatment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != treatment.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AppointmentID(); ok {
		_spec.SetField(treatment.FieldAppointmentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(treatment.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(treatment.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Diagnosis(); ok {
		_spec.SetField(treatment.FieldDiagnosis, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prescription(); ok {
		_spec.SetField(treatment.FieldPrescription, field.TypeString, value)
	}
	if _u.mutation.PrescriptionCleared() {
		_spec.ClearField(treatment.FieldPrescription, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(treatment.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(treatment.FieldNotes, field.TypeString)
	}
	_node = &Treatment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{treatment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
