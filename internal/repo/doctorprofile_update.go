// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/aryabanda/Hospital-management-system/internal/repo/doctorprofile"
	"github.com/aryabanda/Hospital-management-system/internal/repo/predicate"
	"github.com/google/uuid"
)

// DoctorProfileUpdate is the builder for updating DoctorProfile entities.
type DoctorProfileUpdate struct {
	config
	hooks    []Hook
	mutation *DoctorProfileMutation
}

// Where appends a list predicates to the DoctorProfileUpdate builder.
func (_u *DoctorProfileUpdate) Where(ps ...predicate.DoctorProfile) *DoctorProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DoctorProfileUpdate) SetUpdatedAt(v time.Time) *DoctorProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *DoctorProfileUpdate) SetUserID(v uuid.UUID) *DoctorProfileUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DoctorProfileUpdate) SetNillableUserID(v *uuid.UUID) *DoctorProfileUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDepartmentID sets the "department_id" field.
func (_u *DoctorProfileUpdate) SetDepartmentID(v uuid.UUID) *DoctorProfileUpdate {
	_u.mutation.SetDepartmentID(v)
	return _u
}

// SetNillableDepartmentID sets the "department_id" field if the given value is not nil.
func (_u *DoctorProfileUpdate) SetNillableDepartmentID(v *uuid.UUID) *DoctorProfileUpdate {
	if v != nil {
		_u.SetDepartmentID(*v)
	}
	return _u
}

// ClearDepartmentID clears the value of the "department_id" field.
func (_u *DoctorProfileUpdate) ClearDepartmentID() *DoctorProfileUpdate {
	_u.mutation.ClearDepartmentID()
	return _u
}

// SetQualification sets the "qualification" field.
func (_u *DoctorProfileUpdate) SetQualification(v string) *DoctorProfileUpdate {
	_u.mutation.SetQualification(v)
	return _u
}

// SetNillableQualification sets the "qualification" field if the given value is not nil.
func (_u *DoctorProfileUpdate) SetNillableQualification(v *string) *DoctorProfileUpdate {
	if v != nil {
		_u.SetQualification(*v)
	}
	return _u
}

// ClearQualification clears the value of the "qualification" field.
func (_u *DoctorProfileUpdate) ClearQualification() *DoctorProfileUpdate {
	_u.mutation.ClearQualification()
	return _u
}

// SetExperienceYears sets the "experience_years" field.
func (_u *DoctorProfileUpdate) SetExperienceYears(v int) *DoctorProfileUpdate {
	_u.mutation.ResetExperienceYears()
	_u.mutation.SetExperienceYears(v)
	return _u
}

// SetNillableExperienceYears sets the "experience_years" field if the given value is not nil.
func (_u *DoctorProfileUpdate) SetNillableExperienceYears(v *int) *DoctorProfileUpdate {
	if v != nil {
		_u.SetExperienceYears(*v)
	}
	return _u
}

// AddExperienceYears adds value to the "experience_years" field.
func (_u *DoctorProfileUpdate) AddExperienceYears(v int) *DoctorProfileUpdate {
	_u.mutation.AddExperienceYears(v)
	return _u
}

// SetAvailability sets the "availability" field.
func (_u *DoctorProfileUpdate) SetAvailability(v map[string]bool) *DoctorProfileUpdate {
	_u.mutation.SetAvailability(v)
	return _u
}

// ClearAvailability clears the value of the "availability" field.
func (_u *DoctorProfileUpdate) ClearAvailability() *DoctorProfileUpdate {
	_u.mutation.ClearAvailability()
	return _u
}

// SetApproved sets the "approved" field.
func (_u *DoctorProfileUpdate) SetApproved(v bool) *DoctorProfileUpdate {
	_u.mutation.SetApproved(v)
	return _u
}

// SetNillableApproved sets the "approved" field if the given value is not nil.
func (_u *DoctorProfileUpdate) SetNillableApproved(v *bool) *DoctorProfileUpdate {
	if v != nil {
		_u.SetApproved(*v)
	}
	return _u
}

// SetBlocked sets the "blocked" field.
func (_u *DoctorProfileUpdate) SetBlocked(v bool) *DoctorProfileUpdate {
	_u.mutation.SetBlocked(v)
	return _u
}

// SetNillableBlocked sets the "blocked" field if the given value is not nil.
func (_u *DoctorProfileUpdate) SetNillableBlocked(v *bool) *DoctorProfileUpdate {
	if v != nil {
		_u.SetBlocked(*v)
	}
	return _u
}

// Mutation returns the DoctorProfileMutation object of the builder.
func (_u *DoctorProfileUpdate) Mutation() *DoctorProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DoctorProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DoctorProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DoctorProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := doctorprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoctorProfileUpdate) check() error {
	if v, ok := _u.mutation.Qualification(); ok {
		if err := doctorprofile.QualificationValidator(v); err != nil {
			return &ValidationError{Name: "qualification", err: fmt.Errorf(`repo: validator failed for field "DoctorProfile.qualification": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExperienceYears(); ok {
		if err := doctorprofile.ExperienceYearsValidator(v); err != nil {
			return &ValidationError{Name: "experience_years", err: fmt.Errorf(`repo: validator failed for field "DoctorProfile.experience_years": %w`, err)}
		}
	}
	return nil
}

func (_u *DoctorProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(doctorprofile.Table, doctorprofile.Columns, sqlgraph.NewFieldSpec(doctorprofile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(doctorprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(doctorprofile.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DepartmentID(); ok {
		_spec.SetField(doctorprofile.FieldDepartmentID, field.TypeUUID, value)
	}
	if _u.mutation.DepartmentIDCleared() {
		_spec.ClearField(doctorprofile.FieldDepartmentID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Qualification(); ok {
		_spec.SetField(doctorprofile.FieldQualification, field.TypeString, value)
	}
	if _u.mutation.QualificationCleared() {
		_spec.ClearField(doctorprofile.FieldQualification, field.TypeString)
	}
	if value, ok := _u.mutation.ExperienceYears(); ok {
		_spec.SetField(doctorprofile.FieldExperienceYears, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExperienceYears(); ok {
		_spec.AddField(doctorprofile.FieldExperienceYears, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Availability(); ok {
		_spec.SetField(doctorprofile.FieldAvailability, field.TypeJSON, value)
	}
	if _u.mutation.AvailabilityCleared() {
		_spec.ClearField(doctorprofile.FieldAvailability, field.TypeJSON)
	}
	if value, ok := _u.mutation.Approved(); ok {
		_spec.SetField(doctorprofile.FieldApproved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Blocked(); ok {
		_spec.SetField(doctorprofile.FieldBlocked, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doctorprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DoctorProfileUpdateOne is the builder for updating a single DoctorProfile entity.
type DoctorProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DoctorProfileMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DoctorProfileUpdateOne) SetUpdatedAt(v time.Time) *DoctorProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *DoctorProfileUpdateOne) SetUserID(v uuid.UUID) *DoctorProfileUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DoctorProfileUpdateOne) SetNillableUserID(v *uuid.UUID) *DoctorProfileUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDepartmentID sets the "department_id" field.
func (_u *DoctorProfileUpdateOne) SetDepartmentID(v uuid.UUID) *DoctorProfileUpdateOne {
	_u.mutation.SetDepartmentID(v)
	return _u
}

// SetNillableDepartmentID sets the "department_id" field if the given value is not nil.
func (_u *DoctorProfileUpdateOne) SetNillableDepartmentID(v *uuid.UUID) *DoctorProfileUpdateOne {
	if v != nil {
		_u.SetDepartmentID(*v)
	}
	return _u
}

// ClearDepartmentID clears the value of the "department_id" field.
func (_u *DoctorProfileUpdateOne) ClearDepartmentID() *DoctorProfileUpdateOne {
	_u.mutation.ClearDepartmentID()
	return _u
}

// SetQualification sets the "qualification" field.
func (_u *DoctorProfileUpdateOne) SetQualification(v string) *DoctorProfileUpdateOne {
	_u.mutation.SetQualification(v)
	return _u
}

// SetNillableQualification sets the "qualification" field if the given value is not nil.
func (_u *DoctorProfileUpdateOne) SetNillableQualification(v *string) *DoctorProfileUpdateOne {
	if v != nil {
		_u.SetQualification(*v)
	}
	return _u
}

// ClearQualification clears the value of the "qualification" field.
func (_u *DoctorProfileUpdateOne) ClearQualification() *DoctorProfileUpdateOne {
	_u.mutation.ClearQualification()
	return _u
}

// SetExperienceYears sets the "experience_years" field.
func (_u *DoctorProfileUpdateOne) SetExperienceYears(v int) *DoctorProfileUpdateOne {
	_u.mutation.ResetExperienceYears()
	_u.mutation.SetExperienceYears(v)
	return _u
}

// SetNillableExperienceYears sets the "experience_years" field if the given value is not nil.
func (_u *DoctorProfileUpdateOne) SetNillableExperienceYears(v *int) *DoctorProfileUpdateOne {
	if v != nil {
		_u.SetExperienceYears(*v)
	}
	return _u
}

// AddExperienceYears adds value to the "experience_years" field.
func (_u *DoctorProfileUpdateOne) AddExperienceYears(v int) *DoctorProfileUpdateOne {
	_u.mutation.AddExperienceYears(v)
	return _u
}

// SetAvailability sets the "availability" field.
func (_u *DoctorProfileUpdateOne) SetAvailability(v map[string]bool) *DoctorProfileUpdateOne {
	_u.mutation.SetAvailability(v)
	return _u
}

// ClearAvailability clears the value of the "availability" field.
func (_u *DoctorProfileUpdateOne) ClearAvailability() *DoctorProfileUpdateOne {
	_u.mutation.ClearAvailability()
	return _u
}

// SetApproved sets the "approved" field.
func (_u *DoctorProfileUpdateOne) SetApproved(v bool) *DoctorProfileUpdateOne {
	_u.mutation.SetApproved(v)
	return _u
}

// SetNillableApproved sets the "approved" field if the given value is not nil.
func (_u *DoctorProfileUpdateOne) SetNillableApproved(v *bool) *DoctorProfileUpdateOne {
	if v != nil {
		_u.SetApproved(*v)
	}
	return _u
}

// SetBlocked sets the "blocked" field.
func (_u *DoctorProfileUpdateOne) SetBlocked(v bool) *DoctorProfileUpdateOne {
	_u.mutation.SetBlocked(v)
	return _u
}

// SetNillableBlocked sets the "blocked" field if the given value is not nil.
func (_u *DoctorProfileUpdateOne) SetNillableBlocked(v *bool) *DoctorProfileUpdateOne {
	if v != nil {
		_u.SetBlocked(*v)
	}
	return _u
}

// Mutation returns the DoctorProfileMutation object of the builder.
func (_u *DoctorProfileUpdateOne) Mutation() *DoctorProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the DoctorProfileUpdate builder.
func (_u *DoctorProfileUpdateOne) Where(ps ...predicate.DoctorProfile) *DoctorProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DoctorProfileUpdateOne) Select(field string, fields ...string) *DoctorProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DoctorProfile entity.
func (_u *DoctorProfileUpdateOne) Save(ctx context.Context) (*DoctorProfile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorProfileUpdateOne) SaveX(ctx context.Context) *DoctorProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DoctorProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DoctorProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := doctorprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoctorProfileUpdateOne) check() error {
	if v, ok := _u.mutation.Qualification(); ok {
		if err := doctorprofile.QualificationValidator(v); err != nil {
			return &ValidationError{Name: "qualification", err: fmt.Errorf(`repo: validator failed for field "DoctorProfile.qualification": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExperienceYears(); ok {
		if err := doctorprofile.ExperienceYearsValidator(v); err != nil {
			return &ValidationError{Name: "experience_years", err: fmt.Errorf(`repo: validator failed for field "DoctorProfile.experience_years": %w`, err)}
		}
	}
	return nil
}

func (_u *DoctorProfileUpdateOne) sqlSave(ctx context.Context) (_node *DoctorProfile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(doctorprofile.Table, doctorprofile.Columns, sqlgraph.NewFieldSpec(doctorprofile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "DoctorProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, doctorprofile.FieldID)
		for _, f := range fields {
			if !doctorprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != doctorprofile.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(doctorprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(doctorprofile.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DepartmentID(); ok {
		_spec.SetField(doctorprofile.FieldDepartmentID, field.TypeUUID, value)
	}
	if _u.mutation.DepartmentIDCleared() {
		_spec.ClearField(doctorprofile.FieldDepartmentID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Qualification(); ok {
		_spec.SetField(doctorprofile.FieldQualification, field.TypeString, value)
	}
	if _u.mutation.QualificationCleared() {
		_spec.ClearField(doctorprofile.FieldQualification, field.TypeString)
	}
	if value, ok := _u.mutation.ExperienceYears(); ok {
		_spec.SetField(doctorprofile.FieldExperienceYears, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExperienceYears(); ok {
		_spec.AddField(doctorprofile.FieldExperienceYears, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Availability(); ok {
		_spec.SetField(doctorprofile.FieldAvailability, field.TypeJSON, value)
	}
	if _u.mutation.AvailabilityCleared() {
		_spec.ClearField(doctorprofile.FieldAvailability, field.TypeJSON)
	}
	if value, ok := _u.mutation.Approved(); ok {
		_spec.SetField(doctorprofile.FieldApproved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Blocked(); ok {
		_spec.SetField(doctorprofile.FieldBlocked, field.TypeBool, value)
	}
	_node = &DoctorProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doctorprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
