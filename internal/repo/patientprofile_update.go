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
	"github.com/aryabanda/Hospital-management-system/internal/repo/patientprofile"
	"github.com/aryabanda/Hospital-management-system/internal/repo/predicate"
	"github.com/google/uuid"
)

// PatientProfileUpdate is the builder for updating PatientProfile entities.
type PatientProfileUpdate struct {
	config
	hooks    []Hook
	mutation *PatientProfileMutation
}

// Where appends a list predicates to the PatientProfileUpdate builder.
func (_u *PatientProfileUpdate) Where(ps ...predicate.PatientProfile) *PatientProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PatientProfileUpdate) SetUpdatedAt(v time.Time) *PatientProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PatientProfileUpdate) SetUserID(v uuid.UUID) *PatientProfileUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PatientProfileUpdate) SetNillableUserID(v *uuid.UUID) *PatientProfileUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDateOfBirth sets the "date_of_birth" field.
func (_u *PatientProfileUpdate) SetDateOfBirth(v time.Time) *PatientProfileUpdate {
	_u.mutation.SetDateOfBirth(v)
	return _u
}

// SetNillableDateOfBirth sets the "date_of_birth" field if the given value is not nil.
func (_u *PatientProfileUpdate) SetNillableDateOfBirth(v *time.Time) *PatientProfileUpdate {
	if v != nil {
		_u.SetDateOfBirth(*v)
	}
	return _u
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (_u *PatientProfileUpdate) ClearDateOfBirth() *PatientProfileUpdate {
	_u.mutation.ClearDateOfBirth()
	return _u
}

// SetGender sets the "gender" field.
func (_u *PatientProfileUpdate) SetGender(v patientprofile.Gender) *PatientProfileUpdate {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *PatientProfileUpdate) SetNillableGender(v *patientprofile.Gender) *PatientProfileUpdate {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// ClearGender clears the value of the "gender" field.
func (_u *PatientProfileUpdate) ClearGender() *PatientProfileUpdate {
	_u.mutation.ClearGender()
	return _u
}

// SetContactEncrypted sets the "contact_encrypted" field.
func (_u *PatientProfileUpdate) SetContactEncrypted(v string) *PatientProfileUpdate {
	_u.mutation.SetContactEncrypted(v)
	return _u
}

// SetNillableContactEncrypted sets the "contact_encrypted" field if the given value is not nil.
func (_u *PatientProfileUpdate) SetNillableContactEncrypted(v *string) *PatientProfileUpdate {
	if v != nil {
		_u.SetContactEncrypted(*v)
	}
	return _u
}

// ClearContactEncrypted clears the value of the "contact_encrypted" field.
func (_u *PatientProfileUpdate) ClearContactEncrypted() *PatientProfileUpdate {
	_u.mutation.ClearContactEncrypted()
	return _u
}

// SetAddress sets the "address" field.
func (_u *PatientProfileUpdate) SetAddress(v string) *PatientProfileUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *PatientProfileUpdate) SetNillableAddress(v *string) *PatientProfileUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *PatientProfileUpdate) ClearAddress() *PatientProfileUpdate {
	_u.mutation.ClearAddress()
	return _u
}

// Mutation returns the PatientProfileMutation object of the builder.
func (_u *PatientProfileUpdate) Mutation() *PatientProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PatientProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PatientProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PatientProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := patientprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientProfileUpdate) check() error {
	if v, ok := _u.mutation.Gender(); ok {
		if err := patientprofile.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`repo: validator failed for field "PatientProfile.gender": %w`, err)}
		}
	}
	return nil
}

func (_u *PatientProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patientprofile.Table, patientprofile.Columns, sqlgraph.NewFieldSpec(patientprofile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(patientprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(patientprofile.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DateOfBirth(); ok {
		_spec.SetField(patientprofile.FieldDateOfBirth, field.TypeTime, value)
	}
	if _u.mutation.DateOfBirthCleared() {
		_spec.ClearField(patientprofile.FieldDateOfBirth, field.TypeTime)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(patientprofile.FieldGender, field.TypeEnum, value)
	}
	if _u.mutation.GenderCleared() {
		_spec.ClearField(patientprofile.FieldGender, field.TypeEnum)
	}
	if value, ok := _u.mutation.ContactEncrypted(); ok {
		_spec.SetField(patientprofile.FieldContactEncrypted, field.TypeString, value)
	}
	if _u.mutation.ContactEncryptedCleared() {
		_spec.ClearField(patientprofile.FieldContactEncrypted, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(patientprofile.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(patientprofile.FieldAddress, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patientprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PatientProfileUpdateOne is the builder for updating a single PatientProfile entity.
type PatientProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PatientProfileMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PatientProfileUpdateOne) SetUpdatedAt(v time.Time) *PatientProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PatientProfileUpdateOne) SetUserID(v uuid.UUID) *PatientProfileUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PatientProfileUpdateOne) SetNillableUserID(v *uuid.UUID) *PatientProfileUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDateOfBirth sets the "date_of_birth" field.
func (_u *PatientProfileUpdateOne) SetDateOfBirth(v time.Time) *PatientProfileUpdateOne {
	_u.mutation.SetDateOfBirth(v)
	return _u
}

// SetNillableDateOfBirth sets the "date_of_birth" field if the given value is not nil.
func (_u *PatientProfileUpdateOne) SetNillableDateOfBirth(v *time.Time) *PatientProfileUpdateOne {
	if v != nil {
		_u.SetDateOfBirth(*v)
	}
	return _u
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (_u *PatientProfileUpdateOne) ClearDateOfBirth() *PatientProfileUpdateOne {
	_u.mutation.ClearDateOfBirth()
	return _u
}

// SetGender sets the "gender" field.
func (_u *PatientProfileUpdateOne) SetGender(v patientprofile.Gender) *PatientProfileUpdateOne {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *PatientProfileUpdateOne) SetNillableGender(v *patientprofile.Gender) *PatientProfileUpdateOne {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// ClearGender clears the value of the "gender" field.
func (_u *PatientProfileUpdateOne) ClearGender() *PatientProfileUpdateOne {
	_u.mutation.ClearGender()
	return _u
}

// SetContactEncrypted sets the "contact_encrypted" field.
func (_u *PatientProfileUpdateOne) SetContactEncrypted(v string) *PatientProfileUpdateOne {
	_u.mutation.SetContactEncrypted(v)
	return _u
}

// SetNillableContactEncrypted sets the "contact_encrypted" field if the given value is not nil.
func (_u *PatientProfileUpdateOne) SetNillableContactEncrypted(v *string) *PatientProfileUpdateOne {
	if v != nil {
		_u.SetContactEncrypted(*v)
	}
	return _u
}

// ClearContactEncrypted clears the value of the "contact_encrypted" field.
func (_u *PatientProfileUpdateOne) ClearContactEncrypted() *PatientProfileUpdateOne {
	_u.mutation.ClearContactEncrypted()
	return _u
}

// SetAddress sets the "address" field.
func (_u *PatientProfileUpdateOne) SetAddress(v string) *PatientProfileUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *PatientProfileUpdateOne) SetNillableAddress(v *string) *PatientProfileUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *PatientProfileUpdateOne) ClearAddress() *PatientProfileUpdateOne {
	_u.mutation.ClearAddress()
	return _u
}

// Mutation returns the PatientProfileMutation object of the builder.
func (_u *PatientProfileUpdateOne) Mutation() *PatientProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the PatientProfileUpdate builder.
func (_u *PatientProfileUpdateOne) Where(ps ...predicate.PatientProfile) *PatientProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PatientProfileUpdateOne) Select(field string, fields ...string) *PatientProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PatientProfile entity.
func (_u *PatientProfileUpdateOne) Save(ctx context.Context) (*PatientProfile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientProfileUpdateOne) SaveX(ctx context.Context) *PatientProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PatientProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PatientProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := patientprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientProfileUpdateOne) check() error {
	if v, ok := _u.mutation.Gender(); ok {
		if err := patientprofile.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`repo: validator failed for field "PatientProfile.gender": %w`, err)}
		}
	}
	return nil
}

func (_u *PatientProfileUpdateOne) sqlSave(ctx context.Context) (_node *PatientProfile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patientprofile.Table, patientprofile.Columns, sqlgraph.NewFieldSpec(patientprofile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "PatientProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, patientprofile.FieldID)
		for _, f := range fields {
			if !patientprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != patientprofile.FieldID {
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
		_spec.SetField(patientprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(patientprofile.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DateOfBirth(); ok {
		_spec.SetField(patientprofile.FieldDateOfBirth, field.TypeTime, value)
	}
	if _u.mutation.DateOfBirthCleared() {
		_spec.ClearField(patientprofile.FieldDateOfBirth, field.TypeTime)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(patientprofile.FieldGender, field.TypeEnum, value)
	}
	if _u.mutation.GenderCleared() {
		_spec.ClearField(patientprofile.FieldGender, field.TypeEnum)
	}
	if value, ok := _u.mutation.ContactEncrypted(); ok {
		_spec.SetField(patientprofile.FieldContactEncrypted, field.TypeString, value)
	}
	if _u.mutation.ContactEncryptedCleared() {
		_spec.ClearField(patientprofile.FieldContactEncrypted, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(patientprofile.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(patientprofile.FieldAddress, field.TypeString)
	}
	_node = &PatientProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patientprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
