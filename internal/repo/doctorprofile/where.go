// Code generated by ent, DO NOT EDIT.

package doctorprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/aryabanda/Hospital-management-system/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldEQ(FieldUserID, v))
}

// DepartmentID applies equality check predicate on the "department_id" field. It's identical to DepartmentIDEQ.
func DepartmentID(v uuid.UUID) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldEQ(FieldDepartmentID, v))
}

// Qualification applies equality check predicate on the "qualification" field. It's identical to QualificationEQ.
func Qualification(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldEQ(FieldQualification, v))
}

// ExperienceYears applies equality check predicate on the "experience_years" field. It's identical to ExperienceYearsEQ.
func ExperienceYears(v int) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldEQ(FieldExperienceYears, v))
}

// Approved applies equality check predicate on the "approved" field. It's identical to ApprovedEQ.
func Approved(v bool) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldEQ(FieldApproved, v))
}

// Blocked applies equality check predicate on the "blocked" field. It's identical to BlockedEQ.
func Blocked(v bool) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldEQ(FieldBlocked, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldLTE(FieldUserID, v))
}

// DepartmentIDEQ applies the EQ predicate on the "department_id" field.
func DepartmentIDEQ(v uuid.UUID) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldEQ(FieldDepartmentID, v))
}

// DepartmentIDNEQ applies the NEQ predicate on the "department_id" field.
func DepartmentIDNEQ(v uuid.UUID) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldNEQ(FieldDepartmentID, v))
}

// DepartmentIDIn applies the In predicate on the "department_id" field.
func DepartmentIDIn(vs ...uuid.UUID) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldIn(FieldDepartmentID, vs...))
}

// DepartmentIDNotIn applies the NotIn predicate on the "department_id" field.
func DepartmentIDNotIn(vs ...uuid.UUID) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldNotIn(FieldDepartmentID, vs...))
}

// DepartmentIDGT applies the GT predicate on the "department_id" field.
func DepartmentIDGT(v uuid.UUID) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldGT(FieldDepartmentID, v))
}

// DepartmentIDGTE applies the GTE predicate on the "department_id" field.
func DepartmentIDGTE(v uuid.UUID) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldGTE(FieldDepartmentID, v))
}

// DepartmentIDLT applies the LT predicate on the "department_id" field.
func DepartmentIDLT(v uuid.UUID) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldLT(FieldDepartmentID, v))
}

// DepartmentIDLTE applies the LTE predicate on the "department_id" field.
func DepartmentIDLTE(v uuid.UUID) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldLTE(FieldDepartmentID, v))
}

// DepartmentIDIsNil applies the IsNil predicate on the "department_id" field.
func DepartmentIDIsNil() predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldIsNull(FieldDepartmentID))
}

// DepartmentIDNotNil applies the NotNil predicate on the "department_id" field.
func DepartmentIDNotNil() predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldNotNull(FieldDepartmentID))
}

// QualificationEQ applies the EQ predicate on the "qualification" field.
func QualificationEQ(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldEQ(FieldQualification, v))
}

// QualificationNEQ applies the NEQ predicate on the "qualification" field.
func QualificationNEQ(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldNEQ(FieldQualification, v))
}

// QualificationIn applies the In predicate on the "qualification" field.
func QualificationIn(vs ...string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldIn(FieldQualification, vs...))
}

// QualificationNotIn applies the NotIn predicate on the "qualification" field.
func QualificationNotIn(vs ...string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldNotIn(FieldQualification, vs...))
}

// QualificationGT applies the GT predicate on the "qualification" field.
func QualificationGT(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldGT(FieldQualification, v))
}

// QualificationGTE applies the GTE predicate on the "qualification" field.
func QualificationGTE(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldGTE(FieldQualification, v))
}

// QualificationLT applies the LT predicate on the "qualification" field.
func QualificationLT(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldLT(FieldQualification, v))
}

// QualificationLTE applies the LTE predicate on the "qualification" field.
func QualificationLTE(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldLTE(FieldQualification, v))
}

// QualificationContains applies the Contains predicate on the "qualification" field.
func QualificationContains(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldContains(FieldQualification, v))
}

// QualificationHasPrefix applies the HasPrefix predicate on the "qualification" field.
func QualificationHasPrefix(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldHasPrefix(FieldQualification, v))
}

// QualificationHasSuffix applies the HasSuffix predicate on the "qualification" field.
func QualificationHasSuffix(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldHasSuffix(FieldQualification, v))
}

// QualificationIsNil applies the IsNil predicate on the "qualification" field.
func QualificationIsNil() predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldIsNull(FieldQualification))
}

// QualificationNotNil applies the NotNil predicate on the "qualification" field.
func QualificationNotNil() predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldNotNull(FieldQualification))
}

// QualificationEqualFold applies the EqualFold predicate on the "qualification" field.
func QualificationEqualFold(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldEqualFold(FieldQualification, v))
}

// QualificationContainsFold applies the ContainsFold predicate on the "qualification" field.
func QualificationContainsFold(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldContainsFold(FieldQualification, v))
}

// ExperienceYearsEQ applies the EQ predicate on the "experience_years" field.
func ExperienceYearsEQ(v int) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldEQ(FieldExperienceYears, v))
}

// ExperienceYearsNEQ applies the NEQ predicate on the "experience_years" field.
func ExperienceYearsNEQ(v int) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldNEQ(FieldExperienceYears, v))
}

// ExperienceYearsIn applies the In predicate on the "experience_years" field.
func ExperienceYearsIn(vs ...int) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldIn(FieldExperienceYears, vs...))
}

// ExperienceYearsNotIn applies the NotIn predicate on the "experience_years" field.
func ExperienceYearsNotIn(vs ...int) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldNotIn(FieldExperienceYears, vs...))
}

// ExperienceYearsGT applies the GT predicate on the "experience_years" field.
func ExperienceYearsGT(v int) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldGT(FieldExperienceYears, v))
}

// ExperienceYearsGTE applies the GTE predicate on the "experience_years" field.
func ExperienceYearsGTE(v int) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldGTE(FieldExperienceYears, v))
}

// ExperienceYearsLT applies the LT predicate on the "experience_years" field.
func ExperienceYearsLT(v int) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldLT(FieldExperienceYears, v))
}

// ExperienceYearsLTE applies the LTE predicate on the "experience_years" field.
func ExperienceYearsLTE(v int) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldLTE(FieldExperienceYears, v))
}

// AvailabilityIsNil applies the IsNil predicate on the "availability" field.
func AvailabilityIsNil() predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldIsNull(FieldAvailability))
}

// AvailabilityNotNil applies the NotNil predicate on the "availability" field.
func AvailabilityNotNil() predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldNotNull(FieldAvailability))
}

// ApprovedEQ applies the EQ predicate on the "approved" field.
func ApprovedEQ(v bool) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldEQ(FieldApproved, v))
}

// ApprovedNEQ applies the NEQ predicate on the "approved" field.
func ApprovedNEQ(v bool) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldNEQ(FieldApproved, v))
}

// BlockedEQ applies the EQ predicate on the "blocked" field.
func BlockedEQ(v bool) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldEQ(FieldBlocked, v))
}

// BlockedNEQ applies the NEQ predicate on the "blocked" field.
func BlockedNEQ(v bool) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldNEQ(FieldBlocked, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DoctorProfile) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DoctorProfile) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DoctorProfile) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.NotPredicates(p))
}
