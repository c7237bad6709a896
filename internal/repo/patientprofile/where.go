// Code generated by ent, DO NOT EDIT.

package patientprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/aryabanda/Hospital-management-system/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldEQ(FieldUserID, v))
}

// DateOfBirth applies equality check predicate on the "date_of_birth" field. It's identical to DateOfBirthEQ.
func DateOfBirth(v time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldEQ(FieldDateOfBirth, v))
}

// ContactEncrypted applies equality check predicate on the "contact_encrypted" field. It's identical to ContactEncryptedEQ.
func ContactEncrypted(v string) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldEQ(FieldContactEncrypted, v))
}

// Address applies equality check predicate on the "address" field. It's identical to AddressEQ.
func Address(v string) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldEQ(FieldAddress, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldLTE(FieldUserID, v))
}

// DateOfBirthEQ applies the EQ predicate on the "date_of_birth" field.
func DateOfBirthEQ(v time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldEQ(FieldDateOfBirth, v))
}

// DateOfBirthNEQ applies the NEQ predicate on the "date_of_birth" field.
func DateOfBirthNEQ(v time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldNEQ(FieldDateOfBirth, v))
}

// DateOfBirthIn applies the In predicate on the "date_of_birth" field.
func DateOfBirthIn(vs ...time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldIn(FieldDateOfBirth, vs...))
}

// DateOfBirthNotIn applies the NotIn predicate on the "date_of_birth" field.
func DateOfBirthNotIn(vs ...time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldNotIn(FieldDateOfBirth, vs...))
}

// DateOfBirthGT applies the GT predicate on the "date_of_birth" field.
func DateOfBirthGT(v time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldGT(FieldDateOfBirth, v))
}

// DateOfBirthGTE applies the GTE predicate on the "date_of_birth" field.
func DateOfBirthGTE(v time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldGTE(FieldDateOfBirth, v))
}

// DateOfBirthLT applies the LT predicate on the "date_of_birth" field.
func DateOfBirthLT(v time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldLT(FieldDateOfBirth, v))
}

// DateOfBirthLTE applies the LTE predicate on the "date_of_birth" field.
func DateOfBirthLTE(v time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldLTE(FieldDateOfBirth, v))
}

// DateOfBirthIsNil applies the IsNil predicate on the "date_of_birth" field.
func DateOfBirthIsNil() predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldIsNull(FieldDateOfBirth))
}

// DateOfBirthNotNil applies the NotNil predicate on the "date_of_birth" field.
func DateOfBirthNotNil() predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldNotNull(FieldDateOfBirth))
}

// GenderEQ applies the EQ predicate on the "gender" field.
func GenderEQ(v Gender) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldEQ(FieldGender, v))
}

// GenderNEQ applies the NEQ predicate on the "gender" field.
func GenderNEQ(v Gender) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldNEQ(FieldGender, v))
}

// GenderIn applies the In predicate on the "gender" field.
func GenderIn(vs ...Gender) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldIn(FieldGender, vs...))
}

// GenderNotIn applies the NotIn predicate on the "gender" field.
func GenderNotIn(vs ...Gender) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldNotIn(FieldGender, vs...))
}

// GenderIsNil applies the IsNil predicate on the "gender" field.
func GenderIsNil() predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldIsNull(FieldGender))
}

// GenderNotNil applies the NotNil predicate on the "gender" field.
func GenderNotNil() predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldNotNull(FieldGender))
}

// ContactEncryptedEQ applies the EQ predicate on the "contact_encrypted" field.
func ContactEncryptedEQ(v string) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldEQ(FieldContactEncrypted, v))
}

// ContactEncryptedNEQ applies the NEQ predicate on the "contact_encrypted" field.
func ContactEncryptedNEQ(v string) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldNEQ(FieldContactEncrypted, v))
}

// ContactEncryptedIn applies the In predicate on the "contact_encrypted" field.
func ContactEncryptedIn(vs ...string) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldIn(FieldContactEncrypted, vs...))
}

// ContactEncryptedNotIn applies the NotIn predicate on the "contact_encrypted" field.
func ContactEncryptedNotIn(vs ...string) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldNotIn(FieldContactEncrypted, vs...))
}

// ContactEncryptedGT applies the GT predicate on the "contact_encrypted" field.
func ContactEncryptedGT(v string) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldGT(FieldContactEncrypted, v))
}

// ContactEncryptedGTE applies the GTE predicate on the "contact_encrypted" field.
func ContactEncryptedGTE(v string) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldGTE(FieldContactEncrypted, v))
}

// ContactEncryptedLT applies the LT predicate on the "contact_encrypted" field.
func ContactEncryptedLT(v string) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldLT(FieldContactEncrypted, v))
}

// ContactEncryptedLTE applies the LTE predicate on the "contact_encrypted" field.
func ContactEncryptedLTE(v string) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldLTE(FieldContactEncrypted, v))
}

// ContactEncryptedContains applies the Contains predicate on the "contact_encrypted" field.
func ContactEncryptedContains(v string) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldContains(FieldContactEncrypted, v))
}

// ContactEncryptedHasPrefix applies the HasPrefix predicate on the "contact_encrypted" field.
func ContactEncryptedHasPrefix(v string) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldHasPrefix(FieldContactEncrypted, v))
}

// ContactEncryptedHasSuffix applies the HasSuffix predicate on the "contact_encrypted" field.
func ContactEncryptedHasSuffix(v string) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldHasSuffix(FieldContactEncrypted, v))
}

// ContactEncryptedIsNil applies the IsNil predicate on the "contact_encrypted" field.
func ContactEncryptedIsNil() predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldIsNull(FieldContactEncrypted))
}

// ContactEncryptedNotNil applies the NotNil predicate on the "contact_encrypted" field.
func ContactEncryptedNotNil() predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldNotNull(FieldContactEncrypted))
}

// ContactEncryptedEqualFold applies the EqualFold predicate on the "contact_encrypted" field.
func ContactEncryptedEqualFold(v string) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldEqualFold(FieldContactEncrypted, v))
}

// ContactEncryptedContainsFold applies the ContainsFold predicate on the "contact_encrypted" field.
func ContactEncryptedContainsFold(v string) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldContainsFold(FieldContactEncrypted, v))
}

// AddressEQ applies the EQ predicate on the "address" field.
func AddressEQ(v string) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldEQ(FieldAddress, v))
}

// AddressNEQ applies the NEQ predicate on the "address" field.
func AddressNEQ(v string) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldNEQ(FieldAddress, v))
}

// AddressIn applies the In predicate on the "address" field.
func AddressIn(vs ...string) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldIn(FieldAddress, vs...))
}

// AddressNotIn applies the NotIn predicate on the "address" field.
func AddressNotIn(vs ...string) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldNotIn(FieldAddress, vs...))
}

// AddressGT applies the GT predicate on the "address" field.
func AddressGT(v string) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldGT(FieldAddress, v))
}

// AddressGTE applies the GTE predicate on the "address" field.
func AddressGTE(v string) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldGTE(FieldAddress, v))
}

// AddressLT applies the LT predicate on the "address" field.
func AddressLT(v string) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldLT(FieldAddress, v))
}

// AddressLTE applies the LTE predicate on the "address" field.
func AddressLTE(v string) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldLTE(FieldAddress, v))
}

// AddressContains applies the Contains predicate on the "address" field.
func AddressContains(v string) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldContains(FieldAddress, v))
}

// AddressHasPrefix applies the HasPrefix predicate on the "address" field.
func AddressHasPrefix(v string) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldHasPrefix(FieldAddress, v))
}

// AddressHasSuffix applies the HasSuffix predicate on the "address" field.
func AddressHasSuffix(v string) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldHasSuffix(FieldAddress, v))
}

// AddressIsNil applies the IsNil predicate on the "address" field.
func AddressIsNil() predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldIsNull(FieldAddress))
}

// AddressNotNil applies the NotNil predicate on the "address" field.
func AddressNotNil() predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldNotNull(FieldAddress))
}

// AddressEqualFold applies the EqualFold predicate on the "address" field.
func AddressEqualFold(v string) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldEqualFold(FieldAddress, v))
}

// AddressContainsFold applies the ContainsFold predicate on the "address" field.
func AddressContainsFold(v string) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldContainsFold(FieldAddress, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PatientProfile) predicate.PatientProfile {
	return predicate.PatientProfile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PatientProfile) predicate.PatientProfile {
	return predicate.PatientProfile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PatientProfile) predicate.PatientProfile {
	return predicate.PatientProfile(sql.NotPredicates(p))
}
