// Code generated by ent, DO NOT EDIT.

package treatment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/aryabanda/Hospital-management-system/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldCreatedAt, v))
}

// AppointmentID applies equality check predicate on the "appointment_id" field. It's identical to AppointmentIDEQ.
func AppointmentID(v uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldAppointmentID, v))
}

// DoctorID applies equality check predicate on the "doctor_id" field. It's identical to DoctorIDEQ.
func DoctorID(v uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldDoctorID, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldPatientID, v))
}

// Diagnosis applies equality check predicate on the "diagnosis" field. It's identical to DiagnosisEQ.
func Diagnosis(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldDiagnosis, v))
}

// Prescription applies equality check predicate on the "prescription" field. It's identical to PrescriptionEQ.
func Prescription(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldPrescription, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldLTE(FieldCreatedAt, v))
}

// AppointmentIDEQ applies the EQ predicate on the "appointment_id" field.
func AppointmentIDEQ(v uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldAppointmentID, v))
}

// AppointmentIDNEQ applies the NEQ predicate on the "appointment_id" field.
func AppointmentIDNEQ(v uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldNEQ(FieldAppointmentID, v))
}

// AppointmentIDIn applies the In predicate on the "appointment_id" field.
func AppointmentIDIn(vs ...uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldIn(FieldAppointmentID, vs...))
}

// AppointmentIDNotIn applies the NotIn predicate on the "appointment_id" field.
func AppointmentIDNotIn(vs ...uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldNotIn(FieldAppointmentID, vs...))
}

// AppointmentIDGT applies the GT predicate on the "appointment_id" field.
func AppointmentIDGT(v uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldGT(FieldAppointmentID, v))
}

// AppointmentIDGTE applies the GTE predicate on the "appointment_id" field.
func AppointmentIDGTE(v uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldGTE(FieldAppointmentID, v))
}

// AppointmentIDLT applies the LT predicate on the "appointment_id" field.
func AppointmentIDLT(v uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldLT(FieldAppointmentID, v))
}

// AppointmentIDLTE applies the LTE predicate on the "appointment_id" field.
func AppointmentIDLTE(v uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldLTE(FieldAppointmentID, v))
}

// DoctorIDEQ applies the EQ predicate on the "doctor_id" field.
func DoctorIDEQ(v uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldDoctorID, v))
}

// DoctorIDNEQ applies the NEQ predicate on the "doctor_id" field.
func DoctorIDNEQ(v uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldNEQ(FieldDoctorID, v))
}

// DoctorIDIn applies the In predicate on the "doctor_id" field.
func DoctorIDIn(vs ...uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldIn(FieldDoctorID, vs...))
}

// DoctorIDNotIn applies the NotIn predicate on the "doctor_id" field.
func DoctorIDNotIn(vs ...uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldNotIn(FieldDoctorID, vs...))
}

// DoctorIDGT applies the GT predicate on the "doctor_id" field.
func DoctorIDGT(v uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldGT(FieldDoctorID, v))
}

// DoctorIDGTE applies the GTE predicate on the "doctor_id" field.
func DoctorIDGTE(v uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldGTE(FieldDoctorID, v))
}

// DoctorIDLT applies the LT predicate on the "doctor_id" field.
func DoctorIDLT(v uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldLT(FieldDoctorID, v))
}

// DoctorIDLTE applies the LTE predicate on the "doctor_id" field.
func DoctorIDLTE(v uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldLTE(FieldDoctorID, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldLTE(FieldPatientID, v))
}

// DiagnosisEQ applies the EQ predicate on the "diagnosis" field.
func DiagnosisEQ(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldDiagnosis, v))
}

// DiagnosisNEQ applies the NEQ predicate on the "diagnosis" field.
func DiagnosisNEQ(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldNEQ(FieldDiagnosis, v))
}

// DiagnosisIn applies the In predicate on the "diagnosis" field.
func DiagnosisIn(vs ...string) predicate.Treatment {
	return predicate.Treatment(sql.FieldIn(FieldDiagnosis, vs...))
}

// DiagnosisNotIn applies the NotIn predicate on the "diagnosis" field.
func DiagnosisNotIn(vs ...string) predicate.Treatment {
	return predicate.Treatment(sql.FieldNotIn(FieldDiagnosis, vs...))
}

// DiagnosisGT applies the GT predicate on the "diagnosis" field.
func DiagnosisGT(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldGT(FieldDiagnosis, v))
}

// DiagnosisGTE applies the GTE predicate on the "diagnosis" field.
func DiagnosisGTE(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldGTE(FieldDiagnosis, v))
}

// DiagnosisLT applies the LT predicate on the "diagnosis" field.
func DiagnosisLT(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldLT(FieldDiagnosis, v))
}

// DiagnosisLTE applies the LTE predicate on the "diagnosis" field.
func DiagnosisLTE(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldLTE(FieldDiagnosis, v))
}

// DiagnosisContains applies the Contains predicate on the "diagnosis" field.
func DiagnosisContains(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldContains(FieldDiagnosis, v))
}

// DiagnosisHasPrefix applies the HasPrefix predicate on the "diagnosis" field.
func DiagnosisHasPrefix(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldHasPrefix(FieldDiagnosis, v))
}

// DiagnosisHasSuffix applies the HasSuffix predicate on the "diagnosis" field.
func DiagnosisHasSuffix(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldHasSuffix(FieldDiagnosis, v))
}

// DiagnosisEqualFold applies the EqualFold predicate on the "diagnosis" field.
func DiagnosisEqualFold(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEqualFold(FieldDiagnosis, v))
}

// DiagnosisContainsFold applies the ContainsFold predicate on the "diagnosis" field.
func DiagnosisContainsFold(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldContainsFold(FieldDiagnosis, v))
}

// PrescriptionEQ applies the EQ predicate on the "prescription" field.
func PrescriptionEQ(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldPrescription, v))
}

// PrescriptionNEQ applies the NEQ predicate on the "prescription" field.
func PrescriptionNEQ(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldNEQ(FieldPrescription, v))
}

// PrescriptionIn applies the In predicate on the "prescription" field.
func PrescriptionIn(vs ...string) predicate.Treatment {
	return predicate.Treatment(sql.FieldIn(FieldPrescription, vs...))
}

// PrescriptionNotIn applies the NotIn predicate on the "prescription" field.
func PrescriptionNotIn(vs ...string) predicate.Treatment {
	return predicate.Treatment(sql.FieldNotIn(FieldPrescription, vs...))
}

// PrescriptionGT applies the GT predicate on the "prescription" field.
func PrescriptionGT(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldGT(FieldPrescription, v))
}

// PrescriptionGTE applies the GTE predicate on the "prescription" field.
func PrescriptionGTE(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldGTE(FieldPrescription, v))
}

// PrescriptionLT applies the LT predicate on the "prescription" field.
func PrescriptionLT(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldLT(FieldPrescription, v))
}

// PrescriptionLTE applies the LTE predicate on the "prescription" field.
func PrescriptionLTE(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldLTE(FieldPrescription, v))
}

// PrescriptionContains applies the Contains predicate on the "prescription" field.
func PrescriptionContains(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldContains(FieldPrescription, v))
}

// PrescriptionHasPrefix applies the HasPrefix predicate on the "prescription" field.
func PrescriptionHasPrefix(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldHasPrefix(FieldPrescription, v))
}

// PrescriptionHasSuffix applies the HasSuffix predicate on the "prescription" field.
func PrescriptionHasSuffix(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldHasSuffix(FieldPrescription, v))
}

// PrescriptionIsNil applies the IsNil predicate on the "prescription" field.
func PrescriptionIsNil() predicate.Treatment {
	return predicate.Treatment(sql.FieldIsNull(FieldPrescription))
}

// PrescriptionNotNil applies the NotNil predicate on the "prescription" field.
func PrescriptionNotNil() predicate.Treatment {
	return predicate.Treatment(sql.FieldNotNull(FieldPrescription))
}

// PrescriptionEqualFold applies the EqualFold predicate on the "prescription" field.
func PrescriptionEqualFold(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEqualFold(FieldPrescription, v))
}

// PrescriptionContainsFold applies the ContainsFold predicate on the "prescription" field.
func PrescriptionContainsFold(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldContainsFold(FieldPrescription, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Treatment {
	return predicate.Treatment(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Treatment {
	return predicate.Treatment(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Treatment {
	return predicate.Treatment(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Treatment {
	return predicate.Treatment(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldContainsFold(FieldNotes, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Treatment) predicate.Treatment {
	return predicate.Treatment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Treatment) predicate.Treatment {
	return predicate.Treatment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Treatment) predicate.Treatment {
	return predicate.Treatment(sql.NotPredicates(p))
}
