// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Appointment is the predicate function for appointment builders.
type Appointment func(*sql.Selector)

// Department is the predicate function for department builders.
type Department func(*sql.Selector)

// DoctorProfile is the predicate function for doctorprofile builders.
type DoctorProfile func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// PatientProfile is the predicate function for patientprofile builders.
type PatientProfile func(*sql.Selector)

// Treatment is the predicate function for treatment builders.
type Treatment func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
