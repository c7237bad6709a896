// Code generated by ent, DO NOT EDIT.

package repo

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/aryabanda/Hospital-management-system/internal/repo/doctorprofile"
	"github.com/google/uuid"
)

// DoctorProfile is the model entity for the DoctorProfile schema.
type DoctorProfile struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → users.id
	UserID uuid.UUID `json:"user_id,omitempty"`
	// FK → departments.id; nil until assigned
	DepartmentID *uuid.UUID `json:"department_id,omitempty"`
	// Qualification holds the value of the "qualification" field.
	Qualification *string `json:"qualification,omitempty"`
	// ExperienceYears holds the value of the "experience_years" field.
	ExperienceYears int `json:"experience_years,omitempty"`
	// Availability holds the value of the "availability" field.
	Availability map[string]bool `json:"availability,omitempty"`
	// Admin approval gate; unapproved doctors are not bookable
	Approved bool `json:"approved,omitempty"`
	// Admin kill switch; blocked doctors are not bookable
	Blocked      bool `json:"blocked,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DoctorProfile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case doctorprofile.FieldDepartmentID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case doctorprofile.FieldAvailability:
			values[i] = new([]byte)
		case doctorprofile.FieldApproved, doctorprofile.FieldBlocked:
			values[i] = new(sql.NullBool)
		case doctorprofile.FieldExperienceYears:
			values[i] = new(sql.NullInt64)
		case doctorprofile.FieldQualification:
			values[i] = new(sql.NullString)
		case doctorprofile.FieldCreatedAt, doctorprofile.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case doctorprofile.FieldID, doctorprofile.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DoctorProfile fields.
func (_m *DoctorProfile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case doctorprofile.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case doctorprofile.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case doctorprofile.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case doctorprofile.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case doctorprofile.FieldDepartmentID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field department_id", values[i])
			} else if value.Valid {
				_m.DepartmentID = new(uuid.UUID)
				*_m.DepartmentID = *value.S.(*uuid.UUID)
			}
		case doctorprofile.FieldQualification:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field qualification", values[i])
			} else if value.Valid {
				_m.Qualification = new(string)
				*_m.Qualification = value.String
			}
		case doctorprofile.FieldExperienceYears:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field experience_years", values[i])
			} else if value.Valid {
				_m.ExperienceYears = int(value.Int64)
			}
		case doctorprofile.FieldAvailability:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field availability", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Availability); err != nil {
					return fmt.Errorf("unmarshal field availability: %w", err)
				}
			}
		case doctorprofile.FieldApproved:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field approved", values[i])
			} else if value.Valid {
				_m.Approved = value.Bool
			}
		case doctorprofile.FieldBlocked:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field blocked", values[i])
			} else if value.Valid {
				_m.Blocked = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DoctorProfile.
// This includes values selected through modifiers, order, etc.
func (_m *DoctorProfile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DoctorProfile.
// Note that you need to call DoctorProfile.Unwrap() before calling this method if this DoctorProfile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DoctorProfile) Update() *DoctorProfileUpdateOne {
	return NewDoctorProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DoctorProfile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DoctorProfile) Unwrap() *DoctorProfile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: DoctorProfile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DoctorProfile) String() string {
	var builder strings.Builder
	builder.WriteString("DoctorProfile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	if v := _m.DepartmentID; v != nil {
		builder.WriteString("department_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Qualification; v != nil {
		builder.WriteString("qualification=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("experience_years=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExperienceYears))
	builder.WriteString(", ")
	builder.WriteString("availability=")
	builder.WriteString(fmt.Sprintf("%v", _m.Availability))
	builder.WriteString(", ")
	builder.WriteString("approved=")
	builder.WriteString(fmt.Sprintf("%v", _m.Approved))
	builder.WriteString(", ")
	builder.WriteString("blocked=")
	builder.WriteString(fmt.Sprintf("%v", _m.Blocked))
	builder.WriteByte(')')
	return builder.String()
}

// DoctorProfiles is a parsable slice of DoctorProfile.
type DoctorProfiles []*DoctorProfile
