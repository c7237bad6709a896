// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AppointmentsColumns holds the columns for the "appointments" table.
	AppointmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "date", Type: field.TypeTime},
		{Name: "slot", Type: field.TypeString, Size: 5},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"booked", "cancelled", "completed"}, Default: "booked"},
		{Name: "reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "cancelled_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// AppointmentsTable holds the schema information for the "appointments" table.
	AppointmentsTable = &schema.Table{
		Name:       "appointments",
		Columns:    AppointmentsColumns,
		PrimaryKey: []*schema.Column{AppointmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "appointment_doctor_id_date_slot",
				Unique:  true,
				Columns: []*schema.Column{AppointmentsColumns[3], AppointmentsColumns[5], AppointmentsColumns[6]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status = 'booked'",
				},
			},
			{
				Name:    "appointment_doctor_id_status_date",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[3], AppointmentsColumns[7], AppointmentsColumns[5]},
			},
			{
				Name:    "appointment_patient_id_status_date",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[4], AppointmentsColumns[7], AppointmentsColumns[5]},
			},
		},
	}
	// DepartmentsColumns holds the columns for the "departments" table.
	DepartmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Unique: true, Size: 120},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// DepartmentsTable holds the schema information for the "departments" table.
	DepartmentsTable = &schema.Table{
		Name:       "departments",
		Columns:    DepartmentsColumns,
		PrimaryKey: []*schema.Column{DepartmentsColumns[0]},
	}
	// DoctorProfilesColumns holds the columns for the "doctor_profiles" table.
	DoctorProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID, Unique: true},
		{Name: "department_id", Type: field.TypeUUID, Nullable: true},
		{Name: "qualification", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "experience_years", Type: field.TypeInt, Default: 0},
		{Name: "availability", Type: field.TypeJSON, Nullable: true},
		{Name: "approved", Type: field.TypeBool, Default: false},
		{Name: "blocked", Type: field.TypeBool, Default: false},
	}
	// DoctorProfilesTable holds the schema information for the "doctor_profiles" table.
	DoctorProfilesTable = &schema.Table{
		Name:       "doctor_profiles",
		Columns:    DoctorProfilesColumns,
		PrimaryKey: []*schema.Column{DoctorProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "doctorprofile_department_id",
				Unique:  false,
				Columns: []*schema.Column{DoctorProfilesColumns[4]},
			},
			{
				Name:    "doctorprofile_approved_blocked",
				Unique:  false,
				Columns: []*schema.Column{DoctorProfilesColumns[8], DoctorProfilesColumns[9]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "type", Type: field.TypeString, Size: 64},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "data", Type: field.TypeJSON, Nullable: true},
		{Name: "is_read", Type: field.TypeBool, Default: false},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notification_user_id_is_read_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[2], NotificationsColumns[7], NotificationsColumns[1]},
			},
		},
	}
	// PatientProfilesColumns holds the columns for the "patient_profiles" table.
	PatientProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID, Unique: true},
		{Name: "date_of_birth", Type: field.TypeTime, Nullable: true},
		{Name: "gender", Type: field.TypeEnum, Nullable: true, Enums: []string{"male", "female", "other"}},
		{Name: "contact_encrypted", Type: field.TypeString, Nullable: true},
		{Name: "address", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// PatientProfilesTable holds the schema information for the "patient_profiles" table.
	PatientProfilesTable = &schema.Table{
		Name:       "patient_profiles",
		Columns:    PatientProfilesColumns,
		PrimaryKey: []*schema.Column{PatientProfilesColumns[0]},
	}
	// TreatmentsColumns holds the columns for the "treatments" table.
	TreatmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "appointment_id", Type: field.TypeUUID, Unique: true},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "diagnosis", Type: field.TypeString, Size: 2147483647},
		{Name: "prescription", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// TreatmentsTable holds the schema information for the "treatments" table.
	TreatmentsTable = &schema.Table{
		Name:       "treatments",
		Columns:    TreatmentsColumns,
		PrimaryKey: []*schema.Column{TreatmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "treatment_patient_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TreatmentsColumns[4], TreatmentsColumns[1]},
			},
			{
				Name:    "treatment_doctor_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TreatmentsColumns[3], TreatmentsColumns[1]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "first_name", Type: field.TypeString, Size: 100},
		{Name: "last_name", Type: field.TypeString, Size: 100},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"admin", "doctor", "patient"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"ACTIVE", "SUSPENDED"}, Default: "ACTIVE"},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_role",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AppointmentsTable,
		DepartmentsTable,
		DoctorProfilesTable,
		NotificationsTable,
		PatientProfilesTable,
		TreatmentsTable,
		UsersTable,
	}
)

func init() {
}
