// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/aryabanda/Hospital-management-system/internal/repo/appointment"
	"github.com/aryabanda/Hospital-management-system/internal/repo/department"
	"github.com/aryabanda/Hospital-management-system/internal/repo/doctorprofile"
	"github.com/aryabanda/Hospital-management-system/internal/repo/notification"
	"github.com/aryabanda/Hospital-management-system/internal/repo/patientprofile"
	"github.com/aryabanda/Hospital-management-system/internal/repo/treatment"
	"github.com/aryabanda/Hospital-management-system/internal/repo/user"
	"github.com/aryabanda/Hospital-management-system/internal/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	appointmentMixin := schema.Appointment{}.Mixin()
	appointmentMixinFields0 := appointmentMixin[0].Fields()
	_ = appointmentMixinFields0
	appointmentMixinFields1 := appointmentMixin[1].Fields()
	_ = appointmentMixinFields1
	appointmentFields := schema.Appointment{}.Fields()
	_ = appointmentFields
	// appointmentDescCreatedAt is the schema descriptor for created_at field.
	appointmentDescCreatedAt := appointmentMixinFields1[0].Descriptor()
	// appointment.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointment.DefaultCreatedAt = appointmentDescCreatedAt.Default.(func() time.Time)
	// appointmentDescUpdatedAt is the schema descriptor for updated_at field.
	appointmentDescUpdatedAt := appointmentMixinFields1[1].Descriptor()
	// appointment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appointment.DefaultUpdatedAt = appointmentDescUpdatedAt.Default.(func() time.Time)
	// appointment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appointment.UpdateDefaultUpdatedAt = appointmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// appointmentDescSlot is the schema descriptor for slot field.
	appointmentDescSlot := appointmentFields[3].Descriptor()
	// appointment.SlotValidator is a validator for the "slot" field. It is called by the builders before save.
	appointment.SlotValidator = appointmentDescSlot.Validators[0].(func(string) error)
	// appointmentDescID is the schema descriptor for id field.
	appointmentDescID := appointmentMixinFields0[0].Descriptor()
	// appointment.DefaultID holds the default value on creation for the id field.
	appointment.DefaultID = appointmentDescID.Default.(func() uuid.UUID)
	departmentMixin := schema.Department{}.Mixin()
	departmentMixinFields0 := departmentMixin[0].Fields()
	_ = departmentMixinFields0
	departmentMixinFields1 := departmentMixin[1].Fields()
	_ = departmentMixinFields1
	departmentFields := schema.Department{}.Fields()
	_ = departmentFields
	// departmentDescCreatedAt is the schema descriptor for created_at field.
	departmentDescCreatedAt := departmentMixinFields1[0].Descriptor()
	// department.DefaultCreatedAt holds the default value on creation for the created_at field.
	department.DefaultCreatedAt = departmentDescCreatedAt.Default.(func() time.Time)
	// departmentDescUpdatedAt is the schema descriptor for updated_at field.
	departmentDescUpdatedAt := departmentMixinFields1[1].Descriptor()
	// department.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	department.DefaultUpdatedAt = departmentDescUpdatedAt.Default.(func() time.Time)
	// department.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	department.UpdateDefaultUpdatedAt = departmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// departmentDescName is the schema descriptor for name field.
	departmentDescName := departmentFields[0].Descriptor()
	// department.NameValidator is a validator for the "name" field. It is called by the builders before save.
	department.NameValidator = departmentDescName.Validators[0].(func(string) error)
	// departmentDescID is the schema descriptor for id field.
	departmentDescID := departmentMixinFields0[0].Descriptor()
	// department.DefaultID holds the default value on creation for the id field.
	department.DefaultID = departmentDescID.Default.(func() uuid.UUID)
	doctorprofileMixin := schema.DoctorProfile{}.Mixin()
	doctorprofileMixinFields0 := doctorprofileMixin[0].Fields()
	_ = doctorprofileMixinFields0
	doctorprofileMixinFields1 := doctorprofileMixin[1].Fields()
	_ = doctorprofileMixinFields1
	doctorprofileFields := schema.DoctorProfile{}.Fields()
	_ = doctorprofileFields
	// doctorprofileDescCreatedAt is the schema descriptor for created_at field.
	doctorprofileDescCreatedAt := doctorprofileMixinFields1[0].Descriptor()
	// doctorprofile.DefaultCreatedAt holds the default value on creation for the created_at field.
	doctorprofile.DefaultCreatedAt = doctorprofileDescCreatedAt.Default.(func() time.Time)
	// doctorprofileDescUpdatedAt is the schema descriptor for updated_at field.
	doctorprofileDescUpdatedAt := doctorprofileMixinFields1[1].Descriptor()
	// doctorprofile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	doctorprofile.DefaultUpdatedAt = doctorprofileDescUpdatedAt.Default.(func() time.Time)
	// doctorprofile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	doctorprofile.UpdateDefaultUpdatedAt = doctorprofileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// doctorprofileDescQualification is the schema descriptor for qualification field.
	doctorprofileDescQualification := doctorprofileFields[2].Descriptor()
	// doctorprofile.QualificationValidator is a validator for the "qualification" field. It is called by the builders before save.
	doctorprofile.QualificationValidator = doctorprofileDescQualification.Validators[0].(func(string) error)
	// doctorprofileDescExperienceYears is the schema descriptor for experience_years field.
	doctorprofileDescExperienceYears := doctorprofileFields[3].Descriptor()
	// doctorprofile.DefaultExperienceYears holds the default value on creation for the experience_years field.
	doctorprofile.DefaultExperienceYears = doctorprofileDescExperienceYears.Default.(int)
	// doctorprofile.ExperienceYearsValidator is a validator for the "experience_years" field. It is called by the builders before save.
	doctorprofile.ExperienceYearsValidator = doctorprofileDescExperienceYears.Validators[0].(func(int) error)
	// doctorprofileDescAvailability is the schema descriptor for availability field.
	doctorprofileDescAvailability := doctorprofileFields[4].Descriptor()
	// doctorprofile.DefaultAvailability holds the default value on creation for the availability field.
	doctorprofile.DefaultAvailability = doctorprofileDescAvailability.Default.(map[string]bool)
	// doctorprofileDescApproved is the schema descriptor for approved field.
	doctorprofileDescApproved := doctorprofileFields[5].Descriptor()
	// doctorprofile.DefaultApproved holds the default value on creation for the approved field.
	doctorprofile.DefaultApproved = doctorprofileDescApproved.Default.(bool)
	// doctorprofileDescBlocked is the schema descriptor for blocked field.
	doctorprofileDescBlocked := doctorprofileFields[6].Descriptor()
	// doctorprofile.DefaultBlocked holds the default value on creation for the blocked field.
	doctorprofile.DefaultBlocked = doctorprofileDescBlocked.Default.(bool)
	// doctorprofileDescID is the schema descriptor for id field.
	doctorprofileDescID := doctorprofileMixinFields0[0].Descriptor()
	// doctorprofile.DefaultID holds the default value on creation for the id field.
	doctorprofile.DefaultID = doctorprofileDescID.Default.(func() uuid.UUID)
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationMixinFields1 := notificationMixin[1].Fields()
	_ = notificationMixinFields1
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationMixinFields1[0].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescType is the schema descriptor for type field.
	notificationDescType := notificationFields[1].Descriptor()
	// notification.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	notification.TypeValidator = notificationDescType.Validators[0].(func(string) error)
	// notificationDescTitle is the schema descriptor for title field.
	notificationDescTitle := notificationFields[2].Descriptor()
	// notification.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	notification.TitleValidator = notificationDescTitle.Validators[0].(func(string) error)
	// notificationDescIsRead is the schema descriptor for is_read field.
	notificationDescIsRead := notificationFields[5].Descriptor()
	// notification.DefaultIsRead holds the default value on creation for the is_read field.
	notification.DefaultIsRead = notificationDescIsRead.Default.(bool)
	// notificationDescID is the schema descriptor for id field.
	notificationDescID := notificationMixinFields0[0].Descriptor()
	// notification.DefaultID holds the default value on creation for the id field.
	notification.DefaultID = notificationDescID.Default.(func() uuid.UUID)
	patientprofileMixin := schema.PatientProfile{}.Mixin()
	patientprofileMixinFields0 := patientprofileMixin[0].Fields()
	_ = patientprofileMixinFields0
	patientprofileMixinFields1 := patientprofileMixin[1].Fields()
	_ = patientprofileMixinFields1
	patientprofileFields := schema.PatientProfile{}.Fields()
	_ = patientprofileFields
	// patientprofileDescCreatedAt is the schema descriptor for created_at field.
	patientprofileDescCreatedAt := patientprofileMixinFields1[0].Descriptor()
	// patientprofile.DefaultCreatedAt holds the default value on creation for the created_at field.
	patientprofile.DefaultCreatedAt = patientprofileDescCreatedAt.Default.(func() time.Time)
	// patientprofileDescUpdatedAt is the schema descriptor for updated_at field.
	patientprofileDescUpdatedAt := patientprofileMixinFields1[1].Descriptor()
	// patientprofile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	patientprofile.DefaultUpdatedAt = patientprofileDescUpdatedAt.Default.(func() time.Time)
	// patientprofile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	patientprofile.UpdateDefaultUpdatedAt = patientprofileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// patientprofileDescID is the schema descriptor for id field.
	patientprofileDescID := patientprofileMixinFields0[0].Descriptor()
	// patientprofile.DefaultID holds the default value on creation for the id field.
	patientprofile.DefaultID = patientprofileDescID.Default.(func() uuid.UUID)
	treatmentMixin := schema.Treatment{}.Mixin()
	treatmentMixinFields0 := treatmentMixin[0].Fields()
	_ = treatmentMixinFields0
	treatmentMixinFields1 := treatmentMixin[1].Fields()
	_ = treatmentMixinFields1
	treatmentFields := schema.Treatment{}.Fields()
	_ = treatmentFields
	// treatmentDescCreatedAt is the schema descriptor for created_at field.
	treatmentDescCreatedAt := treatmentMixinFields1[0].Descriptor()
	// treatment.DefaultCreatedAt holds the default value on creation for the created_at field.
	treatment.DefaultCreatedAt = treatmentDescCreatedAt.Default.(func() time.Time)
	// treatmentDescID is the schema descriptor for id field.
	treatmentDescID := treatmentMixinFields0[0].Descriptor()
	// treatment.DefaultID holds the default value on creation for the id field.
	treatment.DefaultID = treatmentDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescFirstName is the schema descriptor for first_name field.
	userDescFirstName := userFields[0].Descriptor()
	// user.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	user.FirstNameValidator = userDescFirstName.Validators[0].(func(string) error)
	// userDescLastName is the schema descriptor for last_name field.
	userDescLastName := userFields[1].Descriptor()
	// user.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	user.LastNameValidator = userDescLastName.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[2].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
