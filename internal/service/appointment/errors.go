package appointment

import "errors"

var (
	ErrNotFound          = errors.New("appointment not found")
	ErrInvalidDate       = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidSlot       = errors.New("time is not a valid slot in the booking window")
	ErrDoctorNotFound    = errors.New("doctor not found")
	ErrDoctorNotBookable = errors.New("doctor is not accepting appointments")
	ErrPatientNotFound   = errors.New("patient profile not found")
	ErrDayUnavailable    = errors.New("doctor is not available on this day")
	ErrSlotTaken         = errors.New("slot is already booked")
	ErrNotOwner          = errors.New("appointment belongs to someone else")
	ErrNotCancellable    = errors.New("only booked appointments can be cancelled")
	ErrNotReschedulable  = errors.New("only booked appointments can be rescheduled")
	ErrNotCompletable    = errors.New("only booked appointments can be completed")
	ErrDiagnosisRequired = errors.New("diagnosis is required")
)
