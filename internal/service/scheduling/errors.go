package scheduling

import "errors"

var (
	ErrDoctorNotFound    = errors.New("doctor not found")
	ErrDoctorNotBookable = errors.New("doctor is not accepting appointments")
	ErrInvalidDate       = errors.New("invalid date, expected YYYY-MM-DD")
)
