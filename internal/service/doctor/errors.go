package doctor

import "errors"

var (
	ErrNotFound           = errors.New("doctor not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrDepartmentNotFound = errors.New("department not found")
	ErrNotADoctor         = errors.New("user is not a doctor")
)
