package patient

import "errors"

var (
	ErrNotFound     = errors.New("patient profile not found")
	ErrUserNotFound = errors.New("user not found")
	ErrNotAPatient  = errors.New("user is not a patient")
	ErrBadContact   = errors.New("contact number could not be stored")
)
