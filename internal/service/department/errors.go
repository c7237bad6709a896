package department

import "errors"

var (
	ErrNotFound  = errors.New("department not found")
	ErrNameTaken = errors.New("department name already exists")
)
