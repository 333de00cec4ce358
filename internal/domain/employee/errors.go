package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrFieldNotChangeable = errors.New("field cannot be changed through this workflow")
)
