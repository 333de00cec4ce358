package change

import "errors"

var (
	ErrChangeRequestNotFound = errors.New("change request not found")
)
