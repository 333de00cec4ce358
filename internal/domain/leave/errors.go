package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrInvalidInterval      = errors.New("leave start date must not be after end date")
)
