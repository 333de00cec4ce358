package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrNoEmployees        = errors.New("no employees selected for generation")
	ErrInvalidDateRange   = errors.New("start date must not be after end date")
	ErrEndDateNotPast     = errors.New("end date must be before today")
)
