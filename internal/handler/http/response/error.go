package response

import (
	"errors"
	"net/http"

	"github.com/staffhub/portal-backend-go/internal/domain/attendance"
	"github.com/staffhub/portal-backend-go/internal/domain/change"
	"github.com/staffhub/portal-backend-go/internal/domain/employee"
	"github.com/staffhub/portal-backend-go/internal/domain/leave"
	"github.com/staffhub/portal-backend-go/internal/domain/period"
	"github.com/staffhub/portal-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// A locked accounting period aborts a whole batch; the server-provided
	// message is surfaced verbatim.
	var lockedErr *period.LockedError
	if errors.As(err, &lockedErr) {
		Conflict(w, lockedErr.Message)
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrNoEmployees):
		BadRequest(w, "At least one employee must be selected", nil)
	case errors.Is(err, attendance.ErrInvalidDateRange):
		BadRequest(w, "Start date must not be after end date", nil)
	case errors.Is(err, attendance.ErrEndDateNotPast):
		BadRequest(w, "End date must be before today", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrFieldNotChangeable):
		BadRequest(w, "Field cannot be changed through this workflow", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInvalidInterval):
		BadRequest(w, "Leave start date must not be after end date", nil)

	// Change request domain errors
	case errors.Is(err, change.ErrChangeRequestNotFound):
		NotFound(w, "Change request not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
