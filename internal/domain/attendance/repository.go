package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
// All methods include companyID to prevent cross-company data access.
type AttendanceRepository interface {
	// Upsert writes an attendance record, unconditionally replacing any prior
	// record for the same (employee_id, date) key. Destructive by contract.
	Upsert(ctx context.Context, att Attendance) (Attendance, error)

	// GetByEmployeeAndDate retrieves the attendance record for one working day.
	// Returns nil when no record exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, companyID string) (*Attendance, error)

	// ListByEmployee retrieves an employee's records from a date onward.
	ListByEmployee(ctx context.Context, employeeID string, from time.Time, companyID string) ([]Attendance, error)

	// List retrieves attendance records with filters and pagination.
	List(ctx context.Context, filter Filter, companyID string) ([]Attendance, int64, error)

	// DeleteFromDate deletes every record of a company dated on or after date,
	// returning the number of rows removed.
	DeleteFromDate(ctx context.Context, companyID string, date time.Time) (int64, error)
}
