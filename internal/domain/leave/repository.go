package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository defines data access methods for leave requests.
type LeaveRequestRepository interface {
	// Create stores a new leave request.
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)

	// ListByEmployee retrieves all leave requests of one employee.
	ListByEmployee(ctx context.Context, employeeID string, companyID string) ([]LeaveRequest, error)

	// ListApprovedOverlapping retrieves approved requests of one employee whose
	// interval overlaps [from, to], bounds inclusive.
	ListApprovedOverlapping(ctx context.Context, employeeID string, companyID string, from, to time.Time) ([]LeaveRequest, error)
}
