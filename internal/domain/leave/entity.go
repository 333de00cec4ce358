package leave

import (
	"time"
)

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "pending"
	LeaveRequestStatusApproved LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected LeaveRequestStatus = "rejected"
)

type LeaveType string

const (
	LeaveTypeAnnual LeaveType = "annual_leave"
	LeaveTypeSick   LeaveType = "sick_leave"
	LeaveTypeUnpaid LeaveType = "unpaid_leave"
)

// LeaveRequest covers an inclusive date interval. Invariant: StartDate <= EndDate.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	CompanyID  string

	LeaveType LeaveType
	StartDate time.Time
	EndDate   time.Time
	Reason    string

	Status     LeaveRequestStatus
	ApprovedBy *string
	ApprovedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Covers reports whether date falls inside the request's interval, bounds inclusive.
func (l LeaveRequest) Covers(date time.Time) bool {
	d := truncateToDay(date)
	return !d.Before(truncateToDay(l.StartDate)) && !d.After(truncateToDay(l.EndDate))
}

// IsApproved reports whether the request affects status resolution. Only
// approved requests do.
func (l LeaveRequest) IsApproved() bool {
	return l.Status == LeaveRequestStatusApproved
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
