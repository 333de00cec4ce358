package change

import (
	"time"
)

type ChangeRequestStatus string

const (
	// ChangeRequestStatusPending is the initial state. A request stays pending
	// until an admin approves it; there is no rejected state in this workflow.
	ChangeRequestStatusPending  ChangeRequestStatus = "pending"
	ChangeRequestStatusApproved ChangeRequestStatus = "approved"
)

// ChangeRequest is an employee-submitted proposal to alter one personnel
// field. The row doubles as the audit trail and is never deleted after
// approval. For a given (employee_id, field_name) the request with the
// highest ID is authoritative.
type ChangeRequest struct {
	ID         int64
	EmployeeID string
	CompanyID  string

	FieldName    string
	CurrentValue string // snapshot of the stored value at submission time
	NewValue     string
	Reason       string

	Status     ChangeRequestStatus
	ApprovedBy *string
	ApprovedAt *time.Time

	CreatedAt time.Time
}
