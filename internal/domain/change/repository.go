package change

import (
	"context"
)

// ChangeRequestRepository defines data access methods for change requests.
type ChangeRequestRepository interface {
	// Create stores a new pending request and returns it with its assigned ID.
	Create(ctx context.Context, req ChangeRequest) (ChangeRequest, error)

	// GetByID retrieves a request with company isolation.
	GetByID(ctx context.Context, id int64, companyID string) (ChangeRequest, error)

	// ListByEmployee retrieves all requests of one employee, newest first.
	ListByEmployee(ctx context.Context, employeeID string, companyID string) ([]ChangeRequest, error)

	// ListByCompany retrieves all requests of a company, newest first.
	ListByCompany(ctx context.Context, companyID string) ([]ChangeRequest, error)

	// LatestPending returns the highest-ID pending request for the field,
	// or nil when none exists.
	LatestPending(ctx context.Context, employeeID string, fieldName string, companyID string) (*ChangeRequest, error)

	// LatestApproved returns the highest-ID approved request for the field,
	// or nil when none exists.
	LatestApproved(ctx context.Context, employeeID string, fieldName string, companyID string) (*ChangeRequest, error)

	// MarkApproved flips a request to approved only if it is still pending.
	// Returns false when the guard did not match, i.e. a concurrent caller
	// already approved it.
	MarkApproved(ctx context.Context, id int64, companyID string, approverID string) (bool, error)
}
