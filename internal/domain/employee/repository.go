package employee

import (
	"context"
)

// EmployeeRepository defines data access methods for the employee directory.
// All methods include companyID to prevent cross-company data access.
type EmployeeRepository interface {
	// GetByID retrieves a single employee with company isolation.
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)

	// ListByCompany retrieves all non-deleted employees of a company.
	ListByCompany(ctx context.Context, companyID string) ([]Employee, error)

	// ListWithAutomaticAttendance retrieves employees whose attendance mode
	// is automatic, pre-filtered for the attendance generator.
	ListWithAutomaticAttendance(ctx context.Context, companyID string) ([]Employee, error)

	// UpdateField writes a single changeable personnel field.
	UpdateField(ctx context.Context, employeeID string, companyID string, fieldName string, value string) error
}
