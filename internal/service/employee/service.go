package employee

import (
	"context"
	"fmt"

	"github.com/staffhub/portal-backend-go/internal/domain/employee"
)

// Service exposes the employee directory reads the attendance and change
// workflows depend on.
type Service struct {
	employee.EmployeeRepository
}

func NewService(repo employee.EmployeeRepository) *Service {
	return &Service{EmployeeRepository: repo}
}

// GetEmployees returns every non-deleted employee of a company.
func (s *Service) GetEmployees(ctx context.Context, companyID string) ([]employee.Employee, error) {
	employees, err := s.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

// GetEmployeesWithAutomaticAttendance returns the employees eligible as
// generator input, pre-filtered by attendance_mode=automatic.
func (s *Service) GetEmployeesWithAutomaticAttendance(ctx context.Context, companyID string) ([]employee.Employee, error) {
	employees, err := s.ListWithAutomaticAttendance(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list automatic-attendance employees: %w", err)
	}
	return employees, nil
}

// GetEmployee returns one employee with company isolation.
func (s *Service) GetEmployee(ctx context.Context, id, companyID string) (employee.Employee, error) {
	emp, err := s.GetByID(ctx, id, companyID)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

// UpdateEmployeeField writes one changeable personnel field directly. This is
// the admin edit path; employee-initiated edits go through the change-request
// workflow instead.
func (s *Service) UpdateEmployeeField(ctx context.Context, employeeID, companyID, fieldName, value string) error {
	if !employee.IsChangeableField(fieldName) {
		return employee.ErrFieldNotChangeable
	}
	if err := s.UpdateField(ctx, employeeID, companyID, fieldName, value); err != nil {
		return fmt.Errorf("failed to update employee field: %w", err)
	}
	return nil
}
