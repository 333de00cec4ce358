package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/staffhub/portal-backend-go/internal/domain/employee"
	"github.com/staffhub/portal-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, company_id, full_name, employment_status, attendance_mode,
	work_start_time, work_end_time, break_start_time, break_end_time, weekly_hours,
	citizenship, address, phone_number, marital_status, bank_account_number,
	created_at, updated_at, deleted_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.CompanyID, &emp.FullName, &emp.EmploymentStatus, &emp.AttendanceMode,
		&emp.WorkStartTime, &emp.WorkEndTime, &emp.BreakStartTime, &emp.BreakEndTime, &emp.WeeklyHours,
		&emp.Citizenship, &emp.Address, &emp.PhoneNumber, &emp.MaritalStatus, &emp.BankAccountNumber,
		&emp.CreatedAt, &emp.UpdatedAt, &emp.DeletedAt,
	)
	return emp, err
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}
	return emp, nil
}

// ListByCompany implements employee.EmployeeRepository.
func (r *employeeRepository) ListByCompany(ctx context.Context, companyID string) ([]employee.Employee, error) {
	return r.list(ctx, companyID, false)
}

// ListWithAutomaticAttendance implements employee.EmployeeRepository.
func (r *employeeRepository) ListWithAutomaticAttendance(ctx context.Context, companyID string) ([]employee.Employee, error) {
	return r.list(ctx, companyID, true)
}

func (r *employeeRepository) list(ctx context.Context, companyID string, automaticOnly bool) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE company_id = $1 AND deleted_at IS NULL
	`
	if automaticOnly {
		query += ` AND attendance_mode = 'automatic'`
	}
	query += ` ORDER BY full_name`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	return employees, nil
}

// UpdateField implements employee.EmployeeRepository. The field name is
// mapped through the changeable-field whitelist; anything else is rejected
// before touching SQL.
func (r *employeeRepository) UpdateField(ctx context.Context, employeeID string, companyID string, fieldName string, value string) error {
	column, ok := employee.ChangeableFields[fieldName]
	if !ok {
		return employee.ErrFieldNotChangeable
	}

	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		UPDATE employees
		SET %s = $1, updated_at = NOW()
		WHERE id = $2 AND company_id = $3 AND deleted_at IS NULL
		RETURNING id
	`, column)

	var updatedID string
	if err := q.QueryRow(ctx, query, value, employeeID, companyID).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update employee field: %w", err)
	}
	return nil
}
