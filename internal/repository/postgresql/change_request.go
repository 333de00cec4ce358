package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/staffhub/portal-backend-go/internal/domain/change"
	"github.com/staffhub/portal-backend-go/internal/pkg/database"
)

type changeRequestRepository struct {
	db *database.DB
}

func NewChangeRequestRepository(db *database.DB) change.ChangeRequestRepository {
	return &changeRequestRepository{db: db}
}

const changeColumns = `
	id, employee_id, company_id, field_name, current_value, new_value, reason,
	status, approved_by, approved_at, created_at
`

func scanChange(row pgx.Row) (change.ChangeRequest, error) {
	var req change.ChangeRequest
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.CompanyID, &req.FieldName,
		&req.CurrentValue, &req.NewValue, &req.Reason,
		&req.Status, &req.ApprovedBy, &req.ApprovedAt, &req.CreatedAt,
	)
	return req, err
}

// Create implements change.ChangeRequestRepository. IDs come from a sequence,
// so the highest ID is always the most recent request.
func (r *changeRequestRepository) Create(ctx context.Context, req change.ChangeRequest) (change.ChangeRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_change_requests (
			employee_id, company_id, field_name, current_value, new_value, reason, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		req.EmployeeID, req.CompanyID, req.FieldName,
		req.CurrentValue, req.NewValue, req.Reason, req.Status,
	).Scan(&req.ID, &req.CreatedAt)
	if err != nil {
		return change.ChangeRequest{}, fmt.Errorf("failed to create change request: %w", err)
	}
	return req, nil
}

// GetByID implements change.ChangeRequestRepository.
func (r *changeRequestRepository) GetByID(ctx context.Context, id int64, companyID string) (change.ChangeRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + changeColumns + `
		FROM employee_change_requests
		WHERE id = $1 AND company_id = $2
	`

	req, err := scanChange(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return change.ChangeRequest{}, change.ErrChangeRequestNotFound
		}
		return change.ChangeRequest{}, fmt.Errorf("failed to get change request by ID: %w", err)
	}
	return req, nil
}

// ListByEmployee implements change.ChangeRequestRepository.
func (r *changeRequestRepository) ListByEmployee(ctx context.Context, employeeID string, companyID string) ([]change.ChangeRequest, error) {
	query := `
		SELECT ` + changeColumns + `
		FROM employee_change_requests
		WHERE employee_id = $1 AND company_id = $2
		ORDER BY id DESC
	`
	return r.queryChanges(ctx, query, employeeID, companyID)
}

// ListByCompany implements change.ChangeRequestRepository.
func (r *changeRequestRepository) ListByCompany(ctx context.Context, companyID string) ([]change.ChangeRequest, error) {
	query := `
		SELECT ` + changeColumns + `
		FROM employee_change_requests
		WHERE company_id = $1
		ORDER BY id DESC
	`
	return r.queryChanges(ctx, query, companyID)
}

// LatestPending implements change.ChangeRequestRepository. The composite
// index on (employee_id, field_name, id DESC) makes this a single index hit
// instead of a scan over the employee's history.
func (r *changeRequestRepository) LatestPending(ctx context.Context, employeeID string, fieldName string, companyID string) (*change.ChangeRequest, error) {
	return r.latestByStatus(ctx, employeeID, fieldName, companyID, change.ChangeRequestStatusPending)
}

// LatestApproved implements change.ChangeRequestRepository.
func (r *changeRequestRepository) LatestApproved(ctx context.Context, employeeID string, fieldName string, companyID string) (*change.ChangeRequest, error) {
	return r.latestByStatus(ctx, employeeID, fieldName, companyID, change.ChangeRequestStatusApproved)
}

func (r *changeRequestRepository) latestByStatus(ctx context.Context, employeeID, fieldName, companyID string, status change.ChangeRequestStatus) (*change.ChangeRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + changeColumns + `
		FROM employee_change_requests
		WHERE employee_id = $1 AND field_name = $2 AND company_id = $3 AND status = $4
		ORDER BY id DESC
		LIMIT 1
	`

	req, err := scanChange(q.QueryRow(ctx, query, employeeID, fieldName, companyID, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest %s change request: %w", status, err)
	}
	return &req, nil
}

// MarkApproved implements change.ChangeRequestRepository. The status guard in
// the WHERE clause makes concurrent approvals race-safe: exactly one caller
// flips the row.
func (r *changeRequestRepository) MarkApproved(ctx context.Context, id int64, companyID string, approverID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employee_change_requests
		SET status = 'approved', approved_by = $1, approved_at = NOW()
		WHERE id = $2 AND company_id = $3 AND status = 'pending'
	`

	commandTag, err := q.Exec(ctx, query, approverID, id, companyID)
	if err != nil {
		return false, fmt.Errorf("failed to mark change request approved: %w", err)
	}
	return commandTag.RowsAffected() > 0, nil
}

func (r *changeRequestRepository) queryChanges(ctx context.Context, query string, args ...interface{}) ([]change.ChangeRequest, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query change requests: %w", err)
	}
	defer rows.Close()

	var requests []change.ChangeRequest
	for rows.Next() {
		req, err := scanChange(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan change request: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, nil
}
