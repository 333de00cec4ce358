package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/staffhub/portal-backend-go/internal/domain/leave"
	"github.com/staffhub/portal-backend-go/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	if req.StartDate.After(req.EndDate) {
		return leave.LeaveRequest{}, leave.ErrInvalidInterval
	}

	q := GetQuerier(ctx, r.db)

	if req.ID == "" {
		req.ID = uuid.New().String()
	}

	query := `
		INSERT INTO leave_requests (
			id, employee_id, company_id, leave_type, start_date, end_date, reason, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.ID, req.EmployeeID, req.CompanyID, req.LeaveType,
		req.StartDate, req.EndDate, req.Reason, req.Status,
	).Scan(&req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return req, nil
}

// ListByEmployee implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) ListByEmployee(ctx context.Context, employeeID string, companyID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, leave_type, start_date, end_date, reason,
			   status, approved_by, approved_at, created_at, updated_at
		FROM leave_requests
		WHERE employee_id = $1 AND company_id = $2
		ORDER BY start_date DESC
	`

	return r.queryRequests(ctx, q, query, employeeID, companyID)
}

// ListApprovedOverlapping implements leave.LeaveRequestRepository. Interval
// overlap with [from, to], all bounds inclusive.
func (r *leaveRequestRepository) ListApprovedOverlapping(ctx context.Context, employeeID string, companyID string, from, to time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, leave_type, start_date, end_date, reason,
			   status, approved_by, approved_at, created_at, updated_at
		FROM leave_requests
		WHERE employee_id = $1 AND company_id = $2
		  AND status = 'approved'
		  AND start_date <= $4
		  AND end_date >= $3
		ORDER BY start_date
	`

	return r.queryRequests(ctx, q, query, employeeID, companyID, from, to)
}

func (r *leaveRequestRepository) queryRequests(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]leave.LeaveRequest, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.CompanyID, &req.LeaveType,
			&req.StartDate, &req.EndDate, &req.Reason,
			&req.Status, &req.ApprovedBy, &req.ApprovedAt,
			&req.CreatedAt, &req.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, nil
}
