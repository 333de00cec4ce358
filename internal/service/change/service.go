package change

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/staffhub/portal-backend-go/internal/domain/change"
	"github.com/staffhub/portal-backend-go/internal/domain/employee"
	"github.com/staffhub/portal-backend-go/internal/pkg/database"
	"github.com/staffhub/portal-backend-go/internal/pkg/dates"
)

// Service runs the personnel change-approval workflow: an employee proposes a
// new value for one field, and the value is written only after an admin
// approves the request.
type Service struct {
	changeRepo   change.ChangeRequestRepository
	employeeRepo employee.EmployeeRepository
	transactor   database.Transactor
}

func NewService(
	changeRepo change.ChangeRequestRepository,
	employeeRepo employee.EmployeeRepository,
	transactor database.Transactor,
) *Service {
	return &Service{
		changeRepo:   changeRepo,
		employeeRepo: employeeRepo,
		transactor:   transactor,
	}
}

// Submit creates a new pending request. Multiple pending requests may exist
// for the same field; the one with the highest ID wins.
func (s *Service) Submit(ctx context.Context, companyID string, req change.SubmitChangeRequest) (change.ChangeRequest, error) {
	if err := req.Validate(); err != nil {
		return change.ChangeRequest{}, err
	}
	if !employee.IsChangeableField(req.FieldName) {
		return change.ChangeRequest{}, employee.ErrFieldNotChangeable
	}

	// The employee must exist in this company before a request is recorded.
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID); err != nil {
		return change.ChangeRequest{}, fmt.Errorf("failed to load employee: %w", err)
	}

	created, err := s.changeRepo.Create(ctx, change.ChangeRequest{
		EmployeeID:   req.EmployeeID,
		CompanyID:    companyID,
		FieldName:    req.FieldName,
		CurrentValue: req.CurrentValue,
		NewValue:     req.NewValue,
		Reason:       req.Reason,
		Status:       change.ChangeRequestStatusPending,
	})
	if err != nil {
		return change.ChangeRequest{}, fmt.Errorf("failed to create change request: %w", err)
	}

	slog.Info("Change request submitted",
		"change_id", created.ID, "employee_id", created.EmployeeID, "field", created.FieldName)
	return created, nil
}

// Approve applies the proposed value and flips the request to approved as one
// unit. The field write happens first; if anything fails the request stays
// pending and the call is safe to retry. Approving an already-approved
// request is a no-op, so doubled submissions from the UI are harmless. The
// request row is kept forever as the audit trail.
func (s *Service) Approve(ctx context.Context, changeID int64, companyID string, approverID string) error {
	req, err := s.changeRepo.GetByID(ctx, changeID, companyID)
	if err != nil {
		return fmt.Errorf("failed to load change request: %w", err)
	}

	if req.Status == change.ChangeRequestStatusApproved {
		return nil
	}

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.employeeRepo.UpdateField(ctx, req.EmployeeID, companyID, req.FieldName, req.NewValue); err != nil {
			return fmt.Errorf("failed to apply field change: %w", err)
		}

		flipped, err := s.changeRepo.MarkApproved(ctx, changeID, companyID, approverID)
		if err != nil {
			return fmt.Errorf("failed to mark change request approved: %w", err)
		}
		if !flipped {
			// A concurrent caller won the pending guard. The field value it
			// wrote is identical to ours, so this is still a success.
			slog.Info("Change request already approved concurrently", "change_id", changeID)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("Change request approved",
		"change_id", changeID, "employee_id", req.EmployeeID,
		"field", req.FieldName, "approver_id", approverID)
	return nil
}

// LatestPendingFor returns the highest-ID pending request for the field, or
// nil when there is none.
func (s *Service) LatestPendingFor(ctx context.Context, employeeID, fieldName, companyID string) (*change.ChangeRequest, error) {
	return s.changeRepo.LatestPending(ctx, employeeID, fieldName, companyID)
}

// LatestApprovedFor returns the highest-ID approved request for the field, or
// nil when there is none.
func (s *Service) LatestApprovedFor(ctx context.Context, employeeID, fieldName, companyID string) (*change.ChangeRequest, error) {
	return s.changeRepo.LatestApproved(ctx, employeeID, fieldName, companyID)
}

// ListByEmployee returns every request of one employee, newest first.
func (s *Service) ListByEmployee(ctx context.Context, employeeID, companyID string) ([]change.ChangeRequest, error) {
	return s.changeRepo.ListByEmployee(ctx, employeeID, companyID)
}

// ListByCompany returns every request of the company, newest first.
func (s *Service) ListByCompany(ctx context.Context, companyID string) ([]change.ChangeRequest, error) {
	return s.changeRepo.ListByCompany(ctx, companyID)
}

// FieldView shows a field the way the profile page renders it: the pending
// proposed value takes visual precedence over the stored value until the
// request is approved.
func (s *Service) FieldView(ctx context.Context, employeeID, fieldName, companyID string) (change.FieldViewResponse, error) {
	if !employee.IsChangeableField(fieldName) {
		return change.FieldViewResponse{}, employee.ErrFieldNotChangeable
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID, companyID)
	if err != nil {
		return change.FieldViewResponse{}, fmt.Errorf("failed to load employee: %w", err)
	}

	pending, err := s.changeRepo.LatestPending(ctx, employeeID, fieldName, companyID)
	if err != nil {
		return change.FieldViewResponse{}, fmt.Errorf("failed to look up pending change: %w", err)
	}

	view := change.FieldViewResponse{
		FieldName:   fieldName,
		StoredValue: emp.FieldValue(fieldName),
	}
	view.DisplayValue = view.StoredValue
	if pending != nil {
		view.HasPending = true
		view.PendingValue = &pending.NewValue
		view.DisplayValue = &pending.NewValue
		resp := MapToResponse(*pending)
		view.PendingChange = &resp
	}
	return view, nil
}

// MapToResponse converts a ChangeRequest entity to its wire representation.
func MapToResponse(req change.ChangeRequest) change.ChangeRequestResponse {
	return change.ChangeRequestResponse{
		ID:           req.ID,
		EmployeeID:   req.EmployeeID,
		FieldName:    req.FieldName,
		CurrentValue: req.CurrentValue,
		NewValue:     req.NewValue,
		Reason:       req.Reason,
		Status:       string(req.Status),
		ApprovedBy:   req.ApprovedBy,
		CreatedAt:    req.CreatedAt.Format(dates.Layout + " 15:04:05"),
	}
}
