package change

import (
	"github.com/staffhub/portal-backend-go/internal/pkg/validator"
)

type SubmitChangeRequest struct {
	EmployeeID   string `json:"employee_id"`
	FieldName    string `json:"field_name"`
	CurrentValue string `json:"current_value"`
	NewValue     string `json:"new_value"`
	Reason       string `json:"reason"`
}

func (r *SubmitChangeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.FieldName) {
		errs = append(errs, validator.ValidationError{
			Field:   "field_name",
			Message: "field_name is required",
		})
	}
	if validator.IsEmpty(r.NewValue) {
		errs = append(errs, validator.ValidationError{
			Field:   "new_value",
			Message: "new_value is required",
		})
	}
	if len(r.Reason) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ChangeRequestResponse is the wire representation of one change request.
type ChangeRequestResponse struct {
	ID           int64   `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	FieldName    string  `json:"field_name"`
	CurrentValue string  `json:"current_value"`
	NewValue     string  `json:"new_value"`
	Reason       string  `json:"reason,omitempty"`
	Status       string  `json:"status"`
	ApprovedBy   *string `json:"approved_by,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

// FieldViewResponse shows a personnel field the way the profile page renders
// it: the stored value plus the latest pending proposal, which takes visual
// precedence until it is approved.
type FieldViewResponse struct {
	FieldName     string  `json:"field_name"`
	StoredValue   *string `json:"stored_value"`
	PendingValue  *string `json:"pending_value,omitempty"`
	DisplayValue  *string `json:"display_value"`
	HasPending    bool    `json:"has_pending"`
	PendingChange *ChangeRequestResponse `json:"pending_change,omitempty"`
}
