package generator

import (
	"github.com/staffhub/portal-backend-go/internal/pkg/validator"
)

// ProcessRequest is the batch-generation payload. EmployeeIDs must already be
// filtered to attendance_mode=automatic by the employee directory; the
// generator does not re-check the mode.
type ProcessRequest struct {
	EmployeeIDs []string `json:"employee_ids"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
}

func (r *ProcessRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.EmployeeIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_ids",
			Message: "at least one employee must be selected",
		})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Result is the outcome for one (employee, date) unit of the batch.
type Result struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	Success    bool    `json:"success"`
	Skipped    bool    `json:"skipped"`
	Status     *string `json:"status,omitempty"`
	Note       *string `json:"note,omitempty"`
	Error      *string `json:"error,omitempty"`
}

// ProcessResponse carries every per-item outcome plus the three buckets the
// dashboard renders. No outcome is ever dropped.
type ProcessResponse struct {
	Results        []Result `json:"results"`
	GeneratedCount int      `json:"generated_count"`
	SkippedCount   int      `json:"skipped_count"`
	FailedCount    int      `json:"failed_count"`
}

// CleanupResponse reports how many future-dated records were removed.
type CleanupResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}
