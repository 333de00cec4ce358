package employee

import (
	"time"
)

type Employee struct {
	ID        string
	CompanyID string
	FullName  string

	EmploymentStatus EmploymentStatus
	AttendanceMode   AttendanceMode

	// Weekly work schedule, wall-clock "15:04" strings in company-local time.
	WorkStartTime  string
	WorkEndTime    string
	BreakStartTime *string
	BreakEndTime   *string
	WeeklyHours    float64

	// Personal fields reachable through the change-request workflow.
	Citizenship       *string
	Address           *string
	PhoneNumber       *string
	MaritalStatus     *string
	BankAccountNumber *string

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusInactive   EmploymentStatus = "inactive"
	EmploymentStatusOnLeave    EmploymentStatus = "on_leave"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)

type AttendanceMode string

const (
	AttendanceModeAutomatic AttendanceMode = "automatic"
	AttendanceModeManual    AttendanceMode = "manual"
)

// ChangeableFields maps the personnel fields an employee may propose to edit
// through the change-request workflow to their employees-table columns.
var ChangeableFields = map[string]string{
	"citizenship":         "citizenship",
	"address":             "address",
	"phone_number":        "phone_number",
	"marital_status":      "marital_status",
	"bank_account_number": "bank_account_number",
}

// IsChangeableField reports whether fieldName may be mutated via a change request.
func IsChangeableField(fieldName string) bool {
	_, ok := ChangeableFields[fieldName]
	return ok
}

// FieldValue returns the current stored value of a changeable field.
func (e Employee) FieldValue(fieldName string) *string {
	switch fieldName {
	case "citizenship":
		return e.Citizenship
	case "address":
		return e.Address
	case "phone_number":
		return e.PhoneNumber
	case "marital_status":
		return e.MaritalStatus
	case "bank_account_number":
		return e.BankAccountNumber
	}
	return nil
}
