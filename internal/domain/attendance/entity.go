package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Attendance struct {
	ID         string
	EmployeeID string
	CompanyID  string

	// Date is the working day, not a timestamp. Stored at local midnight.
	Date time.Time

	CheckIn    *time.Time
	CheckOut   *time.Time
	TotalHours decimal.Decimal

	Status      Status
	GeneratedBy Provenance

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	EmployeeName *string
}

type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusAbsent  Status = "absent"
)

// Provenance distinguishes synthesized rows from manual punches so audits can
// tell them apart after a destructive regeneration.
type Provenance string

const (
	GeneratedAutomatic Provenance = "automatic"
	GeneratedManual    Provenance = "manual"
)
