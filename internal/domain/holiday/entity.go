package holiday

import (
	"context"
	"time"
)

// Holiday is a public holiday observed by a company. Attendance is never
// generated for holiday dates.
type Holiday struct {
	ID        string
	CompanyID string
	Date      time.Time
	Name      string
}

type HolidayRepository interface {
	// ListInRange retrieves holidays with dates inside [from, to], inclusive.
	ListInRange(ctx context.Context, companyID string, from, to time.Time) ([]Holiday, error)
}
