package status

import (
	"time"

	"github.com/staffhub/portal-backend-go/internal/domain/attendance"
	"github.com/staffhub/portal-backend-go/internal/domain/employee"
	"github.com/staffhub/portal-backend-go/internal/domain/leave"
)

// DailyStatus is the single working-state label resolved for an employee on
// one calendar day.
type DailyStatus string

const (
	Terminated DailyStatus = "terminated"
	Inactive   DailyStatus = "inactive"
	OnLeave    DailyStatus = "on_leave"
	Working    DailyStatus = "working"
	Late       DailyStatus = "late"
	Absent     DailyStatus = "absent"
	Leave      DailyStatus = "leave"
	Sick       DailyStatus = "sick"
	Unknown    DailyStatus = "unknown"
)

// Severity is a presentation tag only; it carries no resolution semantics.
type Severity string

const (
	SeverityRed    Severity = "red"
	SeverityYellow Severity = "yellow"
	SeverityGreen  Severity = "green"
	SeverityBlue   Severity = "blue"
	SeverityGray   Severity = "gray"
)

// Label returns the display label for the status.
func (s DailyStatus) Label() string {
	switch s {
	case Terminated:
		return "Terminated"
	case Inactive:
		return "Inactive"
	case OnLeave:
		return "On Leave"
	case Working:
		return "Working"
	case Late:
		return "Late"
	case Absent:
		return "Absent"
	case Leave:
		return "Leave"
	case Sick:
		return "Sick"
	}
	return "Unknown"
}

// Severity returns the color tag used by dashboards.
func (s DailyStatus) Severity() Severity {
	switch s {
	case Terminated, Absent:
		return SeverityRed
	case Inactive, Unknown:
		return SeverityGray
	case OnLeave, Leave, Sick:
		return SeverityBlue
	case Working:
		return SeverityGreen
	case Late:
		return SeverityYellow
	}
	return SeverityGray
}

// IsWorking reports whether the status counts toward working_count. Every
// other status, late included, counts as not working.
func (s DailyStatus) IsWorking() bool {
	return s == Working
}

// Resolve combines employment status, the day's attendance record and the
// employee's leave requests into one DailyStatus. First match wins; the
// priority order is significant:
//
//  1. terminated / inactive / on_leave employment status, in that order
//  2. the day's attendance record: present, late or absent
//  3. an approved leave request covering the date
//  4. an approved sick-leave request covering the date (fallback; step 3
//     already matches any approved leave, sick included, so this only fires
//     when the general lookup was somehow bypassed)
//  5. active with no data resolves to unknown, as does everything else
//
// Resolve never fails: missing data is itself a valid resolved state.
func Resolve(emp employee.Employee, date time.Time, records []attendance.Attendance, leaves []leave.LeaveRequest) DailyStatus {
	switch emp.EmploymentStatus {
	case employee.EmploymentStatusTerminated:
		return Terminated
	case employee.EmploymentStatusInactive:
		return Inactive
	case employee.EmploymentStatusOnLeave:
		return OnLeave
	}

	if rec := recordFor(records, date); rec != nil {
		switch rec.Status {
		case attendance.StatusPresent:
			return Working
		case attendance.StatusLate:
			return Late
		case attendance.StatusAbsent:
			return Absent
		}
		// Unrecognized record status falls through to the leave lookups.
	}

	for _, l := range leaves {
		if l.IsApproved() && l.Covers(date) {
			return Leave
		}
	}

	for _, l := range leaves {
		if l.IsApproved() && l.LeaveType == leave.LeaveTypeSick && l.Covers(date) {
			return Sick
		}
	}

	if emp.EmploymentStatus == employee.EmploymentStatusActive {
		return Unknown
	}
	return Unknown
}

func recordFor(records []attendance.Attendance, date time.Time) *attendance.Attendance {
	y, m, d := date.Date()
	for i := range records {
		ry, rm, rd := records[i].Date.Date()
		if ry == y && rm == m && rd == d {
			return &records[i]
		}
	}
	return nil
}
