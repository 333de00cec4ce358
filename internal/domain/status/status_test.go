package status

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/staffhub/portal-backend-go/internal/domain/attendance"
	"github.com/staffhub/portal-backend-go/internal/domain/employee"
	"github.com/staffhub/portal-backend-go/internal/domain/leave"
)

func day(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}

func record(date string, st attendance.Status) attendance.Attendance {
	return attendance.Attendance{Date: day(date), Status: st}
}

func leaveReq(from, to string, lt leave.LeaveType, st leave.LeaveRequestStatus) leave.LeaveRequest {
	return leave.LeaveRequest{
		LeaveType: lt,
		StartDate: day(from),
		EndDate:   day(to),
		Status:    st,
	}
}

func TestResolve_PriorityOrder(t *testing.T) {
	date := day("2025-06-10")

	tests := []struct {
		name    string
		emp     employee.Employee
		records []attendance.Attendance
		leaves  []leave.LeaveRequest
		want    DailyStatus
	}{
		{
			name: "terminated wins over everything",
			emp:  employee.Employee{EmploymentStatus: employee.EmploymentStatusTerminated},
			records: []attendance.Attendance{
				record("2025-06-10", attendance.StatusPresent),
			},
			leaves: []leave.LeaveRequest{
				leaveReq("2025-06-10", "2025-06-10", leave.LeaveTypeAnnual, leave.LeaveRequestStatusApproved),
			},
			want: Terminated,
		},
		{
			name: "inactive wins over attendance",
			emp:  employee.Employee{EmploymentStatus: employee.EmploymentStatusInactive},
			records: []attendance.Attendance{
				record("2025-06-10", attendance.StatusPresent),
			},
			want: Inactive,
		},
		{
			name: "on_leave employment wins over attendance",
			emp:  employee.Employee{EmploymentStatus: employee.EmploymentStatusOnLeave},
			records: []attendance.Attendance{
				record("2025-06-10", attendance.StatusLate),
			},
			want: OnLeave,
		},
		{
			name: "present record means working",
			emp:  employee.Employee{EmploymentStatus: employee.EmploymentStatusActive},
			records: []attendance.Attendance{
				record("2025-06-10", attendance.StatusPresent),
			},
			want: Working,
		},
		{
			name: "late record wins over approved leave",
			emp:  employee.Employee{EmploymentStatus: employee.EmploymentStatusActive},
			records: []attendance.Attendance{
				record("2025-06-10", attendance.StatusLate),
			},
			leaves: []leave.LeaveRequest{
				leaveReq("2025-06-09", "2025-06-11", leave.LeaveTypeAnnual, leave.LeaveRequestStatusApproved),
			},
			want: Late,
		},
		{
			name: "absent record resolves absent",
			emp:  employee.Employee{EmploymentStatus: employee.EmploymentStatusActive},
			records: []attendance.Attendance{
				record("2025-06-10", attendance.StatusAbsent),
			},
			want: Absent,
		},
		{
			name: "record on another day is ignored",
			emp:  employee.Employee{EmploymentStatus: employee.EmploymentStatusActive},
			records: []attendance.Attendance{
				record("2025-06-09", attendance.StatusPresent),
			},
			want: Unknown,
		},
		{
			name: "approved annual leave covering the day",
			emp:  employee.Employee{EmploymentStatus: employee.EmploymentStatusActive},
			leaves: []leave.LeaveRequest{
				leaveReq("2025-06-09", "2025-06-11", leave.LeaveTypeAnnual, leave.LeaveRequestStatusApproved),
			},
			want: Leave,
		},
		{
			name: "approved sick leave resolves through the general lookup",
			emp:  employee.Employee{EmploymentStatus: employee.EmploymentStatusActive},
			leaves: []leave.LeaveRequest{
				leaveReq("2025-06-10", "2025-06-12", leave.LeaveTypeSick, leave.LeaveRequestStatusApproved),
			},
			want: Leave,
		},
		{
			name: "pending leave does not count",
			emp:  employee.Employee{EmploymentStatus: employee.EmploymentStatusActive},
			leaves: []leave.LeaveRequest{
				leaveReq("2025-06-10", "2025-06-10", leave.LeaveTypeAnnual, leave.LeaveRequestStatusPending),
			},
			want: Unknown,
		},
		{
			name: "rejected leave does not count",
			emp:  employee.Employee{EmploymentStatus: employee.EmploymentStatusActive},
			leaves: []leave.LeaveRequest{
				leaveReq("2025-06-10", "2025-06-10", leave.LeaveTypeSick, leave.LeaveRequestStatusRejected),
			},
			want: Unknown,
		},
		{
			name: "approved leave outside the day does not count",
			emp:  employee.Employee{EmploymentStatus: employee.EmploymentStatusActive},
			leaves: []leave.LeaveRequest{
				leaveReq("2025-06-11", "2025-06-12", leave.LeaveTypeAnnual, leave.LeaveRequestStatusApproved),
			},
			want: Unknown,
		},
		{
			name: "leave boundary days are inclusive",
			emp:  employee.Employee{EmploymentStatus: employee.EmploymentStatusActive},
			leaves: []leave.LeaveRequest{
				leaveReq("2025-06-10", "2025-06-10", leave.LeaveTypeAnnual, leave.LeaveRequestStatusApproved),
			},
			want: Leave,
		},
		{
			name: "active with no data resolves unknown",
			emp:  employee.Employee{EmploymentStatus: employee.EmploymentStatusActive},
			want: Unknown,
		},
		{
			name: "empty employment status resolves unknown",
			emp:  employee.Employee{},
			want: Unknown,
		},
		{
			name: "unrecognized record status falls through to leave",
			emp:  employee.Employee{EmploymentStatus: employee.EmploymentStatusActive},
			records: []attendance.Attendance{
				record("2025-06-10", attendance.Status("half_day")),
			},
			leaves: []leave.LeaveRequest{
				leaveReq("2025-06-10", "2025-06-10", leave.LeaveTypeAnnual, leave.LeaveRequestStatusApproved),
			},
			want: Leave,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.emp, date, tt.records, tt.leaves)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDailyStatus_IsWorking(t *testing.T) {
	all := []DailyStatus{Terminated, Inactive, OnLeave, Working, Late, Absent, Leave, Sick, Unknown}
	for _, s := range all {
		assert.Equal(t, s == Working, s.IsWorking(), "status %s", s)
	}
}

func TestDailyStatus_Severity(t *testing.T) {
	assert.Equal(t, SeverityRed, Terminated.Severity())
	assert.Equal(t, SeverityRed, Absent.Severity())
	assert.Equal(t, SeverityYellow, Late.Severity())
	assert.Equal(t, SeverityGreen, Working.Severity())
	assert.Equal(t, SeverityBlue, Leave.Severity())
	assert.Equal(t, SeverityBlue, Sick.Severity())
	assert.Equal(t, SeverityBlue, OnLeave.Severity())
	assert.Equal(t, SeverityGray, Unknown.Severity())
	assert.Equal(t, SeverityGray, Inactive.Severity())
	assert.Equal(t, SeverityGray, DailyStatus("bogus").Severity())
}

func TestDailyStatus_Label(t *testing.T) {
	assert.Equal(t, "Working", Working.Label())
	assert.Equal(t, "On Leave", OnLeave.Label())
	assert.Equal(t, "Unknown", DailyStatus("bogus").Label())
}
