package status

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhub/portal-backend-go/internal/domain/attendance"
	"github.com/staffhub/portal-backend-go/internal/domain/employee"
	"github.com/staffhub/portal-backend-go/internal/domain/leave"
	"github.com/staffhub/portal-backend-go/internal/domain/status"
	"github.com/staffhub/portal-backend-go/internal/pkg/dates"
)

const testCompanyID = "company-1"

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string, _ string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ListByCompany(_ context.Context, _ string) ([]employee.Employee, error) {
	return f.employees, nil
}

func (f *fakeEmployeeRepo) ListWithAutomaticAttendance(_ context.Context, _ string) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) UpdateField(_ context.Context, _, _, _, _ string) error {
	return nil
}

type fakeAttendanceRepo struct {
	records     map[string][]attendance.Attendance
	errEmployee string
}

func (f *fakeAttendanceRepo) Upsert(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	return att, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, _ string, _ time.Time, _ string) (*attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) ListByEmployee(_ context.Context, employeeID string, _ time.Time, _ string) ([]attendance.Attendance, error) {
	if employeeID == f.errEmployee {
		return nil, errors.New("connection refused")
	}
	return f.records[employeeID], nil
}

func (f *fakeAttendanceRepo) List(_ context.Context, _ attendance.Filter, _ string) ([]attendance.Attendance, int64, error) {
	return nil, 0, nil
}

func (f *fakeAttendanceRepo) DeleteFromDate(_ context.Context, _ string, _ time.Time) (int64, error) {
	return 0, nil
}

type fakeLeaveRepo struct {
	leaves map[string][]leave.LeaveRequest
}

func (f *fakeLeaveRepo) Create(_ context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	return req, nil
}

func (f *fakeLeaveRepo) ListByEmployee(_ context.Context, employeeID string, _ string) ([]leave.LeaveRequest, error) {
	return f.leaves[employeeID], nil
}

func (f *fakeLeaveRepo) ListApprovedOverlapping(_ context.Context, employeeID string, _ string, from, to time.Time) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, l := range f.leaves[employeeID] {
		if l.IsApproved() && !l.StartDate.After(to) && !l.EndDate.Before(from) {
			out = append(out, l)
		}
	}
	return out, nil
}

func activeEmployee(id, name string) employee.Employee {
	return employee.Employee{
		ID:               id,
		CompanyID:        testCompanyID,
		FullName:         name,
		EmploymentStatus: employee.EmploymentStatusActive,
	}
}

func TestSummary_CountsAlwaysSumToTotal(t *testing.T) {
	date := dates.Yesterday()

	employees := []employee.Employee{
		activeEmployee("emp-1", "Working One"),
		activeEmployee("emp-2", "Late Two"),
		activeEmployee("emp-3", "On Leave Three"),
		{ID: "emp-4", CompanyID: testCompanyID, FullName: "Gone Four", EmploymentStatus: employee.EmploymentStatusTerminated},
		activeEmployee("emp-5", "Nothing Five"),
	}

	attendanceRepo := &fakeAttendanceRepo{records: map[string][]attendance.Attendance{
		"emp-1": {{EmployeeID: "emp-1", Date: date, Status: attendance.StatusPresent}},
		"emp-2": {{EmployeeID: "emp-2", Date: date, Status: attendance.StatusLate}},
	}}
	leaveRepo := &fakeLeaveRepo{leaves: map[string][]leave.LeaveRequest{
		"emp-3": {{
			EmployeeID: "emp-3",
			LeaveType:  leave.LeaveTypeAnnual,
			StartDate:  date,
			EndDate:    date,
			Status:     leave.LeaveRequestStatusApproved,
		}},
	}}

	svc := NewService(&fakeEmployeeRepo{employees: employees}, attendanceRepo, leaveRepo)

	resp, err := svc.Summary(context.Background(), testCompanyID, date)
	require.NoError(t, err)

	assert.Equal(t, dates.Format(date), resp.Date)
	assert.Len(t, resp.Employees, 5)
	assert.Equal(t, 1, resp.WorkingCount)
	assert.Equal(t, 4, resp.NotWorkingCount)
	assert.Equal(t, len(employees), resp.WorkingCount+resp.NotWorkingCount)

	byID := make(map[string]EmployeeStatus)
	for _, e := range resp.Employees {
		byID[e.EmployeeID] = e
	}
	assert.Equal(t, string(status.Working), byID["emp-1"].Status)
	assert.Equal(t, string(status.Late), byID["emp-2"].Status)
	assert.Equal(t, string(status.Leave), byID["emp-3"].Status)
	assert.Equal(t, string(status.Terminated), byID["emp-4"].Status)
	assert.Equal(t, string(status.Unknown), byID["emp-5"].Status)
}

func TestSummary_FetchFailureCountsAsUnknown(t *testing.T) {
	date := dates.Yesterday()

	employees := []employee.Employee{
		activeEmployee("emp-ok", "Fine"),
		activeEmployee("emp-broken", "Broken"),
	}

	attendanceRepo := &fakeAttendanceRepo{
		records: map[string][]attendance.Attendance{
			"emp-ok": {{EmployeeID: "emp-ok", Date: date, Status: attendance.StatusPresent}},
		},
		errEmployee: "emp-broken",
	}

	svc := NewService(&fakeEmployeeRepo{employees: employees}, attendanceRepo, &fakeLeaveRepo{})

	resp, err := svc.Summary(context.Background(), testCompanyID, date)
	require.NoError(t, err)

	assert.Equal(t, 1, resp.WorkingCount)
	assert.Equal(t, 1, resp.NotWorkingCount)

	for _, e := range resp.Employees {
		if e.EmployeeID == "emp-broken" {
			assert.Equal(t, string(status.Unknown), e.Status)
		}
	}
}

func TestSummary_EmptyCompany(t *testing.T) {
	svc := NewService(&fakeEmployeeRepo{}, &fakeAttendanceRepo{}, &fakeLeaveRepo{})

	resp, err := svc.Summary(context.Background(), testCompanyID, dates.Today())
	require.NoError(t, err)
	assert.Equal(t, 0, resp.WorkingCount)
	assert.Equal(t, 0, resp.NotWorkingCount)
	assert.Empty(t, resp.Employees)
}
