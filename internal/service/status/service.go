package status

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/staffhub/portal-backend-go/internal/domain/attendance"
	"github.com/staffhub/portal-backend-go/internal/domain/employee"
	"github.com/staffhub/portal-backend-go/internal/domain/leave"
	"github.com/staffhub/portal-backend-go/internal/domain/status"
	"github.com/staffhub/portal-backend-go/internal/pkg/dates"
)

const fetchLimit = 8

// EmployeeStatus is one resolved row of the company status board.
type EmployeeStatus struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Status       string `json:"status"`
	Label        string `json:"label"`
	Severity     string `json:"severity"`
}

// SummaryResponse is the daily status board for a company. The counts always
// add up to the number of employees; late counts as not working.
type SummaryResponse struct {
	Date            string           `json:"date"`
	WorkingCount    int              `json:"working_count"`
	NotWorkingCount int              `json:"not_working_count"`
	Employees       []EmployeeStatus `json:"employees"`
}

// Service resolves daily working statuses for whole companies.
type Service struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRequestRepository
}

func NewService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRequestRepository,
) *Service {
	return &Service{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
	}
}

// ResolveEmployee resolves one employee's status for one day.
func (s *Service) ResolveEmployee(ctx context.Context, emp employee.Employee, date time.Time) (status.DailyStatus, error) {
	records, err := s.attendanceRepo.ListByEmployee(ctx, emp.ID, date, emp.CompanyID)
	if err != nil {
		return status.Unknown, fmt.Errorf("failed to load attendance: %w", err)
	}
	leaves, err := s.leaveRepo.ListApprovedOverlapping(ctx, emp.ID, emp.CompanyID, date, date)
	if err != nil {
		return status.Unknown, fmt.Errorf("failed to load leave requests: %w", err)
	}
	return status.Resolve(emp, date, records, leaves), nil
}

// Summary resolves every employee of the company for one day. A fetch error
// for one employee does not abort the batch; that employee is conservatively
// counted as not working with status unknown.
func (s *Service) Summary(ctx context.Context, companyID string, date time.Time) (SummaryResponse, error) {
	employees, err := s.employeeRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return SummaryResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	resolved := make([]EmployeeStatus, len(employees))

	var mu sync.Mutex
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(fetchLimit)

	for i, emp := range employees {
		i, emp := i, emp
		g.Go(func() error {
			st, err := s.ResolveEmployee(gCtx, emp, date)
			if err != nil {
				slog.Error("Status resolution failed for employee",
					"employee_id", emp.ID, "date", dates.Format(date), "error", err)
				st = status.Unknown
			}
			mu.Lock()
			resolved[i] = EmployeeStatus{
				EmployeeID:   emp.ID,
				EmployeeName: emp.FullName,
				Status:       string(st),
				Label:        st.Label(),
				Severity:     string(st.Severity()),
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return SummaryResponse{}, err
	}

	resp := SummaryResponse{
		Date:      dates.Format(date),
		Employees: resolved,
	}
	for _, r := range resolved {
		if status.DailyStatus(r.Status).IsWorking() {
			resp.WorkingCount++
		} else {
			resp.NotWorkingCount++
		}
	}
	return resp, nil
}
