package generator

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/staffhub/portal-backend-go/internal/domain/attendance"
	"github.com/staffhub/portal-backend-go/internal/domain/employee"
	"github.com/staffhub/portal-backend-go/internal/domain/holiday"
	"github.com/staffhub/portal-backend-go/internal/domain/leave"
	"github.com/staffhub/portal-backend-go/internal/domain/period"
	"github.com/staffhub/portal-backend-go/internal/pkg/dates"
)

// Service synthesizes attendance records for automatic-mode employees over a
// date range, from each employee's weekly schedule.
type Service struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	leaveRepo      leave.LeaveRequestRepository
	holidayRepo    holiday.HolidayRepository
	periodChecker  period.Checker
	workers        int
}

func NewService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	leaveRepo leave.LeaveRequestRepository,
	holidayRepo holiday.HolidayRepository,
	periodChecker period.Checker,
	workers int,
) *Service {
	if workers < 1 {
		workers = 1
	}
	return &Service{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		leaveRepo:      leaveRepo,
		holidayRepo:    holidayRepo,
		periodChecker:  periodChecker,
		workers:        workers,
	}
}

// Process is the HTTP-facing entry point. It parses and validates the
// request, clamps the end date to yesterday, loads the employees and runs the
// batch. A period-locked range aborts the whole batch with no writes.
func (s *Service) Process(ctx context.Context, companyID string, req ProcessRequest) (ProcessResponse, error) {
	if err := req.Validate(); err != nil {
		return ProcessResponse{}, err
	}

	start, err := dates.Parse(req.StartDate)
	if err != nil {
		return ProcessResponse{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	end, err := dates.Parse(req.EndDate)
	if err != nil {
		return ProcessResponse{}, fmt.Errorf("failed to parse end date: %w", err)
	}

	// The generator never materializes attendance for today or the future;
	// clamp the caller's range at the boundary.
	if yesterday := dates.Yesterday(); end.After(yesterday) {
		end = yesterday
	}

	employees := make([]employee.Employee, 0, len(req.EmployeeIDs))
	for _, id := range req.EmployeeIDs {
		emp, err := s.employeeRepo.GetByID(ctx, id, companyID)
		if err != nil {
			return ProcessResponse{}, fmt.Errorf("failed to load employee %s: %w", id, err)
		}
		employees = append(employees, emp)
	}

	results, err := s.Generate(ctx, companyID, employees, start, end)
	if err != nil {
		return ProcessResponse{}, err
	}

	resp := ProcessResponse{Results: results}
	for _, r := range results {
		switch {
		case r.Skipped:
			resp.SkippedCount++
		case r.Success:
			resp.GeneratedCount++
		default:
			resp.FailedCount++
		}
	}
	return resp, nil
}

// Generate runs the batch for an already-loaded employee set.
//
// Every successful write unconditionally replaces any prior record for its
// (employee, date) key. The operation is irreversible; callers must obtain an
// explicit confirmation from the invoking user before calling it.
//
// Employees are processed concurrently up to the configured worker limit;
// dates within one employee are strictly sequential so the same
// (employee_id, date) key is never written twice in flight.
func (s *Service) Generate(ctx context.Context, companyID string, employees []employee.Employee, startDate, endDate time.Time) ([]Result, error) {
	if len(employees) == 0 {
		return nil, attendance.ErrNoEmployees
	}
	if startDate.After(endDate) {
		return nil, attendance.ErrInvalidDateRange
	}
	if !endDate.Before(dates.Today()) {
		return nil, attendance.ErrEndDateNotPast
	}

	// Period lock is evaluated once, before any write. A locked period aborts
	// the entire batch; partial writes are disallowed.
	locked, message, err := s.periodChecker.IsLocked(ctx, companyID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to check period lock: %w", err)
	}
	if locked {
		return nil, &period.LockedError{Message: message}
	}

	holidays, err := s.holidayRepo.ListInRange(ctx, companyID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load holidays: %w", err)
	}
	holidayByDate := make(map[string]holiday.Holiday, len(holidays))
	for _, h := range holidays {
		holidayByDate[dates.Format(h.Date)] = h
	}

	var (
		mu      sync.Mutex
		results []Result
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for _, emp := range employees {
		emp := emp
		g.Go(func() error {
			// Cancellation is honored between per-employee units of work.
			if err := gCtx.Err(); err != nil {
				return err
			}

			empResults := s.generateForEmployee(gCtx, companyID, emp, startDate, endDate, holidayByDate)

			mu.Lock()
			results = append(results, empResults...)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].EmployeeID != results[j].EmployeeID {
			return results[i].EmployeeID < results[j].EmployeeID
		}
		return results[i].Date < results[j].Date
	})

	return results, nil
}

// generateForEmployee walks the date range in order for one employee. Errors
// are recorded per item and never abort the rest of the batch.
func (s *Service) generateForEmployee(ctx context.Context, companyID string, emp employee.Employee, startDate, endDate time.Time, holidayByDate map[string]holiday.Holiday) []Result {
	leaves, err := s.leaveRepo.ListApprovedOverlapping(ctx, emp.ID, companyID, startDate, endDate)
	if err != nil {
		// Without the leave data we cannot tell working days from excluded
		// ones; fail every date of this employee rather than guessing.
		slog.Error("Failed to load leave requests for generation",
			"employee_id", emp.ID, "error", err)
		msg := fmt.Sprintf("failed to load leave requests: %v", err)
		var failed []Result
		for _, day := range dates.Range(startDate, endDate) {
			failed = append(failed, Result{
				EmployeeID: emp.ID,
				Date:       dates.Format(day),
				Error:      &msg,
			})
		}
		return failed
	}

	today := dates.Today()
	var results []Result

	for _, day := range dates.Range(startDate, endDate) {
		results = append(results, s.generateDay(ctx, companyID, emp, day, today, leaves, holidayByDate))
	}
	return results
}

func (s *Service) generateDay(ctx context.Context, companyID string, emp employee.Employee, day, today time.Time, leaves []leave.LeaveRequest, holidayByDate map[string]holiday.Holiday) Result {
	result := Result{
		EmployeeID: emp.ID,
		Date:       dates.Format(day),
	}

	skip := func(note string) Result {
		result.Success = true
		result.Skipped = true
		result.Note = &note
		return result
	}

	if !day.Before(today) {
		return skip("future date: attendance is only generated for past days")
	}
	if dates.IsWeekend(day) {
		return skip("weekend")
	}
	if h, ok := holidayByDate[dates.Format(day)]; ok {
		return skip(fmt.Sprintf("public holiday: %s", h.Name))
	}
	for _, l := range leaves {
		if l.Covers(day) {
			return skip(fmt.Sprintf("approved leave (%s)", l.LeaveType))
		}
	}

	rec, err := buildRecord(emp, companyID, day)
	if err != nil {
		msg := err.Error()
		result.Error = &msg
		return result
	}

	if _, err := s.attendanceRepo.Upsert(ctx, rec); err != nil {
		slog.Error("Failed to write generated attendance",
			"employee_id", emp.ID, "date", result.Date, "error", err)
		msg := err.Error()
		result.Error = &msg
		return result
	}

	result.Success = true
	status := string(rec.Status)
	result.Status = &status
	return result
}

// buildRecord synthesizes the attendance row for one working day from the
// employee's weekly schedule.
func buildRecord(emp employee.Employee, companyID string, day time.Time) (attendance.Attendance, error) {
	checkIn, ok := dates.At(day, emp.WorkStartTime)
	if !ok {
		return attendance.Attendance{}, fmt.Errorf("invalid work start time %q", emp.WorkStartTime)
	}
	checkOut, ok := dates.At(day, emp.WorkEndTime)
	if !ok {
		return attendance.Attendance{}, fmt.Errorf("invalid work end time %q", emp.WorkEndTime)
	}

	worked := checkOut.Sub(checkIn) - breakDuration(emp, day)
	if worked < 0 {
		worked = 0
	}

	return attendance.Attendance{
		EmployeeID:  emp.ID,
		CompanyID:   companyID,
		Date:        day,
		CheckIn:     &checkIn,
		CheckOut:    &checkOut,
		TotalHours:  decimal.NewFromInt(int64(worked.Minutes())).Div(decimal.NewFromInt(60)),
		Status:      attendance.StatusPresent,
		GeneratedBy: attendance.GeneratedAutomatic,
	}, nil
}

func breakDuration(emp employee.Employee, day time.Time) time.Duration {
	if emp.BreakStartTime == nil || emp.BreakEndTime == nil {
		return 0
	}
	breakStart, ok := dates.At(day, *emp.BreakStartTime)
	if !ok {
		return 0
	}
	breakEnd, ok := dates.At(day, *emp.BreakEndTime)
	if !ok {
		return 0
	}
	if d := breakEnd.Sub(breakStart); d > 0 {
		return d
	}
	return 0
}

// CleanupFutureAttendance deletes every attendance record of the company
// dated today or later. Repeated calls delete nothing further.
func (s *Service) CleanupFutureAttendance(ctx context.Context, companyID string) (CleanupResponse, error) {
	deleted, err := s.attendanceRepo.DeleteFromDate(ctx, companyID, dates.Today())
	if err != nil {
		return CleanupResponse{}, fmt.Errorf("failed to delete future attendance: %w", err)
	}
	slog.Info("Cleaned up future attendance", "company_id", companyID, "deleted", deleted)
	return CleanupResponse{DeletedCount: deleted}, nil
}
