package attendance

import (
	"context"
	"fmt"

	"github.com/staffhub/portal-backend-go/internal/domain/attendance"
	"github.com/staffhub/portal-backend-go/internal/pkg/dates"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

// Service exposes the attendance reads the dashboard and review screens use.
// Writes go through the generator; manual punches are out of scope here.
type Service struct {
	attendanceRepo attendance.AttendanceRepository
}

func NewService(attendanceRepo attendance.AttendanceRepository) *Service {
	return &Service{attendanceRepo: attendanceRepo}
}

// List returns a filtered, paginated page of attendance records.
func (s *Service) List(ctx context.Context, companyID string, filter attendance.Filter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	if filter.Page < 1 {
		filter.Page = defaultPage
	}
	if filter.Limit < 1 {
		filter.Limit = defaultLimit
	}
	if filter.Limit > maxLimit {
		filter.Limit = maxLimit
	}

	records, total, err := s.attendanceRepo.List(ctx, filter, companyID)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	resp := attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		Attendances: make([]attendance.AttendanceResponse, 0, len(records)),
	}
	for _, rec := range records {
		resp.Attendances = append(resp.Attendances, MapToResponse(rec))
	}
	return resp, nil
}

// MapToResponse converts an Attendance entity to its wire representation.
func MapToResponse(rec attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:          rec.ID,
		EmployeeID:  rec.EmployeeID,
		Date:        dates.Format(rec.Date),
		TotalHours:  rec.TotalHours.StringFixed(2),
		Status:      string(rec.Status),
		GeneratedBy: string(rec.GeneratedBy),
	}
	if rec.EmployeeName != nil {
		resp.EmployeeName = *rec.EmployeeName
	}
	if rec.CheckIn != nil {
		v := rec.CheckIn.Format("15:04:05")
		resp.CheckIn = &v
	}
	if rec.CheckOut != nil {
		v := rec.CheckOut.Format("15:04:05")
		resp.CheckOut = &v
	}
	return resp
}
