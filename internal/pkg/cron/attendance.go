package cron

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/staffhub/portal-backend-go/internal/domain/employee"
	"github.com/staffhub/portal-backend-go/internal/domain/period"
	"github.com/staffhub/portal-backend-go/internal/pkg/database"
	"github.com/staffhub/portal-backend-go/internal/pkg/dates"
	"github.com/staffhub/portal-backend-go/internal/service/generator"
)

// AttendanceJobs backfills yesterday's attendance for automatic-mode
// employees and keeps future-dated rows out of the table.
type AttendanceJobs struct {
	generatorService *generator.Service
	employeeRepo     employee.EmployeeRepository
	db               *database.DB
}

func NewAttendanceJobs(
	generatorService *generator.Service,
	employeeRepo employee.EmployeeRepository,
	db *database.DB,
) *AttendanceJobs {
	return &AttendanceJobs{
		generatorService: generatorService,
		employeeRepo:     employeeRepo,
		db:               db,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("generate_yesterday_attendance", 1*time.Hour, j.GenerateYesterdayAttendance)
	scheduler.AddJob("cleanup_future_attendance", 1*time.Hour, j.CleanupFutureAttendance)
}

// GenerateYesterdayAttendance backfills yesterday for every automatic-mode
// employee. A locked accounting period skips the company; an admin can rerun
// the batch by hand after unlocking.
func (j *AttendanceJobs) GenerateYesterdayAttendance(ctx context.Context) error {
	// Only run at midnight (00:00-00:59)
	if time.Now().Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting yesterday attendance generation job")

	companyIDs, err := j.companyIDs(ctx)
	if err != nil {
		return err
	}

	yesterday := dates.Yesterday()
	totalGenerated := 0

	for _, companyID := range companyIDs {
		employees, err := j.employeeRepo.ListWithAutomaticAttendance(ctx, companyID)
		if err != nil {
			slog.Error("Cron: Failed to list automatic-attendance employees",
				"company_id", companyID, "error", err)
			continue
		}
		if len(employees) == 0 {
			continue
		}

		results, err := j.generatorService.Generate(ctx, companyID, employees, yesterday, yesterday)
		if err != nil {
			var lockedErr *period.LockedError
			if errors.As(err, &lockedErr) {
				slog.Warn("Cron: Skipping company with locked accounting period",
					"company_id", companyID, "message", lockedErr.Message)
				continue
			}
			slog.Error("Cron: Attendance generation failed",
				"company_id", companyID, "error", err)
			continue
		}

		for _, r := range results {
			if r.Success && !r.Skipped {
				totalGenerated++
			}
		}
	}

	slog.Info("Cron: Generated yesterday attendance", "count", totalGenerated)
	return nil
}

// CleanupFutureAttendance removes attendance rows dated today or later for
// every company. Idempotent; repeated runs delete nothing further.
func (j *AttendanceJobs) CleanupFutureAttendance(ctx context.Context) error {
	// Only run at midnight (00:00-00:59)
	if time.Now().Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting future attendance cleanup job")

	companyIDs, err := j.companyIDs(ctx)
	if err != nil {
		return err
	}

	var totalDeleted int64
	for _, companyID := range companyIDs {
		resp, err := j.generatorService.CleanupFutureAttendance(ctx, companyID)
		if err != nil {
			slog.Error("Cron: Failed to clean up future attendance",
				"company_id", companyID, "error", err)
			continue
		}
		totalDeleted += resp.DeletedCount
	}

	slog.Info("Cron: Cleaned up future attendance", "deleted", totalDeleted)
	return nil
}

// companyIDs returns every company with at least one non-deleted employee.
func (j *AttendanceJobs) companyIDs(ctx context.Context) ([]string, error) {
	rows, err := j.db.Pool.Query(ctx, `
		SELECT DISTINCT company_id FROM employees
		WHERE deleted_at IS NULL
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get companies: %w", err)
	}
	defer rows.Close()

	var companyIDs []string
	for rows.Next() {
		var companyID string
		if err := rows.Scan(&companyID); err != nil {
			continue
		}
		companyIDs = append(companyIDs, companyID)
	}
	return companyIDs, nil
}
