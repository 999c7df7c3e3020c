package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/timesheet"
)

type TimesheetJobs struct {
	timesheetRepo timesheet.TimesheetRepository
	loc           *time.Location
}

func NewTimesheetJobs(timesheetRepo timesheet.TimesheetRepository, loc *time.Location) *TimesheetJobs {
	if loc == nil {
		loc = time.Local
	}
	return &TimesheetJobs{
		timesheetRepo: timesheetRepo,
		loc:           loc,
	}
}

func (j *TimesheetJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_close_past_timesheets", 1*time.Hour, j.AutoClosePastTimesheets)
}

// AutoClosePastTimesheets closes every open timesheet whose period ended.
// A period ends once the local calendar has moved past its month; the edit
// window on the last day is already covered because the job only looks at
// months strictly before the current one.
func (j *TimesheetJobs) AutoClosePastTimesheets(ctx context.Context) error {
	// Only run at midnight local time (00:00-00:59)
	if time.Now().In(j.loc).Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting auto-close past timesheets job")

	now := time.Now().In(j.loc)
	stale, err := j.timesheetRepo.ListOpenBefore(ctx, now.Year(), int(now.Month()))
	if err != nil {
		return fmt.Errorf("failed to list open timesheets: %w", err)
	}

	if len(stale) == 0 {
		slog.Info("Cron: No past open timesheets found")
		return nil
	}

	closedCount := 0
	for _, ts := range stale {
		if err := j.timesheetRepo.SetClosed(ctx, ts.ID); err != nil {
			slog.Error("Cron: Failed to auto-close timesheet",
				"timesheet_id", ts.ID,
				"employee_id", ts.EmployeeID,
				"period", fmt.Sprintf("%04d-%02d", ts.Year, ts.Month),
				"error", err)
			continue
		}
		closedCount++
	}

	slog.Info("Cron: Auto-closed past timesheets", "count", closedCount)
	return nil
}
