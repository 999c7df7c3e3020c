package timesheet

import (
	"context"
	"time"
)

// TimesheetRepository defines data access for monthly timesheets and their
// punch records.
type TimesheetRepository interface {
	// Create inserts the timesheet together with its day records.
	Create(ctx context.Context, ts MonthlyTimesheet) (MonthlyTimesheet, error)

	// GetByID retrieves a timesheet with records ordered ascending by date.
	GetByID(ctx context.Context, id string) (MonthlyTimesheet, error)

	// GetByPeriod retrieves an employee's timesheet for one month.
	// Returns nil when the period has never been opened.
	GetByPeriod(ctx context.Context, employeeID string, month, year int) (*MonthlyTimesheet, error)

	// List retrieves timesheets without records, with filters and pagination.
	List(ctx context.Context, filter TimesheetFilter) ([]MonthlyTimesheet, int64, error)

	// GetRecordByID retrieves a single punch record.
	GetRecordByID(ctx context.Context, recordID string) (PunchRecord, error)

	// UpdateRecord persists an edited punch record.
	UpdateRecord(ctx context.Context, record PunchRecord) error

	// UpdateTotals persists the recomputed monthly totals.
	UpdateTotals(ctx context.Context, ts MonthlyTimesheet) error

	// SetClosed marks the period immutable.
	SetClosed(ctx context.Context, id string) error

	// SetApproved stamps the approval on a closed period.
	SetApproved(ctx context.Context, id string, approvedBy string, approvedAt time.Time) error

	// ListOpenBefore returns open timesheets for periods strictly before the
	// given month. Used by the auto-close job.
	ListOpenBefore(ctx context.Context, year, month int) ([]MonthlyTimesheet, error)
}
