package timesheet

import (
	"context"
)

// TimesheetService defines business logic for timesheet operations
type TimesheetService interface {
	// OpenTimesheet opens an employee's period, creating one punch record per
	// calendar day. Idempotent: an already-open period is returned as is.
	OpenTimesheet(ctx context.Context, req OpenTimesheetRequest) (TimesheetResponse, error)

	// GetTimesheet retrieves a full timesheet by ID
	GetTimesheet(ctx context.Context, id string) (TimesheetResponse, error)

	// GetMyTimesheet retrieves the authenticated employee's own period
	GetMyTimesheet(ctx context.Context, month, year int) (TimesheetResponse, error)

	// ListTimesheets retrieves timesheets with filters (admin)
	ListTimesheets(ctx context.Context, filter TimesheetFilter) (ListTimesheetsResponse, error)

	// UpdateRecord runs the edit pipeline on one day: lock gate, status-change
	// patch, validation, classification, totals computation, persistence.
	UpdateRecord(ctx context.Context, req UpdateRecordRequest) (UpdateRecordResponse, error)

	// CloseTimesheet makes the period immutable
	CloseTimesheet(ctx context.Context, id string) (TimesheetResponse, error)

	// ApproveTimesheet stamps approval on a closed period
	ApproveTimesheet(ctx context.Context, id string) (TimesheetResponse, error)
}
