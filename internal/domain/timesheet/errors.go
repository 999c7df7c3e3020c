package timesheet

import "errors"

// Timesheet domain errors
var (
	ErrTimesheetNotFound = errors.New("timesheet not found")
	ErrRecordNotFound    = errors.New("punch record not found")

	// Edit gate errors
	ErrRecordLocked      = errors.New("punch record is locked for editing")
	ErrTimesheetClosed   = errors.New("timesheet period is closed")
	ErrRecordValidation  = errors.New("punch record failed validation")
	ErrNotTimesheetOwner = errors.New("timesheet belongs to another employee")

	// Lifecycle errors
	ErrTimesheetNotClosed       = errors.New("timesheet must be closed before approval")
	ErrTimesheetAlreadyClosed   = errors.New("timesheet is already closed")
	ErrTimesheetAlreadyApproved = errors.New("timesheet has already been approved")
)
