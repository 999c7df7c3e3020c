package timesheet

import (
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/timesheet"
)

// LockPolicy answers whether a day's registry may still be edited. It never
// enforces anything itself; callers must reject edits when it returns true.
type LockPolicy struct {
	editWindow time.Duration
	loc        *time.Location
}

// NewLockPolicy builds a policy with the given edit window past end of day.
// A zero window falls back to 24 hours, a nil location to the local zone.
func NewLockPolicy(editWindow time.Duration, loc *time.Location) *LockPolicy {
	if editWindow == 0 {
		editWindow = 24 * time.Hour
	}
	if loc == nil {
		loc = time.Local
	}
	return &LockPolicy{editWindow: editWindow, loc: loc}
}

// IsLocked reports whether the record is immutable at the given instant:
// unconditionally once the parent period is closed, otherwise once the edit
// window past 23:59:59 of the record's date has elapsed. Monotonic in now.
func (p *LockPolicy) IsLocked(rec timesheet.PunchRecord, timesheetClosed bool, now time.Time) bool {
	if timesheetClosed {
		return true
	}
	endOfDay := time.Date(rec.Date.Year(), rec.Date.Month(), rec.Date.Day(), 23, 59, 59, 0, p.loc)
	return now.Sub(endOfDay) > p.editWindow
}
