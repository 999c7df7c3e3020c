package timesheet

import (
	"github.com/pontolabs/ponto-backend-go/internal/domain/timesheet"
)

// ApplyStatusChange returns the record patched for its new day status.
// Switching to an absence status clears every punch field; switching to
// normal pre-fills the schedule's default times when the day has no punches
// yet.
func ApplyStatusChange(newStatus timesheet.DayStatus, rec timesheet.PunchRecord, contracted *timesheet.WorkSchedule) timesheet.PunchRecord {
	rec.DayStatus = newStatus

	if newStatus.IsAbsence() {
		rec.ClearTimes()
		return rec
	}

	if rec.HasAnyTime() {
		return rec
	}

	sched := ScheduleFor(rec.Date, contracted)
	if sched == nil {
		return rec
	}

	entry := sched.Entry
	exit := sched.ExitFor(rec.Date)
	rec.MorningEntry = entry.Ptr()
	rec.AfternoonExit = exit.Ptr()
	if sched.HasLunchBreak && sched.LunchStart != nil && sched.LunchEnd != nil {
		rec.LunchExit = sched.LunchStart.Ptr()
		rec.LunchReturn = sched.LunchEnd.Ptr()
	}
	return rec
}
