package timesheet

import (
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/timesheet"
)

// ClassifyWorkday determines the day type that selects the overtime bucket.
// Holiday determination is the calendar collaborator's job; the flag arrives
// resolved.
func ClassifyWorkday(date time.Time, isHoliday bool) timesheet.WorkdayType {
	if isHoliday || date.Weekday() == time.Sunday {
		return timesheet.WorkdaySundayOrHoliday
	}
	if date.Weekday() == time.Saturday {
		return timesheet.WorkdaySaturday
	}
	return timesheet.WorkdayNormal
}

// DefaultSchedule returns the weekday fallback schedule applied when an
// employee has no contracted schedule: 07:00-17:00 with a 12:00-13:00 lunch
// break, Fridays ending at 16:00. Saturdays and Sundays have no default.
func DefaultSchedule(date time.Time) *timesheet.WorkSchedule {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return nil
	}
	return &timesheet.WorkSchedule{
		Entry:         timesheet.NewTimeOfDay(7, 0),
		Exit:          timesheet.NewTimeOfDay(17, 0),
		FridayExit:    timesheet.NewTimeOfDay(16, 0).Ptr(),
		LunchStart:    timesheet.NewTimeOfDay(12, 0).Ptr(),
		LunchEnd:      timesheet.NewTimeOfDay(13, 0).Ptr(),
		HasLunchBreak: true,
	}
}

// ScheduleFor resolves the effective schedule for a date: the employee's
// contracted schedule wins, the weekday default is only a fallback.
func ScheduleFor(date time.Time, contracted *timesheet.WorkSchedule) *timesheet.WorkSchedule {
	if contracted != nil {
		return contracted
	}
	return DefaultSchedule(date)
}
