package timesheet

import (
	"testing"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/timesheet"
	"github.com/stretchr/testify/assert"
)

func tod(hour, minute int) *timesheet.TimeOfDay {
	return timesheet.NewTimeOfDay(hour, minute).Ptr()
}

// 2025-06-02 is a Monday, 2025-06-07 a Saturday, 2025-06-08 a Sunday.
var (
	monday   = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)
	sunday   = time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)
)

// eightHourSchedule is a 480-minute contract: 08:00-17:00 with a one-hour
// lunch, scheduled exit at 17:00.
func eightHourSchedule() *timesheet.WorkSchedule {
	return &timesheet.WorkSchedule{
		Entry:         timesheet.NewTimeOfDay(8, 0),
		Exit:          timesheet.NewTimeOfDay(17, 0),
		LunchStart:    timesheet.NewTimeOfDay(12, 0).Ptr(),
		LunchEnd:      timesheet.NewTimeOfDay(13, 0).Ptr(),
		HasLunchBreak: true,
	}
}

func TestComputeDailyTotalsFullNormalDay(t *testing.T) {
	calc := NewHoursCalculator(CalculatorConfig{})
	rec := timesheet.PunchRecord{
		Date:          monday,
		DayStatus:     timesheet.StatusNormal,
		MorningEntry:  tod(7, 0),
		LunchExit:     tod(12, 0),
		LunchReturn:   tod(13, 0),
		AfternoonExit: tod(17, 0),
	}

	totals := calc.ComputeDailyTotals(rec, timesheet.WorkdayNormal, DefaultSchedule(monday))

	assert.Equal(t, 540, totals.NormalMinutes)
	assert.Equal(t, 0, totals.OvertimeMinutes)
	assert.Equal(t, timesheet.BucketNone, totals.OvertimeBucket)
	assert.Equal(t, 0, totals.NightMinutes)
	assert.Equal(t, 1, totals.MealAllowances)
}

func TestComputeDailyTotalsShiftCapWithoutLateExit(t *testing.T) {
	calc := NewHoursCalculator(CalculatorConfig{})
	// Early 07:00 entry against an 08:00-17:00 contract: 540 worked minutes,
	// but checkout is exactly at the scheduled exit. The hour beyond the
	// 480-minute shift earns neither normal credit nor overtime.
	rec := timesheet.PunchRecord{
		Date:          monday,
		DayStatus:     timesheet.StatusNormal,
		MorningEntry:  tod(7, 0),
		LunchExit:     tod(12, 0),
		LunchReturn:   tod(13, 0),
		AfternoonExit: tod(17, 0),
	}

	totals := calc.ComputeDailyTotals(rec, timesheet.WorkdayNormal, eightHourSchedule())

	assert.Equal(t, 480, totals.NormalMinutes)
	assert.Equal(t, 0, totals.OvertimeMinutes)
	assert.Equal(t, timesheet.BucketNone, totals.OvertimeBucket)
}

func TestComputeDailyTotalsLateExitOvertime(t *testing.T) {
	calc := NewHoursCalculator(CalculatorConfig{})
	// Same contract, checkout at 18:30: the 90 minutes past the scheduled
	// 17:00 exit are 50% overtime.
	rec := timesheet.PunchRecord{
		Date:          monday,
		DayStatus:     timesheet.StatusNormal,
		MorningEntry:  tod(7, 0),
		LunchExit:     tod(12, 0),
		LunchReturn:   tod(13, 0),
		AfternoonExit: tod(18, 30),
	}

	totals := calc.ComputeDailyTotals(rec, timesheet.WorkdayNormal, eightHourSchedule())

	assert.Equal(t, 480, totals.NormalMinutes)
	assert.Equal(t, 90, totals.OvertimeMinutes)
	assert.Equal(t, timesheet.Bucket50, totals.OvertimeBucket)
}

func TestComputeDailyTotalsExtraBlockOvertime(t *testing.T) {
	calc := NewHoursCalculator(CalculatorConfig{})
	rec := timesheet.PunchRecord{
		Date:          monday,
		DayStatus:     timesheet.StatusNormal,
		MorningEntry:  tod(7, 0),
		LunchExit:     tod(12, 0),
		LunchReturn:   tod(13, 0),
		AfternoonExit: tod(17, 0),
		ExtraEntry:    tod(18, 0),
		ExtraExit:     tod(20, 0),
	}

	totals := calc.ComputeDailyTotals(rec, timesheet.WorkdayNormal, DefaultSchedule(monday))

	assert.Equal(t, 540, totals.NormalMinutes)
	assert.Equal(t, 120, totals.OvertimeMinutes)
	assert.Equal(t, timesheet.Bucket50, totals.OvertimeBucket)
}

func TestComputeDailyTotalsSaturdayAllOvertime(t *testing.T) {
	calc := NewHoursCalculator(CalculatorConfig{})
	rec := timesheet.PunchRecord{
		Date:          saturday,
		DayStatus:     timesheet.StatusNormal,
		MorningEntry:  tod(7, 0),
		AfternoonExit: tod(12, 0),
	}

	totals := calc.ComputeDailyTotals(rec, timesheet.WorkdaySaturday, nil)

	assert.Equal(t, 0, totals.NormalMinutes)
	assert.Equal(t, 300, totals.OvertimeMinutes)
	assert.Equal(t, timesheet.Bucket80, totals.OvertimeBucket)
	assert.Equal(t, 0, totals.MealAllowances)
}

func TestComputeDailyTotalsSundayOrHoliday(t *testing.T) {
	calc := NewHoursCalculator(CalculatorConfig{})
	rec := timesheet.PunchRecord{
		Date:          sunday,
		DayStatus:     timesheet.StatusNormal,
		MorningEntry:  tod(8, 0),
		AfternoonExit: tod(12, 0),
	}

	totals := calc.ComputeDailyTotals(rec, timesheet.WorkdaySundayOrHoliday, nil)

	assert.Equal(t, 0, totals.NormalMinutes)
	assert.Equal(t, 240, totals.OvertimeMinutes)
	assert.Equal(t, timesheet.Bucket110, totals.OvertimeBucket)
}

func TestComputeDailyTotalsAbsenceContributesNothing(t *testing.T) {
	calc := NewHoursCalculator(CalculatorConfig{})
	for _, status := range []timesheet.DayStatus{
		timesheet.StatusVacation,
		timesheet.StatusUnjustifiedAbsence,
		timesheet.StatusMedicalCertificate,
		timesheet.StatusHoliday,
		timesheet.StatusDismissed,
		timesheet.StatusOnCallStandby,
	} {
		rec := timesheet.PunchRecord{Date: monday, DayStatus: status}
		totals := calc.ComputeDailyTotals(rec, timesheet.WorkdayNormal, DefaultSchedule(monday))
		assert.Equal(t, timesheet.DailyTotals{}, totals, "status %s", status)
	}
}

func TestComputeDailyTotalsNightShiftCrossingMidnight(t *testing.T) {
	calc := NewHoursCalculator(CalculatorConfig{})
	// Extra block 21:00 to 02:00 of the next day, no regular punches.
	rec := timesheet.PunchRecord{
		Date:       monday,
		DayStatus:  timesheet.StatusNormal,
		ExtraEntry: tod(21, 0),
		ExtraExit:  tod(2, 0),
	}

	totals := calc.ComputeDailyTotals(rec, timesheet.WorkdayNormal, DefaultSchedule(monday))

	// The whole extra span is overtime; 22:00-02:00 of it is night work.
	assert.Equal(t, 0, totals.NormalMinutes)
	assert.Equal(t, 300, totals.OvertimeMinutes)
	assert.Equal(t, timesheet.Bucket50, totals.OvertimeBucket)
	assert.Equal(t, 240, totals.NightMinutes)
}

func TestComputeDailyTotalsNightWindowPartialOverlap(t *testing.T) {
	calc := NewHoursCalculator(CalculatorConfig{})
	rec := timesheet.PunchRecord{
		Date:          monday,
		DayStatus:     timesheet.StatusNormal,
		MorningEntry:  tod(18, 0),
		AfternoonExit: tod(23, 0),
	}

	totals := calc.ComputeDailyTotals(rec, timesheet.WorkdayNormal, DefaultSchedule(monday))

	// Only 300 minutes worked: the late checkout alone does not mint
	// overtime beyond what was actually worked past the shift.
	assert.Equal(t, 300, totals.NormalMinutes)
	assert.Equal(t, 0, totals.OvertimeMinutes)
	assert.Equal(t, 60, totals.NightMinutes)
}

func TestComputeDailyTotalsNightWindowEndingAtMidnight(t *testing.T) {
	calc := NewHoursCalculator(CalculatorConfig{
		NightEnd: timesheet.NewTimeOfDay(0, 0).Ptr(),
	})
	rec := timesheet.PunchRecord{
		Date:       monday,
		DayStatus:  timesheet.StatusNormal,
		ExtraEntry: tod(21, 0),
		ExtraExit:  tod(2, 0),
	}

	totals := calc.ComputeDailyTotals(rec, timesheet.WorkdayNormal, DefaultSchedule(monday))

	// Window 22:00-00:00: the two hours past midnight no longer count.
	assert.Equal(t, 120, totals.NightMinutes)
}

func TestComputeDailyTotalsNoScheduleUncapped(t *testing.T) {
	calc := NewHoursCalculator(CalculatorConfig{})
	rec := timesheet.PunchRecord{
		Date:          monday,
		DayStatus:     timesheet.StatusNormal,
		MorningEntry:  tod(7, 0),
		AfternoonExit: tod(19, 0),
	}

	// No contract for the day: everything is normal time, only explicit
	// extra punches could earn overtime.
	totals := calc.ComputeDailyTotals(rec, timesheet.WorkdayNormal, nil)

	assert.Equal(t, 720, totals.NormalMinutes)
	assert.Equal(t, 0, totals.OvertimeMinutes)
}

func TestComputeDailyTotalsMealRequiresBothLunchPunches(t *testing.T) {
	calc := NewHoursCalculator(CalculatorConfig{})
	rec := timesheet.PunchRecord{
		Date:          monday,
		DayStatus:     timesheet.StatusNormal,
		MorningEntry:  tod(7, 0),
		AfternoonExit: tod(17, 0),
	}

	totals := calc.ComputeDailyTotals(rec, timesheet.WorkdayNormal, DefaultSchedule(monday))

	assert.Equal(t, 0, totals.MealAllowances)
}

func TestComputeDailyTotalsMealMinimumWorkedThreshold(t *testing.T) {
	calc := NewHoursCalculator(CalculatorConfig{MealMinWorkedMinutes: 360})
	rec := timesheet.PunchRecord{
		Date:          monday,
		DayStatus:     timesheet.StatusNormal,
		MorningEntry:  tod(7, 0),
		LunchExit:     tod(10, 0),
		LunchReturn:   tod(10, 30),
		AfternoonExit: tod(13, 0),
	}

	// 330 worked minutes, below the 360 threshold.
	totals := calc.ComputeDailyTotals(rec, timesheet.WorkdayNormal, DefaultSchedule(monday))
	assert.Equal(t, 0, totals.MealAllowances)

	rec.AfternoonExit = tod(14, 0)
	totals = calc.ComputeDailyTotals(rec, timesheet.WorkdayNormal, DefaultSchedule(monday))
	assert.Equal(t, 1, totals.MealAllowances)
}

func TestComputeDailyTotalsMissingLunchFallsBackToSingleBlock(t *testing.T) {
	calc := NewHoursCalculator(CalculatorConfig{})
	sched := &timesheet.WorkSchedule{
		Entry: timesheet.NewTimeOfDay(7, 0),
		Exit:  timesheet.NewTimeOfDay(17, 0),
	}
	rec := timesheet.PunchRecord{
		Date:          monday,
		DayStatus:     timesheet.StatusNormal,
		MorningEntry:  tod(7, 0),
		LunchExit:     tod(12, 0),
		AfternoonExit: tod(17, 0),
	}

	// Lunch return missing: the day counts entry to exit without a break.
	totals := calc.ComputeDailyTotals(rec, timesheet.WorkdayNormal, sched)
	assert.Equal(t, 600, totals.NormalMinutes)
}

func TestComputeDailyTotalsNoPunches(t *testing.T) {
	calc := NewHoursCalculator(CalculatorConfig{})
	rec := timesheet.PunchRecord{Date: monday, DayStatus: timesheet.StatusNormal}

	totals := calc.ComputeDailyTotals(rec, timesheet.WorkdayNormal, DefaultSchedule(monday))
	assert.Equal(t, timesheet.DailyTotals{}, totals)
}
