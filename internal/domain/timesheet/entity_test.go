package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	got, err := ParseTimeOfDay("07:30")
	require.NoError(t, err)
	assert.Equal(t, 450, got.Minutes())
	assert.Equal(t, 7, got.Hour())
	assert.Equal(t, 30, got.Minute())
	assert.Equal(t, "07:30", got.String())

	for _, bad := range []string{"24:00", "7h30", "07:00:00", ""} {
		_, err := ParseTimeOfDay(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestDayStatusIsAbsence(t *testing.T) {
	assert.False(t, StatusNormal.IsAbsence())
	for _, status := range []DayStatus{
		StatusUnjustifiedAbsence, StatusMedicalCertificate, StatusVacation,
		StatusDismissed, StatusHoliday, StatusOnCallStandby,
	} {
		assert.True(t, status.IsAbsence(), "status %s", status)
	}
}

func TestDayStatusRequiresJustification(t *testing.T) {
	assert.True(t, StatusUnjustifiedAbsence.RequiresJustification())
	assert.True(t, StatusMedicalCertificate.RequiresJustification())
	assert.False(t, StatusVacation.RequiresJustification())
	assert.False(t, StatusNormal.RequiresJustification())
}

func TestAddDailyTotalsBucketRouting(t *testing.T) {
	var ts MonthlyTimesheet
	ts.AddDailyTotals(DailyTotals{NormalMinutes: 480, OvertimeMinutes: 60, OvertimeBucket: Bucket50})
	ts.AddDailyTotals(DailyTotals{OvertimeMinutes: 300, OvertimeBucket: Bucket80})
	ts.AddDailyTotals(DailyTotals{OvertimeMinutes: 240, OvertimeBucket: Bucket110, NightMinutes: 120, MealAllowances: 1})

	assert.Equal(t, 480, ts.TotalNormalMinutes)
	assert.Equal(t, 60, ts.TotalOvertime50Minutes)
	assert.Equal(t, 300, ts.TotalOvertime80Minutes)
	assert.Equal(t, 240, ts.TotalOvertime110Minutes)
	assert.Equal(t, 120, ts.TotalNightMinutes)
	assert.Equal(t, 1, ts.TotalMealAllowances)
}

func TestAddDailyTotalsOrderIndependent(t *testing.T) {
	days := []DailyTotals{
		{NormalMinutes: 480, OvertimeMinutes: 30, OvertimeBucket: Bucket50},
		{OvertimeMinutes: 300, OvertimeBucket: Bucket80, NightMinutes: 60},
		{NormalMinutes: 540, MealAllowances: 1},
		{OvertimeMinutes: 120, OvertimeBucket: Bucket110},
	}

	var forward, backward MonthlyTimesheet
	for _, d := range days {
		forward.AddDailyTotals(d)
	}
	for i := len(days) - 1; i >= 0; i-- {
		backward.AddDailyTotals(days[i])
	}

	assert.Equal(t, forward.TotalNormalMinutes, backward.TotalNormalMinutes)
	assert.Equal(t, forward.TotalOvertime50Minutes, backward.TotalOvertime50Minutes)
	assert.Equal(t, forward.TotalOvertime80Minutes, backward.TotalOvertime80Minutes)
	assert.Equal(t, forward.TotalOvertime110Minutes, backward.TotalOvertime110Minutes)
	assert.Equal(t, forward.TotalNightMinutes, backward.TotalNightMinutes)
	assert.Equal(t, forward.TotalMealAllowances, backward.TotalMealAllowances)
}

func TestResetTotals(t *testing.T) {
	ts := MonthlyTimesheet{
		TotalNormalMinutes:      100,
		TotalOvertime50Minutes:  100,
		TotalOvertime80Minutes:  100,
		TotalOvertime110Minutes: 100,
		TotalNightMinutes:       100,
		TotalMealAllowances:     2,
	}
	ts.ResetTotals()

	assert.Zero(t, ts.TotalNormalMinutes)
	assert.Zero(t, ts.TotalOvertime50Minutes)
	assert.Zero(t, ts.TotalOvertime80Minutes)
	assert.Zero(t, ts.TotalOvertime110Minutes)
	assert.Zero(t, ts.TotalNightMinutes)
	assert.Zero(t, ts.TotalMealAllowances)
}

func TestWorkScheduleShiftMinutes(t *testing.T) {
	// 2025-06-02 is a Monday, 2025-06-06 a Friday.
	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	friday := time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC)

	sched := WorkSchedule{
		Entry:         NewTimeOfDay(7, 0),
		Exit:          NewTimeOfDay(17, 0),
		FridayExit:    NewTimeOfDay(16, 0).Ptr(),
		LunchStart:    NewTimeOfDay(12, 0).Ptr(),
		LunchEnd:      NewTimeOfDay(13, 0).Ptr(),
		HasLunchBreak: true,
	}

	assert.Equal(t, 540, sched.ShiftMinutes(monday))
	assert.Equal(t, 480, sched.ShiftMinutes(friday))

	noLunch := WorkSchedule{
		Entry: NewTimeOfDay(8, 0),
		Exit:  NewTimeOfDay(14, 0),
	}
	assert.Equal(t, 360, noLunch.ShiftMinutes(monday))

	// Inverted schedule clamps to zero instead of going negative.
	inverted := WorkSchedule{
		Entry: NewTimeOfDay(17, 0),
		Exit:  NewTimeOfDay(7, 0),
	}
	assert.Equal(t, 0, inverted.ShiftMinutes(monday))
}

func TestPunchRecordClearTimes(t *testing.T) {
	rec := PunchRecord{
		MorningEntry:  NewTimeOfDay(7, 0).Ptr(),
		LunchExit:     NewTimeOfDay(12, 0).Ptr(),
		LunchReturn:   NewTimeOfDay(13, 0).Ptr(),
		AfternoonExit: NewTimeOfDay(17, 0).Ptr(),
		ExtraEntry:    NewTimeOfDay(18, 0).Ptr(),
		ExtraExit:     NewTimeOfDay(20, 0).Ptr(),
	}
	require.True(t, rec.HasAnyTime())

	rec.ClearTimes()
	assert.False(t, rec.HasAnyTime())
}
