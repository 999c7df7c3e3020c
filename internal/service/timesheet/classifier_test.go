package timesheet

import (
	"testing"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/timesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyWorkday(t *testing.T) {
	friday := time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, timesheet.WorkdayNormal, ClassifyWorkday(monday, false))
	assert.Equal(t, timesheet.WorkdayNormal, ClassifyWorkday(friday, false))
	assert.Equal(t, timesheet.WorkdaySaturday, ClassifyWorkday(saturday, false))
	assert.Equal(t, timesheet.WorkdaySundayOrHoliday, ClassifyWorkday(sunday, false))

	// A holiday on any weekday classifies like a Sunday.
	assert.Equal(t, timesheet.WorkdaySundayOrHoliday, ClassifyWorkday(monday, true))
	assert.Equal(t, timesheet.WorkdaySundayOrHoliday, ClassifyWorkday(saturday, true))
}

func TestDefaultSchedule(t *testing.T) {
	friday := time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC)

	sched := DefaultSchedule(monday)
	require.NotNil(t, sched)
	assert.Equal(t, timesheet.NewTimeOfDay(7, 0), sched.Entry)
	assert.Equal(t, timesheet.NewTimeOfDay(17, 0), sched.ExitFor(monday))
	assert.Equal(t, timesheet.NewTimeOfDay(16, 0), sched.ExitFor(friday))
	assert.True(t, sched.HasLunchBreak)

	assert.Nil(t, DefaultSchedule(saturday))
	assert.Nil(t, DefaultSchedule(sunday))
}

func TestScheduleForContractedWins(t *testing.T) {
	contracted := &timesheet.WorkSchedule{
		Entry: timesheet.NewTimeOfDay(9, 0),
		Exit:  timesheet.NewTimeOfDay(18, 0),
	}

	assert.Equal(t, contracted, ScheduleFor(monday, contracted))
	assert.Equal(t, contracted, ScheduleFor(saturday, contracted))

	fallback := ScheduleFor(monday, nil)
	require.NotNil(t, fallback)
	assert.Equal(t, timesheet.NewTimeOfDay(7, 0), fallback.Entry)
}

func TestDefaultScheduleShiftMinutes(t *testing.T) {
	friday := time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC)

	// Default weekday: 07:00-17:00 minus the 12:00-13:00 lunch.
	assert.Equal(t, 540, DefaultSchedule(monday).ShiftMinutes(monday))
	// Fridays end an hour earlier.
	assert.Equal(t, 480, DefaultSchedule(friday).ShiftMinutes(friday))
}
