package timesheet

import (
	"testing"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/timesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyStatusChangeAbsenceClearsTimes(t *testing.T) {
	rec := timesheet.PunchRecord{
		Date:          monday,
		DayStatus:     timesheet.StatusNormal,
		MorningEntry:  tod(7, 0),
		LunchExit:     tod(12, 0),
		LunchReturn:   tod(13, 0),
		AfternoonExit: tod(17, 0),
	}

	got := ApplyStatusChange(timesheet.StatusVacation, rec, nil)

	assert.Equal(t, timesheet.StatusVacation, got.DayStatus)
	assert.False(t, got.HasAnyTime())
}

func TestApplyStatusChangeNormalPrefillsDefaults(t *testing.T) {
	rec := timesheet.PunchRecord{Date: monday, DayStatus: timesheet.StatusVacation}

	got := ApplyStatusChange(timesheet.StatusNormal, rec, nil)

	require.NotNil(t, got.MorningEntry)
	assert.Equal(t, "07:00", got.MorningEntry.String())
	require.NotNil(t, got.AfternoonExit)
	assert.Equal(t, "17:00", got.AfternoonExit.String())
	require.NotNil(t, got.LunchExit)
	assert.Equal(t, "12:00", got.LunchExit.String())
	require.NotNil(t, got.LunchReturn)
	assert.Equal(t, "13:00", got.LunchReturn.String())
}

func TestApplyStatusChangeNormalPrefillFridayExit(t *testing.T) {
	friday := time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC)
	rec := timesheet.PunchRecord{Date: friday, DayStatus: timesheet.StatusHoliday}

	got := ApplyStatusChange(timesheet.StatusNormal, rec, nil)

	require.NotNil(t, got.AfternoonExit)
	assert.Equal(t, "16:00", got.AfternoonExit.String())
}

func TestApplyStatusChangeNormalKeepsExistingTimes(t *testing.T) {
	rec := timesheet.PunchRecord{
		Date:         monday,
		DayStatus:    timesheet.StatusNormal,
		MorningEntry: tod(8, 30),
	}

	got := ApplyStatusChange(timesheet.StatusNormal, rec, nil)

	require.NotNil(t, got.MorningEntry)
	assert.Equal(t, "08:30", got.MorningEntry.String())
	assert.Nil(t, got.AfternoonExit)
}

func TestApplyStatusChangeNormalOnWeekendHasNoDefault(t *testing.T) {
	rec := timesheet.PunchRecord{Date: saturday, DayStatus: timesheet.StatusVacation}

	got := ApplyStatusChange(timesheet.StatusNormal, rec, nil)

	assert.Equal(t, timesheet.StatusNormal, got.DayStatus)
	assert.False(t, got.HasAnyTime())
}

func TestApplyStatusChangeUsesContractedSchedule(t *testing.T) {
	contracted := &timesheet.WorkSchedule{
		Entry: timesheet.NewTimeOfDay(9, 0),
		Exit:  timesheet.NewTimeOfDay(18, 0),
	}
	rec := timesheet.PunchRecord{Date: monday, DayStatus: timesheet.StatusVacation}

	got := ApplyStatusChange(timesheet.StatusNormal, rec, contracted)

	require.NotNil(t, got.MorningEntry)
	assert.Equal(t, "09:00", got.MorningEntry.String())
	require.NotNil(t, got.AfternoonExit)
	assert.Equal(t, "18:00", got.AfternoonExit.String())
	// No lunch break configured: lunch punches stay empty.
	assert.Nil(t, got.LunchExit)
	assert.Nil(t, got.LunchReturn)
}
