package timesheet

import (
	"testing"

	"github.com/pontolabs/ponto-backend-go/internal/domain/timesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func errorCodes(errs []timesheet.FieldError) []string {
	var codes []string
	for _, e := range errs {
		codes = append(codes, e.Code)
	}
	return codes
}

func TestValidateRecordFullNormalDay(t *testing.T) {
	rec := timesheet.PunchRecord{
		Date:          monday,
		DayStatus:     timesheet.StatusNormal,
		MorningEntry:  tod(7, 0),
		LunchExit:     tod(12, 0),
		LunchReturn:   tod(13, 0),
		AfternoonExit: tod(17, 0),
	}

	result := ValidateRecord(rec)

	assert.True(t, result.OK())
	assert.Empty(t, result.Warnings)
}

func TestValidateRecordAbsenceRejectsPunches(t *testing.T) {
	rec := timesheet.PunchRecord{
		Date:         monday,
		DayStatus:    timesheet.StatusVacation,
		MorningEntry: tod(7, 0),
	}

	result := ValidateRecord(rec)

	require.False(t, result.OK())
	require.Len(t, result.Errors, 1)
	assert.Equal(t, timesheet.CodeTimeFieldsMustBeEmpty, result.Errors[0].Code)
	assert.Equal(t, "morning_entry", result.Errors[0].Field)
}

func TestValidateRecordAbsenceWithoutPunchesIsValid(t *testing.T) {
	rec := timesheet.PunchRecord{Date: monday, DayStatus: timesheet.StatusVacation}

	result := ValidateRecord(rec)

	assert.True(t, result.OK())
	assert.Empty(t, result.Warnings)
}

func TestValidateRecordMissingJustificationIsWarning(t *testing.T) {
	for _, status := range []timesheet.DayStatus{
		timesheet.StatusUnjustifiedAbsence,
		timesheet.StatusMedicalCertificate,
	} {
		rec := timesheet.PunchRecord{Date: monday, DayStatus: status}

		result := ValidateRecord(rec)

		assert.True(t, result.OK(), "status %s", status)
		require.Len(t, result.Warnings, 1, "status %s", status)
		assert.Equal(t, timesheet.CodeMissingJustification, result.Warnings[0].Code)
	}

	justification := "medical appointment"
	rec := timesheet.PunchRecord{
		Date:          monday,
		DayStatus:     timesheet.StatusMedicalCertificate,
		Justification: &justification,
	}
	assert.Empty(t, ValidateRecord(rec).Warnings)
}

func TestValidateRecordMissingRequiredTimes(t *testing.T) {
	rec := timesheet.PunchRecord{Date: monday, DayStatus: timesheet.StatusNormal}

	result := ValidateRecord(rec)

	require.False(t, result.OK())
	assert.ElementsMatch(t,
		[]string{timesheet.CodeMissingRequiredTime, timesheet.CodeMissingRequiredTime},
		errorCodes(result.Errors))
}

func TestValidateRecordTimeOrderViolation(t *testing.T) {
	rec := timesheet.PunchRecord{
		Date:          monday,
		DayStatus:     timesheet.StatusNormal,
		MorningEntry:  tod(12, 0),
		LunchExit:     tod(11, 0),
		LunchReturn:   tod(13, 0),
		AfternoonExit: tod(17, 0),
	}

	result := ValidateRecord(rec)

	require.False(t, result.OK())
	require.Len(t, result.Errors, 1)
	assert.Equal(t, timesheet.CodeTimeOrderViolation, result.Errors[0].Code)
	assert.Equal(t, "lunch_exit", result.Errors[0].Field)
}

func TestValidateRecordEqualTimesViolateOrdering(t *testing.T) {
	rec := timesheet.PunchRecord{
		Date:          monday,
		DayStatus:     timesheet.StatusNormal,
		MorningEntry:  tod(7, 0),
		LunchExit:     tod(12, 0),
		LunchReturn:   tod(12, 0),
		AfternoonExit: tod(17, 0),
	}

	result := ValidateRecord(rec)

	require.False(t, result.OK())
	assert.Equal(t, "lunch_return", result.Errors[0].Field)
}

func TestValidateRecordOrderingSkipsMissingPunches(t *testing.T) {
	// Lunch punches absent: ordering compares entry directly to exit.
	rec := timesheet.PunchRecord{
		Date:          monday,
		DayStatus:     timesheet.StatusNormal,
		MorningEntry:  tod(7, 0),
		AfternoonExit: tod(17, 0),
	}
	assert.True(t, ValidateRecord(rec).OK())

	rec.AfternoonExit = tod(6, 0)
	result := ValidateRecord(rec)
	require.False(t, result.OK())
	assert.Equal(t, "afternoon_exit", result.Errors[0].Field)
}

func TestValidateRecordExtraExitMustFollowAfternoonExit(t *testing.T) {
	// Extra block 14:00-16:00 sits inside the regular afternoon: the exit
	// comes before the regular exit without implying a midnight crossing.
	rec := timesheet.PunchRecord{
		Date:          monday,
		DayStatus:     timesheet.StatusNormal,
		MorningEntry:  tod(7, 0),
		LunchExit:     tod(12, 0),
		LunchReturn:   tod(13, 0),
		AfternoonExit: tod(17, 0),
		ExtraEntry:    tod(14, 0),
		ExtraExit:     tod(16, 0),
	}

	result := ValidateRecord(rec)

	require.False(t, result.OK())
	assert.Equal(t, "extra_exit", result.Errors[0].Field)

	rec.ExtraEntry = tod(18, 0)
	rec.ExtraExit = tod(20, 0)
	assert.True(t, ValidateRecord(rec).OK())
}

func TestValidateRecordExtraBlockMayCrossMidnight(t *testing.T) {
	// An extra exit at or before the extra entry is checkout after midnight
	// and is accepted even though it precedes the afternoon exit.
	rec := timesheet.PunchRecord{
		Date:          monday,
		DayStatus:     timesheet.StatusNormal,
		MorningEntry:  tod(7, 0),
		LunchExit:     tod(12, 0),
		LunchReturn:   tod(13, 0),
		AfternoonExit: tod(17, 0),
		ExtraEntry:    tod(21, 0),
		ExtraExit:     tod(2, 0),
	}

	assert.True(t, ValidateRecord(rec).OK())
}
