package timesheet

import (
	"testing"

	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestOpenTimesheetRequestValidate(t *testing.T) {
	req := OpenTimesheetRequest{EmployeeID: "emp-1", Month: 6, Year: 2025}
	assert.NoError(t, req.Validate())

	bad := OpenTimesheetRequest{Month: 13, Year: 1990}
	err := bad.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	fields := errs.ToMap()
	assert.Contains(t, fields, "employee_id")
	assert.Contains(t, fields, "month")
	assert.Contains(t, fields, "year")
}

func TestUpdateRecordRequestValidate(t *testing.T) {
	req := UpdateRecordRequest{
		TimesheetID:  "ts-1",
		RecordID:     "rec-1",
		DayStatus:    strPtr("vacation"),
		MorningEntry: strPtr("07:00"),
	}
	assert.NoError(t, req.Validate())

	// Empty string clears a field and is always accepted.
	req.MorningEntry = strPtr("")
	assert.NoError(t, req.Validate())
}

func TestUpdateRecordRequestValidateRejectsBadInput(t *testing.T) {
	req := UpdateRecordRequest{
		TimesheetID: "ts-1",
		RecordID:    "rec-1",
		DayStatus:   strPtr("sabbatical"),
		LunchExit:   strPtr("25:00"),
	}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	fields := errs.ToMap()
	assert.Contains(t, fields, "day_status")
	assert.Contains(t, fields, "lunch_exit")
}

func TestUpdateRecordRequestValidateRequiresIDs(t *testing.T) {
	req := UpdateRecordRequest{}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	fields := errs.ToMap()
	assert.Contains(t, fields, "timesheet_id")
	assert.Contains(t, fields, "record_id")
}

func TestTimesheetFilterValidateDefaults(t *testing.T) {
	filter := TimesheetFilter{}
	require.NoError(t, filter.Validate())

	assert.Equal(t, 1, filter.Page)
	assert.Equal(t, 20, filter.Limit)
	assert.Equal(t, "period", filter.SortBy)
	assert.Equal(t, "desc", filter.SortOrder)
}

func TestTimesheetFilterValidateRejectsBadValues(t *testing.T) {
	month := 0
	filter := TimesheetFilter{Limit: 500, Month: &month, SortBy: "salary"}

	err := filter.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	fields := errs.ToMap()
	assert.Contains(t, fields, "limit")
	assert.Contains(t, fields, "month")
	assert.Contains(t, fields, "sort_by")
}
