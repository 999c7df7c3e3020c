package timesheet

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/pontolabs/ponto-backend-go/internal/domain/timesheet"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTimesheetRepo struct {
	timesheet.TimesheetRepository
	ts timesheet.MonthlyTimesheet
}

func (s *stubTimesheetRepo) GetByID(ctx context.Context, id string) (timesheet.MonthlyTimesheet, error) {
	return s.ts, nil
}

func claimsContext(t *testing.T, claims map[string]interface{}) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(claims)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

// closedPeriodService wires the service against a single closed timesheet
// owned by emp-1, so edits fail on the closed gate once ownership clears.
func closedPeriodService() timesheet.TimesheetService {
	repo := &stubTimesheetRepo{ts: timesheet.MonthlyTimesheet{
		ID:         "ts-1",
		EmployeeID: "emp-1",
		Month:      6,
		Year:       2025,
		Closed:     true,
	}}
	return NewTimesheetService(nil, repo, nil, nil,
		NewHoursCalculator(CalculatorConfig{}),
		NewLockPolicy(24*time.Hour, time.UTC),
		decimal.Zero, time.UTC)
}

func TestUpdateRecordRejectsOtherEmployeesTimesheet(t *testing.T) {
	svc := closedPeriodService()
	req := timesheet.UpdateRecordRequest{TimesheetID: "ts-1", RecordID: "rec-1"}

	ctx := claimsContext(t, map[string]interface{}{"role": "employee", "employee_id": "emp-2"})
	_, err := svc.UpdateRecord(ctx, req)
	assert.ErrorIs(t, err, timesheet.ErrNotTimesheetOwner)

	// A token without an employee identity is rejected the same way.
	ctx = claimsContext(t, map[string]interface{}{"role": "employee"})
	_, err = svc.UpdateRecord(ctx, req)
	assert.ErrorIs(t, err, timesheet.ErrNotTimesheetOwner)
}

func TestUpdateRecordOwnerPassesOwnershipGate(t *testing.T) {
	svc := closedPeriodService()
	req := timesheet.UpdateRecordRequest{TimesheetID: "ts-1", RecordID: "rec-1"}

	// The owner clears the ownership gate and stops at the closed period.
	ctx := claimsContext(t, map[string]interface{}{"role": "employee", "employee_id": "emp-1"})
	_, err := svc.UpdateRecord(ctx, req)
	assert.ErrorIs(t, err, timesheet.ErrTimesheetClosed)
}

func TestUpdateRecordAdminEditsAnyTimesheet(t *testing.T) {
	svc := closedPeriodService()
	req := timesheet.UpdateRecordRequest{TimesheetID: "ts-1", RecordID: "rec-1"}

	ctx := claimsContext(t, map[string]interface{}{"role": "admin", "user_id": "user-1"})
	_, err := svc.UpdateRecord(ctx, req)
	assert.ErrorIs(t, err, timesheet.ErrTimesheetClosed)
}
