package timesheet

import (
	"testing"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/timesheet"
	"github.com/stretchr/testify/assert"
)

func TestIsLockedWithinEditWindow(t *testing.T) {
	policy := NewLockPolicy(24*time.Hour, time.UTC)
	rec := timesheet.PunchRecord{Date: monday, DayStatus: timesheet.StatusNormal}

	// Same day, still open.
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	assert.False(t, policy.IsLocked(rec, false, now))

	// Next day within the window.
	now = time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC)
	assert.False(t, policy.IsLocked(rec, false, now))

	// Exactly at the boundary: 23:59:59 of the next day.
	now = time.Date(2025, 6, 3, 23, 59, 59, 0, time.UTC)
	assert.False(t, policy.IsLocked(rec, false, now))

	// One second past the boundary.
	now = time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)
	assert.True(t, policy.IsLocked(rec, false, now))
}

func TestIsLockedOldRecord(t *testing.T) {
	policy := NewLockPolicy(24*time.Hour, time.UTC)
	rec := timesheet.PunchRecord{Date: monday}

	now := time.Date(2025, 6, 12, 9, 0, 0, 0, time.UTC)
	assert.True(t, policy.IsLocked(rec, false, now))
}

func TestIsLockedClosedTimesheet(t *testing.T) {
	policy := NewLockPolicy(24*time.Hour, time.UTC)
	rec := timesheet.PunchRecord{Date: monday}

	// Closed locks immediately, even on the record's own day.
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	assert.True(t, policy.IsLocked(rec, true, now))
}

func TestIsLockedMonotonicInTime(t *testing.T) {
	policy := NewLockPolicy(24*time.Hour, time.UTC)
	rec := timesheet.PunchRecord{Date: monday}

	locked := false
	now := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 96; i++ {
		got := policy.IsLocked(rec, false, now)
		if locked {
			assert.True(t, got, "lock must not reopen at %s", now)
		}
		locked = got
		now = now.Add(time.Hour)
	}
	assert.True(t, locked)
}

func TestNewLockPolicyDefaults(t *testing.T) {
	policy := NewLockPolicy(0, nil)
	rec := timesheet.PunchRecord{Date: monday}

	// Zero window falls back to 24 hours.
	now := time.Date(2025, 6, 20, 0, 0, 0, 0, time.Local)
	assert.True(t, policy.IsLocked(rec, false, now))
}
