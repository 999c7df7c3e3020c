package timesheet

import (
	"fmt"
	"time"
)

// TimeOfDay is a punch time expressed in minutes since midnight.
// Punch records are date-only plus times of day; absolute timestamps are
// never stored.
type TimeOfDay int

const MinutesPerDay = 24 * 60

func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// ParseTimeOfDay parses "HH:MM" (seconds are not accepted on the wire).
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return NewTimeOfDay(t.Hour(), t.Minute()), nil
}

func (t TimeOfDay) Hour() int    { return int(t) / 60 }
func (t TimeOfDay) Minute() int  { return int(t) % 60 }
func (t TimeOfDay) Minutes() int { return int(t) }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func (t TimeOfDay) Ptr() *TimeOfDay { return &t }

type DayStatus string

const (
	StatusNormal             DayStatus = "normal"
	StatusUnjustifiedAbsence DayStatus = "unjustified_absence"
	StatusMedicalCertificate DayStatus = "medical_certificate"
	StatusVacation           DayStatus = "vacation"
	StatusDismissed          DayStatus = "dismissed_by_employer"
	StatusHoliday            DayStatus = "holiday"
	StatusOnCallStandby      DayStatus = "on_call_standby"
)

var DayStatusValues = []string{
	string(StatusNormal),
	string(StatusUnjustifiedAbsence),
	string(StatusMedicalCertificate),
	string(StatusVacation),
	string(StatusDismissed),
	string(StatusHoliday),
	string(StatusOnCallStandby),
}

// IsAbsence reports whether the status represents a non-working day.
// Every status other than normal clears the punch fields.
func (s DayStatus) IsAbsence() bool {
	return s != StatusNormal
}

// RequiresJustification reports whether the status expects free-text
// justification. Missing justification is surfaced as a warning, not an
// error.
func (s DayStatus) RequiresJustification() bool {
	return s == StatusUnjustifiedAbsence || s == StatusMedicalCertificate
}

// WorkdayType classifies a calendar day and selects the overtime bucket.
// It is derived from the date plus the holiday calendar, never stored.
type WorkdayType string

const (
	WorkdayNormal          WorkdayType = "normal"
	WorkdaySaturday        WorkdayType = "saturday"
	WorkdaySundayOrHoliday WorkdayType = "sunday_or_holiday"
)

type OvertimeBucket string

const (
	BucketNone OvertimeBucket = ""
	Bucket50   OvertimeBucket = "50"
	Bucket80   OvertimeBucket = "80"
	Bucket110  OvertimeBucket = "110"
)

// PunchRecord is one calendar day of one employee's timesheet. Time fields
// are nil on absence days.
type PunchRecord struct {
	ID            string
	TimesheetID   string
	Date          time.Time // date-only, midnight UTC
	MorningEntry  *TimeOfDay
	LunchExit     *TimeOfDay
	LunchReturn   *TimeOfDay
	AfternoonExit *TimeOfDay
	ExtraEntry    *TimeOfDay
	ExtraExit     *TimeOfDay
	DayStatus     DayStatus
	Notes         *string
	Justification *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HasAnyTime reports whether any punch field is set.
func (r *PunchRecord) HasAnyTime() bool {
	return r.MorningEntry != nil || r.LunchExit != nil || r.LunchReturn != nil ||
		r.AfternoonExit != nil || r.ExtraEntry != nil || r.ExtraExit != nil
}

// ClearTimes removes every punch field. Used when the day switches to an
// absence status.
func (r *PunchRecord) ClearTimes() {
	r.MorningEntry = nil
	r.LunchExit = nil
	r.LunchReturn = nil
	r.AfternoonExit = nil
	r.ExtraEntry = nil
	r.ExtraExit = nil
}

// MonthlyTimesheet is the aggregate root: one employee, one month, one
// PunchRecord per calendar day sorted ascending by date. Totals are derived
// from the records and recomputed on every write.
type MonthlyTimesheet struct {
	ID         string
	EmployeeID string
	Month      int
	Year       int
	Closed     bool
	Approved   bool
	ApprovedBy *string
	ApprovedAt *time.Time

	TotalNormalMinutes      int
	TotalOvertime50Minutes  int
	TotalOvertime80Minutes  int
	TotalOvertime110Minutes int
	TotalNightMinutes       int
	TotalMealAllowances     int

	CreatedAt time.Time
	UpdatedAt time.Time

	Records []PunchRecord

	// DTO
	EmployeeName *string
}

// DailyTotals is the calculator output for a single record. Exactly one
// overtime bucket receives the day's overtime minutes.
type DailyTotals struct {
	NormalMinutes   int
	OvertimeMinutes int
	OvertimeBucket  OvertimeBucket
	NightMinutes    int
	MealAllowances  int
}

// ResetTotals zeroes the derived monthly totals before re-aggregation.
func (t *MonthlyTimesheet) ResetTotals() {
	t.TotalNormalMinutes = 0
	t.TotalOvertime50Minutes = 0
	t.TotalOvertime80Minutes = 0
	t.TotalOvertime110Minutes = 0
	t.TotalNightMinutes = 0
	t.TotalMealAllowances = 0
}

// AddDailyTotals folds one day into the monthly totals. Addition is
// commutative, so record order does not affect the result.
func (t *MonthlyTimesheet) AddDailyTotals(d DailyTotals) {
	t.TotalNormalMinutes += d.NormalMinutes
	switch d.OvertimeBucket {
	case Bucket50:
		t.TotalOvertime50Minutes += d.OvertimeMinutes
	case Bucket80:
		t.TotalOvertime80Minutes += d.OvertimeMinutes
	case Bucket110:
		t.TotalOvertime110Minutes += d.OvertimeMinutes
	}
	t.TotalNightMinutes += d.NightMinutes
	t.TotalMealAllowances += d.MealAllowances
}

// WorkSchedule is an employee's contracted daily schedule. When nil, the
// weekday defaults from the classifier apply.
type WorkSchedule struct {
	Entry         TimeOfDay
	Exit          TimeOfDay
	FridayExit    *TimeOfDay
	LunchStart    *TimeOfDay
	LunchEnd      *TimeOfDay
	HasLunchBreak bool
}

// ExitFor returns the contracted exit time for the given date, honoring the
// Friday override when configured.
func (s WorkSchedule) ExitFor(date time.Time) TimeOfDay {
	if s.FridayExit != nil && date.Weekday() == time.Friday {
		return *s.FridayExit
	}
	return s.Exit
}

// ShiftMinutes returns the contracted worked minutes for the given date:
// entry to exit, minus the lunch window when the schedule has one.
func (s WorkSchedule) ShiftMinutes(date time.Time) int {
	minutes := s.ExitFor(date).Minutes() - s.Entry.Minutes()
	if s.HasLunchBreak && s.LunchStart != nil && s.LunchEnd != nil {
		minutes -= s.LunchEnd.Minutes() - s.LunchStart.Minutes()
	}
	if minutes < 0 {
		return 0
	}
	return minutes
}

// Validation error codes returned by the punch validator.
const (
	CodeMissingRequiredTime   = "MissingRequiredTime"
	CodeTimeOrderViolation    = "TimeOrderViolation"
	CodeTimeFieldsMustBeEmpty = "TimeFieldsMustBeEmpty"
	CodeMissingJustification  = "MissingJustification"
)

// FieldError is a single business-rule violation on a punch record.
type FieldError struct {
	Code    string `json:"code"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult carries hard errors (block the save) and warnings
// (surfaced to the caller, non-blocking).
type ValidationResult struct {
	Errors   []FieldError `json:"errors,omitempty"`
	Warnings []FieldError `json:"warnings,omitempty"`
}

func (r ValidationResult) OK() bool { return len(r.Errors) == 0 }
