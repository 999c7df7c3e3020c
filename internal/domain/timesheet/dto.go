package timesheet

import (
	"strings"

	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
)

// ========================================
// TIMESHEET DTOs
// ========================================

type OpenTimesheetRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
}

func (r *OpenTimesheetRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateRecordRequest patches a single day. Time fields use "HH:MM"; an
// explicit empty string clears the field, nil leaves it untouched.
type UpdateRecordRequest struct {
	TimesheetID   string  `json:"-"`
	RecordID      string  `json:"-"`
	DayStatus     *string `json:"day_status,omitempty"`
	MorningEntry  *string `json:"morning_entry,omitempty"`
	LunchExit     *string `json:"lunch_exit,omitempty"`
	LunchReturn   *string `json:"lunch_return,omitempty"`
	AfternoonExit *string `json:"afternoon_exit,omitempty"`
	ExtraEntry    *string `json:"extra_entry,omitempty"`
	ExtraExit     *string `json:"extra_exit,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	Justification *string `json:"justification,omitempty"`
}

func (r *UpdateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TimesheetID) {
		errs = append(errs, validator.ValidationError{
			Field:   "timesheet_id",
			Message: "timesheet_id is required",
		})
	}

	if validator.IsEmpty(r.RecordID) {
		errs = append(errs, validator.ValidationError{
			Field:   "record_id",
			Message: "record_id is required",
		})
	}

	if r.DayStatus != nil && !validator.IsInSlice(strings.ToLower(*r.DayStatus), DayStatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "day_status",
			Message: "day_status must be one of: " + strings.Join(DayStatusValues, ", "),
		})
	}

	timeFields := map[string]*string{
		"morning_entry":  r.MorningEntry,
		"lunch_exit":     r.LunchExit,
		"lunch_return":   r.LunchReturn,
		"afternoon_exit": r.AfternoonExit,
		"extra_entry":    r.ExtraEntry,
		"extra_exit":     r.ExtraExit,
	}
	for field, value := range timeFields {
		if value == nil || *value == "" {
			continue
		}
		if _, valid := validator.IsValidTimeOfDay(*value); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be in HH:MM format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TimesheetFilter struct {
	// Search & Filter
	EmployeeID *string `json:"employee_id,omitempty"`
	Month      *int    `json:"month,omitempty"`
	Year       *int    `json:"year,omitempty"`
	Closed     *bool   `json:"closed,omitempty"`
	Approved   *bool   `json:"approved,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`

	// Sorting
	SortBy    string `json:"sort_by"`    // period, employee_name, created_at
	SortOrder string `json:"sort_order"` // asc, desc
}

func (f *TimesheetFilter) Validate() error {
	var errs validator.ValidationErrors

	// Page validation
	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	// Limit validation
	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.Month != nil && !validator.IsValidMonth(*f.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if f.Year != nil && !validator.IsValidYear(*f.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	// Sort validation
	if f.SortBy != "" {
		validSortFields := []string{"period", "employee_name", "created_at"}
		if !validator.IsInSlice(f.SortBy, validSortFields) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_by",
				Message: "sort_by must be one of: period, employee_name, created_at",
			})
		}
	} else {
		f.SortBy = "period" // Default sort
	}

	if f.SortOrder != "" {
		validSortOrders := []string{"asc", "desc"}
		if !validator.IsInSlice(strings.ToLower(f.SortOrder), validSortOrders) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_order",
				Message: "sort_order must be one of: asc, desc",
			})
		}
	} else {
		f.SortOrder = "desc" // Default descending (newest period first)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PunchRecordResponse struct {
	ID            string  `json:"id"`
	Date          string  `json:"date"`
	Weekday       string  `json:"weekday"`
	WorkdayType   string  `json:"workday_type"`
	DayStatus     string  `json:"day_status"`
	MorningEntry  *string `json:"morning_entry,omitempty"`
	LunchExit     *string `json:"lunch_exit,omitempty"`
	LunchReturn   *string `json:"lunch_return,omitempty"`
	AfternoonExit *string `json:"afternoon_exit,omitempty"`
	ExtraEntry    *string `json:"extra_entry,omitempty"`
	ExtraExit     *string `json:"extra_exit,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	Justification *string `json:"justification,omitempty"`
	Locked        bool    `json:"locked"`
}

type TimesheetTotalsResponse struct {
	NormalMinutes      int    `json:"normal_minutes"`
	Overtime50Minutes  int    `json:"overtime_50_minutes"`
	Overtime80Minutes  int    `json:"overtime_80_minutes"`
	Overtime110Minutes int    `json:"overtime_110_minutes"`
	NightMinutes       int    `json:"night_minutes"`
	MealAllowances     int    `json:"meal_allowances"`
	MealAllowanceTotal string `json:"meal_allowance_total"`
}

type TimesheetResponse struct {
	ID           string                  `json:"id"`
	EmployeeID   string                  `json:"employee_id"`
	EmployeeName string                  `json:"employee_name"`
	Month        int                     `json:"month"`
	Year         int                     `json:"year"`
	Closed       bool                    `json:"closed"`
	Approved     bool                    `json:"approved"`
	ApprovedBy   *string                 `json:"approved_by,omitempty"`
	ApprovedAt   *string                 `json:"approved_at,omitempty"`
	Totals       TimesheetTotalsResponse `json:"totals"`
	Records      []PunchRecordResponse   `json:"records,omitempty"`
	CreatedAt    string                  `json:"created_at"`
	UpdatedAt    string                  `json:"updated_at"`
}

type ListTimesheetsResponse struct {
	TotalCount int64               `json:"total_count"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
	TotalPages int                 `json:"total_pages"`
	Showing    string              `json:"showing"`
	Timesheets []TimesheetResponse `json:"timesheets"`
}

type UpdateRecordResponse struct {
	Record   PunchRecordResponse     `json:"record"`
	Warnings []FieldError            `json:"warnings,omitempty"`
	Totals   TimesheetTotalsResponse `json:"totals"`
}
