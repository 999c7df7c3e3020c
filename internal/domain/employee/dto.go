package employee

import (
	"strings"

	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// EMPLOYEE DTOs
// ========================================

// WorkScheduleRequest carries the contracted schedule on create/update.
// Times are "HH:MM".
type WorkScheduleRequest struct {
	Entry         string  `json:"entry"`
	Exit          string  `json:"exit"`
	FridayExit    *string `json:"friday_exit,omitempty"`
	LunchStart    *string `json:"lunch_start,omitempty"`
	LunchEnd      *string `json:"lunch_end,omitempty"`
	HasLunchBreak bool    `json:"has_lunch_break"`
}

func (r *WorkScheduleRequest) validate(errs validator.ValidationErrors) validator.ValidationErrors {
	if _, valid := validator.IsValidTimeOfDay(r.Entry); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "schedule.entry",
			Message: "entry must be in HH:MM format",
		})
	}
	if _, valid := validator.IsValidTimeOfDay(r.Exit); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "schedule.exit",
			Message: "exit must be in HH:MM format",
		})
	}
	optional := map[string]*string{
		"schedule.friday_exit": r.FridayExit,
		"schedule.lunch_start": r.LunchStart,
		"schedule.lunch_end":   r.LunchEnd,
	}
	for field, value := range optional {
		if value == nil {
			continue
		}
		if _, valid := validator.IsValidTimeOfDay(*value); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be in HH:MM format",
			})
		}
	}
	if r.HasLunchBreak && (r.LunchStart == nil || r.LunchEnd == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "schedule.lunch_start",
			Message: "lunch_start and lunch_end are required when has_lunch_break is set",
		})
	}
	return errs
}

type CreateEmployeeRequest struct {
	EmployeeCode string               `json:"employee_code"`
	FullName     string               `json:"full_name"`
	Email        string               `json:"email"`
	HireDate     string               `json:"hire_date"` // YYYY-MM-DD
	BaseSalary   *string              `json:"base_salary,omitempty"`
	Schedule     *WorkScheduleRequest `json:"schedule,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code must be in NNNN-NNNN format",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if _, valid := validator.IsValidDate(r.HireDate); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date must be in YYYY-MM-DD format",
		})
	}

	if r.BaseSalary != nil {
		if _, err := decimal.NewFromString(*r.BaseSalary); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "base_salary",
				Message: "base_salary must be a decimal number",
			})
		}
	}

	if r.Schedule != nil {
		errs = r.Schedule.validate(errs)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID         string               `json:"-"`
	FullName   *string              `json:"full_name,omitempty"`
	Email      *string              `json:"email,omitempty"`
	Active     *bool                `json:"active,omitempty"`
	BaseSalary *string              `json:"base_salary,omitempty"`
	Schedule   *WorkScheduleRequest `json:"schedule,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if r.BaseSalary != nil {
		if _, err := decimal.NewFromString(*r.BaseSalary); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "base_salary",
				Message: "base_salary must be a decimal number",
			})
		}
	}

	if r.Schedule != nil {
		errs = r.Schedule.validate(errs)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type WorkScheduleResponse struct {
	Entry         string  `json:"entry"`
	Exit          string  `json:"exit"`
	FridayExit    *string `json:"friday_exit,omitempty"`
	LunchStart    *string `json:"lunch_start,omitempty"`
	LunchEnd      *string `json:"lunch_end,omitempty"`
	HasLunchBreak bool    `json:"has_lunch_break"`
}

type EmployeeResponse struct {
	ID           string                `json:"id"`
	EmployeeCode string                `json:"employee_code"`
	FullName     string                `json:"full_name"`
	Email        string                `json:"email"`
	HireDate     string                `json:"hire_date"`
	Active       bool                  `json:"active"`
	BaseSalary   *string               `json:"base_salary,omitempty"`
	Schedule     *WorkScheduleResponse `json:"schedule,omitempty"`
	CreatedAt    string                `json:"created_at"`
	UpdatedAt    string                `json:"updated_at"`
}

type EmployeeFilter struct {
	// Search & Filter
	Name   *string `json:"name,omitempty"`
	Active *bool   `json:"active,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`

	// Sorting
	SortBy    string `json:"sort_by"`    // full_name, employee_code, hire_date
	SortOrder string `json:"sort_order"` // asc, desc
}

func (f *EmployeeFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

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

	if f.SortBy != "" {
		validSortFields := []string{"full_name", "employee_code", "hire_date"}
		if !validator.IsInSlice(f.SortBy, validSortFields) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_by",
				Message: "sort_by must be one of: full_name, employee_code, hire_date",
			})
		}
	} else {
		f.SortBy = "full_name" // Default sort
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
		f.SortOrder = "asc"
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListEmployeesResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Showing    string             `json:"showing"`
	Employees  []EmployeeResponse `json:"employees"`
}
