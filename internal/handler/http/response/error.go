package response

import (
	"errors"
	"net/http"

	"github.com/pontolabs/ponto-backend-go/internal/domain/auth"
	"github.com/pontolabs/ponto-backend-go/internal/domain/employee"
	"github.com/pontolabs/ponto-backend-go/internal/domain/holiday"
	"github.com/pontolabs/ponto-backend-go/internal/domain/timesheet"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrAccountNotFound):
		NotFound(w, "Account not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "Holiday already registered for this date")

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrTimesheetNotFound):
		NotFound(w, "Timesheet not found")
	case errors.Is(err, timesheet.ErrRecordNotFound):
		NotFound(w, "Punch record not found")
	case errors.Is(err, timesheet.ErrRecordLocked):
		Forbidden(w, "Punch record is locked for editing")
	case errors.Is(err, timesheet.ErrNotTimesheetOwner):
		Forbidden(w, "You can only edit your own timesheet")
	case errors.Is(err, timesheet.ErrTimesheetClosed):
		Forbidden(w, "Timesheet period is closed")
	case errors.Is(err, timesheet.ErrTimesheetNotClosed):
		Conflict(w, "Timesheet must be closed before approval")
	case errors.Is(err, timesheet.ErrTimesheetAlreadyClosed):
		Conflict(w, "Timesheet is already closed")
	case errors.Is(err, timesheet.ErrTimesheetAlreadyApproved):
		Conflict(w, "Timesheet is already approved")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
