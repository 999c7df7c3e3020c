package employee

import (
	"testing"

	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCreateEmployeeRequestValidate(t *testing.T) {
	req := CreateEmployeeRequest{
		EmployeeCode: "1234-5678",
		FullName:     "Maria Souza",
		Email:        "maria@example.com",
		HireDate:     "2024-03-01",
		BaseSalary:   strPtr("3500.00"),
		Schedule: &WorkScheduleRequest{
			Entry:         "07:00",
			Exit:          "17:00",
			FridayExit:    strPtr("16:00"),
			LunchStart:    strPtr("12:00"),
			LunchEnd:      strPtr("13:00"),
			HasLunchBreak: true,
		},
	}
	assert.NoError(t, req.Validate())
}

func TestCreateEmployeeRequestValidateRejectsBadInput(t *testing.T) {
	req := CreateEmployeeRequest{
		EmployeeCode: "12345678",
		Email:        "not-an-email",
		HireDate:     "01/03/2024",
		BaseSalary:   strPtr("lots"),
	}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	fields := errs.ToMap()
	assert.Contains(t, fields, "employee_code")
	assert.Contains(t, fields, "full_name")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "hire_date")
	assert.Contains(t, fields, "base_salary")
}

func TestWorkScheduleRequestValidateLunchConsistency(t *testing.T) {
	req := CreateEmployeeRequest{
		EmployeeCode: "1234-5678",
		FullName:     "Maria Souza",
		Email:        "maria@example.com",
		HireDate:     "2024-03-01",
		Schedule: &WorkScheduleRequest{
			Entry:         "07:00",
			Exit:          "17:00",
			HasLunchBreak: true,
		},
	}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "schedule.lunch_start")
}

func TestEmployeeFilterValidateDefaults(t *testing.T) {
	filter := EmployeeFilter{}
	require.NoError(t, filter.Validate())

	assert.Equal(t, 1, filter.Page)
	assert.Equal(t, 20, filter.Limit)
	assert.Equal(t, "full_name", filter.SortBy)
	assert.Equal(t, "asc", filter.SortOrder)
}
