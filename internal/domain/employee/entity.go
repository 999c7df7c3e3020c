package employee

import (
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/timesheet"
	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	EmployeeCode string
	FullName     string
	Email        string
	HireDate     time.Time
	Active       bool
	BaseSalary   *decimal.Decimal

	// Schedule is the contracted daily schedule. Nil means the weekday
	// defaults apply.
	Schedule *timesheet.WorkSchedule

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
