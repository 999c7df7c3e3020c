package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pontolabs/ponto-backend-go/internal/domain/employee"
	"github.com/pontolabs/ponto-backend-go/internal/domain/timesheet"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	id, employee_code, full_name, email, hire_date, active, base_salary,
	schedule_entry, schedule_exit, schedule_friday_exit, schedule_lunch_start,
	schedule_lunch_end, schedule_has_lunch_break, created_at, updated_at, deleted_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	var entry, exit, fridayExit, lunchStart, lunchEnd *int
	var hasLunchBreak *bool
	err := row.Scan(
		&emp.ID, &emp.EmployeeCode, &emp.FullName, &emp.Email, &emp.HireDate,
		&emp.Active, &emp.BaseSalary,
		&entry, &exit, &fridayExit, &lunchStart, &lunchEnd, &hasLunchBreak,
		&emp.CreatedAt, &emp.UpdatedAt, &emp.DeletedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	// A NULL entry column means no contracted schedule is stored.
	if entry != nil && exit != nil {
		schedule := &timesheet.WorkSchedule{
			Entry:      timesheet.TimeOfDay(*entry),
			Exit:       timesheet.TimeOfDay(*exit),
			FridayExit: timeOfDayOrNil(fridayExit),
			LunchStart: timeOfDayOrNil(lunchStart),
			LunchEnd:   timeOfDayOrNil(lunchEnd),
		}
		if hasLunchBreak != nil {
			schedule.HasLunchBreak = *hasLunchBreak
		}
		emp.Schedule = schedule
	}

	return emp, nil
}

func scheduleColumns(emp employee.Employee) (entry, exit, fridayExit, lunchStart, lunchEnd *int, hasLunchBreak *bool) {
	if emp.Schedule == nil {
		return nil, nil, nil, nil, nil, nil
	}
	e := emp.Schedule.Entry.Minutes()
	x := emp.Schedule.Exit.Minutes()
	return &e, &x,
		minutesOrNil(emp.Schedule.FridayExit),
		minutesOrNil(emp.Schedule.LunchStart),
		minutesOrNil(emp.Schedule.LunchEnd),
		&emp.Schedule.HasLunchBreak
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	entry, exit, fridayExit, lunchStart, lunchEnd, hasLunchBreak := scheduleColumns(emp)

	query := `
		INSERT INTO employees (
			id, employee_code, full_name, email, hire_date, active, base_salary,
			schedule_entry, schedule_exit, schedule_friday_exit, schedule_lunch_start,
			schedule_lunch_end, schedule_has_lunch_break
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + employeeColumns

	return scanEmployee(q.QueryRow(ctx, query,
		emp.ID, emp.EmployeeCode, emp.FullName, emp.Email, emp.HireDate,
		emp.Active, emp.BaseSalary,
		entry, exit, fridayExit, lunchStart, lunchEnd, hasLunchBreak,
	))
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1 AND deleted_at IS NULL
	`

	return scanEmployee(q.QueryRow(ctx, query, id))
}

// GetByCode implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE employee_code = $1 AND deleted_at IS NULL
	`

	return scanEmployee(q.QueryRow(ctx, query, code))
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, e.db)

	whereClause := " WHERE deleted_at IS NULL"
	args := []interface{}{}
	argIdx := 1

	if filter.Name != nil {
		whereClause += fmt.Sprintf(" AND full_name ILIKE $%d", argIdx)
		args = append(args, "%"+*filter.Name+"%")
		argIdx++
	}
	if filter.Active != nil {
		whereClause += fmt.Sprintf(" AND active = $%d", argIdx)
		args = append(args, *filter.Active)
		argIdx++
	}

	countQuery := `SELECT COUNT(*) FROM employees` + whereClause
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
	` + whereClause +
		" ORDER BY " + filter.SortBy + " " + filter.SortOrder +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, err
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, e.db)

	entry, exit, fridayExit, lunchStart, lunchEnd, hasLunchBreak := scheduleColumns(emp)

	query := `
		UPDATE employees
		SET full_name = $1, email = $2, active = $3, base_salary = $4,
			schedule_entry = $5, schedule_exit = $6, schedule_friday_exit = $7,
			schedule_lunch_start = $8, schedule_lunch_end = $9,
			schedule_has_lunch_break = $10, updated_at = NOW()
		WHERE id = $11 AND deleted_at IS NULL
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		emp.FullName, emp.Email, emp.Active, emp.BaseSalary,
		entry, exit, fridayExit, lunchStart, lunchEnd, hasLunchBreak,
		emp.ID,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return err
	}

	return nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`

	var deletedID string
	if err := q.QueryRow(ctx, query, id).Scan(&deletedID); err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return err
	}

	return nil
}
