package employee

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pontolabs/ponto-backend-go/internal/domain/employee"
	"github.com/pontolabs/ponto-backend-go/internal/domain/timesheet"
	"github.com/shopspring/decimal"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepository employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepository,
	}
}

// CreateEmployee implements employee.EmployeeService.
func (e *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if _, err := e.EmployeeRepository.GetByCode(ctx, req.EmployeeCode); err == nil {
		return employee.EmployeeResponse{}, employee.ErrEmployeeCodeExists
	} else if !errors.Is(err, pgx.ErrNoRows) && !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee code: %w", err)
	}

	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to parse hire date: %w", err)
	}

	emp := employee.Employee{
		ID:           uuid.NewString(),
		EmployeeCode: req.EmployeeCode,
		FullName:     req.FullName,
		Email:        req.Email,
		HireDate:     hireDate,
		Active:       true,
	}

	if req.BaseSalary != nil {
		salary, err := decimal.NewFromString(*req.BaseSalary)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to parse base salary: %w", err)
		}
		emp.BaseSalary = &salary
	}

	if req.Schedule != nil {
		schedule, err := scheduleFromRequest(*req.Schedule)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		emp.Schedule = schedule
	}

	created, err := e.EmployeeRepository.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return mapEmployeeToResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (e *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := e.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return mapEmployeeToResponse(emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (e *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeesResponse, error) {
	if err := filter.Validate(); err != nil {
		return employee.ListEmployeesResponse{}, err
	}

	employees, total, err := e.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeesResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))
	showing := fmt.Sprintf("%d-%d of %d", (filter.Page-1)*filter.Limit+1, min(filter.Page*filter.Limit, int(total)), total)
	if total == 0 {
		showing = "0 of 0"
	}

	return employee.ListEmployeesResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Showing:    showing,
		Employees:  responses,
	}, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (e *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := e.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.Active != nil {
		emp.Active = *req.Active
	}
	if req.BaseSalary != nil {
		salary, err := decimal.NewFromString(*req.BaseSalary)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to parse base salary: %w", err)
		}
		emp.BaseSalary = &salary
	}
	if req.Schedule != nil {
		schedule, err := scheduleFromRequest(*req.Schedule)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		emp.Schedule = schedule
	}

	if err := e.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return mapEmployeeToResponse(emp), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (e *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	if _, err := e.EmployeeRepository.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to get employee: %w", err)
	}

	if err := e.EmployeeRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return nil
}

func scheduleFromRequest(req employee.WorkScheduleRequest) (*timesheet.WorkSchedule, error) {
	entry, err := timesheet.ParseTimeOfDay(req.Entry)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schedule entry: %w", err)
	}
	exit, err := timesheet.ParseTimeOfDay(req.Exit)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schedule exit: %w", err)
	}

	schedule := &timesheet.WorkSchedule{
		Entry:         entry,
		Exit:          exit,
		HasLunchBreak: req.HasLunchBreak,
	}

	if req.FridayExit != nil {
		fridayExit, err := timesheet.ParseTimeOfDay(*req.FridayExit)
		if err != nil {
			return nil, fmt.Errorf("failed to parse schedule friday exit: %w", err)
		}
		schedule.FridayExit = &fridayExit
	}
	if req.LunchStart != nil {
		lunchStart, err := timesheet.ParseTimeOfDay(*req.LunchStart)
		if err != nil {
			return nil, fmt.Errorf("failed to parse schedule lunch start: %w", err)
		}
		schedule.LunchStart = &lunchStart
	}
	if req.LunchEnd != nil {
		lunchEnd, err := timesheet.ParseTimeOfDay(*req.LunchEnd)
		if err != nil {
			return nil, fmt.Errorf("failed to parse schedule lunch end: %w", err)
		}
		schedule.LunchEnd = &lunchEnd
	}

	return schedule, nil
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:           emp.ID,
		EmployeeCode: emp.EmployeeCode,
		FullName:     emp.FullName,
		Email:        emp.Email,
		HireDate:     emp.HireDate.Format("2006-01-02"),
		Active:       emp.Active,
		CreatedAt:    emp.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:    emp.UpdatedAt.Format("2006-01-02 15:04:05"),
	}

	if emp.BaseSalary != nil {
		salary := emp.BaseSalary.StringFixed(2)
		resp.BaseSalary = &salary
	}

	if emp.Schedule != nil {
		resp.Schedule = &employee.WorkScheduleResponse{
			Entry:         emp.Schedule.Entry.String(),
			Exit:          emp.Schedule.Exit.String(),
			HasLunchBreak: emp.Schedule.HasLunchBreak,
		}
		if emp.Schedule.FridayExit != nil {
			formatted := emp.Schedule.FridayExit.String()
			resp.Schedule.FridayExit = &formatted
		}
		if emp.Schedule.LunchStart != nil {
			formatted := emp.Schedule.LunchStart.String()
			resp.Schedule.LunchStart = &formatted
		}
		if emp.Schedule.LunchEnd != nil {
			formatted := emp.Schedule.LunchEnd.String()
			resp.Schedule.LunchEnd = &formatted
		}
	}

	return resp
}
