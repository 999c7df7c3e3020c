package timesheet

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pontolabs/ponto-backend-go/internal/domain/auth"
	"github.com/pontolabs/ponto-backend-go/internal/domain/employee"
	"github.com/pontolabs/ponto-backend-go/internal/domain/holiday"
	"github.com/pontolabs/ponto-backend-go/internal/domain/timesheet"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/database"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
	"github.com/pontolabs/ponto-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
)

type TimesheetServiceImpl struct {
	db *database.DB
	timesheet.TimesheetRepository
	employee.EmployeeRepository
	holiday.HolidayRepository
	calculator *HoursCalculator
	lockPolicy *LockPolicy
	mealRate   decimal.Decimal
	loc        *time.Location
}

func NewTimesheetService(
	db *database.DB,
	timesheetRepo timesheet.TimesheetRepository,
	employeeRepo employee.EmployeeRepository,
	holidayRepo holiday.HolidayRepository,
	calculator *HoursCalculator,
	lockPolicy *LockPolicy,
	mealRate decimal.Decimal,
	loc *time.Location,
) timesheet.TimesheetService {
	if loc == nil {
		loc = time.Local
	}
	return &TimesheetServiceImpl{
		db:                  db,
		TimesheetRepository: timesheetRepo,
		EmployeeRepository:  employeeRepo,
		HolidayRepository:   holidayRepo,
		calculator:          calculator,
		lockPolicy:          lockPolicy,
		mealRate:            mealRate,
		loc:                 loc,
	}
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// OpenTimesheet implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) OpenTimesheet(ctx context.Context, req timesheet.OpenTimesheetRequest) (timesheet.TimesheetResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, employee.ErrEmployeeNotFound) {
			return timesheet.TimesheetResponse{}, employee.ErrEmployeeNotFound
		}
		return timesheet.TimesheetResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	existing, err := s.TimesheetRepository.GetByPeriod(ctx, req.EmployeeID, req.Month, req.Year)
	if err != nil {
		return timesheet.TimesheetResponse{}, fmt.Errorf("failed to check existing period: %w", err)
	}

	holidayDates, err := s.HolidayRepository.DatesForPeriod(ctx, req.Month, req.Year)
	if err != nil {
		return timesheet.TimesheetResponse{}, fmt.Errorf("failed to load holiday calendar: %w", err)
	}

	if existing != nil {
		return s.mapTimesheetToResponse(*existing, holidayDates, true), nil
	}

	ts := timesheet.MonthlyTimesheet{
		ID:           uuid.NewString(),
		EmployeeID:   emp.ID,
		Month:        req.Month,
		Year:         req.Year,
		EmployeeName: &emp.FullName,
	}

	daysInMonth := time.Date(req.Year, time.Month(req.Month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(req.Year, time.Month(req.Month), day, 0, 0, 0, 0, time.UTC)
		status := timesheet.StatusNormal
		if holidayDates[dateKey(date)] {
			status = timesheet.StatusHoliday
		}
		ts.Records = append(ts.Records, timesheet.PunchRecord{
			ID:          uuid.NewString(),
			TimesheetID: ts.ID,
			Date:        date,
			DayStatus:   status,
		})
	}

	created, err := s.TimesheetRepository.Create(ctx, ts)
	if err != nil {
		return timesheet.TimesheetResponse{}, fmt.Errorf("failed to create timesheet: %w", err)
	}
	created.EmployeeName = &emp.FullName

	return s.mapTimesheetToResponse(created, holidayDates, true), nil
}

// GetTimesheet implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) GetTimesheet(ctx context.Context, id string) (timesheet.TimesheetResponse, error) {
	ts, err := s.TimesheetRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, timesheet.ErrTimesheetNotFound) {
			return timesheet.TimesheetResponse{}, timesheet.ErrTimesheetNotFound
		}
		return timesheet.TimesheetResponse{}, fmt.Errorf("failed to get timesheet: %w", err)
	}

	holidayDates, err := s.HolidayRepository.DatesForPeriod(ctx, ts.Month, ts.Year)
	if err != nil {
		return timesheet.TimesheetResponse{}, fmt.Errorf("failed to load holiday calendar: %w", err)
	}

	return s.mapTimesheetToResponse(ts, holidayDates, true), nil
}

// GetMyTimesheet implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) GetMyTimesheet(ctx context.Context, month, year int) (timesheet.TimesheetResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return timesheet.TimesheetResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return timesheet.TimesheetResponse{}, fmt.Errorf("employee_id claim is missing or invalid")
	}

	ts, err := s.TimesheetRepository.GetByPeriod(ctx, employeeID, month, year)
	if err != nil {
		return timesheet.TimesheetResponse{}, fmt.Errorf("failed to get timesheet: %w", err)
	}
	if ts == nil {
		return timesheet.TimesheetResponse{}, timesheet.ErrTimesheetNotFound
	}

	holidayDates, err := s.HolidayRepository.DatesForPeriod(ctx, month, year)
	if err != nil {
		return timesheet.TimesheetResponse{}, fmt.Errorf("failed to load holiday calendar: %w", err)
	}

	return s.mapTimesheetToResponse(*ts, holidayDates, true), nil
}

// ListTimesheets implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ListTimesheets(ctx context.Context, filter timesheet.TimesheetFilter) (timesheet.ListTimesheetsResponse, error) {
	if err := filter.Validate(); err != nil {
		return timesheet.ListTimesheetsResponse{}, err
	}

	timesheets, total, err := s.TimesheetRepository.List(ctx, filter)
	if err != nil {
		return timesheet.ListTimesheetsResponse{}, fmt.Errorf("failed to list timesheets: %w", err)
	}

	responses := make([]timesheet.TimesheetResponse, 0, len(timesheets))
	for _, ts := range timesheets {
		responses = append(responses, s.mapTimesheetToResponse(ts, nil, false))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))
	showing := fmt.Sprintf("%d-%d of %d", (filter.Page-1)*filter.Limit+1, min((filter.Page)*filter.Limit, int(total)), total)
	if total == 0 {
		showing = "0 of 0"
	}

	return timesheet.ListTimesheetsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Showing:    showing,
		Timesheets: responses,
	}, nil
}

// UpdateRecord implements timesheet.TimesheetService. This is the edit
// pipeline: lock gate, status-change patch, validation, classification,
// totals computation, then a single transaction persisting the record and
// the recomputed monthly totals.
func (s *TimesheetServiceImpl) UpdateRecord(ctx context.Context, req timesheet.UpdateRecordRequest) (timesheet.UpdateRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.UpdateRecordResponse{}, err
	}

	ts, err := s.TimesheetRepository.GetByID(ctx, req.TimesheetID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, timesheet.ErrTimesheetNotFound) {
			return timesheet.UpdateRecordResponse{}, timesheet.ErrTimesheetNotFound
		}
		return timesheet.UpdateRecordResponse{}, fmt.Errorf("failed to get timesheet: %w", err)
	}

	// Admins edit any timesheet; employees only their own.
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return timesheet.UpdateRecordResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	if role, _ := claims["role"].(string); auth.Role(role) != auth.RoleAdmin {
		employeeID, _ := claims["employee_id"].(string)
		if employeeID == "" || employeeID != ts.EmployeeID {
			return timesheet.UpdateRecordResponse{}, timesheet.ErrNotTimesheetOwner
		}
	}

	if ts.Closed {
		return timesheet.UpdateRecordResponse{}, timesheet.ErrTimesheetClosed
	}

	recordIdx := -1
	for i := range ts.Records {
		if ts.Records[i].ID == req.RecordID {
			recordIdx = i
			break
		}
	}
	if recordIdx < 0 {
		return timesheet.UpdateRecordResponse{}, timesheet.ErrRecordNotFound
	}
	rec := ts.Records[recordIdx]

	now := time.Now().In(s.loc)
	if s.lockPolicy.IsLocked(rec, ts.Closed, now) {
		return timesheet.UpdateRecordResponse{}, timesheet.ErrRecordLocked
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, ts.EmployeeID)
	if err != nil {
		return timesheet.UpdateRecordResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if req.DayStatus != nil {
		newStatus := timesheet.DayStatus(strings.ToLower(*req.DayStatus))
		if newStatus != rec.DayStatus {
			rec = ApplyStatusChange(newStatus, rec, emp.Schedule)
		}
	}

	if err := applyTimePatch(&rec.MorningEntry, req.MorningEntry); err != nil {
		return timesheet.UpdateRecordResponse{}, err
	}
	if err := applyTimePatch(&rec.LunchExit, req.LunchExit); err != nil {
		return timesheet.UpdateRecordResponse{}, err
	}
	if err := applyTimePatch(&rec.LunchReturn, req.LunchReturn); err != nil {
		return timesheet.UpdateRecordResponse{}, err
	}
	if err := applyTimePatch(&rec.AfternoonExit, req.AfternoonExit); err != nil {
		return timesheet.UpdateRecordResponse{}, err
	}
	if err := applyTimePatch(&rec.ExtraEntry, req.ExtraEntry); err != nil {
		return timesheet.UpdateRecordResponse{}, err
	}
	if err := applyTimePatch(&rec.ExtraExit, req.ExtraExit); err != nil {
		return timesheet.UpdateRecordResponse{}, err
	}

	if req.Notes != nil {
		rec.Notes = emptyToNil(req.Notes)
	}
	if req.Justification != nil {
		rec.Justification = emptyToNil(req.Justification)
	}

	result := ValidateRecord(rec)
	if !result.OK() {
		var errs validator.ValidationErrors
		for _, fe := range result.Errors {
			errs = append(errs, validator.ValidationError{
				Field:   fe.Field,
				Message: fe.Code + ": " + fe.Message,
			})
		}
		return timesheet.UpdateRecordResponse{}, errs
	}

	holidayDates, err := s.HolidayRepository.DatesForPeriod(ctx, ts.Month, ts.Year)
	if err != nil {
		return timesheet.UpdateRecordResponse{}, fmt.Errorf("failed to load holiday calendar: %w", err)
	}

	// Re-aggregate the whole month. Summation is order-independent, so one
	// pass over the records is enough.
	ts.Records[recordIdx] = rec
	ts.ResetTotals()
	for _, r := range ts.Records {
		workday := ClassifyWorkday(r.Date, holidayDates[dateKey(r.Date)])
		sched := ScheduleFor(r.Date, emp.Schedule)
		ts.AddDailyTotals(s.calculator.ComputeDailyTotals(r, workday, sched))
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		if err := s.TimesheetRepository.UpdateRecord(txCtx, rec); err != nil {
			return fmt.Errorf("failed to update punch record: %w", err)
		}
		if err := s.TimesheetRepository.UpdateTotals(txCtx, ts); err != nil {
			return fmt.Errorf("failed to update monthly totals: %w", err)
		}
		return nil
	})
	if err != nil {
		return timesheet.UpdateRecordResponse{}, err
	}

	return timesheet.UpdateRecordResponse{
		Record:   s.mapRecordToResponse(rec, ts.Closed, holidayDates, now),
		Warnings: result.Warnings,
		Totals:   s.mapTotalsToResponse(ts),
	}, nil
}

// CloseTimesheet implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) CloseTimesheet(ctx context.Context, id string) (timesheet.TimesheetResponse, error) {
	ts, err := s.TimesheetRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, timesheet.ErrTimesheetNotFound) {
			return timesheet.TimesheetResponse{}, timesheet.ErrTimesheetNotFound
		}
		return timesheet.TimesheetResponse{}, fmt.Errorf("failed to get timesheet: %w", err)
	}

	if ts.Closed {
		return timesheet.TimesheetResponse{}, timesheet.ErrTimesheetAlreadyClosed
	}

	if err := s.TimesheetRepository.SetClosed(ctx, id); err != nil {
		return timesheet.TimesheetResponse{}, fmt.Errorf("failed to close timesheet: %w", err)
	}
	ts.Closed = true

	holidayDates, err := s.HolidayRepository.DatesForPeriod(ctx, ts.Month, ts.Year)
	if err != nil {
		return timesheet.TimesheetResponse{}, fmt.Errorf("failed to load holiday calendar: %w", err)
	}

	return s.mapTimesheetToResponse(ts, holidayDates, true), nil
}

// ApproveTimesheet implements timesheet.TimesheetService. Approval is an
// independent stamp on top of closure: a period must be closed first.
func (s *TimesheetServiceImpl) ApproveTimesheet(ctx context.Context, id string) (timesheet.TimesheetResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return timesheet.TimesheetResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return timesheet.TimesheetResponse{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	ts, err := s.TimesheetRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, timesheet.ErrTimesheetNotFound) {
			return timesheet.TimesheetResponse{}, timesheet.ErrTimesheetNotFound
		}
		return timesheet.TimesheetResponse{}, fmt.Errorf("failed to get timesheet: %w", err)
	}

	if !ts.Closed {
		return timesheet.TimesheetResponse{}, timesheet.ErrTimesheetNotClosed
	}
	if ts.Approved {
		return timesheet.TimesheetResponse{}, timesheet.ErrTimesheetAlreadyApproved
	}

	now := time.Now()
	if err := s.TimesheetRepository.SetApproved(ctx, id, userID, now); err != nil {
		return timesheet.TimesheetResponse{}, fmt.Errorf("failed to approve timesheet: %w", err)
	}
	ts.Approved = true
	ts.ApprovedBy = &userID
	ts.ApprovedAt = &now

	holidayDates, err := s.HolidayRepository.DatesForPeriod(ctx, ts.Month, ts.Year)
	if err != nil {
		return timesheet.TimesheetResponse{}, fmt.Errorf("failed to load holiday calendar: %w", err)
	}

	return s.mapTimesheetToResponse(ts, holidayDates, true), nil
}

// applyTimePatch applies one PATCH field: nil leaves the punch untouched,
// empty string clears it, "HH:MM" replaces it.
func applyTimePatch(dst **timesheet.TimeOfDay, src *string) error {
	if src == nil {
		return nil
	}
	if *src == "" {
		*dst = nil
		return nil
	}
	t, err := timesheet.ParseTimeOfDay(*src)
	if err != nil {
		return err
	}
	*dst = &t
	return nil
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func (s *TimesheetServiceImpl) mapRecordToResponse(rec timesheet.PunchRecord, closed bool, holidayDates map[string]bool, now time.Time) timesheet.PunchRecordResponse {
	return timesheet.PunchRecordResponse{
		ID:            rec.ID,
		Date:          rec.Date.Format("2006-01-02"),
		Weekday:       strings.ToLower(rec.Date.Weekday().String()),
		WorkdayType:   string(ClassifyWorkday(rec.Date, holidayDates[dateKey(rec.Date)])),
		DayStatus:     string(rec.DayStatus),
		MorningEntry:  timeOfDayPtrToString(rec.MorningEntry),
		LunchExit:     timeOfDayPtrToString(rec.LunchExit),
		LunchReturn:   timeOfDayPtrToString(rec.LunchReturn),
		AfternoonExit: timeOfDayPtrToString(rec.AfternoonExit),
		ExtraEntry:    timeOfDayPtrToString(rec.ExtraEntry),
		ExtraExit:     timeOfDayPtrToString(rec.ExtraExit),
		Notes:         rec.Notes,
		Justification: rec.Justification,
		Locked:        s.lockPolicy.IsLocked(rec, closed, now),
	}
}

func (s *TimesheetServiceImpl) mapTotalsToResponse(ts timesheet.MonthlyTimesheet) timesheet.TimesheetTotalsResponse {
	mealTotal := s.mealRate.Mul(decimal.NewFromInt(int64(ts.TotalMealAllowances)))
	return timesheet.TimesheetTotalsResponse{
		NormalMinutes:      ts.TotalNormalMinutes,
		Overtime50Minutes:  ts.TotalOvertime50Minutes,
		Overtime80Minutes:  ts.TotalOvertime80Minutes,
		Overtime110Minutes: ts.TotalOvertime110Minutes,
		NightMinutes:       ts.TotalNightMinutes,
		MealAllowances:     ts.TotalMealAllowances,
		MealAllowanceTotal: mealTotal.StringFixed(2),
	}
}

func (s *TimesheetServiceImpl) mapTimesheetToResponse(ts timesheet.MonthlyTimesheet, holidayDates map[string]bool, includeRecords bool) timesheet.TimesheetResponse {
	var employeeName string
	if ts.EmployeeName != nil {
		employeeName = *ts.EmployeeName
	}

	resp := timesheet.TimesheetResponse{
		ID:           ts.ID,
		EmployeeID:   ts.EmployeeID,
		EmployeeName: employeeName,
		Month:        ts.Month,
		Year:         ts.Year,
		Closed:       ts.Closed,
		Approved:     ts.Approved,
		ApprovedBy:   ts.ApprovedBy,
		Totals:       s.mapTotalsToResponse(ts),
		CreatedAt:    ts.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:    ts.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
	if ts.ApprovedAt != nil {
		formatted := ts.ApprovedAt.Format("2006-01-02 15:04:05")
		resp.ApprovedAt = &formatted
	}

	if includeRecords {
		now := time.Now().In(s.loc)
		resp.Records = make([]timesheet.PunchRecordResponse, 0, len(ts.Records))
		for _, rec := range ts.Records {
			resp.Records = append(resp.Records, s.mapRecordToResponse(rec, ts.Closed, holidayDates, now))
		}
	}

	return resp
}

func timeOfDayPtrToString(t *timesheet.TimeOfDay) *string {
	if t == nil {
		return nil
	}
	formatted := t.String()
	return &formatted
}
