package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pontolabs/ponto-backend-go/internal/domain/timesheet"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/database"
)

type timesheetRepositoryImpl struct {
	db *database.DB
}

func NewTimesheetRepository(db *database.DB) timesheet.TimesheetRepository {
	return &timesheetRepositoryImpl{db: db}
}

// Punch times are stored as integer minutes since midnight.
func minutesOrNil(t *timesheet.TimeOfDay) *int {
	if t == nil {
		return nil
	}
	m := t.Minutes()
	return &m
}

func timeOfDayOrNil(m *int) *timesheet.TimeOfDay {
	if m == nil {
		return nil
	}
	t := timesheet.TimeOfDay(*m)
	return &t
}

const punchRecordColumns = `
	id, timesheet_id, date, morning_entry, lunch_exit, lunch_return,
	afternoon_exit, extra_entry, extra_exit, day_status, notes, justification,
	created_at, updated_at
`

func scanPunchRecord(row pgx.Row) (timesheet.PunchRecord, error) {
	var rec timesheet.PunchRecord
	var morningEntry, lunchExit, lunchReturn, afternoonExit, extraEntry, extraExit *int
	err := row.Scan(
		&rec.ID, &rec.TimesheetID, &rec.Date,
		&morningEntry, &lunchExit, &lunchReturn,
		&afternoonExit, &extraEntry, &extraExit,
		&rec.DayStatus, &rec.Notes, &rec.Justification,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return timesheet.PunchRecord{}, err
	}
	rec.MorningEntry = timeOfDayOrNil(morningEntry)
	rec.LunchExit = timeOfDayOrNil(lunchExit)
	rec.LunchReturn = timeOfDayOrNil(lunchReturn)
	rec.AfternoonExit = timeOfDayOrNil(afternoonExit)
	rec.ExtraEntry = timeOfDayOrNil(extraEntry)
	rec.ExtraExit = timeOfDayOrNil(extraExit)
	return rec, nil
}

const timesheetColumns = `
	t.id, t.employee_id, t.month, t.year, t.closed, t.approved, t.approved_by, t.approved_at,
	t.total_normal_minutes, t.total_overtime50_minutes, t.total_overtime80_minutes,
	t.total_overtime110_minutes, t.total_night_minutes, t.total_meal_allowances,
	t.created_at, t.updated_at, e.full_name
`

func scanTimesheet(row pgx.Row) (timesheet.MonthlyTimesheet, error) {
	var ts timesheet.MonthlyTimesheet
	err := row.Scan(
		&ts.ID, &ts.EmployeeID, &ts.Month, &ts.Year, &ts.Closed, &ts.Approved,
		&ts.ApprovedBy, &ts.ApprovedAt,
		&ts.TotalNormalMinutes, &ts.TotalOvertime50Minutes, &ts.TotalOvertime80Minutes,
		&ts.TotalOvertime110Minutes, &ts.TotalNightMinutes, &ts.TotalMealAllowances,
		&ts.CreatedAt, &ts.UpdatedAt, &ts.EmployeeName,
	)
	if err != nil {
		return timesheet.MonthlyTimesheet{}, err
	}
	return ts, nil
}

// Create implements timesheet.TimesheetRepository.
func (t *timesheetRepositoryImpl) Create(ctx context.Context, ts timesheet.MonthlyTimesheet) (timesheet.MonthlyTimesheet, error) {
	var created timesheet.MonthlyTimesheet

	err := WithTransaction(ctx, t.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO monthly_timesheets (id, employee_id, month, year)
			VALUES ($1, $2, $3, $4)
			RETURNING id, employee_id, month, year, closed, approved, approved_by, approved_at,
				total_normal_minutes, total_overtime50_minutes, total_overtime80_minutes,
				total_overtime110_minutes, total_night_minutes, total_meal_allowances,
				created_at, updated_at
		`

		err := tx.QueryRow(ctx, query, ts.ID, ts.EmployeeID, ts.Month, ts.Year).Scan(
			&created.ID, &created.EmployeeID, &created.Month, &created.Year,
			&created.Closed, &created.Approved, &created.ApprovedBy, &created.ApprovedAt,
			&created.TotalNormalMinutes, &created.TotalOvertime50Minutes, &created.TotalOvertime80Minutes,
			&created.TotalOvertime110Minutes, &created.TotalNightMinutes, &created.TotalMealAllowances,
			&created.CreatedAt, &created.UpdatedAt,
		)
		if err != nil {
			return err
		}

		recordQuery := `
			INSERT INTO punch_records (id, timesheet_id, date, day_status)
			VALUES ($1, $2, $3, $4)
			RETURNING created_at, updated_at
		`
		for _, rec := range ts.Records {
			err := tx.QueryRow(ctx, recordQuery, rec.ID, created.ID, rec.Date, rec.DayStatus).
				Scan(&rec.CreatedAt, &rec.UpdatedAt)
			if err != nil {
				return err
			}
			created.Records = append(created.Records, rec)
		}

		return nil
	})
	if err != nil {
		return timesheet.MonthlyTimesheet{}, err
	}

	return created, nil
}

// GetByID implements timesheet.TimesheetRepository.
func (t *timesheetRepositoryImpl) GetByID(ctx context.Context, id string) (timesheet.MonthlyTimesheet, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT ` + timesheetColumns + `
		FROM monthly_timesheets t
		JOIN employees e ON e.id = t.employee_id
		WHERE t.id = $1
	`

	ts, err := scanTimesheet(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return timesheet.MonthlyTimesheet{}, timesheet.ErrTimesheetNotFound
		}
		return timesheet.MonthlyTimesheet{}, err
	}

	ts.Records, err = t.listRecords(ctx, ts.ID)
	if err != nil {
		return timesheet.MonthlyTimesheet{}, err
	}

	return ts, nil
}

// GetByPeriod implements timesheet.TimesheetRepository.
func (t *timesheetRepositoryImpl) GetByPeriod(ctx context.Context, employeeID string, month, year int) (*timesheet.MonthlyTimesheet, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT ` + timesheetColumns + `
		FROM monthly_timesheets t
		JOIN employees e ON e.id = t.employee_id
		WHERE t.employee_id = $1 AND t.month = $2 AND t.year = $3
	`

	ts, err := scanTimesheet(q.QueryRow(ctx, query, employeeID, month, year))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	ts.Records, err = t.listRecords(ctx, ts.ID)
	if err != nil {
		return nil, err
	}

	return &ts, nil
}

func (t *timesheetRepositoryImpl) listRecords(ctx context.Context, timesheetID string) ([]timesheet.PunchRecord, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT ` + punchRecordColumns + `
		FROM punch_records
		WHERE timesheet_id = $1
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, timesheetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []timesheet.PunchRecord
	for rows.Next() {
		rec, err := scanPunchRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// List implements timesheet.TimesheetRepository.
func (t *timesheetRepositoryImpl) List(ctx context.Context, filter timesheet.TimesheetFilter) ([]timesheet.MonthlyTimesheet, int64, error) {
	q := GetQuerier(ctx, t.db)

	whereClause := " WHERE 1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil {
		whereClause += fmt.Sprintf(" AND t.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Month != nil {
		whereClause += fmt.Sprintf(" AND t.month = $%d", argIdx)
		args = append(args, *filter.Month)
		argIdx++
	}
	if filter.Year != nil {
		whereClause += fmt.Sprintf(" AND t.year = $%d", argIdx)
		args = append(args, *filter.Year)
		argIdx++
	}
	if filter.Closed != nil {
		whereClause += fmt.Sprintf(" AND t.closed = $%d", argIdx)
		args = append(args, *filter.Closed)
		argIdx++
	}
	if filter.Approved != nil {
		whereClause += fmt.Sprintf(" AND t.approved = $%d", argIdx)
		args = append(args, *filter.Approved)
		argIdx++
	}

	countQuery := `SELECT COUNT(*) FROM monthly_timesheets t JOIN employees e ON e.id = t.employee_id` + whereClause
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	orderClause := " ORDER BY "
	switch filter.SortBy {
	case "employee_name":
		orderClause += "e.full_name " + filter.SortOrder
	case "created_at":
		orderClause += "t.created_at " + filter.SortOrder
	default: // period
		orderClause += "t.year " + filter.SortOrder + ", t.month " + filter.SortOrder
	}

	query := `
		SELECT ` + timesheetColumns + `
		FROM monthly_timesheets t
		JOIN employees e ON e.id = t.employee_id
	` + whereClause + orderClause + fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var timesheets []timesheet.MonthlyTimesheet
	for rows.Next() {
		ts, err := scanTimesheet(rows)
		if err != nil {
			return nil, 0, err
		}
		timesheets = append(timesheets, ts)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return timesheets, total, nil
}

// GetRecordByID implements timesheet.TimesheetRepository.
func (t *timesheetRepositoryImpl) GetRecordByID(ctx context.Context, recordID string) (timesheet.PunchRecord, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT ` + punchRecordColumns + `
		FROM punch_records
		WHERE id = $1
	`

	rec, err := scanPunchRecord(q.QueryRow(ctx, query, recordID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return timesheet.PunchRecord{}, timesheet.ErrRecordNotFound
		}
		return timesheet.PunchRecord{}, err
	}

	return rec, nil
}

// UpdateRecord implements timesheet.TimesheetRepository.
func (t *timesheetRepositoryImpl) UpdateRecord(ctx context.Context, record timesheet.PunchRecord) error {
	q := GetQuerier(ctx, t.db)

	query := `
		UPDATE punch_records
		SET morning_entry = $1, lunch_exit = $2, lunch_return = $3,
			afternoon_exit = $4, extra_entry = $5, extra_exit = $6,
			day_status = $7, notes = $8, justification = $9, updated_at = NOW()
		WHERE id = $10
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		minutesOrNil(record.MorningEntry), minutesOrNil(record.LunchExit), minutesOrNil(record.LunchReturn),
		minutesOrNil(record.AfternoonExit), minutesOrNil(record.ExtraEntry), minutesOrNil(record.ExtraExit),
		record.DayStatus, record.Notes, record.Justification,
		record.ID,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return timesheet.ErrRecordNotFound
		}
		return err
	}

	return nil
}

// UpdateTotals implements timesheet.TimesheetRepository.
func (t *timesheetRepositoryImpl) UpdateTotals(ctx context.Context, ts timesheet.MonthlyTimesheet) error {
	q := GetQuerier(ctx, t.db)

	query := `
		UPDATE monthly_timesheets
		SET total_normal_minutes = $1, total_overtime50_minutes = $2,
			total_overtime80_minutes = $3, total_overtime110_minutes = $4,
			total_night_minutes = $5, total_meal_allowances = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		ts.TotalNormalMinutes, ts.TotalOvertime50Minutes,
		ts.TotalOvertime80Minutes, ts.TotalOvertime110Minutes,
		ts.TotalNightMinutes, ts.TotalMealAllowances,
		ts.ID,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return timesheet.ErrTimesheetNotFound
		}
		return err
	}

	return nil
}

// SetClosed implements timesheet.TimesheetRepository.
func (t *timesheetRepositoryImpl) SetClosed(ctx context.Context, id string) error {
	q := GetQuerier(ctx, t.db)

	query := `
		UPDATE monthly_timesheets
		SET closed = TRUE, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, id).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return timesheet.ErrTimesheetNotFound
		}
		return err
	}

	return nil
}

// SetApproved implements timesheet.TimesheetRepository.
func (t *timesheetRepositoryImpl) SetApproved(ctx context.Context, id string, approvedBy string, approvedAt time.Time) error {
	q := GetQuerier(ctx, t.db)

	query := `
		UPDATE monthly_timesheets
		SET approved = TRUE, approved_by = $1, approved_at = $2, updated_at = NOW()
		WHERE id = $3 AND closed = TRUE
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, approvedBy, approvedAt, id).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return timesheet.ErrTimesheetNotClosed
		}
		return err
	}

	return nil
}

// ListOpenBefore implements timesheet.TimesheetRepository.
func (t *timesheetRepositoryImpl) ListOpenBefore(ctx context.Context, year, month int) ([]timesheet.MonthlyTimesheet, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT ` + timesheetColumns + `
		FROM monthly_timesheets t
		JOIN employees e ON e.id = t.employee_id
		WHERE t.closed = FALSE AND (t.year < $1 OR (t.year = $1 AND t.month < $2))
		ORDER BY t.year ASC, t.month ASC
	`

	rows, err := q.Query(ctx, query, year, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var timesheets []timesheet.MonthlyTimesheet
	for rows.Next() {
		ts, err := scanTimesheet(rows)
		if err != nil {
			return nil, err
		}
		timesheets = append(timesheets, ts)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return timesheets, nil
}
