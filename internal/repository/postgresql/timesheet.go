package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/timesheet"
	"github.com/kadro-hq/kadro-backend-go/internal/pkg/database"
)

type timesheetRepository struct {
	db *database.DB
}

func NewTimesheetRepository(db *database.DB) timesheet.TimesheetRepository {
	return &timesheetRepository{db: db}
}

const timesheetColumns = `id, owner_account_id, employee_id, date, status, check_in_time,
	check_out_time, hours_worked, overtime_hours, notes, created_at, updated_at`

func scanTimesheet(row pgx.Row) (timesheet.Timesheet, error) {
	var t timesheet.Timesheet
	err := row.Scan(
		&t.ID, &t.OwnerAccountID, &t.EmployeeID, &t.Date, &t.Status, &t.CheckInTime,
		&t.CheckOutTime, &t.HoursWorked, &t.OvertimeHours, &t.Notes, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

func (r *timesheetRepository) Create(ctx context.Context, newTimesheet timesheet.Timesheet) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO timesheets (id, owner_account_id, employee_id, date, status, check_in_time,
			check_out_time, hours_worked, overtime_hours, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING %s
	`, timesheetColumns)

	t, err := scanTimesheet(q.QueryRow(ctx, query,
		uuid.NewString(), newTimesheet.OwnerAccountID, newTimesheet.EmployeeID,
		newTimesheet.Date, newTimesheet.Status, newTimesheet.CheckInTime,
		newTimesheet.CheckOutTime, newTimesheet.HoursWorked, newTimesheet.OvertimeHours, newTimesheet.Notes,
	))
	if err != nil {
		return timesheet.Timesheet{}, fmt.Errorf("failed to create timesheet: %w", err)
	}

	return t, nil
}

func (r *timesheetRepository) GetByID(ctx context.Context, ownerAccountID, employeeID, id string) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM timesheets
		WHERE owner_account_id = $1 AND employee_id = $2 AND id = $3
	`, timesheetColumns)

	t, err := scanTimesheet(q.QueryRow(ctx, query, ownerAccountID, employeeID, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
		}
		return timesheet.Timesheet{}, fmt.Errorf("failed to get timesheet: %w", err)
	}

	return t, nil
}

func (r *timesheetRepository) List(ctx context.Context, ownerAccountID, employeeID string, filter timesheet.Filter) ([]timesheet.Timesheet, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereParts := []string{"owner_account_id = $1", "employee_id = $2"}
	args := []interface{}{ownerAccountID, employeeID}
	argIdx := 3

	if filter.Status != "" {
		whereParts = append(whereParts, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, filter.Status)
		argIdx++
	}
	if filter.Year > 0 {
		whereParts = append(whereParts, fmt.Sprintf("EXTRACT(YEAR FROM date) = $%d", argIdx))
		args = append(args, filter.Year)
		argIdx++
	}
	if filter.Month > 0 {
		whereParts = append(whereParts, fmt.Sprintf("EXTRACT(MONTH FROM date) = $%d", argIdx))
		args = append(args, filter.Month)
		argIdx++
	}

	whereClause := strings.Join(whereParts, " AND ")

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM timesheets WHERE %s`, whereClause)
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count timesheets: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM timesheets
		WHERE %s
		ORDER BY date DESC
		LIMIT $%d OFFSET $%d
	`, timesheetColumns, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list timesheets: %w", err)
	}
	defer rows.Close()

	timesheets, err := collectTimesheets(rows)
	if err != nil {
		return nil, 0, err
	}

	return timesheets, total, nil
}

func (r *timesheetRepository) ListByEmployee(ctx context.Context, ownerAccountID, employeeID string, year int, month int) ([]timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	whereParts := []string{"owner_account_id = $1", "employee_id = $2"}
	args := []interface{}{ownerAccountID, employeeID}
	argIdx := 3

	if year > 0 {
		whereParts = append(whereParts, fmt.Sprintf("EXTRACT(YEAR FROM date) = $%d", argIdx))
		args = append(args, year)
		argIdx++
	}
	if month > 0 {
		whereParts = append(whereParts, fmt.Sprintf("EXTRACT(MONTH FROM date) = $%d", argIdx))
		args = append(args, month)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT %s FROM timesheets
		WHERE %s
		ORDER BY date
	`, timesheetColumns, strings.Join(whereParts, " AND "))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list timesheets by employee: %w", err)
	}
	defer rows.Close()

	return collectTimesheets(rows)
}

func collectTimesheets(rows pgx.Rows) ([]timesheet.Timesheet, error) {
	var timesheets []timesheet.Timesheet
	for rows.Next() {
		t, err := scanTimesheet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan timesheet: %w", err)
		}
		timesheets = append(timesheets, t)
	}
	return timesheets, nil
}

func (r *timesheetRepository) Update(ctx context.Context, ownerAccountID, employeeID, id string, req timesheet.UpdateTimesheetRequest, hoursWorked *float64) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{ownerAccountID, employeeID, id}
	argIdx := 4

	addSet := func(column string, value interface{}) {
		setParts = append(setParts, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if req.Date != nil {
		addSet("date", parseDateOrNil(*req.Date))
	}
	if req.Status != nil {
		addSet("status", *req.Status)
	}
	if req.CheckInTime != nil {
		addSet("check_in_time", *req.CheckInTime)
	}
	if req.CheckOutTime != nil {
		addSet("check_out_time", *req.CheckOutTime)
	}
	if hoursWorked != nil {
		addSet("hours_worked", *hoursWorked)
	}
	if req.OvertimeHours != nil {
		addSet("overtime_hours", *req.OvertimeHours)
	}
	if req.Notes != nil {
		addSet("notes", *req.Notes)
	}

	query := fmt.Sprintf(`
		UPDATE timesheets
		SET %s
		WHERE owner_account_id = $1 AND employee_id = $2 AND id = $3
		RETURNING %s
	`, strings.Join(setParts, ", "), timesheetColumns)

	t, err := scanTimesheet(q.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
		}
		return timesheet.Timesheet{}, fmt.Errorf("failed to update timesheet: %w", err)
	}

	return t, nil
}

func (r *timesheetRepository) Delete(ctx context.Context, ownerAccountID, employeeID, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM timesheets
		WHERE owner_account_id = $1 AND employee_id = $2 AND id = $3
		RETURNING id
	`

	var deletedID string
	if err := q.QueryRow(ctx, query, ownerAccountID, employeeID, id).Scan(&deletedID); err != nil {
		if err == pgx.ErrNoRows {
			return timesheet.ErrTimesheetNotFound
		}
		return fmt.Errorf("failed to delete timesheet: %w", err)
	}

	return nil
}
