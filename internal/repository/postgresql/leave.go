package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/leave"
	"github.com/kadro-hq/kadro-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

const leaveColumns = `id, owner_account_id, employee_id, type, start_date, end_date, reason,
	status, approved_by, approved_at, approval_note, created_at, updated_at`

func scanLeave(row pgx.Row) (leave.Leave, error) {
	var l leave.Leave
	err := row.Scan(
		&l.ID, &l.OwnerAccountID, &l.EmployeeID, &l.Type, &l.StartDate, &l.EndDate, &l.Reason,
		&l.Status, &l.ApprovedBy, &l.ApprovedAt, &l.ApprovalNote, &l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

func (r *leaveRepository) Create(ctx context.Context, newLeave leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO leaves (id, owner_account_id, employee_id, type, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s
	`, leaveColumns)

	l, err := scanLeave(q.QueryRow(ctx, query,
		uuid.NewString(), newLeave.OwnerAccountID, newLeave.EmployeeID, newLeave.Type,
		newLeave.StartDate, newLeave.EndDate, newLeave.Reason, newLeave.Status,
	))
	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to create leave: %w", err)
	}

	return l, nil
}

func (r *leaveRepository) GetByID(ctx context.Context, ownerAccountID, employeeID, id string) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM leaves
		WHERE owner_account_id = $1 AND employee_id = $2 AND id = $3
	`, leaveColumns)

	l, err := scanLeave(q.QueryRow(ctx, query, ownerAccountID, employeeID, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, fmt.Errorf("failed to get leave: %w", err)
	}

	return l, nil
}

func (r *leaveRepository) List(ctx context.Context, ownerAccountID, employeeID string, filter leave.Filter) ([]leave.Leave, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereParts := []string{"owner_account_id = $1", "employee_id = $2"}
	args := []interface{}{ownerAccountID, employeeID}
	argIdx := 3

	if filter.Status != "" {
		whereParts = append(whereParts, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, filter.Status)
		argIdx++
	}
	if filter.Type != "" {
		whereParts = append(whereParts, fmt.Sprintf("type = $%d", argIdx))
		args = append(args, filter.Type)
		argIdx++
	}

	whereClause := strings.Join(whereParts, " AND ")

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM leaves WHERE %s`, whereClause)
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leaves: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM leaves
		WHERE %s
		ORDER BY start_date DESC
		LIMIT $%d OFFSET $%d
	`, leaveColumns, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leaves: %w", err)
	}
	defer rows.Close()

	leaves, err := collectLeaves(rows)
	if err != nil {
		return nil, 0, err
	}

	return leaves, total, nil
}

func (r *leaveRepository) ListByEmployee(ctx context.Context, ownerAccountID, employeeID string) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM leaves
		WHERE owner_account_id = $1 AND employee_id = $2
		ORDER BY start_date DESC
	`, leaveColumns)

	rows, err := q.Query(ctx, query, ownerAccountID, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves by employee: %w", err)
	}
	defer rows.Close()

	return collectLeaves(rows)
}

func collectLeaves(rows pgx.Rows) ([]leave.Leave, error) {
	var leaves []leave.Leave
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave: %w", err)
		}
		leaves = append(leaves, l)
	}
	return leaves, nil
}

func (r *leaveRepository) Update(ctx context.Context, ownerAccountID, employeeID, id string, req leave.UpdateLeaveRequest) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{ownerAccountID, employeeID, id}
	argIdx := 4

	if req.Type != nil {
		setParts = append(setParts, fmt.Sprintf("type = $%d", argIdx))
		args = append(args, *req.Type)
		argIdx++
	}
	if req.StartDate != nil {
		setParts = append(setParts, fmt.Sprintf("start_date = $%d", argIdx))
		args = append(args, parseDateOrNil(*req.StartDate))
		argIdx++
	}
	if req.EndDate != nil {
		setParts = append(setParts, fmt.Sprintf("end_date = $%d", argIdx))
		args = append(args, parseDateOrNil(*req.EndDate))
		argIdx++
	}
	if req.Reason != nil {
		setParts = append(setParts, fmt.Sprintf("reason = $%d", argIdx))
		args = append(args, *req.Reason)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE leaves
		SET %s
		WHERE owner_account_id = $1 AND employee_id = $2 AND id = $3
		RETURNING %s
	`, strings.Join(setParts, ", "), leaveColumns)

	l, err := scanLeave(q.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, fmt.Errorf("failed to update leave: %w", err)
	}

	return l, nil
}

func (r *leaveRepository) Decide(ctx context.Context, ownerAccountID, employeeID, id string, status leave.Status, decidedBy string, note *string) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	// Pending-only guard; a decided leave stays decided.
	query := fmt.Sprintf(`
		UPDATE leaves
		SET status = $4, approved_by = $5, approved_at = NOW(), approval_note = $6, updated_at = NOW()
		WHERE owner_account_id = $1 AND employee_id = $2 AND id = $3 AND status = 'pending'
		RETURNING %s
	`, leaveColumns)

	l, err := scanLeave(q.QueryRow(ctx, query, ownerAccountID, employeeID, id, status, decidedBy, note))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Leave{}, leave.ErrLeaveAlreadyProcessed
		}
		return leave.Leave{}, fmt.Errorf("failed to decide leave: %w", err)
	}

	return l, nil
}

func (r *leaveRepository) Delete(ctx context.Context, ownerAccountID, employeeID, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM leaves
		WHERE owner_account_id = $1 AND employee_id = $2 AND id = $3
		RETURNING id
	`

	var deletedID string
	if err := q.QueryRow(ctx, query, ownerAccountID, employeeID, id).Scan(&deletedID); err != nil {
		if err == pgx.ErrNoRows {
			return leave.ErrLeaveNotFound
		}
		return fmt.Errorf("failed to delete leave: %w", err)
	}

	return nil
}
