package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/advance"
	"github.com/kadro-hq/kadro-backend-go/internal/pkg/database"
)

type advanceRepository struct {
	db *database.DB
}

func NewAdvanceRepository(db *database.DB) advance.AdvanceRepository {
	return &advanceRepository{db: db}
}

const advanceColumns = `id, owner_account_id, employee_id, amount, reason, status,
	request_date, response_date, approved_by, approval_note, created_at, updated_at`

func scanAdvance(row pgx.Row) (advance.Advance, error) {
	var a advance.Advance
	err := row.Scan(
		&a.ID, &a.OwnerAccountID, &a.EmployeeID, &a.Amount, &a.Reason, &a.Status,
		&a.RequestDate, &a.ResponseDate, &a.ApprovedBy, &a.ApprovalNote, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

func (r *advanceRepository) Create(ctx context.Context, newAdvance advance.Advance) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO advances (id, owner_account_id, employee_id, amount, reason, status, request_date)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING %s
	`, advanceColumns)

	a, err := scanAdvance(q.QueryRow(ctx, query,
		uuid.NewString(), newAdvance.OwnerAccountID, newAdvance.EmployeeID,
		newAdvance.Amount, newAdvance.Reason, newAdvance.Status,
	))
	if err != nil {
		return advance.Advance{}, fmt.Errorf("failed to create advance: %w", err)
	}

	return a, nil
}

func (r *advanceRepository) GetByID(ctx context.Context, ownerAccountID, employeeID, id string) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM advances
		WHERE owner_account_id = $1 AND employee_id = $2 AND id = $3
	`, advanceColumns)

	a, err := scanAdvance(q.QueryRow(ctx, query, ownerAccountID, employeeID, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return advance.Advance{}, advance.ErrAdvanceNotFound
		}
		return advance.Advance{}, fmt.Errorf("failed to get advance: %w", err)
	}

	return a, nil
}

func (r *advanceRepository) List(ctx context.Context, ownerAccountID, employeeID string, filter advance.Filter) ([]advance.Advance, int64, error) {
	return r.list(ctx, ownerAccountID, &employeeID, filter)
}

func (r *advanceRepository) ListByOwner(ctx context.Context, ownerAccountID string, filter advance.Filter) ([]advance.Advance, int64, error) {
	var employeeID *string
	if filter.EmployeeID != "" {
		employeeID = &filter.EmployeeID
	}
	return r.list(ctx, ownerAccountID, employeeID, filter)
}

func (r *advanceRepository) list(ctx context.Context, ownerAccountID string, employeeID *string, filter advance.Filter) ([]advance.Advance, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereParts := []string{"owner_account_id = $1"}
	args := []interface{}{ownerAccountID}
	argIdx := 2

	if employeeID != nil {
		whereParts = append(whereParts, fmt.Sprintf("employee_id = $%d", argIdx))
		args = append(args, *employeeID)
		argIdx++
	}
	if filter.Status != "" {
		whereParts = append(whereParts, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, filter.Status)
		argIdx++
	}

	whereClause := strings.Join(whereParts, " AND ")

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM advances WHERE %s`, whereClause)
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count advances: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM advances
		WHERE %s
		ORDER BY request_date DESC
		LIMIT $%d OFFSET $%d
	`, advanceColumns, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list advances: %w", err)
	}
	defer rows.Close()

	advances, err := collectAdvances(rows)
	if err != nil {
		return nil, 0, err
	}

	return advances, total, nil
}

func (r *advanceRepository) ListByEmployee(ctx context.Context, ownerAccountID, employeeID string) ([]advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM advances
		WHERE owner_account_id = $1 AND employee_id = $2
		ORDER BY request_date DESC
	`, advanceColumns)

	rows, err := q.Query(ctx, query, ownerAccountID, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list advances by employee: %w", err)
	}
	defer rows.Close()

	return collectAdvances(rows)
}

func collectAdvances(rows pgx.Rows) ([]advance.Advance, error) {
	var advances []advance.Advance
	for rows.Next() {
		a, err := scanAdvance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan advance: %w", err)
		}
		advances = append(advances, a)
	}
	return advances, nil
}

func (r *advanceRepository) Update(ctx context.Context, ownerAccountID, employeeID, id string, req advance.UpdateAdvanceRequest) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{ownerAccountID, employeeID, id}
	argIdx := 4

	if req.Amount != nil {
		setParts = append(setParts, fmt.Sprintf("amount = $%d", argIdx))
		args = append(args, *req.Amount)
		argIdx++
	}
	if req.Reason != nil {
		setParts = append(setParts, fmt.Sprintf("reason = $%d", argIdx))
		args = append(args, *req.Reason)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE advances
		SET %s
		WHERE owner_account_id = $1 AND employee_id = $2 AND id = $3
		RETURNING %s
	`, strings.Join(setParts, ", "), advanceColumns)

	a, err := scanAdvance(q.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return advance.Advance{}, advance.ErrAdvanceNotFound
		}
		return advance.Advance{}, fmt.Errorf("failed to update advance: %w", err)
	}

	return a, nil
}

func (r *advanceRepository) Decide(ctx context.Context, ownerAccountID, employeeID, id string, status advance.Status, decidedBy string, note *string) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	// Pending-only guard; a decided advance stays decided.
	query := fmt.Sprintf(`
		UPDATE advances
		SET status = $4, approved_by = $5, response_date = NOW(), approval_note = $6, updated_at = NOW()
		WHERE owner_account_id = $1 AND employee_id = $2 AND id = $3 AND status = 'pending'
		RETURNING %s
	`, advanceColumns)

	a, err := scanAdvance(q.QueryRow(ctx, query, ownerAccountID, employeeID, id, status, decidedBy, note))
	if err != nil {
		if err == pgx.ErrNoRows {
			return advance.Advance{}, advance.ErrAdvanceAlreadyProcessed
		}
		return advance.Advance{}, fmt.Errorf("failed to decide advance: %w", err)
	}

	return a, nil
}

func (r *advanceRepository) Delete(ctx context.Context, ownerAccountID, employeeID, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM advances
		WHERE owner_account_id = $1 AND employee_id = $2 AND id = $3
		RETURNING id
	`

	var deletedID string
	if err := q.QueryRow(ctx, query, ownerAccountID, employeeID, id).Scan(&deletedID); err != nil {
		if err == pgx.ErrNoRows {
			return advance.ErrAdvanceNotFound
		}
		return fmt.Errorf("failed to delete advance: %w", err)
	}

	return nil
}
