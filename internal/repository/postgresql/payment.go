package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/payment"
	"github.com/kadro-hq/kadro-backend-go/internal/pkg/database"
)

type salaryPaymentRepository struct {
	db *database.DB
}

func NewSalaryPaymentRepository(db *database.DB) payment.SalaryPaymentRepository {
	return &salaryPaymentRepository{db: db}
}

const salaryPaymentColumns = `id, owner_account_id, employee_id, payroll_id, amount, currency,
	payment_date, payment_method, description, created_at, updated_at`

func scanSalaryPayment(row pgx.Row) (payment.SalaryPayment, error) {
	var p payment.SalaryPayment
	err := row.Scan(
		&p.ID, &p.OwnerAccountID, &p.EmployeeID, &p.PayrollID, &p.Amount, &p.Currency,
		&p.PaymentDate, &p.PaymentMethod, &p.Description, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (r *salaryPaymentRepository) Create(ctx context.Context, newPayment payment.SalaryPayment) (payment.SalaryPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO salary_payments (id, owner_account_id, employee_id, payroll_id, amount,
			currency, payment_date, payment_method, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING %s
	`, salaryPaymentColumns)

	p, err := scanSalaryPayment(q.QueryRow(ctx, query,
		uuid.NewString(), newPayment.OwnerAccountID, newPayment.EmployeeID, newPayment.PayrollID,
		newPayment.Amount, newPayment.Currency, newPayment.PaymentDate,
		newPayment.PaymentMethod, newPayment.Description,
	))
	if err != nil {
		return payment.SalaryPayment{}, fmt.Errorf("failed to create salary payment: %w", err)
	}

	return p, nil
}

func (r *salaryPaymentRepository) GetByID(ctx context.Context, ownerAccountID, employeeID, id string) (payment.SalaryPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM salary_payments
		WHERE owner_account_id = $1 AND employee_id = $2 AND id = $3
	`, salaryPaymentColumns)

	p, err := scanSalaryPayment(q.QueryRow(ctx, query, ownerAccountID, employeeID, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payment.SalaryPayment{}, payment.ErrSalaryPaymentNotFound
		}
		return payment.SalaryPayment{}, fmt.Errorf("failed to get salary payment: %w", err)
	}

	return p, nil
}

func (r *salaryPaymentRepository) List(ctx context.Context, ownerAccountID, employeeID string, filter payment.Filter) ([]payment.SalaryPayment, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereParts := []string{"owner_account_id = $1", "employee_id = $2"}
	args := []interface{}{ownerAccountID, employeeID}
	argIdx := 3

	if filter.PaymentMethod != "" {
		whereParts = append(whereParts, fmt.Sprintf("payment_method = $%d", argIdx))
		args = append(args, filter.PaymentMethod)
		argIdx++
	}
	if filter.Year > 0 {
		whereParts = append(whereParts, fmt.Sprintf("EXTRACT(YEAR FROM payment_date) = $%d", argIdx))
		args = append(args, filter.Year)
		argIdx++
	}
	if filter.Month > 0 {
		whereParts = append(whereParts, fmt.Sprintf("EXTRACT(MONTH FROM payment_date) = $%d", argIdx))
		args = append(args, filter.Month)
		argIdx++
	}

	whereClause := strings.Join(whereParts, " AND ")

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM salary_payments WHERE %s`, whereClause)
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count salary payments: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM salary_payments
		WHERE %s
		ORDER BY payment_date DESC
		LIMIT $%d OFFSET $%d
	`, salaryPaymentColumns, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list salary payments: %w", err)
	}
	defer rows.Close()

	payments, err := collectSalaryPayments(rows)
	if err != nil {
		return nil, 0, err
	}

	return payments, total, nil
}

func (r *salaryPaymentRepository) ListByEmployee(ctx context.Context, ownerAccountID, employeeID string, year int) ([]payment.SalaryPayment, error) {
	q := GetQuerier(ctx, r.db)

	whereParts := []string{"owner_account_id = $1", "employee_id = $2"}
	args := []interface{}{ownerAccountID, employeeID}

	if year > 0 {
		whereParts = append(whereParts, "EXTRACT(YEAR FROM payment_date) = $3")
		args = append(args, year)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM salary_payments
		WHERE %s
		ORDER BY payment_date DESC
	`, salaryPaymentColumns, strings.Join(whereParts, " AND "))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary payments by employee: %w", err)
	}
	defer rows.Close()

	return collectSalaryPayments(rows)
}

func collectSalaryPayments(rows pgx.Rows) ([]payment.SalaryPayment, error) {
	var payments []payment.SalaryPayment
	for rows.Next() {
		p, err := scanSalaryPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary payment: %w", err)
		}
		payments = append(payments, p)
	}
	return payments, nil
}

func (r *salaryPaymentRepository) Update(ctx context.Context, ownerAccountID, employeeID, id string, req payment.UpdateSalaryPaymentRequest) (payment.SalaryPayment, error) {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{ownerAccountID, employeeID, id}
	argIdx := 4

	addSet := func(column string, value interface{}) {
		setParts = append(setParts, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if req.PayrollID != nil {
		addSet("payroll_id", *req.PayrollID)
	}
	if req.Amount != nil {
		addSet("amount", *req.Amount)
	}
	if req.Currency != nil {
		addSet("currency", *req.Currency)
	}
	if req.PaymentDate != nil {
		addSet("payment_date", parseDateOrNil(*req.PaymentDate))
	}
	if req.PaymentMethod != nil {
		addSet("payment_method", *req.PaymentMethod)
	}
	if req.Description != nil {
		addSet("description", *req.Description)
	}

	query := fmt.Sprintf(`
		UPDATE salary_payments
		SET %s
		WHERE owner_account_id = $1 AND employee_id = $2 AND id = $3
		RETURNING %s
	`, strings.Join(setParts, ", "), salaryPaymentColumns)

	p, err := scanSalaryPayment(q.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payment.SalaryPayment{}, payment.ErrSalaryPaymentNotFound
		}
		return payment.SalaryPayment{}, fmt.Errorf("failed to update salary payment: %w", err)
	}

	return p, nil
}

func (r *salaryPaymentRepository) Delete(ctx context.Context, ownerAccountID, employeeID, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM salary_payments
		WHERE owner_account_id = $1 AND employee_id = $2 AND id = $3
		RETURNING id
	`

	var deletedID string
	if err := q.QueryRow(ctx, query, ownerAccountID, employeeID, id).Scan(&deletedID); err != nil {
		if err == pgx.ErrNoRows {
			return payment.ErrSalaryPaymentNotFound
		}
		return fmt.Errorf("failed to delete salary payment: %w", err)
	}

	return nil
}
