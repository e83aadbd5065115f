package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/payroll"
	"github.com/kadro-hq/kadro-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollColumns = `id, owner_account_id, employee_id, period_month, period_year,
	gross_salary, net_salary, total_deductions, insurance_employee, insurance_employer,
	tax_deduction, other_additions, currency, payroll_date, status, payment_date,
	created_at, updated_at`

func scanPayroll(row pgx.Row) (payroll.Payroll, error) {
	var p payroll.Payroll
	err := row.Scan(
		&p.ID, &p.OwnerAccountID, &p.EmployeeID, &p.PeriodMonth, &p.PeriodYear,
		&p.GrossSalary, &p.NetSalary, &p.TotalDeductions, &p.InsuranceEmployee, &p.InsuranceEmployer,
		&p.TaxDeduction, &p.OtherAdditions, &p.Currency, &p.PayrollDate, &p.Status, &p.PaymentDate,
		&p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (r *payrollRepository) Create(ctx context.Context, newPayroll payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO payrolls (id, owner_account_id, employee_id, period_month, period_year,
			gross_salary, net_salary, total_deductions, insurance_employee, insurance_employer,
			tax_deduction, other_additions, currency, payroll_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING %s
	`, payrollColumns)

	p, err := scanPayroll(q.QueryRow(ctx, query,
		uuid.NewString(), newPayroll.OwnerAccountID, newPayroll.EmployeeID,
		newPayroll.PeriodMonth, newPayroll.PeriodYear,
		newPayroll.GrossSalary, newPayroll.NetSalary, newPayroll.TotalDeductions,
		newPayroll.InsuranceEmployee, newPayroll.InsuranceEmployer,
		newPayroll.TaxDeduction, newPayroll.OtherAdditions, newPayroll.Currency,
		newPayroll.PayrollDate, newPayroll.Status,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_payroll_employee_period") {
			return payroll.Payroll{}, payroll.ErrPayrollPeriodExists
		}
		return payroll.Payroll{}, fmt.Errorf("failed to create payroll: %w", err)
	}

	return p, nil
}

func (r *payrollRepository) GetByID(ctx context.Context, ownerAccountID, employeeID, id string) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM payrolls
		WHERE owner_account_id = $1 AND employee_id = $2 AND id = $3
	`, payrollColumns)

	p, err := scanPayroll(q.QueryRow(ctx, query, ownerAccountID, employeeID, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll: %w", err)
	}

	return p, nil
}

func (r *payrollRepository) GetByPeriod(ctx context.Context, ownerAccountID, employeeID, month, year string) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM payrolls
		WHERE owner_account_id = $1 AND employee_id = $2 AND period_month = $3 AND period_year = $4
	`, payrollColumns)

	p, err := scanPayroll(q.QueryRow(ctx, query, ownerAccountID, employeeID, month, year))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll by period: %w", err)
	}

	return p, nil
}

func (r *payrollRepository) List(ctx context.Context, ownerAccountID, employeeID string, filter payroll.Filter) ([]payroll.Payroll, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereParts := []string{"owner_account_id = $1", "employee_id = $2"}
	args := []interface{}{ownerAccountID, employeeID}
	argIdx := 3

	if filter.Status != "" {
		whereParts = append(whereParts, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, filter.Status)
		argIdx++
	}
	if filter.Year != "" {
		whereParts = append(whereParts, fmt.Sprintf("period_year = $%d", argIdx))
		args = append(args, filter.Year)
		argIdx++
	}
	if filter.Month != "" {
		whereParts = append(whereParts, fmt.Sprintf("period_month = $%d", argIdx))
		args = append(args, filter.Month)
		argIdx++
	}

	whereClause := strings.Join(whereParts, " AND ")

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM payrolls WHERE %s`, whereClause)
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payrolls: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM payrolls
		WHERE %s
		ORDER BY period_year DESC, period_month DESC
		LIMIT $%d OFFSET $%d
	`, payrollColumns, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payrolls: %w", err)
	}
	defer rows.Close()

	payrolls, err := collectPayrolls(rows)
	if err != nil {
		return nil, 0, err
	}

	return payrolls, total, nil
}

func (r *payrollRepository) ListByEmployeeYear(ctx context.Context, ownerAccountID, employeeID, year string) ([]payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM payrolls
		WHERE owner_account_id = $1 AND employee_id = $2 AND period_year = $3
		ORDER BY period_month
	`, payrollColumns)

	rows, err := q.Query(ctx, query, ownerAccountID, employeeID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list payrolls by year: %w", err)
	}
	defer rows.Close()

	return collectPayrolls(rows)
}

func collectPayrolls(rows pgx.Rows) ([]payroll.Payroll, error) {
	var payrolls []payroll.Payroll
	for rows.Next() {
		p, err := scanPayroll(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll: %w", err)
		}
		payrolls = append(payrolls, p)
	}
	return payrolls, nil
}

func (r *payrollRepository) Update(ctx context.Context, ownerAccountID, employeeID, id string, req payroll.UpdatePayrollRequest, netSalary *decimal.Decimal) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{ownerAccountID, employeeID, id}
	argIdx := 4

	addSet := func(column string, value interface{}) {
		setParts = append(setParts, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if req.GrossSalary != nil {
		addSet("gross_salary", *req.GrossSalary)
	}
	if netSalary != nil {
		addSet("net_salary", *netSalary)
	}
	if req.TotalDeductions != nil {
		addSet("total_deductions", *req.TotalDeductions)
	}
	if req.InsuranceEmployee != nil {
		addSet("insurance_employee", *req.InsuranceEmployee)
	}
	if req.InsuranceEmployer != nil {
		addSet("insurance_employer", *req.InsuranceEmployer)
	}
	if req.TaxDeduction != nil {
		addSet("tax_deduction", *req.TaxDeduction)
	}
	if req.OtherAdditions != nil {
		addSet("other_additions", *req.OtherAdditions)
	}
	if req.Currency != nil {
		addSet("currency", *req.Currency)
	}
	if req.PayrollDate != nil {
		addSet("payroll_date", parseDateOrNil(*req.PayrollDate))
	}

	query := fmt.Sprintf(`
		UPDATE payrolls
		SET %s
		WHERE owner_account_id = $1 AND employee_id = $2 AND id = $3
		RETURNING %s
	`, strings.Join(setParts, ", "), payrollColumns)

	p, err := scanPayroll(q.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to update payroll: %w", err)
	}

	return p, nil
}

func (r *payrollRepository) MarkAsPaid(ctx context.Context, ownerAccountID, employeeID, id string) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	// Pending-only guard; paying twice is a conflict.
	query := fmt.Sprintf(`
		UPDATE payrolls
		SET status = $4, payment_date = NOW(), updated_at = NOW()
		WHERE owner_account_id = $1 AND employee_id = $2 AND id = $3 AND status = $5
		RETURNING %s
	`, payrollColumns)

	p, err := scanPayroll(q.QueryRow(ctx, query, ownerAccountID, employeeID, id, payroll.StatusPaid, payroll.StatusPending))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payroll{}, payroll.ErrPayrollAlreadyPaid
		}
		return payroll.Payroll{}, fmt.Errorf("failed to mark payroll as paid: %w", err)
	}

	return p, nil
}

func (r *payrollRepository) Delete(ctx context.Context, ownerAccountID, employeeID, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM payrolls
		WHERE owner_account_id = $1 AND employee_id = $2 AND id = $3
		RETURNING id
	`

	var deletedID string
	if err := q.QueryRow(ctx, query, ownerAccountID, employeeID, id).Scan(&deletedID); err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrPayrollNotFound
		}
		return fmt.Errorf("failed to delete payroll: %w", err)
	}

	return nil
}
