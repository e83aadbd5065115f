package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/employee"
	"github.com/kadro-hq/kadro-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `id, owner_account_id, account_id, employee_code, first_name, last_name,
	profile_picture_url, email, phone_number, national_id, date_of_birth, gender, address,
	position, department, contract_type, work_mode, working_hours_per_day, start_date,
	termination_date, salary_gross, salary_net, salary_currency, salary_bank_name, salary_iban,
	insurance_registration_no, insurance_start_date, is_active, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.OwnerAccountID, &e.AccountID, &e.EmployeeCode, &e.FirstName, &e.LastName,
		&e.ProfilePictureURL, &e.Email, &e.PhoneNumber, &e.NationalID, &e.DateOfBirth, &e.Gender, &e.Address,
		&e.Position, &e.Department, &e.ContractType, &e.WorkMode, &e.WorkingHours, &e.StartDate,
		&e.TerminationDate, &e.Salary.GrossAmount, &e.Salary.NetAmount, &e.Salary.Currency,
		&e.Salary.BankName, &e.Salary.IBAN,
		&e.Insurance.RegistrationNo, &e.Insurance.StartDate, &e.IsActive, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func (r *employeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO employees (
			id, owner_account_id, account_id, employee_code, first_name, last_name,
			profile_picture_url, email, phone_number, national_id, date_of_birth, gender, address,
			position, department, contract_type, work_mode, working_hours_per_day, start_date,
			salary_gross, salary_net, salary_currency, salary_bank_name, salary_iban,
			insurance_registration_no, insurance_start_date
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18,
			$19, $20, $21, $22, $23, $24, $25, $26)
		RETURNING %s
	`, employeeColumns)

	e, err := scanEmployee(q.QueryRow(ctx, query,
		uuid.NewString(), newEmployee.OwnerAccountID, newEmployee.AccountID, newEmployee.EmployeeCode,
		newEmployee.FirstName, newEmployee.LastName, newEmployee.ProfilePictureURL, newEmployee.Email,
		newEmployee.PhoneNumber, newEmployee.NationalID, newEmployee.DateOfBirth, newEmployee.Gender,
		newEmployee.Address, newEmployee.Position, newEmployee.Department, newEmployee.ContractType,
		newEmployee.WorkMode, newEmployee.WorkingHours, newEmployee.StartDate,
		newEmployee.Salary.GrossAmount, newEmployee.Salary.NetAmount, newEmployee.Salary.Currency,
		newEmployee.Salary.BankName, newEmployee.Salary.IBAN,
		newEmployee.Insurance.RegistrationNo, newEmployee.Insurance.StartDate,
	))
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, ownerAccountID, id string) (employee.Employee, error) {
	return r.getByID(ctx, ownerAccountID, id, true)
}

func (r *employeeRepository) GetByIDAny(ctx context.Context, ownerAccountID, id string) (employee.Employee, error) {
	return r.getByID(ctx, ownerAccountID, id, false)
}

func (r *employeeRepository) getByID(ctx context.Context, ownerAccountID, id string, activeOnly bool) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM employees
		WHERE owner_account_id = $1 AND id = $2
	`, employeeColumns)
	if activeOnly {
		query += ` AND is_active = true`
	}

	e, err := scanEmployee(q.QueryRow(ctx, query, ownerAccountID, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) GetByAccountID(ctx context.Context, accountID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM employees
		WHERE account_id = $1 AND is_active = true
	`, employeeColumns)

	e, err := scanEmployee(q.QueryRow(ctx, query, accountID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by account: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) List(ctx context.Context, ownerAccountID string, filter employee.Filter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereParts := []string{"owner_account_id = $1", "is_active = true"}
	args := []interface{}{ownerAccountID}
	argIdx := 2

	if filter.Search != "" {
		whereParts = append(whereParts, fmt.Sprintf(
			"(first_name ILIKE $%d OR last_name ILIKE $%d OR email ILIKE $%d OR COALESCE(employee_code, '') ILIKE $%d)",
			argIdx, argIdx, argIdx, argIdx,
		))
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}
	if filter.Department != "" {
		whereParts = append(whereParts, fmt.Sprintf("department = $%d", argIdx))
		args = append(args, filter.Department)
		argIdx++
	}

	whereClause := strings.Join(whereParts, " AND ")

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM employees WHERE %s`, whereClause)
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM employees
		WHERE %s
		ORDER BY first_name, last_name
		LIMIT $%d OFFSET $%d
	`, employeeColumns, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees, err := collectEmployees(rows)
	if err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

func (r *employeeRepository) ListDeleted(ctx context.Context, ownerAccountID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM employees
		WHERE owner_account_id = $1 AND is_active = false
		ORDER BY updated_at DESC
	`, employeeColumns)

	rows, err := q.Query(ctx, query, ownerAccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list deleted employees: %w", err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}

func (r *employeeRepository) ListAll(ctx context.Context, ownerAccountID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM employees
		WHERE owner_account_id = $1
		ORDER BY created_at DESC
	`, employeeColumns)

	rows, err := q.Query(ctx, query, ownerAccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list all employees: %w", err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}

func collectEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, nil
}

func (r *employeeRepository) Update(ctx context.Context, ownerAccountID, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{ownerAccountID, id}
	argIdx := 3

	addSet := func(column string, value interface{}) {
		setParts = append(setParts, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if req.EmployeeCode != nil {
		addSet("employee_code", *req.EmployeeCode)
	}
	if req.FirstName != nil {
		addSet("first_name", strings.TrimSpace(*req.FirstName))
	}
	if req.LastName != nil {
		addSet("last_name", strings.TrimSpace(*req.LastName))
	}
	if req.ProfilePictureURL != nil {
		addSet("profile_picture_url", *req.ProfilePictureURL)
	}
	if req.Email != nil {
		addSet("email", strings.ToLower(strings.TrimSpace(*req.Email)))
	}
	if req.PhoneNumber != nil {
		addSet("phone_number", *req.PhoneNumber)
	}
	if req.NationalID != nil {
		addSet("national_id", *req.NationalID)
	}
	if req.DateOfBirth != nil {
		addSet("date_of_birth", parseDateOrNil(*req.DateOfBirth))
	}
	if req.Gender != nil {
		addSet("gender", *req.Gender)
	}
	if req.Address != nil {
		addSet("address", *req.Address)
	}
	if req.Position != nil {
		addSet("position", *req.Position)
	}
	if req.Department != nil {
		addSet("department", *req.Department)
	}
	if req.ContractType != nil {
		addSet("contract_type", *req.ContractType)
	}
	if req.WorkMode != nil {
		addSet("work_mode", *req.WorkMode)
	}
	if req.WorkingHours != nil {
		addSet("working_hours_per_day", *req.WorkingHours)
	}
	if req.StartDate != nil {
		addSet("start_date", parseDateOrNil(*req.StartDate))
	}
	if req.Salary != nil {
		if req.Salary.GrossAmount != nil {
			addSet("salary_gross", *req.Salary.GrossAmount)
		}
		if req.Salary.NetAmount != nil {
			addSet("salary_net", *req.Salary.NetAmount)
		}
		if req.Salary.Currency != nil {
			addSet("salary_currency", *req.Salary.Currency)
		}
		if req.Salary.BankName != nil {
			addSet("salary_bank_name", *req.Salary.BankName)
		}
		if req.Salary.IBAN != nil {
			addSet("salary_iban", *req.Salary.IBAN)
		}
	}
	if req.Insurance != nil {
		if req.Insurance.RegistrationNo != nil {
			addSet("insurance_registration_no", *req.Insurance.RegistrationNo)
		}
		if req.Insurance.StartDate != nil {
			addSet("insurance_start_date", parseDateOrNil(*req.Insurance.StartDate))
		}
	}

	query := fmt.Sprintf(`
		UPDATE employees
		SET %s
		WHERE owner_account_id = $1 AND id = $2 AND is_active = true
		RETURNING %s
	`, strings.Join(setParts, ", "), employeeColumns)

	e, err := scanEmployee(q.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) SetActive(ctx context.Context, ownerAccountID, id string, active bool, terminationDate *time.Time) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		UPDATE employees
		SET is_active = $3, termination_date = $4, updated_at = NOW()
		WHERE owner_account_id = $1 AND id = $2
		RETURNING %s
	`, employeeColumns)

	e, err := scanEmployee(q.QueryRow(ctx, query, ownerAccountID, id, active, terminationDate))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to set employee active state: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) LinkAccount(ctx context.Context, ownerAccountID, id, accountID, email string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET account_id = $3, email = LOWER($4), updated_at = NOW()
		WHERE owner_account_id = $1 AND id = $2 AND is_active = true
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, ownerAccountID, id, accountID, email).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to link account to employee: %w", err)
	}

	return nil
}

// parseDateOrNil maps an already-validated YYYY-MM-DD string to a date value.
func parseDateOrNil(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}
