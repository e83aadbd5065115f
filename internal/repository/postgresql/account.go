package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/account"
	"github.com/kadro-hq/kadro-backend-go/internal/pkg/database"
)

type accountRepository struct {
	db *database.DB
}

func NewAccountRepository(db *database.DB) account.AccountRepository {
	return &accountRepository{db: db}
}

const accountColumns = `id, name, email, password_hash, role, business_id, employee_id,
	owner_account_id, is_active, last_login_at, created_at, updated_at, deleted_at`

func scanAccount(row pgx.Row) (account.Account, error) {
	var a account.Account
	err := row.Scan(
		&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.Role, &a.BusinessID, &a.EmployeeID,
		&a.OwnerAccountID, &a.IsActive, &a.LastLoginAt, &a.CreatedAt, &a.UpdatedAt, &a.DeletedAt,
	)
	return a, err
}

func (r *accountRepository) Create(ctx context.Context, acc account.Account) (account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO accounts (id, name, email, password_hash, role, business_id, employee_id, owner_account_id)
		VALUES ($1, $2, LOWER($3), $4, $5, $6, $7, $8)
		RETURNING %s
	`, accountColumns)

	created, err := scanAccount(q.QueryRow(ctx, query,
		uuid.NewString(), acc.Name, acc.Email, acc.PasswordHash, acc.Role,
		acc.BusinessID, acc.EmployeeID, acc.OwnerAccountID,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_account_email") {
			return account.Account{}, account.ErrEmailAlreadyExists
		}
		return account.Account{}, fmt.Errorf("failed to create account: %w", err)
	}

	return created, nil
}

func (r *accountRepository) GetByID(ctx context.Context, id string) (account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM accounts WHERE id = $1`, accountColumns)

	a, err := scanAccount(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return account.Account{}, account.ErrAccountNotFound
		}
		return account.Account{}, fmt.Errorf("failed to get account: %w", err)
	}

	return a, nil
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM accounts
		WHERE email = LOWER($1) AND is_active = true
	`, accountColumns)

	a, err := scanAccount(q.QueryRow(ctx, query, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return account.Account{}, account.ErrAccountNotFound
		}
		return account.Account{}, fmt.Errorf("failed to get account by email: %w", err)
	}

	return a, nil
}

func (r *accountRepository) List(ctx context.Context) ([]account.Account, error) {
	return r.list(ctx, true)
}

func (r *accountRepository) ListDeleted(ctx context.Context) ([]account.Account, error) {
	return r.list(ctx, false)
}

func (r *accountRepository) list(ctx context.Context, active bool) ([]account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM accounts
		WHERE is_active = $1
		ORDER BY created_at DESC
	`, accountColumns)

	rows, err := q.Query(ctx, query, active)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []account.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, a)
	}

	return accounts, nil
}

func (r *accountRepository) Update(ctx context.Context, id string, patch account.UpdateAccountPatch) (account.Account, error) {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{id}
	argIdx := 2

	if patch.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, strings.TrimSpace(*patch.Name))
		argIdx++
	}
	if patch.Role != nil {
		setParts = append(setParts, fmt.Sprintf("role = $%d", argIdx))
		args = append(args, *patch.Role)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE accounts
		SET %s
		WHERE id = $1
		RETURNING %s
	`, strings.Join(setParts, ", "), accountColumns)

	a, err := scanAccount(q.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return account.Account{}, account.ErrAccountNotFound
		}
		return account.Account{}, fmt.Errorf("failed to update account: %w", err)
	}

	return a, nil
}

func (r *accountRepository) UpdateLastLogin(ctx context.Context, id string) (time.Time, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE accounts
		SET last_login_at = NOW(), updated_at = NOW()
		WHERE id = $1
		RETURNING last_login_at
	`

	var lastLogin time.Time
	if err := q.QueryRow(ctx, query, id).Scan(&lastLogin); err != nil {
		if err == pgx.ErrNoRows {
			return time.Time{}, account.ErrAccountNotFound
		}
		return time.Time{}, fmt.Errorf("failed to update last login: %w", err)
	}

	return lastLogin, nil
}

func (r *accountRepository) SetActive(ctx context.Context, id string, active bool) (account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		UPDATE accounts
		SET is_active = $2,
			deleted_at = CASE WHEN $2 THEN NULL ELSE NOW() END,
			updated_at = NOW()
		WHERE id = $1
		RETURNING %s
	`, accountColumns)

	a, err := scanAccount(q.QueryRow(ctx, query, id, active))
	if err != nil {
		if err == pgx.ErrNoRows {
			return account.Account{}, account.ErrAccountNotFound
		}
		return account.Account{}, fmt.Errorf("failed to set account active state: %w", err)
	}

	return a, nil
}
