package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/business"
	"github.com/kadro-hq/kadro-backend-go/internal/pkg/database"
)

type businessRepository struct {
	db *database.DB
}

func NewBusinessRepository(db *database.DB) business.BusinessRepository {
	return &businessRepository{db: db}
}

const businessColumns = `id, name, address, phone, email, logo_url, owner_account_id, created_at, updated_at`

func scanBusiness(row pgx.Row) (business.Business, error) {
	var b business.Business
	err := row.Scan(
		&b.ID, &b.Name, &b.Address, &b.Phone, &b.Email, &b.LogoURL,
		&b.OwnerAccountID, &b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

func (r *businessRepository) Create(ctx context.Context, newBusiness business.Business) (business.Business, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO businesses (id, name, address, phone, email, logo_url, owner_account_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s
	`, businessColumns)

	b, err := scanBusiness(q.QueryRow(ctx, query,
		uuid.NewString(), newBusiness.Name, newBusiness.Address, newBusiness.Phone,
		newBusiness.Email, newBusiness.LogoURL, newBusiness.OwnerAccountID,
	))
	if err != nil {
		return business.Business{}, fmt.Errorf("failed to create business: %w", err)
	}

	return b, nil
}

func (r *businessRepository) GetByID(ctx context.Context, id string) (business.Business, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM businesses WHERE id = $1`, businessColumns)

	b, err := scanBusiness(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return business.Business{}, business.ErrBusinessNotFound
		}
		return business.Business{}, fmt.Errorf("failed to get business: %w", err)
	}

	return b, nil
}

func (r *businessRepository) GetByOwnerAccountID(ctx context.Context, ownerAccountID string) (business.Business, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM businesses WHERE owner_account_id = $1`, businessColumns)

	b, err := scanBusiness(q.QueryRow(ctx, query, ownerAccountID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return business.Business{}, business.ErrBusinessNotFound
		}
		return business.Business{}, fmt.Errorf("failed to get business by owner: %w", err)
	}

	return b, nil
}

func (r *businessRepository) SetOwner(ctx context.Context, id string, ownerAccountID string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE businesses SET owner_account_id = $2, updated_at = NOW() WHERE id = $1 RETURNING id`

	var updatedID string
	if err := q.QueryRow(ctx, query, id, ownerAccountID).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return business.ErrBusinessNotFound
		}
		return fmt.Errorf("failed to set business owner: %w", err)
	}

	return nil
}

func (r *businessRepository) Update(ctx context.Context, id string, req business.UpdateBusinessRequest) (business.Business, error) {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{id}
	argIdx := 2

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.Address != nil {
		setParts = append(setParts, fmt.Sprintf("address = $%d", argIdx))
		args = append(args, *req.Address)
		argIdx++
	}
	if req.Phone != nil {
		setParts = append(setParts, fmt.Sprintf("phone = $%d", argIdx))
		args = append(args, *req.Phone)
		argIdx++
	}
	if req.Email != nil {
		setParts = append(setParts, fmt.Sprintf("email = $%d", argIdx))
		args = append(args, *req.Email)
		argIdx++
	}
	if req.LogoURL != nil {
		setParts = append(setParts, fmt.Sprintf("logo_url = $%d", argIdx))
		args = append(args, *req.LogoURL)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE businesses
		SET %s
		WHERE id = $1
		RETURNING %s
	`, strings.Join(setParts, ", "), businessColumns)

	b, err := scanBusiness(q.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return business.Business{}, business.ErrBusinessNotFound
		}
		return business.Business{}, fmt.Errorf("failed to update business: %w", err)
	}

	return b, nil
}
