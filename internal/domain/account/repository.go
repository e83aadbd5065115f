package account

import (
	"context"
	"time"
)

// AccountRepository - interface for the accounts table
type AccountRepository interface {
	Create(ctx context.Context, acc Account) (Account, error)
	// GetByID returns the account regardless of its active state.
	GetByID(ctx context.Context, id string) (Account, error)
	// GetByEmail matches case-insensitively among active accounts only.
	GetByEmail(ctx context.Context, email string) (Account, error)
	List(ctx context.Context) ([]Account, error)
	ListDeleted(ctx context.Context) ([]Account, error)
	Update(ctx context.Context, id string, patch UpdateAccountPatch) (Account, error)
	UpdateLastLogin(ctx context.Context, id string) (time.Time, error)
	SetActive(ctx context.Context, id string, active bool) (Account, error)
}
