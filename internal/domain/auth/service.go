package auth

import (
	"context"

	"github.com/kadro-hq/kadro-backend-go/internal/domain/account"
)

type AuthService interface {
	// RegisterOwner creates an owner account together with its business in
	// one transaction.
	RegisterOwner(ctx context.Context, req RegisterRequest) (RegisterResponse, error)
	// RegisterEmployee links an employee record under the caller's namespace
	// to a fresh employee-role account.
	RegisterEmployee(ctx context.Context, actor account.Actor, req RegisterEmployeeRequest) (RegisterEmployeeResponse, error)
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Me(ctx context.Context, accountID string) (account.AccountResponse, error)
	UpdateProfile(ctx context.Context, accountID string, req account.UpdateAccountRequest) (account.AccountResponse, error)
	ListAccounts(ctx context.Context) ([]account.AccountResponse, error)
	ListDeletedAccounts(ctx context.Context) ([]account.AccountResponse, error)
	DeactivateAccount(ctx context.Context, accountID string) (account.AccountResponse, error)
	RestoreAccount(ctx context.Context, accountID string) (account.AccountResponse, error)
}
