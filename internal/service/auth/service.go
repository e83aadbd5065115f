package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/account"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/auth"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/business"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/employee"
	"github.com/kadro-hq/kadro-backend-go/internal/pkg/database"
	"github.com/kadro-hq/kadro-backend-go/internal/pkg/jwt"
	"github.com/kadro-hq/kadro-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db *database.DB
	account.AccountRepository
	business.BusinessRepository
	employee.EmployeeRepository
	jwt.Service
}

func NewAuthService(db *database.DB, accountRepository account.AccountRepository, businessRepository business.BusinessRepository, employeeRepository employee.EmployeeRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		db:                 db,
		AccountRepository:  accountRepository,
		BusinessRepository: businessRepository,
		EmployeeRepository: employeeRepository,
		Service:            jwtService,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// RegisterOwner implements auth.AuthService.
func (a *AuthServiceImpl) RegisterOwner(ctx context.Context, req auth.RegisterRequest) (auth.RegisterResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.RegisterResponse{}, err
	}

	passwordHash, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.RegisterResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var (
		createdAccount  account.Account
		createdBusiness business.Business
	)

	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		createdBusiness, err = a.BusinessRepository.Create(txCtx, business.Business{
			Name:    business.DefaultName,
			LogoURL: business.DefaultLogoURL,
			Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		})
		if err != nil {
			return err
		}

		createdAccount, err = a.AccountRepository.Create(txCtx, account.Account{
			Name:         strings.TrimSpace(req.Name),
			Email:        strings.TrimSpace(req.Email),
			PasswordHash: &passwordHash,
			Role:         account.RoleOwner,
			BusinessID:   &createdBusiness.ID,
		})
		if err != nil {
			return err
		}

		if err := a.BusinessRepository.SetOwner(txCtx, createdBusiness.ID, createdAccount.ID); err != nil {
			return err
		}
		createdBusiness.OwnerAccountID = &createdAccount.ID

		return nil
	})
	if err != nil {
		return auth.RegisterResponse{}, err
	}

	token, expiresAt, err := a.Service.GenerateAccessToken(createdAccount.ID, createdAccount.Email, createdAccount.Role, nil)
	if err != nil {
		return auth.RegisterResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.RegisterResponse{
		Account:  account.NewAccountResponse(createdAccount),
		Business: business.NewBusinessResponse(createdBusiness),
		Token: auth.TokenResponse{
			AccessToken:          token,
			AccessTokenExpiresIn: expiresAt,
		},
	}, nil
}

// RegisterEmployee implements auth.AuthService.
func (a *AuthServiceImpl) RegisterEmployee(ctx context.Context, actor account.Actor, req auth.RegisterEmployeeRequest) (auth.RegisterEmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.RegisterEmployeeResponse{}, err
	}

	ownerAccountID, businessID, err := a.resolveNamespace(ctx, actor.AccountID)
	if err != nil {
		return auth.RegisterEmployeeResponse{}, err
	}

	employeeData, err := a.EmployeeRepository.GetByID(ctx, ownerAccountID, req.EmployeeID)
	if err != nil {
		return auth.RegisterEmployeeResponse{}, err
	}

	passwordHash, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.RegisterEmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var createdAccount account.Account

	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		createdAccount, err = a.AccountRepository.Create(txCtx, account.Account{
			Name:           employeeData.FullName(),
			Email:          strings.TrimSpace(req.Email),
			PasswordHash:   &passwordHash,
			Role:           account.RoleEmployee,
			BusinessID:     businessID,
			EmployeeID:     &employeeData.ID,
			OwnerAccountID: &ownerAccountID,
		})
		if err != nil {
			return err
		}

		return a.EmployeeRepository.LinkAccount(txCtx, ownerAccountID, employeeData.ID, createdAccount.ID, createdAccount.Email)
	})
	if err != nil {
		return auth.RegisterEmployeeResponse{}, err
	}

	token, expiresAt, err := a.Service.GenerateAccessToken(createdAccount.ID, createdAccount.Email, createdAccount.Role, &jwt.ScopeClaims{
		EmployeeID:     &employeeData.ID,
		OwnerAccountID: &ownerAccountID,
	})
	if err != nil {
		return auth.RegisterEmployeeResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.RegisterEmployeeResponse{
		Account: account.NewAccountResponse(createdAccount),
		Token: auth.TokenResponse{
			AccessToken:          token,
			AccessTokenExpiresIn: expiresAt,
		},
	}, nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	accountData, err := a.AccountRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == account.ErrAccountNotFound {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get account by email: %w", err)
	}

	if accountData.PasswordHash == nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*accountData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	lastLogin, err := a.AccountRepository.UpdateLastLogin(ctx, accountData.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to update last login: %w", err)
	}
	accountData.LastLoginAt = &lastLogin

	var scope *jwt.ScopeClaims
	if accountData.Role == account.RoleEmployee {
		scope = &jwt.ScopeClaims{
			EmployeeID:     accountData.EmployeeID,
			OwnerAccountID: accountData.OwnerAccountID,
		}
	}

	token, expiresAt, err := a.Service.GenerateAccessToken(accountData.ID, accountData.Email, accountData.Role, scope)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.LoginResponse{
		Account: account.NewAccountResponse(accountData),
		Token: auth.TokenResponse{
			AccessToken:          token,
			AccessTokenExpiresIn: expiresAt,
		},
	}, nil
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context, accountID string) (account.AccountResponse, error) {
	accountData, err := a.AccountRepository.GetByID(ctx, accountID)
	if err != nil {
		return account.AccountResponse{}, err
	}
	return account.NewAccountResponse(accountData), nil
}

// UpdateProfile implements auth.AuthService.
func (a *AuthServiceImpl) UpdateProfile(ctx context.Context, accountID string, req account.UpdateAccountRequest) (account.AccountResponse, error) {
	if err := req.Validate(); err != nil {
		return account.AccountResponse{}, err
	}

	patch := account.UpdateAccountPatch{Name: req.Name}
	if req.Role != nil {
		role := account.Role(*req.Role)
		patch.Role = &role
	}

	updated, err := a.AccountRepository.Update(ctx, accountID, patch)
	if err != nil {
		return account.AccountResponse{}, err
	}
	return account.NewAccountResponse(updated), nil
}

// ListAccounts implements auth.AuthService.
func (a *AuthServiceImpl) ListAccounts(ctx context.Context) ([]account.AccountResponse, error) {
	accounts, err := a.AccountRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	return account.NewAccountResponses(accounts), nil
}

// ListDeletedAccounts implements auth.AuthService.
func (a *AuthServiceImpl) ListDeletedAccounts(ctx context.Context) ([]account.AccountResponse, error) {
	accounts, err := a.AccountRepository.ListDeleted(ctx)
	if err != nil {
		return nil, err
	}
	return account.NewAccountResponses(accounts), nil
}

// DeactivateAccount implements auth.AuthService.
func (a *AuthServiceImpl) DeactivateAccount(ctx context.Context, accountID string) (account.AccountResponse, error) {
	accountData, err := a.AccountRepository.GetByID(ctx, accountID)
	if err != nil {
		return account.AccountResponse{}, err
	}
	if !accountData.IsActive {
		return account.AccountResponse{}, account.ErrAccountAlreadyInactive
	}

	updated, err := a.AccountRepository.SetActive(ctx, accountID, false)
	if err != nil {
		return account.AccountResponse{}, err
	}
	return account.NewAccountResponse(updated), nil
}

// RestoreAccount implements auth.AuthService.
func (a *AuthServiceImpl) RestoreAccount(ctx context.Context, accountID string) (account.AccountResponse, error) {
	accountData, err := a.AccountRepository.GetByID(ctx, accountID)
	if err != nil {
		return account.AccountResponse{}, err
	}
	if accountData.IsActive {
		return account.AccountResponse{}, account.ErrAccountNotDeleted
	}

	updated, err := a.AccountRepository.SetActive(ctx, accountID, true)
	if err != nil {
		return account.AccountResponse{}, err
	}
	return account.NewAccountResponse(updated), nil
}

// resolveNamespace maps the caller's account to the owner account id that
// roots its records, plus the business the account belongs to. Owner accounts
// are their own namespace; manager and employee accounts carry a pointer to
// their owner's.
func (a *AuthServiceImpl) resolveNamespace(ctx context.Context, accountID string) (string, *string, error) {
	accountData, err := a.AccountRepository.GetByID(ctx, accountID)
	if err != nil {
		return "", nil, err
	}
	if accountData.OwnerAccountID != nil {
		return *accountData.OwnerAccountID, accountData.BusinessID, nil
	}
	return accountData.ID, accountData.BusinessID, nil
}
