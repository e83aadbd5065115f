package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/account"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// ScopeClaims carries the resolved tenancy scope for employee-role tokens.
// Owner and manager tokens leave both fields nil; their scope is their own
// account id.
type ScopeClaims struct {
	EmployeeID     *string
	OwnerAccountID *string
}

type Service interface {
	GenerateAccessToken(accountID string, email string, role account.Role, scope *ScopeClaims) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey                 string
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                 secretKey,
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) GenerateAccessToken(accountID string, email string, role account.Role, scope *ScopeClaims) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"account_id": accountID,
		"email":      email,
		"role":       string(role),
		"type":       "access",
		"exp":        expiresAt,
	}

	if scope != nil {
		claims["employee_id"] = j.returnValueOrNil(scope.EmployeeID)
		claims["owner_account_id"] = j.returnValueOrNil(scope.OwnerAccountID)
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) returnValueOrNil(value *string) interface{} {
	if value == nil {
		return nil
	}
	return *value
}
