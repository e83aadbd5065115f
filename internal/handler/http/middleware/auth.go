package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/account"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/auth"
	"github.com/kadro-hq/kadro-backend-go/internal/handler/http/response"
)

func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// ActorFromContext rebuilds the caller identity from the verified token
// claims. It returns false when the claims are malformed.
func ActorFromContext(r *http.Request) (account.Actor, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return account.Actor{}, false
	}

	accountID, ok := claims["account_id"].(string)
	if !ok || accountID == "" {
		return account.Actor{}, false
	}
	roleStr, ok := claims["role"].(string)
	if !ok || !account.IsValidRole(roleStr) {
		return account.Actor{}, false
	}

	actor := account.Actor{
		AccountID: accountID,
		Role:      account.Role(roleStr),
	}
	if employeeID, ok := claims["employee_id"].(string); ok && employeeID != "" {
		actor.EmployeeID = &employeeID
	}
	return actor, true
}

// OwnerAccountIDFromContext resolves the namespace the caller's records live
// under. Owner and manager tokens default to their own account id; employee
// tokens carry the owning account explicitly.
func OwnerAccountIDFromContext(r *http.Request) (string, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}

	if ownerAccountID, ok := claims["owner_account_id"].(string); ok && ownerAccountID != "" {
		return ownerAccountID, true
	}

	accountID, ok := claims["account_id"].(string)
	if !ok || accountID == "" {
		return "", false
	}
	return accountID, true
}
