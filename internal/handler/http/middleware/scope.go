package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/account"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/auth"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/employee"
	"github.com/kadro-hq/kadro-backend-go/internal/handler/http/response"
)

type scopeCtxKey struct{}
type actorCtxKey struct{}

// EmployeeScope resolves the {employeeId} URL parameter into a tenancy scope
// and stashes it with the caller identity. Employee-role callers may only
// reach the employee record their token is linked to; owner and manager
// callers get a 404 when the employee does not exist under their namespace.
func EmployeeScope(employeeRepo employee.EmployeeRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := ActorFromContext(r)
			if !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			ownerAccountID, ok := OwnerAccountIDFromContext(r)
			if !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			employeeID := chi.URLParam(r, "employeeId")
			if employeeID == "" {
				response.BadRequest(w, "employeeId is required", nil)
				return
			}

			if actor.Role == account.RoleEmployee {
				if actor.EmployeeID == nil || *actor.EmployeeID != employeeID {
					response.HandleError(w, employee.ErrOwnRecordsOnly)
					return
				}
			} else {
				// The employee must exist under the caller's namespace before
				// any nested operation runs.
				if _, err := employeeRepo.GetByID(r.Context(), ownerAccountID, employeeID); err != nil {
					response.HandleError(w, err)
					return
				}
			}

			scope := account.Scope{
				OwnerAccountID: ownerAccountID,
				EmployeeID:     employeeID,
			}

			ctx := context.WithValue(r.Context(), scopeCtxKey{}, scope)
			ctx = context.WithValue(ctx, actorCtxKey{}, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ScopeFromContext returns the scope stashed by EmployeeScope.
func ScopeFromContext(ctx context.Context) (account.Scope, bool) {
	scope, ok := ctx.Value(scopeCtxKey{}).(account.Scope)
	return scope, ok
}

// StashedActorFromContext returns the actor stashed by EmployeeScope.
func StashedActorFromContext(ctx context.Context) (account.Actor, bool) {
	actor, ok := ctx.Value(actorCtxKey{}).(account.Actor)
	return actor, ok
}
