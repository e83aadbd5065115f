package http

import (
	"net/http"

	"github.com/kadro-hq/kadro-backend-go/internal/domain/account"
	"github.com/kadro-hq/kadro-backend-go/internal/handler/http/middleware"
)

// actorAndScope pulls the caller identity and the resolved employee scope
// stashed by the scope middleware.
func actorAndScope(r *http.Request) (account.Actor, account.Scope, bool) {
	actor, ok := middleware.StashedActorFromContext(r.Context())
	if !ok {
		return account.Actor{}, account.Scope{}, false
	}
	scope, ok := middleware.ScopeFromContext(r.Context())
	if !ok {
		return account.Actor{}, account.Scope{}, false
	}
	return actor, scope, true
}
