package advance

import (
	"context"

	"github.com/kadro-hq/kadro-backend-go/internal/domain/account"
)

type AdvanceService interface {
	Create(ctx context.Context, scope account.Scope, req CreateAdvanceRequest) (AdvanceResponse, error)
	Get(ctx context.Context, scope account.Scope, id string) (AdvanceResponse, error)
	List(ctx context.Context, scope account.Scope, filter Filter) ([]AdvanceResponse, int64, error)
	// ListBusiness serves the flat business-wide queue; callers narrow it
	// with Filter.EmployeeID.
	ListBusiness(ctx context.Context, ownerAccountID string, filter Filter) ([]AdvanceResponse, int64, error)
	Update(ctx context.Context, actor account.Actor, scope account.Scope, id string, req UpdateAdvanceRequest) (AdvanceResponse, error)
	Decide(ctx context.Context, actor account.Actor, scope account.Scope, id string, req DecideAdvanceRequest) (AdvanceResponse, error)
	Delete(ctx context.Context, actor account.Actor, scope account.Scope, id string) error
	Statistics(ctx context.Context, scope account.Scope, year int) (Statistics, error)
}
