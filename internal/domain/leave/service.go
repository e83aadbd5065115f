package leave

import (
	"context"

	"github.com/kadro-hq/kadro-backend-go/internal/domain/account"
)

type LeaveService interface {
	Create(ctx context.Context, scope account.Scope, req CreateLeaveRequest) (LeaveResponse, error)
	Get(ctx context.Context, scope account.Scope, id string) (LeaveResponse, error)
	List(ctx context.Context, scope account.Scope, filter Filter) ([]LeaveResponse, int64, error)
	// Update is allowed for employee-role callers only while the request is
	// still pending; managers may edit regardless of status.
	Update(ctx context.Context, actor account.Actor, scope account.Scope, id string, req UpdateLeaveRequest) (LeaveResponse, error)
	// Decide approves or rejects a pending request, recording who decided
	// and when. Deciding twice is a conflict.
	Decide(ctx context.Context, actor account.Actor, scope account.Scope, id string, req DecideLeaveRequest) (LeaveResponse, error)
	Delete(ctx context.Context, actor account.Actor, scope account.Scope, id string) error
	Statistics(ctx context.Context, scope account.Scope, year int) (Statistics, error)
}
