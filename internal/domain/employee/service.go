package employee

import (
	"context"

	"github.com/kadro-hq/kadro-backend-go/internal/domain/account"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	Create(ctx context.Context, ownerAccountID string, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, actor account.Actor, scope account.Scope) (EmployeeResponse, error)
	List(ctx context.Context, ownerAccountID string, filter Filter) ([]EmployeeResponse, int64, error)
	ListDeleted(ctx context.Context, ownerAccountID string) ([]EmployeeResponse, error)
	Update(ctx context.Context, actor account.Actor, scope account.Scope, req UpdateEmployeeRequest) (EmployeeResponse, error)
	// Delete soft deletes and stamps the termination date.
	Delete(ctx context.Context, ownerAccountID, id string) (EmployeeResponse, error)
	// Restore reactivates a soft-deleted employee and clears the
	// termination date.
	Restore(ctx context.Context, ownerAccountID, id string) (EmployeeResponse, error)
	Statistics(ctx context.Context, ownerAccountID string) (Statistics, error)
}
