package employee

import (
	"context"
	"time"
)

// EmployeeRepository - interface for the employees table. Every method
// except GetByAccountID takes the owning account id; lookups never cross
// namespaces.
type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	// GetByID returns an active employee under the owner.
	GetByID(ctx context.Context, ownerAccountID, id string) (Employee, error)
	// GetByIDAny also matches deactivated employees.
	GetByIDAny(ctx context.Context, ownerAccountID, id string) (Employee, error)
	// GetByAccountID resolves the active employee linked to a login account.
	GetByAccountID(ctx context.Context, accountID string) (Employee, error)
	List(ctx context.Context, ownerAccountID string, filter Filter) ([]Employee, int64, error)
	ListDeleted(ctx context.Context, ownerAccountID string) ([]Employee, error)
	// ListAll returns active and inactive employees, for statistics.
	ListAll(ctx context.Context, ownerAccountID string) ([]Employee, error)
	Update(ctx context.Context, ownerAccountID, id string, req UpdateEmployeeRequest) (Employee, error)
	SetActive(ctx context.Context, ownerAccountID, id string, active bool, terminationDate *time.Time) (Employee, error)
	// LinkAccount attaches a login account to the employee record.
	LinkAccount(ctx context.Context, ownerAccountID, id, accountID, email string) error
}
