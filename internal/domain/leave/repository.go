package leave

import "context"

// LeaveRepository - interface for the leaves table. All queries are scoped
// by owner account and employee.
type LeaveRepository interface {
	Create(ctx context.Context, l Leave) (Leave, error)
	GetByID(ctx context.Context, ownerAccountID, employeeID, id string) (Leave, error)
	List(ctx context.Context, ownerAccountID, employeeID string, filter Filter) ([]Leave, int64, error)
	// ListByEmployee returns every leave for an employee, for statistics.
	ListByEmployee(ctx context.Context, ownerAccountID, employeeID string) ([]Leave, error)
	Update(ctx context.Context, ownerAccountID, employeeID, id string, req UpdateLeaveRequest) (Leave, error)
	// Decide flips a pending leave to approved or rejected. It affects no
	// rows when the leave has already been decided.
	Decide(ctx context.Context, ownerAccountID, employeeID, id string, status Status, decidedBy string, note *string) (Leave, error)
	Delete(ctx context.Context, ownerAccountID, employeeID, id string) error
}
